package wcs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPixelFromSkyAtReferencePixel(t *testing.T) {
	w, err := NewLinearWCS(202.47, 51, -0.01, 47.2, 51, 0.01, "FK5")
	require.NoError(t, err)

	x, y, err := w.PixelFromSky(SkyCoord{Lon: 202.47, Lat: 47.2, Frame: "fk5"})
	require.NoError(t, err)
	assert.InDelta(t, 50.0, x, 1e-9) // CRPIX is 1-based
	assert.InDelta(t, 50.0, y, 1e-9)
}

func TestPixelFromSkyUsesCosLat(t *testing.T) {
	// At 60 degrees latitude a degree of longitude is half a degree on the sky.
	w, err := NewLinearWCS(100, 1, 0.01, 60, 1, 0.01, "fk5")
	require.NoError(t, err)

	x, _, err := w.PixelFromSky(SkyCoord{Lon: 101, Lat: 60})
	require.NoError(t, err)
	assert.InDelta(t, 50.0, x, 1e-6) // 1 deg * cos(60) / 0.01
}

func TestPixelFromSkyFrameMismatch(t *testing.T) {
	w, err := NewLinearWCS(0, 1, 0.01, 0, 1, 0.01, "fk5")
	require.NoError(t, err)

	_, _, err = w.PixelFromSky(SkyCoord{Frame: "galactic"})
	assert.Error(t, err)

	// An empty frame matches anything.
	_, _, err = w.PixelFromSky(SkyCoord{})
	assert.NoError(t, err)
}

func TestSliceShiftsReferencePixel(t *testing.T) {
	w, err := NewLinearWCS(10, 51, -0.01, -5, 41, 0.01, "icrs")
	require.NoError(t, err)

	x0, y0, err := w.PixelFromSky(SkyCoord{Lon: 10, Lat: -5})
	require.NoError(t, err)

	sliced := w.Slice(19, 81, 11, 71)
	x1, y1, err := sliced.PixelFromSky(SkyCoord{Lon: 10, Lat: -5})
	require.NoError(t, err)
	assert.InDelta(t, x0-19, x1, 1e-9)
	assert.InDelta(t, y0-11, y1, 1e-9)

	// Slicing again composes.
	x2, _, err := sliced.Slice(5, 30, 0, 30).PixelFromSky(SkyCoord{Lon: 10, Lat: -5})
	require.NoError(t, err)
	assert.InDelta(t, x1-5, x2, 1e-9)
}

func TestSliceLeavesOriginalUntouched(t *testing.T) {
	w, err := NewLinearWCS(10, 51, -0.01, -5, 41, 0.01, "icrs")
	require.NoError(t, err)
	_ = w.Slice(10, 20, 10, 20)

	x, _, err := w.PixelFromSky(SkyCoord{Lon: 10, Lat: -5})
	require.NoError(t, err)
	assert.InDelta(t, 50.0, x, 1e-9)
}

func TestPixelScaleIsAbsolute(t *testing.T) {
	w, err := NewLinearWCS(0, 1, -0.01, 0, 1, 0.02, "fk5")
	require.NoError(t, err)
	sx, sy := w.PixelScale()
	assert.Equal(t, 0.01, sx)
	assert.Equal(t, 0.02, sy)
}

func TestNewLinearWCSRejectsZeroScale(t *testing.T) {
	_, err := NewLinearWCS(0, 1, 0, 0, 1, 0.01, "fk5")
	assert.Error(t, err)
}
