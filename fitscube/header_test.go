package fitscube

import (
	"testing"

	"github.com/astrogo/fitsio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testHeader(t *testing.T, cards []fitsio.Card) *fitsio.Header {
	t.Helper()
	return fitsio.NewHeader(cards, fitsio.IMAGE_HDU, -32, []int{10, 10})
}

func TestBeamFromHeaderComplete(t *testing.T) {
	hdr := testHeader(t, []fitsio.Card{
		{Name: "BMAJ", Value: 0.002},
		{Name: "BMIN", Value: 0.001},
		{Name: "BPA", Value: 45.0},
	})
	beam, ok := BeamFromHeader(hdr)
	require.True(t, ok)
	assert.Equal(t, Beam{MajorDeg: 0.002, MinorDeg: 0.001, PosAngleDeg: 45.0}, beam)
}

func TestBeamFromHeaderDegradesGracefully(t *testing.T) {
	// Missing BMIN: circular beam. Missing BPA: zero position angle.
	hdr := testHeader(t, []fitsio.Card{{Name: "BMAJ", Value: 0.002}})
	beam, ok := BeamFromHeader(hdr)
	require.True(t, ok)
	assert.Equal(t, Beam{MajorDeg: 0.002, MinorDeg: 0.002, PosAngleDeg: 0}, beam)
}

func TestBeamFromHeaderAbsentDisablesBeam(t *testing.T) {
	hdr := testHeader(t, nil)
	_, ok := BeamFromHeader(hdr)
	assert.False(t, ok)
}

func TestPixelScaleFromHeader(t *testing.T) {
	hdr := testHeader(t, []fitsio.Card{
		{Name: "CDELT1", Value: -0.01},
		{Name: "CDELT2", Value: 0.02},
	})
	sx, sy, err := PixelScaleFromHeader(hdr)
	require.NoError(t, err)
	assert.Equal(t, 0.01, sx) // absolute value
	assert.Equal(t, 0.02, sy)

	hdr = testHeader(t, []fitsio.Card{{Name: "CDELT1", Value: -0.01}})
	_, _, err = PixelScaleFromHeader(hdr)
	assert.Error(t, err)
}

func TestWCSFromHeader(t *testing.T) {
	hdr := testHeader(t, []fitsio.Card{
		{Name: "CRVAL1", Value: 202.47},
		{Name: "CRPIX1", Value: 51.0},
		{Name: "CDELT1", Value: -0.01},
		{Name: "CRVAL2", Value: 47.2},
		{Name: "CRPIX2", Value: 51.0},
		{Name: "CDELT2", Value: 0.01},
		{Name: "RADESYS", Value: "ICRS"},
	})
	w, err := WCSFromHeader(hdr)
	require.NoError(t, err)
	assert.Equal(t, "icrs", w.Frame())

	sx, sy := w.PixelScale()
	assert.Equal(t, 0.01, sx)
	assert.Equal(t, 0.01, sy)
}

func TestWCSFromHeaderMissingKeywordFails(t *testing.T) {
	hdr := testHeader(t, []fitsio.Card{{Name: "CRVAL1", Value: 202.47}})
	_, err := WCSFromHeader(hdr)
	assert.Error(t, err)
}
