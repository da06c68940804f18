package colormap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPoints(t *testing.T) ControlPoints {
	t.Helper()
	cp, err := CreateSpecIndex(-1.3, 0.3, -0.8, -0.1)
	require.NoError(t, err)
	return cp
}

func TestMakeSegmentedSingleModeKeepsName(t *testing.T) {
	reg := NewRegistry()
	maps, err := MakeSegmented("testmap", testPoints(t), MakeOptions{Registry: reg})
	require.NoError(t, err)
	require.Len(t, maps, 1)
	assert.Equal(t, "testmap", maps[0].Name)
	assert.Equal(t, Clip, maps[0].Mode)

	m, ok := reg.Lookup("testmap")
	require.True(t, ok)
	assert.Equal(t, lutSize, m.Len())
}

func TestMakeSegmentedTwoModesGetSuffixes(t *testing.T) {
	reg := NewRegistry()
	maps, err := MakeSegmented("testmap", testPoints(t),
		MakeOptions{Modes: []GamutMode{Clip, Crop}, Registry: reg})
	require.NoError(t, err)
	require.Len(t, maps, 2)
	assert.Equal(t, "testmap_clip", maps[0].Name)
	assert.Equal(t, "testmap_crop", maps[1].Name)

	_, ok := reg.Lookup("testmap_clip")
	assert.True(t, ok)
	_, ok = reg.Lookup("testmap_crop")
	assert.True(t, ok)
	_, ok = reg.Lookup("testmap")
	assert.False(t, ok)
}

func TestMakeSegmentedRejectsBadPoints(t *testing.T) {
	bad := ControlPoints{
		Pos: []float64{0, 0.7, 0.3, 1},
		L:   []float64{10, 20, 30, 40},
		C:   []float64{0, 0, 0, 0},
		H:   []float64{0, 0, 0, 0},
	}
	_, err := MakeSegmented("bad", bad, MakeOptions{Registry: NewRegistry()})
	assert.ErrorIs(t, err, ErrInvalidControlPoints)
}

func TestMakeSegmentedRejectsBadMode(t *testing.T) {
	_, err := MakeSegmented("m", testPoints(t),
		MakeOptions{Modes: []GamutMode{"squeeze"}, Registry: NewRegistry()})
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestRegisteredMapIsolatedFromCallerMutation(t *testing.T) {
	reg := NewRegistry()
	cp := testPoints(t)
	_, err := MakeSegmented("frozen", cp, MakeOptions{Registry: reg})
	require.NoError(t, err)

	cp.L[0] = -999 // caller reuses their slices

	m, ok := reg.Lookup("frozen")
	require.True(t, ok)
	assert.Equal(t, 85.0, m.Points.L[0])
}

func TestLookupTableEndsAndOrdering(t *testing.T) {
	maps, err := MakeSegmented("ends", testPoints(t), MakeOptions{Registry: NewRegistry()})
	require.NoError(t, err)
	m := maps[0]

	// Values outside [0,1] clamp to the table ends.
	assert.Equal(t, m.At(0), m.At(-1))
	assert.Equal(t, m.At(1), m.At(2))

	// The specindex map runs light to dark, so luminance should drop from
	// the bottom of the bar to the top.
	lo := m.At(0)
	hi := m.At(1)
	brightness := func(r, g, b uint8) int { return int(r) + int(g) + int(b) }
	assert.Greater(t, brightness(lo.R, lo.G, lo.B), brightness(hi.R, hi.G, hi.B))
}

func TestCropRescalesOnlyWhenNeeded(t *testing.T) {
	// A deliberately over-chromatic map: chroma 150 everywhere. Clip and
	// crop must disagree on it (per-sample pullback vs whole-map rescale).
	loud := ControlPoints{
		Pos: []float64{0, 1},
		L:   []float64{50, 50},
		C:   []float64{150, 150},
		H:   []float64{30, 250},
	}
	maps, err := MakeSegmented("loud", loud,
		MakeOptions{Modes: []GamutMode{Clip, Crop}, Registry: NewRegistry()})
	require.NoError(t, err)
	clipped, cropped := maps[0], maps[1]

	differs := false
	for i := 0; i < clipped.Len(); i++ {
		v := float64(i) / float64(clipped.Len()-1)
		if clipped.At(v) != cropped.At(v) {
			differs = true
			break
		}
	}
	assert.True(t, differs)

	// A map that never leaves the gamut is untouched by crop.
	quiet := ControlPoints{
		Pos: []float64{0, 1},
		L:   []float64{50, 50},
		C:   []float64{10, 10},
		H:   []float64{30, 250},
	}
	maps, err = MakeSegmented("quiet", quiet,
		MakeOptions{Modes: []GamutMode{Clip, Crop}, Registry: NewRegistry()})
	require.NoError(t, err)
	for i := 0; i < maps[0].Len(); i++ {
		v := float64(i) / float64(maps[0].Len()-1)
		assert.Equal(t, maps[0].At(v), maps[1].At(v))
	}
}

func TestMaxChromaLiesOnGamutBoundary(t *testing.T) {
	cmax := maxChroma(50, 30)
	assert.Greater(t, cmax, 0.0)
	assert.Less(t, cmax, 200.0)
}

func TestPNGTargetWritesSwatch(t *testing.T) {
	dir := t.TempDir()
	_, err := MakeSegmented("swatch", testPoints(t),
		MakeOptions{Targets: []Target{TargetPNG}, PNGDir: dir, Registry: NewRegistry()})
	require.NoError(t, err)

	info, err := os.Stat(filepath.Join(dir, "swatch.png"))
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
