package cutout

import (
	"fmt"
	"math"

	"SpecMapViewer/fitscube"
	"SpecMapViewer/wcs"

	"github.com/chewxy/math32"
	"github.com/montanaflynn/stats"
)

// Mode selects how Trim treats the requested size.
type Mode string

const (
	// ModeNoTrim passes the full spatial extent through unchanged (still
	// producing a consistent coordinate-system slice).
	ModeNoTrim Mode = "no_trim"
	// ModeRectangle cuts a centered, clamped box around the sky position.
	ModeRectangle Mode = "rectangle"
)

// Report describes what a trim actually did, so a silently shrunken cutout
// near an image edge never goes unnoticed.
type Report struct {
	Mode    Mode
	Bounds  Bounds
	Clamped bool
	HalfX   int // effective half-extents after clamping
	HalfY   int
}

// Trim cuts the requested region out of the cube and out of its coordinate
// description, keeping the two index-aligned. Any leading axes beyond the
// trailing two spatial ones are fixed at index 0 first. An unrecognized
// mode is downgraded to no_trim with a printed notice rather than failing.
func Trim(cube *fitscube.Cube, cs wcs.CoordSystem, mode Mode, size Size, center wcs.SkyCoord) (*fitscube.Cube, wcs.CoordSystem, Report, error) {
	plane := cube.Plane()
	nx, ny := plane.NX(), plane.NY()

	switch mode {
	case ModeNoTrim, ModeRectangle:
	default:
		fmt.Printf("Warning: unrecognized trim mode %q - showing the full map instead\n", mode)
		mode = ModeNoTrim
	}

	if mode == ModeNoTrim {
		b := Bounds{X0: 0, X1: nx, Y0: 0, Y1: ny}
		return plane, cs.Slice(b.X0, b.X1, b.Y0, b.Y1),
			Report{Mode: ModeNoTrim, Bounds: b, HalfX: nx / 2, HalfY: ny / 2}, nil
	}

	x, y, err := cs.PixelFromSky(center)
	if err != nil {
		return nil, nil, Report{}, err
	}
	cx := int(math.Round(x))
	cy := int(math.Round(y))
	if cx < 0 || cx >= nx || cy < 0 || cy >= ny {
		return nil, nil, Report{}, fmt.Errorf(
			"cutout center (%.1f, %.1f) lies outside the map (%d x %d pixels)", x, y, nx, ny)
	}

	sx, sy := cs.PixelScale()
	hx, hy := HalfExtents(size, sx, sy)
	b, clamped := Clamp(cx, cy, hx, hy, nx, ny)
	if clamped {
		fmt.Printf("trim: requested size ran past the map edge; cutout reduced to %d x %d pixels around (%d, %d)\n",
			b.X1-b.X0, b.Y1-b.Y0, cx, cy)
	}

	sub, err := plane.SliceSpatial(b.X0, b.X1, b.Y0, b.Y1)
	if err != nil {
		return nil, nil, Report{}, err
	}
	return sub, cs.Slice(b.X0, b.X1, b.Y0, b.Y1),
		Report{Mode: ModeRectangle, Bounds: b, Clamped: clamped, HalfX: (b.X1 - b.X0) / 2, HalfY: (b.Y1 - b.Y0) / 2}, nil
}

// Range performs the same resolution and trim as Trim in rectangle mode but
// returns only the finite minimum and maximum of the cut region, for
// auto-selecting display scaling. NaN and infinite entries are ignored.
func Range(cube *fitscube.Cube, cs wcs.CoordSystem, size Size, center wcs.SkyCoord) (min, max float64, err error) {
	sub, _, _, err := Trim(cube, cs, ModeRectangle, size, center)
	if err != nil {
		return 0, 0, err
	}
	return FiniteRange(sub)
}

// FiniteRange scans a cube for its finite minimum and maximum.
func FiniteRange(cube *fitscube.Cube) (min, max float64, err error) {
	found := false
	var lo, hi float32
	for _, v := range cube.Data {
		if math32.IsNaN(v) || math32.IsInf(v, 0) {
			continue
		}
		if !found {
			lo, hi = v, v
			found = true
			continue
		}
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if !found {
		return 0, 0, fmt.Errorf("region holds no finite values")
	}
	return float64(lo), float64(hi), nil
}

// PercentileRange returns a robust display range: the given low and high
// percentiles (e.g. 0.5 and 99.5) of the finite values of a cube. Used for
// the auto setting of the display sliders, where a handful of hot pixels
// should not blow out the scale.
func PercentileRange(cube *fitscube.Cube, loPct, hiPct float64) (min, max float64, err error) {
	var finite []float64
	for _, v := range cube.Data {
		if math32.IsNaN(v) || math32.IsInf(v, 0) {
			continue
		}
		finite = append(finite, float64(v))
	}
	if len(finite) == 0 {
		return 0, 0, fmt.Errorf("region holds no finite values")
	}

	min, err = stats.Percentile(finite, loPct)
	if err != nil {
		return 0, 0, fmt.Errorf("percentile: %w", err)
	}
	max, err = stats.Percentile(finite, hiPct)
	if err != nil {
		return 0, 0, fmt.Errorf("percentile: %w", err)
	}
	return min, max, nil
}
