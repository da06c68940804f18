package colormap

import "fmt"

// CreateSpecIndex builds the control points for the yellow-plum spectral
// index map, where a mid orange marks the steep population and a dark cyan
// blue marks the flat one. The orange and cyan stay pinned to steepP and
// flatP while the outer regions extend to the minP and maxP the caller
// provides; interior shape samples are re-placed with Stretch so the map
// keeps its designed look for any anchor placement.
func CreateSpecIndex(minP, maxP, steepP, flatP float64) (ControlPoints, error) {
	if steepP < minP || flatP < minP || steepP > maxP || flatP > maxP || steepP > flatP {
		return ControlPoints{}, fmt.Errorf(
			"%w: need min_p <= steep_p <= flat_p <= max_p (min_p=%g steep_p=%g flat_p=%g max_p=%g)",
			ErrInvalidRange, minP, steepP, flatP, maxP)
	}

	colorWidth := maxP - minP
	s1 := (steepP - minP) / colorWidth // normalized position of the steep point
	f1 := (flatP - minP) / colorWidth  // normalized position of the flat point
	m1 := 0.5 * (s1 + f1)

	cp := ControlPoints{
		Pos: []float64{0, s1, m1, Stretch(0.6, s1, f1), f1, Stretch(0.9, s1, f1), 1},
		L:   []float64{85, 54, 39, 34.3, 24, 15.5, 15},
		C:   []float64{60, 74.4, 0, 7.9, 25.1, 46.1, 54.4},
		H:   []float64{86, 51.7, 72, 200, 276.2, 302.5, 320},
	}
	if err := cp.Validate(); err != nil {
		return ControlPoints{}, err
	}
	return cp, nil
}

// CreateSpecIndexConstantL builds a constant luminosity/chroma map whose hue
// sweeps half the colour wheel from hStart, going "left" (counterclockwise)
// or "right".
func CreateSpecIndexConstantL(l0, c0, hStart float64, hDir string) (ControlPoints, error) {
	var hEnd float64
	switch hDir {
	case "left":
		hEnd = hStart - 180.0
	case "right":
		hEnd = hStart + 180.0
	default:
		return ControlPoints{}, fmt.Errorf("%w: hue direction must be \"left\" or \"right\", got %q",
			ErrInvalidConfiguration, hDir)
	}

	const n = 21 // positions 0, 0.05, ... 1
	cp := ControlPoints{
		Pos: make([]float64, n),
		L:   make([]float64, n),
		C:   make([]float64, n),
		H:   make([]float64, n),
	}
	for i := 0; i < n; i++ {
		p := float64(i) / float64(n-1)
		cp.Pos[i] = p
		cp.L[i] = l0
		cp.C[i] = c0
		cp.H[i] = hStart*(1.0-p) + hEnd*p
	}
	return cp, nil
}

// ErrorMapConfig configures the three point map used for spectral index
// uncertainties. Pointer fields are optional: leave them nil and the
// documented derivation applies. LMin/LMax must be set together (or neither,
// in which case both take LEnds). For hue, either set HMin and HMax, or HMid
// plus one of them, or HMid alone (the ends fall back to H0), or none of the
// three and H0 alone is used.
type ErrorMapConfig struct {
	CMid  float64 // position of the midpoint along the bar, in [0,1]
	LEnds float64
	LMid  float64
	LMin  *float64
	LMax  *float64
	CMax  float64
	H0    float64
	HMin  *float64
	HMid  *float64
	HMax  *float64
}

// DefaultErrorMapConfig matches the designed light orange and grey map where
// the pure orange hue marks the most uncertain values.
func DefaultErrorMapConfig() ErrorMapConfig {
	return ErrorMapConfig{CMid: 0.5, LEnds: 72, LMid: 50, CMax: 85, H0: 70}
}

// CreateSpecIndexError builds the uncertainty map from cfg.
func CreateSpecIndexError(cfg ErrorMapConfig) (ControlPoints, error) {
	if cfg.CMid < 0.0 || cfg.CMid > 1.0 {
		return ControlPoints{}, fmt.Errorf("%w: c_mid must lie in [0,1], got %g", ErrInvalidRange, cfg.CMid)
	}

	var lMin, lMax float64
	switch {
	case cfg.LMin == nil && cfg.LMax == nil:
		lMin, lMax = cfg.LEnds, cfg.LEnds
	case cfg.LMin == nil || cfg.LMax == nil:
		return ControlPoints{}, fmt.Errorf("%w: set both LMin and LMax, or neither and use LEnds",
			ErrInvalidConfiguration)
	default:
		lMin, lMax = *cfg.LMin, *cfg.LMax
	}

	hMin, hMid, hMax := cfg.HMin, cfg.HMid, cfg.HMax
	if hMin == nil && hMax == nil {
		// With neither end hue given both ends sit at H0, whether or not a
		// midpoint hue was supplied.
		hMin, hMax = &cfg.H0, &cfg.H0
	} else if (hMin == nil && hMid == nil) || (hMid == nil && hMax == nil) {
		return ControlPoints{}, fmt.Errorf(
			"%w: set both HMin and HMax, or HMid plus one of them, or none and use H0",
			ErrInvalidConfiguration)
	}

	var hMinV, hMidV, hMaxV float64
	switch {
	case hMid == nil:
		hMinV, hMaxV = *hMin, *hMax
		hMidV = 0.5 * (hMinV + hMaxV)
	case hMin == nil:
		hMidV, hMaxV = *hMid, *hMax
		hMinV = hMidV
	case hMax == nil:
		hMinV, hMidV = *hMin, *hMid
		hMaxV = hMidV
	default:
		hMinV, hMidV, hMaxV = *hMin, *hMid, *hMax
	}

	cp := ControlPoints{
		Pos: []float64{0, cfg.CMid, 1},
		L:   []float64{lMin, cfg.LMid, lMax},
		C:   []float64{0, cfg.CMax / 2.0, cfg.CMax},
		H:   []float64{hMinV, hMidV, hMaxV},
	}
	if err := cp.Validate(); err != nil {
		return ControlPoints{}, err
	}
	return cp, nil
}
