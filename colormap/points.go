package colormap

import (
	"fmt"
	"math"
)

// ControlPoints is an ordered sequence of (position, L, C, H) samples that
// fully describes a colour map before it is turned into RGB. Positions run
// from 0 at the bottom of the bar to 1 at the top; the same position set is
// shared by all three channels and values in between are linearly
// interpolated. Luminosity and chroma range over 0-100, hue is degrees on
// the colour wheel.
type ControlPoints struct {
	Pos []float64
	L   []float64
	C   []float64
	H   []float64
}

// Validate checks that the sequences are usable by the assembler: equal
// lengths, at least two samples, positions finite, non-decreasing and
// spanning exactly [0,1]. A NaN position compares false against everything,
// so finiteness has to be checked explicitly or a degenerate build (for
// instance a zero-width parameter range) would sail through and corrupt the
// interpolation.
func (cp ControlPoints) Validate() error {
	n := len(cp.Pos)
	if n < 2 {
		return fmt.Errorf("%w: need at least 2 samples, got %d", ErrInvalidControlPoints, n)
	}
	if len(cp.L) != n || len(cp.C) != n || len(cp.H) != n {
		return fmt.Errorf("%w: position/value length mismatch (pos=%d L=%d C=%d H=%d)",
			ErrInvalidControlPoints, n, len(cp.L), len(cp.C), len(cp.H))
	}
	if cp.Pos[0] != 0.0 || cp.Pos[n-1] != 1.0 {
		return fmt.Errorf("%w: positions must span [0,1], got [%g,%g]",
			ErrInvalidControlPoints, cp.Pos[0], cp.Pos[n-1])
	}
	for i := 0; i < n; i++ {
		if math.IsNaN(cp.Pos[i]) || math.IsInf(cp.Pos[i], 0) {
			return fmt.Errorf("%w: position at index %d is not finite (%g)",
				ErrInvalidControlPoints, i, cp.Pos[i])
		}
	}
	for i := 1; i < n; i++ {
		if cp.Pos[i] < cp.Pos[i-1] {
			return fmt.Errorf("%w: position %g at index %d is below its predecessor %g",
				ErrInvalidControlPoints, cp.Pos[i], i, cp.Pos[i-1])
		}
	}
	return nil
}

// interpAt linearly interpolates the value sequence at position x. Samples
// sharing a position act as a step (the later value wins on the right side).
func interpAt(pos, val []float64, x float64) float64 {
	n := len(pos)
	if x <= pos[0] {
		return val[0]
	}
	if x >= pos[n-1] {
		return val[n-1]
	}
	for i := 1; i < n; i++ {
		if x <= pos[i] {
			if pos[i] == pos[i-1] {
				return val[i]
			}
			t := (x - pos[i-1]) / (pos[i] - pos[i-1])
			return val[i-1]*(1.0-t) + val[i]*t
		}
	}
	return val[n-1]
}
