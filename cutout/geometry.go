// Package cutout extracts a rectangular, coordinate-aware sub-region of a
// map around a sky position, clamping at the data boundaries instead of
// crashing or wrapping.
package cutout

import "math"

// Size is a requested physical extent in degrees: either a single Radius
// (both half-extents derive from it) or an independent full Width and
// Height. Width/Height are used whenever either is non-zero.
type Size struct {
	Radius float64
	Width  float64
	Height float64
}

// Bounds are pixel index bounds with inclusive low and exclusive high, as
// used for slicing.
type Bounds struct {
	X0, X1 int
	Y0, Y1 int
}

// HalfExtents converts a physical size into integer pixel half-extents given
// the per-axis scale in degrees per pixel. The rule is floor(size/scale)+1;
// widths and heights denote full extents so they are halved afterwards. When
// only one of Width/Height is given the other takes the same angular extent,
// so a single number still cuts a sensible region instead of a zero-row one.
func HalfExtents(size Size, sx, sy float64) (hx, hy int) {
	if size.Width > 0 || size.Height > 0 {
		w, h := size.Width, size.Height
		if w == 0 {
			w = h
		}
		if h == 0 {
			h = w
		}
		hx = (int(math.Floor(w/sx)) + 1) / 2
		hy = (int(math.Floor(h/sy)) + 1) / 2
		return hx, hy
	}
	hx = int(math.Floor(size.Radius/sx)) + 1
	hy = int(math.Floor(size.Radius/sy)) + 1
	return hx, hy
}

// Clamp bounds a centered box of the given half-extents to an nx by ny
// array. Each axis is treated independently: if the box would run past an
// edge, the half-extent on that axis shrinks until it fits -- and the SAME
// reduced half-extent applies on both sides, so the box stays centered on
// (cx, cy) even when the request was too large near an edge. wasClamped
// reports whether either axis had to shrink; the bounds are always usable.
func Clamp(cx, cy, hx, hy, nx, ny int) (Bounds, bool) {
	wasClamped := false

	if cx-hx < 0 {
		hx = cx
		wasClamped = true
	}
	if cx+hx >= nx {
		hx = nx - cx - 1
		wasClamped = true
	}
	if cy-hy < 0 {
		hy = cy
		wasClamped = true
	}
	if cy+hy >= ny {
		hy = ny - cy - 1
		wasClamped = true
	}

	return Bounds{X0: cx - hx, X1: cx + hx, Y0: cy - hy, Y1: cy + hy}, wasClamped
}
