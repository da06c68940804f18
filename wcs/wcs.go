// Package wcs carries the coordinate-system side of a map: converting a sky
// position to fractional pixel coordinates and keeping the coordinate
// description index-aligned with a sliced pixel array. Only a linear
// world-coordinate description is implemented here; full projection math is
// the business of a dedicated WCS library.
package wcs

import (
	"fmt"
	"math"
	"strings"
)

// SkyCoord is a sky position in degrees, tagged with the coordinate frame it
// is expressed in ("fk5", "icrs", "galactic", ...). An empty frame matches
// any system.
type SkyCoord struct {
	Lon   float64
	Lat   float64
	Frame string
}

// CoordSystem is the capability the cutout engine needs from a coordinate
// description: resolve a sky position to fractional pixels, slice itself by
// the same pixel bounds applied to the array, and report the per-axis pixel
// scale in degrees per pixel.
type CoordSystem interface {
	PixelFromSky(c SkyCoord) (x, y float64, err error)
	Slice(x0, x1, y0, y1 int) CoordSystem
	PixelScale() (sx, sy float64)
	Frame() string
}

// LinearWCS is a coordinate description built from the linear FITS header
// keywords (CRVALn, CRPIXn, CDELTn), with the usual cos(lat) compression
// applied on the longitude axis.
type LinearWCS struct {
	crval1, crpix1, cdelt1 float64
	crval2, crpix2, cdelt2 float64
	frame                  string
}

// NewLinearWCS builds a LinearWCS from header-style values. CRPIX values are
// 1-based as in FITS.
func NewLinearWCS(crval1, crpix1, cdelt1, crval2, crpix2, cdelt2 float64, frame string) (*LinearWCS, error) {
	if cdelt1 == 0 || cdelt2 == 0 {
		return nil, fmt.Errorf("pixel scale must be non-zero (CDELT1=%g CDELT2=%g)", cdelt1, cdelt2)
	}
	return &LinearWCS{
		crval1: crval1, crpix1: crpix1, cdelt1: cdelt1,
		crval2: crval2, crpix2: crpix2, cdelt2: cdelt2,
		frame: strings.ToLower(frame),
	}, nil
}

// PixelFromSky resolves c to fractional 0-based pixel coordinates.
func (w *LinearWCS) PixelFromSky(c SkyCoord) (float64, float64, error) {
	if c.Frame != "" && w.frame != "" && !strings.EqualFold(c.Frame, w.frame) {
		return 0, 0, fmt.Errorf("coordinate frame mismatch: position is %q, map is %q", c.Frame, w.frame)
	}

	cosLat := math.Cos(w.crval2 * math.Pi / 180.0)
	x := (c.Lon-w.crval1)*cosLat/w.cdelt1 + (w.crpix1 - 1.0)
	y := (c.Lat-w.crval2)/w.cdelt2 + (w.crpix2 - 1.0)
	return x, y, nil
}

// Slice returns the coordinate description of the sub-array [x0,x1) x
// [y0,y1): the reference pixel shifts by the low bounds so that pixel (0,0)
// of the slice keeps its original sky position.
func (w *LinearWCS) Slice(x0, x1, y0, y1 int) CoordSystem {
	out := *w
	out.crpix1 -= float64(x0)
	out.crpix2 -= float64(y0)
	return &out
}

// PixelScale returns the absolute per-axis scale in degrees per pixel.
func (w *LinearWCS) PixelScale() (float64, float64) {
	return math.Abs(w.cdelt1), math.Abs(w.cdelt2)
}

// Frame returns the (lower-cased) coordinate frame of the description.
func (w *LinearWCS) Frame() string { return w.frame }
