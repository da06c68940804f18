// Package fitscube loads FITS image HDUs into a plain N-dimensional float32
// grid and pulls the handful of header values the viewer needs (pixel scale,
// beam shape, linear world coordinates).
package fitscube

import "fmt"

// Cube is an N-dimensional numeric grid, N in {2,3,4}. Axis order follows
// the slowest-varying-first convention: the last axis is X (longitude-like,
// FITS NAXIS1) and the one before it is Y. Data is stored row-major with the
// last axis varying fastest.
type Cube struct {
	Shape []int
	Data  []float32
}

// New builds a cube after checking that the shape and data agree.
func New(shape []int, data []float32) (*Cube, error) {
	if len(shape) < 2 || len(shape) > 4 {
		return nil, fmt.Errorf("cube must have 2, 3 or 4 axes, got %d", len(shape))
	}
	n := 1
	for _, axis := range shape {
		if axis < 1 {
			return nil, fmt.Errorf("cube axis lengths must be positive, got %v", shape)
		}
		n *= axis
	}
	if n != len(data) {
		return nil, fmt.Errorf("shape %v wants %d values, data has %d", shape, n, len(data))
	}
	return &Cube{Shape: shape, Data: data}, nil
}

// Ndim returns the number of axes.
func (c *Cube) Ndim() int { return len(c.Shape) }

// NX returns the length of the X (last) axis.
func (c *Cube) NX() int { return c.Shape[len(c.Shape)-1] }

// NY returns the length of the Y (second to last) axis.
func (c *Cube) NY() int { return c.Shape[len(c.Shape)-2] }

// Plane returns the single spatial plane of the cube: any leading axes
// (frequency channel, polarization) are fixed at index 0, which for
// row-major data is simply the first NY*NX block. The returned cube shares
// the underlying data.
func (c *Cube) Plane() *Cube {
	if c.Ndim() == 2 {
		return c
	}
	nx, ny := c.NX(), c.NY()
	return &Cube{Shape: []int{ny, nx}, Data: c.Data[:ny*nx]}
}

// At returns the value at row y, column x of a 2D cube.
func (c *Cube) At(y, x int) float32 {
	return c.Data[y*c.NX()+x]
}

// SliceSpatial copies out the [y0,y1) x [x0,x1) sub-region of a 2D cube.
func (c *Cube) SliceSpatial(x0, x1, y0, y1 int) (*Cube, error) {
	if c.Ndim() != 2 {
		return nil, fmt.Errorf("spatial slicing wants a 2D plane, cube has %d axes", c.Ndim())
	}
	nx, ny := c.NX(), c.NY()
	if x0 < 0 || y0 < 0 || x1 > nx || y1 > ny || x0 > x1 || y0 > y1 {
		return nil, fmt.Errorf("slice bounds [%d:%d, %d:%d] outside cube shape (%d, %d)",
			y0, y1, x0, x1, ny, nx)
	}
	out := make([]float32, 0, (y1-y0)*(x1-x0))
	for y := y0; y < y1; y++ {
		out = append(out, c.Data[y*nx+x0:y*nx+x1]...)
	}
	return &Cube{Shape: []int{y1 - y0, x1 - x0}, Data: out}, nil
}
