package cutout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHalfExtentsFromRadius(t *testing.T) {
	hx, hy := HalfExtents(Size{Radius: 0.3}, 0.01, 0.01)
	assert.Equal(t, 31, hx) // floor(30) + 1
	assert.Equal(t, 31, hy)

	// Different per-axis scales give different half-extents.
	hx, hy = HalfExtents(Size{Radius: 0.3}, 0.01, 0.02)
	assert.Equal(t, 31, hx)
	assert.Equal(t, 16, hy)
}

func TestHalfExtentsFromWidthHeight(t *testing.T) {
	// Width/height are full extents, so the +1 rule applies before halving.
	hx, hy := HalfExtents(Size{Width: 0.6, Height: 0.4}, 0.01, 0.01)
	assert.Equal(t, 30, hx) // (floor(60)+1)/2
	assert.Equal(t, 20, hy) // (floor(40)+1)/2
}

func TestHalfExtentsOneSidedWidthOrHeight(t *testing.T) {
	// A lone width (or height) covers both axes, so the cutout never ends
	// up with zero rows or columns.
	hx, hy := HalfExtents(Size{Width: 0.4}, 0.01, 0.01)
	assert.Equal(t, 20, hx)
	assert.Equal(t, 20, hy)

	hx, hy = HalfExtents(Size{Height: 0.4}, 0.01, 0.02)
	assert.Equal(t, 20, hx) // 0.4 deg over the finer X scale
	assert.Equal(t, 10, hy)
}

func TestClampUntouchedWhenBoxFits(t *testing.T) {
	b, clamped := Clamp(50, 50, 31, 31, 100, 100)
	assert.False(t, clamped)
	assert.Equal(t, Bounds{X0: 19, X1: 81, Y0: 19, Y1: 81}, b)
}

func TestClampNearLowEdge(t *testing.T) {
	b, clamped := Clamp(5, 5, 31, 31, 100, 100)
	assert.True(t, clamped)
	// The reduced half-extent applies on BOTH sides: the box stays centered.
	assert.Equal(t, Bounds{X0: 0, X1: 10, Y0: 0, Y1: 10}, b)
}

func TestClampNearHighEdge(t *testing.T) {
	b, clamped := Clamp(95, 50, 31, 10, 100, 100)
	assert.True(t, clamped)
	assert.Equal(t, 91, b.X0) // half-extent reduced to 100-95-1 = 4
	assert.Equal(t, 99, b.X1)
	assert.Equal(t, Bounds{X0: 91, X1: 99, Y0: 40, Y1: 60}, b)
}

func TestClampAxesAreIndependent(t *testing.T) {
	b, clamped := Clamp(5, 50, 31, 10, 100, 100)
	assert.True(t, clamped)
	assert.Equal(t, Bounds{X0: 0, X1: 10, Y0: 40, Y1: 60}, b)
}

func TestClampBoundsProperties(t *testing.T) {
	// For any interior center and non-negative half-extent the bounds stay
	// inside the array and bracket the center.
	for _, cx := range []int{0, 1, 17, 50, 98, 99} {
		for _, hx := range []int{0, 1, 5, 50, 500} {
			b, _ := Clamp(cx, cx, hx, hx, 100, 100)
			assert.GreaterOrEqual(t, b.X0, 0)
			assert.LessOrEqual(t, b.X0, cx)
			assert.LessOrEqual(t, cx, b.X1)
			assert.Less(t, b.X1, 100)
		}
	}
}
