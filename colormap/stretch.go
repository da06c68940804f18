package colormap

// The colour maps in this package were designed with their two structurally
// important divergence features (the "steep" and "flat" points of a spectral
// index map) sitting at fixed positions along the bar. When the user supplies
// their own data range the features have to move, and every other designed-in
// position has to move with them or the map loses its intended look.
const (
	steep0 = 0.3125
	flat0  = 0.75
)

// Stretch returns the position a point p takes when the steep/flat anchors
// move from their design positions (0.3125, 0.75) to (s1, f1). Piecewise
// linear and continuous: [0,s0] maps onto [0,s1], [s0,f0] onto [s1,f1] and
// [f0,1] onto [f1,1], so 0, s0, f0 and 1 map to exactly 0, s1, f1 and 1.
//
// Callers must arrange s1 <= f1 before calling; the output is meaningless
// otherwise (pure arithmetic, no error return).
func Stretch(p, s1, f1 float64) float64 {
	dsf := flat0 - steep0

	if p <= steep0 {
		return p * s1 / steep0
	}
	if p <= flat0 {
		return ((p-steep0)*f1 + (flat0-p)*s1) / dsf
	}
	return ((p - flat0) + (1.0-p)*f1) / (1.0 - flat0)
}
