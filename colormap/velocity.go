package colormap

import "fmt"

// VelocityConfig controls the blue-red velocity map. The bar runs through
// seven samples at positions {0, Lpoint1, d0-width/2, d0, d0+width/2,
// 1-Lpoint1, 1} where d0 is the normalized divergence value. Pointer fields
// are optional; when nil they are derived by reflection about d0:
//
//	LvalMid = (LvalMax + LvalMin)/2
//	Lval2   = linear continuation of the Lpoint1 -> d0 luminosity ramp
//	Cval1   = CvalMax
//
// and the remaining luminosities mirror the left half (Lval3, Lval4), while
// the hue midpoint is the average of Hval2 and Hval3. Explicit values always
// win over the derived ones.
type VelocityConfig struct {
	LvalMax float64
	Lpoint1 float64
	Lval1   float64
	Lval2   *float64
	LvalMid *float64
	LvalMin float64
	CvalMax float64
	Cval1   *float64
	Cval2   float64
	HvalL   float64
	HvalR   float64
	Hval1   float64
	Hval2   float64
	Hval3   float64
	Hval4   float64
}

// DefaultVelocityConfig is the designed blue-red map: a bright blue side
// fading through a neutral zero-chroma band at the divergence value into a
// dark red side.
func DefaultVelocityConfig() VelocityConfig {
	return VelocityConfig{
		LvalMax: 90, Lpoint1: 0.33, Lval1: 61, LvalMin: 10,
		CvalMax: 50, Cval2: 0.4,
		HvalL: 210, HvalR: 30, Hval1: 210, Hval2: 209, Hval3: 31, Hval4: 30,
	}
}

// CreateVelocity builds the velocity map control points. div is the data
// value to treat as the neutral divergence point, width the full width (in
// normalized bar units) of the zero-chroma band carved around it.
func CreateVelocity(minP, maxP, div, width float64, cfg VelocityConfig) (ControlPoints, error) {
	colorWidth := maxP - minP
	d0 := (div - minP) / colorWidth // normalized position of the divergence point
	p2 := d0 - width/2.0
	p3 := d0 + width/2.0

	lvalMid := (cfg.LvalMax + cfg.LvalMin) / 2.0
	if cfg.LvalMid != nil {
		lvalMid = *cfg.LvalMid
	}
	lval2 := ((p2-cfg.Lpoint1)*lvalMid + (d0-p2)*cfg.Lval1) / (d0 - cfg.Lpoint1)
	if cfg.Lval2 != nil {
		lval2 = *cfg.Lval2
	}
	cval1 := cfg.CvalMax
	if cfg.Cval1 != nil {
		cval1 = *cfg.Cval1
	}
	lval3 := cfg.LvalMin + (cfg.LvalMax - lval2)
	lval4 := cfg.LvalMin + (cfg.LvalMax - cfg.Lval1)
	hvalMid := (cfg.Hval2 + cfg.Hval3) / 2.0

	cp := ControlPoints{
		Pos: []float64{0, cfg.Lpoint1, p2, d0, p3, 1.0 - cfg.Lpoint1, 1},
		L:   []float64{cfg.LvalMax, cfg.Lval1, lval2, lvalMid, lval3, lval4, cfg.LvalMin},
		C:   []float64{cfg.CvalMax, cval1, cfg.Cval2, 0, cfg.Cval2, cval1, cfg.CvalMax},
		H:   []float64{cfg.HvalL, cfg.Hval1, cfg.Hval2, hvalMid, cfg.Hval3, cfg.Hval4, cfg.HvalR},
	}
	// Catches div outside [minP,maxP], a band wider than the distance to the
	// Lpoint1 samples, and every other way the seven positions can end up
	// out of order.
	if err := cp.Validate(); err != nil {
		return ControlPoints{}, fmt.Errorf("velocity map: %w", err)
	}
	return cp, nil
}

// CreateVelocityDoubleComplement is the velocity map built on two
// complementary hue pairs: the outer ends use 250/70 and the samples beside
// the neutral band use 210/30, so both extremes and both near-neutral tints
// sit directly opposite each other on the colour wheel.
func CreateVelocityDoubleComplement(minP, maxP, div, width float64) (ControlPoints, error) {
	cfg := DefaultVelocityConfig()
	cfg.HvalL = 250
	cfg.Hval1 = 210
	cfg.Hval2 = 209
	cfg.Hval3 = 31
	cfg.Hval4 = 30
	cfg.HvalR = 70
	return CreateVelocity(minP, maxP, div, width, cfg)
}
