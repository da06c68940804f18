package fitscube

import (
	"fmt"

	"SpecMapViewer/wcs"

	"github.com/astrogo/fitsio"
)

// Beam is the restoring beam of a radio observation, all angles in degrees.
type Beam struct {
	MajorDeg    float64
	MinorDeg    float64
	PosAngleDeg float64
}

func headerFloat(hdr *fitsio.Header, key string) (float64, bool) {
	card := hdr.Get(key)
	if card == nil {
		return 0, false
	}
	switch v := card.Value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}

func headerString(hdr *fitsio.Header, key string) (string, bool) {
	card := hdr.Get(key)
	if card == nil {
		return "", false
	}
	if s, ok := card.Value.(string); ok {
		return s, true
	}
	return "", false
}

// BeamFromHeader reads BMAJ/BMIN/BPA. Missing BMIN degrades to a circular
// beam, missing BPA to a zero position angle, each with a printed notice.
// Without BMAJ there is no beam at all: the second return is false and beam
// drawing is simply disabled, never a failure.
func BeamFromHeader(hdr *fitsio.Header) (Beam, bool) {
	bmaj, ok := headerFloat(hdr, "BMAJ")
	if !ok {
		fmt.Println("no BMAJ in header - beam drawing disabled")
		return Beam{}, false
	}
	bmin, ok := headerFloat(hdr, "BMIN")
	if !ok {
		fmt.Println("no BMIN in header - assuming a circular beam")
		bmin = bmaj
	}
	bpa, ok := headerFloat(hdr, "BPA")
	if !ok {
		fmt.Println("no BPA in header - assuming a zero position angle")
		bpa = 0
	}
	return Beam{MajorDeg: bmaj, MinorDeg: bmin, PosAngleDeg: bpa}, true
}

// PixelScaleFromHeader returns the absolute per-axis pixel scale in degrees
// per pixel from CDELT1/CDELT2.
func PixelScaleFromHeader(hdr *fitsio.Header) (sx, sy float64, err error) {
	cdelt1, ok := headerFloat(hdr, "CDELT1")
	if !ok {
		return 0, 0, fmt.Errorf("no CDELT1 in header")
	}
	cdelt2, ok := headerFloat(hdr, "CDELT2")
	if !ok {
		return 0, 0, fmt.Errorf("no CDELT2 in header")
	}
	if cdelt1 < 0 {
		cdelt1 = -cdelt1
	}
	if cdelt2 < 0 {
		cdelt2 = -cdelt2
	}
	return cdelt1, cdelt2, nil
}

// WCSFromHeader builds the linear coordinate description of the two spatial
// axes. The frame is taken from RADESYS when present, else fk5.
func WCSFromHeader(hdr *fitsio.Header) (*wcs.LinearWCS, error) {
	var vals [6]float64
	for i, key := range []string{"CRVAL1", "CRPIX1", "CDELT1", "CRVAL2", "CRPIX2", "CDELT2"} {
		v, ok := headerFloat(hdr, key)
		if !ok {
			return nil, fmt.Errorf("no %s in header", key)
		}
		vals[i] = v
	}
	frame, ok := headerString(hdr, "RADESYS")
	if !ok {
		frame = "fk5"
	}
	return wcs.NewLinearWCS(vals[0], vals[1], vals[2], vals[3], vals[4], vals[5], frame)
}
