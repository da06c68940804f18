package fitscube

import (
	"fmt"
	"os"

	"github.com/astrogo/fitsio"
)

// Load reads the primary HDU of a FITS file into a Cube and returns its
// header alongside. Integer and floating data of any FITS bitpix are
// widened or narrowed to float32.
func Load(fitsFilePath string) (*Cube, *fitsio.Header, error) {
	fileHandle, err := os.Open(fitsFilePath)
	if err != nil {
		return nil, nil, fmt.Errorf("os.Open() could not open %s: %w", fitsFilePath, err)
	}
	defer func(fileHandle *os.File) {
		if closeErr := fileHandle.Close(); closeErr != nil {
			fmt.Printf("could not close %s: %v\n", fitsFilePath, closeErr)
		}
	}(fileHandle)

	fitsHandle, err := fitsio.Open(fileHandle)
	if err != nil {
		return nil, nil, fmt.Errorf("fitsio.Open() failed on %s: %w", fitsFilePath, err)
	}
	defer func() {
		if closeErr := fitsHandle.Close(); closeErr != nil {
			fmt.Printf("could not close fits handle for %s: %v\n", fitsFilePath, closeErr)
		}
	}()

	primaryHDU := fitsHandle.HDU(0)
	img, ok := primaryHDU.(fitsio.Image)
	if !ok {
		return nil, nil, fmt.Errorf("primary HDU of %s is not an image", fitsFilePath)
	}
	hdr := img.Header()

	axes := hdr.Axes() // FITS order: NAXIS1 (X) first
	if len(axes) < 2 || len(axes) > 4 {
		return nil, nil, fmt.Errorf("%s has %d axes; 2, 3 or 4 expected", fitsFilePath, len(axes))
	}

	// Cube axis order is slowest first, so the FITS axis list gets reversed.
	shape := make([]int, len(axes))
	n := 1
	for i, axis := range axes {
		shape[len(axes)-1-i] = axis
		n *= axis
	}

	data, err := readPixels(img, n, hdr.Bitpix())
	if err != nil {
		return nil, nil, fmt.Errorf("could not read pixels of %s: %w", fitsFilePath, err)
	}

	cube, err := New(shape, data)
	if err != nil {
		return nil, nil, err
	}
	return cube, hdr, nil
}

func readPixels(img fitsio.Image, n, bitpix int) ([]float32, error) {
	out := make([]float32, n)
	switch bitpix {
	case 8:
		raw := make([]int8, n)
		if err := img.Read(&raw); err != nil {
			return nil, err
		}
		for i, v := range raw {
			out[i] = float32(v)
		}
	case 16:
		raw := make([]int16, n)
		if err := img.Read(&raw); err != nil {
			return nil, err
		}
		for i, v := range raw {
			out[i] = float32(v)
		}
	case 32:
		raw := make([]int32, n)
		if err := img.Read(&raw); err != nil {
			return nil, err
		}
		for i, v := range raw {
			out[i] = float32(v)
		}
	case 64:
		raw := make([]int64, n)
		if err := img.Read(&raw); err != nil {
			return nil, err
		}
		for i, v := range raw {
			out[i] = float32(v)
		}
	case -32:
		if err := img.Read(&out); err != nil {
			return nil, err
		}
	case -64:
		raw := make([]float64, n)
		if err := img.Read(&raw); err != nil {
			return nil, err
		}
		for i, v := range raw {
			out[i] = float32(v)
		}
	default:
		return nil, fmt.Errorf("unsupported BITPIX %d", bitpix)
	}
	return out, nil
}
