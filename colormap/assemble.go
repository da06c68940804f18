package colormap

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"sync"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/qdm12/reprint"
)

// GamutMode selects what to do with LCH samples that have no sRGB
// representation. Clip pulls each offending sample back to the largest
// in-gamut chroma at its L and H; Crop rescales the chroma of the whole map
// by the single worst-case ratio so no sample ever leaves the gamut.
type GamutMode string

const (
	Clip GamutMode = "clip"
	Crop GamutMode = "crop"
)

// Target selects where a finished map goes: the in-process registry, a PNG
// swatch strip on disk, or both.
type Target string

const (
	TargetRegister Target = "register"
	TargetPNG      Target = "png"
)

const lutSize = 256

// Colormap is a finished, named colour lookup table.
type Colormap struct {
	Name   string
	Mode   GamutMode
	Points ControlPoints // the (deep copied) control points the map was built from
	lut    []color.RGBA
}

// At returns the colour for a normalized value in [0,1]; values outside are
// clamped to the ends of the table.
func (m *Colormap) At(v float64) color.RGBA {
	i := int(v * float64(lutSize-1))
	if i < 0 {
		i = 0
	}
	if i > lutSize-1 {
		i = lutSize - 1
	}
	return m.lut[i]
}

// Len returns the number of table entries.
func (m *Colormap) Len() int { return len(m.lut) }

// Registry holds finished maps by name. Safe for concurrent use.
type Registry struct {
	mu   sync.Mutex
	maps map[string]*Colormap
}

// DefaultRegistry is where MakeSegmented registers maps unless told
// otherwise.
var DefaultRegistry = NewRegistry()

func NewRegistry() *Registry {
	return &Registry{maps: make(map[string]*Colormap)}
}

func (r *Registry) add(m *Colormap) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.maps[m.Name] = m
}

// Lookup returns the registered map with the given name.
func (r *Registry) Lookup(name string) (*Colormap, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.maps[name]
	return m, ok
}

// Names returns the registered map names (unordered).
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var names []string
	for name := range r.maps {
		names = append(names, name)
	}
	return names
}

// MakeOptions configures MakeSegmented. Zero values mean: clip mode only,
// register only, current directory for PNGs, the default registry.
type MakeOptions struct {
	Modes    []GamutMode
	Targets  []Target
	PNGDir   string
	Registry *Registry
}

// MakeSegmented turns control points into one finished map per requested
// gamut mode. With a single mode the map keeps the given name; with both
// modes the names get _clip/_crop suffixes so they can coexist in the
// registry.
func MakeSegmented(name string, cp ControlPoints, opt MakeOptions) ([]*Colormap, error) {
	if err := cp.Validate(); err != nil {
		return nil, err
	}

	modes := opt.Modes
	if len(modes) == 0 {
		modes = []GamutMode{Clip}
	}
	targets := opt.Targets
	if len(targets) == 0 {
		targets = []Target{TargetRegister}
	}
	registry := opt.Registry
	if registry == nil {
		registry = DefaultRegistry
	}
	pngDir := opt.PNGDir
	if pngDir == "" {
		pngDir = "."
	}

	if len(modes) > 1 {
		fmt.Printf("Warning: more than one gamut mode requested for %q; "+
			"the finished maps will be named with _clip and _crop suffixes.\n", name)
	}

	for _, mode := range modes {
		if mode != Clip && mode != Crop {
			return nil, fmt.Errorf("%w: gamut mode must be %q or %q, got %q",
				ErrInvalidConfiguration, Clip, Crop, mode)
		}
	}

	// Registered maps must not change when the caller later reuses the
	// control point slices, so each map carries its own deep copy.
	var stored ControlPoints
	if err := reprint.FromTo(&cp, &stored); err != nil {
		return nil, fmt.Errorf("could not copy control points: %w", err)
	}

	var made []*Colormap
	for _, mode := range modes {
		mapName := name
		if len(modes) > 1 {
			mapName = name + "_" + string(mode)
		}
		m := &Colormap{
			Name:   mapName,
			Mode:   mode,
			Points: stored,
			lut:    buildLUT(cp, mode),
		}
		for _, target := range targets {
			switch target {
			case TargetRegister:
				registry.add(m)
			case TargetPNG:
				if err := writeSwatch(filepath.Join(pngDir, mapName+".png"), m); err != nil {
					return nil, err
				}
			default:
				return nil, fmt.Errorf("%w: unknown target %q", ErrInvalidConfiguration, target)
			}
		}
		made = append(made, m)
	}
	return made, nil
}

func buildLUT(cp ControlPoints, mode GamutMode) []color.RGBA {
	l := make([]float64, lutSize)
	c := make([]float64, lutSize)
	h := make([]float64, lutSize)
	for i := 0; i < lutSize; i++ {
		x := float64(i) / float64(lutSize-1)
		l[i] = interpAt(cp.Pos, cp.L, x)
		c[i] = interpAt(cp.Pos, cp.C, x)
		h[i] = interpAt(cp.Pos, cp.H, x)
	}

	if mode == Crop {
		// One worst-case ratio scales the chroma of every sample, keeping
		// relative colourfulness intact across the map.
		scale := 1.0
		for i := 0; i < lutSize; i++ {
			cmax := maxChroma(l[i], h[i])
			if c[i] > cmax && c[i] > 0 {
				if r := cmax / c[i]; r < scale {
					scale = r
				}
			}
		}
		for i := 0; i < lutSize; i++ {
			c[i] *= scale
		}
	}

	lut := make([]color.RGBA, lutSize)
	for i := 0; i < lutSize; i++ {
		ci := c[i]
		if mode == Clip {
			if cmax := maxChroma(l[i], h[i]); ci > cmax {
				ci = cmax
			}
		}
		col := colorful.LuvLCh(l[i]/100.0, ci/100.0, h[i])
		if !col.IsValid() {
			col = col.Clamped()
		}
		r, g, b := col.RGB255()
		lut[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return lut
}

// maxChroma finds the largest chroma (0-100 scale) still inside the sRGB
// gamut for the given luminosity and hue, by bisection on the validity of
// the converted colour.
func maxChroma(l, h float64) float64 {
	lo, hi := 0.0, 200.0
	for i := 0; i < 40; i++ {
		mid := 0.5 * (lo + hi)
		if colorful.LuvLCh(l/100.0, mid/100.0, h).IsValid() {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo
}

// writeSwatch saves a horizontal strip of the table so a map can be eyeballed
// outside the viewer.
func writeSwatch(path string, m *Colormap) error {
	const height = 32
	img := image.NewRGBA(image.Rect(0, 0, lutSize, height))
	for x := 0; x < lutSize; x++ {
		col := m.lut[x]
		for y := 0; y < height; y++ {
			img.SetRGBA(x, y, col)
		}
	}

	fileHandle, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create %s: %w", path, err)
	}
	defer func() {
		if closeErr := fileHandle.Close(); closeErr != nil {
			fmt.Printf("could not close %s: %v\n", path, closeErr)
		}
	}()

	if err := png.Encode(fileHandle, img); err != nil {
		return fmt.Errorf("could not encode %s: %w", path, err)
	}
	return nil
}
