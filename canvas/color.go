package canvas

import (
	"errors"
	"fmt"
	"image/color"
	"math/rand/v2"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrUnknownPalette is returned when a palette name is not registered.
var ErrUnknownPalette = errors.New("unknown color palette")

// RGB is a color with integer channels. Channels may leave 0..255 while an
// effect steps them; rendering clamps.
type RGB struct {
	R, G, B int
}

// Black is the resting tile color.
var Black = RGB{}

// RGBA converts to a clamped color with the given alpha in [0,1].
func (c RGB) RGBA(alpha float64) color.RGBA {
	a := Clamp(alpha, 0, 1)
	return color.RGBA{
		R: uint8(float64(clampChannel(c.R)) * a),
		G: uint8(float64(clampChannel(c.G)) * a),
		B: uint8(float64(clampChannel(c.B)) * a),
		A: uint8(255 * a),
	}
}

// Color converts to an opaque color.Color.
func (c RGB) Color() color.Color {
	return c.RGBA(1)
}

// Float returns the clamped channels scaled to [0,1].
func (c RGB) Float() (r, g, b float64) {
	return float64(clampChannel(c.R)) / 255, float64(clampChannel(c.G)) / 255, float64(clampChannel(c.B)) / 255
}

// Colorful converts to a go-colorful color for blending.
func (c RGB) Colorful() colorful.Color {
	r, g, b := c.Float()
	return colorful.Color{R: r, G: g, B: b}
}

// ParseHex parses "#rrggbb" or "#rgb".
func ParseHex(s string) (RGB, error) {
	col, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, fmt.Errorf("parsing color %q: %w", s, err)
	}
	r, g, b := col.RGB255()
	return RGB{R: int(r), G: int(g), B: int(b)}, nil
}

func clampChannel(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// Palette is an ordered list of colors.
type Palette []RGB

// Random picks a color from the palette.
func (p Palette) Random(rng *rand.Rand) RGB {
	return p[rng.IntN(len(p))]
}

// Palettes holds named palettes in a fixed cycling order.
type Palettes struct {
	names  []string
	byName map[string]Palette
}

// NewPalettes returns the built-in palettes.
func NewPalettes() *Palettes {
	p := &Palettes{byName: make(map[string]Palette)}
	p.Add("warm", Palette{{255, 204, 13}, {255, 115, 38}, {255, 25, 77}, {191, 38, 105}, {112, 42, 140}})
	p.Add("flat", Palette{{44, 62, 80}, {231, 76, 60}, {236, 240, 241}, {52, 152, 219}, {41, 128, 185}})
	p.Add("vintage", Palette{{176, 30, 30}, {52, 48, 143}, {235, 198, 42}, {224, 165, 47}, {197, 63, 45}})
	p.Add("pink", Palette{{177, 7, 110}, {113, 5, 70}, {240, 10, 149}, {252, 10, 157}, {214, 9, 133}})
	p.Add("green", Palette{{13, 28, 51}, {23, 55, 60}, {43, 104, 50}, {79, 147, 0}, {161, 215, 0}})
	p.Add("cold", Palette{{0, 254, 255}, {0, 200, 255}, {0, 155, 223}, {0, 91, 255}, {0, 36, 255}})
	return p
}

// Add registers or replaces a palette. New names go to the end of the cycle.
func (p *Palettes) Add(name string, colors Palette) {
	if _, ok := p.byName[name]; !ok {
		p.names = append(p.names, name)
	}
	p.byName[name] = colors
}

// Get returns the palette registered under name.
func (p *Palettes) Get(name string) (Palette, error) {
	pal, ok := p.byName[name]
	if !ok || len(pal) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPalette, name)
	}
	return pal, nil
}

// Names returns the cycling order.
func (p *Palettes) Names() []string {
	return p.names
}

// Cycle resolves names into palettes, keeping their order.
func (p *Palettes) Cycle(names []string) ([]Palette, error) {
	if len(names) == 0 {
		names = p.names
	}
	cycle := make([]Palette, 0, len(names))
	for _, name := range names {
		pal, err := p.Get(name)
		if err != nil {
			return nil, err
		}
		cycle = append(cycle, pal)
	}
	return cycle, nil
}
