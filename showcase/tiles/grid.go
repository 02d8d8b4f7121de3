// Package tiles implements tile grids reacting to a moving reference point.
package tiles

import (
	"errors"
	"math/rand/v2"

	"github.com/gogpu/gg"

	"github.com/OpticalFlyer/showcase/canvas"
)

// DefaultTileSize is the tile edge length used by the built-in showcases.
const DefaultTileSize = 20

// Tile is one grid cell.
type Tile struct {
	Position gg.Point
	Size     float64
	Opacity  float64
	Padding  float64
	Color    canvas.RGB
	Hovered  canvas.RGB
}

// Center returns the centre of the tile.
func (t *Tile) Center() gg.Point {
	return t.Position.Add(gg.Pt(t.Size/2, t.Size/2))
}

// Target supplies the point tiles react to.
type Target interface {
	// Point returns the reference point for the current frame.
	Point(state *canvas.FrameState) gg.Point
	// Advance moves the target once all tiles have been updated.
	Advance()
}

// Pointer follows the live mouse position.
type Pointer struct{}

// Point returns the mouse position.
func (Pointer) Point(state *canvas.FrameState) gg.Point { return state.Mouse }

// Advance does nothing.
func (Pointer) Advance() {}

// Grid is a fixed grid of tiles styled by one Style.
type Grid struct {
	style  Style
	rest   Rest
	target Target
	tiles  []Tile
	rows   int
	cols   int

	palettes []canvas.Palette
	selected int
	rng      *rand.Rand

	last gg.Point
}

var (
	_ canvas.Object       = (*Grid)(nil)
	_ canvas.Clicker      = (*Grid)(nil)
	_ canvas.Controllable = (*Grid)(nil)
	_ canvas.Paletted     = (*Grid)(nil)
)

// Options configures a Grid.
type Options struct {
	Style    Style
	TileSize int
	// EffectSize overrides the style's reach when positive.
	EffectSize float64
	// Target defaults to the mouse pointer.
	Target Target
	// Palettes feed the Trail hovered colors. Required for Trail.
	Palettes []canvas.Palette
	Rand     *rand.Rand
}

// NewGrid lays out floor(height/size) rows of floor(width/size) tiles, all in
// the style's resting state.
func NewGrid(width, height int, opts Options) (*Grid, error) {
	if opts.TileSize <= 0 {
		return nil, errors.New("tile size must be positive")
	}
	if opts.Style == Trail && len(opts.Palettes) == 0 {
		return nil, errors.New("trail tiles need at least one palette")
	}
	if opts.Target == nil {
		opts.Target = Pointer{}
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(1, 2))
	}

	rest := opts.Style.Rest()
	if opts.EffectSize > 0 {
		rest.EffectSize = opts.EffectSize
	}
	g := &Grid{
		style:    opts.Style,
		rest:     rest,
		target:   opts.Target,
		rows:     height / opts.TileSize,
		cols:     width / opts.TileSize,
		palettes: opts.Palettes,
		rng:      opts.Rand,
	}

	size := float64(opts.TileSize)
	g.tiles = make([]Tile, 0, g.rows*g.cols)
	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			g.tiles = append(g.tiles, Tile{
				Position: gg.Pt(float64(x)*size, float64(y)*size),
				Size:     size,
				Opacity:  g.rest.Opacity,
				Padding:  g.rest.Padding,
				Color:    g.rest.Color,
			})
		}
	}
	g.recolor()
	return g, nil
}

// Style returns the grid style.
func (g *Grid) Style() Style { return g.style }

// Dimensions returns the number of rows and columns.
func (g *Grid) Dimensions() (rows, cols int) { return g.rows, g.cols }

// Tiles exposes the cells in row-major order.
func (g *Grid) Tiles() []Tile { return g.tiles }

// Tile returns the cell at row y, column x.
func (g *Grid) Tile(y, x int) *Tile { return &g.tiles[y*g.cols+x] }

// EffectSize returns the current effect size.
func (g *Grid) EffectSize() float64 { return g.rest.EffectSize }

// Target returns the reference point source.
func (g *Grid) Target() Target { return g.target }

// LastPoint returns the reference point used by the latest update.
func (g *Grid) LastPoint() gg.Point { return g.last }

// Update reacts every tile to the reference point, then advances the target.
func (g *Grid) Update(state *canvas.FrameState) {
	g.last = g.target.Point(state)
	for i := range g.tiles {
		t := &g.tiles[i]
		g.style.react(t, t.Center().Distance(g.last), g.rest)
	}
	g.target.Advance()
}

// Draw fills each tile inset by its padding.
func (g *Grid) Draw(s canvas.Surface) {
	for i := range g.tiles {
		t := &g.tiles[i]
		edge := t.Size - 2*t.Padding
		s.FillRect(t.Position.X+t.Padding, t.Position.Y+t.Padding, edge, edge, t.Color, t.Opacity)
	}
}

// Destroy releases nothing.
func (g *Grid) Destroy() {}

// Click advances the palette on Trail grids.
func (g *Grid) Click() {
	if g.style != Trail {
		return
	}
	g.NextPalette()
}

// NextPalette selects the next palette and rerolls every hovered color.
func (g *Grid) NextPalette() {
	if len(g.palettes) == 0 {
		return
	}
	g.selected = (g.selected + 1) % len(g.palettes)
	g.recolor()
}

// Palette returns the index of the selected palette.
func (g *Grid) Palette() int { return g.selected }

// SetPalette selects a palette by index, wrapping around.
func (g *Grid) SetPalette(i int) {
	if len(g.palettes) == 0 {
		return
	}
	g.selected = ((i % len(g.palettes)) + len(g.palettes)) % len(g.palettes)
	g.recolor()
}

func (g *Grid) recolor() {
	if len(g.palettes) == 0 {
		return
	}
	p := g.palettes[g.selected]
	for i := range g.tiles {
		g.tiles[i].Hovered = p.Random(g.rng)
	}
}

// Controls exposes the effect size and, for Trail, the palette and path
// jitter.
func (g *Grid) Controls() []canvas.Control {
	controls := []canvas.Control{{
		Kind: canvas.ControlRange, Key: "effect-size", Label: "Effect size",
		Min: 1, Max: 10, Step: 1, Value: g.rest.EffectSize,
		OnChange: func(v float64) { g.rest.EffectSize = v },
	}}
	if g.style != Trail {
		return controls
	}
	if j, ok := g.target.(Jitterer); ok {
		controls = append(controls, canvas.Control{
			Kind: canvas.ControlRange, Key: "randomness", Label: "Path randomness",
			Min: 0, Max: 50, Step: 1, Value: j.Randomness(),
			OnChange: j.SetRandomness,
		})
	}
	return append(controls, canvas.Control{
		Kind: canvas.ControlButton, Key: "palette", Label: "Next palette",
		OnClick: g.NextPalette,
	})
}

// Jitterer is a Target with adjustable random jitter.
type Jitterer interface {
	Target
	Randomness() float64
	SetRandomness(float64)
}
