// Package background provides full-canvas showcase objects: a color cycling
// fill and a set of nested pulsing frames.
package background

import "github.com/OpticalFlyer/showcase/canvas"

// DefaultStops is the cycle used when none is configured.
var DefaultStops = []canvas.RGB{
	{R: 0, G: 255, B: 255},
	{R: 255, G: 0, B: 255},
	{R: 255, G: 255, B: 0},
}

// ColorCycle fills the canvas with a color walking through its stops one
// channel unit per frame.
type ColorCycle struct {
	stops  []canvas.RGB
	color  canvas.RGB
	target int
	width  int
	height int
}

var _ canvas.Object = (*ColorCycle)(nil)

// NewColorCycle starts at the first stop heading for the second. With no
// stops it uses DefaultStops.
func NewColorCycle(stops ...canvas.RGB) *ColorCycle {
	if len(stops) == 0 {
		stops = DefaultStops
	}
	stops = append([]canvas.RGB(nil), stops...)
	return &ColorCycle{
		stops:  stops,
		color:  stops[0],
		target: 1 % len(stops),
	}
}

// Color returns the current fill color.
func (c *ColorCycle) Color() canvas.RGB {
	return c.color
}

// Target returns the index of the stop being approached.
func (c *ColorCycle) Target() int {
	return c.target
}

func (c *ColorCycle) Update(state *canvas.FrameState) {
	c.width = state.Width
	c.height = state.Height

	target := c.stops[c.target]
	c.color.R = stepToward(c.color.R, target.R)
	c.color.G = stepToward(c.color.G, target.G)
	c.color.B = stepToward(c.color.B, target.B)

	if c.color == target {
		c.target = (c.target + 1) % len(c.stops)
	}
}

func (c *ColorCycle) Draw(s canvas.Surface) {
	s.FillRect(0, 0, float64(c.width), float64(c.height), c.color, 1)
}

func (c *ColorCycle) Destroy() {}

func stepToward(v, target int) int {
	switch {
	case v < target:
		return v + 1
	case v > target:
		return v - 1
	}
	return v
}
