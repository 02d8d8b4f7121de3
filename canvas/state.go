package canvas

import "github.com/gogpu/gg"

// Rect is the canvas bounding rect in page coordinates.
type Rect struct {
	Left, Top float64
}

// FrameState is the per-frame information shared with every canvas object.
// The host mutates it between frames from pointer and scroll events and
// increments Ticks once per frame.
type FrameState struct {
	Width  int
	Height int
	Mouse  gg.Point
	Ticks  int
	Bounds Rect
}

// offscreenMouse keeps the pointer away from every effect until the first move.
var offscreenMouse = gg.Pt(-100, -100)

// NewFrameState creates the state for a canvas of the given size.
func NewFrameState(width, height int) *FrameState {
	return &FrameState{
		Width:  width,
		Height: height,
		Mouse:  offscreenMouse,
	}
}
