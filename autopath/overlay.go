package autopath

import (
	"github.com/OpticalFlyer/showcase/canvas"
)

const markerSize = 6

// Overlay strokes the sampled path and marks the cursor.
type Overlay struct {
	cursor *Cursor
	color  canvas.RGB
	alpha  float64
}

var _ canvas.Object = (*Overlay)(nil)

// NewOverlay draws c's path in color at alpha.
func NewOverlay(c *Cursor, color canvas.RGB, alpha float64) *Overlay {
	return &Overlay{cursor: c, color: color, alpha: alpha}
}

func (o *Overlay) Update(*canvas.FrameState) {}

func (o *Overlay) Draw(s canvas.Surface) {
	s.StrokePolyline(o.cursor.Samples(), 1, o.color, o.alpha)
	p := o.cursor.Point(nil)
	s.FillRect(p.X-markerSize/2, p.Y-markerSize/2, markerSize, markerSize, o.color, 1)
}

func (o *Overlay) Destroy() {}
