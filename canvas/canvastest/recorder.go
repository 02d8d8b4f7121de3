// Package canvastest provides a recording Surface for tests.
package canvastest

import (
	"fmt"

	"github.com/gogpu/gg"

	"github.com/OpticalFlyer/showcase/canvas"
)

// Op is one recorded draw call.
type Op struct {
	Name      string
	X, Y      float64
	W, H      float64
	LineWidth float64
	Color     canvas.RGB
	Alpha     float64
	Points    []gg.Point
}

func (o Op) String() string {
	return fmt.Sprintf("%s(%.2f,%.2f %.2fx%.2f)", o.Name, o.X, o.Y, o.W, o.H)
}

// Recorder is a canvas.Surface that keeps every call.
type Recorder struct {
	Width, Height int
	Ops           []Op
	Clears        int
}

var _ canvas.Surface = (*Recorder)(nil)

// New returns a recorder of the given size.
func New(width, height int) *Recorder {
	return &Recorder{Width: width, Height: height}
}

func (r *Recorder) Size() (int, int) { return r.Width, r.Height }

func (r *Recorder) Clear() {
	r.Clears++
	r.Ops = r.Ops[:0]
}

func (r *Recorder) FillRect(x, y, w, h float64, c canvas.RGB, alpha float64) {
	r.Ops = append(r.Ops, Op{Name: "fill", X: x, Y: y, W: w, H: h, Color: c, Alpha: alpha})
}

func (r *Recorder) StrokeRect(x, y, w, h, lineWidth float64, c canvas.RGB, alpha float64) {
	r.Ops = append(r.Ops, Op{Name: "stroke", X: x, Y: y, W: w, H: h, LineWidth: lineWidth, Color: c, Alpha: alpha})
}

func (r *Recorder) StrokeCubic(p0, p1, p2, p3 gg.Point, lineWidth float64, c canvas.RGB) {
	r.Ops = append(r.Ops, Op{Name: "cubic", LineWidth: lineWidth, Color: c, Alpha: 1, Points: []gg.Point{p0, p1, p2, p3}})
}

func (r *Recorder) StrokePolyline(points []gg.Point, lineWidth float64, c canvas.RGB, alpha float64) {
	r.Ops = append(r.Ops, Op{Name: "polyline", LineWidth: lineWidth, Color: c, Alpha: alpha, Points: append([]gg.Point(nil), points...)})
}

// Reset drops recorded calls.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}
