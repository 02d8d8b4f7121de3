// Package line animates a cubic bezier whose free end falls under gravity
// while being pulled back toward its anchor.
package line

import (
	"math"

	"github.com/OpticalFlyer/showcase/canvas"
	"github.com/gogpu/gg"
)

const (
	TerminalVelocity = 2
	Width            = 3
	// initialReach is how far left of the anchor the free end starts.
	initialReach = 300
)

// Gravity is added to the free end's velocity each frame until it reaches
// TerminalVelocity.
var Gravity = gg.Pt(0, 0.1)

// Line is a bezier anchored at the top centre of the canvas.
type Line struct {
	points   [4]gg.Point
	velocity gg.Point
	force    gg.Point
	color    canvas.RGB
}

var _ canvas.Object = (*Line)(nil)

// New creates a line for a canvas of the given size.
func New(width, height int) *Line {
	cx := float64(width) / 2
	return &Line{
		points: [4]gg.Point{
			gg.Pt(cx, 0),
			gg.Pt(cx, 0),
			gg.Pt(cx, float64(height)/5),
			gg.Pt(cx-initialReach, 0),
		},
		color: canvas.Black,
	}
}

// Points returns the four bezier control points.
func (l *Line) Points() [4]gg.Point {
	return l.points
}

// Velocity returns the free end's velocity.
func (l *Line) Velocity() gg.Point {
	return l.velocity
}

// Verticalness rates the last line force direction: 1 when vertical, 0 when
// horizontal.
func (l *Line) Verticalness() float64 {
	return normalizeHorizontalAngle(math.Atan2(l.force.Y, l.force.X))
}

func (l *Line) Update(*canvas.FrameState) {
	force := l.points[0].Sub(l.points[3]).Normalize()

	if l.velocity.Length() < TerminalVelocity {
		l.velocity = l.velocity.Add(Gravity)
	}
	force = force.Mul(l.velocity.Length())
	l.force = force

	l.velocity = l.velocity.Add(force)
	l.points[3] = l.points[3].Add(l.velocity)
}

func (l *Line) Draw(s canvas.Surface) {
	s.StrokeCubic(l.points[0], l.points[1], l.points[2], l.points[3], Width, l.color)
}

func (l *Line) Destroy() {}

func normalizeHorizontalAngle(angle float64) float64 {
	return math.Abs(math.Abs(0.5-math.Abs(angle/math.Pi))*2 - 1)
}
