package geo

import (
	"math"

	"github.com/gogpu/gg"
)

// Bounds is an axis aligned box.
type Bounds struct {
	Min, Max gg.Point
}

// BoundsOf returns the box enclosing points. It is empty for no points.
func BoundsOf(points []gg.Point) Bounds {
	if len(points) == 0 {
		return Bounds{}
	}
	b := Bounds{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		b.Min.X = math.Min(b.Min.X, p.X)
		b.Min.Y = math.Min(b.Min.Y, p.Y)
		b.Max.X = math.Max(b.Max.X, p.X)
		b.Max.Y = math.Max(b.Max.Y, p.Y)
	}
	return b
}

// Width of the box.
func (b Bounds) Width() float64 { return b.Max.X - b.Min.X }

// Height of the box.
func (b Bounds) Height() float64 { return b.Max.Y - b.Min.Y }

// Fit scales and centres points into a width x height canvas leaving margin
// on every side. The aspect ratio is kept. A degenerate outline is placed at
// the canvas centre.
func Fit(points []gg.Point, width, height, margin float64) []gg.Point {
	b := BoundsOf(points)
	availW := math.Max(width-2*margin, 0)
	availH := math.Max(height-2*margin, 0)

	var s float64
	switch {
	case b.Width() > 0 && b.Height() > 0:
		s = math.Min(availW/b.Width(), availH/b.Height())
	case b.Width() > 0:
		s = availW / b.Width()
	case b.Height() > 0:
		s = availH / b.Height()
	}

	center := gg.Pt(width/2, height/2)
	mid := b.Min.Lerp(b.Max, 0.5)
	out := make([]gg.Point, len(points))
	for i, p := range points {
		out[i] = center.Add(p.Sub(mid).Mul(s))
	}
	return out
}
