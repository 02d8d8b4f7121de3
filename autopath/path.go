// Package autopath samples a path by arc length and moves a cursor along it
// at speeds interpolated from a speed map.
package autopath

import (
	"fmt"
	"math"
	"sort"

	"github.com/gogpu/gg"
)

// curveSteps is the number of arc length table entries per curve segment.
const curveSteps = 64

// curve is implemented by gg.Line, gg.QuadBez and gg.CubicBez.
type curve interface {
	Eval(t float64) gg.Point
}

// segment is one drawable piece of a path with its arc length table.
// table holds the cumulative length at t = i/(len(table)-1) and offset the
// path length before the segment.
type segment struct {
	curve  curve
	offset float64
	length float64
	table  []float64
}

func newSegment(c curve, steps int, offset float64) segment {
	s := segment{curve: c, offset: offset, table: make([]float64, steps+1)}
	prev := c.Eval(0)
	for i := 1; i <= steps; i++ {
		p := c.Eval(float64(i) / float64(steps))
		s.table[i] = s.table[i-1] + prev.Distance(p)
		prev = p
	}
	s.length = s.table[steps]
	return s
}

// pointAt returns the point d along the segment.
func (s *segment) pointAt(d float64) gg.Point {
	steps := len(s.table) - 1
	i := sort.SearchFloat64s(s.table, d)
	if i <= 0 {
		return s.curve.Eval(0)
	}
	if i > steps {
		return s.curve.Eval(1)
	}
	span := s.table[i] - s.table[i-1]
	frac := 0.0
	if span > 0 {
		frac = (d - s.table[i-1]) / span
	}
	return s.curve.Eval((float64(i-1) + frac) / float64(steps))
}

// Path is a parsed path with arc length parametrisation.
type Path struct {
	shape    *gg.Path
	segments []segment
	origin   gg.Point
	length   float64
}

// ParseSVG parses SVG path data: M, L, H, V, C, S, Q, T, A and Z in absolute
// and relative form.
func ParseSVG(d string) (*Path, error) {
	shape, err := parsePathData(d)
	if err != nil {
		return nil, fmt.Errorf("parse path data: %w", err)
	}
	return NewPath(shape), nil
}

// FromPoints builds an open polyline path.
func FromPoints(points []gg.Point) *Path {
	shape := gg.NewPath()
	for i, p := range points {
		if i == 0 {
			shape.MoveTo(p.X, p.Y)
			continue
		}
		shape.LineTo(p.X, p.Y)
	}
	return NewPath(shape)
}

// NewPath measures shape. Moves between subpaths add no length; a close adds
// the line back to the subpath start.
func NewPath(shape *gg.Path) *Path {
	p := &Path{shape: shape}
	var current, start gg.Point
	started := false

	add := func(c curve, steps int, end gg.Point) {
		seg := newSegment(c, steps, p.length)
		p.segments = append(p.segments, seg)
		p.length += seg.length
		current = end
	}

	shape.Iterate(func(verb gg.PathVerb, coords []float64) {
		switch verb {
		case gg.MoveTo:
			current = gg.Pt(coords[0], coords[1])
			start = current
			if !started {
				p.origin = current
				started = true
			}
		case gg.LineTo:
			end := gg.Pt(coords[0], coords[1])
			add(gg.NewLine(current, end), 1, end)
		case gg.QuadTo:
			end := gg.Pt(coords[2], coords[3])
			add(gg.NewQuadBez(current, gg.Pt(coords[0], coords[1]), end), curveSteps, end)
		case gg.CubicTo:
			end := gg.Pt(coords[4], coords[5])
			add(gg.NewCubicBez(current, gg.Pt(coords[0], coords[1]), gg.Pt(coords[2], coords[3]), end), curveSteps, end)
		case gg.Close:
			if current != start {
				add(gg.NewLine(current, start), 1, start)
			}
			current = start
		}
	})
	return p
}

// Shape returns the underlying gg path.
func (p *Path) Shape() *gg.Path { return p.shape }

// Length returns the total arc length.
func (p *Path) Length() float64 { return p.length }

// PointAt returns the point at arc length d, clamped to the path ends.
func (p *Path) PointAt(d float64) gg.Point {
	if len(p.segments) == 0 {
		return p.origin
	}
	d = math.Max(0, math.Min(d, p.length))
	i := sort.Search(len(p.segments), func(i int) bool {
		s := &p.segments[i]
		return s.offset+s.length >= d
	})
	if i == len(p.segments) {
		i--
	}
	s := &p.segments[i]
	return s.pointAt(d - s.offset)
}

// Sample returns floor(Length)+1 points, one at every whole unit of length.
func Sample(p *Path) []gg.Point {
	n := int(math.Floor(p.length))
	points := make([]gg.Point, n+1)
	for i := range points {
		points[i] = p.PointAt(float64(i))
	}
	return points
}
