// Package raster renders showcases off screen with gg's software rasterizer.
package raster

import (
	"fmt"
	"image"
	"io"

	"github.com/gogpu/gg"

	"github.com/OpticalFlyer/showcase/canvas"
)

// Surface is a canvas.Surface drawing into a gg context. Drawing calls
// cannot report errors, so the first failure is kept for Err.
type Surface struct {
	dc  *gg.Context
	err error
}

var _ canvas.Surface = (*Surface)(nil)

// New creates a transparent width x height surface.
func New(width, height int) *Surface {
	return &Surface{dc: gg.NewContext(width, height)}
}

// Err returns the first drawing error.
func (s *Surface) Err() error {
	return s.err
}

func (s *Surface) check(op string, err error) {
	if err != nil && s.err == nil {
		s.err = fmt.Errorf("%s: %w", op, err)
	}
}

func (s *Surface) Size() (int, int) {
	return s.dc.Width(), s.dc.Height()
}

func (s *Surface) Clear() {
	s.dc.Clear()
}

// Fill paints the whole surface with an opaque color, e.g. a page
// background before the first frame.
func (s *Surface) Fill(c canvas.RGB) {
	r, g, b := c.Float()
	s.dc.ClearWithColor(gg.RGBA2(r, g, b, 1))
}

func (s *Surface) setColor(c canvas.RGB, alpha float64) {
	r, g, b := c.Float()
	s.dc.SetRGBA(r, g, b, canvas.Clamp(alpha, 0, 1))
}

func (s *Surface) FillRect(x, y, w, h float64, c canvas.RGB, alpha float64) {
	if w <= 0 || h <= 0 {
		return
	}
	s.setColor(c, alpha)
	s.dc.DrawRectangle(x, y, w, h)
	s.check("fill rect", s.dc.Fill())
}

func (s *Surface) StrokeRect(x, y, w, h, lineWidth float64, c canvas.RGB, alpha float64) {
	if lineWidth <= 0 {
		return
	}
	s.setColor(c, alpha)
	s.dc.SetLineWidth(lineWidth)
	s.dc.SetLineJoin(gg.LineJoinMiter)
	s.dc.DrawRectangle(x, y, w, h)
	s.check("stroke rect", s.dc.Stroke())
}

func (s *Surface) StrokeCubic(p0, p1, p2, p3 gg.Point, lineWidth float64, c canvas.RGB) {
	s.setColor(c, 1)
	s.dc.SetLineWidth(lineWidth)
	s.dc.MoveTo(p0.X, p0.Y)
	s.dc.CubicTo(p1.X, p1.Y, p2.X, p2.Y, p3.X, p3.Y)
	s.check("stroke cubic", s.dc.Stroke())
}

func (s *Surface) StrokePolyline(points []gg.Point, lineWidth float64, c canvas.RGB, alpha float64) {
	if len(points) < 2 {
		return
	}
	s.setColor(c, alpha)
	s.dc.SetLineWidth(lineWidth)
	s.dc.SetLineJoin(gg.LineJoinRound)
	s.dc.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		s.dc.LineTo(p.X, p.Y)
	}
	s.check("stroke polyline", s.dc.Stroke())
}

// Image returns the current pixels.
func (s *Surface) Image() image.Image {
	return s.dc.Image()
}

// SavePNG writes the current pixels to path.
func (s *Surface) SavePNG(path string) error {
	return s.dc.SavePNG(path)
}

// EncodePNG writes the current pixels as PNG.
func (s *Surface) EncodePNG(w io.Writer) error {
	return s.dc.EncodePNG(w)
}

// Close releases the context.
func (s *Surface) Close() error {
	return s.dc.Close()
}
