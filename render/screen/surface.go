// Package screen draws showcases into Ebiten images.
package screen

import (
	"image/color"
	"log"

	"github.com/gogpu/gg"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/OpticalFlyer/showcase/canvas"
)

// Surface is a canvas.Surface backed by an offscreen Ebiten image, one per
// showcase card.
type Surface struct {
	img   *ebiten.Image
	white *ebiten.Image
	vs    []ebiten.Vertex
	is    []uint16
}

var _ canvas.Surface = (*Surface)(nil)

// New allocates a width x height card image.
func New(width, height int) *Surface {
	white := ebiten.NewImage(1, 1)
	white.Fill(color.White)
	return &Surface{
		img:   ebiten.NewImage(width, height),
		white: white,
	}
}

// Image returns the card image for compositing.
func (s *Surface) Image() *ebiten.Image {
	return s.img
}

func (s *Surface) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

func (s *Surface) Clear() {
	s.img.Clear()
}

func (s *Surface) FillRect(x, y, w, h float64, c canvas.RGB, alpha float64) {
	if w <= 0 || h <= 0 {
		return
	}
	vector.DrawFilledRect(s.img, float32(x), float32(y), float32(w), float32(h), c.RGBA(alpha), false)
}

// StrokeRect fills the band a centred stroke covers, so wide lines get
// square corners like a 2D canvas.
func (s *Surface) StrokeRect(x, y, w, h, lineWidth float64, c canvas.RGB, alpha float64) {
	if lineWidth <= 0 || alpha <= 0 {
		return
	}
	data, tris, err := rectRing(x, y, w, h, lineWidth)
	if err != nil {
		log.Printf("[screen] triangulate frame: %v", err)
		return
	}
	s.vs, s.is = s.vs[:0], s.is[:0]
	for i := 0; i < len(data); i += 2 {
		s.vs = append(s.vs, ebiten.Vertex{DstX: float32(data[i]), DstY: float32(data[i+1])})
	}
	for _, t := range tris {
		s.is = append(s.is, uint16(t))
	}
	s.drawTriangles(c, alpha)
}

func (s *Surface) StrokeCubic(p0, p1, p2, p3 gg.Point, lineWidth float64, c canvas.RGB) {
	var path vector.Path
	path.MoveTo(float32(p0.X), float32(p0.Y))
	path.CubicTo(float32(p1.X), float32(p1.Y), float32(p2.X), float32(p2.Y), float32(p3.X), float32(p3.Y))
	s.stroke(&path, lineWidth, c, 1)
}

func (s *Surface) StrokePolyline(points []gg.Point, lineWidth float64, c canvas.RGB, alpha float64) {
	if len(points) < 2 {
		return
	}
	var path vector.Path
	path.MoveTo(float32(points[0].X), float32(points[0].Y))
	for _, p := range points[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	s.stroke(&path, lineWidth, c, alpha)
}

func (s *Surface) stroke(path *vector.Path, lineWidth float64, c canvas.RGB, alpha float64) {
	s.vs, s.is = path.AppendVerticesAndIndicesForStroke(s.vs[:0], s.is[:0], &vector.StrokeOptions{
		Width:    float32(lineWidth),
		LineJoin: vector.LineJoinRound,
	})
	s.drawTriangles(c, alpha)
}

func (s *Surface) drawTriangles(c canvas.RGB, alpha float64) {
	r, g, b := c.Float()
	a := float32(canvas.Clamp(alpha, 0, 1))
	for i := range s.vs {
		s.vs[i].SrcX, s.vs[i].SrcY = 0.5, 0.5
		s.vs[i].ColorR = float32(r)
		s.vs[i].ColorG = float32(g)
		s.vs[i].ColorB = float32(b)
		s.vs[i].ColorA = a
	}
	s.img.DrawTriangles(s.vs, s.is, s.white, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}
