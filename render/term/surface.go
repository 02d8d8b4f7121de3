// Package term shows showcases in a terminal. Frames are rasterized at
// canvas resolution and downsampled onto half-block cells, two vertical
// pixels per cell.
package term

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/OpticalFlyer/showcase/canvas"
	"github.com/OpticalFlyer/showcase/render/raster"
)

// upperHalf draws the top pixel as foreground and the bottom as background.
const upperHalf = '▀'

// Surface is a canvas.Surface whose frames are presented on a tcell screen.
type Surface struct {
	*raster.Surface

	cols       int
	rows       int
	scale      int
	background colorful.Color
	pix        []colorful.Color
}

var _ canvas.Surface = (*Surface)(nil)

// New creates a surface covering cols x rows cells. Each cell pixel stands
// for a scale x scale block of canvas pixels, so the canvas measures
// cols*scale by 2*rows*scale.
func New(cols, rows, scale int, background canvas.RGB) *Surface {
	if scale < 1 {
		scale = 1
	}
	return &Surface{
		Surface:    raster.New(cols*scale, 2*rows*scale),
		cols:       cols,
		rows:       rows,
		scale:      scale,
		background: background.Colorful(),
		pix:        make([]colorful.Color, cols*rows*2),
	}
}

// Cells returns the covered cell area.
func (s *Surface) Cells() (cols, rows int) {
	return s.cols, s.rows
}

// Scale returns the canvas pixels per cell pixel along each axis.
func (s *Surface) Scale() int {
	return s.scale
}

// CanvasPoint converts a cell position to canvas coordinates at the center
// of the cell's top pixel.
func (s *Surface) CanvasPoint(col, row int) (x, y float64) {
	half := float64(s.scale) / 2
	return float64(col*s.scale) + half, float64(2*row*s.scale) + half
}

// Pixel returns the downsampled color of cell pixel (x, y) as of the last
// Present.
func (s *Surface) Pixel(x, y int) canvas.RGB {
	if x < 0 || y < 0 || x >= s.cols || y >= 2*s.rows {
		return canvas.Black
	}
	r, g, b := s.pix[y*s.cols+x].Clamped().RGB255()
	return canvas.RGB{R: int(r), G: int(g), B: int(b)}
}

// Present downsamples the current frame and writes it to screen with the
// top-left cell at (x0, y0). The caller shows the screen.
func (s *Surface) Present(screen tcell.Screen, x0, y0 int) {
	s.downsample()
	for row := 0; row < s.rows; row++ {
		for col := 0; col < s.cols; col++ {
			top := s.pix[2*row*s.cols+col]
			bottom := s.pix[(2*row+1)*s.cols+col]
			style := tcell.StyleDefault.
				Foreground(cellColor(top)).
				Background(cellColor(bottom))
			screen.SetContent(x0+col, y0+row, upperHalf, nil, style)
		}
	}
}

// downsample averages every scale x scale block and composites it over the
// background.
func (s *Surface) downsample() {
	img := s.Image()
	n := uint64(s.scale * s.scale)
	for py := 0; py < 2*s.rows; py++ {
		for px := 0; px < s.cols; px++ {
			var r, g, b, a uint64
			for y := py * s.scale; y < (py+1)*s.scale; y++ {
				for x := px * s.scale; x < (px+1)*s.scale; x++ {
					cr, cg, cb, ca := img.At(x, y).RGBA()
					r += uint64(cr)
					g += uint64(cg)
					b += uint64(cb)
					a += uint64(ca)
				}
			}
			s.pix[py*s.cols+px] = composite(s.background, r/n, g/n, b/n, a/n)
		}
	}
}

// composite lays a premultiplied 16-bit color over an opaque background.
func composite(background colorful.Color, r, g, b, a uint64) colorful.Color {
	if a == 0 {
		return background
	}
	const opaque = 0xffff
	col := colorful.Color{
		R: float64(r) / float64(a),
		G: float64(g) / float64(a),
		B: float64(b) / float64(a),
	}
	return background.BlendRgb(col, float64(a)/opaque)
}

func cellColor(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
