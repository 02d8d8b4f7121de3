package ui

import (
	"bytes"
	"image/color"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

const labelSize = 13

var (
	panelColor   = color.RGBA{100, 100, 100, panelAlpha}
	titleColor   = color.RGBA{60, 60, 60, panelAlpha}
	previewColor = color.RGBA{33, 150, 243, previewAlpha}
	textColor    = color.RGBA{240, 240, 240, 255}
	trackColor   = color.RGBA{70, 70, 70, 255}
	fillColor    = color.RGBA{33, 150, 243, 255}
	handleColor  = color.RGBA{230, 230, 230, 255}
)

var (
	faceOnce sync.Once
	face     *text.GoTextFace
)

// labelFace returns the Go Regular face shared by every widget, or nil if
// the font cannot be loaded.
func labelFace() *text.GoTextFace {
	faceOnce.Do(func() {
		src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			log.Printf("[ui] loading label font: %v", err)
			return
		}
		face = &text.GoTextFace{Source: src, Size: labelSize}
	})
	return face
}

// drawLabel draws s with its top-left corner at (x, y).
func drawLabel(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	f := labelFace()
	if f == nil || s == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, f, op)
}

// drawCenteredLabel centers s inside r.
func drawCenteredLabel(screen *ebiten.Image, s string, r Rectangle, clr color.Color) {
	f := labelFace()
	if f == nil || s == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(r.X+r.Width/2, r.Y+r.Height/2)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, s, f, op)
}
