package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const buttonHeight = 26.0

var _ Component = (*Button)(nil)

// Button fires onClick when the pointer is released over it after being
// pressed over it.
type Button struct {
	bounds  Rectangle
	text    string
	onClick func()
	parent  Container

	// State
	isHovered bool
	isPressed bool
}

func NewButton(text string, onClick func()) *Button {
	return &Button{
		bounds:  Rectangle{Width: 100, Height: buttonHeight},
		text:    text,
		onClick: onClick,
	}
}

func (b *Button) SetParent(parent Container) {
	b.parent = parent
}

func (b *Button) GetParent() Container {
	return b.parent
}

// Text returns the button label.
func (b *Button) Text() string {
	return b.text
}

func (b *Button) Draw(screen *ebiten.Image, originX, originY float64) {
	var bgColor color.Color
	if b.isPressed {
		bgColor = color.RGBA{100, 100, 100, 255}
	} else if b.isHovered {
		bgColor = color.RGBA{180, 180, 180, 255}
	} else {
		bgColor = color.RGBA{150, 150, 150, 255}
	}

	r := b.bounds
	r.X += originX
	r.Y += originY

	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y),
		float32(r.Width), float32(r.Height), bgColor, true)
	vector.StrokeRect(screen, float32(r.X), float32(r.Y),
		float32(r.Width), float32(r.Height), 1, color.Black, true)
	drawCenteredLabel(screen, b.text, r, color.Black)
}

func (b *Button) HandleInput(x, y float64, pressed bool) bool {
	if b.bounds.Contains(x, y) {
		b.isHovered = true

		if pressed {
			b.isPressed = true
		} else if b.isPressed {
			b.isPressed = false
			if b.onClick != nil {
				b.onClick()
			}
		}
		return true
	}

	b.isHovered = false
	b.isPressed = false
	return false
}

func (b *Button) Bounds() Rectangle {
	return b.bounds
}

func (b *Button) SetBounds(r Rectangle) {
	b.bounds = r
}

func (b *Button) PreferredHeight() float64 {
	return buttonHeight
}
