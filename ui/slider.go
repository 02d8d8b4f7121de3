package ui

import (
	"fmt"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/OpticalFlyer/showcase/canvas"
)

const (
	sliderLabelHeight = 18.0
	sliderTrackHeight = 6.0
	sliderHandle      = 12.0
	sliderHeight      = sliderLabelHeight + sliderHandle + 4
)

var _ Component = (*Slider)(nil)

// Slider edits a range control. Dragging starts on the track and keeps
// following the pointer until the button is released.
type Slider struct {
	bounds   Rectangle
	control  *canvas.Control
	onChange func()
	parent   Container

	isDragging bool
}

// NewSlider binds a slider to a range control. onChange runs after every
// value change and may be nil.
func NewSlider(control *canvas.Control, onChange func()) *Slider {
	return &Slider{
		bounds:   Rectangle{Width: 160, Height: sliderHeight},
		control:  control,
		onChange: onChange,
	}
}

func (s *Slider) SetParent(parent Container) {
	s.parent = parent
}

func (s *Slider) GetParent() Container {
	return s.parent
}

// Control returns the bound control.
func (s *Slider) Control() *canvas.Control {
	return s.control
}

// Label is the caption with the live value, e.g. "Effect size: 5".
func (s *Slider) Label() string {
	return fmt.Sprintf("%s: %s", s.control.Label, strconv.FormatFloat(s.control.Value, 'f', -1, 64))
}

func (s *Slider) track() Rectangle {
	return Rectangle{
		X:      s.bounds.X + sliderHandle/2,
		Y:      s.bounds.Y + sliderLabelHeight,
		Width:  max(1, s.bounds.Width-sliderHandle),
		Height: sliderHandle,
	}
}

// fraction is the value's position along the track in [0,1].
func (s *Slider) fraction() float64 {
	span := s.control.Max - s.control.Min
	if span <= 0 {
		return 0
	}
	return canvas.Clamp((s.control.Value-s.control.Min)/span, 0, 1)
}

func (s *Slider) Draw(screen *ebiten.Image, originX, originY float64) {
	t := s.track()
	x := float32(t.X + originX)
	y := float32(t.Y + originY + (sliderHandle-sliderTrackHeight)/2)
	w := float32(t.Width)

	drawLabel(screen, s.Label(), s.bounds.X+originX, s.bounds.Y+originY, textColor)
	vector.DrawFilledRect(screen, x, y, w, sliderTrackHeight, trackColor, true)
	vector.DrawFilledRect(screen, x, y, w*float32(s.fraction()), sliderTrackHeight, fillColor, true)

	hx := x + w*float32(s.fraction())
	hy := float32(t.Y+originY) + sliderHandle/2
	vector.DrawFilledCircle(screen, hx, hy, sliderHandle/2, handleColor, true)
}

func (s *Slider) HandleInput(x, y float64, pressed bool) bool {
	if !pressed {
		wasDragging := s.isDragging
		s.isDragging = false
		return wasDragging
	}
	t := s.track()
	if !s.isDragging {
		if !t.Contains(x, y) {
			return false
		}
		s.isDragging = true
	}

	frac := canvas.Clamp((x-t.X)/t.Width, 0, 1)
	before := s.control.Value
	after := s.control.Set(canvas.MapToRange(s.control.Min, s.control.Max, frac))
	if after != before && s.onChange != nil {
		s.onChange()
	}
	return true
}

func (s *Slider) Bounds() Rectangle {
	return s.bounds
}

func (s *Slider) SetBounds(r Rectangle) {
	s.bounds = r
}

func (s *Slider) PreferredHeight() float64 {
	return sliderHeight
}
