package ui

import "github.com/hajimehoshi/ebiten/v2"

// Component represents the basic building block of the UI system.
// Positions are relative to the parent's content origin.
type Component interface {
	Draw(screen *ebiten.Image, originX, originY float64)
	Bounds() Rectangle
	SetBounds(r Rectangle)
	// PreferredHeight is the height a layout gives the component.
	PreferredHeight() float64
	// HandleInput receives the pointer in parent coordinates and reports
	// whether the component consumed it.
	HandleInput(x, y float64, pressed bool) bool
	SetParent(parent Container)
	GetParent() Container
}

// Container represents a Component that can hold and manage other Components.
type Container interface {
	AddChild(child Component)
	RemoveChild(child Component)
	Children() []Component
	Layout() Layout
}

// Rectangle represents the bounds of a Component
type Rectangle struct {
	X, Y          float64
	Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle, edges included.
func (r Rectangle) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Layout defines how Components are arranged within a Container
type Layout interface {
	// ArrangeChildren places the children inside a content area of the
	// given width and returns the height they use.
	ArrangeChildren(container Container, width float64) float64
}

// VerticalLayout stacks children top to bottom at full width.
type VerticalLayout struct {
	Padding float64
	Spacing float64
}

func (l VerticalLayout) ArrangeChildren(container Container, width float64) float64 {
	y := l.Padding
	for i, child := range container.Children() {
		if i > 0 {
			y += l.Spacing
		}
		h := child.PreferredHeight()
		child.SetBounds(Rectangle{X: l.Padding, Y: y, Width: max(0, width-2*l.Padding), Height: h})
		y += h
	}
	return y + l.Padding
}
