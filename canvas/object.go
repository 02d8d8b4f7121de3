package canvas

import (
	"math"
	"strconv"
	"strings"
)

// Object is a drawable and updatable unit within a showcase.
type Object interface {
	Update(state *FrameState)
	Draw(s Surface)
	Destroy()
}

// Clicker is implemented by objects reacting to clicks anywhere on the page.
type Clicker interface {
	Click()
}

// Controllable is implemented by objects exposing tunable parameters.
type Controllable interface {
	Controls() []Control
}

// Paletted is implemented by objects drawing from a selectable palette.
type Paletted interface {
	Palette() int
	SetPalette(i int)
}

// ControlKind selects the widget used for a Control.
type ControlKind int

const (
	ControlRange ControlKind = iota
	ControlButton
)

// Control describes one UI widget bound to an object parameter.
// Range controls report values through OnChange, buttons call OnClick.
type Control struct {
	Kind  ControlKind
	Key   string
	Label string

	Min, Max, Step float64
	Value          float64

	OnChange func(value float64)
	OnClick  func()
}

// Set snaps value to the control's step and bounds, stores it and notifies
// the owner. It returns the stored value.
func (c *Control) Set(value float64) float64 {
	if c.Kind != ControlRange {
		return c.Value
	}
	if c.Step > 0 {
		steps := math.Round((value - c.Min) / c.Step)
		scale := math.Pow10(max(decimals(c.Step), decimals(c.Min)))
		value = math.Round((c.Min+steps*c.Step)*scale) / scale
	}
	value = Clamp(value, c.Min, c.Max)
	if value == c.Value {
		return value
	}
	c.Value = value
	if c.OnChange != nil {
		c.OnChange(value)
	}
	return value
}

// decimals is the number of digits v needs after the decimal point.
func decimals(v float64) int {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return len(s) - i - 1
	}
	return 0
}

// Press triggers a button control.
func (c *Control) Press() {
	if c.Kind == ControlButton && c.OnClick != nil {
		c.OnClick()
	}
}
