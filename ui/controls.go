package ui

import "github.com/OpticalFlyer/showcase/canvas"

// NewControlPanel builds a panel with one widget per control: a slider for
// range controls and a button for button controls. changed runs after any
// widget changes an object parameter and may be nil.
func NewControlPanel(title string, width float64, controls []*canvas.Control, changed func()) *Panel {
	p := NewPanel(0, 0, width, title)
	for _, ctl := range controls {
		switch ctl.Kind {
		case canvas.ControlRange:
			p.AddChild(NewSlider(ctl, changed))
		case canvas.ControlButton:
			ctl := ctl
			p.AddChild(NewButton(ctl.Label, func() {
				ctl.Press()
				if changed != nil {
					changed()
				}
			}))
		}
	}
	return p
}
