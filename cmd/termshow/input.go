package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/OpticalFlyer/showcase/canvas"
	"github.com/OpticalFlyer/showcase/render/term"
)

// input turns terminal events into host updates.
type input struct {
	surface *term.Surface
	buttons tcell.ButtonMask
}

// translate maps ev to a host update, nil when the event does not concern
// the showcase. quit is set for Escape, Ctrl-C and q.
func (in *input) translate(ev tcell.Event) (update func(*canvas.Host), quit bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return nil, true
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return nil, true
			case ' ', 'n':
				return (*canvas.Host).Click, false
			}
		}

	case *tcell.EventMouse:
		col, row := ev.Position()
		x, y := in.surface.CanvasPoint(col, row)
		buttons := ev.Buttons()
		clicked := buttons&tcell.ButtonPrimary != 0 && in.buttons&tcell.ButtonPrimary == 0
		in.buttons = buttons
		return func(h *canvas.Host) {
			h.MouseMove(x, y)
			if clicked {
				h.Click()
			}
		}, false
	}
	return nil, false
}
