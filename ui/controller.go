package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Controller manages all UI elements
type Controller struct {
	panels   []*Panel
	consumed bool
}

// NewController creates a new UI controller
func NewController() *Controller {
	return &Controller{
		panels: make([]*Panel, 0),
	}
}

// AddPanel adds a new panel to the UI
func (c *Controller) AddPanel(panel *Panel) {
	c.panels = append(c.panels, panel)
}

// Panels returns the managed panels in draw order.
func (c *Controller) Panels() []*Panel {
	return c.panels
}

// Update feeds the pointer to the panels, topmost first, until one consumes
// it.
func (c *Controller) Update(x, y float64, pressed bool) error {
	c.consumed = false
	for i := len(c.panels) - 1; i >= 0; i-- {
		if c.panels[i].Update(x, y, pressed) {
			c.consumed = true
			break
		}
	}
	return nil
}

// Draw draws all UI elements
func (c *Controller) Draw(screen *ebiten.Image) {
	for _, panel := range c.panels {
		panel.Draw(screen)
	}
}

// UpdateWindowSize updates the window size for all panels
func (c *Controller) UpdateWindowSize(width, height int) {
	for _, panel := range c.panels {
		panel.UpdateWindowSize(width, height)
	}
}

// CursorShape picks the pointer shape for the topmost visible panel.
func (c *Controller) CursorShape(x, y float64) ebiten.CursorShapeType {
	for i := len(c.panels) - 1; i >= 0; i-- {
		if shape := c.panels[i].CursorShape(x, y); shape != ebiten.CursorShapeDefault {
			return shape
		}
	}
	return ebiten.CursorShapeDefault
}

// ShowDebugInfo draws debug information
func (c *Controller) ShowDebugInfo(screen *ebiten.Image, extra string) {
	fps := ebiten.ActualFPS()
	tps := ebiten.ActualTPS()
	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.2f TPS: %.2f\n%s", fps, tps, extra))
}

// IsInteractingWithUI returns true if the last pointer update went to a
// panel or a panel is being dragged or resized.
func (c *Controller) IsInteractingWithUI() bool {
	if c.consumed {
		return true
	}
	for _, panel := range c.panels {
		if panel.Interacting() {
			return true
		}
	}
	return false
}
