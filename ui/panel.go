package ui

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type DockState int

const (
	dockNone DockState = iota
	dockLeft
	dockRight
)

const (
	titleBarHeight = 20.0
	resizeArea     = 5.0
	dockThreshold  = 20.0
	minPanelWidth  = 140.0
	previewAlpha   = 84
	panelAlpha     = 200
)

type ResizeState int

const (
	resizeNone ResizeState = iota
	resizeLeft
	resizeRight
)

var _ Container = (*Panel)(nil)

// Panel is a titled column of widgets. It can be dragged by its title bar,
// docked to the left or right window edge and resized horizontally. Its
// height follows its content unless docked.
type Panel struct {
	X, Y          float64
	Width, Height float64
	Title         string
	Hidden        bool

	children []Component
	layout   Layout

	// Docking state
	dockState     DockState
	isDockPreview bool

	// Undocked geometry, restored when dragged off an edge
	undockedX, undockedY float64
	undockedWidth        float64

	// Interaction state
	isDragging   bool
	isResizing   bool
	dragStartX   float64
	dragStartY   float64
	resizeState  ResizeState
	startWidth   float64
	wasPressed   bool
	pressedChild Component

	windowWidth  int
	windowHeight int
}

func NewPanel(x, y, width float64, title string) *Panel {
	return &Panel{
		X:             x,
		Y:             y,
		Width:         width,
		Height:        titleBarHeight,
		Title:         title,
		layout:        VerticalLayout{Padding: 8, Spacing: 6},
		undockedX:     x,
		undockedY:     y,
		undockedWidth: width,
		windowWidth:   800,
		windowHeight:  600,
	}
}

func (p *Panel) AddChild(child Component) {
	child.SetParent(p)
	p.children = append(p.children, child)
	p.arrange()
}

func (p *Panel) RemoveChild(child Component) {
	if i := slices.Index(p.children, child); i >= 0 {
		p.children = slices.Delete(p.children, i, i+1)
		child.SetParent(nil)
		p.arrange()
	}
}

func (p *Panel) Children() []Component {
	return p.children
}

func (p *Panel) Layout() Layout {
	return p.layout
}

// DockRight docks the panel to the right window edge.
func (p *Panel) DockRight() {
	p.dockState = dockRight
	p.UpdateWindowSize(p.windowWidth, p.windowHeight)
}

// Docked reports whether the panel is attached to a window edge.
func (p *Panel) Docked() bool {
	return p.dockState != dockNone
}

// Interacting reports whether the panel is being dragged or resized.
func (p *Panel) Interacting() bool {
	return p.isDragging || p.isResizing
}

func (p *Panel) Bounds() Rectangle {
	return Rectangle{X: p.X, Y: p.Y, Width: p.Width, Height: p.Height}
}

// arrange lays the children out and sizes an undocked panel to fit them.
func (p *Panel) arrange() {
	h := p.layout.ArrangeChildren(p, p.Width)
	if p.dockState == dockNone {
		p.Height = titleBarHeight + h
	}
}

func (p *Panel) checkDocking(x float64) {
	prevDockState := p.dockState

	switch {
	case x < dockThreshold:
		p.dockState = dockLeft
	case float64(p.windowWidth)-x < dockThreshold:
		p.dockState = dockRight
	default:
		p.dockState = dockNone
		if p.isDockPreview {
			p.Width = p.undockedWidth
			p.arrange()
		}
		p.isDockPreview = false
		return
	}

	if prevDockState == dockNone && !p.isDockPreview {
		p.undockedWidth = p.Width
		p.undockedX = p.X
		p.undockedY = p.Y
	}

	p.isDockPreview = true
	p.UpdateWindowSize(p.windowWidth, p.windowHeight)
}

func (p *Panel) UpdateWindowSize(width, height int) {
	p.windowWidth = width
	p.windowHeight = height

	switch p.dockState {
	case dockLeft:
		p.X = 0
		p.Y = 0
		p.Height = float64(height)
	case dockRight:
		p.Y = 0
		p.Height = float64(height)
		p.X = float64(width) - p.Width
	}
	p.arrange()
}

func (p *Panel) getResizeArea(x, y float64) ResizeState {
	if y < p.Y || y > p.Y+p.Height {
		return resizeNone
	}
	left := x >= p.X-resizeArea && x <= p.X+resizeArea
	right := x >= p.X+p.Width-resizeArea && x <= p.X+p.Width+resizeArea

	switch p.dockState {
	case dockLeft:
		left = false
	case dockRight:
		right = false
	}
	if left {
		return resizeLeft
	}
	if right {
		return resizeRight
	}
	return resizeNone
}

// CursorShape is the pointer shape to show at (x, y).
func (p *Panel) CursorShape(x, y float64) ebiten.CursorShapeType {
	if p.Hidden {
		return ebiten.CursorShapeDefault
	}
	if p.isResizing || p.getResizeArea(x, y) != resizeNone {
		return ebiten.CursorShapeEWResize
	}
	if p.isDragging || p.isInTitleBar(x, y) {
		return ebiten.CursorShapeMove
	}
	return ebiten.CursorShapeDefault
}

// Update feeds the pointer to the panel and its widgets. It reports whether
// the panel consumed the input.
func (p *Panel) Update(x, y float64, pressed bool) bool {
	if p.Hidden {
		return false
	}
	justPressed := pressed && !p.wasPressed
	p.wasPressed = pressed

	if justPressed {
		if p.isInTitleBar(x, y) {
			p.startDrag(x, y)
		} else if state := p.getResizeArea(x, y); state != resizeNone {
			p.isResizing = true
			p.resizeState = state
			p.dragStartX = x
			p.startWidth = p.Width
		}
	}

	switch {
	case p.isDragging && pressed:
		p.X = x - p.dragStartX
		p.Y = y - p.dragStartY
		p.checkDocking(x)
		return true
	case p.isResizing && pressed:
		p.resize(x - p.dragStartX)
		return true
	case p.isDragging || p.isResizing:
		if p.isDragging && p.isDockPreview {
			p.isDockPreview = false
			p.UpdateWindowSize(p.windowWidth, p.windowHeight)
		}
		p.isDragging = false
		p.isResizing = false
		return true
	}

	return p.forward(x, y, pressed, justPressed)
}

func (p *Panel) startDrag(x, y float64) {
	p.isDragging = true
	if p.dockState == dockNone {
		p.undockedWidth = p.Width
		p.undockedX = p.X
		p.undockedY = p.Y
	} else {
		relativeX := (x - p.X) / p.Width
		p.dockState = dockNone
		p.isDockPreview = false
		p.Width = p.undockedWidth
		p.X = x - p.Width*relativeX
		p.Y = y - titleBarHeight/2
		p.arrange()
	}
	p.dragStartX = x - p.X
	p.dragStartY = y - p.Y
}

func (p *Panel) resize(deltaX float64) {
	switch p.resizeState {
	case resizeLeft:
		newWidth := max(minPanelWidth, p.startWidth-deltaX)
		if p.dockState == dockRight {
			p.X = float64(p.windowWidth) - newWidth
		} else {
			p.X += p.Width - newWidth
		}
		p.Width = newWidth
	case resizeRight:
		p.Width = max(minPanelWidth, p.startWidth+deltaX)
	}
	if p.dockState == dockNone {
		p.undockedWidth = p.Width
		p.undockedX = p.X
	}
	p.arrange()
}

// forward hands the pointer to the widget under it, or to the widget that
// took the current press so drags continue outside it.
func (p *Panel) forward(x, y float64, pressed, justPressed bool) bool {
	cx, cy := x-p.X, y-p.Y-titleBarHeight
	if p.pressedChild != nil {
		child := p.pressedChild
		if !pressed {
			p.pressedChild = nil
		}
		child.HandleInput(cx, cy, pressed)
		return true
	}
	inside := p.Bounds().Contains(x, y)
	if pressed && !justPressed {
		// The press started elsewhere.
		return inside
	}

	consumed := false
	for _, child := range p.children {
		if child.HandleInput(cx, cy, pressed) {
			consumed = true
			if justPressed {
				p.pressedChild = child
			}
		}
	}
	return consumed || (inside && pressed)
}

func (p *Panel) Draw(screen *ebiten.Image) {
	if p.Hidden {
		return
	}
	bg, title := panelColor, titleColor
	if p.isDockPreview {
		bg, title = previewColor, titleColor
		title.A = previewAlpha
	}

	vector.DrawFilledRect(screen, float32(p.X), float32(p.Y), float32(p.Width), float32(p.Height), bg, true)
	vector.DrawFilledRect(screen, float32(p.X), float32(p.Y), float32(p.Width), float32(titleBarHeight), title, true)
	drawLabel(screen, p.Title, p.X+6, p.Y+2, textColor)

	for _, child := range p.children {
		child.Draw(screen, p.X, p.Y+titleBarHeight)
	}
}

func (p *Panel) isInTitleBar(x, y float64) bool {
	if p.getResizeArea(x, y) != resizeNone {
		return false
	}
	return x >= p.X && x <= p.X+p.Width &&
		y >= p.Y && y <= p.Y+titleBarHeight
}
