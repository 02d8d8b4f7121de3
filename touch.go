package main

import (
	"github.com/gogpu/gg"
	"github.com/hajimehoshi/ebiten/v2"
)

// tapSlop is how far a touch may travel and still count as a tap.
const tapSlop = 10.0

// touchGesture is what one frame of touches means for the page.
type touchGesture struct {
	// Pointer is where the first touch is, valid when Active.
	Pointer gg.Point
	Active  bool
	// ScrollBy is the page scroll from a one finger drag.
	ScrollBy float64
	// Tap is set when a touch lifted without travelling.
	Tap bool
}

type touchState struct {
	start, last gg.Point
	moved       bool
}

// touchTracker turns raw touch positions into page gestures: one finger
// drags the page and points at tiles, a short touch clicks.
type touchTracker struct {
	touches map[ebiten.TouchID]*touchState
	order   []ebiten.TouchID
}

func newTouchTracker() *touchTracker {
	return &touchTracker{touches: make(map[ebiten.TouchID]*touchState)}
}

// poll reads the current touches from Ebiten.
func (t *touchTracker) poll() touchGesture {
	ids := ebiten.AppendTouchIDs(make([]ebiten.TouchID, 0, 8))
	positions := make(map[ebiten.TouchID]gg.Point, len(ids))
	for _, id := range ids {
		x, y := ebiten.TouchPosition(id)
		positions[id] = gg.Pt(float64(x), float64(y))
	}
	return t.update(ids, positions)
}

func (t *touchTracker) update(ids []ebiten.TouchID, positions map[ebiten.TouchID]gg.Point) touchGesture {
	var g touchGesture

	// Handle touch start
	for _, id := range ids {
		if _, exists := t.touches[id]; !exists {
			p := positions[id]
			t.touches[id] = &touchState{start: p, last: p}
			t.order = append(t.order, id)
		}
	}

	// Clean up ended touches
	kept := t.order[:0]
	for _, id := range t.order {
		if containsTouchID(ids, id) {
			kept = append(kept, id)
			continue
		}
		st := t.touches[id]
		if !st.moved && len(t.touches) == 1 {
			g.Tap = true
			g.Pointer = st.last
		}
		delete(t.touches, id)
	}
	t.order = kept

	if len(t.order) == 0 {
		return g
	}

	id := t.order[0]
	st := t.touches[id]
	p := positions[id]
	if len(t.order) == 1 {
		g.ScrollBy = st.last.Y - p.Y
	}
	if p.Distance(st.start) > tapSlop {
		st.moved = true
	}
	st.last = p
	g.Pointer = p
	g.Active = true
	return g
}

// Helper function to check if a TouchID is in a slice
func containsTouchID(ids []ebiten.TouchID, id ebiten.TouchID) bool {
	for _, tid := range ids {
		if tid == id {
			return true
		}
	}
	return false
}
