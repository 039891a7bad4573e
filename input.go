package landing

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// bounds returns the drawing surface rectangle in surface coordinates.
func (b *Backdrop) bounds() Rect {
	return Rect{Width: b.width, Height: b.height}
}

// processInput applies at most one synthetic pointer event, otherwise polls
// the real cursor. The cursor is only consulted when it has moved since the
// previous poll, so synthetic state survives until the user moves the mouse.
// Losing window focus counts as the cursor leaving.
func (b *Backdrop) processInput() {
	if b.processInjectedInput() {
		return
	}
	if !b.isFocused() {
		if !b.unfocused {
			b.unfocused = true
			b.cursorLost()
		}
		return
	}
	b.unfocused = false
	x, y := ebiten.CursorPosition()
	b.handleCursor(x, y)
}

func (b *Backdrop) isFocused() bool {
	if b.focusFunc != nil {
		return b.focusFunc()
	}
	return ebiten.IsFocused()
}

// cursorLost forgets the real cursor and clears the pointer.
func (b *Backdrop) cursorLost() {
	b.cursorSeen = false
	b.cursorTravel = 0
	if b.pointer != nil {
		b.PointerLeave()
	}
}

// handleCursor turns a raw cursor sample into move or leave transitions.
//
// Ebitengine keeps reporting the last position seen inside the window once
// the cursor exits it. A sample that stops changing within one frame's
// travel of an edge is therefore taken as an exit through that edge.
func (b *Backdrop) handleCursor(x, y int) {
	cur := [2]int{x, y}
	if b.cursorSeen && cur == b.lastCursor {
		if b.cursorTravel > 0 && b.edgeDistance(x, y) <= b.cursorTravel {
			b.cursorTravel = 0
			if p := b.pointer; p != nil && p.X == float64(x) && p.Y == float64(y) {
				b.PointerLeave()
			}
		}
		return
	}
	if b.cursorSeen {
		b.cursorTravel = math.Max(math.Abs(float64(x-b.lastCursor[0])), math.Abs(float64(y-b.lastCursor[1])))
	}
	b.cursorSeen = true
	b.lastCursor = cur

	fx, fy := float64(x), float64(y)
	if b.bounds().Contains(fx, fy) {
		b.PointerMove(fx, fy)
		return
	}
	if b.pointer != nil {
		b.PointerLeave()
	}
}

// edgeDistance is the distance from (x, y) to the nearest surface edge.
func (b *Backdrop) edgeDistance(x, y int) float64 {
	fx, fy := float64(x), float64(y)
	return min(fx, fy, b.width-fx, b.height-fy)
}
