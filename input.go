package draggable

import (
	"github.com/hajimehoshi/ebiten/v2"
)

type touchID = ebiten.TouchID

// Update polls Ebitengine input and feeds one pointer sample into the
// engine. Call it once per frame from the host's Update. Synthetic events
// queued via Inject* are consumed first, one per frame, and suppress real
// input for that frame.
func (e *Engine) Update() {
	if e.processInjected() {
		return
	}
	p, pressed := e.readPointer()
	e.ProcessPointer(p, pressed)
}

// readPointer samples the current pointer: the mouse cursor with the left
// button, or the first active touch. Only one pointer drives the engine at
// a time. When a touch lifts, the release is reported at the last known
// position because the lifted touch no longer has one.
func (e *Engine) readPointer() (Vec2, bool) {
	mx, my := ebiten.CursorPosition()
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		return Vec2{X: float64(mx), Y: float64(my)}, true
	}

	e.touchIDs = ebiten.AppendTouchIDs(e.touchIDs[:0])
	if len(e.touchIDs) > 0 {
		tx, ty := ebiten.TouchPosition(e.touchIDs[0])
		return Vec2{X: float64(tx), Y: float64(ty)}, true
	}

	if e.pointerDown {
		return e.lastPos, false
	}
	return Vec2{X: float64(mx), Y: float64(my)}, false
}
