package draggable

// session is the transient state of one interaction, created at
// pointer-down and destroyed at pointer-up. At most one session exists per
// Engine at any time: the engine assumes a single active pointer.
type session struct {
	owner *Draggable
	mode  State // StateDragging or StateResizing

	// Drag fields.
	proxy     Element // floating clone, owned exclusively by the session
	offset    Vec2    // pointer-to-element offset at grab time
	index     int     // originating order index, unknownIndex if absent
	container Rect    // container bounds at grab time

	// start is the grabbed element's bounds at grab time (drag) or the
	// container's bounds the resize arithmetic is anchored to (resize).
	start Rect
}

// Engine is the shared pointer dispatcher for a set of Draggable
// controllers. It stands in for the full-screen overlay of a visual
// runtime: once a controller opens a session, every subsequent move and
// the final release route to that session even when the pointer leaves
// the container's own bounds.
//
// Engine also owns the process-shared pieces the controllers coordinate
// through: the drop-target registry, the persistence store, and the
// nullable reference to the session currently receiving events.
type Engine struct {
	controllers []*Draggable
	registry    *DropRegistry
	store       Store
	root        Element // mount point for drag proxies; nil leaves them unmounted
	overlay     Overlay
	active      *session // set at drag/resize start, cleared at release

	// Pointer state fed by Update or ProcessPointer.
	pointerDown bool
	lastPos     Vec2

	// Synthetic input (inject.go) and touch scratch (input.go).
	injectQueue []syntheticPointerEvent
	touchIDs    []touchID
}

// NewEngine creates an engine with an empty drop registry and an
// in-memory store.
func NewEngine() *Engine {
	return &Engine{
		registry: NewDropRegistry(),
		store:    NewMemoryStore(),
	}
}

// SetRoot sets the element drag proxies are appended to, normally the
// visual tree's root so proxies float above everything.
func (e *Engine) SetRoot(el Element) {
	e.root = el
}

// SetOverlay sets the overlay collaborator shown during interactions.
func (e *Engine) SetOverlay(o Overlay) {
	e.overlay = o
}

// SetStore replaces the persistence store used for resize sizes.
func (e *Engine) SetStore(s Store) {
	if s == nil {
		panic("draggable: nil store")
	}
	e.store = s
}

// Registry returns the engine's drop-target registry.
func (e *Engine) Registry() *DropRegistry {
	return e.registry
}

func (e *Engine) attach(d *Draggable) {
	e.controllers = append(e.controllers, d)
}

// ProcessPointer feeds one pointer sample into the engine: the pointer's
// page position and whether its button is held. Hosts with their own
// event source call this directly; Ebitengine hosts call Update instead.
// Events are processed strictly in arrival order on the caller's
// goroutine.
func (e *Engine) ProcessPointer(p Vec2, pressed bool) {
	switch {
	case pressed && !e.pointerDown:
		e.pointerDown = true
		if e.active == nil {
			e.press(p)
		}
	case pressed && e.pointerDown:
		if s := e.active; s != nil && p != e.lastPos {
			s.owner.move(s, p)
		}
	case !pressed && e.pointerDown:
		e.pointerDown = false
		if s := e.active; s != nil {
			e.active = nil
			s.owner.release(s, p)
		}
	}
	e.lastPos = p
}

// press routes a fresh pointer-down to a controller. Controllers are
// tried in reverse attach order so the most recently attached (topmost)
// wins; within a controller the resize handle is tried before the drag
// surface.
func (e *Engine) press(p Vec2) {
	for i := len(e.controllers) - 1; i >= 0; i-- {
		d := e.controllers[i]
		if d.cfg.Direction != DirectionNone && d.handleBounds().Contains(p.X, p.Y) {
			d.beginResize()
			return
		}
		if target := d.dragTarget(p); target != nil {
			d.beginDrag(target, p)
			return
		}
	}
}

func (e *Engine) showOverlay(c Cursor) {
	if e.overlay != nil {
		e.overlay.Show(c)
	}
}

func (e *Engine) hideOverlay() {
	if e.overlay != nil {
		e.overlay.Hide()
	}
}
