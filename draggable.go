package draggable

import "strconv"

// handleSize is the width in pixels of the implicit resize band along the
// configured edge, used when no explicit handle element is supplied.
const handleSize = 8.0

// Config selects a container's drag, drop, sort, and resize behavior.
// It is read once at construction and immutable afterwards; invalid
// combinations are disabled with a warning rather than rejected.
type Config struct {
	// DragID registers the container's bounds as a drop target under this
	// identifier. Required when AllowIn is set.
	DragID string

	// Children treats each child of the container as an independently
	// draggable item instead of dragging the container as a whole.
	Children bool

	// AllowOut permits drop-target matching when a drag is released.
	AllowOut bool

	// AllowIn registers this container's bounds as a drop target.
	AllowIn bool

	// Sort enables in-place sibling reordering while a child is dragged.
	Sort bool

	// ResizeID is the identifier under which the final resize dimension
	// is persisted. Empty disables persistence.
	ResizeID string

	// Direction enables a resize handle on the named edge.
	Direction Direction

	// Handle is an optional explicit resize-handle element. When nil and
	// Direction is set, a band along the configured edge acts as the
	// handle.
	Handle Element
}

// DropEvent is delivered to drop handlers when a dragged element is
// released inside a registered drop target.
type DropEvent struct {
	ID    string // matched drop-target identifier
	Index int    // originating order index of the dragged element, -1 if unknown
}

type dropHandler struct {
	id uint32
	fn func(DropEvent)
}

// CallbackHandle allows removing a registered drop callback.
type CallbackHandle struct {
	id uint32
	d  *Draggable
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.d == nil {
		return
	}
	s := h.d.handlers
	for i := range s {
		if s[i].id == h.id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = dropHandler{}
			h.d.handlers = s[:len(s)-1]
			return
		}
	}
}

// Draggable is the interaction controller for one container. It owns the
// Idle/Dragging/Resizing state machine; pointer events reach it through
// the Engine it was attached to. A controller is reused for the
// container's lifetime.
type Draggable struct {
	engine   *Engine
	el       Element
	cfg      Config
	state    State
	order    *orderTracker
	handlers []dropHandler
	nextID   uint32
}

// New attaches drag behavior to el and registers the controller with the
// engine. Misconfigured option combinations are disabled with a warning
// (see Config); New panics only on nil arguments.
func New(engine *Engine, el Element, cfg Config) *Draggable {
	if engine == nil {
		panic("draggable: nil engine")
	}
	if el == nil {
		panic("draggable: nil element")
	}
	if cfg.AllowIn && cfg.DragID == "" {
		warnf("drop-in requested without a drag id; disabling drop-in")
		cfg.AllowIn = false
	}
	if cfg.Children && len(el.Children()) == 0 {
		warnf("children mode requested on a container with no children; falling back to whole-container drag")
		cfg.Children = false
	}

	d := &Draggable{engine: engine, el: el, cfg: cfg}
	if cfg.Sort {
		d.order = newOrderTracker(el, attrOrder)
	}
	if cfg.AllowIn {
		engine.registry.Register(cfg.DragID, el.Bounds())
	}
	engine.attach(d)
	return d
}

// On registers a handler for the named event. Only EventDrop ("drag") is
// supported; an unknown name is warned about and returns a no-op handle.
func (d *Draggable) On(event string, fn func(DropEvent)) CallbackHandle {
	if event != EventDrop {
		warnf("unknown event %q; only %q is supported", event, EventDrop)
		return CallbackHandle{}
	}
	d.nextID++
	d.handlers = append(d.handlers, dropHandler{id: d.nextID, fn: fn})
	return CallbackHandle{id: d.nextID, d: d}
}

// State returns the controller's current state.
func (d *Draggable) State() State {
	return d.state
}

// Element returns the container element this controller drives.
func (d *Draggable) Element() Element {
	return d.el
}

// handleBounds returns the resize handle's hit rectangle: the explicit
// handle element's bounds when one is configured, otherwise a band of
// handleSize pixels along the configured edge of the container.
func (d *Draggable) handleBounds() Rect {
	if d.cfg.Handle != nil {
		return d.cfg.Handle.Bounds()
	}
	b := d.el.Bounds()
	switch d.cfg.Direction {
	case DirectionLeft:
		return Rect{X: b.X, Y: b.Y, Width: handleSize, Height: b.Height}
	case DirectionRight:
		return Rect{X: b.X + b.Width - handleSize, Y: b.Y, Width: handleSize, Height: b.Height}
	case DirectionTop:
		return Rect{X: b.X, Y: b.Y, Width: b.Width, Height: handleSize}
	case DirectionBottom:
		return Rect{X: b.X, Y: b.Y + b.Height - handleSize, Width: b.Width, Height: handleSize}
	default:
		return Rect{}
	}
}

// dragTarget returns the element a press at p would grab: in children
// mode the topmost child under the pointer, otherwise the container
// itself. Returns nil when the press misses.
func (d *Draggable) dragTarget(p Vec2) Element {
	if d.cfg.Children {
		children := d.el.Children()
		for i := len(children) - 1; i >= 0; i-- {
			if children[i].Bounds().Contains(p.X, p.Y) {
				return children[i]
			}
		}
		return nil
	}
	if d.el.Bounds().Contains(p.X, p.Y) {
		return d.el
	}
	return nil
}

// beginDrag opens a drag session: clones target into a floating proxy
// mounted at the engine root, resolves the originating order index, and
// snapshots the container and element bounds.
func (d *Draggable) beginDrag(target Element, p Vec2) {
	bounds := target.Bounds()
	proxy := target.Clone()
	if root := d.engine.root; root != nil {
		root.Append(proxy)
	}

	idx := unknownIndex
	if d.cfg.Sort {
		d.order.rebuild()
		d.order.grab(target)
		idx = d.order.idx
	} else if d.cfg.Children {
		idx = orderValue(target, attrIndex)
	}

	d.engine.active = &session{
		owner:     d,
		mode:      StateDragging,
		proxy:     proxy,
		offset:    Vec2{X: p.X - bounds.X, Y: p.Y - bounds.Y},
		index:     idx,
		container: d.el.Bounds(),
		start:     bounds,
	}
	d.state = StateDragging
	d.engine.showOverlay(CursorMove)
}

// beginResize opens a resize session, snapshotting the container bounds
// the arithmetic is anchored to.
func (d *Draggable) beginResize() {
	d.engine.active = &session{
		owner: d,
		mode:  StateResizing,
		start: d.el.Bounds(),
	}
	d.state = StateResizing
	d.engine.showOverlay(d.cfg.Direction.cursor())
}

// move advances the active session for a pointer move.
func (d *Draggable) move(s *session, p Vec2) {
	if s.mode == StateResizing {
		applySize(d.el, d.cfg.Direction, resizeSize(d.cfg.Direction, s.start, p))
		return
	}
	x, y := dragPosition(p, s.offset)
	if !d.cfg.AllowOut && d.cfg.Children {
		x, y = clampToContainer(x, y, s.container, s.start.Width, s.start.Height)
	}
	s.proxy.SetPosition(x, y)
	if d.cfg.Sort {
		d.order.check(y)
	}
}

// release concludes the active session for a pointer up, returning the
// controller to idle.
func (d *Draggable) release(s *session, p Vec2) {
	d.engine.hideOverlay()
	if s.mode == StateResizing {
		size := resizeSize(d.cfg.Direction, s.start, p)
		applySize(d.el, d.cfg.Direction, size)
		d.persistSize(size)
	} else {
		if d.cfg.AllowOut {
			if id, ok := d.engine.registry.Match(p); ok {
				d.fireDrop(DropEvent{ID: id, Index: s.index})
			}
		}
		// The proxy is owned by the session; discard it unconditionally.
		s.proxy.Remove()
	}
	d.state = StateIdle
}

// persistSize stores the final resize dimension under the configured
// resize identifier. A store failure is logged, not escalated.
func (d *Draggable) persistSize(size float64) {
	if d.cfg.ResizeID == "" {
		return
	}
	key := sizeKey(d.cfg.ResizeID)
	value := strconv.FormatFloat(size, 'f', -1, 64)
	if err := d.engine.store.Set(key, value); err != nil {
		warnf("persisting %s: %v", key, err)
	}
}

func (d *Draggable) fireDrop(ev DropEvent) {
	for _, h := range d.handlers {
		h.fn(ev)
	}
}
