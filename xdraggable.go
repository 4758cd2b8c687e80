package draggable

// Vec2 is a 2D point in page coordinates used for pointer positions and
// grab offsets throughout the API.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// State identifies what a Draggable is currently doing. A controller is
// always in exactly one state and returns to StateIdle when the pointer
// is released.
type State uint8

const (
	StateIdle     State = iota // no interaction in progress
	StateDragging              // a drag session is moving a proxy element
	StateResizing              // the container's dimension follows the pointer
)

// String returns the state name for log messages.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDragging:
		return "dragging"
	case StateResizing:
		return "resizing"
	default:
		return "unknown"
	}
}

// Direction selects which edge of a container carries a resize handle.
// DirectionNone disables resizing.
type Direction uint8

const (
	DirectionNone   Direction = iota // no resize handle
	DirectionLeft                    // handle on the left edge, width changes
	DirectionRight                   // handle on the right edge, width changes
	DirectionTop                     // handle on the top edge, height changes
	DirectionBottom                  // handle on the bottom edge, height changes
)

// String returns the direction name for log messages.
func (d Direction) String() string {
	switch d {
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	case DirectionTop:
		return "top"
	case DirectionBottom:
		return "bottom"
	default:
		return "none"
	}
}

// horizontal reports whether the direction resizes the width.
func (d Direction) horizontal() bool {
	return d == DirectionLeft || d == DirectionRight
}

// cursor returns the overlay cursor affordance for an interaction on this
// edge. DirectionNone maps to the move cursor used by drags.
func (d Direction) cursor() Cursor {
	switch d {
	case DirectionLeft, DirectionRight:
		return CursorEWResize
	case DirectionTop, DirectionBottom:
		return CursorNSResize
	default:
		return CursorMove
	}
}

// Cursor names the pointer affordance an Overlay should show while an
// interaction is active. Values follow the CSS cursor keywords.
type Cursor string

const (
	CursorMove     Cursor = "move"      // shown while dragging
	CursorEWResize Cursor = "ew-resize" // shown while resizing left/right
	CursorNSResize Cursor = "ns-resize" // shown while resizing top/bottom
)

// EventDrop is the event name accepted by Draggable.On. The handler fires
// when a dragged element is released inside a registered drop target.
const EventDrop = "drag"

// Element attributes used to track sibling ordering.
const (
	// attrOrder holds a child's position in the configured sort order.
	// Read and rewritten by the reorder algorithm when Sort is enabled.
	attrOrder = "data-drag-order"

	// attrIndex holds a child's stored drag index, read at grab time when
	// children mode is enabled without sorting.
	attrIndex = "data-drag-index"
)

// unknownIndex is the sentinel order index for an element whose order
// attribute is absent or unparsable. The reorder algorithm treats it as
// having no valid neighbors.
const unknownIndex = -1

// clamp limits v to the closed range [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
