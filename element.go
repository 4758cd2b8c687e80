package draggable

// Element is the engine's view of a visual-tree node. The engine never
// creates elements on its own; the host supplies them and implements
// cloning, attachment, and style application however its rendering layer
// works. All coordinates are page-space offsets.
type Element interface {
	// Bounds returns the element's current page-space position and size.
	Bounds() Rect

	// SetPosition moves the element so its top-left corner sits at (x, y).
	SetPosition(x, y float64)

	// SetSize changes the element's dimensions.
	SetSize(width, height float64)

	// Attr returns the named attribute value, or "" when absent.
	Attr(name string) string

	// SetAttr stores an attribute value on the element.
	SetAttr(name, value string)

	// Children returns the element's child list in layout order.
	// The returned slice MUST NOT be mutated by the caller.
	Children() []Element

	// Clone returns a detached deep visual copy of the element, used as
	// the floating drag proxy. The clone carries the element's attributes
	// and bounds but no parent.
	Clone() Element

	// Append attaches child to this element's subtree.
	Append(child Element)

	// Remove detaches the element from its parent and releases it.
	Remove()
}

// Overlay is the full-viewport capture surface shown while an interaction
// is active. The engine drives it purely through Show and Hide; how the
// cursor affordance is styled is the host's concern. A nil Overlay on the
// Engine disables both calls.
type Overlay interface {
	Show(cursor Cursor)
	Hide()
}
