package draggable

// fakeElement is an in-memory Element for tests: a rectangle with
// attributes and a child list, no rendering behind it.
type fakeElement struct {
	bounds   Rect
	attrs    map[string]string
	children []*fakeElement
	parent   *fakeElement
	removed  bool

	// onAttrChange, when set, runs after every SetAttr. Tests use it to
	// emulate a layout engine repositioning siblings when order changes.
	onAttrChange func()
}

var _ Element = (*fakeElement)(nil)

func newFakeElement(b Rect) *fakeElement {
	return &fakeElement{bounds: b, attrs: make(map[string]string)}
}

func (f *fakeElement) Bounds() Rect { return f.bounds }

func (f *fakeElement) SetPosition(x, y float64) {
	f.bounds.X, f.bounds.Y = x, y
}

func (f *fakeElement) SetSize(width, height float64) {
	f.bounds.Width, f.bounds.Height = width, height
}

func (f *fakeElement) Attr(name string) string { return f.attrs[name] }

func (f *fakeElement) SetAttr(name, value string) {
	f.attrs[name] = value
	if f.onAttrChange != nil {
		f.onAttrChange()
	}
}

func (f *fakeElement) Children() []Element {
	out := make([]Element, len(f.children))
	for i, c := range f.children {
		out[i] = c
	}
	return out
}

func (f *fakeElement) Clone() Element {
	clone := newFakeElement(f.bounds)
	for k, v := range f.attrs {
		clone.attrs[k] = v
	}
	return clone
}

func (f *fakeElement) Append(child Element) {
	c := child.(*fakeElement)
	c.parent = f
	f.children = append(f.children, c)
}

func (f *fakeElement) Remove() {
	f.removed = true
	if f.parent == nil {
		return
	}
	siblings := f.parent.children
	for i, c := range siblings {
		if c == f {
			f.parent.children = append(siblings[:i], siblings[i+1:]...)
			break
		}
	}
	f.parent = nil
}

// addChild attaches c without going through the Element interface.
func (f *fakeElement) addChild(c *fakeElement) {
	c.parent = f
	f.children = append(f.children, c)
}

// fakeOverlay records Show/Hide calls.
type fakeOverlay struct {
	visible      bool
	cursor       Cursor
	shows, hides int
}

var _ Overlay = (*fakeOverlay)(nil)

func (o *fakeOverlay) Show(c Cursor) {
	o.visible = true
	o.cursor = c
	o.shows++
}

func (o *fakeOverlay) Hide() {
	o.visible = false
	o.hides++
}
