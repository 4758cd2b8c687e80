package draggable

// dropEntry is one registered drop target: a container identifier and the
// bounds it reported at registration time.
type dropEntry struct {
	id     string
	bounds Rect
}

// DropRegistry maps container identifiers to drop-target bounds. Entries
// are added once per eligible container at construction time and are never
// re-measured: if a registered container later moves or resizes, its entry
// is stale until it registers again.
//
// Each Engine owns one registry; tests can construct isolated instances
// with NewDropRegistry instead of sharing state.
type DropRegistry struct {
	entries []dropEntry
}

// NewDropRegistry returns an empty registry.
func NewDropRegistry() *DropRegistry {
	return &DropRegistry{}
}

// Register inserts id with the given bounds. Registering an id again
// updates its bounds in place, keeping the original registration order.
func (r *DropRegistry) Register(id string, bounds Rect) {
	for i := range r.entries {
		if r.entries[i].id == id {
			r.entries[i].bounds = bounds
			return
		}
	}
	r.entries = append(r.entries, dropEntry{id: id, bounds: bounds})
}

// Match returns the identifier of the first registered rectangle that
// strictly contains p, in registration order. First-registered-wins is the
// tie-break for overlapping rectangles. Points on a rectangle's edge do
// not match.
func (r *DropRegistry) Match(p Vec2) (string, bool) {
	for _, e := range r.entries {
		if e.bounds.X < p.X && p.X < e.bounds.X+e.bounds.Width &&
			e.bounds.Y < p.Y && p.Y < e.bounds.Y+e.bounds.Height {
			return e.id, true
		}
	}
	return "", false
}

// Len returns the number of registered drop targets.
func (r *DropRegistry) Len() int {
	return len(r.entries)
}
