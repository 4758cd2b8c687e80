package draggable

import (
	"strconv"
	"time"
)

// reorderBand is the hysteresis margin in pixels around a neighbor's top
// edge. Without it two elements whose edges sit nearly level would swap
// back and forth on every move.
const reorderBand = 10.0

// reorderInterval is the minimum time between reorder decisions during a
// drag.
const reorderInterval = 200 * time.Millisecond

// positionRecord ties an order slot to the element occupying it and the
// bounds it had when the table was last rebuilt.
type positionRecord struct {
	bounds Rect
	el     Element
}

// reorderGate limits reorder checks to one per interval. The leading edge
// of each window executes immediately, so the first move after a quiet
// period reacts without delay; calls inside an open window are dropped,
// never queued for later replay.
type reorderGate struct {
	interval time.Duration
	last     time.Time
	now      func() time.Time // swapped for a fake clock in tests
}

func newReorderGate(interval time.Duration) reorderGate {
	return reorderGate{interval: interval, now: time.Now}
}

// allow reports whether a check may execute now, consuming the window
// when it does.
func (g *reorderGate) allow() bool {
	t := g.now()
	if !g.last.IsZero() && t.Sub(g.last) < g.interval {
		return false
	}
	g.last = t
	return true
}

// orderValue parses an element's order attribute. Absent or unparsable
// values resolve to the unknownIndex sentinel.
func orderValue(el Element, attr string) int {
	v, err := strconv.Atoi(el.Attr(attr))
	if err != nil || v < 0 {
		return unknownIndex
	}
	return v
}

// orderTracker maintains one container's order-index table and runs the
// sibling reorder algorithm while a child is dragged. The set of indices
// in records is always a permutation of [0, childCount) for children that
// carry a valid order attribute.
type orderTracker struct {
	container Element
	attr      string
	records   map[int]positionRecord
	idx       int // dragged element's current order index; follows it across swaps
	gate      reorderGate
}

func newOrderTracker(container Element, attr string) *orderTracker {
	return &orderTracker{
		container: container,
		attr:      attr,
		records:   make(map[int]positionRecord),
		idx:       unknownIndex,
		gate:      newReorderGate(reorderInterval),
	}
}

// rebuild scans the container's children and rebuilds the order table
// from the live layout, refreshing every slot's bounds.
func (t *orderTracker) rebuild() {
	clear(t.records)
	for _, child := range t.container.Children() {
		if v := orderValue(child, t.attr); v != unknownIndex {
			t.records[v] = positionRecord{bounds: child.Bounds(), el: child}
		}
	}
}

// grab marks el as the dragged element, resolving its starting order
// index from its order attribute.
func (t *orderTracker) grab(el Element) {
	t.idx = orderValue(el, t.attr)
}

// check runs one rate-limited reorder decision for the current drag top.
func (t *orderTracker) check(dragTop float64) {
	if !t.gate.allow() {
		return
	}
	if target, ok := t.decide(dragTop); ok {
		t.swap(target)
	}
}

// decide picks the neighbor slot the dragged element should swap with, if
// any. The upward neighbor is tested first: it wins when its recorded top
// has reached the drag top minus the hysteresis band; otherwise the
// downward neighbor wins when its top is within the band below. A sentinel
// drag index has no valid neighbors and never reorders.
func (t *orderTracker) decide(dragTop float64) (target int, ok bool) {
	if t.idx == unknownIndex {
		return 0, false
	}
	if rec, exists := t.records[t.idx-1]; exists && rec.bounds.Y >= dragTop-reorderBand {
		return t.idx - 1, true
	}
	if rec, exists := t.records[t.idx+1]; exists && rec.bounds.Y <= dragTop+reorderBand {
		return t.idx + 1, true
	}
	return 0, false
}

// swap exchanges the dragged element's order slot with target: the two
// elements' order attributes and table entries trade places, the tracker
// follows the dragged element to its new slot, and the table is rebuilt
// from the live layout so every slot's bounds are fresh.
func (t *orderTracker) swap(target int) {
	a, okA := t.records[t.idx]
	b, okB := t.records[target]
	if !okA || !okB {
		return
	}
	av := a.el.Attr(t.attr)
	a.el.SetAttr(t.attr, b.el.Attr(t.attr))
	b.el.SetAttr(t.attr, av)
	t.records[t.idx], t.records[target] = b, a
	t.idx = target
	t.rebuild()
}
