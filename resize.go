package draggable

// resizeSize computes the new dimension for a resize gesture: the starting
// size plus the pointer's travel away from the handle edge, anchored at
// the opposite edge. No minimum or maximum is enforced; a gesture can
// drive the result to zero or below and the value is passed through as-is.
func resizeSize(dir Direction, start Rect, pointer Vec2) float64 {
	switch dir {
	case DirectionRight:
		return start.Width + (pointer.X - (start.X + start.Width))
	case DirectionLeft:
		return start.Width + (start.X - pointer.X)
	case DirectionTop:
		return start.Height + (start.Y - pointer.Y)
	case DirectionBottom:
		return start.Height + (pointer.Y - (start.Y + start.Height))
	default:
		return 0
	}
}

// applySize writes a computed size to the element's resizable dimension:
// width for left/right handles, height for top/bottom handles.
func applySize(el Element, dir Direction, size float64) {
	b := el.Bounds()
	if dir.horizontal() {
		el.SetSize(size, b.Height)
	} else {
		el.SetSize(b.Width, size)
	}
}
