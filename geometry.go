package draggable

// dragPosition computes the candidate top-left corner for a dragged proxy:
// the pointer position minus the grab offset captured at pointer-down, so
// the element keeps its position under the pointer.
func dragPosition(pointer, offset Vec2) (x, y float64) {
	return pointer.X - offset.X, pointer.Y - offset.Y
}

// clampToContainer limits a candidate position so an element of the given
// size stays fully inside container. This is a hard rectangular clamp; it
// applies only when drag-out is disallowed in children mode, otherwise the
// element must be free to leave toward a drop target.
func clampToContainer(x, y float64, container Rect, width, height float64) (float64, float64) {
	x = clamp(x, container.X, container.X+container.Width-width)
	y = clamp(y, container.Y, container.Y+container.Height-height)
	return x, y
}
