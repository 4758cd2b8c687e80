// Package draggable is a pointer-driven drag, drop, resize, and reorder
// engine for visual elements.
//
// The engine is rendering-agnostic: the host supplies its visual tree
// behind the [Element] interface and the engine decides positions, sizes,
// drop targets, and sibling order in response to pointer input. An
// [Ebitengine] host feeds input by calling [Engine.Update] once per frame;
// any other host calls [Engine.ProcessPointer] with its own pointer
// samples.
//
// # Quick start
//
//	engine := draggable.NewEngine()
//	engine.SetRoot(root)
//
//	tray := draggable.New(engine, trayElem, draggable.Config{
//		DragID:  "tray",
//		AllowIn: true,
//	})
//
//	list := draggable.New(engine, listElem, draggable.Config{
//		Children: true,
//		AllowOut: true,
//		Sort:     true,
//	})
//	list.On("drag", func(ev draggable.DropEvent) {
//		// ev.ID is the drop target hit, ev.Index the item's origin slot.
//	})
//
// While a drag is held, the grabbed element's clone floats as a proxy and
// follows the pointer; siblings reorder in place when Sort is enabled, and
// releasing over a container registered with AllowIn fires the "drag"
// handlers. A container with a Direction gets a resize handle on that
// edge, and the final size is persisted through the engine's [Store].
//
// One pointer interaction is active at a time per Engine; pointer events
// are processed synchronously in arrival order, so the engine needs no
// locking.
//
// [Ebitengine]: https://ebitengine.org
package draggable
