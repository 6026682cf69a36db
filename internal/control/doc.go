// Package control turns input events into viewport and parameter changes.
//
// Frontends translate their native input into [Event] values and feed them
// to a [Controller]. The controller owns the interactive [State] and raises
// a dirty flag whenever the visible frame goes stale:
//
//	ctrl := control.New(view, params, logger)
//	for _, ev := range events {
//		if ctrl.Handle(ev) {
//			return // window closed
//		}
//	}
//	frame, rendered, err := renderer.Refresh(ctrl)
//
// # Key Bindings
//
//	a/d w/s  - Pan left/right, up/down by 1/8 of the view (arrow keys too)
//	z x      - Zoom in/out by 1.25 (mouse wheel up/down too)
//	r        - Reset view
//	b        - Toggle monochrome
//	, .      - Halve/double iterations
//	[ ]      - Decrease/increase periodicity interval
//	click    - Recenter on the clicked point
package control
