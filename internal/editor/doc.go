// Package editor ties the grid, flood fill and viewport together into one
// editing session.
//
// A [Session] owns all mutable editor state: the cells, the zoom level, the
// active [ToolMode], the current color and the recent-color list. Front-ends
// feed it pointer and wheel events (or call the cell operations directly)
// and repaint through [Session.RenderFrame] when an operation reports a
// change.
//
// # Example
//
//	s, _ := editor.NewSession(editor.Options{CanvasWidth: 1680, CanvasHeight: 1050, BasePixelSize: 10})
//	s.PaintCell(3, 4, "#FF0000")
//	s.FloodFill(0, 0, "#00FF00")
//	_ = s.SaveExport("pixel-art.png")
//
// # Errors
//
// Out-of-bounds coordinates and out-of-range zoom levels never fail: the
// former are no-ops, the latter are clamped.
//
// # Thread Safety
//
// Session is NOT thread-safe. Drive it from a single event loop.
package editor
