// Package grid holds the color state of a pixel-art canvas.
//
// A [Store] is a fixed width × height array of cells. Each cell carries a
// [Color], an opaque string key compared by exact match. The zero value
// [Unpainted] marks a transparent cell.
//
// # Example
//
//	st, _ := grid.New(168, 105)
//	st.Set(3, 4, "#FF0000")
//	c, err := st.Get(3, 4) // "#FF0000", nil
//
// # Bounds
//
// Set silently ignores coordinates outside the grid. Get reports them with
// [ErrOutOfBounds] so callers can turn them into no-ops.
//
// # Thread Safety
//
// Store is NOT thread-safe. A session owns its store and mutates it from a
// single event loop.
package grid
