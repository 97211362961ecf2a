// Package render draws a color grid onto raster surfaces.
//
// Two passes share the same cell iteration:
//
//   - [Frame]: the on-screen view at the zoomed cell size, with separator
//     lines on every cell boundary.
//   - [Artwork]: the export at the base cell size, painted cells only.
//
// [Surface] abstracts the target. [Canvas] is the in-memory implementation
// backed by github.com/gogpu/gg; the desktop and terminal front-ends supply
// their own.
package render
