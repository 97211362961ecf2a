package render

import (
	"github.com/san-kum/pixed/internal/grid"
	"github.com/san-kum/pixed/internal/viewport"
)

// Surface is a drawing target addressed in surface pixels.
type Surface interface {
	Size() (width, height int)
	Clear()
	FillRect(r viewport.Rect, c grid.Color)
	StrokeLine(x0, y0, x1, y1 float64, c grid.Color, width float64)
}

// Cells is the grid state being drawn.
type Cells interface {
	Dimensions() (width, height int)
	Each(fn func(x, y int, c grid.Color))
}

// GridStyle controls the separator lines of a frame.
type GridStyle struct {
	Color grid.Color
	Width float64
}

var DefaultGridStyle = GridStyle{Color: "#cccccc", Width: 0.5}

// Frame clears s, fills every painted cell at its display rect and strokes
// the grid lines across the whole surface.
func Frame(s Surface, cells Cells, m *viewport.Mapper, style GridStyle) {
	s.Clear()
	cells.Each(func(x, y int, c grid.Color) {
		if c.Painted() {
			s.FillRect(m.CellToDisplayRect(x, y), c)
		}
	})

	if style.Width <= 0 || !style.Color.Painted() {
		return
	}

	cols, rows := cells.Dimensions()
	sw, sh := s.Size()
	step := m.EffectivePixelSize()
	for x := 0; x <= cols; x++ {
		px := float64(x) * step
		s.StrokeLine(px, 0, px, float64(sh), style.Color, style.Width)
	}
	for y := 0; y <= rows; y++ {
		py := float64(y) * step
		s.StrokeLine(0, py, float64(sw), py, style.Color, style.Width)
	}
}

// Artwork clears s and fills every painted cell at its export rect. No grid
// lines are drawn.
func Artwork(s Surface, cells Cells, m *viewport.Mapper) {
	s.Clear()
	cells.Each(func(x, y int, c grid.Color) {
		if c.Painted() {
			s.FillRect(m.CellToExportRect(x, y), c)
		}
	})
}
