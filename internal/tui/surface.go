package tui

import (
	"math"

	"github.com/san-kum/pixed/internal/grid"
	"github.com/san-kum/pixed/internal/viewport"
)

// termSurface samples display-space rectangles into terminal cells. Each
// terminal cell shows whatever covers its center. Rows are twice as tall as
// columns are wide so grid cells stay roughly square.
type termSurface struct {
	cols, rows int
	colW, rowH float64
	offX, offY float64
	cells      [][]grid.Color
}

func newTermSurface(cols, rows int, colW, offX, offY float64) *termSurface {
	s := &termSurface{
		cols: cols,
		rows: rows,
		colW: colW,
		rowH: colW * 2,
		offX: offX,
		offY: offY,
	}
	s.cells = make([][]grid.Color, rows)
	for i := range s.cells {
		s.cells[i] = make([]grid.Color, cols)
	}
	return s
}

func (s *termSurface) Size() (int, int) {
	return int(float64(s.cols) * s.colW), int(float64(s.rows) * s.rowH)
}

func (s *termSurface) Clear() {
	for _, row := range s.cells {
		for i := range row {
			row[i] = grid.Unpainted
		}
	}
}

func (s *termSurface) FillRect(r viewport.Rect, c grid.Color) {
	c0, c1 := span(r.X-s.offX, r.W, s.colW, s.cols)
	r0, r1 := span(r.Y-s.offY, r.H, s.rowH, s.rows)
	for row := r0; row < r1; row++ {
		for col := c0; col < c1; col++ {
			s.cells[row][col] = c
		}
	}
}

// StrokeLine is a no-op: a line is thinner than a terminal cell.
func (s *termSurface) StrokeLine(x0, y0, x1, y1 float64, c grid.Color, width float64) {}

// pointer converts a terminal cell to the display-space point at its center.
func (s *termSurface) pointer(col, row int) (float64, float64) {
	return s.offX + (float64(col)+0.5)*s.colW, s.offY + (float64(row)+0.5)*s.rowH
}

// span returns the half-open index range of cells of size step whose centers
// fall inside [start, start+length), clamped to [0, n).
func span(start, length, step float64, n int) (int, int) {
	lo := int(math.Ceil(start/step - 0.5))
	hi := int(math.Ceil((start+length)/step - 0.5))
	if lo < 0 {
		lo = 0
	}
	if hi > n {
		hi = n
	}
	return lo, hi
}
