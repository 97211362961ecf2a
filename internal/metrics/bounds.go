package metrics

import "github.com/san-kum/pixed/internal/grid"

// Bounds is the area in cells of the smallest rectangle holding every
// painted cell.
type Bounds struct {
	name                   string
	minX, minY, maxX, maxY int
	found                  bool
}

func NewBounds() *Bounds {
	return &Bounds{name: "bounds_area"}
}

func (m *Bounds) Name() string { return m.name }

func (m *Bounds) Observe(x, y int, c grid.Color) {
	if !c.Painted() {
		return
	}
	if !m.found {
		m.minX, m.maxX, m.minY, m.maxY = x, x, y, y
		m.found = true
		return
	}
	m.minX = min(m.minX, x)
	m.maxX = max(m.maxX, x)
	m.minY = min(m.minY, y)
	m.maxY = max(m.maxY, y)
}

// Rect returns the bounding box as x, y, width, height. ok is false when
// nothing was painted.
func (m *Bounds) Rect() (x, y, w, h int, ok bool) {
	if !m.found {
		return 0, 0, 0, 0, false
	}
	return m.minX, m.minY, m.maxX - m.minX + 1, m.maxY - m.minY + 1, true
}

func (m *Bounds) Value() float64 {
	_, _, w, h, ok := m.Rect()
	if !ok {
		return 0
	}
	return float64(w * h)
}

func (m *Bounds) Reset() {
	*m = Bounds{name: m.name}
}
