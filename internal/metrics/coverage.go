package metrics

import "github.com/san-kum/pixed/internal/grid"

// Coverage is the painted fraction of all cells.
type Coverage struct {
	name    string
	painted int
	samples int
}

func NewCoverage() *Coverage {
	return &Coverage{name: "coverage"}
}

func (m *Coverage) Name() string { return m.name }

func (m *Coverage) Observe(x, y int, c grid.Color) {
	m.samples++
	if c.Painted() {
		m.painted++
	}
}

func (m *Coverage) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return float64(m.painted) / float64(m.samples)
}

func (m *Coverage) Reset() {
	m.painted = 0
	m.samples = 0
}

// Palette counts distinct painted colors.
type Palette struct {
	name string
	seen map[grid.Color]int
}

func NewPalette() *Palette {
	return &Palette{name: "colors", seen: make(map[grid.Color]int)}
}

func (m *Palette) Name() string { return m.name }

func (m *Palette) Observe(x, y int, c grid.Color) {
	if c.Painted() {
		m.seen[c]++
	}
}

func (m *Palette) Value() float64 { return float64(len(m.seen)) }

// Count returns how many cells hold c.
func (m *Palette) Count(c grid.Color) int { return m.seen[c] }

func (m *Palette) Reset() {
	m.seen = make(map[grid.Color]int)
}

// Dominance is the share of painted cells held by the most used color.
type Dominance struct {
	Palette
	painted int
}

func NewDominance() *Dominance {
	return &Dominance{Palette: Palette{name: "dominance", seen: make(map[grid.Color]int)}}
}

func (m *Dominance) Observe(x, y int, c grid.Color) {
	if c.Painted() {
		m.painted++
		m.Palette.Observe(x, y, c)
	}
}

func (m *Dominance) Value() float64 {
	if m.painted == 0 {
		return 0
	}
	top := 0
	for _, n := range m.seen {
		top = max(top, n)
	}
	return float64(top) / float64(m.painted)
}

func (m *Dominance) Reset() {
	m.Palette.Reset()
	m.painted = 0
}
