package metrics

import "github.com/san-kum/pixed/internal/grid"

// Metric accumulates a single number over the cells of a grid.
type Metric interface {
	Name() string
	Observe(x, y int, c grid.Color)
	Value() float64
	Reset()
}

func Default() []Metric {
	return []Metric{NewCoverage(), NewPalette(), NewDominance(), NewBounds()}
}

// Collect resets every metric, feeds it each cell of cells in row-major
// order and returns the values keyed by name.
func Collect(cells *grid.Store, ms ...Metric) map[string]float64 {
	for _, m := range ms {
		m.Reset()
	}
	cells.Each(func(x, y int, c grid.Color) {
		for _, m := range ms {
			m.Observe(x, y, c)
		}
	})

	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		out[m.Name()] = m.Value()
	}
	return out
}

// ColumnProfile counts painted cells per column.
func ColumnProfile(cells *grid.Store) []float64 {
	cols, _ := cells.Dimensions()
	profile := make([]float64, cols)
	cells.Each(func(x, y int, c grid.Color) {
		if c.Painted() {
			profile[x]++
		}
	})
	return profile
}
