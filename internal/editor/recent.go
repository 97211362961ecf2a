package editor

import "github.com/san-kum/pixed/internal/grid"

// recentColors is a most-recently-added list without duplicates. A color
// already present keeps its position. A limit below one disables the list.
type recentColors struct {
	limit  int
	colors []grid.Color
}

func newRecentColors(limit int) *recentColors {
	return &recentColors{limit: limit, colors: make([]grid.Color, 0, max(limit, 0)+1)}
}

func (r *recentColors) add(c grid.Color) {
	if !c.Painted() || r.limit <= 0 {
		return
	}
	for _, existing := range r.colors {
		if existing == c {
			return
		}
	}
	r.colors = append([]grid.Color{c}, r.colors...)
	if len(r.colors) > r.limit {
		r.colors = r.colors[:r.limit]
	}
}

func (r *recentColors) list() []grid.Color {
	out := make([]grid.Color, len(r.colors))
	copy(out, r.colors)
	return out
}
