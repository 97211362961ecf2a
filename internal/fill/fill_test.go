package fill

import (
	"testing"

	"github.com/san-kum/pixed/internal/grid"
)

const (
	red   grid.Color = "#FF0000"
	green grid.Color = "#00FF00"
	blue  grid.Color = "#0000FF"
)

func newGrid(t *testing.T, w, h int) *grid.Store {
	t.Helper()
	st, err := grid.New(w, h)
	if err != nil {
		t.Fatalf("grid: %v", err)
	}
	return st
}

// paint parses rows of '.', 'r', 'g', 'b' into a grid.
func paint(t *testing.T, rows ...string) *grid.Store {
	t.Helper()
	st := newGrid(t, len(rows[0]), len(rows))
	for y, row := range rows {
		for x, ch := range row {
			switch ch {
			case 'r':
				st.Set(x, y, red)
			case 'g':
				st.Set(x, y, green)
			case 'b':
				st.Set(x, y, blue)
			}
		}
	}
	return st
}

func colorAt(st *grid.Store, x, y int) grid.Color {
	c, _ := st.Get(x, y)
	return c
}

func TestFillUnpaintedGrid(t *testing.T) {
	st := newGrid(t, 3, 3)

	n := Fill(st, 1, 1, red)
	if n != 9 {
		t.Errorf("expected 9 cells filled, got %d", n)
	}
	st.Each(func(x, y int, c grid.Color) {
		if c != red {
			t.Errorf("cell (%d,%d): expected %s, got %q", x, y, red, c)
		}
	})
}

func TestFillScenario(t *testing.T) {
	st := newGrid(t, 3, 3)
	Fill(st, 1, 1, red)
	st.Set(0, 0, green)

	n := Fill(st, 2, 2, green)
	if n != 8 {
		t.Errorf("expected 8 cells filled, got %d", n)
	}
	st.Each(func(x, y int, c grid.Color) {
		if c != green {
			t.Errorf("cell (%d,%d): expected %s, got %q", x, y, green, c)
		}
	})
}

func TestFillSameColorNoop(t *testing.T) {
	tests := []struct {
		name  string
		rows  []string
		x, y  int
		color grid.Color
	}{
		{"painted", []string{"rr.", "r.b"}, 0, 0, red},
		{"unpainted", []string{"rr.", "r.b"}, 2, 0, grid.Unpainted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := paint(t, tt.rows...)
			before := st.Clone()

			if n := Fill(st, tt.x, tt.y, tt.color); n != 0 {
				t.Errorf("expected no-op, got %d cells", n)
			}
			if !st.Equal(before) {
				t.Error("grid changed on same-color fill")
			}
		})
	}
}

func TestFillRegionOnly(t *testing.T) {
	st := paint(t,
		"bbbbb",
		"brrbb",
		"bbrrb",
		"bbbbb",
	)
	before := st.Clone()

	n := Fill(st, 2, 2, green)
	if n != 4 {
		t.Fatalf("expected 4 cells, got %d", n)
	}

	region := map[[2]int]bool{{1, 1}: true, {2, 1}: true, {2, 2}: true, {3, 2}: true}
	st.Each(func(x, y int, c grid.Color) {
		if region[[2]int{x, y}] {
			if c != green {
				t.Errorf("region cell (%d,%d) not recolored: %q", x, y, c)
			}
			return
		}
		if want := colorAt(before, x, y); c != want {
			t.Errorf("cell (%d,%d) outside region changed: %q -> %q", x, y, want, c)
		}
	})
}

func TestFillIgnoresDiagonals(t *testing.T) {
	st := paint(t,
		"r.",
		".r",
	)

	Fill(st, 0, 0, blue)

	if c := colorAt(st, 0, 0); c != blue {
		t.Errorf("seed not filled: %q", c)
	}
	if c := colorAt(st, 1, 1); c != red {
		t.Errorf("diagonal cell merged: %q", c)
	}
}

func TestFillOutOfBounds(t *testing.T) {
	st := paint(t, "rr", "rr")
	before := st.Clone()

	for _, xy := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		if n := Fill(st, xy[0], xy[1], blue); n != 0 {
			t.Errorf("fill at %v: expected 0, got %d", xy, n)
		}
	}
	if !st.Equal(before) {
		t.Error("out-of-bounds fill changed the grid")
	}
}

func TestFillEnclosedHole(t *testing.T) {
	st := paint(t,
		"rrrrr",
		"r...r",
		"r.r.r",
		"r...r",
		"rrrrr",
	)

	n := Fill(st, 1, 1, green)
	if n != 8 {
		t.Errorf("expected 8 hole cells, got %d", n)
	}
	if c := colorAt(st, 2, 2); c != red {
		t.Errorf("island recolored: %q", c)
	}
	if c := colorAt(st, 0, 0); c != red {
		t.Errorf("border recolored: %q", c)
	}
}

func TestFillLargeRegion(t *testing.T) {
	st := newGrid(t, 168, 105)

	n := Fill(st, 0, 0, red)
	if n != 168*105 {
		t.Errorf("expected %d cells, got %d", 168*105, n)
	}
}

func TestFillOrderIndependent(t *testing.T) {
	rows := []string{
		"..r..",
		".r.r.",
		"r...r",
		".r.r.",
		"..r..",
	}

	seeds := [][2]int{{2, 2}, {1, 2}, {3, 2}, {2, 1}, {2, 3}}
	var first *grid.Store
	for _, s := range seeds {
		st := paint(t, rows...)
		Fill(st, s[0], s[1], blue)
		if first == nil {
			first = st
			continue
		}
		if !st.Equal(first) {
			t.Errorf("seed %v produced a different result", s)
		}
	}
}

func BenchmarkFill(b *testing.B) {
	for i := 0; i < b.N; i++ {
		st, _ := grid.New(168, 105)
		Fill(st, 84, 52, red)
	}
}
