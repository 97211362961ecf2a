// Package fill implements 4-connected flood fill over a color grid.
package fill

import "github.com/san-kum/pixed/internal/grid"

// Grid is the cell storage a fill operates on. *grid.Store satisfies it.
type Grid interface {
	Get(x, y int) (grid.Color, error)
	Set(x, y int, c grid.Color) bool
}

type point struct{ x, y int }

// Fill recolors the maximal 4-connected region of cells that share the color
// of (x, y) and returns the number of cells changed.
//
// The seed color is compared to c once, before traversal; equal colors
// (including both Unpainted) make the call a no-op, as does an out-of-bounds
// seed.
func Fill(g Grid, x, y int, c grid.Color) int {
	target, err := g.Get(x, y)
	if err != nil || target == c {
		return 0
	}

	g.Set(x, y, c)
	count := 1
	stack := []point{{x, y}}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		neighbors := [4]point{
			{p.x + 1, p.y},
			{p.x - 1, p.y},
			{p.x, p.y + 1},
			{p.x, p.y - 1},
		}
		for _, n := range neighbors {
			cur, err := g.Get(n.x, n.y)
			if err != nil || cur != target {
				continue
			}
			// recolor on push so a cell is never queued twice
			g.Set(n.x, n.y, c)
			count++
			stack = append(stack, n)
		}
	}

	return count
}
