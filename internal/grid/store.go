package grid

import "fmt"

// Color identifies a cell color. Two colors are the same iff their keys are
// identical; no color-distance tolerance is applied.
type Color string

// Unpainted is the color of a cell that has never been painted or was erased.
const Unpainted Color = ""

// Painted reports whether c is a concrete color.
func (c Color) Painted() bool { return c != Unpainted }

type Store struct {
	width  int
	height int
	cells  []Color
}

// New allocates a width × height grid with every cell Unpainted.
func New(width, height int) (*Store, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	return &Store{
		width:  width,
		height: height,
		cells:  make([]Color, width*height),
	}, nil
}

func (s *Store) Dimensions() (width, height int) {
	return s.width, s.height
}

func (s *Store) InBounds(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

func (s *Store) Get(x, y int) (Color, error) {
	if !s.InBounds(x, y) {
		return Unpainted, ErrOutOfBounds
	}
	return s.cells[y*s.width+x], nil
}

// Set overwrites the cell at (x, y). It reports false and leaves the grid
// untouched when the coordinate is out of bounds.
func (s *Store) Set(x, y int, c Color) bool {
	if !s.InBounds(x, y) {
		return false
	}
	s.cells[y*s.width+x] = c
	return true
}

// Each calls fn for every cell in row-major order.
func (s *Store) Each(fn func(x, y int, c Color)) {
	for y := 0; y < s.height; y++ {
		row := s.cells[y*s.width : (y+1)*s.width]
		for x, c := range row {
			fn(x, y, c)
		}
	}
}

// Painted counts cells holding a concrete color.
func (s *Store) Painted() int {
	n := 0
	for _, c := range s.cells {
		if c.Painted() {
			n++
		}
	}
	return n
}

// Colors returns the distinct painted colors in first-seen row-major order.
func (s *Store) Colors() []Color {
	seen := make(map[Color]struct{})
	out := make([]Color, 0)
	for _, c := range s.cells {
		if !c.Painted() {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

func (s *Store) Clone() *Store {
	cells := make([]Color, len(s.cells))
	copy(cells, s.cells)
	return &Store{width: s.width, height: s.height, cells: cells}
}

// Equal reports whether both grids have the same dimensions and cell colors.
func (s *Store) Equal(o *Store) bool {
	if s.width != o.width || s.height != o.height {
		return false
	}
	for i := range s.cells {
		if s.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}
