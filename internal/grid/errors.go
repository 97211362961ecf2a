package grid

import "errors"

var (
	// ErrOutOfBounds indicates a cell coordinate outside the grid.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")

	// ErrInvalidSize indicates non-positive grid dimensions.
	ErrInvalidSize = errors.New("grid: dimensions must be positive")
)
