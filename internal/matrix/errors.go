package matrix

import "errors"

var (
	// ErrInvalidConfiguration is returned when a grid is built with a
	// non-positive width or height.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrOutOfBounds is returned for any coordinate outside the grid.
	ErrOutOfBounds = errors.New("coordinate out of bounds")
)
