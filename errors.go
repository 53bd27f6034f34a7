package squaregrid

import "errors"

var (
	// ErrInvalidDimensions is returned when a grid or state is created with
	// a non-positive number of rows or columns.
	ErrInvalidDimensions = errors.New("squaregrid: invalid dimensions")

	// ErrNoSurface is returned when a surface factory returns a nil surface.
	ErrNoSurface = errors.New("squaregrid: surface factory returned nil")

	// ErrClosed is returned when the grid's surface has been closed.
	ErrClosed = errors.New("squaregrid: grid is closed")
)
