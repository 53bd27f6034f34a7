// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"image"
	"image/color"
)

// Surface errors.
var (
	// ErrInvalidDimensions is returned when a width or height is not positive.
	ErrInvalidDimensions = errors.New("surface: invalid dimensions")

	// ErrClosed is returned when operations are attempted on a closed surface.
	ErrClosed = errors.New("surface: surface is closed")
)

// Surface is a raster drawing target.
//
// Surfaces are NOT thread-safe. Each surface should be used from a single
// goroutine, or external synchronization must be used.
type Surface interface {
	// Width returns the surface width in pixels.
	Width() int

	// Height returns the surface height in pixels.
	Height() int

	// Clear fills the entire surface with the given color.
	Clear(c color.Color)

	// FillRect fills the pixels covered by r.
	FillRect(r Rect, c color.Color)

	// StrokeRect strokes the outline of r with a line of the given width
	// centered on the rectangle's edges.
	StrokeRect(r Rect, width float64, c color.Color)

	// Resize changes the surface dimensions. Existing content is discarded.
	Resize(width, height int) error

	// Snapshot returns the current surface contents as an RGBA image.
	// The returned image is a copy; modifications to it do not affect the surface.
	// Returns nil if the surface is closed.
	Snapshot() *image.RGBA

	// Close releases all resources associated with the surface.
	// Close is idempotent; multiple calls are safe.
	Close() error
}

// Factory creates a surface with the given dimensions.
type Factory func(width, height int) (Surface, error)

// NewImage is a Factory producing ImageSurfaces.
func NewImage(width, height int) (Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	return NewImageSurface(width, height), nil
}
