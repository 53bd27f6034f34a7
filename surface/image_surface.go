// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// ImageSurface is a CPU-based surface that renders to an *image.RGBA.
//
// Example:
//
//	s := surface.NewImageSurface(800, 600)
//	defer s.Close()
//
//	s.Clear(color.White)
//	s.FillRect(surface.Rect{X: 100, Y: 100, W: 50, H: 50}, color.RGBA{255, 0, 0, 255})
//
//	img := s.Snapshot()
type ImageSurface struct {
	width  int
	height int
	img    *image.RGBA

	// closed tracks if Close has been called
	closed bool
}

// NewImageSurface creates a new CPU-based surface with the given dimensions.
// Non-positive dimensions are clamped to 1.
func NewImageSurface(width, height int) *ImageSurface {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}

	return &ImageSurface{
		width:  width,
		height: height,
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// NewImageSurfaceFromImage creates a surface backed by an existing image.
// The surface renders into the provided image directly.
func NewImageSurfaceFromImage(img *image.RGBA) *ImageSurface {
	bounds := img.Bounds()
	return &ImageSurface{
		width:  bounds.Dx(),
		height: bounds.Dy(),
		img:    img,
	}
}

// Width returns the surface width.
func (s *ImageSurface) Width() int {
	return s.width
}

// Height returns the surface height.
func (s *ImageSurface) Height() int {
	return s.height
}

// Clear fills the entire surface with the given color.
func (s *ImageSurface) Clear(c color.Color) {
	if s.closed {
		return
	}
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// FillRect fills the pixels covered by r.
func (s *ImageSurface) FillRect(r Rect, c color.Color) {
	if s.closed {
		return
	}
	s.fill(r.Pixels(), c)
}

// StrokeRect strokes the outline of r.
// Non-positive widths draw nothing.
func (s *ImageSurface) StrokeRect(r Rect, width float64, c color.Color) {
	if s.closed || width <= 0 || r.W < 0 || r.H < 0 {
		return
	}
	for _, band := range r.outline(width) {
		s.fill(band.Pixels(), c)
	}
}

func (s *ImageSurface) fill(px image.Rectangle, c color.Color) {
	px = px.Intersect(s.img.Bounds())
	if px.Empty() {
		return
	}
	draw.Draw(s.img, px, image.NewUniform(c), image.Point{}, draw.Over)
}

// Resize changes the surface dimensions. Existing content is discarded
// and the new surface is transparent. Resizing to the current dimensions
// is a no-op that keeps the content.
func (s *ImageSurface) Resize(width, height int) error {
	if s.closed {
		return ErrClosed
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	if width == s.width && height == s.height {
		return nil
	}
	s.width = width
	s.height = height
	s.img = image.NewRGBA(image.Rect(0, 0, width, height))
	return nil
}

// Snapshot returns a copy of the current surface contents.
func (s *ImageSurface) Snapshot() *image.RGBA {
	if s.closed {
		return nil
	}

	result := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	draw.Copy(result, image.Point{}, s.img, s.img.Bounds(), draw.Src, nil)
	return result
}

// Close releases resources associated with the surface.
func (s *ImageSurface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.img = nil
	return nil
}

// Image returns the underlying image.RGBA.
// This is a direct reference, not a copy.
func (s *ImageSurface) Image() *image.RGBA {
	return s.img
}
