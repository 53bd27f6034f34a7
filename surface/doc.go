// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package surface provides the pixel surface a grid renders onto.
//
// A Surface is a fixed-size raster target with a deliberately small
// drawing vocabulary: clear, fill an axis-aligned rectangle, and stroke
// an axis-aligned rectangle outline. Geometry is given in float units so
// callers can use the half-pixel offset for crisp 1-unit borders.
//
// # Pixel coverage
//
// Surfaces do not anti-alias. A pixel is covered by a rectangle when the
// pixel's center lies inside it, using half-open intervals:
//
//	covered(px) <=> r.X <= px+0.5 < r.X+r.W
//
// so a rectangle at integer coordinates covers exactly the pixels it
// spans, and a 1-unit stroke centered on x+0.5 covers exactly column x.
//
// # Usage
//
//	s := surface.NewImageSurface(200, 100)
//	defer s.Close()
//
//	s.Clear(color.Black)
//	s.FillRect(surface.Rect{X: 11, Y: 11, W: 8, H: 8}, color.White)
//	s.StrokeRect(surface.Rect{X: 10.5, Y: 10.5, W: 9, H: 9}, 1, color.Gray{Y: 128})
//
//	img := s.Snapshot()
//
// # Thread Safety
//
// Surfaces are NOT thread-safe. Each surface should be used from a single
// goroutine, normally the render loop of the grid that owns it.
package surface
