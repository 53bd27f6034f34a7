// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

var (
	red   = color.RGBA{255, 0, 0, 255}
	green = color.RGBA{0, 255, 0, 255}
	black = color.RGBA{0, 0, 0, 255}
)

func TestNewImageSurface(t *testing.T) {
	s := NewImageSurface(100, 40)
	defer s.Close()

	if s.Width() != 100 || s.Height() != 40 {
		t.Errorf("size = %dx%d, want 100x40", s.Width(), s.Height())
	}
	if s.Image().Bounds() != image.Rect(0, 0, 100, 40) {
		t.Errorf("Image().Bounds() = %v", s.Image().Bounds())
	}
}

func TestNewImageSurfaceInvalidSize(t *testing.T) {
	// Should clamp to minimum of 1x1
	s := NewImageSurface(0, -3)
	defer s.Close()

	if s.Width() != 1 || s.Height() != 1 {
		t.Errorf("expected 1x1, got %dx%d", s.Width(), s.Height())
	}
}

func TestNewImageSurfaceFromImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 6))
	s := NewImageSurfaceFromImage(img)
	defer s.Close()

	s.Clear(red)
	if img.RGBAAt(7, 5) != red {
		t.Error("surface did not render into the provided image")
	}
}

func TestImageSurfaceClear(t *testing.T) {
	s := NewImageSurface(10, 10)
	defer s.Close()

	s.FillRect(Rect{X: 2, Y: 2, W: 3, H: 3}, green)
	s.Clear(red)

	img := s.Snapshot()
	for _, p := range []image.Point{{0, 0}, {3, 3}, {9, 9}} {
		if c := img.RGBAAt(p.X, p.Y); c != red {
			t.Errorf("pixel %v = %v, want %v", p, c, red)
		}
	}
}

func TestImageSurfaceFillRect(t *testing.T) {
	s := NewImageSurface(20, 20)
	defer s.Close()

	s.Clear(black)
	s.FillRect(Rect{X: 5, Y: 6, W: 4, H: 3}, red)

	img := s.Snapshot()
	for y := range 20 {
		for x := range 20 {
			want := black
			if x >= 5 && x < 9 && y >= 6 && y < 9 {
				want = red
			}
			if c := img.RGBAAt(x, y); c != want {
				t.Fatalf("pixel (%d, %d) = %v, want %v", x, y, c, want)
			}
		}
	}
}

func TestImageSurfaceFillRectClipped(t *testing.T) {
	s := NewImageSurface(10, 10)
	defer s.Close()

	s.Clear(black)
	s.FillRect(Rect{X: -5, Y: 8, W: 8, H: 10}, red)
	s.FillRect(Rect{X: 50, Y: 50, W: 5, H: 5}, green)

	img := s.Snapshot()
	if c := img.RGBAAt(0, 9); c != red {
		t.Errorf("pixel (0, 9) = %v, want %v", c, red)
	}
	if c := img.RGBAAt(3, 9); c != black {
		t.Errorf("pixel (3, 9) = %v, want %v", c, black)
	}
}

func TestImageSurfaceStrokeRect(t *testing.T) {
	s := NewImageSurface(20, 20)
	defer s.Close()

	s.Clear(black)
	s.StrokeRect(Rect{X: 10.5, Y: 10.5, W: 9, H: 9}, 1, red)

	img := s.Snapshot()
	for y := range 20 {
		for x := range 20 {
			inCell := x >= 10 && y >= 10
			ring := inCell && (x == 10 || x == 19 || y == 10 || y == 19)
			want := black
			if ring {
				want = red
			}
			if c := img.RGBAAt(x, y); c != want {
				t.Fatalf("pixel (%d, %d) = %v, want %v", x, y, c, want)
			}
		}
	}
}

func TestImageSurfaceStrokeRectZeroWidth(t *testing.T) {
	s := NewImageSurface(10, 10)
	defer s.Close()

	s.Clear(black)
	s.StrokeRect(Rect{X: 0.5, Y: 0.5, W: 9, H: 9}, 0, red)
	s.StrokeRect(Rect{X: 0.5, Y: 0.5, W: 9, H: 9}, -1, red)

	if c := s.Snapshot().RGBAAt(0, 0); c != black {
		t.Errorf("pixel (0, 0) = %v, want nothing drawn", c)
	}
}

func TestImageSurfaceFillOver(t *testing.T) {
	s := NewImageSurface(4, 4)
	defer s.Close()

	s.Clear(black)
	s.FillRect(Rect{W: 4, H: 4}, color.RGBA{128, 0, 0, 128})

	c := s.Snapshot().RGBAAt(1, 1)
	if c.A != 255 || c.R != 128 {
		t.Errorf("translucent fill = %v, want composited over the background", c)
	}
}

func TestImageSurfaceResize(t *testing.T) {
	s := NewImageSurface(10, 10)
	defer s.Close()

	s.Clear(red)

	// Same size keeps content.
	if err := s.Resize(10, 10); err != nil {
		t.Fatalf("Resize(10, 10) = %v", err)
	}
	if c := s.Snapshot().RGBAAt(5, 5); c != red {
		t.Errorf("content lost on same-size resize: %v", c)
	}

	if err := s.Resize(30, 20); err != nil {
		t.Fatalf("Resize(30, 20) = %v", err)
	}
	if s.Width() != 30 || s.Height() != 20 {
		t.Errorf("size = %dx%d, want 30x20", s.Width(), s.Height())
	}
	img := s.Snapshot()
	if img.Bounds() != image.Rect(0, 0, 30, 20) {
		t.Errorf("snapshot bounds = %v", img.Bounds())
	}
	if c := img.RGBAAt(5, 5); c != (color.RGBA{}) {
		t.Errorf("resized surface pixel = %v, want transparent", c)
	}

	if err := s.Resize(0, 5); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("Resize(0, 5) = %v, want ErrInvalidDimensions", err)
	}
}

func TestImageSurfaceSnapshotIsCopy(t *testing.T) {
	s := NewImageSurface(4, 4)
	defer s.Close()

	s.Clear(red)
	img := s.Snapshot()
	img.SetRGBA(0, 0, green)

	if c := s.Snapshot().RGBAAt(0, 0); c != red {
		t.Errorf("modifying the snapshot changed the surface: %v", c)
	}
}

func TestImageSurfaceClose(t *testing.T) {
	s := NewImageSurface(4, 4)

	if err := s.Close(); err != nil {
		t.Fatalf("Close() = %v", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("second Close() = %v, want nil", err)
	}

	// Drawing after Close is a no-op.
	s.Clear(red)
	s.FillRect(Rect{W: 2, H: 2}, red)
	s.StrokeRect(Rect{X: 0.5, Y: 0.5, W: 3, H: 3}, 1, red)

	if img := s.Snapshot(); img != nil {
		t.Error("Snapshot() after Close should return nil")
	}
	if err := s.Resize(8, 8); !errors.Is(err, ErrClosed) {
		t.Errorf("Resize() after Close = %v, want ErrClosed", err)
	}
}
