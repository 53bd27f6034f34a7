// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"image"
	"math"
)

// Rect is an axis-aligned rectangle in surface units.
// X and Y locate the top-left corner; W and H may be fractional.
type Rect struct {
	X, Y, W, H float64
}

// RectFrom converts an integer rectangle to Rect.
func RectFrom(r image.Rectangle) Rect {
	return Rect{
		X: float64(r.Min.X),
		Y: float64(r.Min.Y),
		W: float64(r.Dx()),
		H: float64(r.Dy()),
	}
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return !(r.W > 0 && r.H > 0)
}

// Inset returns r shrunk by d on every side.
func (r Rect) Inset(d float64) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, W: r.W - 2*d, H: r.H - 2*d}
}

// Pixels returns the pixels whose centers lie inside r.
// The result may be empty.
func (r Rect) Pixels() image.Rectangle {
	if r.Empty() {
		return image.Rectangle{}
	}
	return image.Rect(
		int(math.Ceil(r.X-0.5)),
		int(math.Ceil(r.Y-0.5)),
		int(math.Ceil(r.X+r.W-0.5)),
		int(math.Ceil(r.Y+r.H-0.5)),
	)
}

// outline returns the four bands a stroke of width w centered on the
// edges of r covers: top, bottom, left, right. Side bands exclude the
// corners already covered by the top and bottom bands.
func (r Rect) outline(w float64) [4]Rect {
	hw := w / 2
	outer := Rect{X: r.X - hw, Y: r.Y - hw, W: r.W + w, H: r.H + w}
	return [4]Rect{
		{X: outer.X, Y: outer.Y, W: outer.W, H: w},
		{X: outer.X, Y: r.Y + r.H - hw, W: outer.W, H: w},
		{X: outer.X, Y: r.Y + hw, W: w, H: r.H - w},
		{X: r.X + r.W - hw, Y: r.Y + hw, W: w, H: r.H - w},
	}
}
