package squaregrid

import (
	"fmt"
	"image/color"
)

// Color is an opaque RGB color. Each component is in the range [0, 1].
type Color struct {
	R, G, B float64
}

// RGB creates a color from RGB components.
// Components outside [0, 1] are clamped, not rejected.
func RGB(r, g, b float64) Color {
	return Color{R: clamp01(r), G: clamp01(g), B: clamp01(b)}
}

// RGBA implements the color.Color interface.
// The returned values are alpha-premultiplied; Color is always opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	return to16(c.R), to16(c.G), to16(c.B), 0xffff
}

// NRGBA converts the color to an 8-bit color.NRGBA.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: 0xff,
	}
}

// String returns the color as #rrggbb.
func (c Color) String() string {
	n := c.NRGBA()
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}

// FromColor converts a standard color.Color to Color.
// Alpha is discarded after un-premultiplying.
func FromColor(c color.Color) Color {
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return Color{
		R: float64(n.R) / 0xffff,
		G: float64(n.G) / 0xffff,
		B: float64(n.B) / 0xffff,
	}
}

// Hex creates a color from a hex string.
// Supports formats: "RGB" and "RRGGBB", with or without a leading '#'.
// Malformed input yields Black.
func Hex(hex string) Color {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b uint32
	switch len(hex) {
	case 3:
		if !parseHex(hex[0:1], &r) || !parseHex(hex[1:2], &g) || !parseHex(hex[2:3], &b) {
			return Black
		}
		r, g, b = r*17, g*17, b*17
	case 6:
		if !parseHex(hex[0:2], &r) || !parseHex(hex[2:4], &g) || !parseHex(hex[4:6], &b) {
			return Black
		}
	default:
		return Black
	}

	return Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
	}
}

func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}

func clamp01(x float64) float64 {
	if x < 0 || x != x {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x + 0.5
}

func to16(x float64) uint32 {
	return uint32(clamp01(x)*0xffff + 0.5)
}

// Common colors
var (
	Black   = RGB(0, 0, 0)
	White   = RGB(1, 1, 1)
	Gray    = RGB(0.5, 0.5, 0.5)
	Red     = RGB(1, 0, 0)
	Green   = RGB(0, 1, 0)
	Blue    = RGB(0, 0, 1)
	Yellow  = RGB(1, 1, 0)
	Cyan    = RGB(0, 1, 1)
	Magenta = RGB(1, 0, 1)
)

// OptionalColor is either a color or nothing.
// The zero value holds no color.
//
// Cells without a color are painted with the grid's default color,
// and a grid color without a value disables grid lines.
type OptionalColor struct {
	color Color
	valid bool
}

// NoColor is the empty OptionalColor.
var NoColor OptionalColor

// Some wraps c in an OptionalColor.
func Some(c Color) OptionalColor {
	return OptionalColor{color: c, valid: true}
}

// Get returns the color and whether one is present.
func (o OptionalColor) Get() (Color, bool) {
	return o.color, o.valid
}

// Valid reports whether a color is present.
func (o OptionalColor) Valid() bool {
	return o.valid
}

// Or returns the held color, or def if there is none.
func (o OptionalColor) Or(def Color) Color {
	if o.valid {
		return o.color
	}
	return def
}

// String returns the color string or "none".
func (o OptionalColor) String() string {
	if !o.valid {
		return "none"
	}
	return o.color.String()
}
