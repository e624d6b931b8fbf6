package core

import (
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is an RGB colour with an opacity.
// Channels are on the 0-255 scale and may be fractional; A is in [0, 1].
type Color struct {
	R, G, B float64
	A       float64
}

// Predefined colors.
var (
	White = Color{R: 255, G: 255, B: 255, A: 1}
	Black = Color{A: 1}
)

// RGB returns an opaque color.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// ParseHex parses "#rrggbb" into an opaque color.
func ParseHex(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("core: invalid color %q: %w", s, err)
	}
	return Color{R: c.R * 255, G: c.G * 255, B: c.B * 255, A: 1}, nil
}

// MustHex is like ParseHex but panics on malformed input.
// Intended for package-level constants.
func MustHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// WithAlpha returns a copy of c with opacity a, clamped to [0, 1].
func (c Color) WithAlpha(a float64) Color {
	c.A = ClampF(a, 0, 1)
	return c
}

// Over composites c onto an opaque background and returns the opaque result.
func (c Color) Over(bg Color) Color {
	mixed := bg.colorful().BlendRgb(c.colorful(), ClampF(c.A, 0, 1))
	return Color{R: mixed.R * 255, G: mixed.G * 255, B: mixed.B * 255, A: 1}
}

// Hex formats the RGB channels as "#rrggbb", ignoring opacity.
func (c Color) Hex() string {
	return c.colorful().Clamped().Hex()
}

// RGBA8 returns non-premultiplied 8-bit channels.
func (c Color) RGBA8() (r, g, b, a uint8) {
	return channel8(c.R), channel8(c.G), channel8(c.B), channel8(ClampF(c.A, 0, 1) * 255)
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: c.R / 255, G: c.G / 255, B: c.B / 255}
}

func channel8(v float64) uint8 {
	return uint8(math.Round(ClampF(v, 0, 255)))
}
