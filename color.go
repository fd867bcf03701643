package vscene

import (
	"image/color"
	"math"
	"strings"

	"golang.org/x/image/colornames"
)

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// Common colors.
var (
	Transparent = RGBA{0, 0, 0, 0}
	Black       = RGBA{0, 0, 0, 1}
	White       = RGBA{1, 1, 1, 1}
	Red         = RGBA{1, 0, 0, 1}
	Green       = RGBA{0, 1, 0, 1}
	Blue        = RGBA{0, 0, 1, 1}
)

// RGB creates an opaque RGBA color from components in [0, 1].
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1}
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	r, g, b, a := c.RGBA()
	return RGBA{
		R: float64(r) / 65535,
		G: float64(g) / 65535,
		B: float64(b) / 65535,
		A: float64(a) / 65535,
	}
}

// clamp255 clamps a value to the [0, 255] range.
func clamp255(v float64) float64 {
	return math.Max(0, math.Min(255, math.Round(v)))
}

// Hex parses a hex color string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with optional '#'.
// Invalid input yields Transparent.
func Hex(hex string) RGBA {
	hex = strings.TrimPrefix(hex, "#")

	var digits []uint8
	for _, r := range hex {
		v := hexDigit(r)
		if v < 0 {
			return Transparent
		}
		digits = append(digits, uint8(v))
	}

	switch len(digits) {
	case 3:
		return RGBA{
			R: float64(digits[0]*17) / 255,
			G: float64(digits[1]*17) / 255,
			B: float64(digits[2]*17) / 255,
			A: 1,
		}
	case 4:
		return RGBA{
			R: float64(digits[0]*17) / 255,
			G: float64(digits[1]*17) / 255,
			B: float64(digits[2]*17) / 255,
			A: float64(digits[3]*17) / 255,
		}
	case 6:
		return RGBA{
			R: float64(digits[0]<<4|digits[1]) / 255,
			G: float64(digits[2]<<4|digits[3]) / 255,
			B: float64(digits[4]<<4|digits[5]) / 255,
			A: 1,
		}
	case 8:
		return RGBA{
			R: float64(digits[0]<<4|digits[1]) / 255,
			G: float64(digits[2]<<4|digits[3]) / 255,
			B: float64(digits[4]<<4|digits[5]) / 255,
			A: float64(digits[6]<<4|digits[7]) / 255,
		}
	}
	return Transparent
}

// hexDigit returns the value of a hex digit rune, or -1 if invalid.
func hexDigit(r rune) int {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0')
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10
	case r >= 'A' && r <= 'F':
		return int(r-'A') + 10
	}
	return -1
}

// ColorByName looks up an SVG 1.1 color name (case-insensitive).
// Returns Transparent and false if the name is unknown.
func ColorByName(name string) (RGBA, bool) {
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return Transparent, false
	}
	return FromColor(c), true
}

// ParseColor interprets a paint string: "#RRGGBB" hex forms or an SVG color
// name such as "red". Unknown strings yield Transparent and false.
func ParseColor(s string) (RGBA, bool) {
	if strings.HasPrefix(s, "#") {
		c := Hex(s)
		return c, c != Transparent || s == "#0000" || s == "#00000000"
	}
	return ColorByName(s)
}
