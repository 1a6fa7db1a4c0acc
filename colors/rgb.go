package colors

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
)

// ErrInvalidColor is returned when a string cannot be parsed as a color.
var ErrInvalidColor = errors.New("colors: invalid color")

// RGB is an opaque sRGB color with 8-bit channels.
type RGB struct {
	R, G, B uint8
}

// Common colors
var (
	Black = RGB{0, 0, 0}
	White = RGB{255, 255, 255}
	Red   = RGB{255, 0, 0}
	Green = RGB{0, 255, 0}
	Blue  = RGB{0, 0, 255}
)

// Hex returns the color as a lowercase "#rrggbb" string.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String implements fmt.Stringer.
func (c RGB) String() string {
	return c.Hex()
}

// Color converts c to the standard color.Color interface.
func (c RGB) Color() color.Color {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// FromColor converts a standard color.Color to RGB.
// Alpha is dropped after un-premultiplying.
func FromColor(c color.Color) RGB {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB{R: n.R, G: n.G, B: n.B}
}

// Hex parses a hex color string.
// Supports formats: "RGB", "RRGGBB", each optionally prefixed with '#'.
func Hex(hex string) (RGB, error) {
	s := strings.TrimPrefix(hex, "#")

	var r, g, b uint32
	switch len(s) {
	case 3: // RGB
		if !parseHex(s[0:1], &r) || !parseHex(s[1:2], &g) || !parseHex(s[2:3], &b) {
			return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
		}
		r, g, b = r*17, g*17, b*17
	case 6: // RRGGBB
		if !parseHex(s[0:2], &r) || !parseHex(s[2:4], &g) || !parseHex(s[4:6], &b) {
			return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
		}
	default:
		return RGB{}, fmt.Errorf("%w: %q has %d hex digits", ErrInvalidColor, hex, len(s))
	}

	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}

// MustHex is like Hex but panics on malformed input.
// It is intended for package-level palettes.
func MustHex(hex string) RGB {
	c, err := Hex(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// Parse parses a hex color or a CSS/SVG color keyword such as "steelblue".
// Keywords are matched case-insensitively.
func Parse(s string) (RGB, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		return Hex(s)
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return RGB{R: c.R, G: c.G, B: c.B}, nil
	}
	if c, err := Hex(s); err == nil {
		return c, nil
	}
	return RGB{}, fmt.Errorf("%w: unknown color %q", ErrInvalidColor, s)
}

// parseHex accumulates hex digits of s into val and reports whether all
// digits were valid.
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
