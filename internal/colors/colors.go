// Package colors implements the color-string grammar accepted in signature options.
//
// A color is either a hex literal (#RGB or #RRGGBB, hex digits in any case) or
// one of the CSS named colors below, matched exactly in lowercase.
package colors

import (
	"math"
	"strings"
)

// RGB is an 8-bit-per-channel color
type RGB struct {
	R, G, B uint8
}

// Transparent is accepted as a named color but has no RGB value.
const Transparent = "transparent"

// Valid reports whether s is a recognized color string.
func Valid(s string) bool {
	if s == Transparent {
		return true
	}
	_, ok := Parse(s)
	return ok
}

// Parse returns the RGB value of a hex or named color.
// It reports false for transparent and for anything outside the grammar.
func Parse(s string) (RGB, bool) {
	if strings.HasPrefix(s, "#") {
		return parseHex(s[1:])
	}
	v, ok := named[s]
	if !ok {
		return RGB{}, false
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, true
}

// Canonical trims surrounding whitespace and lowercases hex literals.
// Named colors and unrecognized strings are only trimmed.
func Canonical(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		if _, ok := parseHex(s[1:]); ok {
			return strings.ToLower(s)
		}
	}
	return s
}

// Luminance returns the relative luminance of c in [0, 1] (WCAG 2.x).
func Luminance(c RGB) float64 {
	return 0.2126*linear(c.R) + 0.7152*linear(c.G) + 0.0722*linear(c.B)
}

func linear(channel uint8) float64 {
	v := float64(channel) / 255
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

func parseHex(digits string) (RGB, bool) {
	switch len(digits) {
	case 3:
		var out [3]uint8
		for i := 0; i < 3; i++ {
			n, ok := hexNibble(digits[i])
			if !ok {
				return RGB{}, false
			}
			out[i] = n<<4 | n
		}
		return RGB{R: out[0], G: out[1], B: out[2]}, true
	case 6:
		var out [3]uint8
		for i := 0; i < 3; i++ {
			hi, ok1 := hexNibble(digits[2*i])
			lo, ok2 := hexNibble(digits[2*i+1])
			if !ok1 || !ok2 {
				return RGB{}, false
			}
			out[i] = hi<<4 | lo
		}
		return RGB{R: out[0], G: out[1], B: out[2]}, true
	default:
		return RGB{}, false
	}
}

func hexNibble(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}
