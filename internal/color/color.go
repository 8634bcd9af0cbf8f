// Package color parses hex colors and picks readable foregrounds for them.
package color

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	// Black is returned by ContrastColor for light backgrounds.
	Black = "#000000"
	// White is returned by ContrastColor for dark backgrounds.
	White = "#FFFFFF"

	lumaThreshold = 186
)

// RGB is an 8-bit per channel color.
type RGB struct {
	R, G, B uint8
}

// Luma returns the perceived brightness, 0.299R + 0.587G + 0.114B.
func (c RGB) Luma() float64 {
	return float64(c.R)*0.299 + float64(c.G)*0.587 + float64(c.B)*0.114
}

// HexToRGB parses "#rgb", "#rrggbb" or the same without the leading '#'.
// Shorthand digits are doubled. Anything else reports ok=false.
func HexToRGB(s string) (RGB, bool) {
	s = strings.TrimPrefix(s, "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 || !isHex(s) {
		return RGB{}, false
	}

	c, err := colorful.Hex("#" + s)
	if err != nil {
		return RGB{}, false
	}
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}, true
}

// ContrastColor returns Black or White, whichever reads better on s, or ""
// when s is not a parseable hex color.
func ContrastColor(s string) string {
	rgb, ok := HexToRGB(s)
	if !ok {
		return ""
	}
	if rgb.Luma() > lumaThreshold {
		return Black
	}
	return White
}

func isHex(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
