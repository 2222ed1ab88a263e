package colour

import (
	"fmt"
	"image/color"
	"strings"
)

// RGB represents a colour in 8-bit sRGB.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB color as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the colour as an uppercase hex string (e.g., "#1A2B3C").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", rgb.R, rgb.G, rgb.B)
}

// Color converts the value to an opaque color.RGBA.
func (rgb RGB) Color() color.Color {
	return color.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255}
}

// ToRGB converts a color.Color to RGB.
func ToRGB(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	// RGBA returns values in the range [0, 65535], convert to [0, 255].
	return RGB{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
	}
}

// ParseHex parses "#RRGGBB" or "RRGGBB" (any case) into RGB.
// Anything else returns a *FormatError wrapping ErrInvalidFormat.
func ParseHex(hex string) (RGB, error) {
	digits := strings.TrimPrefix(hex, "#")
	if len(digits) != 6 {
		return RGB{}, &FormatError{Input: hex}
	}

	var ch [3]uint8
	for i := range ch {
		hi, ok1 := hexNibble(digits[2*i])
		lo, ok2 := hexNibble(digits[2*i+1])
		if !ok1 || !ok2 {
			return RGB{}, &FormatError{Input: hex}
		}
		ch[i] = hi<<4 | lo
	}

	return RGB{R: ch[0], G: ch[1], B: ch[2]}, nil
}

// ValidHex reports whether s is an acceptable hex colour.
func ValidHex(s string) bool {
	_, err := ParseHex(s)
	return err == nil
}

func hexNibble(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
