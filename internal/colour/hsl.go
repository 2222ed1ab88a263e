package colour

import (
	"fmt"
	"math"
)

// HSL is a colour in whole-number HSL: hue in degrees [0,360),
// saturation and lightness in percent [0,100].
type HSL struct {
	H int `json:"h"`
	S int `json:"s"`
	L int `json:"l"`
}

// String returns the colour in CSS notation, e.g. "hsl(120, 100%, 50%)".
func (c HSL) String() string {
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", c.H, c.S, c.L)
}

// Hex converts the colour to "#RRGGBB".
func (c HSL) Hex() string {
	return HSLToHex(c.H, c.S, c.L)
}

// RGB converts the colour to 8-bit sRGB.
func (c HSL) RGB() RGB {
	return HSLToRGB(c.H, c.S, c.L)
}

// HexToHSL parses a 6-digit hex colour (optional leading '#') and converts
// it to whole-number HSL.
func HexToHSL(hex string) (HSL, error) {
	rgb, err := ParseHex(hex)
	if err != nil {
		return HSL{}, err
	}
	return RGBToHSL(rgb), nil
}

// RGBToHSL converts RGB to HSL, rounding each component to the nearest
// integer. A hue that rounds up to 360 is reported as 0.
func RGBToHSL(rgb RGB) HSL {
	r := float64(rgb.R) / 255.0
	g := float64(rgb.G) / 255.0
	b := float64(rgb.B) / 255.0

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))

	// Lightness.
	l := (maxVal + minVal) / 2.0

	var h, s float64
	if maxVal != minVal {
		d := maxVal - minVal

		// Saturation.
		if l > 0.5 {
			s = d / (2.0 - maxVal - minVal)
		} else {
			s = d / (maxVal + minVal)
		}

		// Hue.
		switch maxVal {
		case r:
			h = (g - b) / d
			if g < b {
				h += 6
			}
		case g:
			h = (b-r)/d + 2
		case b:
			h = (r-g)/d + 4
		}
		h /= 6
	}

	hue := int(math.Round(h * 360))
	if hue >= 360 {
		hue -= 360
	}

	return HSL{
		H: hue,
		S: int(math.Round(s * 100)),
		L: int(math.Round(l * 100)),
	}
}

// HSLToHex converts whole-number HSL to an uppercase "#RRGGBB" string.
// Out-of-range input is clamped, see HSLToRGB.
func HSLToHex(h, s, l int) string {
	return HSLToRGB(h, s, l).Hex()
}

// HSLToRGB converts whole-number HSL to RGB. The hue wraps modulo 360
// and saturation and lightness are clamped to [0,100].
func HSLToRGB(h, s, l int) RGB {
	hue := float64(wrapHue(h))
	sat := float64(clampPercent(s)) / 100.0
	lum := float64(clampPercent(l)) / 100.0

	c := (1 - math.Abs(2*lum-1)) * sat
	x := c * (1 - math.Abs(math.Mod(hue/60, 2)-1))
	m := lum - c/2

	var r, g, b float64
	switch {
	case hue < 60:
		r, g, b = c, x, 0
	case hue < 120:
		r, g, b = x, c, 0
	case hue < 180:
		r, g, b = 0, c, x
	case hue < 240:
		r, g, b = 0, x, c
	case hue < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return RGB{
		R: toChannel(r + m),
		G: toChannel(g + m),
		B: toChannel(b + m),
	}
}

// toChannel scales a [0,1] component to a rounded, clamped 8-bit channel.
func toChannel(v float64) uint8 {
	return uint8(math.Max(0, math.Min(255, math.Round(v*255))))
}

func wrapHue(h int) int {
	h %= 360
	if h < 0 {
		h += 360
	}
	return h
}

func clampPercent(v int) int {
	return max(0, min(100, v))
}
