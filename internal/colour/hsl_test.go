package colour

import (
	"errors"
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func TestHexToHSL(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		want HSL
	}{
		{name: "red", hex: "#FF0000", want: HSL{H: 0, S: 100, L: 50}},
		{name: "green", hex: "#00FF00", want: HSL{H: 120, S: 100, L: 50}},
		{name: "blue", hex: "#0000FF", want: HSL{H: 240, S: 100, L: 50}},
		{name: "no hash", hex: "FF0000", want: HSL{H: 0, S: 100, L: 50}},
		{name: "lowercase", hex: "#00ff00", want: HSL{H: 120, S: 100, L: 50}},
		{name: "black", hex: "#000000", want: HSL{H: 0, S: 0, L: 0}},
		{name: "white", hex: "#FFFFFF", want: HSL{H: 0, S: 0, L: 100}},
		{name: "mid grey", hex: "#808080", want: HSL{H: 0, S: 0, L: 50}},
		{name: "yellow", hex: "#FFFF00", want: HSL{H: 60, S: 100, L: 50}},
		{name: "cyan", hex: "#00FFFF", want: HSL{H: 180, S: 100, L: 50}},
		{name: "magenta", hex: "#FF00FF", want: HSL{H: 300, S: 100, L: 50}},
		{name: "hue wraps to zero", hex: "#FF0001", want: HSL{H: 0, S: 100, L: 50}},
		{name: "light pink", hex: "#FFCCCC", want: HSL{H: 0, S: 100, L: 90}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := HexToHSL(tt.hex)
			if err != nil {
				t.Fatalf("HexToHSL(%q) error = %v", tt.hex, err)
			}
			if got != tt.want {
				t.Errorf("HexToHSL(%q) = %+v, want %+v", tt.hex, got, tt.want)
			}
		})
	}
}

func TestHexToHSLInvalidFormat(t *testing.T) {
	inputs := []string{
		"",
		"#",
		"#FFF",
		"#FF00000",
		"##FF0000",
		"#GG0000",
		"FF 000",
		" #FF0000",
		"#FF000Z",
		"0xFF0000",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			_, err := HexToHSL(in)
			if err == nil {
				t.Fatalf("HexToHSL(%q) expected error", in)
			}
			if !errors.Is(err, ErrInvalidFormat) {
				t.Errorf("HexToHSL(%q) error = %v, want ErrInvalidFormat", in, err)
			}

			var fe *FormatError
			if !errors.As(err, &fe) {
				t.Fatalf("HexToHSL(%q) error is %T, want *FormatError", in, err)
			}
			if fe.Input != in {
				t.Errorf("FormatError.Input = %q, want %q", fe.Input, in)
			}
		})
	}
}

func TestHSLToHex(t *testing.T) {
	tests := []struct {
		name    string
		h, s, l int
		want    string
	}{
		{name: "red", h: 0, s: 100, l: 50, want: "#FF0000"},
		{name: "green", h: 120, s: 100, l: 50, want: "#00FF00"},
		{name: "blue", h: 240, s: 100, l: 50, want: "#0000FF"},
		{name: "black", h: 0, s: 0, l: 0, want: "#000000"},
		{name: "white", h: 200, s: 40, l: 100, want: "#FFFFFF"},
		{name: "dark red pads zeros", h: 0, s: 100, l: 10, want: "#330000"},
		{name: "orange", h: 30, s: 100, l: 50, want: "#FF8000"},
		{name: "last sector", h: 330, s: 100, l: 50, want: "#FF0080"},
		{name: "hue 360 wraps", h: 360, s: 100, l: 50, want: "#FF0000"},
		{name: "negative hue wraps", h: -120, s: 100, l: 50, want: "#0000FF"},
		{name: "saturation clamps high", h: 0, s: 150, l: 50, want: "#FF0000"},
		{name: "saturation clamps low", h: 0, s: -10, l: 50, want: "#808080"},
		{name: "lightness clamps high", h: 0, s: 100, l: 130, want: "#FFFFFF"},
		{name: "lightness clamps low", h: 0, s: 100, l: -5, want: "#000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HSLToHex(tt.h, tt.s, tt.l); got != tt.want {
				t.Errorf("HSLToHex(%d, %d, %d) = %s, want %s", tt.h, tt.s, tt.l, got, tt.want)
			}
		})
	}
}

// TestRGBToHSLRanges walks a coarse grid of the RGB cube and checks every
// result is in range and agrees with go-colorful to within rounding.
func TestRGBToHSLRanges(t *testing.T) {
	for r := 0; r <= 255; r += 15 {
		for g := 0; g <= 255; g += 15 {
			for b := 0; b <= 255; b += 15 {
				rgb := RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
				got := RGBToHSL(rgb)

				if got.H < 0 || got.H >= 360 {
					t.Fatalf("%s: hue %d out of range", rgb.Hex(), got.H)
				}
				if got.S < 0 || got.S > 100 {
					t.Fatalf("%s: saturation %d out of range", rgb.Hex(), got.S)
				}
				if got.L < 0 || got.L > 100 {
					t.Fatalf("%s: lightness %d out of range", rgb.Hex(), got.L)
				}

				oh, os, ol := colorful.Color{
					R: float64(r) / 255,
					G: float64(g) / 255,
					B: float64(b) / 255,
				}.Hsl()
				if d := math.Abs(float64(got.L) - ol*100); d > 1 {
					t.Errorf("%s: lightness %d, go-colorful %.2f", rgb.Hex(), got.L, ol*100)
				}
				if got.S == 0 {
					continue
				}
				if d := math.Abs(float64(got.S) - os*100); d > 1 {
					t.Errorf("%s: saturation %d, go-colorful %.2f", rgb.Hex(), got.S, os*100)
				}
				if d := hueDistance(float64(got.H), oh); d > 1 {
					t.Errorf("%s: hue %d, go-colorful %.2f", rgb.Hex(), got.H, oh)
				}
			}
		}
	}
}

func TestHSLToRGBMatchesColorful(t *testing.T) {
	for h := 0; h < 360; h += 7 {
		for s := 0; s <= 100; s += 9 {
			for l := 0; l <= 100; l += 9 {
				got := HSLToRGB(h, s, l)
				want := colorful.Hsl(float64(h), float64(s)/100, float64(l)/100).Clamped()
				wr, wg, wb := want.RGB255()

				if absDiff(got.R, wr) > 1 || absDiff(got.G, wg) > 1 || absDiff(got.B, wb) > 1 {
					t.Errorf("HSLToRGB(%d, %d, %d) = %s, go-colorful %s", h, s, l, got.Hex(), want.Hex())
				}
			}
		}
	}
}

func TestRoundTripExact(t *testing.T) {
	t.Run("greys", func(t *testing.T) {
		for v := 0; v <= 255; v++ {
			in := RGB{R: uint8(v), G: uint8(v), B: uint8(v)}
			out := RGBToHSL(in).RGB()
			if d := maxChannelDiff(in, out); d > 1 {
				t.Errorf("%s -> %s differs by %d", in.Hex(), out.Hex(), d)
			}
		}
	})

	t.Run("named colours", func(t *testing.T) {
		for _, hex := range []string{
			"#FF0000", "#00FF00", "#0000FF", "#FFFF00", "#00FFFF", "#FF00FF",
			"#000000", "#FFFFFF", "#808080", "#FF8000", "#336699", "#CC0000",
			"#FF3333", "#FF6666", "#FF9999", "#FFCCCC", "#330000", "#990000",
		} {
			hsl, err := HexToHSL(hex)
			if err != nil {
				t.Fatalf("HexToHSL(%q) error = %v", hex, err)
			}
			if got := hsl.Hex(); got != hex {
				in, _ := ParseHex(hex)
				out, _ := ParseHex(got)
				if d := maxChannelDiff(in, out); d > 1 {
					t.Errorf("%s -> %v -> %s differs by %d", hex, hsl, got, d)
				}
			}
		}
	})
}

// TestRoundTripQuantisation checks the whole cube against the worst case
// introduced by whole-number H, S and L.
func TestRoundTripQuantisation(t *testing.T) {
	const tolerance = 5

	for r := 0; r <= 255; r += 5 {
		for g := 0; g <= 255; g += 5 {
			for b := 0; b <= 255; b += 5 {
				in := RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
				out := RGBToHSL(in).RGB()
				if d := maxChannelDiff(in, out); d > tolerance {
					t.Errorf("%s -> %s differs by %d", in.Hex(), out.Hex(), d)
				}
			}
		}
	}
}

func hueDistance(a, b float64) float64 {
	d := math.Abs(a - b)
	if d > 180 {
		d = 360 - d
	}
	return d
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

func maxChannelDiff(a, b RGB) int {
	return max(absDiff(a.R, b.R), absDiff(a.G, b.G), absDiff(a.B, b.B))
}
