// Package colour converts between hex and HSL colours and builds
// lightness-stepped palettes from a single base colour.
package colour

import (
	"encoding/json"
	"fmt"
)

const (
	// PaletteSteps is the number of entries in a generated palette.
	PaletteSteps = 11

	// LightnessStep is the lightness increment between palette entries.
	LightnessStep = 10
)

// Palette is an ordered set of colours sharing hue and saturation.
type Palette []HSL

// CreateHSLPalette returns eleven colours with the base hue and saturation
// and lightness 0, 10, ..., 100 in ascending order. The base lightness is
// ignored.
func CreateHSLPalette(base HSL) Palette {
	p := make(Palette, PaletteSteps)
	for i := range p {
		p[i] = HSL{H: base.H, S: base.S, L: i * LightnessStep}
	}
	return p
}

// PaletteFromHex parses a hex colour and expands it into a palette.
func PaletteFromHex(hex string) (Palette, error) {
	base, err := HexToHSL(hex)
	if err != nil {
		return nil, err
	}
	return CreateHSLPalette(base), nil
}

// Len returns the number of colours in the palette.
func (p Palette) Len() int {
	return len(p)
}

// Hex converts every entry to "#RRGGBB".
func (p Palette) Hex() []string {
	out := make([]string, len(p))
	for i, c := range p {
		out[i] = c.Hex()
	}
	return out
}

// RGB converts every entry to RGB.
func (p Palette) RGB() []RGB {
	out := make([]RGB, len(p))
	for i, c := range p {
		out[i] = c.RGB()
	}
	return out
}

// ColourJSON represents a palette entry in JSON output format.
type ColourJSON struct {
	Hex string `json:"hex"`
	HSL HSL    `json:"hsl"`
	RGB RGB    `json:"rgb"`
}

// PaletteJSON represents the palette in JSON format.
type PaletteJSON struct {
	Count   int          `json:"count"`
	Colours []ColourJSON `json:"colours"`
}

// ToJSON converts the palette to indented JSON.
func (p Palette) ToJSON() ([]byte, error) {
	colours := make([]ColourJSON, len(p))
	for i, c := range p {
		rgb := c.RGB()
		colours[i] = ColourJSON{
			Hex: rgb.Hex(),
			HSL: c,
			RGB: rgb,
		}
	}

	return json.MarshalIndent(PaletteJSON{
		Count:   len(p),
		Colours: colours,
	}, "", "  ")
}

// String returns a human-readable listing of the palette.
func (p Palette) String() string {
	if len(p) == 0 {
		return "Empty palette"
	}

	result := fmt.Sprintf("Palette with %d colours:\n", len(p))
	for i, c := range p {
		result += fmt.Sprintf("  %2d: %s %s\n", i+1, c.Hex(), c.String())
	}
	return result
}

// All returns an iterator over all colours in the palette.
func (p Palette) All() func(func(int, HSL) bool) {
	return func(yield func(int, HSL) bool) {
		for i, c := range p {
			if !yield(i, c) {
				return
			}
		}
	}
}
