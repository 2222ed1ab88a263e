package colour

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestCreateHSLPalette(t *testing.T) {
	primary := HSL{H: 0, S: 100, L: 50}
	palette := CreateHSLPalette(primary)

	want := Palette{
		{H: 0, S: 100, L: 0},
		{H: 0, S: 100, L: 10},
		{H: 0, S: 100, L: 20},
		{H: 0, S: 100, L: 30},
		{H: 0, S: 100, L: 40},
		{H: 0, S: 100, L: 50},
		{H: 0, S: 100, L: 60},
		{H: 0, S: 100, L: 70},
		{H: 0, S: 100, L: 80},
		{H: 0, S: 100, L: 90},
		{H: 0, S: 100, L: 100},
	}

	if !reflect.DeepEqual(palette, want) {
		t.Errorf("CreateHSLPalette() = %v, want %v", palette, want)
	}
}

func TestCreateHSLPaletteHex(t *testing.T) {
	palette := CreateHSLPalette(HSL{H: 0, S: 100, L: 50})

	want := []string{
		"#000000",
		"#330000",
		"#660000",
		"#990000",
		"#CC0000",
		"#FF0000",
		"#FF3333",
		"#FF6666",
		"#FF9999",
		"#FFCCCC",
		"#FFFFFF",
	}

	if got := palette.Hex(); !reflect.DeepEqual(got, want) {
		t.Errorf("Hex() = %v, want %v", got, want)
	}
}

func TestCreateHSLPaletteShape(t *testing.T) {
	bases := []HSL{
		{H: 0, S: 0, L: 0},
		{H: 359, S: 100, L: 100},
		{H: 210, S: 50, L: 40},
		{H: 45, S: 7, L: 93},
	}

	for _, base := range bases {
		t.Run(base.String(), func(t *testing.T) {
			palette := CreateHSLPalette(base)
			if palette.Len() != PaletteSteps {
				t.Fatalf("Len() = %d, want %d", palette.Len(), PaletteSteps)
			}
			for i, c := range palette.All() {
				if c.H != base.H || c.S != base.S {
					t.Errorf("entry %d = %v, hue/saturation changed from %v", i, c, base)
				}
				if c.L != i*LightnessStep {
					t.Errorf("entry %d lightness = %d, want %d", i, c.L, i*LightnessStep)
				}
			}
		})
	}
}

func TestPaletteFromHex(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		palette, err := PaletteFromHex("#00FF00")
		if err != nil {
			t.Fatalf("PaletteFromHex() error = %v", err)
		}
		hex := palette.Hex()
		if hex[5] != "#00FF00" {
			t.Errorf("midpoint = %s, want #00FF00", hex[5])
		}
		if hex[0] != "#000000" || hex[10] != "#FFFFFF" {
			t.Errorf("endpoints = %s..%s, want #000000..#FFFFFF", hex[0], hex[10])
		}
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := PaletteFromHex("#12345")
		if !errors.Is(err, ErrInvalidFormat) {
			t.Errorf("PaletteFromHex() error = %v, want ErrInvalidFormat", err)
		}
	})
}

func TestPaletteToJSON(t *testing.T) {
	palette := CreateHSLPalette(HSL{H: 120, S: 100, L: 50})

	data, err := palette.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}

	var decoded PaletteJSON
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	if decoded.Count != PaletteSteps {
		t.Errorf("count = %d, want %d", decoded.Count, PaletteSteps)
	}
	mid := decoded.Colours[5]
	if mid.Hex != "#00FF00" {
		t.Errorf("colours[5].hex = %s, want #00FF00", mid.Hex)
	}
	if mid.HSL != (HSL{H: 120, S: 100, L: 50}) {
		t.Errorf("colours[5].hsl = %v", mid.HSL)
	}
	if mid.RGB != (RGB{R: 0, G: 255, B: 0}) {
		t.Errorf("colours[5].rgb = %v", mid.RGB)
	}
}

func TestPaletteString(t *testing.T) {
	if got := Palette(nil).String(); got != "Empty palette" {
		t.Errorf("String() = %q, want %q", got, "Empty palette")
	}

	s := CreateHSLPalette(HSL{H: 0, S: 100, L: 50}).String()
	if !strings.HasPrefix(s, "Palette with 11 colours:") {
		t.Errorf("String() header = %q", strings.SplitN(s, "\n", 2)[0])
	}
	if !strings.Contains(s, "#FF3333 hsl(0, 100%, 60%)") {
		t.Errorf("String() missing entry for #FF3333:\n%s", s)
	}
}

func TestPaletteAllStopsEarly(t *testing.T) {
	palette := CreateHSLPalette(HSL{H: 10, S: 20, L: 30})

	count := 0
	for range palette.All() {
		count++
		if count == 3 {
			break
		}
	}
	if count != 3 {
		t.Errorf("iterated %d entries, want 3", count)
	}
}
