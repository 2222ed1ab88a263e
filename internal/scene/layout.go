package scene

import (
	"errors"
	"fmt"

	"github.com/jmylchreest/shade/internal/colour"
)

// Layout controls where the palette frame and its swatches are placed.
type Layout struct {
	FrameName    string `yaml:"frame_name" json:"frame_name"`
	Width        int    `yaml:"width" json:"width"`
	Height       int    `yaml:"height" json:"height"`
	X            int    `yaml:"x" json:"x"`
	Y            int    `yaml:"y" json:"y"`
	Background   string `yaml:"background" json:"background"`
	SwatchSize   int    `yaml:"swatch_size" json:"swatch_size"`
	Spacing      int    `yaml:"spacing" json:"spacing"`
	Notification string `yaml:"notification" json:"notification"`
}

// DefaultLayout returns a 1600x100 frame with 100px swatches every 150px.
func DefaultLayout() Layout {
	return Layout{
		FrameName:    "Color Palette",
		Width:        1600,
		Height:       100,
		X:            0,
		Y:            -200,
		Background:   "#E9E9E9",
		SwatchSize:   100,
		Spacing:      150,
		Notification: "Palette created!",
	}
}

// Validate checks sizes are positive and the background is a hex colour.
func (l Layout) Validate() error {
	var errs []error
	if l.Width <= 0 || l.Height <= 0 {
		errs = append(errs, fmt.Errorf("frame size must be positive, got %dx%d", l.Width, l.Height))
	}
	if l.SwatchSize <= 0 {
		errs = append(errs, fmt.Errorf("swatch size must be positive, got %d", l.SwatchSize))
	}
	if l.Spacing <= 0 {
		errs = append(errs, fmt.Errorf("spacing must be positive, got %d", l.Spacing))
	}
	if _, err := colour.ParseHex(l.Background); err != nil {
		errs = append(errs, fmt.Errorf("background: %w", err))
	}
	return errors.Join(errs...)
}
