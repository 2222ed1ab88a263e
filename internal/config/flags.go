package config

import (
	"github.com/spf13/pflag"
)

// Flags holds command-line overrides. Only flags the user actually set are
// applied.
type Flags struct {
	backend    string
	output     string
	plugin     string
	background string
	swatchSize int
	spacing    int
	frameName  string
}

// RegisterFlags adds the override flags to fs.
func RegisterFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{}
	d := Default()
	fs.StringVarP(&f.backend, "backend", "b", d.Backend, "output backend")
	fs.StringVarP(&f.output, "output", "o", "", "output file (default: stdout)")
	fs.StringVar(&f.plugin, "plugin", "", "scene host plugin binary for the plugin backend")
	fs.StringVar(&f.background, "background", d.Layout.Background, "frame background colour")
	fs.IntVar(&f.swatchSize, "swatch-size", d.Layout.SwatchSize, "swatch width and height")
	fs.IntVar(&f.spacing, "spacing", d.Layout.Spacing, "horizontal distance between swatches")
	fs.StringVar(&f.frameName, "frame-name", d.Layout.FrameName, "name of the palette frame")
	return f
}

// Apply copies every changed flag in fs onto c.
func (f *Flags) Apply(fs *pflag.FlagSet, c *Config) {
	if fs.Changed("backend") {
		c.Backend = f.backend
	}
	if fs.Changed("output") {
		c.Output = f.output
	}
	if fs.Changed("plugin") {
		c.Plugin = f.plugin
	}
	if fs.Changed("background") {
		c.Layout.Background = f.background
	}
	if fs.Changed("swatch-size") {
		c.Layout.SwatchSize = f.swatchSize
	}
	if fs.Changed("spacing") {
		c.Layout.Spacing = f.spacing
	}
	if fs.Changed("frame-name") {
		c.Layout.FrameName = f.frameName
	}
}
