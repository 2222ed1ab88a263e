// Package logger builds the hclog loggers used across shade.
package logger

import (
	"io"

	"github.com/hashicorp/go-hclog"
)

// Options selects the log level for a new logger.
type Options struct {
	Name    string
	Output  io.Writer
	Verbose bool
	Quiet   bool
}

// New returns a logger at Debug when verbose, Warn when quiet and Info
// otherwise. Verbose wins over quiet.
func New(opts Options) hclog.Logger {
	level := hclog.Info
	switch {
	case opts.Verbose:
		level = hclog.Debug
	case opts.Quiet:
		level = hclog.Warn
	}

	name := opts.Name
	if name == "" {
		name = "shade"
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   name,
		Output: opts.Output,
		Level:  level,
	})
}

// Plugin returns the logger handed to go-plugin clients. Plugin chatter is
// only shown when verbose.
func Plugin(output io.Writer, verbose bool) hclog.Logger {
	if !verbose {
		return hclog.New(&hclog.LoggerOptions{
			Name:   "plugin",
			Output: io.Discard,
			Level:  hclog.Off,
		})
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "plugin",
		Output: output,
		Level:  hclog.Debug,
	})
}
