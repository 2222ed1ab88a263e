// Package output provides the interface and registry for scene output backends.
package output

import (
	"io"
	"slices"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/shade/internal/scene"
)

// Options are passed to a backend when it opens a scene.
type Options struct {
	// Output is the destination file. Empty means Stdout.
	Output string

	// Stdout receives output when no file is given.
	Stdout io.Writer

	// Stderr receives diagnostics from external processes.
	Stderr io.Writer

	// Layout is the palette layout being rendered.
	Layout scene.Layout

	// Logger is the backend's named logger.
	Logger hclog.Logger

	// Verbose enables plugin host logging.
	Verbose bool
}

// Plugin is an output backend that renders a palette scene somewhere.
type Plugin interface {
	// Name returns the backend's name (e.g., "png", "terminal").
	Name() string

	// Description returns a human-readable description of the backend.
	Description() string

	// RegisterFlags registers backend-specific flags with cobra command.
	RegisterFlags(cmd *cobra.Command)

	// Validate checks if the backend configuration is valid.
	Validate() error

	// Open returns a SceneBuilder. Output is written on Close and
	// discarded on Abort.
	Open(opts Options) (scene.SceneBuilder, error)
}

// Registry holds all registered output backends.
type Registry struct {
	plugins map[string]Plugin
}

// NewRegistry creates a new backend registry.
func NewRegistry() *Registry {
	return &Registry{
		plugins: make(map[string]Plugin),
	}
}

// Register adds a backend to the registry.
func (r *Registry) Register(plugin Plugin) {
	r.plugins[plugin.Name()] = plugin
}

// Get retrieves a backend by name.
func (r *Registry) Get(name string) (Plugin, bool) {
	plugin, ok := r.plugins[name]
	return plugin, ok
}

// List returns all registered backend names in sorted order.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.plugins))
	for name := range r.plugins {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// All returns all registered backends.
func (r *Registry) All() map[string]Plugin {
	// Return a copy to prevent external modification
	plugins := make(map[string]Plugin, len(r.plugins))
	for name, plugin := range r.plugins {
		plugins[name] = plugin
	}
	return plugins
}
