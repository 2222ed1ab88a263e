// Package record provides an output backend that writes the scene tree as JSON.
package record

import (
	"github.com/spf13/cobra"

	"github.com/jmylchreest/shade/internal/plugin/output"
	"github.com/jmylchreest/shade/internal/plugin/output/common"
	"github.com/jmylchreest/shade/internal/scene"
)

// Plugin implements the json output backend.
type Plugin struct{}

// New creates a new json backend.
func New() *Plugin {
	return &Plugin{}
}

// Name returns the backend name.
func (p *Plugin) Name() string {
	return "json"
}

// Description returns the backend description.
func (p *Plugin) Description() string {
	return "Write the scene tree (frames, swatches, notifications) as JSON"
}

// RegisterFlags has no backend-specific flags.
func (p *Plugin) RegisterFlags(_ *cobra.Command) {}

// Validate always succeeds.
func (p *Plugin) Validate() error {
	return nil
}

// Open returns a recorder that is serialised on Close.
func (p *Plugin) Open(opts output.Options) (scene.SceneBuilder, error) {
	return &Builder{Recorder: scene.NewRecorder(), opts: opts}, nil
}

// Builder is a scene.Recorder that writes itself out on Close.
type Builder struct {
	*scene.Recorder
	opts output.Options
}

// Close writes the recorded document.
func (b *Builder) Close() error {
	data, err := b.ToJSON()
	if err != nil {
		return err
	}
	return common.WriteOutput(b.opts.Output, b.opts.Stdout, append(data, '\n'))
}
