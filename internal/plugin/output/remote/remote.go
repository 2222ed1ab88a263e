// Package remote provides an output backend that forwards the scene to an
// external host process over go-plugin.
package remote

import (
	"context"
	"errors"
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/shade/internal/plugin/executor"
	"github.com/jmylchreest/shade/internal/plugin/output"
	"github.com/jmylchreest/shade/internal/scene"
	shadeplugin "github.com/jmylchreest/shade/pkg/plugin"
)

// ErrNoPlugin is returned when the backend is opened without a plugin path.
var ErrNoPlugin = errors.New("no scene host plugin configured")

// Plugin implements the plugin output backend.
type Plugin struct {
	path string
}

// New creates a new plugin backend for the host binary at path. The path
// is normally set later from configuration with SetPath.
func New(path string) *Plugin {
	return &Plugin{path: path}
}

// Name returns the backend name.
func (p *Plugin) Name() string {
	return "plugin"
}

// Description returns the backend description.
func (p *Plugin) Description() string {
	return "Send the scene to an external host plugin (go-plugin RPC)"
}

// RegisterFlags has no backend-specific flags. The host binary comes from
// the shared --plugin flag, SHADE_PLUGIN or the config file.
func (p *Plugin) RegisterFlags(_ *cobra.Command) {}

// SetPath overrides the configured plugin path.
func (p *Plugin) SetPath(path string) {
	p.path = path
}

// Validate checks if the backend configuration is valid.
func (p *Plugin) Validate() error {
	if p.path == "" {
		return ErrNoPlugin
	}
	return nil
}

// Open launches the host plugin and returns a SceneBuilder that forwards
// to it. Close commits the scene and stops the plugin.
func (p *Plugin) Open(opts output.Options) (scene.SceneBuilder, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	ex, err := executor.NewWithVerbose(p.path, opts.Verbose, opts.Stderr)
	if err != nil {
		return nil, err
	}
	host, err := ex.Connect(context.Background())
	if err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	logger.Debug("using scene host", "path", p.path, "name", ex.Info().Name)

	return NewScene(host, ex.Close), nil
}

// Scene adapts a shadeplugin.SceneHost to scene.SceneBuilder.
type Scene struct {
	host    shadeplugin.SceneHost
	release func()
}

// NewScene wraps host. release, if non-nil, runs after Close commits.
func NewScene(host shadeplugin.SceneHost, release func()) *Scene {
	return &Scene{host: host, release: release}
}

// CreateFrame implements scene.SceneBuilder.
func (s *Scene) CreateFrame(ctx context.Context, spec scene.FrameSpec) (scene.NodeID, error) {
	id, err := s.host.CreateFrame(ctx, shadeplugin.ShapeRequest{
		Name:   spec.Name,
		X:      spec.X,
		Y:      spec.Y,
		Width:  spec.Width,
		Height: spec.Height,
	})
	return scene.NodeID(id), err
}

// CreateRectangle implements scene.SceneBuilder.
func (s *Scene) CreateRectangle(ctx context.Context, spec scene.RectSpec) (scene.NodeID, error) {
	id, err := s.host.CreateRectangle(ctx, shadeplugin.ShapeRequest{
		Name:   spec.Name,
		X:      spec.X,
		Y:      spec.Y,
		Width:  spec.Width,
		Height: spec.Height,
	})
	return scene.NodeID(id), err
}

// SetFill implements scene.SceneBuilder.
func (s *Scene) SetFill(ctx context.Context, id scene.NodeID, hex string) error {
	return s.host.SetFill(ctx, shadeplugin.FillRequest{NodeID: hostID(id), Hex: hex})
}

// AppendChild implements scene.SceneBuilder.
func (s *Scene) AppendChild(ctx context.Context, parent, child scene.NodeID) error {
	return s.host.AppendChild(ctx, shadeplugin.AppendRequest{
		Parent: hostID(parent),
		Child:  hostID(child),
	})
}

// Notify implements scene.SceneBuilder.
func (s *Scene) Notify(ctx context.Context, message string) error {
	return s.host.Notify(ctx, message)
}

// Close commits the scene and releases the host.
func (s *Scene) Close() error {
	err := s.host.Commit(context.Background())
	if s.release != nil {
		s.release()
	}
	if err != nil {
		return fmt.Errorf("scene host commit failed: %w", err)
	}
	return nil
}

// Abort releases the host without committing, so it writes nothing.
func (s *Scene) Abort() error {
	if s.release != nil {
		s.release()
	}
	return nil
}

func hostID(id scene.NodeID) string {
	if id == scene.Root {
		return shadeplugin.RootNode
	}
	return string(id)
}
