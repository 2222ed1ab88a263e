// Package executor launches scene host plugins and hands back a connected
// client.
package executor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-plugin"

	"github.com/jmylchreest/shade/internal/logger"
	"github.com/jmylchreest/shade/internal/plugin/protocol"
	shadeplugin "github.com/jmylchreest/shade/pkg/plugin"
)

// ErrNotExecutable is returned when the plugin path is not a runnable file.
var ErrNotExecutable = errors.New("plugin is not an executable file")

// PluginExecutor owns the process of one scene host plugin.
type PluginExecutor struct {
	path   string
	client *plugin.Client
	host   shadeplugin.SceneHost
	info   shadeplugin.PluginInfo
	logger hclog.Logger
}

// New checks pluginPath and prepares an executor. The process is started
// lazily by Connect.
func New(pluginPath string) (*PluginExecutor, error) {
	return NewWithVerbose(pluginPath, false, io.Discard)
}

// NewWithVerbose creates a PluginExecutor whose go-plugin client logs to
// logOutput when verbose.
func NewWithVerbose(pluginPath string, verbose bool, logOutput io.Writer) (*PluginExecutor, error) {
	fi, err := os.Stat(pluginPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat plugin: %w", err)
	}
	if fi.IsDir() || fi.Mode().Perm()&0o111 == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotExecutable, pluginPath)
	}

	return &PluginExecutor{
		path:   pluginPath,
		logger: logger.Plugin(logOutput, verbose),
	}, nil
}

// Path returns the plugin binary path.
func (e *PluginExecutor) Path() string {
	return e.path
}

// Connect starts the plugin if needed, dispenses the scene host and checks
// its protocol version.
func (e *PluginExecutor) Connect(ctx context.Context) (shadeplugin.SceneHost, error) {
	if e.host != nil {
		return e.host, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Initialize go-plugin client.
	e.client = plugin.NewClient(&plugin.ClientConfig{
		HandshakeConfig:  shadeplugin.Handshake,
		Plugins:          shadeplugin.PluginMap(nil),
		Cmd:              exec.Command(e.path),
		AllowedProtocols: []plugin.Protocol{plugin.ProtocolNetRPC},
		Logger:           e.logger,
	})

	// Connect via RPC.
	rpcClient, err := e.client.Client()
	if err != nil {
		e.Close()
		return nil, fmt.Errorf("failed to get RPC client: %w", err)
	}

	// Request the plugin.
	raw, err := rpcClient.Dispense(shadeplugin.SceneHostName)
	if err != nil {
		e.Close()
		return nil, fmt.Errorf("failed to dispense plugin: %w", err)
	}

	host, ok := raw.(shadeplugin.SceneHost)
	if !ok {
		e.Close()
		return nil, fmt.Errorf("plugin dispensed unexpected type %T", raw)
	}

	info := host.GetMetadata()
	if _, err := protocol.IsCompatible(info.ProtocolVersion); err != nil {
		e.Close()
		return nil, fmt.Errorf("plugin %s: %w", e.path, err)
	}

	e.logger.Debug("connected to scene host", "name", info.Name, "version", info.Version)
	e.host = host
	e.info = info
	return host, nil
}

// Info returns the metadata reported by the connected plugin.
func (e *PluginExecutor) Info() shadeplugin.PluginInfo {
	return e.info
}

// Close kills the plugin process, if any.
func (e *PluginExecutor) Close() {
	if e.client != nil {
		e.client.Kill()
		e.client = nil
	}
	e.host = nil
}
