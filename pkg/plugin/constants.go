// Package plugin provides the public API for shade scene host plugins.
// External plugins should import this package instead of internal packages.
package plugin

import (
	"github.com/hashicorp/go-plugin"
)

const (
	// ProtocolVersion defines the current plugin API version.
	// Format: MAJOR.MINOR.PATCH.
	// - Increment MAJOR for breaking changes (incompatible API changes).
	// - Increment MINOR for backward-compatible additions.
	// - Increment PATCH for backward-compatible bug fixes.
	ProtocolVersion = "0.1.0"

	// MinCompatibleVersion is the oldest protocol version this shade version can work with.
	MinCompatibleVersion = "0.1.0"

	// SceneHostName is the key the scene host is served and dispensed under.
	SceneHostName = "scene"
)

// Handshake is the handshake configuration for go-plugin protocol.
// This ensures that plugins using go-plugin can only connect to compatible hosts.
var Handshake = plugin.HandshakeConfig{
	ProtocolVersion:  0, // Major version from ProtocolVersion
	MagicCookieKey:   "SHADE_PLUGIN",
	MagicCookieValue: "shade_scene_host",
}

// PluginMap returns the plugin set for a scene host implementation.
// Hosts pass a real implementation; clients pass nil.
func PluginMap(impl SceneHost) map[string]plugin.Plugin {
	return map[string]plugin.Plugin{
		SceneHostName: &SceneHostRPC{Impl: impl},
	}
}

// Serve runs impl as a scene host plugin. It blocks until the client
// disconnects and is meant to be called from a plugin's main.
func Serve(impl SceneHost) {
	plugin.Serve(&plugin.ServeConfig{
		HandshakeConfig: Handshake,
		Plugins:         PluginMap(impl),
	})
}
