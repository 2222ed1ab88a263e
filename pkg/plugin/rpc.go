package plugin

import (
	"context"
	"net/rpc"

	"github.com/hashicorp/go-plugin"
)

// SceneHostRPC implements the go-plugin Plugin interface for scene hosts.
type SceneHostRPC struct {
	plugin.Plugin
	Impl SceneHost
}

// Server returns an RPC server for this plugin.
func (p *SceneHostRPC) Server(*plugin.MuxBroker) (any, error) {
	return &SceneHostRPCServer{Impl: p.Impl}, nil
}

// Client returns an RPC client for this plugin.
func (p *SceneHostRPC) Client(_ *plugin.MuxBroker, c *rpc.Client) (any, error) {
	return &SceneHostRPCClient{client: c}, nil
}

// SceneHostRPCServer is the RPC server implementation for scene hosts.
type SceneHostRPCServer struct {
	Impl SceneHost
}

// CreateFrame implements the RPC method for frame creation.
func (s *SceneHostRPCServer) CreateFrame(req ShapeRequest, resp *string) error {
	id, err := s.Impl.CreateFrame(context.Background(), req)
	if err != nil {
		return err
	}
	*resp = id
	return nil
}

// CreateRectangle implements the RPC method for rectangle creation.
func (s *SceneHostRPCServer) CreateRectangle(req ShapeRequest, resp *string) error {
	id, err := s.Impl.CreateRectangle(context.Background(), req)
	if err != nil {
		return err
	}
	*resp = id
	return nil
}

// SetFill implements the RPC method for setting a fill.
func (s *SceneHostRPCServer) SetFill(req FillRequest, _ *bool) error {
	return s.Impl.SetFill(context.Background(), req)
}

// AppendChild implements the RPC method for reparenting a node.
func (s *SceneHostRPCServer) AppendChild(req AppendRequest, _ *bool) error {
	return s.Impl.AppendChild(context.Background(), req)
}

// Notify implements the RPC method for notifications.
func (s *SceneHostRPCServer) Notify(message string, _ *bool) error {
	return s.Impl.Notify(context.Background(), message)
}

// Commit implements the RPC method for finishing a scene.
func (s *SceneHostRPCServer) Commit(_ any, _ *bool) error {
	return s.Impl.Commit(context.Background())
}

// GetMetadata implements the RPC method for fetching plugin metadata.
func (s *SceneHostRPCServer) GetMetadata(_ any, resp *PluginInfo) error {
	*resp = s.Impl.GetMetadata()
	return nil
}

// SceneHostRPCClient is the RPC client implementation for scene hosts.
// Contexts are not carried over the wire.
type SceneHostRPCClient struct {
	client *rpc.Client
}

// CreateFrame calls the remote CreateFrame method.
func (c *SceneHostRPCClient) CreateFrame(_ context.Context, req ShapeRequest) (string, error) {
	var id string
	if err := c.client.Call("Plugin.CreateFrame", req, &id); err != nil {
		return "", wrapRPCError(err)
	}
	return id, nil
}

// CreateRectangle calls the remote CreateRectangle method.
func (c *SceneHostRPCClient) CreateRectangle(_ context.Context, req ShapeRequest) (string, error) {
	var id string
	if err := c.client.Call("Plugin.CreateRectangle", req, &id); err != nil {
		return "", wrapRPCError(err)
	}
	return id, nil
}

// SetFill calls the remote SetFill method.
func (c *SceneHostRPCClient) SetFill(_ context.Context, req FillRequest) error {
	return wrapRPCError(c.client.Call("Plugin.SetFill", req, new(bool)))
}

// AppendChild calls the remote AppendChild method.
func (c *SceneHostRPCClient) AppendChild(_ context.Context, req AppendRequest) error {
	return wrapRPCError(c.client.Call("Plugin.AppendChild", req, new(bool)))
}

// Notify calls the remote Notify method.
func (c *SceneHostRPCClient) Notify(_ context.Context, message string) error {
	return wrapRPCError(c.client.Call("Plugin.Notify", message, new(bool)))
}

// Commit calls the remote Commit method.
func (c *SceneHostRPCClient) Commit(_ context.Context) error {
	return wrapRPCError(c.client.Call("Plugin.Commit", new(any), new(bool)))
}

// GetMetadata calls the remote GetMetadata method.
func (c *SceneHostRPCClient) GetMetadata() PluginInfo {
	var info PluginInfo
	if err := c.client.Call("Plugin.GetMetadata", new(any), &info); err != nil {
		return PluginInfo{}
	}
	return info
}

// RPCError represents an error returned from an RPC call.
type RPCError struct {
	Message string
}

// Error implements the error interface.
func (e *RPCError) Error() string {
	return e.Message
}

// wrapRPCError converts errors returned by the remote implementation into
// *RPCError. Transport errors are returned unchanged.
func wrapRPCError(err error) error {
	if err == nil {
		return nil
	}
	if se, ok := err.(rpc.ServerError); ok {
		return &RPCError{Message: string(se)}
	}
	return err
}
