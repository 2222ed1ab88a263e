package plugin

import (
	"context"
)

// SceneHost is the interface scene host plugins implement for go-plugin RPC.
// Node IDs are opaque strings chosen by the host; "root" is the page.
type SceneHost interface {
	// CreateFrame creates a detached frame and returns its ID.
	CreateFrame(ctx context.Context, req ShapeRequest) (string, error)

	// CreateRectangle creates a detached rectangle and returns its ID.
	CreateRectangle(ctx context.Context, req ShapeRequest) (string, error)

	// SetFill sets a solid "#RRGGBB" fill on a node.
	SetFill(ctx context.Context, req FillRequest) error

	// AppendChild attaches a node under a parent.
	AppendChild(ctx context.Context, req AppendRequest) error

	// Notify shows a message to the user.
	Notify(ctx context.Context, message string) error

	// Commit is called once after the last scene call.
	Commit(ctx context.Context) error

	// GetMetadata returns plugin metadata.
	GetMetadata() PluginInfo
}
