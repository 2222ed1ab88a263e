// Package scene draws a palette onto a scene graph through a small
// capability interface, so the colour logic never depends on a host runtime.
package scene

import (
	"context"
	"errors"
)

// NodeID identifies a node created by a SceneBuilder.
type NodeID string

// Root is the page every scene is appended to.
const Root NodeID = "root"

// ErrUnknownNode is returned when a builder is given a NodeID it did not create.
var ErrUnknownNode = errors.New("unknown scene node")

// FrameSpec describes a container frame.
type FrameSpec struct {
	Name   string `json:"name"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// RectSpec describes a rectangle. Coordinates are relative to its parent.
type RectSpec struct {
	Name   string `json:"name"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// SceneBuilder is the set of host operations a palette render needs.
type SceneBuilder interface {
	// CreateFrame creates a detached frame.
	CreateFrame(ctx context.Context, spec FrameSpec) (NodeID, error)

	// CreateRectangle creates a detached rectangle.
	CreateRectangle(ctx context.Context, spec RectSpec) (NodeID, error)

	// SetFill sets a solid "#RRGGBB" fill (a frame's background).
	SetFill(ctx context.Context, id NodeID, hex string) error

	// AppendChild attaches child under parent. Root is always a valid parent.
	AppendChild(ctx context.Context, parent, child NodeID) error

	// Notify shows a short message to the user.
	Notify(ctx context.Context, message string) error

	// Close flushes any output and releases resources.
	Close() error

	// Abort releases resources without writing any output. It is used
	// instead of Close when a render fails part way.
	Abort() error
}
