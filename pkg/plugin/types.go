package plugin

// RootNode is the ID of the page every scene is appended to.
const RootNode = "root"

// ShapeRequest describes a frame or rectangle to create.
type ShapeRequest struct {
	Name   string `json:"name"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// FillRequest sets the solid fill of a node.
type FillRequest struct {
	NodeID string `json:"node_id"`
	Hex    string `json:"hex"`
}

// AppendRequest moves Child under Parent.
type AppendRequest struct {
	Parent string `json:"parent"`
	Child  string `json:"child"`
}

// PluginInfo contains metadata about a plugin.
type PluginInfo struct {
	Name            string `json:"name"`
	Version         string `json:"version"`
	ProtocolVersion string `json:"protocol_version"`
	Description     string `json:"description"`
}
