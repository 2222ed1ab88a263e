package main

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
	"sync"

	"github.com/hashicorp/go-hclog"

	shadeplugin "github.com/jmylchreest/shade/pkg/plugin"
)

var hexPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

type node struct {
	id       string
	kind     string
	shape    shadeplugin.ShapeRequest
	fill     string
	parent   *node
	children []*node
}

// Host is a SceneHost that keeps the scene in memory and writes SVG on Commit.
type Host struct {
	mu       sync.Mutex
	path     string
	logger   hclog.Logger
	root     *node
	nodes    map[string]*node
	messages []string
	next     int
}

// NewHost creates a host that writes to path.
func NewHost(path string, logger hclog.Logger) *Host {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	root := &node{id: shadeplugin.RootNode, kind: "page"}
	return &Host{
		path:   path,
		logger: logger,
		root:   root,
		nodes:  map[string]*node{root.id: root},
	}
}

func (h *Host) create(kind string, req shadeplugin.ShapeRequest) (string, error) {
	if req.Width <= 0 || req.Height <= 0 {
		return "", fmt.Errorf("%s %q has non-positive size %dx%d", kind, req.Name, req.Width, req.Height)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.next++
	n := &node{id: fmt.Sprintf("%s:%d", kind, h.next), kind: kind, shape: req}
	h.nodes[n.id] = n
	return n.id, nil
}

// CreateFrame creates a detached frame.
func (h *Host) CreateFrame(_ context.Context, req shadeplugin.ShapeRequest) (string, error) {
	return h.create("frame", req)
}

// CreateRectangle creates a detached rectangle.
func (h *Host) CreateRectangle(_ context.Context, req shadeplugin.ShapeRequest) (string, error) {
	return h.create("rect", req)
}

// SetFill sets a node's fill.
func (h *Host) SetFill(_ context.Context, req shadeplugin.FillRequest) error {
	if !hexPattern.MatchString(req.Hex) {
		return fmt.Errorf("invalid fill %q", req.Hex)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	n, ok := h.nodes[req.NodeID]
	if !ok || n == h.root {
		return fmt.Errorf("unknown node %q", req.NodeID)
	}
	n.fill = strings.ToUpper(req.Hex)
	return nil
}

// AppendChild moves Child under Parent.
func (h *Host) AppendChild(_ context.Context, req shadeplugin.AppendRequest) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	p, ok := h.nodes[req.Parent]
	if !ok || p.kind == "rect" {
		return fmt.Errorf("invalid parent %q", req.Parent)
	}
	c, ok := h.nodes[req.Child]
	if !ok || c == h.root {
		return fmt.Errorf("invalid child %q", req.Child)
	}
	for a := p; a != nil; a = a.parent {
		if a == c {
			return errors.New("append would create a cycle")
		}
	}

	if c.parent != nil {
		c.parent.children = removeNode(c.parent.children, c)
	}
	c.parent = p
	p.children = append(p.children, c)
	return nil
}

func removeNode(nodes []*node, n *node) []*node {
	for i, s := range nodes {
		if s == n {
			return append(nodes[:i], nodes[i+1:]...)
		}
	}
	return nodes
}

// Notify records the message and logs it.
func (h *Host) Notify(_ context.Context, message string) error {
	h.mu.Lock()
	h.messages = append(h.messages, message)
	h.mu.Unlock()

	h.logger.Info(message)
	return nil
}

// Commit writes the scene as SVG.
func (h *Host) Commit(_ context.Context) error {
	data, err := h.Render()
	if err != nil {
		return err
	}
	if err := os.WriteFile(h.path, data, 0o644); err != nil { // #nosec G306 -- output is a user-facing image
		return fmt.Errorf("failed to write %s: %w", h.path, err)
	}
	h.logger.Debug("wrote svg", "path", h.path, "bytes", len(data))
	return nil
}

// GetMetadata returns plugin metadata.
func (h *Host) GetMetadata() shadeplugin.PluginInfo {
	return shadeplugin.PluginInfo{
		Name:            "svg",
		Version:         "0.1.0",
		ProtocolVersion: shadeplugin.ProtocolVersion,
		Description:     "Write the palette scene as an SVG document",
	}
}

type svgRect struct {
	XMLName xml.Name `xml:"rect"`
	ID      string   `xml:"id,attr"`
	X       int      `xml:"x,attr"`
	Y       int      `xml:"y,attr"`
	Width   int      `xml:"width,attr"`
	Height  int      `xml:"height,attr"`
	Fill    string   `xml:"fill,attr"`
	Title   string   `xml:"title,omitempty"`
}

type svgDoc struct {
	XMLName xml.Name  `xml:"svg"`
	NS      string    `xml:"xmlns,attr"`
	ViewBox string    `xml:"viewBox,attr"`
	Width   int       `xml:"width,attr"`
	Height  int       `xml:"height,attr"`
	Rects   []svgRect `xml:"rect"`
}

// Render returns the SVG document for every filled node attached to the
// page. The view box is the bounding box of those nodes.
func (h *Host) Render() ([]byte, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	var rects []svgRect
	var walk func(n *node, offX, offY int)
	walk = func(n *node, offX, offY int) {
		x, y := offX+n.shape.X, offY+n.shape.Y
		if n.fill != "" {
			rects = append(rects, svgRect{
				ID:     n.id,
				X:      x,
				Y:      y,
				Width:  n.shape.Width,
				Height: n.shape.Height,
				Fill:   n.fill,
				Title:  n.shape.Name,
			})
		}
		for _, c := range n.children {
			walk(c, x, y)
		}
	}
	walk(h.root, 0, 0)

	if len(rects) == 0 {
		return nil, errors.New("scene has no filled nodes")
	}

	minX, minY := rects[0].X, rects[0].Y
	maxX, maxY := minX+rects[0].Width, minY+rects[0].Height
	for _, r := range rects[1:] {
		minX, minY = min(minX, r.X), min(minY, r.Y)
		maxX, maxY = max(maxX, r.X+r.Width), max(maxY, r.Y+r.Height)
	}

	doc := svgDoc{
		NS:      "http://www.w3.org/2000/svg",
		ViewBox: fmt.Sprintf("%d %d %d %d", minX, minY, maxX-minX, maxY-minY),
		Width:   maxX - minX,
		Height:  maxY - minY,
		Rects:   rects,
	}
	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode svg: %w", err)
	}
	return append([]byte(xml.Header), append(out, '\n')...), nil
}
