package scene

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/jmylchreest/shade/internal/colour"
)

// NodeKind distinguishes frames from rectangles.
type NodeKind string

const (
	KindPage      NodeKind = "page"
	KindFrame     NodeKind = "frame"
	KindRectangle NodeKind = "rectangle"
)

// Node is a recorded scene node.
type Node struct {
	ID       NodeID   `json:"id"`
	Kind     NodeKind `json:"kind"`
	Name     string   `json:"name,omitempty"`
	X        int      `json:"x"`
	Y        int      `json:"y"`
	Width    int      `json:"width"`
	Height   int      `json:"height"`
	Fill     string   `json:"fill,omitempty"`
	Children []*Node  `json:"children,omitempty"`

	parent *Node
}

// Recorder is an in-memory SceneBuilder. It keeps the node tree and the
// notifications it received, and is safe for concurrent use.
type Recorder struct {
	mu       sync.Mutex
	root     *Node
	nodes    map[NodeID]*Node
	messages []string
	next     int
}

// NewRecorder creates an empty Recorder holding only the Root page.
func NewRecorder() *Recorder {
	root := &Node{ID: Root, Kind: KindPage}
	return &Recorder{
		root:  root,
		nodes: map[NodeID]*Node{Root: root},
	}
}

func (r *Recorder) add(n *Node) NodeID {
	r.next++
	n.ID = NodeID(fmt.Sprintf("%s-%d", n.Kind, r.next))
	r.nodes[n.ID] = n
	return n.ID
}

// CreateFrame implements SceneBuilder.
func (r *Recorder) CreateFrame(_ context.Context, spec FrameSpec) (NodeID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.add(&Node{
		Kind:   KindFrame,
		Name:   spec.Name,
		X:      spec.X,
		Y:      spec.Y,
		Width:  spec.Width,
		Height: spec.Height,
	}), nil
}

// CreateRectangle implements SceneBuilder.
func (r *Recorder) CreateRectangle(_ context.Context, spec RectSpec) (NodeID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.add(&Node{
		Kind:   KindRectangle,
		Name:   spec.Name,
		X:      spec.X,
		Y:      spec.Y,
		Width:  spec.Width,
		Height: spec.Height,
	}), nil
}

// SetFill implements SceneBuilder.
func (r *Recorder) SetFill(_ context.Context, id NodeID, hex string) error {
	rgb, err := colour.ParseHex(hex)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	n, ok := r.nodes[id]
	if !ok || n.Kind == KindPage {
		return fmt.Errorf("%w: %s", ErrUnknownNode, id)
	}
	n.Fill = rgb.Hex()
	return nil
}

// AppendChild implements SceneBuilder. A node that already has a parent is
// moved.
func (r *Recorder) AppendChild(_ context.Context, parent, child NodeID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.nodes[parent]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownNode, parent)
	}
	c, ok := r.nodes[child]
	if !ok || c.Kind == KindPage {
		return fmt.Errorf("%w: %s", ErrUnknownNode, child)
	}
	if p.Kind == KindRectangle {
		return fmt.Errorf("cannot append to rectangle %s", parent)
	}
	for a := p; a != nil; a = a.parent {
		if a == c {
			return fmt.Errorf("cannot append %s to its own descendant %s", child, parent)
		}
	}

	if c.parent != nil {
		siblings := c.parent.Children
		for i, s := range siblings {
			if s == c {
				c.parent.Children = append(siblings[:i], siblings[i+1:]...)
				break
			}
		}
	}
	c.parent = p
	p.Children = append(p.Children, c)
	return nil
}

// Notify implements SceneBuilder.
func (r *Recorder) Notify(_ context.Context, message string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.messages = append(r.messages, message)
	return nil
}

// Close implements SceneBuilder. It is a no-op.
func (r *Recorder) Close() error {
	return nil
}

// Abort implements SceneBuilder. It is a no-op.
func (r *Recorder) Abort() error {
	return nil
}

// Page returns the Root node. The tree must not be mutated by the caller.
func (r *Recorder) Page() *Node {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.root
}

// Messages returns the notifications received so far.
func (r *Recorder) Messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.messages...)
}

// Document is the JSON form of a recorded scene.
type Document struct {
	Page     *Node    `json:"page"`
	Messages []string `json:"messages,omitempty"`
}

// ToJSON serialises the recorded tree and notifications.
func (r *Recorder) ToJSON() ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return json.MarshalIndent(Document{Page: r.root, Messages: r.messages}, "", "  ")
}

// Walk visits n and its descendants depth-first with absolute coordinates.
func Walk(n *Node, fn func(n *Node, absX, absY int)) {
	walk(n, 0, 0, fn)
}

func walk(n *Node, offX, offY int, fn func(*Node, int, int)) {
	x, y := offX+n.X, offY+n.Y
	fn(n, x, y)
	for _, c := range n.Children {
		walk(c, x, y, fn)
	}
}
