package entity

import (
	"fmt"
	"strconv"
	"strings"
)

// Tree owns the layout's root node and the panel index that mirrors it.
// Containers own their children exclusively; nodes carry no parent pointer.
// Parent context is recovered top-down when a mutation needs it.
//
// Tree is not safe for concurrent use.
type Tree struct {
	root  Node
	index *PanelIndex
}

// NewTree creates an empty tree.
func NewTree() *Tree {
	return &Tree{index: NewPanelIndex()}
}

// pathStep records one hop from a container into one of its slots.
type pathStep struct {
	parent *Container
	slot   Slot
}

// Root returns the root node, nil when the tree is empty.
func (t *Tree) Root() Node {
	return t.root
}

// IsEmpty reports whether the tree has no root.
func (t *Tree) IsEmpty() bool {
	return t.root == nil
}

// Walk visits nodes depth-first, root first, first child before second.
// Returning false from fn stops the walk.
func (t *Tree) Walk(fn func(n Node, depth int) bool) {
	walkNode(t.root, 0, fn)
}

func walkNode(n Node, depth int, fn func(Node, int) bool) bool {
	if n == nil {
		return true
	}
	if !fn(n, depth) {
		return false
	}
	if c, ok := n.(*Container); ok {
		if !walkNode(c.first, depth+1, fn) {
			return false
		}
		return walkNode(c.second, depth+1, fn)
	}
	return true
}

// pathTo finds the node with id and the chain of container slots leading to it.
// An empty path with a non-nil node means the node is the root.
func (t *Tree) pathTo(id string) (Node, []pathStep) {
	var path []pathStep
	var visit func(n Node) Node
	visit = func(n Node) Node {
		if n == nil {
			return nil
		}
		if n.ID() == id {
			return n
		}
		c, ok := n.(*Container)
		if !ok {
			return nil
		}
		for _, slot := range [...]Slot{SlotFirst, SlotSecond} {
			path = append(path, pathStep{parent: c, slot: slot})
			if found := visit(c.Child(slot)); found != nil {
				return found
			}
			path = path[:len(path)-1]
		}
		return nil
	}
	found := visit(t.root)
	if found == nil {
		return nil, nil
	}
	return found, path
}

// FindNode searches the tree for a node with the given id.
func (t *Tree) FindNode(id string) Node {
	n, _ := t.pathTo(id)
	return n
}

// FindContainer returns the container with the given id, or nil if the id is
// absent or names a panel.
func (t *Tree) FindContainer(id string) *Container {
	c, _ := t.FindNode(id).(*Container)
	return c
}

// FindPanel looks the panel up in the index.
func (t *Tree) FindPanel(id string) *Panel {
	return t.index.Lookup(id)
}

// ParentOf returns the container holding id and the slot it sits in.
// ok is false for the root and for unknown ids.
func (t *Tree) ParentOf(id string) (parent *Container, slot Slot, ok bool) {
	n, path := t.pathTo(id)
	if n == nil || len(path) == 0 {
		return nil, SlotFirst, false
	}
	last := path[len(path)-1]
	return last.parent, last.slot, true
}

// FindRightmostPanel descends preferring the second child, falling back to
// the first, and returns the first panel reached.
func (t *Tree) FindRightmostPanel() *Panel {
	n := t.root
	for n != nil {
		switch v := n.(type) {
		case *Panel:
			return v
		case *Container:
			if v.second != nil {
				n = v.second
			} else {
				n = v.first
			}
		default:
			return nil
		}
	}
	return nil
}

// CountPanels returns the number of panels reachable from the root.
func (t *Tree) CountPanels() int {
	count := 0
	t.Walk(func(n Node, _ int) bool {
		if n.Kind() == NodeKindPanel {
			count++
		}
		return true
	})
	return count
}

// NodeCount returns the number of panels and containers.
func (t *Tree) NodeCount() int {
	count := 0
	t.Walk(func(Node, int) bool {
		count++
		return true
	})
	return count
}

// Depth returns the number of levels. A lone panel has depth 1, an empty tree 0.
func (t *Tree) Depth() int {
	return nodeDepth(t.root)
}

func nodeDepth(n Node) int {
	if n == nil {
		return 0
	}
	c, ok := n.(*Container)
	if !ok {
		return 1
	}
	return 1 + max(nodeDepth(c.first), nodeDepth(c.second))
}

// FlatPanels returns every panel in left-to-right (first-to-second) order.
func (t *Tree) FlatPanels() []*Panel {
	var panels []*Panel
	t.Walk(func(n Node, _ int) bool {
		if p, ok := n.(*Panel); ok {
			panels = append(panels, p)
		}
		return true
	})
	return panels
}

// PanelIDs returns the ids registered in the panel index, sorted.
func (t *Tree) PanelIDs() []string {
	return t.index.IDs()
}

// IndexedPanelCount returns the number of index entries.
func (t *Tree) IndexedPanelCount() int {
	return t.index.Len()
}

// DumpAsText renders an indented, human-readable view of the tree.
func (t *Tree) DumpAsText() string {
	if t.root == nil {
		return "Empty tree"
	}
	var b strings.Builder
	t.Walk(func(n Node, depth int) bool {
		indent := strings.Repeat("  ", depth)
		switch v := n.(type) {
		case *Panel:
			fmt.Fprintf(&b, "%sPanel[%s]: %s\n", indent, v.id, v.title)
		case *Container:
			orient := "V"
			if v.orientation == Horizontal {
				orient = "H"
			}
			fmt.Fprintf(&b, "%sContainer[%s]: %s (ratio: %s)\n",
				indent, v.id, orient, strconv.FormatFloat(v.splitRatio, 'g', -1, 64))
		}
		return true
	})
	return b.String()
}

// SetRootPanel makes p the root of an empty tree and registers it.
func (t *Tree) SetRootPanel(p *Panel) error {
	if p == nil {
		return fmt.Errorf("%w: nil panel", ErrInvalidStructure)
	}
	if t.root != nil {
		return fmt.Errorf("%w: tree already has a root", ErrInvalidStructure)
	}
	t.root = p
	t.index.register(p)
	return nil
}

// Wrap replaces the node identified by targetID with a new container holding
// that node and p. panelFirst puts p in the first slot. The container takes
// the target's former place, so its old parent keeps two children.
// p is registered only once it is attached.
func (t *Tree) Wrap(targetID string, p *Panel, containerID string, orientation Orientation, panelFirst bool) (*Container, error) {
	if p == nil {
		return nil, fmt.Errorf("%w: nil panel", ErrInvalidStructure)
	}
	if t.FindNode(p.ID()) != nil {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateID, p.ID())
	}
	if containerID == "" || containerID == p.ID() || t.FindNode(containerID) != nil {
		return nil, fmt.Errorf("%w: container %q", ErrDuplicateID, containerID)
	}

	target, path := t.pathTo(targetID)
	if target == nil {
		return nil, fmt.Errorf("%w: %s", ErrNodeNotFound, targetID)
	}

	var container *Container
	if len(path) == 0 {
		detached := t.root
		t.root = nil
		container = newWrapper(containerID, orientation, detached, p, panelFirst)
		t.root = container
	} else {
		step := path[len(path)-1]
		detached := step.parent.take(step.slot)
		container = newWrapper(containerID, orientation, detached, p, panelFirst)
		step.parent.attach(step.slot, container)
	}

	t.index.register(p)
	return container, nil
}

func newWrapper(id string, orientation Orientation, target Node, p *Panel, panelFirst bool) *Container {
	if panelFirst {
		return NewContainer(id, orientation, p, target)
	}
	return NewContainer(id, orientation, target, p)
}

// RemovePanel detaches the panel, discards its parent container and promotes
// the sibling into the parent's place. It returns the promoted node, or nil
// when the panel was the root and the tree is now empty.
// The structure is checked before anything is touched, so a failed removal
// leaves tree and index unchanged.
func (t *Tree) RemovePanel(id string) (Node, error) {
	if t.index.Lookup(id) == nil {
		return nil, fmt.Errorf("%w: %s", ErrPanelNotFound, id)
	}

	n, path := t.pathTo(id)
	if n == nil || n.Kind() != NodeKindPanel {
		return nil, fmt.Errorf("%w: indexed panel %s is not reachable", ErrInvalidStructure, id)
	}

	if len(path) == 0 {
		t.index.unregister(id)
		t.root = nil
		return nil, nil
	}

	step := path[len(path)-1]
	parent := step.parent
	sibling := parent.Child(step.slot.Other())
	if sibling == nil {
		return nil, fmt.Errorf("%w: container %s has a single child", ErrInvalidStructure, parent.id)
	}

	t.index.unregister(id)
	parent.take(step.slot)
	parent.take(step.slot.Other())

	if len(path) == 1 {
		t.root = sibling
	} else {
		grand := path[len(path)-2]
		grand.parent.attach(grand.slot, sibling)
	}
	return sibling, nil
}

// Adopt moves other's root and index into t, leaving other empty.
// Holders of t keep a valid pointer across a whole-layout replacement.
func (t *Tree) Adopt(other *Tree) {
	if other == nil || other == t {
		return
	}
	t.root = other.root
	t.index = other.index
	other.root = nil
	other.index = NewPanelIndex()
}

// Reset drops the root and empties the index.
func (t *Tree) Reset() {
	t.root = nil
	t.index.reset()
}
