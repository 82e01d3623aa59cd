// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package tree implements the render-tree arena: nodes stored by index,
// parent and child links kept as [NodeID] values, and a deduplicated FIFO
// queue of dirty nodes consumed once per frame.
//
// The tree only grows. Nodes are mutated in place through [RenderTree.Node];
// shape changes happen by replacing the root, which discards every node and
// all pending dirty state.
package tree

import (
	"fmt"

	"github.com/gogpu/ui"
)

// NodeID identifies a node within a RenderTree. IDs are never reused for
// the lifetime of the tree, including across root replacements.
type NodeID uint32

type entry struct {
	node      Node
	parent    NodeID
	hasParent bool
	children  []NodeID
}

// RenderTree owns the nodes of one view hierarchy.
//
// A RenderTree is not safe for concurrent use. It is owned by the goroutine
// driving the render loop.
type RenderTree struct {
	// base is the ID of nodes[0]. Root replacement advances it past every
	// ID handed out so far so stale IDs never resolve.
	base    NodeID
	nodes   []entry
	root    NodeID
	hasRoot bool

	dirty    []DirtyNode
	dirtySet map[DirtyNode]struct{}

	cleanups []func()
}

// New returns an empty tree.
func New() *RenderTree {
	return &RenderTree{dirtySet: make(map[DirtyNode]struct{})}
}

func (t *RenderTree) entry(id NodeID) (*entry, bool) {
	if id < t.base {
		return nil, false
	}
	i := int(id - t.base)
	if i >= len(t.nodes) {
		return nil, false
	}
	return &t.nodes[i], true
}

func (t *RenderTree) push(e entry) NodeID {
	id := t.base + NodeID(len(t.nodes))
	t.nodes = append(t.nodes, e)
	return id
}

// ReplaceRoot discards every node, pending dirty entry and registered
// cleanup, installs n as the new root and marks it [DirtyLayout].
func (t *RenderTree) ReplaceRoot(n Node) NodeID {
	for _, fn := range t.cleanups {
		fn()
	}
	t.cleanups = nil
	t.base += NodeID(len(t.nodes))
	t.nodes = t.nodes[:0]
	t.dirty = t.dirty[:0]
	clear(t.dirtySet)

	id := t.push(entry{node: n})
	t.root = id
	t.hasRoot = true
	t.MarkDirty(id, DirtyLayout)
	ui.Logger().Debug("tree: root replaced", "id", id)
	return id
}

// InsertChild appends n as the last child of parent.
//
// InsertChild panics if parent does not exist: a missing parent is a bug
// in the tree builder, not a recoverable condition.
func (t *RenderTree) InsertChild(parent NodeID, n Node) NodeID {
	if _, ok := t.entry(parent); !ok {
		panic(fmt.Sprintf("tree: InsertChild: parent %d does not exist", parent))
	}
	id := t.push(entry{node: n, parent: parent, hasParent: true})
	p, _ := t.entry(parent)
	p.children = append(p.children, id)
	return id
}

// MarkDirty queues (id, reason). Repeated marks of the same pair before a
// drain collapse to one entry. Unknown IDs are ignored.
func (t *RenderTree) MarkDirty(id NodeID, reason DirtyReason) {
	if _, ok := t.entry(id); !ok {
		ui.Logger().Debug("tree: MarkDirty on unknown node", "id", id, "reason", reason)
		return
	}
	key := DirtyNode{ID: id, Reason: reason}
	if _, dup := t.dirtySet[key]; dup {
		return
	}
	t.dirtySet[key] = struct{}{}
	t.dirty = append(t.dirty, key)
}

// DrainDirty returns the queued entries in first-insertion order and
// empties the queue.
func (t *RenderTree) DrainDirty() []DirtyNode {
	if len(t.dirty) == 0 {
		return nil
	}
	out := make([]DirtyNode, len(t.dirty))
	copy(out, t.dirty)
	t.dirty = t.dirty[:0]
	clear(t.dirtySet)
	return out
}

// HasDirty reports whether any entry is queued.
func (t *RenderTree) HasDirty() bool {
	return len(t.dirty) > 0
}

// Node returns the node stored under id. Stale or unknown IDs report false.
func (t *RenderTree) Node(id NodeID) (Node, bool) {
	e, ok := t.entry(id)
	if !ok {
		return nil, false
	}
	return e.node, true
}

// Children returns the ordered child IDs of id, or nil for unknown IDs.
// The returned slice should not be modified by the caller.
func (t *RenderTree) Children(id NodeID) []NodeID {
	e, ok := t.entry(id)
	if !ok {
		return nil
	}
	return e.children
}

// Parent returns the parent of id. The root and unknown IDs report false.
func (t *RenderTree) Parent(id NodeID) (NodeID, bool) {
	e, ok := t.entry(id)
	if !ok || !e.hasParent {
		return 0, false
	}
	return e.parent, true
}

// Root returns the root ID, if a root was installed.
func (t *RenderTree) Root() (NodeID, bool) {
	return t.root, t.hasRoot
}

// Len returns the number of live nodes.
func (t *RenderTree) Len() int {
	return len(t.nodes)
}

// Walk visits the tree in pre-order from the root. fn receives the depth of
// each node (0 for the root); returning false skips that node's subtree.
func (t *RenderTree) Walk(fn func(id NodeID, n Node, depth int) bool) {
	if !t.hasRoot {
		return
	}
	t.walk(t.root, 0, fn)
}

func (t *RenderTree) walk(id NodeID, depth int, fn func(NodeID, Node, int) bool) {
	e, ok := t.entry(id)
	if !ok {
		return
	}
	if !fn(id, e.node, depth) {
		return
	}
	for _, c := range e.children {
		t.walk(c, depth+1, fn)
	}
}

// OnReplace registers fn to run when the current root is replaced. Tree
// builders use it to release subscriptions held by the discarded nodes.
func (t *RenderTree) OnReplace(fn func()) {
	t.cleanups = append(t.cleanups, fn)
}
