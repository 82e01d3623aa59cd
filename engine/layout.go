// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package engine

import (
	"errors"
	"fmt"

	"github.com/gogpu/ui/env"
	"github.com/gogpu/ui/layout"
	"github.com/gogpu/ui/tree"
)

// ErrMaxDepth is returned when the tree nests deeper than the configured
// maximum.
var ErrMaxDepth = errors.New("engine: tree exceeds maximum depth")

type cacheKey struct {
	id tree.NodeID
	p  layout.ProposalSize
}

// LayoutEngine runs the two-pass measure/place protocol over a whole tree.
//
// Measurements are cached by (node, proposal) for the duration of one pass
// and discarded when the next pass starts.
type LayoutEngine struct {
	maxDepth int

	t      *tree.RenderTree
	env    *env.Environment
	cache  map[cacheKey]layout.Size
	frames map[tree.NodeID]layout.Rect
	err    error
}

// NewLayoutEngine returns a LayoutEngine accepting trees up to maxDepth
// levels deep. A non-positive maxDepth selects DefaultMaxDepth.
func NewLayoutEngine(maxDepth int) *LayoutEngine {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &LayoutEngine{
		maxDepth: maxDepth,
		cache:    make(map[cacheKey]layout.Size),
		frames:   make(map[tree.NodeID]layout.Rect),
	}
}

func (le *LayoutEngine) reset(t *tree.RenderTree, e *env.Environment) {
	le.t = t
	le.env = e
	le.err = nil
	clear(le.cache)
	clear(le.frames)
}

// Measure returns the root's size for proposal p, starting a new pass.
func (le *LayoutEngine) Measure(t *tree.RenderTree, p layout.ProposalSize, e *env.Environment) (layout.Size, error) {
	le.reset(t, e)
	root, ok := t.Root()
	if !ok {
		return layout.Size{}, nil
	}
	size := le.measure(root, p, 0)
	return size, le.err
}

// Layout measures the root against the viewport and places every node.
// When fill is true the root receives the whole viewport; otherwise it
// keeps its measured size at the viewport origin.
func (le *LayoutEngine) Layout(t *tree.RenderTree, viewport layout.Rect, e *env.Environment, fill bool) error {
	le.reset(t, e)
	root, ok := t.Root()
	if !ok {
		return nil
	}
	p := layout.ProposeSize(viewport.Size())
	size := le.measure(root, p, 0)
	bounds := viewport
	if !fill {
		bounds = layout.RectFrom(viewport.Origin(), layout.Size{
			Width:  min(size.Width, viewport.Width),
			Height: min(size.Height, viewport.Height),
		})
	}
	le.place(root, bounds, 0)
	return le.err
}

// Frame returns the rectangle assigned to id by the most recent Layout.
func (le *LayoutEngine) Frame(id tree.NodeID) (layout.Rect, bool) {
	r, ok := le.frames[id]
	return r, ok
}

func (le *LayoutEngine) depthOK(depth int) bool {
	if depth <= le.maxDepth {
		return true
	}
	if le.err == nil {
		le.err = fmt.Errorf("%w: %d levels", ErrMaxDepth, depth)
	}
	return false
}

func (le *LayoutEngine) subviews(id tree.NodeID, depth int) []layout.Subview {
	ids := le.t.Children(id)
	if len(ids) == 0 {
		return nil
	}
	out := make([]layout.Subview, len(ids))
	for i, c := range ids {
		out[i] = subview{le: le, id: c, depth: depth + 1}
	}
	return out
}

func (le *LayoutEngine) measure(id tree.NodeID, p layout.ProposalSize, depth int) layout.Size {
	if !le.depthOK(depth) {
		return layout.Size{}
	}
	key := cacheKey{id: id, p: p}
	if s, ok := le.cache[key]; ok {
		return s
	}
	n, ok := le.t.Node(id)
	if !ok {
		return layout.Size{}
	}
	s := n.SizeThatFits(p, le.subviews(id, depth), le.env)
	le.cache[key] = s
	return s
}

func (le *LayoutEngine) place(id tree.NodeID, bounds layout.Rect, depth int) {
	if !le.depthOK(depth) {
		return
	}
	n, ok := le.t.Node(id)
	if !ok {
		return
	}
	le.frames[id] = bounds
	children := le.t.Children(id)
	if len(children) == 0 {
		return
	}
	rects := n.Place(bounds, le.subviews(id, depth), le.env)
	for i, c := range children {
		var r layout.Rect
		if i < len(rects) {
			r = rects[i]
		}
		le.place(c, r, depth+1)
	}
}

// subview exposes a tree node to its parent's layout.
type subview struct {
	le    *LayoutEngine
	id    tree.NodeID
	depth int
}

func (s subview) SizeThatFits(p layout.ProposalSize) layout.Size {
	return s.le.measure(s.id, p, s.depth)
}

func (s subview) StretchAxis() layout.StretchAxis {
	n, ok := s.le.t.Node(s.id)
	if !ok {
		return layout.StretchNone
	}
	return n.StretchAxis()
}
