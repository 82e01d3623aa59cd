// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tree

import (
	"github.com/gogpu/ui/env"
	"github.com/gogpu/ui/layout"
	"github.com/gogpu/ui/render"
)

// Node is a concrete render node stored in a [RenderTree].
//
// Containers receive their children as [layout.Subview] values; leaves
// ignore the children argument.
type Node interface {
	// SizeThatFits returns the node's desired size for proposal p.
	SizeThatFits(p layout.ProposalSize, children []layout.Subview, e *env.Environment) layout.Size

	// Place returns one rectangle per child for the node's final bounds.
	Place(bounds layout.Rect, children []layout.Subview, e *env.Environment) []layout.Rect

	// StretchAxis reports the axes the node expands along.
	StretchAxis() layout.StretchAxis

	// Paint records the node's own draw commands. ctx.Bounds() is the
	// node's placed rectangle.
	Paint(ctx *render.Ctx)
}

// Reactive is implemented by nodes that derive state from reactive
// sources. UpdateReactive runs before layout on frames where the node was
// marked [DirtyReactive].
type Reactive interface {
	UpdateReactive(e *env.Environment)
}

// Named is implemented by nodes that provide a label for debug output.
type Named interface {
	NodeName() string
}
