// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package node

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/ui/env"
	"github.com/gogpu/ui/layout"
	"github.com/gogpu/ui/render"
)

// Container delegates measurement and placement of its children to a
// [layout.Layout].
type Container struct {
	Layout  layout.Layout
	Stretch layout.StretchAxis

	// Background fills the container bounds when non-zero.
	Background gg.RGBA

	// Name labels the container in debug output.
	Name string
}

// NewContainer returns a container laying out its children with l.
func NewContainer(name string, l layout.Layout) *Container {
	return &Container{Layout: l, Name: name}
}

func (c *Container) SizeThatFits(p layout.ProposalSize, children []layout.Subview, _ *env.Environment) layout.Size {
	if c.Layout == nil {
		return layout.Size{}
	}
	return c.Layout.SizeThatFits(p, children)
}

func (c *Container) Place(bounds layout.Rect, children []layout.Subview, _ *env.Environment) []layout.Rect {
	if c.Layout == nil {
		return make([]layout.Rect, len(children))
	}
	return c.Layout.Place(bounds, children)
}

func (c *Container) StretchAxis() layout.StretchAxis { return c.Stretch }

func (c *Container) Paint(ctx *render.Ctx) {
	ctx.FillRect(ctx.Bounds(), c.Background)
}

// NodeName implements tree.Named.
func (c *Container) NodeName() string {
	if c.Name != "" {
		return c.Name
	}
	return "Container"
}
