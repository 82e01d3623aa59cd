// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/ui/env"
	"github.com/gogpu/ui/layout"
)

// Ctx is the paint context handed to each node during the paint traversal.
// The traversal sets Bounds to the node's placed rectangle before calling
// its Paint method.
type Ctx struct {
	scene  *Scene
	env    *env.Environment
	bounds layout.Rect
}

// NewCtx returns a context recording into scene.
func NewCtx(scene *Scene, e *env.Environment) *Ctx {
	return &Ctx{scene: scene, env: e}
}

// Scene returns the scene being recorded.
func (c *Ctx) Scene() *Scene { return c.scene }

// Env returns the environment of the traversal.
func (c *Ctx) Env() *env.Environment { return c.env }

// Bounds returns the rectangle of the node being painted.
func (c *Ctx) Bounds() layout.Rect { return c.bounds }

// SetBounds sets the rectangle of the node about to be painted.
func (c *Ctx) SetBounds(r layout.Rect) { c.bounds = r }

// FillRect records a SolidRect. Empty rectangles and fully transparent
// colors record nothing.
func (c *Ctx) FillRect(r layout.Rect, col gg.RGBA) {
	if r.IsEmpty() || col.A <= 0 {
		return
	}
	c.scene.Push(SolidRect{Rect: r, Color: col})
}

// Fill records a SolidRect covering the current bounds.
func (c *Ctx) Fill(col gg.RGBA) {
	c.FillRect(c.bounds, col)
}

// DrawText records a Text command at the origin of the current bounds,
// sized by the environment's text measurer.
func (c *Ctx) DrawText(s string, style env.TextStyle, col gg.RGBA) {
	c.DrawTextAt(s, c.bounds.Origin(), style, col)
}

// DrawTextAt records a Text command at origin.
func (c *Ctx) DrawTextAt(s string, origin layout.Point, style env.TextStyle, col gg.RGBA) {
	size := c.env.FontSize(style)
	style.Size = size
	c.scene.Push(Text{
		Origin:    origin,
		Size:      c.env.MeasureText(s, style),
		Content:   s,
		Color:     col,
		FontSize:  size,
		Monospace: style.Monospace,
	})
}

// Placeholder records a Placeholder over the current bounds.
func (c *Ctx) Placeholder(label string) {
	c.scene.Push(Placeholder{Rect: c.bounds, Label: label})
}
