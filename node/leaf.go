// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package node

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/ui/env"
	"github.com/gogpu/ui/layout"
	"github.com/gogpu/ui/render"
)

// leaf supplies the container half of tree.Node for nodes without children.
type leaf struct{}

func (leaf) Place(layout.Rect, []layout.Subview, *env.Environment) []layout.Rect { return nil }

func colorOr(c, fallback gg.RGBA) gg.RGBA {
	if c == (gg.RGBA{}) {
		return fallback
	}
	return c
}

// Empty occupies no space and paints nothing.
type Empty struct{ leaf }

func (*Empty) SizeThatFits(layout.ProposalSize, []layout.Subview, *env.Environment) layout.Size {
	return layout.Size{}
}

func (*Empty) StretchAxis() layout.StretchAxis { return layout.StretchNone }
func (*Empty) Paint(*render.Ctx)               {}

// Text is a single-line label.
type Text struct {
	leaf
	Content string
	Style   env.TextStyle

	// Color overrides the theme foreground when non-zero.
	Color gg.RGBA

	// Source, when set, supplies Content on reactive updates.
	Source func() string
}

// NewText returns a static text node.
func NewText(content string) *Text {
	return &Text{Content: content}
}

// SizeThatFits returns the measured run, narrowed to a finite proposed width.
func (t *Text) SizeThatFits(p layout.ProposalSize, _ []layout.Subview, e *env.Environment) layout.Size {
	s := e.MeasureText(t.Content, t.Style)
	if w, ok := p.Width.Value(); ok && w >= 0 && w < s.Width {
		s.Width = w
	}
	return s
}

func (*Text) StretchAxis() layout.StretchAxis { return layout.StretchNone }

func (t *Text) Paint(ctx *render.Ctx) {
	ctx.DrawText(t.Content, t.Style, colorOr(t.Color, ctx.Env().Theme.Foreground))
}

// UpdateReactive implements tree.Reactive.
func (t *Text) UpdateReactive(*env.Environment) {
	if t.Source != nil {
		t.Content = t.Source()
	}
}

// Divider is a thin full-width rule.
type Divider struct {
	leaf

	// Thickness defaults to 1.
	Thickness float64
}

func (d *Divider) thickness() float64 {
	if d.Thickness > 0 {
		return d.Thickness
	}
	return 1
}

// SizeThatFits reports an infinite width; the parent substitutes its bound.
func (d *Divider) SizeThatFits(layout.ProposalSize, []layout.Subview, *env.Environment) layout.Size {
	return layout.Size{Width: inf, Height: d.thickness()}
}

func (*Divider) StretchAxis() layout.StretchAxis { return layout.StretchHorizontal }

func (d *Divider) Paint(ctx *render.Ctx) {
	b := ctx.Bounds()
	b.Height = d.thickness()
	ctx.FillRect(b, ctx.Env().Theme.Separator)
}

// Spacer expands along the main axis of its enclosing stack.
type Spacer struct {
	leaf
	MinLength float64
}

func (s *Spacer) SizeThatFits(layout.ProposalSize, []layout.Subview, *env.Environment) layout.Size {
	return layout.Size{Width: s.MinLength, Height: s.MinLength}
}

func (*Spacer) StretchAxis() layout.StretchAxis { return layout.StretchMainAxis }
func (*Spacer) Paint(*render.Ctx)               {}
