// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package cpu

import (
	"fmt"

	"github.com/gogpu/gg"
	"github.com/gogpu/ui/env"
	"github.com/gogpu/ui/render"
	"github.com/gogpu/ui/textmetrics"
)

// Rasterize draws scene onto dc in command order. Text commands are passed
// to painter when it is non-nil.
func Rasterize(dc *gg.Context, scene *render.Scene, painter render.TextPainter) error {
	for _, cmd := range scene.Commands() {
		switch c := cmd.(type) {
		case render.SolidRect:
			if c.Rect.IsEmpty() {
				continue
			}
			dc.SetRGBA(c.Color.R, c.Color.G, c.Color.B, c.Color.A)
			dc.DrawRectangle(c.Rect.X, c.Rect.Y, c.Rect.Width, c.Rect.Height)
			if err := dc.Fill(); err != nil {
				return fmt.Errorf("cpu: fill %v: %w", c.Rect, err)
			}
		case render.Text:
			if painter == nil || c.Content == "" {
				continue
			}
			if err := painter.DrawText(c); err != nil {
				return err
			}
		case render.Placeholder:
		}
	}
	return nil
}

// FontPainter draws text onto a gg context with the font sources of a
// textmetrics.Shaper.
type FontPainter struct {
	dc     *gg.Context
	shaper *textmetrics.Shaper
}

// NewFontPainter returns a painter drawing onto dc.
func NewFontPainter(dc *gg.Context, shaper *textmetrics.Shaper) *FontPainter {
	return &FontPainter{dc: dc, shaper: shaper}
}

// DrawText draws cmd with its top-left corner at cmd.Origin.
func (p *FontPainter) DrawText(cmd render.Text) error {
	size := cmd.FontSize
	if size <= 0 {
		size = env.DefaultFontSize
	}
	face := p.shaper.FontSource(env.TextStyle{Size: size, Monospace: cmd.Monospace}).Face(size)
	p.dc.SetFont(face)
	p.dc.SetRGBA(cmd.Color.R, cmd.Color.G, cmd.Color.B, cmd.Color.A)
	p.dc.DrawString(cmd.Content, cmd.Origin.X, cmd.Origin.Y+face.Metrics().Ascent)
	return nil
}
