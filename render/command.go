// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"

	"github.com/gogpu/gg"
	"github.com/gogpu/ui/layout"
)

// CommandKind identifies the variant of a [DrawCommand].
type CommandKind uint8

const (
	KindSolidRect CommandKind = iota
	KindText
	KindPlaceholder
)

func (k CommandKind) String() string {
	switch k {
	case KindSolidRect:
		return "SolidRect"
	case KindText:
		return "Text"
	case KindPlaceholder:
		return "Placeholder"
	default:
		return fmt.Sprintf("CommandKind(%d)", k)
	}
}

// DrawCommand is a single primitive paint instruction. The set of
// implementations is closed: SolidRect, Text and Placeholder.
type DrawCommand interface {
	Kind() CommandKind
	Bounds() layout.Rect
	command()
}

// SolidRect fills Rect with Color.
type SolidRect struct {
	Rect  layout.Rect
	Color gg.RGBA
}

func (SolidRect) Kind() CommandKind     { return KindSolidRect }
func (c SolidRect) Bounds() layout.Rect { return c.Rect }
func (SolidRect) command()              {}

// Text is a single-line text run. Origin is the top-left corner of the run's
// line box and Size its measured extent.
type Text struct {
	Origin    layout.Point
	Size      layout.Size
	Content   string
	Color     gg.RGBA
	FontSize  float64
	Monospace bool
}

func (Text) Kind() CommandKind     { return KindText }
func (c Text) Bounds() layout.Rect { return layout.RectFrom(c.Origin, c.Size) }
func (Text) command()              {}

// Placeholder marks content that no backend draws yet.
type Placeholder struct {
	Rect  layout.Rect
	Label string
}

func (Placeholder) Kind() CommandKind     { return KindPlaceholder }
func (c Placeholder) Bounds() layout.Rect { return c.Rect }
func (Placeholder) command()              {}

// TextPainter draws [Text] commands. Backends without one skip text.
type TextPainter interface {
	DrawText(cmd Text) error
}
