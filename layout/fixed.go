// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package layout

import "math"

// Fixed is an absolute canvas: the container has an explicit size and every
// child is laid out at the container origin with its own measured size.
// An unspecified axis hugs the largest child on that axis.
type Fixed struct {
	Width, Height Dim
}

// SizeThatFits implements [Layout].
func (f Fixed) SizeThatFits(p ProposalSize, children []Subview) Size {
	var hug Size
	if !f.Width.IsSpecified() || !f.Height.IsSpecified() {
		for _, c := range children {
			sz := Measure(c, p)
			hug.Width = math.Max(hug.Width, sz.Width)
			hug.Height = math.Max(hug.Height, sz.Height)
		}
	}
	return Size{
		Width:  math.Max(0, f.Width.Or(hug.Width)),
		Height: math.Max(0, f.Height.Or(hug.Height)),
	}
}

// Place implements [Layout].
func (f Fixed) Place(bounds Rect, children []Subview) []Rect {
	if len(children) == 0 {
		return nil
	}
	p := ProposeSize(bounds.Size())
	rects := make([]Rect, len(children))
	for i, c := range children {
		sz := Measure(c, p)
		rects[i] = Rect{
			X:      bounds.X,
			Y:      bounds.Y,
			Width:  math.Min(sz.Width, bounds.Width),
			Height: math.Min(sz.Height, bounds.Height),
		}
	}
	return rects
}
