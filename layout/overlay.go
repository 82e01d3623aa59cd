// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package layout

import "math"

// Overlay stacks layers over a base child. The base (first) child alone
// decides the container size; layers are aligned within the base bounds and
// never influence the size.
type Overlay struct {
	Alignment Alignment
}

func overlayExtent(base float64, p Dim) float64 {
	if base > 0 && isFinite(base) {
		return base
	}
	if p.IsFinite() {
		return p.Or(0)
	}
	return 0
}

// SizeThatFits implements [Layout]. A base child reporting a zero or
// non-finite extent falls back to the parent's proposal on that axis.
func (o Overlay) SizeThatFits(p ProposalSize, children []Subview) Size {
	if len(children) == 0 {
		return Size{}
	}
	base := children[0].SizeThatFits(p)
	return Size{
		Width:  overlayExtent(base.Width, p.Width),
		Height: overlayExtent(base.Height, p.Height),
	}
}

// Place implements [Layout].
func (o Overlay) Place(bounds Rect, children []Subview) []Rect {
	if len(children) == 0 {
		return nil
	}
	rects := make([]Rect, len(children))
	rects[0] = bounds
	full := ProposeSize(bounds.Size())
	for i := 1; i < len(children); i++ {
		sz := Measure(children[i], full)
		sz.Width = math.Min(sz.Width, bounds.Width)
		sz.Height = math.Min(sz.Height, bounds.Height)
		rects[i] = o.Alignment.Align(sz, bounds)
	}
	return rects
}
