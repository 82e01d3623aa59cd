// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package layout

// Padding insets a single child.
type Padding struct {
	Insets EdgeInsets
}

// SizeThatFits implements [Layout]. The child is proposed the parent's box
// minus the insets and the container reports the child's size plus insets.
func (pd Padding) SizeThatFits(p ProposalSize, children []Subview) Size {
	if len(children) == 0 {
		return Size{}
	}
	child := Measure(children[0], p.Inset(pd.Insets))
	return child.Add(pd.Insets.Size())
}

// Place implements [Layout]. Every child receives the inset bounds.
func (pd Padding) Place(bounds Rect, children []Subview) []Rect {
	if len(children) == 0 {
		return nil
	}
	inner := bounds.Inset(pd.Insets)
	rects := make([]Rect, len(children))
	for i := range rects {
		rects[i] = inner
	}
	return rects
}
