// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package layout

// Subview is a measurable child as seen by its parent container.
type Subview interface {
	// SizeThatFits returns the child's desired size for the proposal.
	SizeThatFits(p ProposalSize) Size

	// StretchAxis reports the axes the child wants to expand along.
	StretchAxis() StretchAxis
}

// Layout is the two-pass container protocol.
type Layout interface {
	// SizeThatFits returns the container size for the parent's proposal.
	SizeThatFits(p ProposalSize, children []Subview) Size

	// Place returns one rectangle per child, in child order, for the final
	// container bounds.
	Place(bounds Rect, children []Subview) []Rect
}

// Measure proposes p to child and resolves any infinite extents against p.
func Measure(child Subview, p ProposalSize) Size {
	return ResolveSize(child.SizeThatFits(p), p)
}

// Clamp limits v to [lo, hi]. Unspecified bounds are ignored.
func Clamp(v float64, lo, hi Dim) float64 {
	if hv, ok := hi.Value(); ok && v > hv {
		v = hv
	}
	if lv, ok := lo.Value(); ok && v < lv {
		v = lv
	}
	return v
}
