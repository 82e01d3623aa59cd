// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package layout

import "math"

// Frame sizes a single child with an optional ideal size and min/max bounds
// per axis, then aligns the child inside the resulting box.
//
// A max bound of +Inf makes the frame take the full proposed extent on that
// axis, the way an expanding frame does in declarative toolkits.
type Frame struct {
	Width, Height        Dim
	MinWidth, MaxWidth   Dim
	MinHeight, MaxHeight Dim

	Alignment Alignment
}

// FixedFrame returns a frame with ideal width and height, centered.
func FixedFrame(width, height float64) Frame {
	return Frame{Width: Exactly(width), Height: Exactly(height), Alignment: Center}
}

func (f Frame) axis(a Axis) (ideal, lo, hi Dim) {
	if a == Horizontal {
		return f.Width, f.MinWidth, f.MaxWidth
	}
	return f.Height, f.MinHeight, f.MaxHeight
}

// Expands reports whether the frame fills the proposal along a.
func (f Frame) Expands(a Axis) bool {
	_, _, hi := f.axis(a)
	v, ok := hi.Value()
	return ok && math.IsInf(v, 1)
}

func (f Frame) childDim(a Axis, p Dim) Dim {
	ideal, lo, hi := f.axis(a)
	if v, ok := ideal.Value(); ok {
		return Exactly(Clamp(v, lo, hi))
	}
	if v, ok := p.Value(); ok && isFinite(v) {
		return Exactly(Clamp(v, lo, hi))
	}
	return Unspecified
}

func (f Frame) extent(a Axis, p Dim, child float64) float64 {
	ideal, lo, hi := f.axis(a)
	target := ideal.Or(child)
	if f.Expands(a) && p.IsFinite() && !ideal.IsSpecified() {
		target = p.Or(target)
	}
	target = Clamp(target, lo, hi)
	if pv, ok := p.Value(); ok && isFinite(pv) && target > pv {
		target = pv
	}
	return math.Max(0, target)
}

// SizeThatFits implements [Layout].
func (f Frame) SizeThatFits(p ProposalSize, children []Subview) Size {
	if len(children) == 0 && !f.Width.IsSpecified() && !f.Height.IsSpecified() {
		return Size{}
	}
	cp := ProposalSize{
		Width:  f.childDim(Horizontal, p.Width),
		Height: f.childDim(Vertical, p.Height),
	}
	var child Size
	if len(children) > 0 {
		child = Measure(children[0], cp)
	}
	return Size{
		Width:  f.extent(Horizontal, p.Width, child.Width),
		Height: f.extent(Vertical, p.Height, child.Height),
	}
}

// Place implements [Layout].
func (f Frame) Place(bounds Rect, children []Subview) []Rect {
	if len(children) == 0 {
		return nil
	}
	cp := ProposalSize{
		Width:  f.childDim(Horizontal, Exactly(bounds.Width)),
		Height: f.childDim(Vertical, Exactly(bounds.Height)),
	}
	rects := make([]Rect, len(children))
	for i, c := range children {
		sz := Measure(c, cp)
		sz.Width = math.Min(sz.Width, bounds.Width)
		sz.Height = math.Min(sz.Height, bounds.Height)
		rects[i] = f.Alignment.Align(sz, bounds)
	}
	return rects
}
