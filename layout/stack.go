// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package layout

import "math"

// Stack lays children out in a line along Axis: a VStack when Axis is
// Vertical, an HStack when it is Horizontal.
//
// Children that stretch along the main axis share whatever main-axis space
// the fixed children and spacing leave over, split evenly by count.
type Stack struct {
	Axis    Axis
	Spacing float64

	// Alignment positions children on the cross axis. A VStack reads the
	// horizontal component, an HStack the vertical one.
	Alignment Alignment
}

// VStack returns a vertical stack.
func VStack(spacing float64, align HorizontalAlignment) Stack {
	return Stack{Axis: Vertical, Spacing: spacing, Alignment: Alignment{Horizontal: align, Vertical: Top}}
}

// HStack returns a horizontal stack.
func HStack(spacing float64, align VerticalAlignment) Stack {
	return Stack{Axis: Horizontal, Spacing: spacing, Alignment: Alignment{Horizontal: Leading, Vertical: align}}
}

func (s Stack) totalSpacing(n int) float64 {
	if n < 2 {
		return 0
	}
	return s.Spacing * float64(n-1)
}

// SizeThatFits implements [Layout].
//
// The main extent is the sum of the non-stretching children plus spacing,
// or the proposed main extent when any child stretches. The cross extent is
// the widest non-stretching child, clamped to the proposed cross extent.
func (s Stack) SizeThatFits(p ProposalSize, children []Subview) Size {
	if len(children) == 0 {
		return Size{}
	}
	main, cross := s.Axis, s.Axis.Cross()
	childProposal := ProposalAlong(main, Unspecified, p.Along(cross))

	var mainTotal, crossMax float64
	stretching := 0
	for _, c := range children {
		if c.StretchAxis().IncludesMain(main) {
			stretching++
			continue
		}
		sz := Measure(c, childProposal)
		mainTotal += sz.Along(main)
		crossMax = math.Max(crossMax, sz.Along(cross))
	}

	mainExtent := mainTotal + s.totalSpacing(len(children))
	if stretching > 0 && p.Along(main).IsFinite() {
		mainExtent = p.Along(main).Or(mainExtent)
	}
	if pc, ok := p.Along(cross).Value(); ok && crossMax > pc {
		crossMax = pc
	}
	return SizeAlong(main, mainExtent, crossMax)
}

// Place implements [Layout].
func (s Stack) Place(bounds Rect, children []Subview) []Rect {
	n := len(children)
	if n == 0 {
		return nil
	}
	main, cross := s.Axis, s.Axis.Cross()
	boundsMain := bounds.Size().Along(main)
	boundsCross := bounds.Size().Along(cross)
	crossDim := Exactly(boundsCross)

	sizes := make([]Size, n)
	stretch := make([]bool, n)
	var fixedTotal float64
	stretching := 0
	for i, c := range children {
		if c.StretchAxis().IncludesMain(main) {
			stretch[i] = true
			stretching++
			continue
		}
		sizes[i] = Measure(c, ProposalAlong(main, Unspecified, crossDim))
		fixedTotal += sizes[i].Along(main)
	}

	var share float64
	if stretching > 0 {
		share = math.Max(0, (boundsMain-fixedTotal-s.totalSpacing(n))/float64(stretching))
		if !isFinite(share) {
			share = 0
		}
		for i, c := range children {
			if !stretch[i] {
				continue
			}
			sz := Measure(c, ProposalAlong(main, Exactly(share), crossDim))
			sizes[i] = SizeAlong(main, share, sz.Along(cross))
		}
	}

	rects := make([]Rect, n)
	frac := s.Alignment.Fraction(cross)
	cursor := bounds.Min(main)
	for i := range children {
		mainExtent := sizes[i].Along(main)
		crossExtent := sizes[i].Along(cross)
		if isFinite(boundsCross) && crossExtent > boundsCross {
			crossExtent = boundsCross
		}
		crossPos := bounds.Min(cross)
		if isFinite(boundsCross) {
			crossPos += (boundsCross - crossExtent) * frac
		}
		if main == Horizontal {
			rects[i] = Rect{X: cursor, Y: crossPos, Width: mainExtent, Height: crossExtent}
		} else {
			rects[i] = Rect{X: crossPos, Y: cursor, Width: crossExtent, Height: mainExtent}
		}
		cursor += mainExtent + s.Spacing
	}
	return rects
}
