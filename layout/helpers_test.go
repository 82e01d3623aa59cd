// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package layout

import (
	"math"
	"testing"
)

// fakeView is a Subview with a fixed intrinsic size. Axes it stretches along
// report +Inf, except for StretchMainAxis which reports the intrinsic size.
type fakeView struct {
	size      Size
	stretch   StretchAxis
	proposals []ProposalSize
}

func fixed(w, h float64) *fakeView {
	return &fakeView{size: Size{Width: w, Height: h}}
}

func stretching(axis StretchAxis) *fakeView {
	return &fakeView{stretch: axis}
}

func (f *fakeView) SizeThatFits(p ProposalSize) Size {
	f.proposals = append(f.proposals, p)
	s := f.size
	if f.stretch.Includes(Horizontal) {
		s.Width = math.Inf(1)
	}
	if f.stretch.Includes(Vertical) {
		s.Height = math.Inf(1)
	}
	return s
}

func (f *fakeView) StretchAxis() StretchAxis { return f.stretch }

func subviews(views ...*fakeView) []Subview {
	out := make([]Subview, len(views))
	for i, v := range views {
		out[i] = v
	}
	return out
}

const epsilon = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func assertRect(t *testing.T, name string, got, want Rect) {
	t.Helper()
	if !approx(got.X, want.X) || !approx(got.Y, want.Y) ||
		!approx(got.Width, want.Width) || !approx(got.Height, want.Height) {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertSize(t *testing.T, name string, got, want Size) {
	t.Helper()
	if !approx(got.Width, want.Width) || !approx(got.Height, want.Height) {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}
