// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package layout

import (
	"math"
	"testing"
)

func TestGridColumnPositions(t *testing.T) {
	tests := []struct {
		columns int
		spacing float64
		width   float64
	}{
		{1, 0, 100},
		{2, 4, 100},
		{3, 10, 310},
		{4, 2.5, 97},
		{0, 8, 50}, // clamps to one column
	}

	for _, tt := range tests {
		g := Grid{Columns: tt.columns, Spacing: tt.spacing}
		cols := g.columns()
		cw := (tt.width - tt.spacing*float64(cols-1)) / float64(cols)
		if got := g.ColumnWidth(tt.width); !approx(got, cw) {
			t.Errorf("Grid{%d}.ColumnWidth(%v) = %v, want %v", tt.columns, tt.width, got, cw)
		}

		views := make([]*fakeView, 2*cols)
		for i := range views {
			views[i] = fixed(1, 1)
		}
		rects := g.Place(Rect{X: 3, Width: tt.width, Height: 100}, subviews(views...))
		for i, r := range rects {
			col := i % cols
			wantX := 3 + float64(col)*(cw+tt.spacing)
			if !approx(r.X, wantX) {
				t.Errorf("Grid{%d} rects[%d].X = %v, want %v", tt.columns, i, r.X, wantX)
			}
		}
	}
}

func TestGridSizeThatFits(t *testing.T) {
	children := func() []Subview {
		views := make([]*fakeView, 5)
		for i := range views {
			views[i] = fixed(10, 20)
		}
		return subviews(views...)
	}
	g := Grid{Columns: 2, Spacing: 4}

	t.Run("finite width", func(t *testing.T) {
		got := g.SizeThatFits(ProposalSize{Width: Exactly(100)}, children())
		assertSize(t, "SizeThatFits", got, Size{Width: 100, Height: 68})
	})

	t.Run("intrinsic width", func(t *testing.T) {
		got := g.SizeThatFits(Unconstrained, children())
		assertSize(t, "SizeThatFits", got, Size{Width: 24, Height: 68})
	})

	t.Run("empty", func(t *testing.T) {
		if got := g.SizeThatFits(Propose(100, 100), nil); !got.IsZero() {
			t.Errorf("SizeThatFits(nil) = %v, want zero", got)
		}
	})
}

func TestGridRowHeightIsTallestChild(t *testing.T) {
	g := Grid{Columns: 2, Alignment: TopLeading}
	children := subviews(fixed(10, 10), fixed(10, 30), fixed(10, 5))

	rects := g.Place(Rect{Width: 100, Height: 100}, children)
	if rects[2].Y != 30 {
		t.Errorf("second row Y = %v, want 30", rects[2].Y)
	}
	if rects[0].Height != 10 {
		t.Errorf("short child height = %v, want 10", rects[0].Height)
	}
}

func TestGridInfiniteWidth(t *testing.T) {
	g := Grid{Columns: 3, Spacing: 2}
	rects := g.Place(Rect{Width: math.Inf(1), Height: 50}, subviews(fixed(10, 10), fixed(10, 10)))
	if len(rects) != 2 {
		t.Fatalf("len(rects) = %d, want 2", len(rects))
	}
	for i, r := range rects {
		if r != (Rect{}) {
			t.Errorf("rects[%d] = %v, want zero rect", i, r)
		}
	}
}

func TestGridCellAlignment(t *testing.T) {
	g := Grid{Columns: 2, Alignment: Center}
	rects := g.Place(Rect{Width: 100, Height: 40}, subviews(fixed(10, 10), fixed(20, 40)))
	assertRect(t, "centered", rects[0], Rect{X: 20, Y: 15, Width: 10, Height: 10})
}
