// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package layout

import "math"

// Grid places children left-to-right, top-to-bottom in a fixed number of
// equal-width columns. Each row is as tall as its tallest child.
type Grid struct {
	Columns int
	Spacing float64

	// Alignment positions each child inside its cell.
	Alignment Alignment
}

func (g Grid) columns() int {
	if g.Columns < 1 {
		return 1
	}
	return g.Columns
}

// ColumnWidth returns the width of one column when the grid is width wide.
func (g Grid) ColumnWidth(width float64) float64 {
	cols := g.columns()
	return math.Max(0, (width-g.Spacing*float64(cols-1))/float64(cols))
}

func (g Grid) rowHeights(children []Subview, colWidth float64) ([]float64, []Size) {
	cols := g.columns()
	rows := (len(children) + cols - 1) / cols
	heights := make([]float64, rows)
	sizes := make([]Size, len(children))
	p := ProposalSize{Width: Exactly(colWidth), Height: Unspecified}
	for i, c := range children {
		sizes[i] = Measure(c, p)
		r := i / cols
		heights[r] = math.Max(heights[r], sizes[i].Height)
	}
	return heights, sizes
}

// SizeThatFits implements [Layout].
//
// With a finite proposed width the columns divide it evenly. Otherwise the
// column width is the widest child's intrinsic width.
func (g Grid) SizeThatFits(p ProposalSize, children []Subview) Size {
	if len(children) == 0 {
		return Size{}
	}
	cols := g.columns()

	var width, colWidth float64
	if p.Width.IsFinite() {
		width = p.Width.Or(0)
		colWidth = g.ColumnWidth(width)
	} else {
		for _, c := range children {
			colWidth = math.Max(colWidth, Measure(c, Unconstrained).Width)
		}
		width = colWidth*float64(cols) + g.Spacing*float64(cols-1)
	}

	heights, _ := g.rowHeights(children, colWidth)
	var height float64
	for _, h := range heights {
		height += h
	}
	height += g.Spacing * float64(len(heights)-1)
	return Size{Width: width, Height: height}
}

// Place implements [Layout].
//
// A grid placed into a non-finite width cannot divide it into columns and
// returns zero-size rectangles for every child.
func (g Grid) Place(bounds Rect, children []Subview) []Rect {
	n := len(children)
	if n == 0 {
		return nil
	}
	if !isFinite(bounds.Width) {
		return make([]Rect, n)
	}
	cols := g.columns()
	colWidth := g.ColumnWidth(bounds.Width)
	heights, sizes := g.rowHeights(children, colWidth)

	rects := make([]Rect, n)
	y := bounds.Y
	for r, rowHeight := range heights {
		for c := 0; c < cols; c++ {
			i := r*cols + c
			if i >= n {
				break
			}
			cell := Rect{
				X:      bounds.X + float64(c)*(colWidth+g.Spacing),
				Y:      y,
				Width:  colWidth,
				Height: rowHeight,
			}
			sz := Size{
				Width:  math.Min(sizes[i].Width, colWidth),
				Height: math.Min(sizes[i].Height, rowHeight),
			}
			rects[i] = g.Alignment.Align(sz, cell)
		}
		y += rowHeight + g.Spacing
	}
	return rects
}
