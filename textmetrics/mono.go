// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package textmetrics

import (
	"math"

	"golang.org/x/text/width"

	"github.com/gogpu/ui/env"
	"github.com/gogpu/ui/layout"
)

// Monospace measures text on a character grid. CellWidth and LineHeight
// are fractions of the font size; zero values select 0.6 and 1.2.
type Monospace struct {
	CellWidth  float64
	LineHeight float64
}

// Cells returns the number of grid cells s occupies. East Asian wide and
// fullwidth runes take two cells; combining marks take none.
func Cells(s string) int {
	n := 0
	for _, r := range s {
		n += RuneCells(r)
	}
	return n
}

// RuneCells returns the number of grid cells r occupies.
func RuneCells(r rune) int {
	if r < 0x20 || (r >= 0x7f && r < 0xa0) || (r >= 0x300 && r <= 0x36f) {
		return 0
	}
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	default:
		return 1
	}
}

// MeasureText implements env.TextMeasurer.
func (m Monospace) MeasureText(s string, style env.TextStyle) layout.Size {
	size := style.Size
	if size <= 0 {
		size = env.DefaultFontSize
	}
	cw, lh := m.CellWidth, m.LineHeight
	if cw <= 0 {
		cw = 0.6
	}
	if lh <= 0 {
		lh = 1.2
	}
	return layout.Size{
		Width:  math.Ceil(float64(Cells(s)) * size * cw),
		Height: math.Ceil(size * lh),
	}
}
