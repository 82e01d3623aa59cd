// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package terminal

import (
	"strings"

	"github.com/gogpu/gg"

	"github.com/gogpu/ui/textmetrics"
)

// IndentWidth is the number of cells one indentation level occupies.
const IndentWidth = 2

// Style is the resolved appearance of a segment.
type Style struct {
	Foreground gg.RGBA
	Background gg.RGBA
	Bold       bool
	Faint      bool
	Underline  bool
}

// Segment is a run of text drawn with a single style.
type Segment struct {
	Content string
	Style   Style
}

// Line is one row of output. Indent counts nesting levels, not cells.
type Line struct {
	Indent   int
	Segments []Segment
}

// Text returns the concatenated segment contents without indentation.
func (l Line) Text() string {
	var b strings.Builder
	for _, s := range l.Segments {
		b.WriteString(s.Content)
	}
	return b.String()
}

// Width returns the display width of the line in cells, indentation
// included.
func (l Line) Width() int {
	w := l.Indent * IndentWidth
	for _, s := range l.Segments {
		w += textmetrics.Cells(s.Content)
	}
	return w
}

// Frame is a complete textual rendering of a view.
type Frame struct {
	Lines []Line
}

// String returns the frame as plain text, one line per row.
func (f Frame) String() string {
	var b strings.Builder
	for i, l := range f.Lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(strings.Repeat(" ", l.Indent*IndentWidth))
		b.WriteString(l.Text())
	}
	return b.String()
}
