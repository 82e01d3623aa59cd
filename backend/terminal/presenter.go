// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gdamore/tcell/v2"
	"github.com/gogpu/gg"

	"github.com/gogpu/ui/env"
	"github.com/gogpu/ui/textmetrics"
)

// Presenter displays a Frame.
type Presenter interface {
	Present(f Frame) error
}

// WriterPresenter writes frames as ANSI-styled text. The color profile is
// detected from the writer, so plain files and pipes receive plain text.
type WriterPresenter struct {
	w        io.Writer
	renderer *lipgloss.Renderer

	// Separator is written after every frame.
	Separator string
}

// NewWriterPresenter returns a presenter writing to w.
func NewWriterPresenter(w io.Writer) *WriterPresenter {
	return &WriterPresenter{w: w, renderer: lipgloss.NewRenderer(w), Separator: "\n"}
}

// Present implements Presenter.
func (p *WriterPresenter) Present(f Frame) error {
	var b strings.Builder
	for i, l := range f.Lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(renderLine(p.renderer.NewStyle(), l))
	}
	b.WriteString(p.Separator)
	if _, err := io.WriteString(p.w, b.String()); err != nil {
		return fmt.Errorf("terminal: write frame: %w", err)
	}
	return nil
}

// renderLine styles every segment of l starting from base.
func renderLine(base lipgloss.Style, l Line) string {
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", l.Indent*IndentWidth))
	for _, s := range l.Segments {
		b.WriteString(lipglossStyle(base, s.Style).Render(s.Content))
	}
	return b.String()
}

func lipglossStyle(base lipgloss.Style, s Style) lipgloss.Style {
	st := base.Bold(s.Bold).Faint(s.Faint).Underline(s.Underline)
	if s.Foreground.A > 0 {
		st = st.Foreground(lipgloss.Color(env.Hex(s.Foreground)))
	}
	if s.Background.A > 0 {
		st = st.Background(lipgloss.Color(env.Hex(s.Background)))
	}
	return st
}

// ScreenPresenter draws frames into a tcell screen. Wide runes advance two
// cells; lines past the bottom or cells past the right edge are clipped.
type ScreenPresenter struct {
	screen tcell.Screen
}

// NewScreenPresenter returns a presenter drawing into an initialized screen.
func NewScreenPresenter(s tcell.Screen) *ScreenPresenter {
	return &ScreenPresenter{screen: s}
}

// Present implements Presenter.
func (p *ScreenPresenter) Present(f Frame) error {
	s := p.screen
	w, h := s.Size()
	s.Clear()
	for y, l := range f.Lines {
		if y >= h {
			break
		}
		x := l.Indent * IndentWidth
		for _, seg := range l.Segments {
			st := tcellStyle(seg.Style)
			for _, r := range seg.Content {
				cells := textmetrics.RuneCells(r)
				if cells == 0 {
					continue
				}
				if x+cells > w {
					break
				}
				s.SetContent(x, y, r, nil, st)
				x += cells
			}
		}
	}
	s.Show()
	return nil
}

func tcellStyle(s Style) tcell.Style {
	st := tcell.StyleDefault.Bold(s.Bold).Dim(s.Faint).Underline(s.Underline)
	if s.Foreground.A > 0 {
		st = st.Foreground(tcellColor(s.Foreground))
	}
	if s.Background.A > 0 {
		st = st.Background(tcellColor(s.Background))
	}
	return st
}

func tcellColor(c gg.RGBA) tcell.Color {
	r, g, b := env.RGB8(c)
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
