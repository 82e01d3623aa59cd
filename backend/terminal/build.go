// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package terminal

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/gg"

	"github.com/gogpu/ui/env"
	"github.com/gogpu/ui/layout"
	"github.com/gogpu/ui/parse"
	"github.com/gogpu/ui/view"
)

// Widget dimensions in cells.
const (
	sliderCells   = 20
	progressCells = 20
)

// Build renders v as a Frame. Composite views are expanded through their
// bodies; the errors are those of parse.Resolve.
func Build(v view.View, e *env.Environment) (Frame, error) {
	if e == nil {
		e = env.Default()
	}
	b := &builder{env: e, theme: e.Theme}
	if err := b.view(v, 0); err != nil {
		return Frame{}, err
	}
	return Frame{Lines: b.lines}, nil
}

type builder struct {
	env   *env.Environment
	theme env.Theme
	lines []Line
}

func (b *builder) emit(depth int, segs ...Segment) {
	b.lines = append(b.lines, Line{Indent: depth, Segments: segs})
}

func (b *builder) style(c gg.RGBA) Style {
	if c == (gg.RGBA{}) {
		c = b.theme.Foreground
	}
	return Style{Foreground: c}
}

func (b *builder) view(v view.View, depth int) error {
	p, err := parse.Resolve(v, b.env)
	if err != nil {
		return err
	}
	switch c := p.(type) {
	case view.EmptyConfig, view.SpacerConfig:
	case view.TextConfig:
		b.emit(depth, Segment{Content: get(c.Content, ""), Style: b.style(c.Color)})
	case view.DividerConfig:
		n := max(0, b.env.Columns()-depth*IndentWidth)
		b.emit(depth, Segment{Content: strings.Repeat("─", n), Style: Style{Foreground: b.theme.Separator}})
	case view.FixedContainer:
		return b.container(c, depth)
	default:
		segs, ok := b.widget(p)
		if !ok {
			return fmt.Errorf("terminal: unsupported view %T", p)
		}
		b.emit(depth, segs...)
	}
	return nil
}

func (b *builder) container(c view.FixedContainer, depth int) error {
	switch l := c.Layout.(type) {
	case layout.Stack:
		if l.Axis == layout.Horizontal {
			segs, err := b.joined(c.Children, gap(l.Spacing))
			if err != nil {
				return err
			}
			b.emit(depth, segs...)
			return nil
		}
	case layout.Grid:
		cols := max(1, l.Columns)
		for start := 0; start < len(c.Children); start += cols {
			row := c.Children[start:min(start+cols, len(c.Children))]
			segs, err := b.joined(row, "  ")
			if err != nil {
				return err
			}
			b.emit(depth+1, segs...)
		}
		return nil
	case layout.Frame, layout.Padding:
		// Decorators add no structure of their own.
		for _, child := range c.Children {
			if err := b.view(child, depth); err != nil {
				return err
			}
		}
		return nil
	}
	for _, child := range c.Children {
		if err := b.view(child, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// joined renders children on a private builder and flattens every line
// they produce into one segment list separated by sep.
func (b *builder) joined(children []view.View, sep string) ([]Segment, error) {
	sub := &builder{env: b.env, theme: b.theme}
	for _, child := range children {
		if err := sub.view(child, 0); err != nil {
			return nil, err
		}
	}
	var segs []Segment
	for i, l := range sub.lines {
		if i > 0 && sep != "" {
			segs = append(segs, Segment{Content: sep})
		}
		segs = append(segs, l.Segments...)
	}
	return segs, nil
}

func gap(spacing float64) string {
	if spacing <= 0 {
		return " "
	}
	return strings.Repeat(" ", max(1, int(math.Round(spacing/8))))
}

func (b *builder) widget(v view.View) ([]Segment, bool) {
	t := b.theme
	switch c := v.(type) {
	case view.SliderConfig:
		value := get(c.Value, c.Min)
		frac := 0.0
		if c.Max > c.Min {
			frac = math.Min(1, math.Max(0, (value-c.Min)/(c.Max-c.Min)))
		}
		filled := int(math.Round(frac * (sliderCells - 1)))
		return []Segment{
			{Content: strings.Repeat("━", filled), Style: Style{Foreground: t.Accent}},
			{Content: "●", Style: Style{Foreground: t.Accent, Bold: true}},
			{Content: strings.Repeat("─", sliderCells-1-filled), Style: Style{Foreground: t.Secondary}},
			{Content: " " + formatFloat(value), Style: Style{Foreground: t.Foreground}},
		}, true
	case view.StepperConfig:
		value := formatFloat(get(c.Value, 0))
		label := value
		if c.Label != "" {
			label = c.Label + ": " + value
		}
		return []Segment{
			{Content: label, Style: Style{Foreground: t.Foreground}},
			{Content: " [-|+]", Style: Style{Foreground: t.Accent}},
		}, true
	case view.ToggleConfig:
		box := Segment{Content: "[ ]", Style: Style{Foreground: t.Secondary}}
		if get(c.On, false) {
			box = Segment{Content: "[x]", Style: Style{Foreground: t.Accent, Bold: true}}
		}
		return []Segment{box, {Content: " " + c.Label, Style: Style{Foreground: t.Foreground}}}, true
	case view.TextFieldConfig:
		text := get(c.Text, "")
		if text == "" {
			return []Segment{{Content: "▏" + c.Prompt, Style: Style{Foreground: t.Secondary, Faint: true}}}, true
		}
		return []Segment{{Content: "▏" + text, Style: Style{Foreground: t.Foreground, Underline: true}}}, true
	case view.ProgressConfig:
		value := get(c.Value, -1)
		if value < 0 || math.IsNaN(value) {
			return []Segment{{Content: "[" + strings.Repeat("·", progressCells) + "]", Style: Style{Foreground: t.Secondary}}}, true
		}
		value = math.Min(1, value)
		filled := int(math.Round(value * progressCells))
		return []Segment{
			{Content: "[", Style: Style{Foreground: t.Secondary}},
			{Content: strings.Repeat("█", filled), Style: Style{Foreground: t.Accent}},
			{Content: strings.Repeat(" ", progressCells-filled), Style: Style{Background: t.Track}},
			{Content: "] " + strconv.Itoa(int(math.Round(value*100))) + "%", Style: Style{Foreground: t.Secondary}},
		}, true
	}
	return nil, false
}

func get[T any](src view.Source[T], fallback T) T {
	if src == nil {
		return fallback
	}
	return src.Get()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
