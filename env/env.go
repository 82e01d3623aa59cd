// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package env carries the ambient context passed explicitly through every
// build, measure and paint call: the theme, the locale, the text measurer,
// the terminal width and arbitrary keyed values.
//
// An Environment is never stored in global state. Derive modified copies
// with the With* methods; the receiver is left untouched.
package env

import (
	"math"
	"unicode/utf8"

	"github.com/gogpu/ui/layout"
)

// DefaultTerminalWidth is the column count used when the host does not
// report one.
const DefaultTerminalWidth = 80

// TextStyle selects how a run of text is measured and drawn.
type TextStyle struct {
	// Size is the font size in pixels. Zero means the theme font size.
	Size float64

	// Monospace selects the fixed-pitch face.
	Monospace bool
}

// TextMeasurer reports the layout size of a single-line text run.
type TextMeasurer interface {
	MeasureText(s string, style TextStyle) layout.Size
}

// TextMeasurerFunc adapts a function to [TextMeasurer].
type TextMeasurerFunc func(s string, style TextStyle) layout.Size

// MeasureText implements [TextMeasurer].
func (f TextMeasurerFunc) MeasureText(s string, style TextStyle) layout.Size {
	return f(s, style)
}

// Environment is the ambient context for one view hierarchy.
type Environment struct {
	Theme  Theme
	Locale string

	// Measurer sizes text runs. Nil selects a width estimate of 0.6 em per
	// rune and a line height of 1.2 em.
	Measurer TextMeasurer

	// TerminalWidth is the column count used by the terminal backend for
	// full-width rules. Zero means DefaultTerminalWidth.
	TerminalWidth int

	values map[any]any
}

// Default returns an environment with the light theme, the "en" locale and
// the built-in text estimate.
func Default() *Environment {
	return &Environment{
		Theme:         DefaultTheme(),
		Locale:        "en",
		TerminalWidth: DefaultTerminalWidth,
	}
}

func (e *Environment) clone() *Environment {
	c := *e
	if e.values != nil {
		c.values = make(map[any]any, len(e.values))
		for k, v := range e.values {
			c.values[k] = v
		}
	}
	return &c
}

// With returns a copy of e carrying value under key.
func (e *Environment) With(key, value any) *Environment {
	c := e.clone()
	if c.values == nil {
		c.values = make(map[any]any, 1)
	}
	c.values[key] = value
	return c
}

// WithTheme returns a copy of e using t.
func (e *Environment) WithTheme(t Theme) *Environment {
	c := e.clone()
	c.Theme = t
	return c
}

// WithMeasurer returns a copy of e using m to size text.
func (e *Environment) WithMeasurer(m TextMeasurer) *Environment {
	c := e.clone()
	c.Measurer = m
	return c
}

// WithTerminalWidth returns a copy of e with the given column count.
func (e *Environment) WithTerminalWidth(cols int) *Environment {
	c := e.clone()
	c.TerminalWidth = cols
	return c
}

// Value returns the value stored under key.
func (e *Environment) Value(key any) (any, bool) {
	if e == nil || e.values == nil {
		return nil, false
	}
	v, ok := e.values[key]
	return v, ok
}

// Columns returns the terminal width, falling back to DefaultTerminalWidth.
func (e *Environment) Columns() int {
	if e == nil || e.TerminalWidth <= 0 {
		return DefaultTerminalWidth
	}
	return e.TerminalWidth
}

// FontSize resolves a style size against the theme.
func (e *Environment) FontSize(style TextStyle) float64 {
	if style.Size > 0 {
		return style.Size
	}
	if e != nil && e.Theme.FontSize > 0 {
		return e.Theme.FontSize
	}
	return DefaultFontSize
}

// MeasureText sizes s with the configured measurer or the built-in estimate.
func (e *Environment) MeasureText(s string, style TextStyle) layout.Size {
	style.Size = e.FontSize(style)
	if e != nil && e.Measurer != nil {
		return e.Measurer.MeasureText(s, style)
	}
	return EstimateText(s, style)
}

// EstimateText is the fallback measurer: 0.6 em per rune, 1.2 em lines.
func EstimateText(s string, style TextStyle) layout.Size {
	size := style.Size
	if size <= 0 {
		size = DefaultFontSize
	}
	n := utf8.RuneCountInString(s)
	return layout.Size{
		Width:  math.Ceil(float64(n) * size * 0.6),
		Height: math.Ceil(size * 1.2),
	}
}
