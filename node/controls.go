// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package node

import (
	"math"
	"strconv"

	"github.com/gogpu/ui/env"
	"github.com/gogpu/ui/layout"
	"github.com/gogpu/ui/render"
)

var inf = math.Inf(1)

const (
	trackThickness = 4
	labelGap       = 8
	progressHeight = 4
)

func controlHeight(e *env.Environment) float64 {
	if e != nil && e.Theme.ControlHeight > 0 {
		return e.Theme.ControlHeight
	}
	return 28
}

// fraction maps v in [lo, hi] to [0, 1].
func fraction(v, lo, hi float64) float64 {
	if hi <= lo {
		return 0
	}
	return math.Min(1, math.Max(0, (v-lo)/(hi-lo)))
}

// centeredBand returns the horizontal band of height h centered in r.
func centeredBand(r layout.Rect, h float64) layout.Rect {
	return layout.Rect{X: r.X, Y: r.Y + (r.Height-h)/2, Width: r.Width, Height: h}
}

// Slider shows a value within [Min, Max] as a filled track and a thumb.
type Slider struct {
	leaf
	Value, Min, Max float64
	Source          func() float64
}

func (s *Slider) SizeThatFits(_ layout.ProposalSize, _ []layout.Subview, e *env.Environment) layout.Size {
	return layout.Size{Width: inf, Height: controlHeight(e)}
}

func (*Slider) StretchAxis() layout.StretchAxis { return layout.StretchHorizontal }

func (s *Slider) Paint(ctx *render.Ctx) {
	theme := ctx.Env().Theme
	b := ctx.Bounds()
	thumb := math.Min(b.Height, controlHeight(ctx.Env())) * 0.6
	usable := math.Max(0, b.Width-thumb)
	f := fraction(s.Value, s.Min, s.Max)

	track := centeredBand(b, trackThickness)
	ctx.FillRect(track, theme.Track)
	filled := track
	filled.Width = thumb/2 + usable*f
	ctx.FillRect(filled, theme.Accent)

	ctx.FillRect(layout.Rect{
		X:      b.X + usable*f,
		Y:      b.Y + (b.Height-thumb)/2,
		Width:  thumb,
		Height: thumb,
	}, theme.Foreground)
}

// UpdateReactive implements tree.Reactive.
func (s *Slider) UpdateReactive(*env.Environment) {
	if s.Source != nil {
		s.Value = s.Source()
	}
}

// Stepper shows a labelled value with decrement and increment buttons.
type Stepper struct {
	leaf
	Label  string
	Value  float64
	Step   float64
	Source func() float64
}

// Display returns the label and value as shown to the user.
func (s *Stepper) Display() string {
	v := strconv.FormatFloat(s.Value, 'g', -1, 64)
	if s.Label == "" {
		return v
	}
	return s.Label + ": " + v
}

func (s *Stepper) SizeThatFits(_ layout.ProposalSize, _ []layout.Subview, e *env.Environment) layout.Size {
	h := controlHeight(e)
	text := e.MeasureText(s.Display(), env.TextStyle{})
	return layout.Size{Width: text.Width + labelGap + 2*h, Height: math.Max(h, text.Height)}
}

func (*Stepper) StretchAxis() layout.StretchAxis { return layout.StretchNone }

func (s *Stepper) Paint(ctx *render.Ctx) {
	theme := ctx.Env().Theme
	b := ctx.Bounds()
	h := math.Min(b.Height, controlHeight(ctx.Env()))
	ctx.DrawText(s.Display(), env.TextStyle{}, theme.Foreground)

	minus := layout.Rect{X: b.MaxX() - 2*h, Y: b.Y + (b.Height-h)/2, Width: h, Height: h}
	plus := minus.Translate(h, 0)
	ctx.FillRect(minus, theme.Track)
	ctx.FillRect(plus, theme.Track)
	glyph := env.TextStyle{Monospace: true}
	ctx.DrawTextAt("-", minus.Origin(), glyph, theme.Foreground)
	ctx.DrawTextAt("+", plus.Origin(), glyph, theme.Foreground)
}

// UpdateReactive implements tree.Reactive.
func (s *Stepper) UpdateReactive(*env.Environment) {
	if s.Source != nil {
		s.Value = s.Source()
	}
}

// Toggle shows a labelled on/off switch.
type Toggle struct {
	leaf
	Label  string
	On     bool
	Source func() bool
}

func switchSize(h float64) layout.Size {
	return layout.Size{Width: h * 1.75, Height: h}
}

func (t *Toggle) SizeThatFits(_ layout.ProposalSize, _ []layout.Subview, e *env.Environment) layout.Size {
	sw := switchSize(controlHeight(e))
	if t.Label == "" {
		return sw
	}
	text := e.MeasureText(t.Label, env.TextStyle{})
	return layout.Size{Width: text.Width + labelGap + sw.Width, Height: math.Max(sw.Height, text.Height)}
}

func (*Toggle) StretchAxis() layout.StretchAxis { return layout.StretchNone }

func (t *Toggle) Paint(ctx *render.Ctx) {
	theme := ctx.Env().Theme
	b := ctx.Bounds()
	if t.Label != "" {
		ctx.DrawText(t.Label, env.TextStyle{}, theme.Foreground)
	}
	sw := switchSize(math.Min(b.Height, controlHeight(ctx.Env())))
	track := layout.Rect{X: b.MaxX() - sw.Width, Y: b.Y + (b.Height-sw.Height)/2, Width: sw.Width, Height: sw.Height}
	knob := layout.Rect{X: track.X + 2, Y: track.Y + 2, Width: sw.Height - 4, Height: sw.Height - 4}
	trackColor := theme.Track
	if t.On {
		trackColor = theme.Accent
		knob.X = track.MaxX() - knob.Width - 2
	}
	ctx.FillRect(track, trackColor)
	ctx.FillRect(knob, theme.Background)
}

// UpdateReactive implements tree.Reactive.
func (t *Toggle) UpdateReactive(*env.Environment) {
	if t.Source != nil {
		t.On = t.Source()
	}
}

// TextField shows editable text, or its prompt when empty.
type TextField struct {
	leaf
	Text   string
	Prompt string
	Source func() string
}

func (f *TextField) SizeThatFits(_ layout.ProposalSize, _ []layout.Subview, e *env.Environment) layout.Size {
	return layout.Size{Width: inf, Height: controlHeight(e)}
}

func (*TextField) StretchAxis() layout.StretchAxis { return layout.StretchHorizontal }

func (f *TextField) Paint(ctx *render.Ctx) {
	theme := ctx.Env().Theme
	b := ctx.Bounds()
	ctx.FillRect(b, theme.Track)
	text, col := f.Text, theme.Foreground
	if text == "" {
		text, col = f.Prompt, theme.Secondary
	}
	if text == "" {
		return
	}
	origin := layout.Point{X: b.X + labelGap/2, Y: b.Y}
	ctx.DrawTextAt(text, origin, env.TextStyle{}, col)
}

// UpdateReactive implements tree.Reactive.
func (f *TextField) UpdateReactive(*env.Environment) {
	if f.Source != nil {
		f.Text = f.Source()
	}
}

// Progress shows completion in [0, 1] as a filled bar. A negative Value is
// indeterminate and paints a placeholder.
type Progress struct {
	leaf
	Value  float64
	Source func() float64
}

// Indeterminate reports whether the bar has no known completion.
func (p *Progress) Indeterminate() bool {
	return p.Value < 0 || math.IsNaN(p.Value)
}

func (p *Progress) SizeThatFits(layout.ProposalSize, []layout.Subview, *env.Environment) layout.Size {
	return layout.Size{Width: inf, Height: progressHeight}
}

func (*Progress) StretchAxis() layout.StretchAxis { return layout.StretchHorizontal }

func (p *Progress) Paint(ctx *render.Ctx) {
	if p.Indeterminate() {
		ctx.Placeholder("progress")
		return
	}
	theme := ctx.Env().Theme
	b := ctx.Bounds()
	ctx.FillRect(b, theme.Track)
	filled := b
	filled.Width = b.Width * fraction(p.Value, 0, 1)
	ctx.FillRect(filled, theme.Accent)
}

// UpdateReactive implements tree.Reactive.
func (p *Progress) UpdateReactive(*env.Environment) {
	if p.Source != nil {
		p.Value = p.Source()
	}
}
