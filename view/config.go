// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package view

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/ui/env"
	"github.com/gogpu/ui/layout"
)

// EmptyConfig renders nothing.
type EmptyConfig struct{ primitive }

// TextConfig is a single-line label.
type TextConfig struct {
	primitive
	Content Source[string]
	Style   env.TextStyle
	Color   gg.RGBA
}

// DividerConfig is a full-width rule.
type DividerConfig struct {
	primitive
	Thickness float64
}

// FixedContainer lays out Children with an arbitrary layout. Stacks, grids,
// frames, padding and overlays are all FixedContainers.
type FixedContainer struct {
	primitive
	Name     string
	Layout   layout.Layout
	Children []View
	Stretch  layout.StretchAxis

	// Background fills the container bounds when non-zero.
	Background gg.RGBA
}

// ScrollView hosts scrollable content. Scrolling itself belongs to the
// host; the render tree sees Content directly.
type ScrollView struct {
	primitive
	Axis    layout.Axis
	Content View
}

// SpacerConfig expands along its stack's main axis.
type SpacerConfig struct {
	primitive
	MinLength float64
}

// SliderConfig picks a value in [Min, Max].
type SliderConfig struct {
	primitive
	Value    Source[float64]
	Min, Max float64
}

// StepperConfig adjusts a labelled value by Step.
type StepperConfig struct {
	primitive
	Label string
	Value Source[float64]
	Step  float64
}

// ToggleConfig is a labelled on/off switch.
type ToggleConfig struct {
	primitive
	Label string
	On    Source[bool]
}

// TextFieldConfig is an editable single-line field.
type TextFieldConfig struct {
	primitive
	Text   Source[string]
	Prompt string
}

// ProgressConfig shows completion in [0, 1]; negative is indeterminate.
type ProgressConfig struct {
	primitive
	Value Source[float64]
}
