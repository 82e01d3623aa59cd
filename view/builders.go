// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package view

import (
	"math"

	"github.com/gogpu/ui/layout"
)

// Empty returns a view that renders nothing.
func Empty() EmptyConfig { return EmptyConfig{} }

// Text returns a static label.
func Text(s string) TextConfig {
	return TextConfig{Content: Constant(s)}
}

// TextFrom returns a label bound to src.
func TextFrom(src Source[string]) TextConfig {
	return TextConfig{Content: src}
}

// Divider returns a one-pixel rule.
func Divider() DividerConfig { return DividerConfig{Thickness: 1} }

// Spacer returns a flexible gap.
func Spacer() SpacerConfig { return SpacerConfig{} }

// Slider returns a slider over [lo, hi] bound to value.
func Slider(value Source[float64], lo, hi float64) SliderConfig {
	return SliderConfig{Value: value, Min: lo, Max: hi}
}

// Stepper returns a stepper bound to value.
func Stepper(label string, value Source[float64], step float64) StepperConfig {
	return StepperConfig{Label: label, Value: value, Step: step}
}

// Toggle returns a switch bound to on.
func Toggle(label string, on Source[bool]) ToggleConfig {
	return ToggleConfig{Label: label, On: on}
}

// TextField returns a text field bound to text.
func TextField(text Source[string], prompt string) TextFieldConfig {
	return TextFieldConfig{Text: text, Prompt: prompt}
}

// Progress returns a progress bar bound to value.
func Progress(value Source[float64]) ProgressConfig {
	return ProgressConfig{Value: value}
}

// Scroll wraps content in a vertical scroll view.
func Scroll(content View) ScrollView {
	return ScrollView{Axis: layout.Vertical, Content: content}
}

// VStack arranges children top to bottom.
func VStack(spacing float64, align layout.HorizontalAlignment, children ...View) FixedContainer {
	return FixedContainer{Name: "VStack", Layout: layout.VStack(spacing, align), Children: children}
}

// HStack arranges children leading to trailing.
func HStack(spacing float64, align layout.VerticalAlignment, children ...View) FixedContainer {
	return FixedContainer{Name: "HStack", Layout: layout.HStack(spacing, align), Children: children}
}

// Grid arranges children in rows of the given column count.
func Grid(columns int, spacing float64, children ...View) FixedContainer {
	return FixedContainer{
		Name:     "Grid",
		Layout:   layout.Grid{Columns: columns, Spacing: spacing, Alignment: layout.TopLeading},
		Children: children,
		Stretch:  layout.StretchHorizontal,
	}
}

// Overlay draws layers over base, aligned within the base bounds.
func Overlay(align layout.Alignment, base View, layers ...View) FixedContainer {
	return FixedContainer{
		Name:     "Overlay",
		Layout:   layout.Overlay{Alignment: align},
		Children: append([]View{base}, layers...),
	}
}

// ZStack is Overlay with centered layers.
func ZStack(base View, layers ...View) FixedContainer {
	return Overlay(layout.Center, base, layers...)
}

// Frame sizes content with f. A frame with an infinite max bound
// stretches along that axis.
func Frame(f layout.Frame, content View) FixedContainer {
	return FixedContainer{
		Name:     "Frame",
		Layout:   f,
		Children: []View{content},
		Stretch:  frameStretch(f),
	}
}

func frameStretch(f layout.Frame) layout.StretchAxis {
	h, v := f.Expands(layout.Horizontal), f.Expands(layout.Vertical)
	switch {
	case h && v:
		return layout.StretchBoth
	case h:
		return layout.StretchHorizontal
	case v:
		return layout.StretchVertical
	default:
		return layout.StretchNone
	}
}

// MaxWidth returns a frame that fills the proposed width.
func MaxWidth(align layout.Alignment, content View) FixedContainer {
	return Frame(layout.Frame{MaxWidth: layout.Exactly(math.Inf(1)), Alignment: align}, content)
}

// Padding insets content.
func Padding(insets layout.EdgeInsets, content View) FixedContainer {
	return FixedContainer{
		Name:     "Padding",
		Layout:   layout.Padding{Insets: insets},
		Children: []View{content},
	}
}

// Canvas pins children to the origin of a fixed-size box.
func Canvas(width, height float64, children ...View) FixedContainer {
	return FixedContainer{
		Name:     "Canvas",
		Layout:   layout.Fixed{Width: layout.Exactly(width), Height: layout.Exactly(height)},
		Children: children,
	}
}
