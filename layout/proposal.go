// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package layout

import (
	"fmt"
	"math"
)

// Dim is an optional proposed extent on one axis.
// The zero value is [Unspecified].
type Dim struct {
	value float64
	set   bool
}

// Unspecified asks the child for its intrinsic extent.
var Unspecified = Dim{}

// Exactly returns a proposal constraining an axis to v.
func Exactly(v float64) Dim {
	return Dim{value: v, set: true}
}

// Value returns the proposed extent and whether one was set.
func (d Dim) Value() (float64, bool) {
	return d.value, d.set
}

// IsSpecified reports whether the axis is constrained.
func (d Dim) IsSpecified() bool {
	return d.set
}

// IsFinite reports whether the axis is constrained to a finite value.
func (d Dim) IsFinite() bool {
	return d.set && isFinite(d.value)
}

// Or returns the proposed extent, or fallback when unspecified.
func (d Dim) Or(fallback float64) float64 {
	if !d.set {
		return fallback
	}
	return d.value
}

// Shrink returns the proposal reduced by amount, never below zero.
// Unspecified stays unspecified.
func (d Dim) Shrink(amount float64) Dim {
	if !d.set {
		return d
	}
	return Exactly(math.Max(0, d.value-amount))
}

func (d Dim) String() string {
	if !d.set {
		return "nil"
	}
	return fmt.Sprintf("%g", d.value)
}

// ProposalSize is the box a parent offers a child during measurement.
type ProposalSize struct {
	Width, Height Dim
}

// Unconstrained requests the intrinsic size on both axes.
var Unconstrained = ProposalSize{}

// Propose returns a proposal constraining both axes.
func Propose(width, height float64) ProposalSize {
	return ProposalSize{Width: Exactly(width), Height: Exactly(height)}
}

// ProposeSize returns a proposal constraining both axes to s.
func ProposeSize(s Size) ProposalSize {
	return Propose(s.Width, s.Height)
}

// Along returns the proposal on the given axis.
func (p ProposalSize) Along(a Axis) Dim {
	if a == Horizontal {
		return p.Width
	}
	return p.Height
}

// ProposalAlong builds a proposal from main and cross dims for the given main axis.
func ProposalAlong(main Axis, mainDim, crossDim Dim) ProposalSize {
	if main == Horizontal {
		return ProposalSize{Width: mainDim, Height: crossDim}
	}
	return ProposalSize{Width: crossDim, Height: mainDim}
}

// Inset returns the proposal reduced by the insets on both axes.
func (p ProposalSize) Inset(in EdgeInsets) ProposalSize {
	return ProposalSize{
		Width:  p.Width.Shrink(in.Horizontal()),
		Height: p.Height.Shrink(in.Vertical()),
	}
}

func (p ProposalSize) String() string {
	return fmt.Sprintf("{w:%s h:%s}", p.Width, p.Height)
}

// ResolveInfinite substitutes the available bound for a non-finite extent.
// Stretching children report +Inf on the axes they stretch along; no
// consumer may propagate that upward. Negative extents clamp to zero.
func ResolveInfinite(v float64, available Dim) float64 {
	if !isFinite(v) {
		if available.IsFinite() {
			return available.value
		}
		return 0
	}
	if v < 0 {
		return 0
	}
	return v
}

// ResolveSize applies [ResolveInfinite] on both axes.
func ResolveSize(s Size, available ProposalSize) Size {
	return Size{
		Width:  ResolveInfinite(s.Width, available.Width),
		Height: ResolveInfinite(s.Height, available.Height),
	}
}
