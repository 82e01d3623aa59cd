// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package layout

// HorizontalAlignment positions content along the X axis.
type HorizontalAlignment uint8

const (
	Leading HorizontalAlignment = iota
	HCenter
	Trailing
)

// Fraction returns 0 for Leading, 0.5 for HCenter and 1 for Trailing.
func (h HorizontalAlignment) Fraction() float64 {
	switch h {
	case HCenter:
		return 0.5
	case Trailing:
		return 1
	default:
		return 0
	}
}

func (h HorizontalAlignment) String() string {
	switch h {
	case HCenter:
		return "center"
	case Trailing:
		return "trailing"
	default:
		return "leading"
	}
}

// VerticalAlignment positions content along the Y axis.
type VerticalAlignment uint8

const (
	Top VerticalAlignment = iota
	VCenter
	Bottom
)

// Fraction returns 0 for Top, 0.5 for VCenter and 1 for Bottom.
func (v VerticalAlignment) Fraction() float64 {
	switch v {
	case VCenter:
		return 0.5
	case Bottom:
		return 1
	default:
		return 0
	}
}

func (v VerticalAlignment) String() string {
	switch v {
	case VCenter:
		return "center"
	case Bottom:
		return "bottom"
	default:
		return "top"
	}
}

// Alignment is a 9-point alignment inside a rectangle.
type Alignment struct {
	Horizontal HorizontalAlignment
	Vertical   VerticalAlignment
}

// The nine standard alignments.
var (
	TopLeading     = Alignment{Leading, Top}
	TopCenter      = Alignment{HCenter, Top}
	TopTrailing    = Alignment{Trailing, Top}
	CenterLeading  = Alignment{Leading, VCenter}
	Center         = Alignment{HCenter, VCenter}
	CenterTrailing = Alignment{Trailing, VCenter}
	BottomLeading  = Alignment{Leading, Bottom}
	BottomCenter   = Alignment{HCenter, Bottom}
	BottomTrailing = Alignment{Trailing, Bottom}
)

// Fraction returns the alignment fraction along the given axis.
func (a Alignment) Fraction(axis Axis) float64 {
	if axis == Horizontal {
		return a.Horizontal.Fraction()
	}
	return a.Vertical.Fraction()
}

// Align positions a child of the given size inside bounds.
// The child is not resized; callers clamp it first when needed.
func (a Alignment) Align(child Size, bounds Rect) Rect {
	return Rect{
		X:      bounds.X + (bounds.Width-child.Width)*a.Horizontal.Fraction(),
		Y:      bounds.Y + (bounds.Height-child.Height)*a.Vertical.Fraction(),
		Width:  child.Width,
		Height: child.Height,
	}
}

func (a Alignment) String() string {
	return a.Vertical.String() + "-" + a.Horizontal.String()
}
