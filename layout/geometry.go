// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package layout

import (
	"fmt"
	"math"
)

// Axis identifies one of the two layout axes.
type Axis uint8

const (
	// Horizontal is the X axis.
	Horizontal Axis = iota
	// Vertical is the Y axis.
	Vertical
)

// Cross returns the other axis.
func (a Axis) Cross() Axis {
	if a == Horizontal {
		return Vertical
	}
	return Horizontal
}

// String returns the axis name.
func (a Axis) String() string {
	if a == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Point is a position in logical pixels.
type Point struct {
	X, Y float64
}

// Size is a width/height pair in logical pixels.
type Size struct {
	Width, Height float64
}

// SizeAlong builds a size from main and cross extents for the given main axis.
func SizeAlong(main Axis, mainExtent, crossExtent float64) Size {
	if main == Horizontal {
		return Size{Width: mainExtent, Height: crossExtent}
	}
	return Size{Width: crossExtent, Height: mainExtent}
}

// Along returns the extent on the given axis.
func (s Size) Along(a Axis) float64 {
	if a == Horizontal {
		return s.Width
	}
	return s.Height
}

// IsZero reports whether both extents are zero.
func (s Size) IsZero() bool {
	return s.Width == 0 && s.Height == 0
}

// IsFinite reports whether both extents are finite numbers.
func (s Size) IsFinite() bool {
	return isFinite(s.Width) && isFinite(s.Height)
}

// Add returns s grown by other on both axes.
func (s Size) Add(other Size) Size {
	return Size{Width: s.Width + other.Width, Height: s.Height + other.Height}
}

func (s Size) String() string {
	return fmt.Sprintf("%gx%g", s.Width, s.Height)
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// RectFrom builds a rectangle from an origin and a size.
func RectFrom(origin Point, size Size) Rect {
	return Rect{X: origin.X, Y: origin.Y, Width: size.Width, Height: size.Height}
}

// Origin returns the top-left corner.
func (r Rect) Origin() Point {
	return Point{X: r.X, Y: r.Y}
}

// Size returns the rectangle's extents.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// MaxX returns the right edge.
func (r Rect) MaxX() float64 { return r.X + r.Width }

// MaxY returns the bottom edge.
func (r Rect) MaxY() float64 { return r.Y + r.Height }

// Min returns the coordinate of the leading edge on the given axis.
func (r Rect) Min(a Axis) float64 {
	if a == Horizontal {
		return r.X
	}
	return r.Y
}

// IsEmpty reports whether the rectangle covers no area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether p lies inside r. The right and bottom edges are exclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.MaxX() && p.Y >= r.Y && p.Y < r.MaxY()
}

// Inset shrinks r by the given insets. Extents never go below zero.
func (r Rect) Inset(in EdgeInsets) Rect {
	return Rect{
		X:      r.X + in.Leading,
		Y:      r.Y + in.Top,
		Width:  math.Max(0, r.Width-in.Horizontal()),
		Height: math.Max(0, r.Height-in.Vertical()),
	}
}

// Translate moves r by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

func (r Rect) String() string {
	return fmt.Sprintf("(%g,%g %gx%g)", r.X, r.Y, r.Width, r.Height)
}

// EdgeInsets describes padding on each edge.
type EdgeInsets struct {
	Top, Leading, Bottom, Trailing float64
}

// Insets returns equal insets on every edge.
func Insets(all float64) EdgeInsets {
	return EdgeInsets{Top: all, Leading: all, Bottom: all, Trailing: all}
}

// SymmetricInsets returns insets with the same horizontal and vertical values.
func SymmetricInsets(horizontal, vertical float64) EdgeInsets {
	return EdgeInsets{Top: vertical, Leading: horizontal, Bottom: vertical, Trailing: horizontal}
}

// Horizontal returns leading + trailing.
func (e EdgeInsets) Horizontal() float64 { return e.Leading + e.Trailing }

// Vertical returns top + bottom.
func (e EdgeInsets) Vertical() float64 { return e.Top + e.Bottom }

// Size returns the insets as a size (horizontal total, vertical total).
func (e EdgeInsets) Size() Size {
	return Size{Width: e.Horizontal(), Height: e.Vertical()}
}

func isFinite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}
