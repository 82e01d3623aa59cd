// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package layout

// StretchAxis declares which axes a node wants to expand along to fill
// available space instead of reporting a fixed intrinsic size.
type StretchAxis uint8

const (
	StretchNone StretchAxis = iota
	StretchHorizontal
	StretchVertical
	StretchBoth
	// StretchMainAxis expands along the main axis of the enclosing stack,
	// whichever that is. Outside a stack it does not stretch.
	StretchMainAxis
)

// Includes reports whether s stretches along a outside of any stack.
func (s StretchAxis) Includes(a Axis) bool {
	switch s {
	case StretchBoth:
		return true
	case StretchHorizontal:
		return a == Horizontal
	case StretchVertical:
		return a == Vertical
	default:
		return false
	}
}

// IncludesMain reports whether s stretches along the main axis of a stack
// laid out along main.
func (s StretchAxis) IncludesMain(main Axis) bool {
	if s == StretchMainAxis {
		return true
	}
	return s.Includes(main)
}

func (s StretchAxis) String() string {
	switch s {
	case StretchHorizontal:
		return "horizontal"
	case StretchVertical:
		return "vertical"
	case StretchBoth:
		return "both"
	case StretchMainAxis:
		return "main-axis"
	default:
		return "none"
	}
}
