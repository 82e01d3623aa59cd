// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package env

import "github.com/gogpu/gg"

// DefaultFontSize is the font size, in pixels, of [DefaultTheme].
const DefaultFontSize = 14

// Theme holds the colors and metrics render nodes resolve against.
type Theme struct {
	Background gg.RGBA
	Foreground gg.RGBA
	Secondary  gg.RGBA
	Accent     gg.RGBA
	Track      gg.RGBA
	Separator  gg.RGBA

	FontSize float64

	// ControlHeight is the intrinsic height of sliders, toggles, steppers
	// and text fields.
	ControlHeight float64
}

// DefaultTheme returns the light theme.
func DefaultTheme() Theme {
	return Theme{
		Background:    gg.Hex("#ffffff"),
		Foreground:    gg.Hex("#1c1c1e"),
		Secondary:     gg.Hex("#8e8e93"),
		Accent:        gg.Hex("#0a84ff"),
		Track:         gg.Hex("#e5e5ea"),
		Separator:     gg.Hex("#c6c6c8"),
		FontSize:      DefaultFontSize,
		ControlHeight: 28,
	}
}

// DarkTheme returns the dark theme.
func DarkTheme() Theme {
	return Theme{
		Background:    gg.Hex("#1c1c1e"),
		Foreground:    gg.Hex("#f2f2f7"),
		Secondary:     gg.Hex("#98989d"),
		Accent:        gg.Hex("#0a84ff"),
		Track:         gg.Hex("#3a3a3c"),
		Separator:     gg.Hex("#38383a"),
		FontSize:      DefaultFontSize,
		ControlHeight: 28,
	}
}

// Hex formats c as "#rrggbb", dropping alpha.
func Hex(c gg.RGBA) string {
	const digits = "0123456789abcdef"
	b := []byte{'#', 0, 0, 0, 0, 0, 0}
	for i, v := range [3]float64{c.R, c.G, c.B} {
		n := channel(v)
		b[1+2*i] = digits[n>>4]
		b[2+2*i] = digits[n&0x0f]
	}
	return string(b)
}

func channel(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	default:
		return uint8(v*255 + 0.5)
	}
}

// RGB8 returns the 8-bit channels of c.
func RGB8(c gg.RGBA) (r, g, b uint8) {
	return channel(c.R), channel(c.G), channel(c.B)
}
