// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package textmetrics

import (
	"testing"

	"github.com/gogpu/ui/env"
	"github.com/gogpu/ui/layout"
)

var _ env.TextMeasurer = (*Shaper)(nil)
var _ env.TextMeasurer = Monospace{}

func newShaper(t *testing.T) *Shaper {
	t.Helper()
	s, err := NewShaper()
	if err != nil {
		t.Fatalf("NewShaper() error = %v", err)
	}
	return s
}

func TestShaperWidths(t *testing.T) {
	s := newShaper(t)
	style := env.TextStyle{Size: 16}

	empty := s.MeasureText("", style)
	if empty.Width != 0 || empty.Height <= 0 {
		t.Errorf("MeasureText(\"\") = %v, want zero width and a line height", empty)
	}

	narrow := s.MeasureText("iiii", style)
	wide := s.MeasureText("WWWW", style)
	if narrow.Width <= 0 || wide.Width <= narrow.Width {
		t.Errorf("widths iiii=%v WWWW=%v, want 0 < iiii < WWWW", narrow.Width, wide.Width)
	}
	if narrow.Height != wide.Height {
		t.Errorf("heights differ: %v vs %v", narrow.Height, wide.Height)
	}
}

func TestShaperScalesWithSize(t *testing.T) {
	s := newShaper(t)
	small := s.MeasureText("hello world", env.TextStyle{Size: 10})
	large := s.MeasureText("hello world", env.TextStyle{Size: 40})
	if large.Width < 3*small.Width || large.Height < 3*small.Height {
		t.Errorf("size 40 = %v, size 10 = %v, want roughly 4x", large, small)
	}
}

func TestShaperMonospaceFace(t *testing.T) {
	s := newShaper(t)
	style := env.TextStyle{Size: 20, Monospace: true}
	a := s.MeasureText("iiii", style)
	b := s.MeasureText("WWWW", style)
	if a.Width != b.Width {
		t.Errorf("monospace widths differ: %v vs %v", a.Width, b.Width)
	}
	if s.FontSource(style) == s.FontSource(env.TextStyle{}) {
		t.Error("monospace style shares the proportional font source")
	}
}

func TestShaperCacheIsConsistent(t *testing.T) {
	s := newShaper(t)
	first := s.MeasureText("cached", env.TextStyle{})
	second := s.MeasureText("cached", env.TextStyle{Size: env.DefaultFontSize})
	if first != second {
		t.Errorf("MeasureText() = %v then %v", first, second)
	}
}

func TestNewShaperFromTTFRejectsGarbage(t *testing.T) {
	if _, err := NewShaperFromTTF([]byte("not a font"), nil); err == nil {
		t.Error("NewShaperFromTTF() accepted invalid font data")
	}
}

func TestCells(t *testing.T) {
	tests := []struct {
		s    string
		want int
	}{
		{"", 0},
		{"hello", 5},
		{"日本", 4},
		{"ｈｉ", 4},
		{"é", 1},
		{"a\tb", 2},
	}
	for _, tt := range tests {
		if got := Cells(tt.s); got != tt.want {
			t.Errorf("Cells(%q) = %d, want %d", tt.s, got, tt.want)
		}
	}
}

func TestMonospaceMeasure(t *testing.T) {
	tests := []struct {
		m    Monospace
		s    string
		size float64
		want layout.Size
	}{
		{Monospace{}, "abcd", 10, layout.Size{Width: 24, Height: 12}},
		{Monospace{CellWidth: 1, LineHeight: 1}, "日本", 1, layout.Size{Width: 4, Height: 1}},
		{Monospace{CellWidth: 0.5}, "ab", 0, layout.Size{Width: 14, Height: 17}},
	}
	for _, tt := range tests {
		if got := tt.m.MeasureText(tt.s, env.TextStyle{Size: tt.size}); got != tt.want {
			t.Errorf("%+v.MeasureText(%q, %v) = %v, want %v", tt.m, tt.s, tt.size, got, tt.want)
		}
	}
}
