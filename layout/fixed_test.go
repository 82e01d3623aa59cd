// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package layout

import "testing"

func TestFixedSize(t *testing.T) {
	tests := []struct {
		name  string
		fixed Fixed
		want  Size
	}{
		{"explicit", Fixed{Width: Exactly(200), Height: Exactly(100)}, Size{200, 100}},
		{"hug both", Fixed{}, Size{40, 30}},
		{"hug height", Fixed{Width: Exactly(10)}, Size{10, 30}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.fixed.SizeThatFits(Unconstrained, subviews(fixed(40, 10), fixed(20, 30)))
			assertSize(t, "SizeThatFits", got, tt.want)
		})
	}
}

func TestFixedPlacesAtOrigin(t *testing.T) {
	f := Fixed{Width: Exactly(50), Height: Exactly(50)}
	rects := f.Place(Rect{X: 5, Y: 6, Width: 50, Height: 50}, subviews(fixed(10, 20), fixed(80, 5)))
	assertRect(t, "first", rects[0], Rect{X: 5, Y: 6, Width: 10, Height: 20})
	assertRect(t, "clamped", rects[1], Rect{X: 5, Y: 6, Width: 50, Height: 5})
}
