// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"testing"

	"github.com/gogpu/gg"
	"github.com/gogpu/ui/env"
	"github.com/gogpu/ui/layout"
)

func TestCtxRecordsInOrder(t *testing.T) {
	scene := NewScene()
	ctx := NewCtx(scene, env.Default())

	ctx.SetBounds(layout.Rect{Width: 100, Height: 40})
	ctx.Fill(gg.Red)
	ctx.DrawText("hi", env.TextStyle{Size: 10}, gg.Black)
	ctx.SetBounds(layout.Rect{X: 10, Y: 10, Width: 5, Height: 5})
	ctx.Placeholder("image")

	want := []CommandKind{KindSolidRect, KindText, KindPlaceholder}
	if scene.Len() != len(want) {
		t.Fatalf("Len() = %d, want %d", scene.Len(), len(want))
	}
	for i, cmd := range scene.Commands() {
		if cmd.Kind() != want[i] {
			t.Errorf("Commands()[%d].Kind() = %v, want %v", i, cmd.Kind(), want[i])
		}
	}

	text := scene.Commands()[1].(Text)
	if text.Content != "hi" || text.FontSize != 10 {
		t.Errorf("text = %+v, want content hi at size 10", text)
	}
	if text.Size.Width != 12 {
		t.Errorf("text width = %v, want 12", text.Size.Width)
	}
	if got := scene.Commands()[2].Bounds(); got != (layout.Rect{X: 10, Y: 10, Width: 5, Height: 5}) {
		t.Errorf("placeholder bounds = %v", got)
	}
}

func TestFillRectSkipsInvisible(t *testing.T) {
	tests := []struct {
		name string
		r    layout.Rect
		c    gg.RGBA
	}{
		{"empty rect", layout.Rect{Width: 0, Height: 10}, gg.Red},
		{"transparent", layout.Rect{Width: 10, Height: 10}, gg.Transparent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scene := NewScene()
			NewCtx(scene, env.Default()).FillRect(tt.r, tt.c)
			if !scene.IsEmpty() {
				t.Errorf("FillRect recorded %d commands, want 0", scene.Len())
			}
		})
	}
}

func TestSceneQueries(t *testing.T) {
	scene := NewScene()
	scene.Push(SolidRect{Rect: layout.Rect{Width: 1, Height: 1}, Color: gg.Red})
	scene.Push(Placeholder{Label: "x"})
	scene.Push(SolidRect{Rect: layout.Rect{Width: 2, Height: 2}, Color: gg.Blue})

	if got := scene.Count(KindSolidRect); got != 2 {
		t.Errorf("Count(SolidRect) = %d, want 2", got)
	}
	if got := len(scene.Rects()); got != 2 {
		t.Errorf("len(Rects()) = %d, want 2", got)
	}
	if !scene.OnlyRects() {
		t.Error("OnlyRects() = false, want true")
	}

	scene.Push(Text{Content: "t"})
	if scene.OnlyRects() {
		t.Error("OnlyRects() = true after Text, want false")
	}
}

func TestStats(t *testing.T) {
	var s Stats
	s.RecordIdle()
	scene := NewScene()
	scene.Push(Placeholder{})
	scene.Push(Placeholder{})
	s.RecordPresented(scene)

	if s.Frames != 2 || s.Idle != 1 || s.Presented != 1 || s.Commands != 2 || s.LastCommands != 2 {
		t.Errorf("Stats = %+v", s)
	}
	if got, want := s.String(), "frames=2 idle=1 presented=1 commands=2"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
