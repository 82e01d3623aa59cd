// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package cpu

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/gg"
	"github.com/gogpu/ui/backend"
	"github.com/gogpu/ui/engine"
	"github.com/gogpu/ui/env"
	"github.com/gogpu/ui/layout"
	"github.com/gogpu/ui/node"
	"github.com/gogpu/ui/render"
	"github.com/gogpu/ui/tree"
)

func pixel(img image.Image, x, y int) color.RGBA {
	r, g, b, a := img.At(x, y).RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}

var (
	white = color.RGBA{255, 255, 255, 255}
	red   = color.RGBA{255, 0, 0, 255}
	blue  = color.RGBA{0, 0, 255, 255}
)

// box returns a childless container of the given size filled with c.
func box(w, h float64, c gg.RGBA) *node.Container {
	n := node.NewContainer("Box", layout.FixedFrame(w, h))
	n.Background = c
	return n
}

func TestNewInvalidSize(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"zero width", 0, 10},
		{"zero height", 10, 0},
		{"negative", -1, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := New(tt.w, tt.h, WithoutText())
			if !errors.Is(err, ErrInvalidSize) {
				t.Errorf("New(%d, %d) error = %v, want %v", tt.w, tt.h, err, ErrInvalidSize)
			}
			if b != nil {
				t.Error("New() returned a backend with an error")
			}
		})
	}
}

func TestRenderFillsRects(t *testing.T) {
	b, err := New(40, 30, WithoutText())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer b.Close()

	tr := tree.New()
	root := tr.ReplaceRoot(node.NewContainer("Canvas", layout.Fixed{}))
	tr.InsertChild(root, box(10, 10, gg.Hex("#0000ff")))

	res, err := b.Render(tr, env.Default())
	if err != nil || res != engine.Presented {
		t.Fatalf("Render() = %v, %v, want presented, nil", res, err)
	}

	img := b.Image()
	if got := img.Bounds(); got != image.Rect(0, 0, 40, 30) {
		t.Errorf("Image().Bounds() = %v, want 40x30", got)
	}
	probes := []struct {
		x, y int
		want color.RGBA
	}{
		{5, 5, blue},
		{30, 20, white},
		{15, 5, white},
	}
	for _, p := range probes {
		if got := pixel(img, p.x, p.y); got != p.want {
			t.Errorf("pixel(%d, %d) = %v, want %v", p.x, p.y, got, p.want)
		}
	}
}

func TestRenderUsesThemeBackground(t *testing.T) {
	b, err := New(8, 8, WithoutText())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer b.Close()

	theme := env.DefaultTheme()
	theme.Background = gg.Red
	tr := tree.New()
	tr.ReplaceRoot(&node.Empty{})

	if _, err := b.Render(tr, env.Default().WithTheme(theme)); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if got := pixel(b.Image(), 4, 4); got != red {
		t.Errorf("pixel(4, 4) = %v, want %v", got, red)
	}
}

func TestRenderIdleWithoutChanges(t *testing.T) {
	b, err := New(20, 20, WithoutText())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer b.Close()

	tr := tree.New()
	tr.ReplaceRoot(box(5, 5, gg.Red))
	e := env.Default()

	if res, _ := b.Render(tr, e); res != engine.Presented {
		t.Fatalf("first Render() = %v, want presented", res)
	}
	if res, _ := b.Render(tr, e); res != engine.Idle {
		t.Errorf("second Render() = %v, want idle", res)
	}
	if s := b.Engine().Stats(); s.Presented != 1 || s.Idle != 1 {
		t.Errorf("Stats() = %v, want 1 presented and 1 idle", s)
	}
}

func TestResizeRelaysOut(t *testing.T) {
	b, err := New(20, 20, WithoutText())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer b.Close()

	tr := tree.New()
	tr.ReplaceRoot(box(5, 5, gg.Red))
	e := env.Default()
	if _, err := b.Render(tr, e); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if err := b.Resize(0, 4); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("Resize(0, 4) error = %v, want %v", err, ErrInvalidSize)
	}
	if err := b.Resize(32, 16); err != nil {
		t.Fatalf("Resize() error = %v", err)
	}
	if got := b.Size(); got != (layout.Size{Width: 32, Height: 16}) {
		t.Errorf("Size() = %v, want 32x16", got)
	}
	res, err := b.Render(tr, e)
	if err != nil || res != engine.Presented {
		t.Errorf("Render() after Resize = %v, %v, want presented, nil", res, err)
	}
	root, _ := tr.Root()
	if r, _ := b.Engine().LayoutEngine().Frame(root); r.Width != 32 || r.Height != 16 {
		t.Errorf("root frame = %v, want 32x16", r)
	}
}

func TestClose(t *testing.T) {
	b, err := New(4, 4, WithoutText())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := b.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := b.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}

	tr := tree.New()
	tr.ReplaceRoot(&node.Empty{})
	if _, err := b.Render(tr, env.Default()); !errors.Is(err, backend.ErrClosed) {
		t.Errorf("Render() after Close error = %v, want %v", err, backend.ErrClosed)
	}
}

type recordingPainter struct {
	texts []string
}

func (p *recordingPainter) DrawText(cmd render.Text) error {
	p.texts = append(p.texts, cmd.Content)
	return nil
}

func TestRasterize(t *testing.T) {
	dc := gg.NewContext(10, 10)
	defer dc.Close()

	scene := render.NewScene()
	scene.Push(render.SolidRect{Rect: layout.Rect{Width: 10, Height: 10}, Color: gg.Red})
	scene.Push(render.Text{Content: "hi", Size: layout.Size{Width: 10, Height: 10}})
	scene.Push(render.Text{Content: ""})
	scene.Push(render.Placeholder{Rect: layout.Rect{Width: 10, Height: 10}, Label: "chart"})

	if err := Rasterize(dc, scene, nil); err != nil {
		t.Fatalf("Rasterize(nil painter) error = %v", err)
	}
	if got := pixel(dc.Image(), 5, 5); got != red {
		t.Errorf("pixel(5, 5) = %v, want %v", got, red)
	}

	p := &recordingPainter{}
	if err := Rasterize(dc, scene, p); err != nil {
		t.Fatalf("Rasterize() error = %v", err)
	}
	if len(p.texts) != 1 || p.texts[0] != "hi" {
		t.Errorf("painted texts = %q, want [hi]", p.texts)
	}
}

func TestFontPainterDrawsGlyphs(t *testing.T) {
	b, err := New(80, 24)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer b.Close()

	tr := tree.New()
	txt := node.NewText("Hello")
	txt.Color = gg.Black
	tr.ReplaceRoot(txt)

	if _, err := b.Render(tr, env.Default()); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	img := b.Image()
	inked := 0
	for y := 0; y < 24; y++ {
		for x := 0; x < 80; x++ {
			if pixel(img, x, y) != white {
				inked++
			}
		}
	}
	if inked == 0 {
		t.Error("FontPainter drew no pixels for \"Hello\"")
	}
}
