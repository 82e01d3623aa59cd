// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package engine

import (
	"errors"
	"testing"

	"github.com/gogpu/gg"
	"github.com/gogpu/ui/env"
	"github.com/gogpu/ui/layout"
	"github.com/gogpu/ui/node"
	"github.com/gogpu/ui/parse"
	"github.com/gogpu/ui/render"
	"github.com/gogpu/ui/tree"
	"github.com/gogpu/ui/view"
)

type fakeSurface struct {
	size     layout.Size
	clears   int
	presents int
	last     *render.Scene
	err      error
}

func newFakeSurface(w, h float64) *fakeSurface {
	return &fakeSurface{size: layout.Size{Width: w, Height: h}}
}

func (s *fakeSurface) Size() layout.Size { return s.size }
func (s *fakeSurface) Clear()            { s.clears++ }

func (s *fakeSurface) Present(scene *render.Scene) error {
	if s.err != nil {
		return s.err
	}
	s.presents++
	s.last = scene
	return nil
}

// fixedHeight returns a childless container that is h tall.
func fixedHeight(h float64) *node.Container {
	return node.NewContainer("Frame", layout.Frame{Height: layout.Exactly(h)})
}

func TestRenderIdleIsIdempotent(t *testing.T) {
	tr := tree.New()
	tr.ReplaceRoot(node.NewText("hello"))
	surface := newFakeSurface(200, 100)
	eng := New()
	e := env.Default()

	res, err := eng.Render(tr, e, surface)
	if err != nil || res != Presented {
		t.Fatalf("first Render() = %v, %v, want presented, nil", res, err)
	}
	for i := 0; i < 2; i++ {
		res, err = eng.Render(tr, e, surface)
		if err != nil || res != Idle {
			t.Errorf("Render() #%d = %v, %v, want idle, nil", i+2, res, err)
		}
	}
	if surface.clears != 1 || surface.presents != 1 {
		t.Errorf("surface clears=%d presents=%d, want 1 and 1", surface.clears, surface.presents)
	}
	if s := eng.Stats(); s.Frames != 3 || s.Idle != 2 || s.Presented != 1 {
		t.Errorf("Stats() = %v", s)
	}
}

func TestRenderSingleTextScene(t *testing.T) {
	tr := tree.New()
	tr.ReplaceRoot(node.NewText("hello"))
	surface := newFakeSurface(200, 100)

	res, err := New().Render(tr, env.Default(), surface)
	if err != nil || res != Presented {
		t.Fatalf("Render() = %v, %v, want presented, nil", res, err)
	}
	scene := surface.last
	if n := scene.Count(render.KindSolidRect); n != 0 {
		t.Errorf("scene has %d SolidRect commands, want 0", n)
	}
	if n := scene.Count(render.KindText); n != 1 {
		t.Fatalf("scene has %d Text commands, want 1", n)
	}
	if got := scene.Commands()[0].(render.Text).Content; got != "hello" {
		t.Errorf("Text content = %q, want hello", got)
	}
}

func TestVStackOfFixedChildren(t *testing.T) {
	tr := tree.New()
	root := tr.ReplaceRoot(node.NewContainer("VStack", layout.VStack(10, layout.Leading)))
	var kids []tree.NodeID
	for i := 0; i < 3; i++ {
		kids = append(kids, tr.InsertChild(root, fixedHeight(30)))
	}

	le := NewLayoutEngine(0)
	size, err := le.Measure(tr, layout.ProposalSize{Width: layout.Exactly(200)}, env.Default())
	if err != nil {
		t.Fatal(err)
	}
	if size.Height != 110 {
		t.Errorf("measured height = %v, want 110", size.Height)
	}

	if err := le.Layout(tr, layout.Rect{Width: 200, Height: 110}, env.Default(), true); err != nil {
		t.Fatal(err)
	}
	for i, wantY := range []float64{0, 40, 80} {
		r, ok := le.Frame(kids[i])
		if !ok {
			t.Fatalf("Frame(child %d) missing", i)
		}
		if r.Y != wantY {
			t.Errorf("child %d Y = %v, want %v", i, r.Y, wantY)
		}
	}
}

func TestReactiveUpdateRunsBeforeLayout(t *testing.T) {
	value := "before"
	text := &node.Text{Content: "initial", Source: func() string { return value }}
	tr := tree.New()
	id := tr.ReplaceRoot(text)
	surface := newFakeSurface(100, 100)
	eng := New()
	e := env.Default()

	if _, err := eng.Render(tr, e, surface); err != nil {
		t.Fatal(err)
	}
	if text.Content != "initial" {
		t.Errorf("Content = %q after a layout-only frame, want initial", text.Content)
	}

	value = "after"
	tr.MarkDirty(id, tree.DirtyReactive)
	res, err := eng.Render(tr, e, surface)
	if err != nil || res != Presented {
		t.Fatalf("Render() = %v, %v", res, err)
	}
	if got := surface.last.Commands()[0].(render.Text).Content; got != "after" {
		t.Errorf("painted content = %q, want after", got)
	}
}

func TestPresentErrorYieldsIdle(t *testing.T) {
	errBroken := errors.New("broken")
	tr := tree.New()
	tr.ReplaceRoot(node.NewText("x"))
	surface := newFakeSurface(10, 10)
	surface.err = errBroken

	res, err := New().Render(tr, env.Default(), surface)
	if res != Idle {
		t.Errorf("Render() result = %v, want idle", res)
	}
	if !errors.Is(err, errBroken) {
		t.Errorf("Render() error = %v, want wrapped %v", err, errBroken)
	}
}

func TestPaintIsPreOrder(t *testing.T) {
	tr := tree.New()
	parent := node.NewContainer("ZStack", layout.Overlay{})
	parent.Background = gg.Red
	child := node.NewContainer("Frame", layout.FixedFrame(10, 10))
	child.Background = gg.Blue
	sibling := node.NewContainer("Frame", layout.FixedFrame(5, 5))
	sibling.Background = gg.Green

	root := tr.ReplaceRoot(parent)
	tr.InsertChild(root, child)
	tr.InsertChild(root, sibling)

	surface := newFakeSurface(50, 50)
	if _, err := New().Render(tr, env.Default(), surface); err != nil {
		t.Fatal(err)
	}
	rects := surface.last.Rects()
	want := []gg.RGBA{gg.Red, gg.Blue, gg.Green}
	if len(rects) != len(want) {
		t.Fatalf("painted %d rects, want %d", len(rects), len(want))
	}
	for i := range want {
		if rects[i].Color != want[i] {
			t.Errorf("rects[%d].Color = %v, want %v", i, rects[i].Color, want[i])
		}
	}
}

func TestViewportFill(t *testing.T) {
	tests := []struct {
		fill bool
		want layout.Rect
	}{
		{true, layout.Rect{Width: 300, Height: 200}},
		{false, layout.Rect{Width: 40, Height: 20}},
	}
	for _, tt := range tests {
		tr := tree.New()
		root := tr.ReplaceRoot(node.NewContainer("Frame", layout.FixedFrame(40, 20)))
		eng := New(WithViewportFill(tt.fill))
		if _, err := eng.Render(tr, env.Default(), newFakeSurface(300, 200)); err != nil {
			t.Fatal(err)
		}
		if got, _ := eng.LayoutEngine().Frame(root); got != tt.want {
			t.Errorf("fill=%v root frame = %v, want %v", tt.fill, got, tt.want)
		}
	}
}

func TestMaxDepth(t *testing.T) {
	tr := tree.New()
	id := tr.ReplaceRoot(node.NewContainer("Padding", layout.Padding{}))
	for i := 0; i < 5; i++ {
		id = tr.InsertChild(id, node.NewContainer("Padding", layout.Padding{}))
	}

	surface := newFakeSurface(10, 10)
	shallow := New(WithMaxDepth(3))
	for i := 0; i < 2; i++ {
		res, err := shallow.Render(tr, env.Default(), surface)
		if res != Idle || !errors.Is(err, ErrMaxDepth) {
			t.Errorf("Render() #%d = %v, %v, want idle, ErrMaxDepth", i+1, res, err)
		}
		if !tr.HasDirty() {
			t.Errorf("Render() #%d left no dirty entry to retry", i+1)
		}
	}
	if surface.clears != 0 || surface.presents != 0 {
		t.Errorf("surface clears=%d presents=%d after failed layouts, want 0 and 0", surface.clears, surface.presents)
	}

	tr.MarkDirty(id, tree.DirtyLayout)
	if _, err := New().Render(tr, env.Default(), newFakeSurface(10, 10)); err != nil {
		t.Errorf("Render() with default depth error = %v", err)
	}
}

// countingNode records how often it is measured.
type countingNode struct {
	node.Empty
	calls int
}

func (c *countingNode) SizeThatFits(layout.ProposalSize, []layout.Subview, *env.Environment) layout.Size {
	c.calls++
	return layout.Size{Width: 10, Height: 10}
}

func TestMeasurementCachePerPass(t *testing.T) {
	tr := tree.New()
	root := tr.ReplaceRoot(node.NewContainer("VStack", layout.VStack(0, layout.Leading)))
	leaf := &countingNode{}
	tr.InsertChild(root, leaf)

	le := NewLayoutEngine(0)
	viewport := layout.Rect{Width: 100, Height: 100}
	if err := le.Layout(tr, viewport, env.Default(), true); err != nil {
		t.Fatal(err)
	}
	first := leaf.calls
	if first != 1 {
		t.Errorf("leaf measured %d times in one pass, want 1", first)
	}

	if err := le.Layout(tr, viewport, env.Default(), true); err != nil {
		t.Fatal(err)
	}
	if leaf.calls != first+1 {
		t.Errorf("cache survived across passes: calls = %d, want %d", leaf.calls, first+1)
	}
}

func TestRenderEmptyTreeIsIdle(t *testing.T) {
	surface := newFakeSurface(10, 10)
	res, err := New().Render(tree.New(), env.Default(), surface)
	if res != Idle || err != nil || surface.clears != 0 {
		t.Errorf("Render(empty) = %v, %v, clears=%d", res, err, surface.clears)
	}
}

func TestPaddedFieldStretchesInHStack(t *testing.T) {
	tr := tree.New()
	e := env.Default()
	v := view.HStack(0, layout.VCenter,
		view.Text("ab"),
		view.Padding(layout.Insets(4), view.TextField(view.Constant(""), "name")),
	)
	root, err := parse.Build(tr, v, e)
	if err != nil {
		t.Fatalf("parse.Build() error = %v", err)
	}
	eng := New()
	if _, err := eng.Render(tr, e, newFakeSurface(300, 100)); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	kids := tr.Children(root)
	text, _ := eng.LayoutEngine().Frame(kids[0])
	field, _ := eng.LayoutEngine().Frame(tr.Children(kids[1])[0])
	if want := 300 - text.Width - 8; field.Width != want {
		t.Errorf("padded field width = %v, want %v", field.Width, want)
	}
	if want := text.Width + 4; field.X != want {
		t.Errorf("padded field x = %v, want %v", field.X, want)
	}
}
