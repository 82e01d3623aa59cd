// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package view

import (
	"math"
	"testing"

	"github.com/gogpu/ui/env"
	"github.com/gogpu/ui/layout"
)

type greeting struct{ name string }

func (g greeting) Body(*env.Environment) View { return Text("hi " + g.name) }

func TestEraseAndUnwrap(t *testing.T) {
	g := greeting{"ada"}
	a := Erase(g)
	if Erase(a) != a {
		t.Error("Erase(AnyView) wrapped again")
	}
	if got := Unwrap(AnyView{view: AnyView{view: g}}); got != View(g) {
		t.Errorf("Unwrap() = %v, want %v", got, g)
	}
	if got := a.Body(env.Default()); got != View(g) {
		t.Errorf("AnyView.Body() = %v, want the wrapped view", got)
	}
}

func TestPrimitiveBodiesAreNil(t *testing.T) {
	views := []View{Empty(), Text("x"), Divider(), Spacer(), VStack(0, layout.Leading), Scroll(Empty())}
	for _, v := range views {
		if b := v.Body(env.Default()); b != nil {
			t.Errorf("%T.Body() = %v, want nil", v, b)
		}
	}
}

func TestVar(t *testing.T) {
	v := NewVar(1)
	var order []int
	cancelA := v.Watch(func() { order = append(order, 1) })
	v.Watch(func() { order = append(order, 2) })

	v.Set(5)
	if v.Get() != 5 {
		t.Errorf("Get() = %d, want 5", v.Get())
	}
	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("notification order = %v, want [1 2]", order)
	}

	cancelA()
	cancelA()
	order = nil
	v.Set(6)
	if len(order) != 1 || order[0] != 2 {
		t.Errorf("after cancel notifications = %v, want [2]", order)
	}
	if v.Watchers() != 1 {
		t.Errorf("Watchers() = %d, want 1", v.Watchers())
	}
}

func TestSources(t *testing.T) {
	if got := Constant("a").Get(); got != "a" {
		t.Errorf("Constant.Get() = %q", got)
	}
	n := 0
	f := Func[int](func() int { n++; return n })
	if f.Get() != 1 || f.Get() != 2 {
		t.Error("Func.Get() did not call through")
	}
	if _, ok := Constant(1).(Watchable); ok {
		t.Error("Constant is watchable")
	}
	var _ Watchable = NewVar(0)
}

func TestFrameStretch(t *testing.T) {
	inf := layout.Exactly(math.Inf(1))
	tests := []struct {
		frame layout.Frame
		want  layout.StretchAxis
	}{
		{layout.FixedFrame(10, 10), layout.StretchNone},
		{layout.Frame{MaxWidth: inf}, layout.StretchHorizontal},
		{layout.Frame{MaxHeight: inf}, layout.StretchVertical},
		{layout.Frame{MaxWidth: inf, MaxHeight: inf}, layout.StretchBoth},
	}
	for _, tt := range tests {
		if got := Frame(tt.frame, Empty()).Stretch; got != tt.want {
			t.Errorf("Frame(%+v).Stretch = %v, want %v", tt.frame, got, tt.want)
		}
	}
}

func TestContainerBuilders(t *testing.T) {
	tests := []struct {
		c        FixedContainer
		name     string
		children int
	}{
		{VStack(1, layout.Leading, Text("a"), Text("b")), "VStack", 2},
		{HStack(1, layout.Top, Text("a")), "HStack", 1},
		{Grid(2, 0, Text("a"), Text("b"), Text("c")), "Grid", 3},
		{ZStack(Text("base"), Text("layer")), "Overlay", 2},
		{Padding(layout.Insets(4), Text("a")), "Padding", 1},
		{MaxWidth(layout.Center, Text("a")), "Frame", 1},
		{Canvas(10, 10, Text("a")), "Canvas", 1},
	}
	for _, tt := range tests {
		if tt.c.Name != tt.name || len(tt.c.Children) != tt.children || tt.c.Layout == nil {
			t.Errorf("builder %s: name=%q children=%d layout=%v", tt.name, tt.c.Name, len(tt.c.Children), tt.c.Layout)
		}
	}
}
