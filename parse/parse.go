// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package parse converts declarative views into render-tree nodes.
//
// Dispatch is a closed type switch over the configurations in package view,
// tried in a fixed order: Empty, Text, Divider, FixedContainer, ScrollView
// (which passes through to its content), Spacer, Slider, Stepper, Toggle,
// TextField and Progress. AnyView wrappers are stripped first. Any other
// value is a composite: its Body is expanded one level and dispatch runs
// again, up to MaxExpansion times per node.
//
// Reactive sources that implement view.Watchable are subscribed so that a
// change marks the owning node Reactive. Subscriptions are released when
// the tree's root is replaced.
package parse

import (
	"errors"
	"fmt"

	"github.com/gogpu/ui"
	"github.com/gogpu/ui/env"
	"github.com/gogpu/ui/layout"
	"github.com/gogpu/ui/node"
	"github.com/gogpu/ui/tree"
	"github.com/gogpu/ui/view"
)

// MaxExpansion is the number of consecutive Body expansions allowed while
// resolving one node.
const MaxExpansion = 64

var (
	// ErrExpansionLimit is returned when a composite keeps expanding to
	// other composites past MaxExpansion levels.
	ErrExpansionLimit = errors.New("parse: body expansion limit exceeded")

	// ErrNilView is returned for a nil view or a composite with a nil body.
	ErrNilView = errors.New("parse: nil view")
)

// Build replaces the root of t with the nodes for v.
//
// On error the tree holds whatever was built before the failure.
func Build(t *tree.RenderTree, v view.View, e *env.Environment) (tree.NodeID, error) {
	b := &builder{t: t, env: e}
	id, err := b.build(v, t.ReplaceRoot)
	if err != nil {
		return id, err
	}
	ui.Logger().Debug("parse: built tree", "nodes", t.Len())
	return id, nil
}

// BuildChild appends the nodes for v under parent. It panics if parent does
// not exist.
func BuildChild(t *tree.RenderTree, parent tree.NodeID, v view.View, e *env.Environment) (tree.NodeID, error) {
	b := &builder{t: t, env: e}
	return b.build(v, func(n tree.Node) tree.NodeID {
		return t.InsertChild(parent, n)
	})
}

type builder struct {
	t   *tree.RenderTree
	env *env.Environment
}

// Resolve expands v until it is a primitive configuration, returning the
// configuration reached.
func Resolve(v view.View, e *env.Environment) (view.View, error) {
	for depth := 0; ; depth++ {
		if v = view.Unwrap(v); v == nil {
			return nil, ErrNilView
		}
		if sv, ok := v.(view.ScrollView); ok {
			v = sv.Content
			continue
		}
		if isPrimitive(v) {
			return v, nil
		}
		if depth >= MaxExpansion {
			return nil, fmt.Errorf("%w: %T after %d levels", ErrExpansionLimit, v, depth)
		}
		v = v.Body(e)
	}
}

// wrapsChild reports whether l sizes itself from its first child, so the
// container stretches the way that child does.
func wrapsChild(l layout.Layout) bool {
	switch l.(type) {
	case layout.Padding, layout.Overlay:
		return true
	}
	return false
}

func isPrimitive(v view.View) bool {
	switch v.(type) {
	case view.EmptyConfig, view.TextConfig, view.DividerConfig, view.FixedContainer,
		view.SpacerConfig, view.SliderConfig, view.StepperConfig, view.ToggleConfig,
		view.TextFieldConfig, view.ProgressConfig:
		return true
	}
	return false
}

func (b *builder) build(v view.View, attach func(tree.Node) tree.NodeID) (tree.NodeID, error) {
	v, err := Resolve(v, b.env)
	if err != nil {
		return 0, err
	}

	switch c := v.(type) {
	case view.EmptyConfig:
		return attach(&node.Empty{}), nil

	case view.TextConfig:
		n := &node.Text{Style: c.Style, Color: c.Color}
		n.Content, n.Source = read(c.Content, "")
		id := attach(n)
		b.watch(id, c.Content)
		return id, nil

	case view.DividerConfig:
		return attach(&node.Divider{Thickness: c.Thickness}), nil

	case view.FixedContainer:
		n := &node.Container{Layout: c.Layout, Stretch: c.Stretch, Background: c.Background, Name: c.Name}
		id := attach(n)
		for _, child := range c.Children {
			if _, err := b.build(child, func(cn tree.Node) tree.NodeID {
				return b.t.InsertChild(id, cn)
			}); err != nil {
				return id, err
			}
		}
		if n.Stretch == layout.StretchNone && wrapsChild(c.Layout) {
			if kids := b.t.Children(id); len(kids) > 0 {
				if first, ok := b.t.Node(kids[0]); ok {
					n.Stretch = first.StretchAxis()
				}
			}
		}
		return id, nil

	case view.SpacerConfig:
		return attach(&node.Spacer{MinLength: c.MinLength}), nil

	case view.SliderConfig:
		n := &node.Slider{Min: c.Min, Max: c.Max}
		n.Value, n.Source = read(c.Value, c.Min)
		id := attach(n)
		b.watch(id, c.Value)
		return id, nil

	case view.StepperConfig:
		n := &node.Stepper{Label: c.Label, Step: c.Step}
		if n.Step == 0 {
			n.Step = 1
		}
		n.Value, n.Source = read(c.Value, 0)
		id := attach(n)
		b.watch(id, c.Value)
		return id, nil

	case view.ToggleConfig:
		n := &node.Toggle{Label: c.Label}
		n.On, n.Source = read(c.On, false)
		id := attach(n)
		b.watch(id, c.On)
		return id, nil

	case view.TextFieldConfig:
		n := &node.TextField{Prompt: c.Prompt}
		n.Text, n.Source = read(c.Text, "")
		id := attach(n)
		b.watch(id, c.Text)
		return id, nil

	case view.ProgressConfig:
		n := &node.Progress{}
		n.Value, n.Source = read(c.Value, -1)
		id := attach(n)
		b.watch(id, c.Value)
		return id, nil
	}
	// Resolve only returns the configurations handled above.
	panic(fmt.Sprintf("parse: unhandled configuration %T", v))
}

// read returns the current value of src and its getter, or fallback and nil
// for a nil source.
func read[T any](src view.Source[T], fallback T) (T, func() T) {
	if src == nil {
		return fallback, nil
	}
	return src.Get(), src.Get
}

func (b *builder) watch(id tree.NodeID, src any) {
	w, ok := src.(view.Watchable)
	if !ok {
		return
	}
	t := b.t
	cancel := w.Watch(func() {
		t.MarkDirty(id, tree.DirtyReactive)
	})
	t.OnReplace(cancel)
}
