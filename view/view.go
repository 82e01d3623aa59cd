// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package view is the declarative side of the toolkit: the [View]
// interface, type-erased [AnyView] values, reactive [Source] values and the
// configuration records the tree parser and the terminal backend recognize.
//
// A view is either one of the primitive configurations in this package or
// a composite whose Body expands to other views:
//
//	type Greeting struct{ Name string }
//
//	func (g Greeting) Body(*env.Environment) view.View {
//	    return view.VStack(4, layout.Leading,
//	        view.Text("Hello,"),
//	        view.Text(g.Name),
//	    )
//	}
package view

import "github.com/gogpu/ui/env"

// View is a declarative view value.
//
// Composite views expand to other views in Body. Primitive configurations
// are consumed directly by the parser and report a nil body.
type View interface {
	Body(e *env.Environment) View
}

// primitive marks configurations that have no body.
type primitive struct{}

// Body returns nil. Primitive configurations are never expanded.
func (primitive) Body(*env.Environment) View { return nil }

// AnyView is a type-erased view.
type AnyView struct {
	view View
}

// Erase wraps v. Wrapping an AnyView again returns it unchanged.
func Erase(v View) AnyView {
	if a, ok := v.(AnyView); ok {
		return a
	}
	return AnyView{view: v}
}

// Unwrap returns the wrapped view.
func (a AnyView) Unwrap() View { return a.view }

// Body returns the wrapped view, so an AnyView expands to its content.
func (a AnyView) Body(*env.Environment) View { return a.view }

// Unwrap strips every AnyView layer from v.
func Unwrap(v View) View {
	for {
		a, ok := v.(AnyView)
		if !ok {
			return v
		}
		v = a.view
	}
}
