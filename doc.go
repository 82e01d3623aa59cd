// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package ui turns declarative view descriptions into positioned, paintable
// output for CPU raster surfaces, GPU surfaces and text terminals.
//
// # Overview
//
// A view value (see package view) is parsed into a RenderTree (package tree),
// an arena of render nodes linked by index. Every frame, the Engine (package
// engine) drains the tree's dirty queue. When nothing is dirty the frame is
// Idle and no work happens. Otherwise the whole tree is laid out with the
// two-pass measure/place protocol (package layout) and painted in pre-order
// into a Scene (package render), which a backend turns into pixels.
//
// # Quick Start
//
//	t := tree.New()
//	e := env.Default()
//	root := view.VStack(8, layout.HCenter,
//	    view.Text("hello"),
//	    view.Divider(),
//	    view.Progress(view.Constant(0.4)),
//	)
//	if _, err := parse.Build(t, root, e); err != nil {
//	    log.Fatal(err)
//	}
//
//	b, err := cpu.New(640, 480)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if _, err := b.Render(t, e); err != nil {
//	    log.Fatal(err)
//	}
//	_ = b.SavePNG("hello.png")
//
// # Backends
//
//   - backend/cpu: software rasterization through gg
//   - backend/gpu: swapchain presentation through gpucontext and ggcanvas
//   - backend/terminal: textual frames built from the declarative tree
//
// # Coordinate System
//
// Origin (0,0) at top-left, X increases right, Y increases down. All
// geometry uses float64 logical pixels; the terminal backend works in cells.
//
// # Threading
//
// Rendering is single-threaded and synchronous. A RenderTree is owned by the
// goroutine that drives the render loop; reactive callbacks that mark nodes
// dirty must run on, or be synchronized onto, that goroutine.
package ui

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0-alpha.1"
)
