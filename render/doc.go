// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render provides the backend-agnostic painting abstraction.
//
// A paint traversal records an ordered list of [DrawCommand] values into a
// [Scene] through a [Ctx]. The Scene is created fresh every frame, handed to
// exactly one backend, and dropped.
//
// # Commands
//
//   - [SolidRect]: an axis-aligned filled rectangle
//   - [Text]: a single-line text run; drawn only by backends that install a
//     [TextPainter], ignored otherwise
//   - [Placeholder]: an opaque marker for content no backend draws yet
//
// # Painter's algorithm
//
// Commands are consumed in recording order. Parents paint before their
// children, so later commands cover earlier ones. There is no z-ordering.
//
// Example:
//
//	scene := render.NewScene()
//	ctx := render.NewCtx(scene, env.Default())
//	ctx.SetBounds(layout.Rect{Width: 100, Height: 40})
//	ctx.Fill(gg.Hex("#0a84ff"))
//	ctx.DrawText("hello", env.TextStyle{}, gg.White)
//
//	for _, cmd := range scene.Commands() {
//	    // backend-native drawing
//	}
package render
