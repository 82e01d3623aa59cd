// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package cpu implements a software backend that rasterizes frames into an
// in-memory image with gg.
//
// SolidRect commands become gg rectangle fills. Text commands are drawn by a
// [render.TextPainter]; by default a [FontPainter] over the Go fonts, so text
// is drawn with the faces it was measured with. Placeholder commands are
// ignored.
//
//	b, err := cpu.New(320, 240)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer b.Close()
//
//	if _, err := b.Render(t, env.Default()); err != nil {
//		log.Fatal(err)
//	}
//	_ = b.SavePNG("frame.png")
package cpu
