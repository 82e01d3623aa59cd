// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package gpu implements a backend presenting frames to a GPU surface
// through gpucontext.
//
// # Paint paths
//
// Each frame acquires a [gpucontext.TextureDrawer] from the [Surface]:
//
//   - If the drawer implements [QuadDrawer] and the scene holds only solid
//     rectangles, the rectangles are submitted as instanced quads with a
//     WGSL shader compiled to SPIR-V by naga.
//   - Otherwise the scene is rasterized on the CPU into a ggcanvas.Canvas
//     and uploaded with RenderTo.
//
// # Surface errors
//
// Presentation failures never abort the program:
//
//   - [ErrSurfaceLost]: the surface is reconfigured, the root is marked
//     dirty and the frame is Idle.
//   - [ErrSurfaceOutdated]: the root is marked dirty and the frame is Idle.
//   - anything else is logged and the frame is Idle.
package gpu
