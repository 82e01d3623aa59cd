// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package backend defines the contract shared by the ui render backends and
// a registry for selecting one at runtime.
//
// # Backends
//
// A [Backend] consumes a render tree and produces frames for one target:
//
//   - cpu: rasterizes into an in-memory image with gg
//   - gpu: presents to a gpucontext surface, via instanced quads or a
//     ggcanvas texture upload
//   - terminal: renders the declarative view as text lines
//
// # Registration
//
// Backends are registered by name with a priority. Higher priorities win in
// [Default]:
//
//	backend.Register("cpu", 10, func() (backend.Backend, error) {
//		return cpu.New(800, 600)
//	})
//
//	b, err := backend.Default()
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer b.Close()
//
// A factory that fails is reported as unavailable and skipped by Default.
package backend
