// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package node provides the concrete render nodes stored in a
// [tree.RenderTree]: text, dividers, spacers, generic layout containers and
// the basic controls.
//
// Nodes that display reactive state carry a Source function. When the node
// is marked Reactive, the frame pipeline calls UpdateReactive, which re-reads
// the source before layout.
package node
