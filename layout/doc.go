// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package layout implements the two-pass measure/place protocol and the
// concrete container algorithms built on it.
//
// # Protocol
//
// Every container implements [Layout]:
//
//  1. SizeThatFits receives the parent's [ProposalSize] and returns the
//     container's desired size. Along the way it proposes boxes to its
//     children through [Subview.SizeThatFits] and reads back their sizes.
//  2. Place receives the final rectangle and returns one rectangle per child,
//     in child order.
//
// An [Unspecified] proposal on an axis asks for the intrinsic size on that
// axis. A child whose [StretchAxis] covers an axis may answer +Inf there;
// consumers substitute the available bound with [ResolveInfinite] and never
// propagate infinity upward.
//
// # Algorithms
//
//   - [Stack]: VStack and HStack with even, by-count stretch distribution
//   - [Grid]: fixed column count, rows sized by their tallest child
//   - [Frame]: ideal/min/max sizing with 2D alignment of a single child
//   - [Padding]: insets around a single child
//   - [Overlay]: base child drives the size, layers are aligned over it
//   - [Fixed]: explicit size, children pinned to the origin
//
// All layouts handle an empty child list by returning a zero size and no
// rectangles.
package layout
