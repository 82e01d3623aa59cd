// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package engine drives the frame pipeline over a [tree.RenderTree].
//
// One call to [Engine.Render] performs a whole frame on the calling
// goroutine:
//
//  1. Drain the dirty queue. Nodes marked Reactive run their
//     UpdateReactive hook first; stale IDs are skipped.
//  2. If nothing was dirty, return [Idle] without touching the surface.
//  3. Otherwise clear the surface, lay out the whole tree from the root
//     with [LayoutEngine], and paint it in pre-order into a fresh
//     [render.Scene].
//  4. Present the scene and return [Presented].
//
// There is no partial relayout: any dirty entry relayouts every node.
//
// Example:
//
//	eng := engine.New()
//	for {
//	    res, err := eng.Render(t, e, surface)
//	    if err != nil {
//	        return err
//	    }
//	    if res == engine.Idle {
//	        waitForInput()
//	    }
//	}
package engine
