// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tree

import "fmt"

// DirtyReason records why a node needs processing before the next frame.
type DirtyReason uint8

const (
	DirtyLayout DirtyReason = iota
	DirtyPaint
	DirtyReactive
)

func (r DirtyReason) String() string {
	switch r {
	case DirtyLayout:
		return "layout"
	case DirtyPaint:
		return "paint"
	case DirtyReactive:
		return "reactive"
	default:
		return fmt.Sprintf("DirtyReason(%d)", r)
	}
}

// DirtyNode is one entry of the dirty queue.
type DirtyNode struct {
	ID     NodeID
	Reason DirtyReason
}
