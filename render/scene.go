// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

// Scene is an ordered, append-only list of draw commands produced by one
// paint traversal.
type Scene struct {
	commands []DrawCommand
}

// NewScene creates a new empty Scene.
func NewScene() *Scene {
	return &Scene{commands: make([]DrawCommand, 0, 16)}
}

// Push appends cmd.
func (s *Scene) Push(cmd DrawCommand) {
	s.commands = append(s.commands, cmd)
}

// Commands returns the recorded commands in paint order.
// The returned slice should not be modified by the caller.
func (s *Scene) Commands() []DrawCommand {
	return s.commands
}

// Len returns the number of recorded commands.
func (s *Scene) Len() int {
	return len(s.commands)
}

// IsEmpty reports whether nothing was recorded.
func (s *Scene) IsEmpty() bool {
	return len(s.commands) == 0
}

// Count returns the number of commands of the given kind.
func (s *Scene) Count(kind CommandKind) int {
	n := 0
	for _, c := range s.commands {
		if c.Kind() == kind {
			n++
		}
	}
	return n
}

// Rects returns the SolidRect commands in paint order.
func (s *Scene) Rects() []SolidRect {
	out := make([]SolidRect, 0, len(s.commands))
	for _, c := range s.commands {
		if r, ok := c.(SolidRect); ok {
			out = append(out, r)
		}
	}
	return out
}

// OnlyRects reports whether every drawable command is a SolidRect.
// Placeholders are ignored since no backend draws them.
func (s *Scene) OnlyRects() bool {
	for _, c := range s.commands {
		if c.Kind() == KindText {
			return false
		}
	}
	return true
}
