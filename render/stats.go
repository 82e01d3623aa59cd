// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "fmt"

// Stats accumulates frame pipeline counters.
type Stats struct {
	Frames    uint64
	Idle      uint64
	Presented uint64

	// Commands is the number of draw commands recorded over all frames.
	Commands uint64

	// LastCommands is the command count of the most recent presented frame.
	LastCommands int
}

// RecordIdle counts an idle frame.
func (s *Stats) RecordIdle() {
	s.Frames++
	s.Idle++
}

// RecordPresented counts a presented frame of scene.
func (s *Stats) RecordPresented(scene *Scene) {
	s.Frames++
	s.Presented++
	s.LastCommands = scene.Len()
	s.Commands += uint64(scene.Len())
}

func (s Stats) String() string {
	return fmt.Sprintf("frames=%d idle=%d presented=%d commands=%d",
		s.Frames, s.Idle, s.Presented, s.Commands)
}
