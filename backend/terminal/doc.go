// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package terminal renders declarative views as lines of styled text.
//
// Unlike the pixel backends it does not paint a render.Scene. [Build] walks
// the view description directly:
//
//   - a Text becomes one segment on its own line
//   - vertical containers emit one line per child, indented one level
//     deeper than the container
//   - horizontal stacks join their children onto a single line
//   - a Grid emits one line per row
//   - a Divider becomes a rule as wide as the terminal
//   - controls render as textual widgets, e.g. "[x] Wi-Fi"
//
// Colors resolve against the environment's theme. A [Presenter] turns the
// resulting [Frame] into output: [WriterPresenter] writes ANSI text with
// lipgloss, [ScreenPresenter] draws into a tcell screen and [Model] hosts a
// frame in a bubbletea program.
package terminal
