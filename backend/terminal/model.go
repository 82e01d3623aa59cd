// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package terminal

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gogpu/ui/env"
	"github.com/gogpu/ui/view"
)

// RefreshMsg asks a Model to rebuild its frame, e.g. after a source changed.
type RefreshMsg struct{}

// Model is a bubbletea model displaying a view. The frame is rebuilt on
// RefreshMsg and on window resizes, which also set the terminal width the
// view is built against.
type Model struct {
	view  view.View
	env   *env.Environment
	frame Frame
	err   error
}

// NewModel returns a model for v, built once against e.
func NewModel(v view.View, e *env.Environment) Model {
	if e == nil {
		e = env.Default()
	}
	m := Model{view: v, env: e}
	m.rebuild()
	return m
}

func (m *Model) rebuild() {
	m.frame, m.err = Build(m.view, m.env)
}

// Frame returns the frame currently displayed.
func (m Model) Frame() Frame { return m.frame }

// Err returns the error of the last build, if any.
func (m Model) Err() error { return m.err }

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.env = m.env.WithTerminalWidth(msg.Width)
		m.rebuild()
	case RefreshMsg:
		m.rebuild()
	}
	return m, nil
}

func (m Model) View() string {
	if m.err != nil {
		return "error: " + m.err.Error() + "\n"
	}
	var b strings.Builder
	for _, l := range m.frame.Lines {
		b.WriteString(renderLine(lipgloss.NewStyle(), l))
		b.WriteByte('\n')
	}
	return b.String()
}
