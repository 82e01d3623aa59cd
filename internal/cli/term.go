// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/gogpu/ui/backend/terminal"
	"github.com/gogpu/ui/tree"
)

type termOpts struct {
	interactive bool
	screen      bool
	columns     int
}

func newTermCmd(st *state) *cobra.Command {
	var opts termOpts

	cmd := &cobra.Command{
		Use:   "term",
		Short: "Render the demo as text",
		Long: `Render the demo as text. By default one frame is written to stdout.
--screen draws on a full-screen terminal until a key is pressed and
--interactive runs a bubbletea program where arrows, space and +/- edit
the demo values.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.columns > 0 {
				st.cfg.Columns = opts.columns
			}
			switch {
			case opts.interactive && opts.screen:
				return fmt.Errorf("--interactive and --screen are mutually exclusive")
			case opts.interactive:
				return runInteractive(st)
			case opts.screen:
				return runScreen(st)
			}

			sc, err := st.scene()
			if err != nil {
				return err
			}
			b := terminal.New(sc.view, terminal.WithPresenter(terminal.NewWriterPresenter(cmd.OutOrStdout())))
			defer b.Close()
			_, err = b.Render(sc.tree, sc.env)
			return err
		},
	}

	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "run an interactive program")
	cmd.Flags().BoolVar(&opts.screen, "screen", false, "draw on a full-screen terminal")
	cmd.Flags().IntVar(&opts.columns, "columns", 0, "terminal width in cells")
	return cmd
}

func runScreen(st *state) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	sc, err := st.scene()
	if err != nil {
		return err
	}
	w, _ := screen.Size()
	sc.env = sc.env.WithTerminalWidth(w)

	b := terminal.New(sc.view, terminal.WithPresenter(terminal.NewScreenPresenter(screen)))
	defer b.Close()
	if _, err := b.Render(sc.tree, sc.env); err != nil {
		return err
	}

	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
			w, _ := screen.Size()
			sc.env = sc.env.WithTerminalWidth(w)
			if root, ok := sc.tree.Root(); ok {
				sc.tree.MarkDirty(root, tree.DirtyLayout)
			}
			if _, err := b.Render(sc.tree, sc.env); err != nil {
				return err
			}
		case *tcell.EventKey:
			return nil
		case nil:
			return nil
		}
	}
}

// interactiveModel edits the demo values and refreshes the wrapped model.
type interactiveModel struct {
	inner terminal.Model
	state *demoState
}

func runInteractive(st *state) error {
	s := newDemoState()
	m := interactiveModel{
		inner: terminal.NewModel(demoView{state: s}, st.cfg.Environment()),
		state: s,
	}
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func (m interactiveModel) Init() tea.Cmd { return m.inner.Init() }

func (m interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && m.edit(key.String()) {
		msg = terminal.RefreshMsg{}
	}
	next, cmd := m.inner.Update(msg)
	m.inner = next.(terminal.Model)
	return m, cmd
}

// edit applies a key to the demo state and reports whether it changed.
func (m interactiveModel) edit(key string) bool {
	s := m.state
	switch key {
	case "left":
		s.Volume.Set(max(0, s.Volume.Get()-5))
	case "right":
		s.Volume.Set(min(100, s.Volume.Get()+5))
	case " ", "space":
		s.Enabled.Set(!s.Enabled.Get())
	case "+":
		s.Count.Set(s.Count.Get() + 1)
	case "-":
		s.Count.Set(s.Count.Get() - 1)
	case "up":
		s.Progress.Set(min(1, s.Progress.Get()+0.1))
	case "down":
		s.Progress.Set(max(0, s.Progress.Get()-0.1))
	default:
		return false
	}
	return true
}

func (m interactiveModel) View() string { return m.inner.View() }
