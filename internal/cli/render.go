// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/gogpu/ui/backend"
	"github.com/gogpu/ui/backend/cpu"
	"github.com/gogpu/ui/backend/terminal"
	"github.com/gogpu/ui/engine"
	"github.com/gogpu/ui/env"
	"github.com/gogpu/ui/parse"
	"github.com/gogpu/ui/tree"
	"github.com/gogpu/ui/view"
)

// Backend priorities used by registerBackends.
const (
	priorityGPU      = 100
	priorityCPU      = 50
	priorityTerminal = 10
)

// scene is a parsed demo: the view, the tree built from it and the
// environment it was built against.
type scene struct {
	view view.View
	tree *tree.RenderTree
	env  *env.Environment
}

func (st *state) scene() (*scene, error) {
	e := st.cfg.Environment()
	v := demoView{state: newDemoState()}
	t := tree.New()
	if _, err := parse.Build(t, v, e); err != nil {
		return nil, fmt.Errorf("build tree: %w", err)
	}
	return &scene{view: v, tree: t, env: e}, nil
}

// registerBackends registers the backends this binary can create for sc.
// Frames from the terminal backend go to out.
func registerBackends(st *state, sc *scene, out io.Writer) {
	backend.Register(backend.GPU, priorityGPU, func() (backend.Backend, error) {
		return nil, fmt.Errorf("%w: no GPU device provider in this build", backend.ErrBackendNotAvailable)
	})
	backend.Register(backend.CPU, priorityCPU, func() (backend.Backend, error) {
		b, err := cpu.New(st.cfg.Width, st.cfg.Height)
		if err != nil {
			return nil, err
		}
		return b, nil
	})
	backend.Register(backend.Terminal, priorityTerminal, func() (backend.Backend, error) {
		return terminal.New(sc.view, terminal.WithPresenter(terminal.NewWriterPresenter(out))), nil
	})
}

func newPNGCmd(st *state) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "png",
		Short: "Render the demo with the software rasterizer and write a PNG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if output != "" {
				st.cfg.Output = output
			}
			logger := loggerFromContext(cmd.Context())
			prog := newProgress(logger)

			sc, err := st.scene()
			if err != nil {
				return err
			}
			b, err := cpu.New(st.cfg.Width, st.cfg.Height)
			if err != nil {
				return err
			}
			defer b.Close()

			if _, err := b.Render(sc.tree, sc.env); err != nil {
				return fmt.Errorf("render: %w", err)
			}
			if err := b.SavePNG(st.cfg.Output); err != nil {
				return err
			}
			stats := b.Engine().Stats()
			logger.Debug("frame", "nodes", sc.tree.Len(), "commands", stats.LastCommands)
			prog.done("Wrote " + st.cfg.Output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output PNG path")
	return cmd
}

func newRenderCmd(st *state) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render one frame with a registered backend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if name != "" {
				st.cfg.Backend = name
			}
			logger := loggerFromContext(cmd.Context())

			sc, err := st.scene()
			if err != nil {
				return err
			}
			registerBackends(st, sc, cmd.OutOrStdout())

			var b backend.Backend
			if st.cfg.Backend == "" || st.cfg.Backend == "auto" {
				b, err = backend.Default()
			} else {
				b, err = backend.Get(st.cfg.Backend)
			}
			if err != nil {
				return err
			}
			defer b.Close()

			res, err := b.Render(sc.tree, sc.env)
			if err != nil {
				return fmt.Errorf("render: %w", err)
			}
			logger.Info("Rendered frame", "backend", b.Name(), "result", res)
			if res != engine.Presented {
				return nil
			}

			if c, ok := b.(*cpu.Backend); ok {
				if err := c.SavePNG(st.cfg.Output); err != nil {
					return err
				}
				logger.Info("Wrote " + st.cfg.Output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "backend", "b", "", "backend name, or auto for the highest priority available")
	return cmd
}

func newBackendsCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "backends",
		Short: "List the registered backends in selection order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := st.scene()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			registerBackends(st, sc, io.Discard)

			for _, name := range backend.Available() {
				status := "available"
				b, err := backend.Get(name)
				switch {
				case errors.Is(err, backend.ErrBackendNotAvailable):
					status = "unavailable"
				case err != nil:
					return err
				default:
					b.Close()
				}
				fmt.Fprintf(out, "%-10s %s\n", name, status)
			}
			return nil
		},
	}
}
