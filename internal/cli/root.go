// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package cli implements the uidemo command-line interface.
//
// Every command renders the same demo view through a different backend:
//   - png: software rasterizer, written as a PNG file
//   - term: text frame on stdout, a full-screen tcell screen or an
//     interactive bubbletea program
//   - tree: the render tree as Graphviz DOT or SVG
//   - window: the rasterized frame in a desktop window
//   - backends: the registered backends in selection order
//
// Settings come from an optional TOML file (--config); flags override it.
package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  string
	date    string
)

// SetVersion sets the version information displayed by --version.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// state is shared by all subcommands.
type state struct {
	configPath string
	verbose    bool
	cfg        Config
}

// Execute runs the uidemo CLI.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	st := &state{cfg: DefaultConfig()}

	root := &cobra.Command{
		Use:          "uidemo",
		Short:        "uidemo renders a sample view with every backend",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if st.verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(os.Stderr, level)
			installLogger(logger)
			if ctx := cmd.Context(); ctx != nil {
				cmd.SetContext(withLogger(ctx, logger))
			} else {
				cmd.SetContext(withLogger(context.Background(), logger))
			}

			cfg, err := LoadConfig(st.configPath)
			if err != nil {
				return err
			}
			st.cfg = cfg
			return nil
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("uidemo %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&st.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&st.configPath, "config", "c", "", "TOML config file")

	root.AddCommand(newPNGCmd(st))
	root.AddCommand(newTermCmd(st))
	root.AddCommand(newTreeCmd(st))
	root.AddCommand(newWindowCmd(st))
	root.AddCommand(newBackendsCmd(st))
	root.AddCommand(newRenderCmd(st))

	return root
}
