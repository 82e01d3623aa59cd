// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package cli

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"github.com/spf13/cobra"

	"github.com/gogpu/ui/backend/cpu"
)

func newWindowCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "window",
		Short: "Show the rasterized demo in a desktop window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
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

			a := app.New()
			w := a.NewWindow("uidemo")
			img := canvas.NewImageFromImage(b.Image())
			img.FillMode = canvas.ImageFillOriginal
			w.SetContent(img)
			w.Resize(fyne.NewSize(float32(st.cfg.Width), float32(st.cfg.Height)))
			w.ShowAndRun()
			return nil
		},
	}
}
