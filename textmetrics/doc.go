// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package textmetrics provides env.TextMeasurer implementations.
//
//   - [Shaper] shapes runs with HarfBuzz (go-text/typesetting) over the Go
//     fonts and reads vertical metrics from gg font faces.
//   - [Monospace] estimates sizes on a character grid, counting East Asian
//     wide characters as two cells.
//
// Install one on an environment:
//
//	shaper, err := textmetrics.NewShaper()
//	if err != nil {
//	    return err
//	}
//	e := env.Default().WithMeasurer(shaper)
package textmetrics
