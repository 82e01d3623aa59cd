// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package engine

import "log/slog"

// DefaultMaxDepth bounds the nesting depth the layout pass accepts.
const DefaultMaxDepth = 512

// Option configures an Engine during creation.
//
// Example:
//
//	eng := engine.New(engine.WithViewportFill(false), engine.WithMaxDepth(64))
type Option func(*options)

type options struct {
	viewportFill bool
	logger       *slog.Logger
	maxDepth     int
}

func defaultOptions() options {
	return options{
		viewportFill: true,
		maxDepth:     DefaultMaxDepth,
	}
}

// WithViewportFill controls how the root is sized. When true (the default)
// the root is placed into the whole viewport. When false it is placed at
// the origin with the size it measured.
func WithViewportFill(fill bool) Option {
	return func(o *options) {
		o.viewportFill = fill
	}
}

// WithLogger sets the logger used for per-frame diagnostics. Without it the
// engine logs through ui.Logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithMaxDepth sets the deepest node nesting the layout pass accepts.
// Values below 1 keep the default.
func WithMaxDepth(depth int) Option {
	return func(o *options) {
		if depth > 0 {
			o.maxDepth = depth
		}
	}
}
