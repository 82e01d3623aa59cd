// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import (
	"github.com/gogpu/ui/engine"
	"github.com/gogpu/ui/textmetrics"
)

// Option configures a Backend during creation.
type Option func(*options)

type options struct {
	engineOpts []engine.Option
	shaper     *textmetrics.Shaper
	noText     bool
	noQuads    bool
}

// WithEngineOptions passes options to the backend's frame engine.
func WithEngineOptions(opts ...engine.Option) Option {
	return func(o *options) {
		o.engineOpts = append(o.engineOpts, opts...)
	}
}

// WithShaper sets the shaper whose font sources draw text on the canvas path.
func WithShaper(s *textmetrics.Shaper) Option {
	return func(o *options) {
		o.shaper = s
	}
}

// WithoutText disables text drawing on the canvas path.
func WithoutText() Option {
	return func(o *options) {
		o.noText = true
	}
}

// WithoutQuads always uses the canvas path, even for rect-only scenes.
func WithoutQuads() Option {
	return func(o *options) {
		o.noQuads = true
	}
}
