// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package cpu

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
}

// WithEngineOptions passes options to the backend's frame engine.
func WithEngineOptions(opts ...engine.Option) Option {
	return func(o *options) {
		o.engineOpts = append(o.engineOpts, opts...)
	}
}

// WithShaper sets the shaper whose font sources draw text. Pass the same
// shaper that measures text in the environment.
func WithShaper(s *textmetrics.Shaper) Option {
	return func(o *options) {
		o.shaper = s
	}
}

// WithoutText disables text drawing. Text commands are still recorded.
func WithoutText() Option {
	return func(o *options) {
		o.noText = true
	}
}
