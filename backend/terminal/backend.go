// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package terminal

import (
	"fmt"
	"os"

	"github.com/gogpu/ui"
	"github.com/gogpu/ui/backend"
	"github.com/gogpu/ui/engine"
	"github.com/gogpu/ui/env"
	"github.com/gogpu/ui/tree"
	"github.com/gogpu/ui/view"
)

// Option configures a Backend during creation.
type Option func(*options)

type options struct {
	presenter Presenter
}

// WithPresenter sets where frames go. The default writes to stdout.
func WithPresenter(p Presenter) Option {
	return func(o *options) {
		o.presenter = p
	}
}

var _ backend.Backend = (*Backend)(nil)

// Backend renders the declarative view a render tree was built from.
// The tree only decides when a frame is due; the text comes from the view.
type Backend struct {
	view      view.View
	presenter Presenter
	eng       *engine.Engine
	last      Frame
	closed    bool
}

// New returns a terminal backend for v.
func New(v view.View, opts ...Option) *Backend {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.presenter == nil {
		o.presenter = NewWriterPresenter(os.Stdout)
	}
	return &Backend{view: v, presenter: o.presenter, eng: engine.New()}
}

// Name implements backend.Backend.
func (b *Backend) Name() string { return backend.Terminal }

// SetView replaces the view rendered by the next frames.
func (b *Backend) SetView(v view.View) { b.view = v }

// Frame returns the last presented frame.
func (b *Backend) Frame() Frame { return b.last }

// Render drains t's dirty queue. When something was dirty it rebuilds the
// frame from the view and presents it.
func (b *Backend) Render(t *tree.RenderTree, e *env.Environment) (engine.FrameResult, error) {
	if b.closed {
		return engine.Idle, backend.ErrClosed
	}
	if e == nil {
		e = env.Default()
	}
	if !b.eng.Update(t, e) {
		return engine.Idle, nil
	}
	f, err := Build(b.view, e)
	if err != nil {
		return engine.Idle, err
	}
	if err := b.presenter.Present(f); err != nil {
		return engine.Idle, fmt.Errorf("terminal: present: %w", err)
	}
	b.last = f
	ui.Logger().Debug("terminal: frame presented", "lines", len(f.Lines))
	return engine.Presented, nil
}

// Close implements backend.Backend. The presenter's output is left open.
func (b *Backend) Close() error {
	b.closed = true
	return nil
}
