// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package cpu

import (
	"errors"
	"fmt"
	"image"

	"github.com/gogpu/gg"
	"github.com/gogpu/ui"
	"github.com/gogpu/ui/backend"
	"github.com/gogpu/ui/engine"
	"github.com/gogpu/ui/env"
	"github.com/gogpu/ui/layout"
	"github.com/gogpu/ui/render"
	"github.com/gogpu/ui/textmetrics"
	"github.com/gogpu/ui/tree"
)

// ErrInvalidSize is returned for non-positive image dimensions.
var ErrInvalidSize = errors.New("cpu: invalid size")

var (
	_ backend.Backend = (*Backend)(nil)
	_ engine.Surface  = (*Backend)(nil)
)

// Backend rasterizes frames into an in-memory image.
type Backend struct {
	dc      *gg.Context
	eng     *engine.Engine
	painter render.TextPainter

	background gg.RGBA
	resized    bool
	closed     bool
}

// New creates a software backend drawing into a width x height image.
func New(width, height int, opts ...Option) (*Backend, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidSize, width, height)
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	b := &Backend{
		dc:         gg.NewContext(width, height),
		eng:        engine.New(o.engineOpts...),
		background: gg.Transparent,
	}
	if !o.noText {
		shaper := o.shaper
		if shaper == nil {
			s, err := textmetrics.NewShaper()
			if err != nil {
				return nil, err
			}
			shaper = s
		}
		b.painter = NewFontPainter(b.dc, shaper)
	}
	ui.Logger().Info("cpu: backend created", "width", width, "height", height, "text", b.painter != nil)
	return b, nil
}

// Name implements backend.Backend.
func (b *Backend) Name() string { return backend.CPU }

// Render runs one frame into the image. The image is cleared to the theme
// background first.
func (b *Backend) Render(t *tree.RenderTree, e *env.Environment) (engine.FrameResult, error) {
	if b.closed {
		return engine.Idle, backend.ErrClosed
	}
	if e == nil {
		e = env.Default()
	}
	if b.resized {
		if root, ok := t.Root(); ok {
			t.MarkDirty(root, tree.DirtyLayout)
		}
		b.resized = false
	}
	b.background = e.Theme.Background
	return b.eng.Render(t, e, b)
}

// Size implements engine.Surface.
func (b *Backend) Size() layout.Size {
	return layout.Size{Width: float64(b.dc.Width()), Height: float64(b.dc.Height())}
}

// Clear implements engine.Surface.
func (b *Backend) Clear() {
	b.dc.ClearWithColor(b.background)
}

// Present implements engine.Surface.
func (b *Backend) Present(scene *render.Scene) error {
	return Rasterize(b.dc, scene, b.painter)
}

// Context returns the gg context frames are drawn into.
func (b *Backend) Context() *gg.Context { return b.dc }

// Engine returns the frame engine, for reading frames and statistics.
func (b *Backend) Engine() *engine.Engine { return b.eng }

// Image returns the last rendered frame.
func (b *Backend) Image() image.Image {
	return b.dc.Image()
}

// SavePNG writes the last rendered frame to path.
func (b *Backend) SavePNG(path string) error {
	if b.closed {
		return backend.ErrClosed
	}
	return b.dc.SavePNG(path)
}

// Resize changes the image size. The next Render relays out the whole tree.
func (b *Backend) Resize(width, height int) error {
	if b.closed {
		return backend.ErrClosed
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: width=%d, height=%d", ErrInvalidSize, width, height)
	}
	if width == b.dc.Width() && height == b.dc.Height() {
		return nil
	}
	if err := b.dc.Resize(width, height); err != nil {
		return fmt.Errorf("cpu: resize: %w", err)
	}
	b.resized = true
	return nil
}

// Close releases the gg context. Calling Close more than once is safe.
func (b *Backend) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true
	return b.dc.Close()
}
