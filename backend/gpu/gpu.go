// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/integration/ggcanvas"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/ui"
	"github.com/gogpu/ui/backend"
	"github.com/gogpu/ui/backend/cpu"
	"github.com/gogpu/ui/engine"
	"github.com/gogpu/ui/env"
	"github.com/gogpu/ui/layout"
	"github.com/gogpu/ui/render"
	"github.com/gogpu/ui/textmetrics"
	"github.com/gogpu/ui/tree"
)

// Surface errors. Surfaces report them, possibly wrapped, from AcquireFrame
// and PresentFrame.
var (
	// ErrSurfaceLost means the surface must be reconfigured before use.
	ErrSurfaceLost = errors.New("gpu: surface lost")

	// ErrSurfaceOutdated means the surface no longer matches its window,
	// typically after a resize.
	ErrSurfaceOutdated = errors.New("gpu: surface outdated")
)

// Construction errors.
var (
	ErrNilProvider = errors.New("gpu: nil device provider")
	ErrNilSurface  = errors.New("gpu: nil surface")
)

// Surface is a swapchain the backend presents to.
type Surface interface {
	// Size returns the surface size in pixels.
	Size() (width, height int)

	// AcquireFrame returns the drawer for the next swapchain image.
	AcquireFrame() (gpucontext.TextureDrawer, error)

	// PresentFrame presents the acquired image.
	PresentFrame() error

	// Reconfigure recreates the swapchain at the given size.
	Reconfigure(width, height int) error
}

var (
	_ backend.Backend = (*Backend)(nil)
	_ engine.Surface  = (*Backend)(nil)
)

// Backend presents frames to a GPU surface.
type Backend struct {
	provider gpucontext.DeviceProvider
	surface  Surface
	eng      *engine.Engine
	format   gputypes.TextureFormat
	shaper   *textmetrics.Shaper
	quads    bool

	canvas     *ggcanvas.Canvas
	background gg.RGBA
	presentErr error
	closed     bool
}

// New creates a backend presenting to surface with the device of provider.
func New(provider gpucontext.DeviceProvider, surface Surface, opts ...Option) (*Backend, error) {
	if provider == nil {
		return nil, ErrNilProvider
	}
	if surface == nil {
		return nil, ErrNilSurface
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	b := &Backend{
		provider:   provider,
		surface:    surface,
		eng:        engine.New(o.engineOpts...),
		format:     provider.SurfaceFormat(),
		quads:      !o.noQuads,
		background: gg.Transparent,
	}

	// Software adapters run shaders on the CPU; the canvas path is cheaper.
	info := provider.AdapterInfo()
	if info.Type == gpucontext.AdapterTypeSoftware {
		b.quads = false
	}

	if !o.noText {
		b.shaper = o.shaper
		if b.shaper == nil {
			s, err := textmetrics.NewShaper()
			if err != nil {
				return nil, err
			}
			b.shaper = s
		}
	}

	ui.Logger().Info("gpu: backend created",
		"format", b.format.String(),
		"headless", b.format == gputypes.TextureFormatUndefined,
		"adapter", info.Type.String(),
		"quads", b.quads,
	)
	return b, nil
}

// Name implements backend.Backend.
func (b *Backend) Name() string { return backend.GPU }

// Format returns the preferred surface format reported by the provider.
func (b *Backend) Format() gputypes.TextureFormat { return b.format }

// Engine returns the frame engine, for reading frames and statistics.
func (b *Backend) Engine() *engine.Engine { return b.eng }

// Render runs one frame. Surface failures yield Idle and a nil error; only
// layout errors are returned.
func (b *Backend) Render(t *tree.RenderTree, e *env.Environment) (engine.FrameResult, error) {
	if b.closed {
		return engine.Idle, backend.ErrClosed
	}
	if e == nil {
		e = env.Default()
	}
	b.background = e.Theme.Background
	b.presentErr = nil

	res, err := b.eng.Render(t, e, b)
	if b.presentErr == nil {
		return res, err
	}
	b.recover(t, b.presentErr)
	return engine.Idle, nil
}

func (b *Backend) recover(t *tree.RenderTree, err error) {
	log := ui.Logger()
	switch {
	case errors.Is(err, ErrSurfaceLost):
		w, h := b.surface.Size()
		if rerr := b.surface.Reconfigure(w, h); rerr != nil {
			log.Warn("gpu: reconfigure failed", "width", w, "height", h, "err", rerr)
		}
		markRoot(t)
		log.Warn("gpu: surface lost, reconfigured", "width", w, "height", h)
	case errors.Is(err, ErrSurfaceOutdated):
		markRoot(t)
		log.Debug("gpu: surface outdated, frame skipped")
	default:
		log.Warn("gpu: present failed", "err", err)
	}
}

func markRoot(t *tree.RenderTree) {
	if root, ok := t.Root(); ok {
		t.MarkDirty(root, tree.DirtyLayout)
	}
}

// Size implements engine.Surface.
func (b *Backend) Size() layout.Size {
	w, h := b.surface.Size()
	return layout.Size{Width: float64(w), Height: float64(h)}
}

// Clear implements engine.Surface. Both paint paths clear to the theme
// background when the frame is drawn.
func (b *Backend) Clear() {}

// Present implements engine.Surface.
func (b *Backend) Present(scene *render.Scene) error {
	err := b.present(scene)
	if err != nil {
		b.presentErr = err
	}
	return err
}

func (b *Backend) present(scene *render.Scene) error {
	drawer, err := b.surface.AcquireFrame()
	if err != nil {
		return err
	}
	w, h := b.surface.Size()

	drawn := false
	if qd, ok := drawer.(QuadDrawer); ok && b.quads && scene.OnlyRects() {
		drawn, err = b.drawQuads(qd, scene, w, h)
		if err != nil {
			return err
		}
	}
	if !drawn {
		if err := b.drawCanvas(drawer, scene, w, h); err != nil {
			return err
		}
	}
	return b.surface.PresentFrame()
}

// drawQuads reports false when the shader is unavailable so the caller
// falls back to the canvas path.
func (b *Backend) drawQuads(qd QuadDrawer, scene *render.Scene, w, h int) (bool, error) {
	shader, err := QuadShader()
	if err != nil {
		ui.Logger().Warn("gpu: quad shader unavailable, using canvas", "err", err)
		b.quads = false
		return false, nil
	}
	quads := Quads(scene, b.background, w, h)
	if err := qd.DrawQuads(shader, [2]float32{float32(w), float32(h)}, quads); err != nil {
		return false, fmt.Errorf("gpu: draw quads: %w", err)
	}
	ui.Logger().Debug("gpu: drew quads", "count", len(quads))
	return true, nil
}

func (b *Backend) drawCanvas(drawer gpucontext.TextureDrawer, scene *render.Scene, w, h int) error {
	if b.canvas == nil {
		c, err := ggcanvas.New(b.provider, w, h)
		if err != nil {
			return fmt.Errorf("gpu: create canvas: %w", err)
		}
		b.canvas = c
	} else if err := b.canvas.Resize(w, h); err != nil {
		return fmt.Errorf("gpu: resize canvas: %w", err)
	}

	var rerr error
	err := b.canvas.Draw(func(dc *gg.Context) {
		dc.ClearWithColor(b.background)
		var painter render.TextPainter
		if b.shaper != nil {
			painter = cpu.NewFontPainter(dc, b.shaper)
		}
		rerr = cpu.Rasterize(dc, scene, painter)
	})
	if err != nil {
		return fmt.Errorf("gpu: draw canvas: %w", err)
	}
	if rerr != nil {
		return rerr
	}
	if err := b.canvas.RenderTo(drawer); err != nil {
		return fmt.Errorf("gpu: upload canvas: %w", err)
	}
	return nil
}

// Close releases the canvas. The provider and surface are owned by the
// caller. Calling Close more than once is safe.
func (b *Backend) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true
	if b.canvas != nil {
		if err := b.canvas.Close(); err != nil {
			ui.Logger().Warn("gpu: close canvas", slog.Any("err", err))
		}
		b.canvas = nil
	}
	return nil
}
