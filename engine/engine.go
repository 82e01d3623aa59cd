// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package engine

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/ui"
	"github.com/gogpu/ui/env"
	"github.com/gogpu/ui/layout"
	"github.com/gogpu/ui/render"
	"github.com/gogpu/ui/tree"
)

// FrameResult reports what a Render call did.
type FrameResult uint8

const (
	// Idle means nothing was dirty, or the frame could not be presented.
	// The surface was not updated.
	Idle FrameResult = iota

	// Presented means a full layout and paint ran and the scene was
	// handed to the surface.
	Presented
)

func (r FrameResult) String() string {
	if r == Presented {
		return "presented"
	}
	return "idle"
}

// Surface is the presentation target of a pixel backend.
type Surface interface {
	// Size returns the viewport in layout units.
	Size() layout.Size

	// Clear resets the target before a new frame is painted.
	Clear()

	// Present consumes the frame's scene.
	Present(scene *render.Scene) error
}

// Engine runs frames for pixel backends.
type Engine struct {
	opts   options
	layout *LayoutEngine
	stats  render.Stats
}

// New returns an Engine configured by opts.
func New(opts ...Option) *Engine {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Engine{
		opts:   o,
		layout: NewLayoutEngine(o.maxDepth),
	}
}

func (e *Engine) logger() *slog.Logger {
	if e.opts.logger != nil {
		return e.opts.logger
	}
	return ui.Logger()
}

// LayoutEngine returns the engine's layout driver. Frames assigned by the
// last presented frame can be read from it.
func (e *Engine) LayoutEngine() *LayoutEngine {
	return e.layout
}

// Stats returns the accumulated frame counters.
func (e *Engine) Stats() render.Stats {
	return e.stats
}

// Update drains the dirty queue and runs the reactive hooks of nodes
// marked Reactive. It reports whether anything was dirty.
func (e *Engine) Update(t *tree.RenderTree, environment *env.Environment) bool {
	dirty := t.DrainDirty()
	for _, d := range dirty {
		if d.Reason != tree.DirtyReactive {
			continue
		}
		n, ok := t.Node(d.ID)
		if !ok {
			continue
		}
		if r, ok := n.(tree.Reactive); ok {
			r.UpdateReactive(environment)
		}
	}
	if len(dirty) > 0 {
		e.logger().Debug("engine: drained dirty nodes", "count", len(dirty))
	}
	return len(dirty) > 0
}

// Paint lays out the whole tree into viewport and records a pre-order
// paint traversal.
func (e *Engine) Paint(t *tree.RenderTree, environment *env.Environment, viewport layout.Size) (*render.Scene, error) {
	if err := e.layout.Layout(t, layout.Rect{Width: viewport.Width, Height: viewport.Height}, environment, e.opts.viewportFill); err != nil {
		return nil, err
	}
	scene := render.NewScene()
	ctx := render.NewCtx(scene, environment)
	t.Walk(func(id tree.NodeID, n tree.Node, _ int) bool {
		r, _ := e.layout.Frame(id)
		ctx.SetBounds(r)
		n.Paint(ctx)
		return true
	})
	return scene, nil
}

// Render runs one frame against surface.
//
// A failed Present yields Idle together with the wrapped surface error;
// backends decide whether that error is fatal. A failed layout leaves the
// surface untouched and re-marks the root.
func (e *Engine) Render(t *tree.RenderTree, environment *env.Environment, surface Surface) (FrameResult, error) {
	if !e.Update(t, environment) {
		e.stats.RecordIdle()
		return Idle, nil
	}

	scene, err := e.Paint(t, environment, surface.Size())
	if err != nil {
		// Keep the previous frame on screen and retry on the next frame.
		if root, ok := t.Root(); ok {
			t.MarkDirty(root, tree.DirtyLayout)
		}
		e.stats.RecordIdle()
		return Idle, err
	}
	surface.Clear()
	if err := surface.Present(scene); err != nil {
		e.stats.RecordIdle()
		return Idle, fmt.Errorf("engine: present: %w", err)
	}
	e.stats.RecordPresented(scene)
	e.logger().Debug("engine: frame presented", "commands", scene.Len(), "nodes", t.Len())
	return Presented, nil
}
