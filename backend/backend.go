// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package backend

import (
	"errors"

	"github.com/gogpu/ui/engine"
	"github.com/gogpu/ui/env"
	"github.com/gogpu/ui/tree"
)

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when a requested backend is not
	// registered or its factory failed.
	ErrBackendNotAvailable = errors.New("backend: not available")

	// ErrClosed is returned when a backend is used after Close.
	ErrClosed = errors.New("backend: closed")
)

// Standard backend names.
const (
	CPU      = "cpu"
	GPU      = "gpu"
	Terminal = "terminal"
)

// Backend renders a render tree to a target.
type Backend interface {
	// Name returns the backend identifier (e.g. "cpu", "terminal").
	Name() string

	// Render runs one frame. It returns engine.Idle when nothing was dirty
	// or the frame could not be presented.
	Render(t *tree.RenderTree, e *env.Environment) (engine.FrameResult, error)

	// Close releases the backend's resources. The backend must not be
	// used afterwards.
	Close() error
}
