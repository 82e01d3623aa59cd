// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/naga"
	"github.com/gogpu/ui/render"
)

//go:embed shaders/quad.wgsl
var quadShaderSource string

// Quad is one instance of the rect pipeline in pixel coordinates.
// Color is premultiplied RGBA.
type Quad struct {
	X, Y, Width, Height float32
	Color               [4]float32
}

// QuadDrawer is implemented by frame drawers that can draw instanced quads.
// shader is the SPIR-V of [QuadShaderSource] with entry points vs_main and
// fs_main; viewport is the target size in pixels.
type QuadDrawer interface {
	DrawQuads(shader []uint32, viewport [2]float32, quads []Quad) error
}

// QuadShaderSource returns the WGSL source of the quad pipeline.
func QuadShaderSource() string {
	return quadShaderSource
}

var (
	quadShaderOnce  sync.Once
	quadShaderSPIRV []uint32
	quadShaderErr   error
)

// QuadShader returns the quad pipeline compiled to SPIR-V words.
// Compilation runs once per process.
func QuadShader() ([]uint32, error) {
	quadShaderOnce.Do(func() {
		quadShaderSPIRV, quadShaderErr = compileShader(quadShaderSource)
	})
	return quadShaderSPIRV, quadShaderErr
}

func compileShader(source string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(source)
	if err != nil {
		return nil, fmt.Errorf("gpu: compile quad shader: %w", err)
	}

	// SPIR-V is little-endian 32-bit words
	code := make([]uint32, len(spirvBytes)/4)
	for i := range code {
		code[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return code, nil
}

// Quads converts the solid rectangles of scene to quad instances. The
// first quad clears the viewport to background.
func Quads(scene *render.Scene, background gg.RGBA, width, height int) []Quad {
	rects := scene.Rects()
	quads := make([]Quad, 0, len(rects)+1)
	quads = append(quads, Quad{
		Width:  float32(width),
		Height: float32(height),
		Color:  premultiply(background),
	})
	for _, r := range rects {
		if r.Rect.IsEmpty() || r.Color.A <= 0 {
			continue
		}
		quads = append(quads, Quad{
			X:      float32(r.Rect.X),
			Y:      float32(r.Rect.Y),
			Width:  float32(r.Rect.Width),
			Height: float32(r.Rect.Height),
			Color:  premultiply(r.Color),
		})
	}
	return quads
}

func premultiply(c gg.RGBA) [4]float32 {
	return [4]float32{
		float32(c.R * c.A),
		float32(c.G * c.A),
		float32(c.B * c.A),
		float32(c.A),
	}
}
