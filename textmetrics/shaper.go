// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package textmetrics

import (
	"bytes"
	"fmt"
	"math"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/ui/env"
	"github.com/gogpu/ui/layout"
)

// maxCacheEntries bounds the measurement cache; it is dropped when full.
const maxCacheEntries = 4096

type fontPair struct {
	source *text.FontSource
	font   *font.Font
}

func loadFont(data []byte) (fontPair, error) {
	src, err := text.NewFontSource(data)
	if err != nil {
		return fontPair{}, err
	}
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return fontPair{}, err
	}
	return fontPair{source: src, font: face.Font}, nil
}

type cacheKey struct {
	s    string
	size float64
	mono bool
}

// Shaper measures text by shaping it.
//
// Shaper is safe for concurrent use.
type Shaper struct {
	regular fontPair
	mono    fontPair

	mu    sync.Mutex
	hb    shaping.HarfbuzzShaper
	cache map[cacheKey]layout.Size
}

// NewShaper returns a Shaper over Go Regular and Go Mono.
func NewShaper() (*Shaper, error) {
	return NewShaperFromTTF(goregular.TTF, gomono.TTF)
}

// NewShaperFromTTF returns a Shaper over the given proportional and
// monospace font files.
func NewShaperFromTTF(regular, mono []byte) (*Shaper, error) {
	r, err := loadFont(regular)
	if err != nil {
		return nil, fmt.Errorf("textmetrics: regular font: %w", err)
	}
	m, err := loadFont(mono)
	if err != nil {
		return nil, fmt.Errorf("textmetrics: monospace font: %w", err)
	}
	return &Shaper{regular: r, mono: m, cache: make(map[cacheKey]layout.Size)}, nil
}

func (s *Shaper) pair(style env.TextStyle) fontPair {
	if style.Monospace {
		return s.mono
	}
	return s.regular
}

// FontSource returns the gg font source used for style, so painters draw
// with the faces text was measured with.
func (s *Shaper) FontSource(style env.TextStyle) *text.FontSource {
	return s.pair(style).source
}

// MeasureText implements env.TextMeasurer. The width is the shaped advance
// and the height the face's line height, both rounded up to whole pixels.
func (s *Shaper) MeasureText(str string, style env.TextStyle) layout.Size {
	size := style.Size
	if size <= 0 {
		size = env.DefaultFontSize
	}
	key := cacheKey{s: str, size: size, mono: style.Monospace}

	s.mu.Lock()
	defer s.mu.Unlock()
	if sz, ok := s.cache[key]; ok {
		return sz
	}

	p := s.pair(style)
	m := p.source.Face(size).Metrics()
	sz := layout.Size{
		Width:  math.Ceil(s.advance(p.font, str, size)),
		Height: math.Ceil(m.LineHeight()),
	}
	if len(s.cache) >= maxCacheEntries {
		clear(s.cache)
	}
	s.cache[key] = sz
	return sz
}

// advance shapes str left to right and sums the glyph advances.
// Callers hold s.mu.
func (s *Shaper) advance(f *font.Font, str string, size float64) float64 {
	if str == "" {
		return 0
	}
	runes := []rune(str)
	out := s.hb.Shape(shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      font.NewFace(f),
		Size:      fixed.Int26_6(size * 64),
		Script:    scriptOf(runes),
		Language:  language.NewLanguage("en"),
	})
	var total fixed.Int26_6
	for _, g := range out.Glyphs {
		total += g.Advance
	}
	return float64(total) / 64
}

func scriptOf(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
