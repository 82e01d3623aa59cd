// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package cli

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/gogpu/gg"

	"github.com/gogpu/ui/env"
)

// Config holds the demo settings. Zero fields keep their defaults.
type Config struct {
	Width    int     `toml:"width"`
	Height   int     `toml:"height"`
	Theme    string  `toml:"theme"`
	Accent   string  `toml:"accent"`
	FontSize float64 `toml:"font_size"`
	Columns  int     `toml:"columns"`
	Backend  string  `toml:"backend"`
	Output   string  `toml:"output"`
	DOT      string  `toml:"dot"`
	SVG      string  `toml:"svg"`
}

// DefaultConfig returns the settings used without a config file.
func DefaultConfig() Config {
	return Config{
		Width:    480,
		Height:   360,
		Theme:    "light",
		FontSize: env.DefaultFontSize,
		Columns:  env.DefaultTerminalWidth,
		Backend:  "cpu",
		Output:   "uidemo.png",
	}
}

var errInvalidConfig = errors.New("invalid config")

// LoadConfig reads a TOML file over the defaults. An empty path returns
// the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%w: unknown key %q in %s", errInvalidConfig, undecoded[0].String(), path)
	}
	return cfg, cfg.Validate()
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", errInvalidConfig, c.Width, c.Height)
	}
	switch c.Theme {
	case "", "light", "dark":
	default:
		return fmt.Errorf("%w: theme %q (want light or dark)", errInvalidConfig, c.Theme)
	}
	if c.FontSize < 0 {
		return fmt.Errorf("%w: font_size %v", errInvalidConfig, c.FontSize)
	}
	return nil
}

// Environment returns the environment described by c.
func (c Config) Environment() *env.Environment {
	theme := env.DefaultTheme()
	if c.Theme == "dark" {
		theme = env.DarkTheme()
	}
	if c.Accent != "" {
		theme.Accent = gg.Hex(c.Accent)
	}
	if c.FontSize > 0 {
		theme.FontSize = c.FontSize
	}
	e := env.Default().WithTheme(theme)
	if c.Columns > 0 {
		e = e.WithTerminalWidth(c.Columns)
	}
	return e
}
