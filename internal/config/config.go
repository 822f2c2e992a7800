// Package config handles loading and validating the board configuration.
package config

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds the complete application configuration.
type Config struct {
	Surface  SurfaceConfig  `toml:"surface"`
	Defaults DefaultsConfig `toml:"defaults"`
	Export   ExportConfig   `toml:"export"`
}

// SurfaceConfig fixes the drawing surface. The dimensions are chosen once
// at startup and never change afterwards, even if the window resizes.
type SurfaceConfig struct {
	Width      int     `toml:"width"`
	Height     int     `toml:"height"`
	Scale      float64 `toml:"scale"`
	Background string  `toml:"background"`
}

// DefaultsConfig seeds the toolbar state.
type DefaultsConfig struct {
	PenWidth    float64 `toml:"pen_width"`
	EraserWidth float64 `toml:"eraser_width"`
	FontSize    float64 `toml:"font_size"`
	Color       string  `toml:"color"`
}

// ExportConfig controls where export artifacts land.
type ExportConfig struct {
	Directory string `toml:"directory"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Surface: SurfaceConfig{
			Width:      800,
			Height:     600,
			Scale:      1,
			Background: "#ffffff",
		},
		Defaults: DefaultsConfig{
			PenWidth:    3,
			EraserWidth: 20,
			FontSize:    20,
			Color:       "#000000",
		},
		Export: ExportConfig{
			Directory: ".",
		},
	}
}

// Load reads the configuration file at path, falling back to defaults when
// path is empty or the file does not exist. Values absent from the file
// keep their defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for values the board cannot run with.
func (c Config) Validate() error {
	if c.Surface.Width <= 0 || c.Surface.Height <= 0 {
		return fmt.Errorf("surface size %dx%d is not positive", c.Surface.Width, c.Surface.Height)
	}
	if c.Surface.Scale <= 0 {
		return fmt.Errorf("surface scale %g is not positive", c.Surface.Scale)
	}
	if c.Defaults.PenWidth <= 0 || c.Defaults.EraserWidth <= 0 {
		return fmt.Errorf("stroke widths must be positive")
	}
	if c.Defaults.FontSize <= 0 {
		return fmt.Errorf("font size must be positive")
	}
	if _, err := ParseColor(c.Surface.Background); err != nil {
		return fmt.Errorf("surface background: %w", err)
	}
	if _, err := ParseColor(c.Defaults.Color); err != nil {
		return fmt.Errorf("default color: %w", err)
	}
	return nil
}

// ParseColor parses #rrggbb or #rrggbbaa hex notation.
func ParseColor(s string) (color.NRGBA, error) {
	hexPart := strings.TrimPrefix(s, "#")
	if len(s) == len(hexPart) || (len(hexPart) != 6 && len(hexPart) != 8) {
		return color.NRGBA{}, fmt.Errorf("color %q is not #rrggbb or #rrggbbaa", s)
	}
	v, err := strconv.ParseUint(hexPart, 16, 64)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	c := color.NRGBA{A: 255}
	if len(hexPart) == 8 {
		c.A = uint8(v)
		v >>= 8
	}
	c.B = uint8(v)
	c.G = uint8(v >> 8)
	c.R = uint8(v >> 16)
	return c, nil
}
