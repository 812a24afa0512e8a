// Package config loads hexui settings from YAML.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/phanxgames/hexui"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Input   InputConfig   `yaml:"input"`
	Text    TextConfig    `yaml:"text"`
	Buttons ButtonsConfig `yaml:"buttons"`
	HexMap  HexMapConfig  `yaml:"hexmap"`
}

// WindowConfig holds window settings.
type WindowConfig struct {
	Title   string `yaml:"title"`
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	ShowFPS bool   `yaml:"show_fps"`
}

// InputConfig holds pointer classification settings.
type InputConfig struct {
	TapTolerancePx int `yaml:"tap_tolerance_px"` // pixel threshold below which a press-release pair is a tap
}

// TextConfig holds label sizing.
type TextConfig struct {
	LinesPerScreen float64 `yaml:"lines_per_screen"` // basic text size = window height / this
	SmallScale     float64 `yaml:"small_scale"`      // small text size = basic * this
}

// ButtonsConfig holds button behaviour.
type ButtonsConfig struct {
	SlideSeconds float32 `yaml:"slide_seconds"`
}

// HexMapConfig holds the demo map layout.
type HexMapConfig struct {
	Cols int     `yaml:"cols"`
	Rows int     `yaml:"rows"`
	Zoom float64 `yaml:"zoom"` // pixels per world unit
}

// Default returns the embedded defaults.
func Default() *Config {
	cfg, err := Parse(nil)
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults invalid: %v", err))
	}
	return cfg
}

// Parse overlays data on the embedded defaults and validates the result.
// Nil or empty data yields the defaults.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(defaultsYAML, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse embedded defaults: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Load reads a YAML file and overlays it on the defaults. An empty path
// yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Parse(nil)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Validate checks that every value is usable.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Input.TapTolerancePx <= 0 {
		return fmt.Errorf("input.tap_tolerance_px must be positive, got %d", c.Input.TapTolerancePx)
	}
	if c.Text.LinesPerScreen <= 0 {
		return fmt.Errorf("text.lines_per_screen must be positive, got %v", c.Text.LinesPerScreen)
	}
	if c.Text.SmallScale <= 0 || c.Text.SmallScale > 1 {
		return fmt.Errorf("text.small_scale must be in (0, 1], got %v", c.Text.SmallScale)
	}
	if c.Buttons.SlideSeconds < 0 {
		return fmt.Errorf("buttons.slide_seconds must not be negative, got %v", c.Buttons.SlideSeconds)
	}
	if c.HexMap.Cols <= 0 || c.HexMap.Rows <= 0 {
		return fmt.Errorf("hexmap size must be positive, got %dx%d", c.HexMap.Cols, c.HexMap.Rows)
	}
	if c.HexMap.Zoom <= 0 {
		return fmt.Errorf("hexmap.zoom must be positive, got %v", c.HexMap.Zoom)
	}
	return nil
}

// TapClassifier returns the configured tap classifier.
func (c *Config) TapClassifier() hexui.TapClassifier {
	return hexui.TapClassifier{TolerancePx: c.Input.TapTolerancePx}
}

// TextSizes returns the configured label sizing.
func (c *Config) TextSizes() hexui.TextSizes {
	return hexui.TextSizes{LinesPerScreen: c.Text.LinesPerScreen, SmallScale: c.Text.SmallScale}
}

// RunConfig returns window settings for hexui.Run.
func (c *Config) RunConfig() hexui.RunConfig {
	return hexui.RunConfig{
		Title:      c.Window.Title,
		Width:      c.Window.Width,
		Height:     c.Window.Height,
		ShowFPS:    c.Window.ShowFPS,
		ClearColor: hexui.Color{R: 0.08, G: 0.08, B: 0.1, A: 1},
	}
}
