// Package config loads viewer settings from flags, an optional YAML file and
// the environment.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/philipparndt/goeuclid/pkg/drag"
	"github.com/philipparndt/goeuclid/pkg/surface"
)

// Config holds all viewer settings
type Config struct {
	Window       WindowConfig `yaml:"window"`
	HandleRadius float64      `yaml:"handle_radius"`
	Theme        ThemeConfig  `yaml:"theme"`
}

// WindowConfig holds the initial window geometry and frame rate
type WindowConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	FPS    int `yaml:"fps"`
}

// ThemeConfig holds colours as #rrggbb or #rrggbbaa strings and sizes in pixels
type ThemeConfig struct {
	Background   string  `yaml:"background"`
	Poly         string  `yaml:"poly"`
	Line         string  `yaml:"line"`
	Point        string  `yaml:"point"`
	Draggable    string  `yaml:"draggable"`
	Text         string  `yaml:"text"`
	Selected     string  `yaml:"selected"`
	SelectedPoly string  `yaml:"selected_poly"`
	LineWidth    float64 `yaml:"line_width"`
	PointRadius  float64 `yaml:"point_radius"`
	FontSize     float64 `yaml:"font_size"`
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:  1400,
			Height: 900,
			FPS:    60,
		},
		HandleRadius: drag.DefaultHandleRadius,
		Theme: ThemeConfig{
			Background:   "#0f1219",
			Poly:         "#466eaa5a",
			Line:         "#dcdcdc",
			Point:        "#e6e6e6",
			Draggable:    "#ff8c00",
			Text:         "#f0f0f0",
			Selected:     "#ffdc00",
			SelectedPoly: "#ffdc006e",
			LineWidth:    2,
			PointRadius:  5,
			FontSize:     18,
		},
	}
}

// Load reads the YAML file at path on top of the defaults and applies
// environment overrides. An empty path yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks sizes and colours
func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Window.FPS <= 0 {
		errs = append(errs, fmt.Errorf("fps must be positive, got %d", c.Window.FPS))
	}
	if c.HandleRadius <= 0 {
		errs = append(errs, fmt.Errorf("handle_radius must be positive, got %v", c.HandleRadius))
	}
	if _, err := c.Theme.Resolve(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Resolve converts the theme settings into a surface theme
func (t ThemeConfig) Resolve() (surface.Theme, error) {
	theme := surface.DefaultTheme()

	colors := []struct {
		name  string
		value string
		dst   *color.RGBA
	}{
		{"background", t.Background, &theme.Background},
		{"poly", t.Poly, &theme.Poly},
		{"line", t.Line, &theme.Line},
		{"point", t.Point, &theme.Point},
		{"draggable", t.Draggable, &theme.DraggablePt},
		{"text", t.Text, &theme.Text},
		{"selected", t.Selected, &theme.Selected},
		{"selected_poly", t.SelectedPoly, &theme.SelectedPoly},
	}
	for _, c := range colors {
		if c.value == "" {
			continue
		}
		parsed, err := ParseColor(c.value)
		if err != nil {
			return surface.Theme{}, fmt.Errorf("theme.%s: %w", c.name, err)
		}
		*c.dst = parsed
	}

	if t.LineWidth > 0 {
		theme.LineWidth = t.LineWidth
		theme.SelectedWidth = t.LineWidth * 2
	}
	if t.PointRadius > 0 {
		theme.PointRadius = t.PointRadius
	}
	if t.FontSize > 0 {
		theme.FontSize = t.FontSize
	}
	return theme, nil
}

// ParseColor parses #rrggbb or #rrggbbaa
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid colour %q: expected #rrggbb or #rrggbbaa", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

func applyEnv(cfg *Config) {
	cfg.Window.Width = getEnvAsInt("GOEUCLID_WIDTH", cfg.Window.Width)
	cfg.Window.Height = getEnvAsInt("GOEUCLID_HEIGHT", cfg.Window.Height)
	cfg.Window.FPS = getEnvAsInt("GOEUCLID_FPS", cfg.Window.FPS)
}

func getEnvAsInt(key string, defaultVal int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultVal
}
