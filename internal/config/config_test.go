package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default config should be valid: %v", err)
	}
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Window.Width != 1400 || cfg.Window.FPS != 60 {
		t.Errorf("Expected defaults, got %+v", cfg.Window)
	}
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "goeuclid.yaml")
	data := []byte(`
window:
  width: 800
  fps: 30
handle_radius: 20
theme:
  background: "#ffffff"
  selected: "#ff000080"
  font_size: 24
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.Window.Width != 800 || cfg.Window.Height != 900 || cfg.Window.FPS != 30 {
		t.Errorf("Window failed: got %+v", cfg.Window)
	}
	if cfg.HandleRadius != 20 {
		t.Errorf("HandleRadius failed: expected 20, got %v", cfg.HandleRadius)
	}

	theme, err := cfg.Theme.Resolve()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if theme.Background != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("Background failed: got %v", theme.Background)
	}
	if theme.Selected != (color.RGBA{255, 0, 0, 128}) {
		t.Errorf("Selected failed: got %v", theme.Selected)
	}
	if theme.FontSize != 24 {
		t.Errorf("FontSize failed: expected 24, got %v", theme.FontSize)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("GOEUCLID_WIDTH", "1024")
	t.Setenv("GOEUCLID_FPS", "not-a-number")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Window.Width != 1024 {
		t.Errorf("Width override failed: expected 1024, got %d", cfg.Window.Width)
	}
	if cfg.Window.FPS != 60 {
		t.Errorf("Invalid override should be ignored, got fps %d", cfg.Window.FPS)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected an error for a missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	os.WriteFile(path, []byte("theme:\n  line: \"#12\"\n"), 0o644)
	if _, err := Load(path); err == nil {
		t.Error("Expected an error for a malformed colour")
	}

	path = filepath.Join(t.TempDir(), "size.yaml")
	os.WriteFile(path, []byte("window:\n  width: -5\n"), 0o644)
	if _, err := Load(path); err == nil {
		t.Error("Expected an error for a negative width")
	}
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#0f1219")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if c != (color.RGBA{15, 18, 25, 255}) {
		t.Errorf("ParseColor failed: got %v", c)
	}

	for _, bad := range []string{"", "#fff", "#gggggg", "12345"} {
		if _, err := ParseColor(bad); err == nil {
			t.Errorf("ParseColor(%q) should fail", bad)
		}
	}
}
