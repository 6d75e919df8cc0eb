package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/AlekseyPolishchuk/time-tracker/internal/models"
)

func TestNewDefaults(t *testing.T) {
	cfg, err := New()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.Display.Theme != models.ThemeDarkest {
		t.Errorf("expected default theme, but got %q", cfg.Display.Theme)
	}

	if cfg.Display.DotColor != DefaultDotColor {
		t.Errorf("expected default accent, but got %q", cfg.Display.DotColor)
	}
}

func TestNewRejectsInvalidTheme(t *testing.T) {
	cfg, err := New(func(c *Config) error {
		c.Display.Theme = models.Theme("sepia")
		return nil
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.Display.Theme != DefaultTheme {
		t.Errorf("expected invalid theme to fall back, but got %q", cfg.Display.Theme)
	}
}

func TestWithViperConfigWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")

	cfg, err := New(WithViperConfig(path))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected config file to be created: %v", err)
	}

	if cfg.Display.Theme != DefaultTheme || cfg.Settings.Notify {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestWithViperConfigReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")

	content := []byte(`display:
  theme: night
  dot_color: "#ff8800"
settings:
  notify: true
  save_cmd: "echo saved"
`)

	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	cfg, err := New(WithViperConfig(path))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.Display.Theme != models.ThemeNight {
		t.Errorf("expected night theme, but got %q", cfg.Display.Theme)
	}

	if cfg.Display.DotColor != "#ff8800" {
		t.Errorf("expected configured accent, but got %q", cfg.Display.DotColor)
	}

	if !cfg.Settings.Notify || cfg.Settings.SaveCmd != "echo saved" {
		t.Errorf("unexpected settings: %+v", cfg.Settings)
	}
}
