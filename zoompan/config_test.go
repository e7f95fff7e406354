package zoompan

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
		ok   bool
	}{
		{"defaults", DefaultConfig(), true},
		{"upper bounds", Config{MaxZoomOut: 1, ZoomSpeed: 1}, true},
		{"zero floor", Config{MaxZoomOut: 0, ZoomSpeed: 0.1}, false},
		{"floor above one", Config{MaxZoomOut: 1.5, ZoomSpeed: 0.1}, false},
		{"negative speed", Config{MaxZoomOut: 0.2, ZoomSpeed: -0.1}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.ok && err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
			if !tc.ok && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestParseConfigKeepsDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte("zoom_speed: 0.1\npan_enabled: false\n"))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	want := DefaultConfig()
	want.ZoomSpeed = 0.1
	want.PanEnabled = false
	if cfg != want {
		t.Errorf("Expected %+v, got %+v", want, cfg)
	}
}

func TestParseConfigRejectsInvalid(t *testing.T) {
	if _, err := ParseConfig([]byte("max_zoom_out: 2\n")); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}
	if _, err := ParseConfig([]byte("zoom_speed: [1\n")); err == nil {
		t.Errorf("Expected decode error")
	}
}

func TestLoadConfig(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "zoompan.yaml")
	if err := os.WriteFile(fileName, []byte("max_zoom_out: 0.5\nzoom_enabled: false\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(fileName)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.MaxZoomOut != 0.5 || cfg.ZoomEnabled || cfg.ZoomSpeed != DefaultZoomSpeed {
		t.Errorf("Unexpected config %+v", cfg)
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected not exist error, got %v", err)
	}
}
