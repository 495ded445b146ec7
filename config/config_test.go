package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}

	if cfg.Screen.Width != 800 || cfg.Screen.Height != 600 {
		t.Errorf("expected 800x600 screen, got %dx%d", cfg.Screen.Width, cfg.Screen.Height)
	}
	if math.Abs(cfg.Circle.OpeningSize-math.Pi/8) > 1e-12 {
		t.Errorf("expected opening size pi/8, got %v", cfg.Circle.OpeningSize)
	}
	if len(cfg.Ball.Palette) != 32 {
		t.Errorf("expected 32 palette entries, got %d", len(cfg.Ball.Palette))
	}
	if cfg.Ball.Palette[0] != [3]uint8{231, 76, 60} {
		t.Errorf("unexpected first palette entry %v", cfg.Ball.Palette[0])
	}
	if cfg.Ball.SpawnOnEscape != 2 {
		t.Errorf("expected 2 spawns per escape, got %d", cfg.Ball.SpawnOnEscape)
	}
}

func TestDerivedValues(t *testing.T) {
	cfg := Defaults()

	if cfg.Derived.CenterX != 400 || cfg.Derived.CenterY != 300 {
		t.Errorf("expected center (400, 300), got (%v, %v)", cfg.Derived.CenterX, cfg.Derived.CenterY)
	}
	if cfg.Derived.CollisionRadius != 195 {
		t.Errorf("expected collision radius 195, got %v", cfg.Derived.CollisionRadius)
	}
	if cfg.Derived.SpawnRadius != 194 {
		t.Errorf("expected spawn radius 194, got %v", cfg.Derived.SpawnRadius)
	}
	if cfg.Derived.FrameBudget != 1500*time.Millisecond {
		t.Errorf("expected 1.5s frame budget, got %v", cfg.Derived.FrameBudget)
	}
	if cfg.Derived.MonitorInterval != time.Second {
		t.Errorf("expected 1s monitor interval, got %v", cfg.Derived.MonitorInterval)
	}
	if cfg.Derived.StatsWindowTicks != 600 {
		t.Errorf("expected 600 ticks per stats window, got %d", cfg.Derived.StatsWindowTicks)
	}
}

func TestLoadOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "override.yaml")
	data := []byte("circle:\n  rotation_step: 0.05\nphysics:\n  elastic: false\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Circle.RotationStep != 0.05 {
		t.Errorf("expected overridden rotation step 0.05, got %v", cfg.Circle.RotationStep)
	}
	if cfg.Physics.Elastic {
		t.Error("expected elastic to be overridden to false")
	}
	// Untouched fields keep their defaults
	if cfg.Circle.Radius != 200 {
		t.Errorf("expected default radius 200, got %v", cfg.Circle.Radius)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero width", "screen:\n  width: 0\n"},
		{"tiny circle", "circle:\n  radius: 5\n"},
		{"empty window", "monitor:\n  cpu_window: 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.yaml")
			if err := os.WriteFile(path, []byte(tt.yaml), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg := Defaults()
	cfg.Circle.RotationStep = 0.03

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load of snapshot failed: %v", err)
	}
	if loaded.Circle.RotationStep != 0.03 {
		t.Errorf("expected snapshot rotation step 0.03, got %v", loaded.Circle.RotationStep)
	}
}
