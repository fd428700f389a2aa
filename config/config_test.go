package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}

	if cfg.World.Width <= 0 || cfg.World.Height <= 0 {
		t.Errorf("world dimensions = %dx%d, want positive", cfg.World.Width, cfg.World.Height)
	}
	if cfg.Species.Count < 1 {
		t.Errorf("species count = %d, want >= 1", cfg.Species.Count)
	}
	if cfg.Telemetry.StatsWindowSteps < 1 {
		t.Errorf("stats window = %d, want >= 1", cfg.Telemetry.StatsWindowSteps)
	}
	if cfg.Screen.TargetFPS <= 0 {
		t.Errorf("target fps = %d, want positive", cfg.Screen.TargetFPS)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte("world:\n  width: 48\nspecies:\n  count: 3\n")
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.World.Width != 48 {
		t.Errorf("world width = %d, want overridden 48", cfg.World.Width)
	}
	if cfg.Species.Count != 3 {
		t.Errorf("species count = %d, want overridden 3", cfg.Species.Count)
	}
	// Fields absent from the file keep their defaults.
	if cfg.World.Height <= 0 {
		t.Errorf("world height = %d, want default preserved", cfg.World.Height)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load of missing file succeeded")
	}
}

func TestApplyFloors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte("species:\n  count: 0\ntelemetry:\n  stats_window_steps: -5\n  perf_window: 0\n")
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Species.Count != 1 {
		t.Errorf("species count = %d, want floored to 1", cfg.Species.Count)
	}
	if cfg.Telemetry.StatsWindowSteps != 1 {
		t.Errorf("stats window = %d, want floored to 1", cfg.Telemetry.StatsWindowSteps)
	}
	if cfg.Telemetry.PerfWindow != 60 {
		t.Errorf("perf window = %d, want floored to 60", cfg.Telemetry.PerfWindow)
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	cfg.World.Width = 77

	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML error: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("re-loading written config: %v", err)
	}
	if loaded.World.Width != 77 {
		t.Errorf("round-tripped width = %d, want 77", loaded.World.Width)
	}
}
