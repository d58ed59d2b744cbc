package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.NumOfTrails != 10 {
		t.Errorf("expected 10 trails, got %d", cfg.NumOfTrails)
	}
	if cfg.LifetimeSeconds() != 10.0 {
		t.Errorf("expected 10s lifetime, got %f", cfg.LifetimeSeconds())
	}
	if cfg.Dt() != 0.005 {
		t.Errorf("expected dt 0.005, got %f", cfg.Dt())
	}
	if cfg.Sigma != 10 || cfg.Rho != 28 {
		t.Errorf("unexpected lorenz parameters: sigma=%f rho=%f", cfg.Sigma, cfg.Rho)
	}
}

func TestTickRateClamp(t *testing.T) {
	tests := []struct {
		rate     int
		expected int
	}{
		{120, 120},
		{1, 1},
		{0, 1},
		{-5, 1},
	}

	for _, tt := range tests {
		cfg := DefaultConfig()
		cfg.PhysicsRefreshRate = tt.rate
		if got := cfg.TickRate(); got != tt.expected {
			t.Errorf("rate %d: expected clamp to %d, got %d", tt.rate, tt.expected, got)
		}
	}
}

func TestGeneration(t *testing.T) {
	cfg := DefaultConfig()
	g0 := cfg.Generation()

	cfg.TrailLifetime = 20
	cfg.Touch()

	if cfg.Generation() == g0 {
		t.Error("generation did not advance after Touch")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "attractor.yaml")

	cfg := DefaultConfig()
	cfg.NumOfTrails = 7
	cfg.TrailLifetime = 42
	cfg.Rho = 99.5

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.NumOfTrails != 7 || loaded.TrailLifetime != 42 || loaded.Rho != 99.5 {
		t.Errorf("round trip mismatch: %+v", loaded)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("classic")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.NumOfTrails != 10 {
		t.Errorf("expected 10 trails, got %d", cfg.NumOfTrails)
	}

	// Presets are copies; mutating one must not leak into the table.
	cfg.NumOfTrails = 1
	if GetPreset("classic").NumOfTrails != 10 {
		t.Error("preset table mutated through returned copy")
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) == 0 {
		t.Error("expected presets")
	}
}
