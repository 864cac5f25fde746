package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultLanderConfig(t *testing.T) {
	cfg := DefaultLanderConfig()

	if cfg.World.Width != 800 || cfg.World.Height != 600 {
		t.Errorf("unexpected world size %dx%d", cfg.World.Width, cfg.World.Height)
	}
	if cfg.Lander.Mass != 10000 {
		t.Errorf("Mass = %v, want 10000", cfg.Lander.Mass)
	}
	if cfg.Lander.MaxFuel != 1000 {
		t.Errorf("MaxFuel = %v, want 1000", cfg.Lander.MaxFuel)
	}
	if cfg.Physics.Gravity != 1.62 {
		t.Errorf("Gravity = %v, want 1.62", cfg.Physics.Gravity)
	}
	if cfg.Physics.MaxStep != 0.1 {
		t.Errorf("MaxStep = %v, want 0.1", cfg.Physics.MaxStep)
	}
	if cfg.Terrain.PadWidth < cfg.Lander.Width {
		t.Errorf("PadWidth %v is narrower than the lander %v", cfg.Terrain.PadWidth, cfg.Lander.Width)
	}
}

func TestGravityForPreset(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		want   float64
	}{
		{DifficultyEasy, 1.0},
		{DifficultyNormal, 1.62},
		{DifficultyHard, 2.0},
		{DifficultyPreset("bogus"), 1.62},
	}

	for _, tt := range tests {
		if got := GravityForPreset(tt.preset); got != tt.want {
			t.Errorf("GravityForPreset(%q) = %v, want %v", tt.preset, got, tt.want)
		}
	}
}

func TestApplyLanderPreset(t *testing.T) {
	cfg := DefaultLanderConfig()

	if err := ApplyLanderPreset(&cfg, DifficultyHard); err != nil {
		t.Fatalf("ApplyLanderPreset: %v", err)
	}
	if cfg.Physics.Gravity != 2.0 {
		t.Errorf("Gravity = %v, want 2.0", cfg.Physics.Gravity)
	}

	if err := ApplyLanderPreset(&cfg, DifficultyPreset("brutal")); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestLoadLanderCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lander.yaml")

	content := []byte("physics:\n  gravity: 3.7\nterrain:\n  pad_count: 5\n")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}

	cfg, err := LoadLander(path)
	if err != nil {
		t.Fatalf("LoadLander: %v", err)
	}
	if cfg.Physics.Gravity != 3.7 {
		t.Errorf("Gravity = %v, want 3.7", cfg.Physics.Gravity)
	}
	if cfg.Terrain.PadCount != 5 {
		t.Errorf("PadCount = %v, want 5", cfg.Terrain.PadCount)
	}
	// Values the file does not mention keep their defaults.
	if cfg.Lander.MaxFuel != 1000 {
		t.Errorf("MaxFuel = %v, want default 1000", cfg.Lander.MaxFuel)
	}
}

func TestLoadLanderMissingCustomPath(t *testing.T) {
	if _, err := LoadLander("/nonexistent/lander.yaml"); err == nil {
		t.Error("expected error for missing explicit config path")
	}
}

func TestNormalizeWidensPad(t *testing.T) {
	cfg := DefaultLanderConfig()
	cfg.Terrain.PadWidth = 1
	cfg.Normalize()

	if cfg.Terrain.PadWidth != cfg.Lander.Width {
		t.Errorf("PadWidth = %v, want %v", cfg.Terrain.PadWidth, cfg.Lander.Width)
	}
}
