package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Expected default config to be valid, got %v", err)
	}
	if cfg.Road.ScreenWidth != 800 || cfg.Road.ScreenHeight != 600 {
		t.Errorf("Expected road screen 800x600, got %.0fx%.0f", cfg.Road.ScreenWidth, cfg.Road.ScreenHeight)
	}
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative road width", func(c *Config) { c.Road.Width = -1 }},
		{"road wider than screen", func(c *Config) { c.Road.Width = 900 }},
		{"no lanes", func(c *Config) { c.Road.Lanes = 0 }},
		{"zero max speed", func(c *Config) { c.Player.MaxSpeed = 0 }},
		{"inverted spawn interval", func(c *Config) { c.Enemy.SpawnIntervalMin, c.Enemy.SpawnIntervalMax = 120, 30 }},
		{"zero start difficulty", func(c *Config) { c.Enemy.StartDifficulty = 0 }},
		{"inverted powerup interval", func(c *Config) { c.PowerUp.IntervalMin, c.PowerUp.IntervalMax = 600, 300 }},
		{"zero tps", func(c *Config) { c.Screen.TPS = 0 }},
		{"negative damage", func(c *Config) { c.Scoring.CollisionDamage = -5 }},
		{"negative hit particles", func(c *Config) { c.Scoring.HitParticles = -1 }},
		{"negative death particles", func(c *Config) { c.Scoring.DeathParticles = -1 }},
		{"negative trail particles", func(c *Config) { c.Effects.TrailParticles = -1 }},
		{"enemy spawn above despawn line", func(c *Config) { c.Enemy.SpawnY = c.Enemy.DespawnTop - 1 }},
		{"enemy spawn on bottom despawn line", func(c *Config) { c.Enemy.SpawnY = c.Enemy.DespawnBottom }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Expected validation error, got nil")
			}
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Expected error to wrap ErrInvalid, got %v", err)
			}
		})
	}
}

func TestLoad_NoFileUsesDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	want := Default()
	if cfg.File != "" {
		t.Errorf("Expected no config file, got %q", cfg.File)
	}
	if cfg.Road.Width != want.Road.Width || cfg.Player.MaxSpeed != want.Player.MaxSpeed {
		t.Errorf("Expected defaults, got road width %.0f max speed %.1f", cfg.Road.Width, cfg.Player.MaxSpeed)
	}
	if cfg.Scoring.PowerUpBonus != 50 {
		t.Errorf("Expected powerup bonus 50, got %d", cfg.Scoring.PowerUpBonus)
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	body := []byte("road:\n  width: 300\nenemy:\n  max_difficulty: 3.5\nscreen:\n  width: 640\n")
	if err := os.WriteFile(filepath.Join(dir, "cyberdrift.yaml"), body, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.File != filepath.Join(dir, "cyberdrift.yaml") {
		t.Errorf("Expected config file %s, got %q", filepath.Join(dir, "cyberdrift.yaml"), cfg.File)
	}
	if cfg.Road.Width != 300 {
		t.Errorf("Expected road width 300, got %.0f", cfg.Road.Width)
	}
	if cfg.Enemy.MaxDifficulty != 3.5 {
		t.Errorf("Expected max difficulty 3.5, got %.2f", cfg.Enemy.MaxDifficulty)
	}
	if cfg.Road.ScreenWidth != 640 {
		t.Errorf("Expected road to follow screen width 640, got %.0f", cfg.Road.ScreenWidth)
	}
	// Untouched keys keep their defaults
	if cfg.Road.Lanes != 3 {
		t.Errorf("Expected 3 lanes, got %d", cfg.Road.Lanes)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CYBERDRIFT_PLAYER_MAX_SPEED", "12")
	t.Setenv("CYBERDRIFT_SCORING_POWERUP_BONUS", "75")

	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Player.MaxSpeed != 12 {
		t.Errorf("Expected max speed 12, got %.1f", cfg.Player.MaxSpeed)
	}
	if cfg.Scoring.PowerUpBonus != 75 {
		t.Errorf("Expected powerup bonus 75, got %d", cfg.Scoring.PowerUpBonus)
	}
}

func TestLoad_InvalidFileFails(t *testing.T) {
	dir := t.TempDir()
	body := []byte("road:\n  width: -400\n")
	if err := os.WriteFile(filepath.Join(dir, "cyberdrift.yaml"), body, 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(dir); !errors.Is(err, ErrInvalid) {
		t.Errorf("Expected ErrInvalid, got %v", err)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestLoadFile_SampleConfig(t *testing.T) {
	cfg, err := LoadFile(filepath.Join("..", "..", "configs", "cyberdrift.yaml"))
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if cfg.Screen.Title != "Cyber Drift: Neon Chase" {
		t.Errorf("Expected sample title, got %q", cfg.Screen.Title)
	}
}
