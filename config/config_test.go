package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/bubble-fighter/core"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default config must validate, got %v", err)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative count", func(c *Config) { c.BubbleCount = -1 }},
		{"min above max radius", func(c *Config) { c.MinRadius = 0.2; c.MaxRadius = 0.1 }},
		{"zero min radius", func(c *Config) { c.MinRadius = 0 }},
		{"zero density", func(c *Config) { c.Density = 0 }},
		{"negative density", func(c *Config) { c.Density = -1 }},
		{"zero max speed", func(c *Config) { c.MaxSpeed = 0 }},
		{"zero window", func(c *Config) { c.WindowWidth = 0 }},
		{"oversized radius", func(c *Config) { c.MaxRadius = 0.8 }},
		{"unknown mode", func(c *Config) { c.Mode = "detonate" }},
		{"transfer fraction above one", func(c *Config) { c.TransferFraction = 1.5 }},
		{"negative cooldown", func(c *Config) { c.SplitCooldown = -0.1 }},
		{"area loss of one", func(c *Config) { c.SplitAreaLoss = 1 }},
	}
	for _, tc := range cases {
		cfg := Default()
		tc.mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tc.name)
		}
	}
}

func TestSeedFallback(t *testing.T) {
	cfg := Default()
	cfg.RandomSeed = 0
	if cfg.Seed() != DefaultSeed {
		t.Errorf("Expected default seed, got %d", cfg.Seed())
	}
	cfg.RandomSeed = 99
	if cfg.Seed() != 99 {
		t.Errorf("Expected configured seed, got %d", cfg.Seed())
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sim.toml")
	data := []byte("bubble_count = 4\nmode = \"bounce\"\nmax_speed = 2.5\nrandom_seed = 77\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BubbleCount != 4 {
		t.Errorf("bubble_count: expected 4, got %d", cfg.BubbleCount)
	}
	if cfg.InteractionMode() != core.ModeBounce {
		t.Errorf("mode: expected bounce, got %v", cfg.InteractionMode())
	}
	if cfg.MaxSpeed != 2.5 {
		t.Errorf("max_speed: expected 2.5, got %g", cfg.MaxSpeed)
	}
	if cfg.RandomSeed != 77 {
		t.Errorf("random_seed: expected 77, got %d", cfg.RandomSeed)
	}
	// Untouched keys keep their defaults
	if cfg.MinRadius != 0.03 {
		t.Errorf("min_radius default lost: %g", cfg.MinRadius)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Loaded config should validate: %v", err)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sim.toml")
	if err := os.WriteFile(path, []byte("gravity = 9.8\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Expected error for unrecognized key")
	}
}
