package engine

import (
	"bombquest/internal/domain"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNewConfig_IsValid(t *testing.T) {
	cfg := NewConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.TickDuration() != time.Second/60 {
		t.Errorf("tick duration = %v", cfg.TickDuration())
	}
	if cfg.BombFuse != 4*int64(cfg.TickRate) {
		t.Errorf("Default fuse should be 4 seconds, got %d ticks", cfg.BombFuse)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"zero tick rate", func(c *Config) { c.TickRate = 0 }},
		{"zero fuse", func(c *Config) { c.BombFuse = 0 }},
		{"zero monster period", func(c *Config) { c.MonsterPeriod = 0 }},
		{"start level zero", func(c *Config) { c.StartLevel = 0 }},
		{"unknown action", func(c *Config) { c.Keys["x"] = "JUMP" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestConfig_KeyBindings(t *testing.T) {
	cfg := NewConfig()
	cfg.Keys = map[string]string{"Space": "bomb", "UP": "move_n"}

	bindings, err := cfg.KeyBindings()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bindings["space"] != domain.ActionBomb || bindings["up"] != domain.ActionMoveNorth {
		t.Errorf("bindings = %v", bindings)
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bombquest.yaml")
	data := "seed: 42\ntickRate: 30\nkeys:\n  x: BOMB\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Seed != 42 || cfg.TickRate != 30 {
		t.Errorf("seed=%d tickRate=%d", cfg.Seed, cfg.TickRate)
	}
	if cfg.BombFuse != NewConfig().BombFuse {
		t.Error("Fields missing from the file keep their defaults")
	}
	if cfg.Keys["x"] != "BOMB" || cfg.Keys["space"] != "BOMB" {
		t.Errorf("File keys are merged into defaults, got %v", cfg.Keys)
	}

	if _, err := LoadConfigFile(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Missing file should fail")
	}
}

func TestConfig_ApplyEnv(t *testing.T) {
	t.Setenv("BQ_SPECTATOR_ADDR", ":9999")
	t.Setenv("BQ_LEVELS_DIR", "/tmp/levels")

	cfg := NewConfig()
	cfg.ApplyEnv()

	if cfg.SpectatorAddr != ":9999" || cfg.LevelsDir != "/tmp/levels" {
		t.Errorf("env not applied: %q %q", cfg.SpectatorAddr, cfg.LevelsDir)
	}
}
