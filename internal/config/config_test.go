package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}

	if cfg != DefaultInvadersConfig() {
		t.Errorf("Embedded defaults differ from DefaultInvadersConfig():\n%+v\n%+v", cfg, DefaultInvadersConfig())
	}
}

func TestParseKeepsDefaultsForMissingKeys(t *testing.T) {
	cfg, err := Parse([]byte("fleet:\n  fire_chance: 0.02\ndriver:\n  end_pause: 1500ms\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if cfg.Fleet.FireChance != 0.02 {
		t.Errorf("FireChance = %v, expected 0.02", cfg.Fleet.FireChance)
	}
	if cfg.Fleet.ActionThreshold != 20 {
		t.Errorf("ActionThreshold = %d, expected default 20", cfg.Fleet.ActionThreshold)
	}
	if cfg.Driver.EndPause != 1500*time.Millisecond {
		t.Errorf("EndPause = %v, expected 1.5s", cfg.Driver.EndPause)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*InvadersConfig)
	}{
		{"zero threshold", func(c *InvadersConfig) { c.Fleet.ActionThreshold = 0 }},
		{"floor above threshold", func(c *InvadersConfig) { c.Fleet.MinActionThreshold = 30 }},
		{"zero floor", func(c *InvadersConfig) { c.Fleet.MinActionThreshold = 0 }},
		{"fire chance above one", func(c *InvadersConfig) { c.Fleet.FireChance = 1.5 }},
		{"negative fire chance", func(c *InvadersConfig) { c.Fleet.FireChance = -0.1 }},
		{"inverted range", func(c *InvadersConfig) { c.Fleet.Left, c.Fleet.Right = 0.8, 0.2 }},
		{"zero spacing", func(c *InvadersConfig) { c.Fleet.Spacing = 0 }},
		{"player row out of range", func(c *InvadersConfig) { c.Player.Row = 1.2 }},
		{"player above fleet", func(c *InvadersConfig) { c.Player.Row = 0.05 }},
		{"zero tick rate", func(c *InvadersConfig) { c.Driver.TickRate = 0 }},
		{"negative pause", func(c *InvadersConfig) { c.Driver.EndPause = -time.Second }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultInvadersConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}

	if err := DefaultInvadersConfig().Validate(); err != nil {
		t.Errorf("Default config should be valid, got %v", err)
	}
}

func TestLoadInvadersCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("fleet:\n  action_threshold: 12\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := LoadInvaders(path)
	if err != nil {
		t.Fatalf("LoadInvaders() failed: %v", err)
	}
	if cfg.Fleet.ActionThreshold != 12 {
		t.Errorf("ActionThreshold = %d, expected 12", cfg.Fleet.ActionThreshold)
	}
}

func TestLoadInvadersMissingCustomPath(t *testing.T) {
	_, err := LoadInvaders(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected wrapped ErrNotExist, got %v", err)
	}
}

func TestLoadInvadersInvalidCustomFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("fleet:\n  spacing: 0\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	if _, err := LoadInvaders(path); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := DefaultInvadersConfig()
	cfg.Fleet.FireChance = 0.07

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}

	back, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if back != cfg {
		t.Errorf("Round trip mismatch:\n%+v\n%+v", back, cfg)
	}
}

func TestApplyInvadersPreset(t *testing.T) {
	tests := []struct {
		preset        DifficultyPreset
		wantThreshold int
		wantFloor     int
		wantChance    float64
	}{
		{"", 20, 5, 0.1},
		{DifficultyNormal, 20, 5, 0.1},
		{DifficultyEasy, 26, 5, 0.05},
		{DifficultyHard, 14, 5, 0.15},
		{DifficultyFixed, 20, 20, 0.1},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultInvadersConfig()
			if err := ApplyInvadersPreset(&cfg, tc.preset); err != nil {
				t.Fatalf("ApplyInvadersPreset() failed: %v", err)
			}
			if cfg.Fleet.ActionThreshold != tc.wantThreshold {
				t.Errorf("ActionThreshold = %d, expected %d", cfg.Fleet.ActionThreshold, tc.wantThreshold)
			}
			if cfg.Fleet.MinActionThreshold != tc.wantFloor {
				t.Errorf("MinActionThreshold = %d, expected %d", cfg.Fleet.MinActionThreshold, tc.wantFloor)
			}
			if cfg.Fleet.FireChance != tc.wantChance {
				t.Errorf("FireChance = %v, expected %v", cfg.Fleet.FireChance, tc.wantChance)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("Preset produced invalid config: %v", err)
			}
		})
	}

	cfg := DefaultInvadersConfig()
	if err := ApplyInvadersPreset(&cfg, "nightmare"); err == nil {
		t.Error("Expected error for unknown preset")
	}
}

func TestApplyPresetClampsFloor(t *testing.T) {
	cfg := DefaultInvadersConfig()
	cfg.Fleet.MinActionThreshold = 18
	if err := ApplyInvadersPreset(&cfg, DifficultyHard); err != nil {
		t.Fatalf("ApplyInvadersPreset() failed: %v", err)
	}
	if cfg.Fleet.MinActionThreshold != 14 {
		t.Errorf("MinActionThreshold = %d, expected clamp to 14", cfg.Fleet.MinActionThreshold)
	}
}
