// Package config provides YAML-based game configuration loading and
// difficulty presets for the invaders game.
package config

import "time"

// InvadersConfig contains all tuning for the simulation and its driver.
type InvadersConfig struct {
	Fleet  FleetConfig  `yaml:"fleet"`
	Player PlayerConfig `yaml:"player"`
	Driver DriverConfig `yaml:"driver"`
}

// FleetConfig defines the wave layout, cadence and firing rate.
type FleetConfig struct {
	ActionThreshold    int     `yaml:"action_threshold"`     // Ticks between fleet moves at start
	MinActionThreshold int     `yaml:"min_action_threshold"` // Floor reached through kills
	Row                float64 `yaml:"row"`                  // Fraction of yMax for the fleet row
	Left               float64 `yaml:"left"`                 // Fraction of xMax where the wave starts
	Right              float64 `yaml:"right"`                // Fraction of xMax where the wave ends (exclusive)
	Spacing            int     `yaml:"spacing"`              // Columns between neighbouring invaders
	FireChance         float64 `yaml:"fire_chance"`          // Probability per invader per fleet move
}

// PlayerConfig defines the ship placement.
type PlayerConfig struct {
	Row float64 `yaml:"row"` // Fraction of yMax for the ship row
}

// DriverConfig defines frame pacing and the end-of-game pause.
type DriverConfig struct {
	TickRate int           `yaml:"tick_rate"`
	EndPause time.Duration `yaml:"end_pause"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)
