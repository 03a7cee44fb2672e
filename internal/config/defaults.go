package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// DefaultInvadersConfig returns the default configuration.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Fleet: FleetConfig{
			ActionThreshold:    20,
			MinActionThreshold: 5,
			Row:                0.1,
			Left:               0.15,
			Right:              0.85,
			Spacing:            2,
			FireChance:         0.1,
		},
		Player: PlayerConfig{
			Row: 0.9,
		},
		Driver: DriverConfig{
			TickRate: 60,
			EndPause: 4 * time.Second,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultInvadersYAML
}
