package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned when a configuration value is out of range.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks that every value is usable by the simulation.
func (c InvadersConfig) Validate() error {
	f := c.Fleet
	switch {
	case f.ActionThreshold < 1:
		return invalid("fleet.action_threshold must be at least 1, got %d", f.ActionThreshold)
	case f.MinActionThreshold < 1:
		return invalid("fleet.min_action_threshold must be at least 1, got %d", f.MinActionThreshold)
	case f.MinActionThreshold > f.ActionThreshold:
		return invalid("fleet.min_action_threshold %d exceeds action_threshold %d", f.MinActionThreshold, f.ActionThreshold)
	case !isFraction(f.Row):
		return invalid("fleet.row must be within [0, 1], got %v", f.Row)
	case !isFraction(f.Left) || !isFraction(f.Right):
		return invalid("fleet.left and fleet.right must be within [0, 1], got %v and %v", f.Left, f.Right)
	case f.Left >= f.Right:
		return invalid("fleet.left %v must be less than fleet.right %v", f.Left, f.Right)
	case f.Spacing < 1:
		return invalid("fleet.spacing must be at least 1, got %d", f.Spacing)
	case !isFraction(f.FireChance):
		return invalid("fleet.fire_chance must be within [0, 1], got %v", f.FireChance)
	case !isFraction(c.Player.Row):
		return invalid("player.row must be within [0, 1], got %v", c.Player.Row)
	case c.Player.Row <= f.Row:
		return invalid("player.row %v must be below fleet.row %v", c.Player.Row, f.Row)
	case c.Driver.TickRate < 1:
		return invalid("driver.tick_rate must be at least 1, got %d", c.Driver.TickRate)
	case c.Driver.EndPause < 0:
		return invalid("driver.end_pause must not be negative, got %v", c.Driver.EndPause)
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}

func isFraction(v float64) bool {
	return v >= 0 && v <= 1
}
