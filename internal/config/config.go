// Package config loads the YAML tuning file for the maze game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// PacmanConfig is the full tuning file.
type PacmanConfig struct {
	Player   PlayerConfig   `yaml:"player"`
	Ghosts   []GhostConfig  `yaml:"ghosts"`
	Scoring  ScoringConfig  `yaml:"scoring"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	Timing   TimingConfig   `yaml:"timing"`
}

// PlayerConfig tunes the player actor.
type PlayerConfig struct {
	Speed      float64 `yaml:"speed"`       // grid units per tick
	MouthSpeed float64 `yaml:"mouth_speed"` // mouth phase change per tick
}

// GhostConfig overrides one ghost, matched by position in the layout.
type GhostConfig struct {
	Name  string  `yaml:"name"`
	Color string  `yaml:"color"`
	Speed float64 `yaml:"speed"`
}

// ScoringConfig holds point values.
type ScoringConfig struct {
	Item         int `yaml:"item"`
	PowerItem    int `yaml:"power_item"`
	GhostCapture int `yaml:"ghost_capture"`
}

// GameplayConfig holds session rules.
type GameplayConfig struct {
	Lives         int           `yaml:"lives"`
	PowerDuration time.Duration `yaml:"power_duration"`
}

// TimingConfig controls the fixed-step simulation.
type TimingConfig struct {
	TickRate         int `yaml:"tick_rate"`           // simulation steps per second
	MaxTicksPerFrame int `yaml:"max_ticks_per_frame"` // catch-up cap, 0 = unlimited
}

// Step returns the fixed simulation step length.
func (t TimingConfig) Step() time.Duration {
	if t.TickRate <= 0 {
		return 0
	}
	return time.Second / time.Duration(t.TickRate)
}

// Validate rejects values the game cannot run with.
func (c PacmanConfig) Validate() error {
	switch {
	case c.Player.Speed <= 0:
		return fmt.Errorf("%w: player.speed must be positive, got %g", ErrInvalid, c.Player.Speed)
	case c.Player.MouthSpeed < 0:
		return fmt.Errorf("%w: player.mouth_speed must not be negative", ErrInvalid)
	case c.Gameplay.Lives <= 0:
		return fmt.Errorf("%w: gameplay.lives must be positive, got %d", ErrInvalid, c.Gameplay.Lives)
	case c.Gameplay.PowerDuration <= 0:
		return fmt.Errorf("%w: gameplay.power_duration must be positive", ErrInvalid)
	case c.Timing.TickRate <= 0:
		return fmt.Errorf("%w: timing.tick_rate must be positive, got %d", ErrInvalid, c.Timing.TickRate)
	case c.Timing.MaxTicksPerFrame < 0:
		return fmt.Errorf("%w: timing.max_ticks_per_frame must not be negative", ErrInvalid)
	case c.Scoring.Item < 0 || c.Scoring.PowerItem < 0 || c.Scoring.GhostCapture < 0:
		return fmt.Errorf("%w: scoring values must not be negative", ErrInvalid)
	}

	for i, g := range c.Ghosts {
		if g.Speed < 0 {
			return fmt.Errorf("%w: ghosts[%d].speed must not be negative", ErrInvalid, i)
		}
	}
	return nil
}
