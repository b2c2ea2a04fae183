package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/pacman.yaml
var defaultPacmanYAML []byte

// DefaultPacmanConfig returns the built-in tuning. It matches the embedded
// defaults/pacman.yaml and is used if that file fails to parse.
func DefaultPacmanConfig() PacmanConfig {
	return PacmanConfig{
		Player: PlayerConfig{
			Speed:      0.08,
			MouthSpeed: 0.02,
		},
		Ghosts: []GhostConfig{
			{Name: "blinky", Color: "red", Speed: 0.06},
			{Name: "inky", Color: "cyan", Speed: 0.055},
			{Name: "pinky", Color: "pink", Speed: 0.065},
			{Name: "clyde", Color: "orange", Speed: 0.06},
		},
		Scoring: ScoringConfig{
			Item:         10,
			PowerItem:    50,
			GhostCapture: 200,
		},
		Gameplay: GameplayConfig{
			Lives:         3,
			PowerDuration: 10 * time.Second,
		},
		Timing: TimingConfig{
			TickRate:         90,
			MaxTicksPerFrame: 30,
		},
	}
}
