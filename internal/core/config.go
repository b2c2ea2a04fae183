package core

// RuntimeConfig is passed to a game on Reset.
type RuntimeConfig struct {
	ScreenW  int    // screen width in characters
	ScreenH  int    // screen height in characters
	TickRate int    // display frames per second driving Step
	Seed     int64  // RNG seed; 0 lets the platform pick one
	Config   string // optional path to a game tuning file
}

// DefaultConfig returns a RuntimeConfig with the usual terminal size.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is what the platform needs to know about a running game.
type GameState struct {
	Score    int
	GameOver bool
	Won      bool
	Paused   bool
}

// StepResult is returned by Game.Step after each display frame.
type StepResult struct {
	State GameState
	// Ticks is the number of fixed simulation steps run during the frame.
	Ticks int
}

// RunSummary describes a finished run for history storage.
type RunSummary struct {
	Outcome   string
	Score     int
	LivesLeft int
	ItemsLeft int
	Ticks     uint64
	Played    int64 // simulated milliseconds
}
