package engine

import (
	"math"
	"time"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

// PlayerView is the presentation copy of the player.
type PlayerView struct {
	X, Y        float64
	Dir         Direction
	NextDir     Direction
	PendingTurn bool
	Mouth       float64
}

// GhostView is the presentation copy of one ghost.
type GhostView struct {
	Name       string
	Color      core.Color
	X, Y       float64
	Dir        Direction
	Frightened bool
}

// Snapshot is a value copy of everything a renderer or test needs. It shares
// no memory with the engine.
type Snapshot struct {
	Tick           uint64
	Width, Height  int
	Tiles          []Tile // row-major
	Player         PlayerView
	Ghosts         []GhostView
	Score          int
	Lives          int
	ItemsRemaining int
	PowerActive    bool
	PowerRemaining time.Duration
	Outcome        Outcome
	Paused         bool
	Events         Event // events of the last Frame or Advance call
}

// Snapshot returns the current state.
func (e *Engine) Snapshot() Snapshot {
	ghosts := make([]GhostView, len(e.ghosts))
	for i, g := range e.ghosts {
		ghosts[i] = GhostView{
			Name:       g.Name,
			Color:      g.Color,
			X:          g.Pos.X,
			Y:          g.Pos.Y,
			Dir:        g.Dir,
			Frightened: e.power.Active,
		}
	}

	return Snapshot{
		Tick:   e.ticks,
		Width:  e.maze.Width(),
		Height: e.maze.Height(),
		Tiles:  e.maze.Tiles(),
		Player: PlayerView{
			X:           e.player.Pos.X,
			Y:           e.player.Pos.Y,
			Dir:         e.player.Dir,
			NextDir:     e.player.NextDir,
			PendingTurn: e.player.PendingTurn,
			Mouth:       e.player.Mouth,
		},
		Ghosts:         ghosts,
		Score:          e.session.Score,
		Lives:          e.session.Lives,
		ItemsRemaining: e.session.ItemsRemaining,
		PowerActive:    e.power.Active,
		PowerRemaining: e.power.Remaining,
		Outcome:        e.session.Outcome,
		Paused:         e.sched.Paused(),
		Events:         e.events,
	}
}

// TileAt returns the tile at (col, row) of the snapshot grid.
func (s Snapshot) TileAt(col, row int) Tile {
	if col < 0 || col >= s.Width || row < 0 || row >= s.Height {
		return TileOutOfBounds
	}
	return s.Tiles[row*s.Width+col]
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (s Snapshot) Hash() uint64 {
	h := s.Tick
	h = h*31 + math.Float64bits(s.Player.X)
	h = h*31 + math.Float64bits(s.Player.Y)
	h = h*31 + uint64(s.Player.Dir)
	for _, g := range s.Ghosts {
		h = h*31 + math.Float64bits(g.X)
		h = h*31 + math.Float64bits(g.Y)
		h = h*31 + uint64(g.Dir)
	}
	h = h*31 + uint64(s.Score)          //#nosec G115 -- hash computation
	h = h*31 + uint64(s.Lives)          //#nosec G115 -- hash computation
	h = h*31 + uint64(s.ItemsRemaining) //#nosec G115 -- hash computation
	h = h*31 + uint64(s.Outcome)
	for _, t := range s.Tiles {
		h = h*31 + uint64(t)
	}
	return h
}
