// Package pacman adapts the maze-chase engine to the arcade host: it maps
// input actions to steering, feeds display frames to the fixed-step
// scheduler and draws the maze onto a core.Screen.
package pacman

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/engine"
	"github.com/vovakirdan/tui-pacman/internal/registry"
)

// ID is the registry and storage identifier.
const ID = "pacman"

func init() {
	registry.Register(ID, func() registry.Game { return New() })
}

// Game implements registry.Game.
type Game struct {
	eng     *engine.Engine
	now     func() time.Time
	runtime core.RuntimeConfig

	started bool         // false until the first steering input
	events  engine.Event // events since the last Reset, for the HUD
	lastEv  engine.Event // events of the latest frame
	err     error        // config problem shown on screen; defaults were used
}

// New creates a game driven by the wall clock.
func New() *Game {
	return NewWithClock(time.Now)
}

// NewWithClock creates a game that reads time from now. Tests pass a fake
// clock to drive the scheduler deterministically.
func NewWithClock(now func() time.Time) *Game {
	return &Game{now: now}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Pac-Man"
}

// Reset loads the tuning and builds a fresh engine. A broken tuning file
// falls back to the built-in defaults and is reported on screen.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.err = nil

	conf, _, err := config.LoadPacman(cfg.Config)
	if err != nil {
		g.err = err
		conf = config.DefaultPacmanConfig()
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed)) //#nosec G404 -- gameplay randomness

	layout, tuning, err := FromConfig(conf)
	if err == nil {
		g.eng, err = engine.New(layout, tuning, rng)
	}
	if err != nil {
		g.err = err
		g.eng, _ = engine.New(engine.ClassicLayout, engine.DefaultTuning(), rng)
	}

	g.started = false
	g.events = 0
	g.lastEv = 0
}

// Step handles one display frame of input and runs the simulation ticks
// owed since the previous frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) {
		g.restart()
		return core.StepResult{State: g.State()}
	}

	over := g.eng.Session().Over()
	if in.Has(core.ActionPause) && g.started && !over {
		if g.eng.Paused() {
			g.eng.Resume()
		} else {
			g.eng.Pause()
		}
	}

	if d, ok := steering(in); ok && !over {
		g.eng.SetRequestedDirection(d)
		g.started = true
	}
	if in.Has(core.ActionConfirm) {
		g.started = true
	}

	if !g.started {
		return core.StepResult{State: g.State()}
	}

	before := g.eng.Ticks()
	g.lastEv = g.eng.Frame(g.now())
	g.events |= g.lastEv

	return core.StepResult{
		State: g.State(),
		Ticks: int(g.eng.Ticks() - before), //#nosec G115 -- bounded by MaxTicksPerFrame
	}
}

// restart discards the session but keeps the engine and its tuning.
func (g *Game) restart() {
	g.eng.Reset()
	g.started = false
	g.events = 0
	g.lastEv = 0
}

// steering returns the requested direction of the frame, preferring the
// most recent key.
func steering(in core.InputFrame) (engine.Direction, bool) {
	if d, ok := actionDirection(in.Last); ok {
		return d, true
	}
	for _, a := range []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight} {
		if in.Has(a) {
			return actionDirection(a)
		}
	}
	return 0, false
}

func actionDirection(a core.Action) (engine.Direction, bool) {
	switch a {
	case core.ActionUp:
		return engine.DirUp, true
	case core.ActionDown:
		return engine.DirDown, true
	case core.ActionLeft:
		return engine.DirLeft, true
	case core.ActionRight:
		return engine.DirRight, true
	}
	return 0, false
}

// State reports score and status to the host.
func (g *Game) State() core.GameState {
	s := g.eng.Session()
	return core.GameState{
		Score:    s.Score,
		GameOver: s.Over(),
		Won:      s.Outcome == engine.OutcomeWon,
		Paused:   g.eng.Paused(),
	}
}

// Summary describes the current run for the history table.
func (g *Game) Summary() core.RunSummary {
	s := g.eng.Session()
	ticks := g.eng.Ticks()
	return core.RunSummary{
		Outcome:   s.Outcome.String(),
		Score:     s.Score,
		LivesLeft: s.Lives,
		ItemsLeft: s.ItemsRemaining,
		Ticks:     ticks,
		Played:    (time.Duration(ticks) * g.eng.Tuning().Step).Milliseconds(), //#nosec G115 -- tick count fits
	}
}

// Snapshot exposes the engine read model.
func (g *Game) Snapshot() engine.Snapshot {
	return g.eng.Snapshot()
}

// Started reports whether the player has begun the run.
func (g *Game) Started() bool {
	return g.started
}

// ConfigError returns the tuning problem found by the last Reset, if any.
func (g *Game) ConfigError() error {
	return g.err
}

var (
	_ registry.Game     = (*Game)(nil)
	_ registry.Reporter = (*Game)(nil)
)
