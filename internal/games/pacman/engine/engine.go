package engine

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidTuning is returned by New for tuning values the motion model
// cannot honour.
var ErrInvalidTuning = errors.New("engine: invalid tuning")

// ErrBlockedSpawn is returned by New when an actor origin is inside a wall.
var ErrBlockedSpawn = errors.New("engine: spawn point is blocked")

// Speed limits. Faster actors could step over a decision point or a turn
// window without ever landing inside it.
const (
	MaxPlayerSpeed = 2 * TurnTolerance
	MaxGhostSpeed  = 2 * DecisionEpsilon
)

// Engine owns one game session: maze, actors, scoring and the scheduler.
// It is not safe for concurrent use.
type Engine struct {
	layout Layout
	tuning Tuning
	rng    RandSource

	maze    *Maze
	player  *Player
	ghosts  []*Ghost
	session Session
	power   PowerMode
	sched   *Scheduler

	ticks  uint64
	events Event
}

// New builds an engine for layout and starts a fresh session.
func New(layout Layout, tuning Tuning, rng RandSource) (*Engine, error) {
	if err := validateTuning(tuning); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, errors.New("engine: nil random source")
	}

	maze, err := NewMaze(layout.Rows)
	if err != nil {
		return nil, err
	}

	spawns := append([]Spawn{layout.Player}, layout.Ghosts...)
	for i, s := range spawns {
		if !maze.canOccupyVec(s.Pos) {
			return nil, fmt.Errorf("%w: %s at (%g,%g)", ErrBlockedSpawn, s.Name, s.Pos.X, s.Pos.Y)
		}
		if i > 0 {
			if sp := tuning.ghostSpeed(i-1, s.Speed); sp <= 0 || sp > MaxGhostSpeed {
				return nil, fmt.Errorf("%w: ghost %s speed %g", ErrInvalidTuning, s.Name, sp)
			}
		}
	}

	e := &Engine{
		layout: layout,
		tuning: tuning,
		rng:    rng,
		maze:   maze,
		sched:  NewScheduler(tuning.Step, tuning.MaxTicksPerFrame),
	}
	e.Reset()
	return e, nil
}

func validateTuning(t Tuning) error {
	switch {
	case t.PlayerSpeed <= 0 || t.PlayerSpeed > MaxPlayerSpeed:
		return fmt.Errorf("%w: player speed %g", ErrInvalidTuning, t.PlayerSpeed)
	case t.Step <= 0:
		return fmt.Errorf("%w: step %s", ErrInvalidTuning, t.Step)
	case t.Lives <= 0:
		return fmt.Errorf("%w: lives %d", ErrInvalidTuning, t.Lives)
	case t.PowerDuration <= 0:
		return fmt.Errorf("%w: power duration %s", ErrInvalidTuning, t.PowerDuration)
	case t.MaxTicksPerFrame < 0:
		return fmt.Errorf("%w: max ticks per frame %d", ErrInvalidTuning, t.MaxTicksPerFrame)
	}
	return nil
}

// Reset discards every mutation and starts a new session: items are
// restored, actors return to their origins, score and lives reset, power
// mode ends and the scheduler forgets its timing.
func (e *Engine) Reset() {
	e.maze.Reset()

	e.player = newPlayer(e.layout.Player, e.tuning)
	e.ghosts = make([]*Ghost, len(e.layout.Ghosts))
	for i, s := range e.layout.Ghosts {
		e.ghosts[i] = newGhost(i, s, e.tuning)
	}

	e.session = Session{
		Lives:          e.tuning.Lives,
		ItemsRemaining: e.maze.CountRemainingItems(),
	}
	e.power = PowerMode{}
	e.sched.Reset()
	e.ticks = 0
	e.events = 0
}

// SetRequestedDirection records the heading the player wants next. It is
// applied by the motion model on a later tick.
func (e *Engine) SetRequestedDirection(d Direction) {
	if d == e.player.NextDir {
		return
	}
	e.player.NextDir = d
	e.player.PendingTurn = false
}

// Tick advances the simulation by one fixed step. It does nothing once the
// session is over.
func (e *Engine) Tick() Event {
	if e.session.Over() {
		return 0
	}

	e.ticks++
	movePlayer(e.maze, e.player)
	for _, g := range e.ghosts {
		moveGhost(e.maze, g, e.rng, e.player.Pos, e.power.Active, e.ticks)
	}

	return e.encounter().resolve(e.tuning.Step)
}

func (e *Engine) encounter() encounter {
	return encounter{
		maze:    e.maze,
		player:  e.player,
		ghosts:  e.ghosts,
		session: &e.session,
		power:   &e.power,
		tuning:  e.tuning,
	}
}

// Frame feeds a display-frame timestamp and runs the owed ticks. It returns
// the events of those ticks, also kept for Snapshot.
func (e *Engine) Frame(now time.Time) Event {
	e.events = 0
	e.sched.Frame(now, e.tickInto)
	return e.events
}

// Advance runs the ticks owed for elapsed wall time.
func (e *Engine) Advance(elapsed time.Duration) Event {
	e.events = 0
	e.sched.Advance(elapsed, e.tickInto)
	return e.events
}

func (e *Engine) tickInto() {
	e.events |= e.Tick()
}

// Pause stops the simulation clock. Rendering may continue.
func (e *Engine) Pause() {
	e.sched.SetPaused(true)
}

// Resume restarts the simulation clock without simulating the paused time.
func (e *Engine) Resume() {
	e.sched.SetPaused(false)
}

// Paused reports whether the engine is paused.
func (e *Engine) Paused() bool {
	return e.sched.Paused()
}

// Session returns a copy of the scoring state.
func (e *Engine) Session() Session {
	return e.session
}

// Power returns a copy of the power-mode state.
func (e *Engine) Power() PowerMode {
	return e.power
}

// Maze returns the live maze. Callers must not mutate it.
func (e *Engine) Maze() *Maze {
	return e.maze
}

// Ticks returns the number of simulated steps since the last reset.
func (e *Engine) Ticks() uint64 {
	return e.ticks
}

// Tuning returns the tuning the engine was built with.
func (e *Engine) Tuning() Tuning {
	return e.tuning
}
