package engine

import (
	"strings"
	"time"
)

// Outcome is the terminal state of a session.
type Outcome uint8

const (
	OutcomeNone Outcome = iota
	OutcomeLost
	OutcomeWon
)

func (o Outcome) String() string {
	switch o {
	case OutcomeLost:
		return "lost"
	case OutcomeWon:
		return "won"
	default:
		return "playing"
	}
}

// Session is the scoring state of one run.
type Session struct {
	Score          int
	Lives          int
	ItemsRemaining int
	Outcome        Outcome
}

// Over reports whether the session reached a terminal outcome.
func (s Session) Over() bool {
	return s.Outcome != OutcomeNone
}

// PowerMode tracks the temporary state in which ghosts can be captured.
type PowerMode struct {
	Active    bool
	Remaining time.Duration
}

// Event is a set of things that happened during one or more ticks.
type Event uint16

const (
	EventItem Event = 1 << iota
	EventPowerItem
	EventPowerEnded
	EventGhostCaptured
	EventLifeLost
	EventWon
	EventLost
)

// Has reports whether every bit of o is set in e.
func (e Event) Has(o Event) bool {
	return e&o == o && o != 0
}

func (e Event) String() string {
	if e == 0 {
		return "none"
	}
	names := []struct {
		ev   Event
		name string
	}{
		{EventItem, "item"},
		{EventPowerItem, "power-item"},
		{EventPowerEnded, "power-ended"},
		{EventGhostCaptured, "ghost-captured"},
		{EventLifeLost, "life-lost"},
		{EventWon, "won"},
		{EventLost, "lost"},
	}
	var parts []string
	for _, n := range names {
		if e.Has(n.ev) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}

// encounter bundles the state the resolver reads and writes.
type encounter struct {
	maze    *Maze
	player  *Player
	ghosts  []*Ghost
	session *Session
	power   *PowerMode
	tuning  Tuning
}

// resolve applies pickups, the power countdown, player-ghost contact and the
// win check, in that order, for one tick of length elapsed.
func (c encounter) resolve(elapsed time.Duration) Event {
	var ev Event

	col, row := c.player.Pos.Tile()
	if t, ok := c.maze.ConsumeItem(col, row); ok {
		switch t {
		case TileItem:
			c.session.Score += c.tuning.ItemScore
			ev |= EventItem
		case TilePowerItem:
			c.session.Score += c.tuning.PowerItemScore
			c.power.Active = true
			c.power.Remaining = c.tuning.PowerDuration
			ev |= EventPowerItem
		}
		c.session.ItemsRemaining = c.maze.CountRemainingItems()
	}

	if c.power.Active {
		c.power.Remaining -= elapsed
		if c.power.Remaining <= 0 {
			c.power.Active = false
			c.power.Remaining = 0
			ev |= EventPowerEnded
		}
	}

	// Only the first ghost in contact is handled per tick.
	for _, g := range c.ghosts {
		if c.player.Pos.Dist(g.Pos) >= CaptureRadius {
			continue
		}
		if c.power.Active {
			c.session.Score += c.tuning.CaptureBonus
			g.respawn()
			ev |= EventGhostCaptured
			break
		}

		c.session.Lives--
		ev |= EventLifeLost
		if c.session.Lives <= 0 {
			c.session.Lives = 0
			c.session.Outcome = OutcomeLost
			ev |= EventLost
		} else {
			c.resetActors()
		}
		break
	}

	if c.session.Outcome == OutcomeNone && c.session.ItemsRemaining == 0 {
		c.session.Outcome = OutcomeWon
		ev |= EventWon
	}
	return ev
}

// resetActors returns the player and every ghost to their origins after a
// lost life. Items, score and power mode are untouched.
func (c encounter) resetActors() {
	c.player.respawn()
	c.player.PendingTurn = false
	for _, g := range c.ghosts {
		g.respawn()
	}
}
