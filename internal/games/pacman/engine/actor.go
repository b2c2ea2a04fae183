package engine

import "github.com/vovakirdan/tui-pacman/internal/core"

// Actor is the state shared by the player and the ghosts.
type Actor struct {
	Pos       Vec
	Dir       Direction
	NextDir   Direction
	Speed     float64
	Origin    Vec
	OriginDir Direction
}

// respawn puts the actor back on its origin tile facing its origin heading.
func (a *Actor) respawn() {
	a.Pos = a.Origin
	a.Dir = a.OriginDir
	a.NextDir = a.OriginDir
}

// Player is the user-controlled actor.
type Player struct {
	Actor
	PendingTurn bool    // a turn was pre-validated at the upcoming intersection
	Mouth       float64 // cosmetic mouth phase in [MouthMin, MouthMax]
	MouthSpeed  float64 // signed phase change per tick
}

// Ghost is an autonomous pursuer.
type Ghost struct {
	Actor
	Name         string
	Color        core.Color
	LastDecision uint64 // tick of the most recent heading decision
}

func newPlayer(s Spawn, t Tuning) *Player {
	return &Player{
		Actor: Actor{
			Pos:       s.Pos,
			Dir:       s.Dir,
			NextDir:   s.Dir,
			Speed:     t.PlayerSpeed,
			Origin:    s.Pos,
			OriginDir: s.Dir,
		},
		Mouth:      t.MouthStart,
		MouthSpeed: t.MouthSpeed,
	}
}

func newGhost(i int, s Spawn, t Tuning) *Ghost {
	return &Ghost{
		Actor: Actor{
			Pos:       s.Pos,
			Dir:       s.Dir,
			NextDir:   s.Dir,
			Speed:     t.ghostSpeed(i, s.Speed),
			Origin:    s.Pos,
			OriginDir: s.Dir,
		},
		Name:  s.Name,
		Color: s.Color,
	}
}
