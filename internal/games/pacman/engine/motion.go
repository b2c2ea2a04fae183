package engine

import "math"

// nearCenter reports whether p is within the turn tolerance of a tile center
// on both axes.
func nearCenter(p Vec) bool {
	dx, dy := p.CenterOffset()
	return dx < TurnTolerance && dy < TurnTolerance
}

// movePlayer runs one tick of player motion. The steps happen in a fixed
// order: reversal, turn near a center, look-ahead, advance (with blocked
// resolution), mouth animation.
func movePlayer(m *Maze, p *Player) {
	if p.NextDir != p.Dir {
		switch {
		case p.NextDir == p.Dir.Opposite():
			p.Dir = p.NextDir
			p.PendingTurn = false
		case nearCenter(p.Pos):
			tryTurn(m, p)
		default:
			lookAhead(m, p)
		}
	}

	prev := p.Pos
	next := m.wrap(p.Pos.Step(p.Dir, p.Speed))
	if m.canOccupyVec(next) {
		p.Pos = next
		if p.NextDir != p.Dir && nearCenter(p.Pos) {
			tryTurn(m, p)
		}
	} else {
		p.Pos = resolveBlocked(m, prev, p.Dir)
		if p.NextDir != p.Dir && m.canOccupyVec(p.Pos.Step(p.NextDir, TurnProbeStep)) {
			p.Dir = p.NextDir
			p.PendingTurn = false
		}
	}

	animateMouth(p)
}

// tryTurn commits the requested direction when a short probe from the nearest
// tile center is clear. The axis perpendicular to the new heading is snapped
// so the actor travels down the middle of the corridor.
func tryTurn(m *Maze, p *Player) bool {
	center := p.Pos.Round()
	if !m.canOccupyVec(center.Step(p.NextDir, TurnProbeStep)) {
		return false
	}

	snapped := p.Pos
	if p.NextDir.IsVertical() {
		snapped.X = center.X
	} else {
		snapped.Y = center.Y
	}
	if !m.canOccupyVec(snapped) {
		return false
	}

	p.Pos = snapped
	p.Dir = p.NextDir
	p.PendingTurn = false
	return true
}

// lookAhead pre-validates the requested turn at the next intersection along
// the current heading. It only flags the turn; the commit happens once the
// player is close enough to the center.
func lookAhead(m *Maze, p *Player) {
	at := p.Pos
	switch p.Dir {
	case DirRight:
		at.X = math.Ceil(at.X)
	case DirLeft:
		at.X = math.Floor(at.X)
	case DirDown:
		at.Y = math.Ceil(at.Y)
	case DirUp:
		at.Y = math.Floor(at.Y)
	}

	if at.Dist(p.Pos) >= LookAheadDistance {
		return
	}
	if m.canOccupyVec(at.Step(p.NextDir, TurnProbeStep)) {
		p.PendingTurn = true
	}
}

// resolveBlocked finds where an actor that could not advance from prev ends
// up: the nearest tile center, else the last whole coordinate behind it on
// the travel axis, else prev itself.
func resolveBlocked(m *Maze, prev Vec, d Direction) Vec {
	if p := prev.Round(); m.canOccupyVec(p) {
		return p
	}

	p := prev.Round()
	switch d {
	case DirUp:
		p.Y = math.Ceil(prev.Y)
	case DirDown:
		p.Y = math.Floor(prev.Y)
	case DirLeft:
		p.X = math.Ceil(prev.X)
	case DirRight:
		p.X = math.Floor(prev.X)
	}
	if m.canOccupyVec(p) {
		return p
	}
	return prev
}

func animateMouth(p *Player) {
	p.Mouth += p.MouthSpeed
	if p.Mouth >= MouthMax || p.Mouth <= MouthMin {
		p.Mouth = math.Max(MouthMin, math.Min(MouthMax, p.Mouth))
		p.MouthSpeed = -p.MouthSpeed
	}
}
