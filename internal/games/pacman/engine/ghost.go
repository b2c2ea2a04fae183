package engine

import "sort"

// RandSource is the randomness ghosts draw from. *math/rand.Rand satisfies it.
type RandSource interface {
	Float64() float64
	Intn(n int) int
}

// atDecisionPoint reports whether p is close enough to a tile center for a
// ghost to pick a new heading.
func atDecisionPoint(p Vec) bool {
	dx, dy := p.CenterOffset()
	return dx < DecisionEpsilon && dy < DecisionEpsilon
}

// legalDirections returns the headings a ghost at p could take, probing
// GhostProbeStep ahead, in Up, Down, Left, Right order.
func legalDirections(m *Maze, p Vec) []Direction {
	out := make([]Direction, 0, len(Directions))
	for _, d := range Directions {
		if m.canOccupyVec(p.Step(d, GhostProbeStep)) {
			out = append(out, d)
		}
	}
	return out
}

// ghostCandidates lists the directions considered at a decision point. The
// reverse of the current heading is only offered in a dead end.
func ghostCandidates(m *Maze, g *Ghost) []Direction {
	all := legalDirections(m, g.Pos)
	back := g.Dir.Opposite()
	c := make([]Direction, 0, len(all))
	for _, d := range all {
		if d != back {
			c = append(c, d)
		}
	}
	if len(c) == 0 {
		return all
	}
	return c
}

// chooseDirection picks a heading among candidates. Frightened ghosts pick
// uniformly; chasing ghosts usually take the direction whose next tile is
// closest to target.
func chooseDirection(rng RandSource, pos, target Vec, candidates []Direction, frightened bool) Direction {
	if frightened {
		return candidates[rng.Intn(len(candidates))]
	}

	ranked := make([]Direction, len(candidates))
	copy(ranked, candidates)
	sort.SliceStable(ranked, func(i, j int) bool {
		return pos.Step(ranked[i], 1).DistSq(target) < pos.Step(ranked[j], 1).DistSq(target)
	})

	if rng.Float64() < ChaseBestProbability {
		return ranked[0]
	}
	return candidates[rng.Intn(len(candidates))]
}

// moveGhost runs one tick for g: decide at tile centers, then advance. A
// blocked advance snaps to the grid, picks any legal heading (reverse
// included) and nudges off the center.
func moveGhost(m *Maze, g *Ghost, rng RandSource, target Vec, frightened bool, tick uint64) {
	if atDecisionPoint(g.Pos) {
		if snapped := g.Pos.Round(); m.canOccupyVec(snapped) {
			g.Pos = snapped
		}
		g.LastDecision = tick
		if c := ghostCandidates(m, g); len(c) > 0 {
			g.Dir = chooseDirection(rng, g.Pos, target, c, frightened)
		}
	}

	next := m.wrap(g.Pos.Step(g.Dir, g.Speed))
	if m.canOccupyVec(next) {
		g.Pos = next
		return
	}

	if snapped := g.Pos.Round(); m.canOccupyVec(snapped) {
		g.Pos = snapped
	}
	legal := legalDirections(m, g.Pos)
	if len(legal) == 0 {
		return
	}
	g.Dir = legal[rng.Intn(len(legal))]
	g.LastDecision = tick
	if nudged := m.wrap(g.Pos.Step(g.Dir, GhostNudgeStep)); m.canOccupyVec(nudged) {
		g.Pos = nudged
	}
}
