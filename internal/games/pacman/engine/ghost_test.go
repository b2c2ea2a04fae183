package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// corridor is a three-cell dead-end corridor: (1,1) to (3,1).
var corridor = []string{
	"#####",
	"#   #",
	"#####",
}

func TestChooseDirection(t *testing.T) {
	candidates := []Direction{DirUp, DirDown, DirLeft, DirRight}
	pos := V(5, 5)
	target := V(9, 5)

	tests := []struct {
		name       string
		rng        *scriptedRand
		frightened bool
		want       Direction
	}{
		{"chase takes best", &scriptedRand{floats: []float64{0.1}}, false, DirRight},
		{"chase boundary is random", &scriptedRand{floats: []float64{0.7}, ints: []int{0}}, false, DirUp},
		{"chase random pick", &scriptedRand{floats: []float64{0.9}, ints: []int{2}}, false, DirLeft},
		{"flee is uniform", &scriptedRand{ints: []int{1}}, true, DirDown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := chooseDirection(tt.rng, pos, target, candidates, tt.frightened)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFleeDoesNotConsultChaseOdds(t *testing.T) {
	rng := &scriptedRand{ints: []int{3}}
	chooseDirection(rng, V(5, 5), V(9, 5), []Direction{DirUp, DirDown, DirLeft, DirRight}, true)
	assert.Zero(t, rng.floatCalls)
	assert.Equal(t, 1, rng.intCalls)
}

func TestChaseRankingIsStable(t *testing.T) {
	// Down and Up are equally far from the target; ties keep candidate order.
	rng := &scriptedRand{floats: []float64{0}}
	got := chooseDirection(rng, V(5, 5), V(5, 5), []Direction{DirDown, DirUp}, false)
	assert.Equal(t, DirDown, got)
}

func TestGhostCandidates(t *testing.T) {
	m, err := NewMaze(corridor)
	require.NoError(t, err)

	t.Run("reverse excluded when another way exists", func(t *testing.T) {
		g := &Ghost{Actor: Actor{Pos: V(2, 1), Dir: DirRight}}
		assert.Equal(t, []Direction{DirRight}, ghostCandidates(m, g))
	})

	t.Run("dead end allows reverse", func(t *testing.T) {
		g := &Ghost{Actor: Actor{Pos: V(3, 1), Dir: DirRight}}
		assert.Equal(t, []Direction{DirLeft}, ghostCandidates(m, g))
	})
}

func TestGhostBouncesInDeadEnd(t *testing.T) {
	m, err := NewMaze(corridor)
	require.NoError(t, err)

	g := &Ghost{Actor: Actor{Pos: V(2, 1), Dir: DirRight, Speed: 0.06}}
	rng := &scriptedRand{}
	turned := false
	for tick := uint64(1); tick <= 200; tick++ {
		moveGhost(m, g, rng, V(1, 1), false, tick)
		require.True(t, m.CanOccupy(g.Pos.X, g.Pos.Y))
		require.GreaterOrEqual(t, g.Pos.X, 1.0)
		require.LessOrEqual(t, g.Pos.X, 3.0)
		turned = turned || g.Dir == DirLeft
	}
	assert.True(t, turned, "ghost never reversed out of the dead end")
}

func TestGhostDecisionSnapsToCenter(t *testing.T) {
	m, err := NewMaze(corridor)
	require.NoError(t, err)

	g := &Ghost{Actor: Actor{Pos: V(2.03, 1), Dir: DirRight, Speed: 0.06}}
	moveGhost(m, g, &scriptedRand{}, V(3, 1), false, 42)

	assert.Equal(t, uint64(42), g.LastDecision)
	assert.Equal(t, DirRight, g.Dir)
	assert.InDelta(t, 2.06, g.Pos.X, 1e-9)
}

func TestGhostBlockedAdvanceRedecides(t *testing.T) {
	m, err := NewMaze(corridor)
	require.NoError(t, err)

	// Off-center, heading into the east wall: the advance fails, the ghost
	// snaps to (3,1), takes the only open heading and nudges off the center.
	g := &Ghost{Actor: Actor{Pos: V(3.44, 1), Dir: DirRight, Speed: 0.06}}
	rng := &scriptedRand{}
	moveGhost(m, g, rng, V(1, 1), false, 7)

	assert.Equal(t, DirLeft, g.Dir)
	assert.InDelta(t, 3-GhostNudgeStep, g.Pos.X, 1e-9)
	assert.Equal(t, 1.0, g.Pos.Y)
	assert.Equal(t, uint64(7), g.LastDecision)
	assert.Equal(t, 1, rng.intCalls)
}
