package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// scriptedRand replays fixed values. Exhausted queues yield zero.
type scriptedRand struct {
	floats []float64
	ints   []int

	floatCalls, intCalls int
}

func (r *scriptedRand) Float64() float64 {
	r.floatCalls++
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func (r *scriptedRand) Intn(n int) int {
	r.intCalls++
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

// soloLayout is the classic maze without ghosts, with the player at pos.
func soloLayout(pos Vec, dir Direction) Layout {
	l := ClassicLayout
	l.Ghosts = nil
	l.Player = Spawn{Name: "player", Pos: pos, Dir: dir}
	return l
}

func newTestEngine(t *testing.T, layout Layout, tuning Tuning, rng RandSource) *Engine {
	t.Helper()
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	e, err := New(layout, tuning, rng)
	require.NoError(t, err)
	return e
}

func tickN(e *Engine, n int) Event {
	var ev Event
	for i := 0; i < n; i++ {
		ev |= e.Tick()
	}
	return ev
}
