package engine

import "time"

// Geometry thresholds, all in grid units. They are unrelated to each other
// even where the values coincide; keep them separate.
const (
	// EdgeForgivenessHigh and EdgeForgivenessLow bound the fractional offset
	// inside a tile beyond which CanOccupy also samples the neighbouring tile
	// on that side. Between them only the containing tile matters.
	EdgeForgivenessHigh = 0.7
	EdgeForgivenessLow  = 0.3

	// TurnTolerance is how far from a tile center (per axis) the player may
	// still commit a perpendicular turn.
	TurnTolerance = 0.3

	// TurnProbeStep is the distance probed into a requested direction before
	// a player turn is committed.
	TurnProbeStep = 0.1

	// LookAheadDistance is how close the next intersection along the current
	// heading must be before a pending turn is pre-validated.
	LookAheadDistance = 0.5

	// DecisionEpsilon is how close to a tile center a ghost must be for the
	// tick to count as a decision point.
	DecisionEpsilon = 0.05

	// GhostProbeStep is the distance probed when filtering ghost directions.
	GhostProbeStep = 0.5

	// GhostNudgeStep moves a ghost off a blocked tile center after an
	// out-of-cycle re-decision so the same blocked check does not fire again.
	GhostNudgeStep = 0.1

	// CaptureRadius is the player-ghost distance below which they meet.
	CaptureRadius = 0.7
)

// ChaseBestProbability is the chance a chasing ghost takes its best-ranked
// direction instead of a random legal one.
const ChaseBestProbability = 0.7

// Mouth animation bounds.
const (
	MouthMin = 0.0
	MouthMax = 0.5
)

// Tuning holds the numbers that may be changed through configuration.
type Tuning struct {
	PlayerSpeed      float64       // grid units per tick
	GhostSpeeds      []float64     // per ghost, in layout order; missing entries use the layout speed
	ItemScore        int           // points per regular item
	PowerItemScore   int           // points per power item
	CaptureBonus     int           // points per ghost captured in power mode
	PowerDuration    time.Duration // how long power mode lasts
	Lives            int           // lives at session start
	Step             time.Duration // fixed simulation timestep
	MaxTicksPerFrame int           // catch-up cap per scheduler pass, 0 disables the cap
	MouthStart       float64       // initial mouth phase
	MouthSpeed       float64       // mouth phase change per tick
}

// DefaultTuning returns the classic tuning: 90 Hz simulation, 3 lives,
// 10 second power mode.
func DefaultTuning() Tuning {
	return Tuning{
		PlayerSpeed:      0.08,
		ItemScore:        10,
		PowerItemScore:   50,
		CaptureBonus:     200,
		PowerDuration:    10 * time.Second,
		Lives:            3,
		Step:             time.Second / 90,
		MaxTicksPerFrame: 30,
		MouthStart:       0.2,
		MouthSpeed:       0.02,
	}
}

// ghostSpeed returns the configured speed for ghost i, falling back to def.
func (t Tuning) ghostSpeed(i int, def float64) float64 {
	if i < len(t.GhostSpeeds) && t.GhostSpeeds[i] > 0 {
		return t.GhostSpeeds[i]
	}
	return def
}
