package engine

import "time"

// Scheduler converts wall-clock frames into a whole number of fixed-length
// simulation steps. The remainder carries over to the next frame.
type Scheduler struct {
	Step             time.Duration
	MaxTicksPerFrame int // 0 means unlimited

	acc     time.Duration
	last    time.Time
	started bool
	paused  bool
}

// NewScheduler returns a scheduler running steps of length step.
func NewScheduler(step time.Duration, maxTicks int) *Scheduler {
	return &Scheduler{Step: step, MaxTicksPerFrame: maxTicks}
}

// Frame feeds a display-frame timestamp. The first call after construction,
// Reset or an unpause only records the time. Returns the number of ticks run.
func (s *Scheduler) Frame(now time.Time, tick func()) int {
	if s.paused {
		return 0
	}
	if !s.started {
		s.last = now
		s.started = true
		return 0
	}

	elapsed := now.Sub(s.last)
	s.last = now
	if elapsed < 0 {
		elapsed = 0
	}
	return s.Advance(elapsed, tick)
}

// Advance adds elapsed to the accumulator and runs whole steps. When more
// than MaxTicksPerFrame steps are owed the excess is dropped, keeping only
// the sub-step remainder.
func (s *Scheduler) Advance(elapsed time.Duration, tick func()) int {
	if s.paused || s.Step <= 0 {
		return 0
	}

	s.acc += elapsed
	n := 0
	for s.acc >= s.Step {
		if s.MaxTicksPerFrame > 0 && n >= s.MaxTicksPerFrame {
			s.acc %= s.Step
			break
		}
		tick()
		s.acc -= s.Step
		n++
	}
	return n
}

// SetPaused freezes or resumes the scheduler. Resuming forgets the last
// frame time so the paused interval is never simulated.
func (s *Scheduler) SetPaused(paused bool) {
	if s.paused == paused {
		return
	}
	s.paused = paused
	if !paused {
		s.started = false
	}
}

// Paused reports whether the scheduler is paused.
func (s *Scheduler) Paused() bool {
	return s.paused
}

// Pending returns the accumulated time not yet simulated.
func (s *Scheduler) Pending() time.Duration {
	return s.acc
}

// Reset clears the accumulator and timing state and unpauses.
func (s *Scheduler) Reset() {
	s.acc = 0
	s.last = time.Time{}
	s.started = false
	s.paused = false
}
