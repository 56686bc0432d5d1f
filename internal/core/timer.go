package core

import "time"

// DefaultFPS is the accepted frame rate used when none is configured.
const DefaultFPS = 12

// Throttle limits how often a per-tick callback does real work. A tick is
// accepted once at least one interval has passed since the previous accepted
// tick; accepted ticks do not accumulate debt.
type Throttle struct {
	interval time.Duration
	last     time.Duration
}

// NewThrottle constructs a Throttle accepting at most fps ticks per second.
func NewThrottle(fps int) *Throttle {
	t := &Throttle{}
	t.SetFPS(fps)
	return t
}

// SetFPS changes the accepted rate. Non-positive values fall back to DefaultFPS.
func (t *Throttle) SetFPS(fps int) {
	if fps <= 0 {
		fps = DefaultFPS
	}
	t.interval = time.Second / time.Duration(fps)
}

// Interval returns the minimum spacing between accepted ticks.
func (t *Throttle) Interval() time.Duration { return t.interval }

// Due reports whether the tick at now should do work, and records it if so.
func (t *Throttle) Due(now time.Duration) bool {
	if now-t.last < t.interval {
		return false
	}
	t.last = now
	return true
}

// Last returns the timestamp of the previously accepted tick.
func (t *Throttle) Last() time.Duration { return t.last }

// Reset forgets the previously accepted tick.
func (t *Throttle) Reset() { t.last = 0 }
