package timing

import "time"

// Gate admits at most one frame per interval. The zero Gate admits every
// frame.
type Gate struct {
	interval time.Duration
	last     time.Duration
	primed   bool
}

// NewGate returns a Gate capped at fps frames per second. fps <= 0 disables
// the cap.
func NewGate(fps int) Gate {
	if fps <= 0 {
		return Gate{}
	}
	return Gate{interval: time.Second / time.Duration(fps)}
}

// Interval returns the minimum spacing between admitted frames.
func (g *Gate) Interval() time.Duration {
	return g.interval
}

// Allow reports whether a frame at now should be processed and, if so,
// records now as the last processed frame. The first call is always admitted.
// Skipped frames do not move the reference point, so the admitted cadence
// follows the host's refresh timestamps rather than an ideal schedule.
func (g *Gate) Allow(now time.Duration) bool {
	if g.interval <= 0 {
		return true
	}
	if g.primed && now-g.last < g.interval {
		return false
	}
	g.primed = true
	g.last = now
	return true
}

// Reset forgets the last processed frame so the next Allow is admitted.
func (g *Gate) Reset() {
	g.primed = false
	g.last = 0
}
