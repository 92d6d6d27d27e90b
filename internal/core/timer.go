package core

import "time"

// DeltaClock measures the wall time elapsed between host ticks.
type DeltaClock struct {
	now  func() time.Time
	last time.Time
	max  time.Duration
}

// NewDeltaClock constructs a DeltaClock. Deltas larger than max are clamped so
// that a stalled tick (window drag, blocking file dialog) does not skip a long
// stretch of animation. A non-positive max disables clamping.
func NewDeltaClock(max time.Duration) *DeltaClock {
	return &DeltaClock{now: time.Now, max: max}
}

// Tick returns the time since the previous call. The first call returns zero.
func (c *DeltaClock) Tick() time.Duration {
	now := c.now()
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	delta := now.Sub(c.last)
	c.last = now
	if delta < 0 {
		return 0
	}
	if c.max > 0 && delta > c.max {
		return c.max
	}
	return delta
}

// Restart forgets the previous tick so the next Tick returns zero.
func (c *DeltaClock) Restart() { c.last = time.Time{} }
