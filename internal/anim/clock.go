// Package anim drives looping frame playback from per-frame delays.
package anim

import "time"

// MinDelay is substituted for frame delays that are missing or non-positive.
const MinDelay = 100 * time.Millisecond

// Clock tracks the current frame of a looping animation.
type Clock struct {
	delays  []time.Duration
	frame   int
	elapsed time.Duration
}

// NewClock returns a clock for frames with the given delays. Non-positive
// delays are replaced with MinDelay.
func NewClock(delays []time.Duration) *Clock {
	c := &Clock{}
	c.SetDelays(delays)
	return c
}

// SetDelays replaces the frame delays and restarts playback.
func (c *Clock) SetDelays(delays []time.Duration) {
	c.delays = make([]time.Duration, len(delays))
	for i, d := range delays {
		if d <= 0 {
			d = MinDelay
		}
		c.delays[i] = d
	}
	c.Reset()
}

// Reset restarts playback from the first frame.
func (c *Clock) Reset() {
	c.frame = 0
	c.elapsed = 0
}

// Active reports whether there is more than one frame to cycle through.
func (c *Clock) Active() bool { return len(c.delays) > 1 }

// Frame returns the current frame index.
func (c *Clock) Frame() int { return c.frame }

// Frames returns the number of frames.
func (c *Clock) Frames() int { return len(c.delays) }

// Elapsed returns the time spent on the current frame so far.
func (c *Clock) Elapsed() time.Duration { return c.elapsed }

// Loop returns the total duration of one pass through all frames.
func (c *Clock) Loop() time.Duration {
	var total time.Duration
	for _, d := range c.delays {
		total += d
	}
	return total
}

// Tick accumulates dt and advances at most one frame when the current frame's
// delay has been reached. The accumulator is reset to zero on advance, so any
// overshoot is dropped. Tick reports whether the frame changed.
func (c *Clock) Tick(dt time.Duration) bool {
	if !c.Active() || dt < 0 {
		return false
	}
	c.elapsed += dt
	if c.elapsed < c.delays[c.frame] {
		return false
	}
	c.elapsed = 0
	c.frame = (c.frame + 1) % len(c.delays)
	return true
}
