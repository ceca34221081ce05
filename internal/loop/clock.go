// Package loop drives a game without a terminal: a fixed or wall clock
// feeds frame deltas, a pilot supplies intents and the driver steps the
// simulation until it ends, runs out of frames or is cancelled.
package loop

import "time"

// Clock reports the wall time elapsed since the previous frame.
type Clock interface {
	Delta() time.Duration
}

// FixedClock returns the same delta every frame, making runs reproducible.
type FixedClock struct {
	Step time.Duration
}

// NewFixedClock creates a clock ticking at tickRate frames per second.
func NewFixedClock(tickRate int) FixedClock {
	if tickRate <= 0 {
		tickRate = 60
	}
	return FixedClock{Step: time.Second / time.Duration(tickRate)}
}

// Delta returns the fixed step.
func (c FixedClock) Delta() time.Duration {
	return c.Step
}

// WallClock measures real elapsed time between calls.
type WallClock struct {
	now  func() time.Time
	last time.Time
}

// NewWallClock creates a clock reading the system time.
func NewWallClock() *WallClock {
	return newWallClock(time.Now)
}

func newWallClock(now func() time.Time) *WallClock {
	return &WallClock{now: now, last: now()}
}

// Delta returns the time since the previous call (or since creation).
func (c *WallClock) Delta() time.Duration {
	t := c.now()
	d := t.Sub(c.last)
	c.last = t
	return d
}
