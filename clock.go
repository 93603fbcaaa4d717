package tempo

import "time"

// Clock supplies the current time in seconds. Readings must never decrease.
// tempo never reads the system time on its own; the host injects a Clock.
type Clock interface {
	Now() float64
}

// ClockFunc adapts a plain function to Clock.
type ClockFunc func() float64

// Now calls f.
func (f ClockFunc) Now() float64 { return f() }

// ManualClock is a Clock advanced explicitly by the caller. Useful for
// fixed-step loops and tests.
type ManualClock struct {
	now float64
}

// Now returns the current reading.
func (c *ManualClock) Now() float64 { return c.now }

// Set moves the clock to t. Moving backward is ignored.
func (c *ManualClock) Set(t float64) {
	if t > c.now {
		c.now = t
	}
}

// Advance moves the clock forward by dt seconds and returns the new reading.
// Negative steps are ignored.
func (c *ManualClock) Advance(dt float64) float64 {
	if dt > 0 {
		c.now += dt
	}
	return c.now
}

// WallClock reports seconds elapsed since it was created, using the
// monotonic reading carried by time.Time.
type WallClock struct {
	origin time.Time
}

// NewWallClock returns a WallClock starting at zero.
func NewWallClock() *WallClock {
	return &WallClock{origin: time.Now()}
}

// Now returns seconds since the clock was created.
func (c *WallClock) Now() float64 {
	return time.Since(c.origin).Seconds()
}
