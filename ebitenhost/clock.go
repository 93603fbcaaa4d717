// Package ebitenhost drives a tempo.Host from an Ebitengine game loop.
//
// Ebitengine calls Update a fixed number of times per second (TPS), so time
// is derived from the tick count rather than the wall clock. A paused or
// stalled game therefore pauses its tweens too.
//
//	d := ebitenhost.NewDriver()
//	h := d.Host.Create(nil, tempo.WithDuration(0.5))
//	...
//	ebitenhost.Run(d, ebitenhost.RunConfig{Title: "demo", Width: 640, Height: 480})
package ebitenhost

import "github.com/hajimehoshi/ebiten/v2"

// Clock is a tempo.Clock that advances by one tick per Advance call. The
// tick length is read from the TPS source on every advance, so changing
// ebiten.SetTPS mid-game never moves time backward.
type Clock struct {
	now   float64
	ticks uint64
	tps   func() int
}

// NewClock returns a Clock reading ebiten.TPS.
func NewClock() *Clock {
	return &Clock{tps: ebiten.TPS}
}

// Now returns seconds of game time elapsed.
func (c *Clock) Now() float64 { return c.now }

// Ticks returns how many times Advance has been called.
func (c *Clock) Ticks() uint64 { return c.ticks }

// Advance moves the clock forward by one tick and returns the new reading.
// When TPS is not a positive rate (ebiten.SyncWithFPS) the default rate is
// assumed.
func (c *Clock) Advance() float64 {
	tps := ebiten.DefaultTPS
	if c.tps != nil {
		if v := c.tps(); v > 0 {
			tps = v
		}
	}
	c.ticks++
	c.now += 1 / float64(tps)
	return c.now
}
