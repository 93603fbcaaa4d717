package ebitenhost

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/phanxgames/tempo"
)

// Stats holds timing for the most recent Driver.Update.
type Stats struct {
	Ticks    uint64        // updates processed so far
	Live     int           // tweens held by the host after the tick
	TickTime time.Duration // time spent in Host.Tick
}

// Driver advances its Clock and ticks its Host once per Ebitengine update.
// Embed it in your own ebiten.Game, or hand it to Run.
type Driver struct {
	Host  *tempo.Host
	Clock *Clock

	// OnUpdate, if set, runs after the host has ticked. A non-nil error
	// ends the game, as with ebiten.Game.Update.
	OnUpdate func() error

	debug bool
	stats Stats
}

// NewDriver creates a driver with a fresh tick clock and host.
func NewDriver(opts ...tempo.HostOption) *Driver {
	clock := NewClock()
	return &Driver{
		Host:  tempo.NewHost(clock, opts...),
		Clock: clock,
	}
}

// SetDebugMode enables per-update timing. Stats are then refreshed every
// update and logged at debug level through tempo.Logger.
func (d *Driver) SetDebugMode(enabled bool) {
	d.debug = enabled
}

// Stats returns the timing of the last update. TickTime is only measured
// in debug mode.
func (d *Driver) Stats() Stats { return d.stats }

// Update advances the clock one tick, ticks the host, then runs OnUpdate.
func (d *Driver) Update() error {
	d.Clock.Advance()

	var t0 time.Time
	if d.debug {
		t0 = time.Now()
	}
	d.Host.Tick()

	d.stats.Ticks = d.Clock.Ticks()
	d.stats.Live = d.Host.Len()
	if d.debug {
		d.stats.TickTime = time.Since(t0)
		tempo.Logger().Debug("ebitenhost: tick",
			"tick", d.stats.Ticks, "live", d.stats.Live, "took", d.stats.TickTime)
	}

	if d.OnUpdate != nil {
		return d.OnUpdate()
	}
	return nil
}

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title         string
	Width, Height int
	Background    color.Color         // cleared every frame when non-nil
	Draw          func(*ebiten.Image) // called after clearing
	ShowStats     bool                // overlay FPS, TPS and live tween count
}

// Run opens a window and runs d until the window closes or OnUpdate
// returns an error.
func Run(d *Driver, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("ebitenhost: invalid window size %dx%d", cfg.Width, cfg.Height)
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	return ebiten.RunGame(newGame(d, cfg))
}

// game adapts a Driver to ebiten.Game.
type game struct {
	driver *Driver
	cfg    RunConfig
}

func newGame(d *Driver, cfg RunConfig) *game {
	return &game{driver: d, cfg: cfg}
}

func (g *game) Update() error { return g.driver.Update() }

func (g *game) Draw(screen *ebiten.Image) {
	if g.cfg.Background != nil {
		screen.Fill(g.cfg.Background)
	}
	if g.cfg.Draw != nil {
		g.cfg.Draw(screen)
	}
	if g.cfg.ShowStats {
		ebitenutil.DebugPrint(screen, g.statsText())
	}
}

func (g *game) Layout(int, int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

func (g *game) statsText() string {
	return fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nTweens: %d",
		ebiten.ActualFPS(), ebiten.ActualTPS(), g.driver.Host.Len())
}
