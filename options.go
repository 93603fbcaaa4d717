package tempo

import "log/slog"

const defaultDuration = 1.0

// Option configures a Tween during creation.
//
// Example:
//
//	tw := tempo.New(clock,
//		tempo.WithDuration(0.4),
//		tempo.WithEasing(tempo.Back),
//		tempo.WithDirection(tempo.EaseInOut),
//	)
type Option func(*Tween)

// WithDuration sets the cycle length in seconds. Durations ≤ 0 complete on
// the first tick past the delay.
func WithDuration(seconds float64) Option {
	return func(t *Tween) { t.Duration = seconds }
}

// WithDelay postpones the start by seconds. The delay is applied again at
// the start of every loop cycle.
func WithDelay(seconds float64) Option {
	return func(t *Tween) { t.Delay = seconds }
}

// WithEasing selects a built-in curve.
func WithEasing(k Kind) Option {
	return func(t *Tween) { t.Kind = k }
}

// WithCustomEasing selects Custom with fn as the curve.
func WithCustomEasing(fn Func) Option {
	return func(t *Tween) {
		t.Kind = Custom
		t.Custom = fn
	}
}

// WithDirection sets how the curve is composed.
func WithDirection(d Direction) Option {
	return func(t *Tween) { t.Direction = d }
}

// WithLoop makes the tween restart instead of completing.
func WithLoop() Option {
	return func(t *Tween) { t.Loop = true }
}

// WithPingPong plays the curve forward over the first half of each cycle
// and backward over the second half.
func WithPingPong() Option {
	return func(t *Tween) { t.PingPong = true }
}

// WithOwner ties the tween to owner. Once owner reports disposed the tween
// cancels itself on its next tick.
func WithOwner(owner Owner) Option {
	return func(t *Tween) { t.owner = owner }
}

// WithLogger overrides the package logger for this tween.
func WithLogger(l *slog.Logger) Option {
	return func(t *Tween) { t.logger = l }
}

// Config is the value form of the options, for hosts that keep tween
// settings in their own data structures.
type Config struct {
	Duration  float64
	Delay     float64
	Loop      bool
	PingPong  bool
	Kind      Kind
	Direction Direction
	Custom    Func
}

// DefaultConfig returns a one-second linear EaseOut configuration.
func DefaultConfig() Config {
	return Config{Duration: defaultDuration, Kind: Linear, Direction: EaseOut}
}

// Option returns an Option that applies every field of c.
func (c Config) Option() Option {
	return func(t *Tween) {
		t.Duration = c.Duration
		t.Delay = c.Delay
		t.Loop = c.Loop
		t.PingPong = c.PingPong
		t.Kind = c.Kind
		t.Direction = c.Direction
		t.Custom = c.Custom
	}
}
