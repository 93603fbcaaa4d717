package tempo

import (
	"errors"
	"log/slog"
	"strconv"
)

// State is the lifecycle position of a Tween.
type State uint8

const (
	Delaying  State = iota // waiting for Delay to pass
	Running                // emitting eased ratios
	Idle                   // chained; waits for its source to complete
	Completed              // finished; terminal
	Cancelled              // stopped without completing; terminal
)

func (s State) String() string {
	switch s {
	case Delaying:
		return "Delaying"
	case Running:
		return "Running"
	case Idle:
		return "Idle"
	case Completed:
		return "Completed"
	case Cancelled:
		return "Cancelled"
	default:
		return "State(" + strconv.Itoa(int(s)) + ")"
	}
}

// problem is a bit set of configuration errors already reported by a tween.
type problem uint8

const (
	problemNegativeDelay problem = 1 << iota
	problemDirection
	problemKind
	problemMissingFunc
	problemNegativeDuration
)

// Tween turns elapsed time into an eased ratio and hands it to listeners.
// The exported fields may be changed at any time; changes made before the
// delay has passed take full effect.
//
// A Tween is not safe for concurrent use. The host calls Tick once per frame
// with a monotonic time reading.
type Tween struct {
	Duration  float64   // seconds; ≤ 0 completes on the first tick past Delay
	Delay     float64   // seconds before timing starts
	Loop      bool      // restart instead of completing
	PingPong  bool      // play forward then backward within one Duration
	Kind      Kind      // easing curve
	Direction Direction // how Kind is composed
	Custom    Func      // used when Kind is Custom

	state     State
	startTime float64
	started   bool

	onStart    []func()
	onUpdate   []func(ratio float64)
	onComplete []func()
	chained    []*Tween

	owner    Owner
	logger   *slog.Logger
	reported problem
}

// New creates a running tween whose timing starts at clock.Now(). A nil
// clock starts the tween at time zero.
func New(clock Clock, opts ...Option) *Tween {
	t := &Tween{Duration: defaultDuration}
	for _, opt := range opts {
		opt(t)
	}
	if clock != nil {
		t.startTime = clock.Now()
	}
	t.validate()
	return t
}

// OnStart registers fn to run once, on the first tick past the delay.
func (t *Tween) OnStart(fn func()) *Tween {
	if fn != nil {
		t.onStart = append(t.onStart, fn)
	}
	return t
}

// OnUpdate registers fn to receive every eased ratio, including the final
// one (1, or 0 for ping-pong tweens).
func (t *Tween) OnUpdate(fn func(ratio float64)) *Tween {
	if fn != nil {
		t.onUpdate = append(t.onUpdate, fn)
	}
	return t
}

// OnComplete registers fn to run once when a non-looping tween finishes.
// Chained tweens are already running when fn is called.
func (t *Tween) OnComplete(fn func()) *Tween {
	if fn != nil {
		t.onComplete = append(t.onComplete, fn)
	}
	return t
}

// State returns the current lifecycle state.
func (t *Tween) State() State { return t.state }

// Done reports whether the tween reached a terminal state. A done tween
// ignores further ticks and can be dropped by its host.
func (t *Tween) Done() bool {
	return t.state == Completed || t.state == Cancelled
}

// Started reports whether the delay has passed at least once.
func (t *Tween) Started() bool { return t.started }

// StartTime returns the clock reading timing is measured from. It moves on
// every loop restart and when a chained tween is activated.
func (t *Tween) StartTime() float64 { return t.startTime }

// Chained returns the tweens activated when t completes, in activation
// order. The returned slice must not be mutated.
func (t *Tween) Chained() []*Tween { return t.chained }

// Err returns every configuration problem seen so far, joined, or nil.
func (t *Tween) Err() error {
	if t.reported == 0 {
		return nil
	}
	var errs []error
	if t.reported&problemNegativeDelay != 0 {
		errs = append(errs, ErrNegativeDelay)
	}
	if t.reported&problemNegativeDuration != 0 {
		errs = append(errs, ErrNegativeDuration)
	}
	if t.reported&problemDirection != 0 {
		errs = append(errs, ErrInvalidDirection)
	}
	if t.reported&problemKind != 0 {
		errs = append(errs, ErrInvalidKind)
	}
	if t.reported&problemMissingFunc != 0 {
		errs = append(errs, ErrMissingEasingFunction)
	}
	return errors.Join(errs...)
}

// Tick advances the tween to now. Idle, completed and cancelled tweens
// ignore it, so a host may tick a finished tween again without effect.
func (t *Tween) Tick(now float64) {
	switch t.state {
	case Idle, Completed, Cancelled:
		return
	}
	if t.owner != nil && t.owner.IsDisposed() {
		t.log().Debug("tempo: owner disposed, cancelling tween")
		t.Cancel()
		return
	}

	elapsed := now - t.startTime - t.delay()
	if elapsed < 0 {
		t.state = Delaying
		return
	}
	t.state = Running

	if !t.started {
		t.started = true
		for _, fn := range t.onStart {
			fn()
		}
		if t.state != Running {
			return
		}
	}

	ratio := 1.0
	if d := t.duration(); d > 0 {
		ratio = elapsed / d
	}
	if ratio >= 1 {
		t.finish(now)
		return
	}
	if ratio <= 0 {
		return
	}

	fn := t.easing()
	if t.PingPong {
		ratio = PingPong(ratio)
	}
	t.emit(Compose(ratio, fn, t.direction()))
}

// Cancel stops the tween without firing OnComplete and without activating
// chained tweens. Chained tweens still waiting on t are cancelled too, since
// nothing else can release them. Cancelling a done tween has no effect.
func (t *Tween) Cancel() {
	if t.Done() {
		return
	}
	t.state = Cancelled
	t.owner = nil
	for _, c := range t.chained {
		if c.state == Idle {
			c.Cancel()
		}
	}
}

// finish emits the terminal ratio, then either restarts the cycle or
// completes.
func (t *Tween) finish(now float64) {
	if t.PingPong {
		t.emit(0)
	} else {
		t.emit(1)
	}
	if t.state != Running {
		return
	}

	if t.Loop {
		t.startTime = now
		t.state = Delaying
		return
	}

	for _, c := range t.chained {
		c.activate(now)
	}
	t.state = Completed
	for _, fn := range t.onComplete {
		fn()
	}
	t.owner = nil
}

// activate releases an idle chained tween, measuring from now.
func (t *Tween) activate(now float64) {
	if t.state != Idle {
		return
	}
	t.startTime = now
	t.state = Delaying
	t.log().Debug("tempo: chained tween activated", "at", now)
}

func (t *Tween) emit(v float64) {
	for _, fn := range t.onUpdate {
		fn(v)
	}
}

func (t *Tween) delay() float64 {
	if t.Delay < 0 {
		t.report(problemNegativeDelay, ErrNegativeDelay, "delay", t.Delay)
		return 0
	}
	return t.Delay
}

func (t *Tween) duration() float64 {
	if t.Duration < 0 {
		t.report(problemNegativeDuration, ErrNegativeDuration, "duration", t.Duration)
		return 0
	}
	return t.Duration
}

func (t *Tween) easing() Func {
	fn, err := Resolve(t.Kind, t.Custom)
	switch err {
	case nil:
	case ErrMissingEasingFunction:
		t.report(problemMissingFunc, err, "kind", t.Kind)
	default:
		t.report(problemKind, err, "kind", t.Kind)
	}
	return fn
}

func (t *Tween) direction() Direction {
	if !t.Direction.Valid() {
		t.report(problemDirection, ErrInvalidDirection, "direction", t.Direction)
		return EaseOut
	}
	return t.Direction
}

// validate reports configuration problems present at construction, so they
// surface before the first tick.
func (t *Tween) validate() {
	t.delay()
	t.duration()
	t.easing()
	t.direction()
}

// report logs err the first time p is seen on this tween.
func (t *Tween) report(p problem, err error, key string, value any) {
	if t.reported&p != 0 {
		return
	}
	t.reported |= p
	t.log().Warn("tempo: tween misconfigured, using default", "err", err, key, value)
}

func (t *Tween) log() *slog.Logger {
	if t.logger != nil {
		return t.logger
	}
	return Logger()
}
