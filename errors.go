package tempo

import "errors"

var (
	// ErrMissingEasingFunction is reported when a tween selects Custom
	// without supplying a Func. The tween eases linearly instead.
	ErrMissingEasingFunction = errors.New("tempo: custom easing selected without a function")

	// ErrInvalidKind is reported for a Kind outside the declared set.
	ErrInvalidKind = errors.New("tempo: invalid easing kind")

	// ErrInvalidDirection is reported for a Direction outside the declared set.
	ErrInvalidDirection = errors.New("tempo: invalid easing direction")

	// ErrNegativeDelay is reported when Delay < 0. The delay is treated as 0.
	ErrNegativeDelay = errors.New("tempo: negative delay")

	// ErrNegativeDuration is reported when Duration < 0. The tween completes
	// on its first tick past the delay, as with a zero duration.
	ErrNegativeDuration = errors.New("tempo: negative duration")

	// ErrInvalidChain is returned when a tween is chained to nil or to itself.
	ErrInvalidChain = errors.New("tempo: chain target is nil or the source itself")

	// ErrChainSourceDone is returned when chaining from a completed or
	// cancelled tween, which would never activate the target.
	ErrChainSourceDone = errors.New("tempo: chain source already done")

	// ErrChainTargetStarted is returned when the chain target has already
	// started or finished and can no longer be suspended.
	ErrChainTargetStarted = errors.New("tempo: chain target already started")

	// ErrStaleHandle is returned by Host operations on a handle whose tween
	// has already been released.
	ErrStaleHandle = errors.New("tempo: stale tween handle")
)
