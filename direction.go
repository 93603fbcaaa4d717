package tempo

import "strconv"

// Direction controls where an easing curve's distortion is concentrated:
// at the start (EaseIn), at the end (EaseOut) or at both ends (EaseInOut).
type Direction uint8

const (
	EaseOut   Direction = iota // 1 − f(1 − r); the default
	EaseIn                     // f(r)
	EaseInOut                  // f(2r)/2, then mirrored for the second half
)

func (d Direction) String() string {
	switch d {
	case EaseOut:
		return "EaseOut"
	case EaseIn:
		return "EaseIn"
	case EaseInOut:
		return "EaseInOut"
	default:
		return "Direction(" + strconv.Itoa(int(d)) + ")"
	}
}

// Valid reports whether d is one of the declared directions.
func (d Direction) Valid() bool {
	return d <= EaseInOut
}

// Compose applies direction d to curve fn at ratio. Unknown directions
// compose as EaseOut.
func Compose(ratio float64, fn Func, d Direction) float64 {
	switch d {
	case EaseIn:
		return fn(ratio)
	case EaseInOut:
		if ratio < 0.5 {
			return fn(ratio*2) / 2
		}
		return 1 - fn((1-ratio)*2)/2
	default:
		return 1 - fn(1-ratio)
	}
}

// ComposeDirection is Compose over the built-in curve k.
func ComposeDirection(ratio float64, k Kind, d Direction) float64 {
	if k >= Custom {
		return Compose(ratio, easeLinear, d)
	}
	return Compose(ratio, builtin[k], d)
}

// PingPong folds a cycle ratio so the first half plays forward and the
// second half plays the same path backward.
func PingPong(ratio float64) float64 {
	if ratio < 0.5 {
		return ratio * 2
	}
	return (1 - ratio) * 2
}
