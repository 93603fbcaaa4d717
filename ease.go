package tempo

import (
	"math"
	"strconv"

	"github.com/tanema/gween/ease"
)

// Kind selects one of the built-in easing curves, or Custom for a
// caller-supplied Func.
type Kind uint8

const (
	Linear      Kind = iota // p
	Quadratic               // p²
	Cubic                   // p³
	Quartic                 // p⁴
	Quintic                 // p⁵
	Sine                    // 1 − cos(pπ/2)
	Circular                // 1 − sqrt(1 − p²)
	Exponential             // 2^(10(p−1))
	Back                    // p³ − p·sin(pπ)
	Elastic                 // sin(6.5πp) · 2^(10(p−1))
	Bounce                  // |sin(6.5πp) · 2^(10(p−1))|
	Custom                  // Tween.Custom

	kindCount
)

var kindNames = [kindCount]string{
	"Linear", "Quadratic", "Cubic", "Quartic", "Quintic", "Sine",
	"Circular", "Exponential", "Back", "Elastic", "Bounce", "Custom",
}

func (k Kind) String() string {
	if k.Valid() {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	return k < kindCount
}

// Func maps a progress fraction in [0, 1] to an eased fraction. The result
// is not required to stay inside [0, 1].
type Func func(p float64) float64

// builtin holds the formula of every non-custom kind. Entries are plain
// functions so Resolve never allocates a closure.
var builtin = [Custom]Func{
	Linear:      easeLinear,
	Quadratic:   easeQuadratic,
	Cubic:       easeCubic,
	Quartic:     easeQuartic,
	Quintic:     easeQuintic,
	Sine:        easeSine,
	Circular:    easeCircular,
	Exponential: easeExponential,
	Back:        easeBack,
	Elastic:     easeElastic,
	Bounce:      easeBounce,
}

// Ease evaluates the built-in curve k at p. Exactly 0 and exactly 1 are
// returned unchanged, so every curve starts at 0 and ends at 1. Custom and
// unknown kinds evaluate as identity; use Resolve to detect those cases.
func Ease(k Kind, p float64) float64 {
	if k >= Custom {
		return p
	}
	return builtin[k](p)
}

// Resolve returns the function a tween configured with k and custom should
// use. A Custom kind with no function and an unknown kind both degrade to
// Linear and report why.
func Resolve(k Kind, custom Func) (Func, error) {
	switch {
	case k < Custom:
		return builtin[k], nil
	case k == Custom && custom != nil:
		return custom, nil
	case k == Custom:
		return easeLinear, ErrMissingEasingFunction
	default:
		return easeLinear, ErrInvalidKind
	}
}

// FromPenner adapts a Penner-style gween curve (t, begin, change, duration)
// into a Func over the unit interval. Any curve in gween/ease can then be
// used as a Custom easing:
//
//	tw := tempo.New(clock, tempo.WithCustomEasing(tempo.FromPenner(ease.OutBack)))
func FromPenner(fn ease.TweenFunc) Func {
	if fn == nil {
		return nil
	}
	return func(p float64) float64 {
		return float64(fn(float32(p), 0, 1, 1))
	}
}

// Lerp interpolates between from and to without clamping ratio, so curves
// that overshoot (Back, Elastic) carry their overshoot into the result.
func Lerp(from, to, ratio float64) float64 {
	return from + (to-from)*ratio
}

func easeLinear(p float64) float64 { return p }

func easeQuadratic(p float64) float64 { return p * p }

func easeCubic(p float64) float64 { return p * p * p }

func easeQuartic(p float64) float64 {
	p2 := p * p
	return p2 * p2
}

func easeQuintic(p float64) float64 {
	p2 := p * p
	return p2 * p2 * p
}

func easeSine(p float64) float64 {
	if p == 0 || p == 1 {
		return p
	}
	return 1 - math.Cos(p*math.Pi/2)
}

func easeCircular(p float64) float64 {
	if p == 0 || p == 1 {
		return p
	}
	return 1 - math.Sqrt(1-p*p)
}

func easeExponential(p float64) float64 {
	if p == 0 || p == 1 {
		return p
	}
	return math.Pow(2, 10*(p-1))
}

func easeBack(p float64) float64 {
	if p == 0 || p == 1 {
		return p
	}
	return p*p*p - p*math.Sin(p*math.Pi)
}

func easeElastic(p float64) float64 {
	if p == 0 || p == 1 {
		return p
	}
	return math.Sin(6.5*math.Pi*p) * math.Pow(2, 10*(p-1))
}

func easeBounce(p float64) float64 {
	if p == 0 || p == 1 {
		return p
	}
	return math.Abs(math.Sin(6.5*math.Pi*p) * math.Pow(2, 10*(p-1)))
}
