package tempo

import (
	"math"
	"testing"
)

func TestComposeDirectionSymmetry(t *testing.T) {
	for _, k := range builtinKinds {
		for i := 0; i <= 20; i++ {
			r := float64(i) / 20
			out := ComposeDirection(r, k, EaseOut)
			in := ComposeDirection(1-r, k, EaseIn)
			if math.Abs(out-(1-in)) > epsilon {
				t.Errorf("%v at %v: EaseOut = %v, 1-EaseIn(1-r) = %v", k, r, out, 1-in)
			}
		}
	}
}

func TestComposeEaseInOutMidpoint(t *testing.T) {
	for _, k := range builtinKinds {
		if got := ComposeDirection(0.5, k, EaseInOut); math.Abs(got-0.5) > epsilon {
			t.Errorf("%v EaseInOut(0.5) = %v, want 0.5", k, got)
		}
	}
}

func TestComposeEndpoints(t *testing.T) {
	for _, k := range builtinKinds {
		for _, d := range []Direction{EaseIn, EaseOut, EaseInOut} {
			if got := ComposeDirection(0, k, d); math.Abs(got) > epsilon {
				t.Errorf("%v/%v at 0 = %v, want 0", k, d, got)
			}
			if got := ComposeDirection(1, k, d); math.Abs(got-1) > epsilon {
				t.Errorf("%v/%v at 1 = %v, want 1", k, d, got)
			}
		}
	}
}

func TestComposeQuadratic(t *testing.T) {
	tests := []struct {
		dir   Direction
		ratio float64
		want  float64
	}{
		{EaseIn, 0.5, 0.25},
		{EaseOut, 0.5, 0.75},
		{EaseInOut, 0.25, 0.125},
		{EaseInOut, 0.75, 0.875},
	}
	for _, tt := range tests {
		if got := ComposeDirection(tt.ratio, Quadratic, tt.dir); math.Abs(got-tt.want) > epsilon {
			t.Errorf("Quadratic %v at %v = %v, want %v", tt.dir, tt.ratio, got, tt.want)
		}
	}
}

func TestComposeInvalidDirectionIsEaseOut(t *testing.T) {
	got := Compose(0.5, easeQuadratic, Direction(9))
	want := Compose(0.5, easeQuadratic, EaseOut)
	if got != want {
		t.Errorf("invalid direction = %v, want EaseOut value %v", got, want)
	}
	if Direction(9).Valid() {
		t.Error("Direction(9) should not be valid")
	}
	if Direction(9).String() != "Direction(9)" {
		t.Errorf("Direction(9).String() = %q", Direction(9).String())
	}
}

func TestPingPong(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{0, 0},
		{0.25, 0.5},
		{0.5, 1},
		{0.75, 0.5},
		{1, 0},
	}
	for _, tt := range tests {
		if got := PingPong(tt.in); math.Abs(got-tt.want) > epsilon {
			t.Errorf("PingPong(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
