package anim

import "math"

// Easing maps linear progress in [0,1] to eased progress.
type Easing func(t float64) float64

// Linear is the identity easing.
func Linear(t float64) float64 { return t }

// EaseInOut is the CSS ease-in-out curve, cubic-bezier(0.42, 0, 0.58, 1).
var EaseInOut = CubicBezier(0.42, 0, 0.58, 1)

// CubicBezier builds an easing from the two inner control points of a
// cubic bezier whose endpoints are (0,0) and (1,1).
func CubicBezier(x1, y1, x2, y2 float64) Easing {
	cx := 3 * x1
	bx := 3*(x2-x1) - cx
	ax := 1 - cx - bx
	cy := 3 * y1
	by := 3*(y2-y1) - cy
	ay := 1 - cy - by

	sampleX := func(t float64) float64 { return ((ax*t+bx)*t + cx) * t }
	sampleY := func(t float64) float64 { return ((ay*t+by)*t + cy) * t }
	slopeX := func(t float64) float64 { return (3*ax*t+2*bx)*t + cx }

	solve := func(x float64) float64 {
		t := x
		for i := 0; i < 8; i++ {
			dx := sampleX(t) - x
			if math.Abs(dx) < 1e-7 {
				return t
			}
			d := slopeX(t)
			if math.Abs(d) < 1e-6 {
				break
			}
			t -= dx / d
		}
		// Newton stalled; fall back to bisection.
		lo, hi := 0.0, 1.0
		t = x
		for i := 0; i < 32; i++ {
			v := sampleX(t)
			if math.Abs(v-x) < 1e-7 {
				break
			}
			if v < x {
				lo = t
			} else {
				hi = t
			}
			t = (lo + hi) / 2
		}
		return t
	}

	return func(x float64) float64 {
		switch {
		case x <= 0:
			return 0
		case x >= 1:
			return 1
		}
		return sampleY(solve(x))
	}
}
