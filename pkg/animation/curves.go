package animation

import "math"

// LinearCurve returns linear progress (no easing).
func LinearCurve(t float64) float64 {
	return t
}

// EaseInOut starts and ends slowly with acceleration in the middle.
// This is the curve used for the overlay fade.
var EaseInOut = CubicBezier(0.42, 0.0, 0.58, 1.0)

// EaseOut starts quickly and decelerates.
var EaseOut = CubicBezier(0.0, 0.0, 0.58, 1.0)

// CubicBezier returns a cubic-bezier easing function matching CSS cubic-bezier().
// The curve starts at (0,0) and ends at (1,1); (x1,y1) and (x2,y2) are the
// control points.
func CubicBezier(x1, y1, x2, y2 float64) func(float64) float64 {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		return bezierComponent(y1, y2, solveBezierX(x1, x2, t))
	}
}

// solveBezierX finds u with x(u) = t. Newton-Raphson first, bisection when
// the slope flattens out.
func solveBezierX(x1, x2, t float64) float64 {
	u := t
	for range 8 {
		x := bezierComponent(x1, x2, u) - t
		if math.Abs(x) < 1e-7 {
			return u
		}
		dx := bezierSlope(x1, x2, u)
		if math.Abs(dx) < 1e-7 {
			break
		}
		u -= x / dx
	}

	lo, hi := 0.0, 1.0
	u = math.Min(math.Max(u, 0), 1)
	for range 20 {
		x := bezierComponent(x1, x2, u) - t
		if math.Abs(x) < 1e-7 {
			break
		}
		if x > 0 {
			hi = u
		} else {
			lo = u
		}
		u = (lo + hi) * 0.5
	}
	return u
}

func bezierComponent(a, b, u float64) float64 {
	inv := 1 - u
	return 3*inv*inv*u*a + 3*inv*u*u*b + u*u*u
}

func bezierSlope(a, b, u float64) float64 {
	inv := 1 - u
	return 3*inv*inv*a + 6*inv*u*(b-a) + 3*u*u*(1-b)
}
