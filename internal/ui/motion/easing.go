package motion

import "math"

// CubicBezier is an easing curve through (0,0), (X1,Y1), (X2,Y2), (1,1).
type CubicBezier struct {
	X1, Y1, X2, Y2 float64
}

// Standard curves.
var (
	Linear          = CubicBezier{0, 0, 1, 1}
	FastOutSlowIn   = CubicBezier{0.4, 0, 0.2, 1}
	LinearOutSlowIn = CubicBezier{0, 0, 0.2, 1}
	FastOutLinearIn = CubicBezier{0.4, 0, 1, 1}
	EaseInOut       = CubicBezier{0.42, 0, 0.58, 1}
)

const (
	bezierEpsilon    = 1e-7
	newtonIterations = 8
)

// Ease maps linear progress p in [0,1] onto the curve.
func (c CubicBezier) Ease(p float64) float64 {
	switch {
	case p <= 0:
		return 0
	case p >= 1:
		return 1
	}
	if c.X1 == c.Y1 && c.X2 == c.Y2 {
		return p
	}
	return bezier(c.solve(p), c.Y1, c.Y2)
}

// solve finds the curve parameter whose x coordinate is x. Newton steps
// converge for well-behaved curves; bisection covers the rest.
func (c CubicBezier) solve(x float64) float64 {
	t := x
	for range newtonIterations {
		err := bezier(t, c.X1, c.X2) - x
		if math.Abs(err) < bezierEpsilon {
			return t
		}
		d := bezierSlope(t, c.X1, c.X2)
		if math.Abs(d) < bezierEpsilon {
			break
		}
		t -= err / d
		if t < 0 || t > 1 {
			break
		}
	}

	lo, hi := 0.0, 1.0
	t = x
	for hi-lo > bezierEpsilon {
		v := bezier(t, c.X1, c.X2)
		if math.Abs(v-x) < bezierEpsilon {
			return t
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

func bezier(t, p1, p2 float64) float64 {
	u := 1 - t
	return 3*u*u*t*p1 + 3*u*t*t*p2 + t*t*t
}

func bezierSlope(t, p1, p2 float64) float64 {
	u := 1 - t
	return 3*u*u*p1 + 6*u*t*(p2-p1) + 3*t*t*(1-p2)
}
