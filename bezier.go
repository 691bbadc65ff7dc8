package framer

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidCurve is returned by ParseCurve for malformed input.
var ErrInvalidCurve = errors.New("framer: invalid curve")

// Curve holds the two interior control points of a cubic bezier easing
// curve. The end points are implicitly (0,0) and (1,1).
type Curve struct {
	P1, P2 Point
}

// Named easing curves.
var (
	CurveLinear    = Curve{Point{0, 0}, Point{1, 1}}
	CurveEase      = Curve{Point{0.25, 0.1}, Point{0.25, 1}}
	CurveEaseIn    = Curve{Point{0.42, 0}, Point{1, 1}}
	CurveEaseOut   = Curve{Point{0, 0}, Point{0.58, 1}}
	CurveEaseInOut = Curve{Point{0.42, 0}, Point{0.58, 1}}
)

var namedCurves = map[string]Curve{
	"linear":      CurveLinear,
	"ease":        CurveEase,
	"ease-in":     CurveEaseIn,
	"ease-out":    CurveEaseOut,
	"ease-in-out": CurveEaseInOut,
}

// ParseCurve accepts a curve name ("linear", "ease", "ease-in", "ease-out",
// "ease-in-out") or four comma separated control values "x1,y1,x2,y2".
func ParseCurve(s string) (Curve, error) {
	s = strings.TrimSpace(s)
	if c, ok := namedCurves[strings.ToLower(s)]; ok {
		return c, nil
	}
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return Curve{}, fmt.Errorf("%w: %q", ErrInvalidCurve, s)
	}
	var v [4]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return Curve{}, fmt.Errorf("%w: %q: %w", ErrInvalidCurve, s, err)
		}
		v[i] = f
	}
	return Curve{Point{v[0], v[1]}, Point{v[2], v[3]}}, nil
}

// Solver returns the UnitBezier for c.
func (c Curve) Solver() UnitBezier {
	return NewUnitBezier(c.P1, c.P2)
}

// UnitBezier solves a cubic bezier in the unit square for y given x. It is
// immutable and safe to share.
type UnitBezier struct {
	a, b, c Point
}

// NewUnitBezier precomputes the polynomial coefficients for the curve with
// control points p1 and p2.
func NewUnitBezier(p1, p2 Point) UnitBezier {
	c := Point{3 * p1.X, 3 * p1.Y}
	b := Point{3*(p2.X-p1.X) - c.X, 3*(p2.Y-p1.Y) - c.Y}
	a := Point{1 - c.X - b.X, 1 - c.Y - b.Y}
	return UnitBezier{a: a, b: b, c: c}
}

// SampleX evaluates x(t) in Horner form.
func (u UnitBezier) SampleX(t float64) float64 {
	return ((u.a.X*t+u.b.X)*t + u.c.X) * t
}

// SampleY evaluates y(t) in Horner form.
func (u UnitBezier) SampleY(t float64) float64 {
	return ((u.a.Y*t+u.b.Y)*t + u.c.Y) * t
}

// SampleDerivativeX evaluates dx/dt.
func (u UnitBezier) SampleDerivativeX(t float64) float64 {
	return (3*u.a.X*t+2*u.b.X)*t + u.c.X
}

// newtonIterations bounds the Newton-Raphson phase of SolveForT.
const newtonIterations = 8

// SolveForT finds t such that SampleX(t) is within epsilon of x. Newton's
// method is tried first; when it does not converge, or the slope gets too
// flat to trust, bisection over [0,1] finishes the job.
func (u UnitBezier) SolveForT(x, epsilon float64) float64 {
	t := x
	for i := 0; i < newtonIterations; i++ {
		dx := u.SampleX(t) - x
		if math.Abs(dx) < epsilon {
			return t
		}
		d := u.SampleDerivativeX(t)
		if math.Abs(d) < epsilon {
			break
		}
		t -= dx / d
	}

	lo, hi := 0.0, 1.0
	t = x
	if t < lo {
		return lo
	}
	if t > hi {
		return hi
	}
	for lo < hi {
		sx := u.SampleX(t)
		if math.Abs(sx-x) < epsilon {
			return t
		}
		if x > sx {
			lo = t
		} else {
			hi = t
		}
		next := (hi-lo)*0.5 + lo
		if next == t {
			// interval can no longer shrink in float64
			break
		}
		t = next
	}
	return t
}

// Solve returns y for the given x.
func (u UnitBezier) Solve(x, epsilon float64) float64 {
	return u.SampleY(u.SolveForT(x, epsilon))
}

// SolveEpsilon is the solver precision for an animation lasting duration
// seconds. Longer animations need a tighter tolerance per frame.
func SolveEpsilon(duration float64) float64 {
	return 1.0 / (200.0 * duration)
}

// SolveBezier solves the curve with control points (p1x, p1y, p2x, p2y) at x.
func SolveBezier(p1x, p1y, p2x, p2y, x, epsilon float64) float64 {
	return NewUnitBezier(Point{p1x, p1y}, Point{p2x, p2y}).Solve(x, epsilon)
}
