package framer

import "math"

// Animator produces the in-between values of one animation. Drivers call
// Next once per frame until IsFinished reports true.
type Animator interface {
	SetFrom(v any)
	SetTo(v any)
	// IsReady reports whether both end points are set.
	IsReady() bool
	// Next advances by delta seconds and returns the current value.
	Next(delta float64) any
	IsFinished() bool
}

// valueRange holds the end points shared by the interpolating animators.
type valueRange struct {
	interp       Interpolation
	from, to     any
	hasFrom      bool
	hasTo        bool
	interpolator func(progress float64) any
}

func newValueRange(interp Interpolation) valueRange {
	if interp == nil {
		interp = AnyInterpolation
	}
	return valueRange{interp: interp}
}

func (r *valueRange) SetFrom(v any) {
	r.from, r.hasFrom = v, true
	r.update()
}

func (r *valueRange) SetTo(v any) {
	r.to, r.hasTo = v, true
	r.update()
}

func (r *valueRange) IsReady() bool { return r.interpolator != nil }

func (r *valueRange) update() {
	if r.hasFrom && r.hasTo {
		r.interpolator = r.interp.Interpolate(r.from, r.to)
	}
}

// at returns the value at progress p, or the start value when not ready.
func (r *valueRange) at(p float64) any {
	if r.interpolator == nil {
		return r.from
	}
	return r.interpolator(p)
}

// BezierOptions configures a BezierAnimator. The zero Curve selects
// CurveEase and a zero Duration one second.
type BezierOptions struct {
	Curve    Curve
	Duration float64
}

// BezierAnimator eases between two values along a cubic bezier curve.
type BezierAnimator struct {
	valueRange
	duration float64
	solver   UnitBezier
	progress float64
	current  any
}

// NewBezierAnimator creates a bezier animator. interp may be nil for
// AnyInterpolation.
func NewBezierAnimator(opts BezierOptions, interp Interpolation) *BezierAnimator {
	if opts.Curve == (Curve{}) {
		opts.Curve = CurveEase
	}
	if opts.Duration <= 0 {
		opts.Duration = 1
	}
	return &BezierAnimator{
		valueRange: newValueRange(interp),
		duration:   opts.Duration,
		solver:     opts.Curve.Solver(),
	}
}

// Next advances the animation by delta seconds.
func (a *BezierAnimator) Next(delta float64) any {
	a.progress += delta / a.duration
	// The last frame usually overshoots; past 1 the curve is not defined.
	x := math.Min(a.progress, 1)
	a.current = a.at(a.solver.Solve(x, SolveEpsilon(a.duration)))
	return a.current
}

// IsFinished reports whether the full duration has elapsed.
func (a *BezierAnimator) IsFinished() bool { return a.progress >= 1 }

// Progress returns elapsed time as a fraction of the duration. It may
// exceed 1 on the last frame.
func (a *BezierAnimator) Progress() float64 { return a.progress }
