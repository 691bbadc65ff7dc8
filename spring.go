package framer

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// SpringOptions configures a SpringAnimator. Two parameterisations are
// supported: Tension and Friction simulate a damped spring on the RK4
// integrator, while a non-zero DampingRatio switches to a critically
// tunable spring (see harmonica) that settles in roughly Duration seconds.
// Zero fields take the defaults noted below.
type SpringOptions struct {
	Tension  float64 // stiffness, default 500
	Friction float64 // damping force, default 10

	DampingRatio float64 // 0 selects tension/friction; 1 is critically damped
	Duration     float64 // settle time for DampingRatio springs, default 1s
	Mass         float64 // default 1

	// Velocity is the initial velocity in progress units per second.
	Velocity float64
	// Tolerance is how close to rest the spring must be to finish,
	// default 1e-4.
	Tolerance float64
}

const (
	defaultSpringTension   = 500
	defaultSpringFriction  = 10
	defaultSpringTolerance = 1.0 / 10000
)

// settleEnvelope is the remaining amplitude at which a damping-ratio spring
// is considered settled for the purpose of choosing its frequency.
const settleEnvelope = 0.001

func (o SpringOptions) withDefaults() SpringOptions {
	if o.Tension == 0 {
		o.Tension = defaultSpringTension
	}
	if o.Friction == 0 {
		o.Friction = defaultSpringFriction
	}
	if o.Duration <= 0 {
		o.Duration = 1
	}
	if o.Mass <= 0 {
		o.Mass = 1
	}
	if o.Tolerance <= 0 {
		o.Tolerance = defaultSpringTolerance
	}
	return o
}

// angularFrequency picks ω so the spring's envelope decays to
// settleEnvelope after Duration seconds. DampingRatio must be positive.
func (o SpringOptions) angularFrequency() float64 {
	w := -math.Log(settleEnvelope) / (o.DampingRatio * o.Duration)
	return w / math.Sqrt(o.Mass)
}

// SpringAnimator moves a value toward its target with spring physics. The
// simulated particle starts at displacement 1 and comes to rest at 0;
// progress is 1 - displacement, so it may overshoot past 1.
type SpringAnimator struct {
	valueRange
	opts       SpringOptions
	state      State
	integrator Integrator

	// DampingRatio springs
	spring      harmonica.Spring
	springDelta float64
}

// NewSpringAnimator creates a spring animator. interp may be nil for
// AnyInterpolation.
func NewSpringAnimator(opts SpringOptions, interp Interpolation) *SpringAnimator {
	opts = opts.withDefaults()
	a := &SpringAnimator{
		valueRange: newValueRange(interp),
		opts:       opts,
		state:      State{X: 1, V: -opts.Velocity},
	}
	a.integrator = Integrator{Acceleration: func(s State) float64 {
		return -opts.Tension*s.X - opts.Friction*s.V
	}}
	return a
}

// Next advances the simulation by delta seconds.
func (a *SpringAnimator) Next(delta float64) any {
	if a.opts.DampingRatio > 0 {
		a.stepHarmonic(delta)
	} else {
		a.state = a.integrator.Step(a.state, delta)
	}
	return a.at(1 - a.state.X)
}

func (a *SpringAnimator) stepHarmonic(delta float64) {
	if delta <= 0 {
		return
	}
	if delta != a.springDelta {
		a.spring = harmonica.NewSpring(delta, a.opts.angularFrequency(), a.opts.DampingRatio)
		a.springDelta = delta
	}
	// harmonica works in absolute positions; the target is progress 1.
	pos, vel := a.spring.Update(1-a.state.X, -a.state.V, 1)
	a.state = State{X: 1 - pos, V: -vel}
}

// IsFinished reports whether the spring has come to rest.
func (a *SpringAnimator) IsFinished() bool {
	tol := a.opts.Tolerance
	return math.Abs(a.state.X) < tol && math.Abs(a.state.V) < tol
}

// State returns the current displacement and velocity.
func (a *SpringAnimator) State() State { return a.state }
