package framer

// State is the position and velocity of a simulated particle.
type State struct {
	X, V float64
}

// AccelerationFunc returns the acceleration acting on a particle in state s.
type AccelerationFunc func(s State) float64

type derivative struct {
	dx, dv float64
}

// Integrate advances s by dt with one classic fourth-order Runge-Kutta step.
// s is not modified.
func Integrate(s State, dt float64, accel AccelerationFunc) State {
	a := derivative{dx: s.V, dv: accel(s)}
	b := evaluate(s, dt*0.5, a, accel)
	c := evaluate(s, dt*0.5, b, accel)
	d := evaluate(s, dt, c, accel)

	dxdt := (a.dx + 2*(b.dx+c.dx) + d.dx) / 6
	dvdt := (a.dv + 2*(b.dv+c.dv) + d.dv) / 6
	return State{X: s.X + dxdt*dt, V: s.V + dvdt*dt}
}

func evaluate(initial State, dt float64, d derivative, accel AccelerationFunc) derivative {
	s := State{X: initial.X + d.dx*dt, V: initial.V + d.dv*dt}
	return derivative{dx: s.V, dv: accel(s)}
}

// Integrator binds an acceleration function for repeated stepping. The
// tension/friction SpringAnimator steps one.
type Integrator struct {
	Acceleration AccelerationFunc
}

// Step advances s by dt.
func (in Integrator) Step(s State, dt float64) State {
	return Integrate(s, dt, in.Acceleration)
}
