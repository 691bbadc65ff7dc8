package framer

import (
	"math"
	"testing"
)

func TestIntegrateFreeParticle(t *testing.T) {
	got := Integrate(State{X: 0, V: 1}, 1, func(State) float64 { return 0 })
	if got != (State{X: 1, V: 1}) {
		t.Errorf("Integrate = %+v, want {X:1 V:1}", got)
	}
}

func TestIntegrateConstantAcceleration(t *testing.T) {
	// RK4 is exact for polynomials of this degree.
	const g = -9.8
	s := State{X: 10, V: 2}
	got := Integrate(s, 0.5, func(State) float64 { return g })
	wantX := 10 + 2*0.5 + 0.5*g*0.25
	wantV := 2 + g*0.5
	if math.Abs(got.X-wantX) > 1e-12 || math.Abs(got.V-wantV) > 1e-12 {
		t.Errorf("Integrate = %+v, want {X:%v V:%v}", got, wantX, wantV)
	}
}

func TestIntegrateDoesNotMutate(t *testing.T) {
	s := State{X: 3, V: -1}
	_ = Integrate(s, 0.1, func(st State) float64 { return -st.X })
	if s != (State{X: 3, V: -1}) {
		t.Errorf("input state changed to %+v", s)
	}
}

func TestIntegratorHarmonicOscillator(t *testing.T) {
	// x'' = -x starting at (1, 0) traces cos(t).
	in := Integrator{Acceleration: func(s State) float64 { return -s.X }}
	s := State{X: 1}
	const dt = 0.01
	steps := int(math.Round(math.Pi / dt))
	for i := 0; i < steps; i++ {
		s = in.Step(s, dt)
	}
	elapsed := float64(steps) * dt
	if math.Abs(s.X-math.Cos(elapsed)) > 1e-6 {
		t.Errorf("X = %v, want %v", s.X, math.Cos(elapsed))
	}
	if math.Abs(s.V+math.Sin(elapsed)) > 1e-6 {
		t.Errorf("V = %v, want %v", s.V, -math.Sin(elapsed))
	}
}
