package integrators

import "github.com/episim/episim/internal/sim"

type RK4 struct{}

func NewRK4() *RK4 {
	return &RK4{}
}

func (r *RK4) Step(sys sim.System, x sim.State, t, h float64) sim.State {
	n := len(x)

	k1 := sys.Derivative(x, t)

	x2 := make(sim.State, n)
	for i := 0; i < n; i++ {
		x2[i] = x[i] + h*0.5*k1[i]
	}
	k2 := sys.Derivative(x2, t+h*0.5)

	x3 := make(sim.State, n)
	for i := 0; i < n; i++ {
		x3[i] = x[i] + h*0.5*k2[i]
	}
	k3 := sys.Derivative(x3, t+h*0.5)

	x4 := make(sim.State, n)
	for i := 0; i < n; i++ {
		x4[i] = x[i] + h*k3[i]
	}
	k4 := sys.Derivative(x4, t+h)

	next := make(sim.State, n)
	h6 := h / 6.0
	for i := 0; i < n; i++ {
		next[i] = x[i] + h6*(k1[i]+2*k2[i]+2*k3[i]+k4[i])
	}

	return next
}
