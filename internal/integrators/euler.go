package integrators

import "github.com/episim/episim/internal/sim"

type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(sys sim.System, x sim.State, t, h float64) sim.State {
	dx := sys.Derivative(x, t)
	next := make(sim.State, len(x))
	for i := range x {
		next[i] = x[i] + h*dx[i]
	}
	return next
}
