package epi

import "github.com/episim/episim/internal/sim"

// Model is the mass-action SIR system over absolute compartment counts.
type Model struct {
	P Params
}

func NewModel(p Params) *Model {
	return &Model{P: p}
}

func (m *Model) Dim() int {
	return 3
}

func (m *Model) Derivative(x sim.State, t float64) sim.State {
	s, i := x[0], x[1]
	force := m.P.Beta * s * i / m.P.N
	return sim.State{-force, force - m.P.Gamma*i, m.P.Gamma * i}
}
