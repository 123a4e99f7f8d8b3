package epi

import (
	"fmt"
	"math"

	"github.com/episim/episim/internal/sim"
)

// Compartment selects a component of the (S, I, R) state vector.
type Compartment int

const (
	Susceptible Compartment = iota
	Infected
	Recovered
)

func (c Compartment) String() string {
	switch c {
	case Susceptible:
		return "susceptible"
	case Infected:
		return "infected"
	case Recovered:
		return "recovered"
	}
	return fmt.Sprintf("compartment(%d)", int(c))
}

func ParseCompartment(name string) (Compartment, error) {
	switch name {
	case "susceptible", "s":
		return Susceptible, nil
	case "infected", "i":
		return Infected, nil
	case "recovered", "r":
		return Recovered, nil
	}
	return 0, fmt.Errorf("unknown compartment: %s", name)
}

// State is the typed view of a compartment vector in absolute counts.
type State struct {
	S float64
	I float64
	R float64
}

func (s State) Vec() sim.State {
	return sim.State{s.S, s.I, s.R}
}

func FromVec(v sim.State) State {
	return State{S: v[0], I: v[1], R: v[2]}
}

func (s State) Total() float64 {
	return s.S + s.I + s.R
}

// Validate checks non-negativity and that the compartments sum to the
// population n within rounding tolerance.
func (s State) Validate(n float64) error {
	for _, c := range []struct {
		name  string
		value float64
	}{
		{"initial_s", s.S},
		{"initial_i", s.I},
		{"initial_r", s.R},
	} {
		if c.value < 0 || math.IsNaN(c.value) {
			return sim.ConfigError{Field: c.name, Reason: fmt.Sprintf("must not be negative, got %g", c.value)}
		}
	}
	if math.Abs(s.Total()-n) > 1e-9*math.Max(1, n) {
		return sim.ConfigError{Field: "initial state", Reason: fmt.Sprintf("compartments sum to %g, expected population %g", s.Total(), n)}
	}
	return nil
}
