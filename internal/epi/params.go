package epi

import (
	"fmt"

	"github.com/episim/episim/internal/sim"
)

// Params are the rate constants of a mass-action SIR epidemic. Values are
// immutable; derive variants with WithBeta.
type Params struct {
	Beta  float64 // transmission rate per unit time
	Gamma float64 // recovery rate (1 / mean infectious period)
	N     float64 // total population
}

// R0 is the basic reproduction number beta/gamma.
func (p Params) R0() float64 {
	return p.Beta / p.Gamma
}

func (p Params) Validate() error {
	if !(p.Beta > 0) {
		return sim.ConfigError{Field: "beta", Reason: fmt.Sprintf("must be positive, got %g", p.Beta)}
	}
	if !(p.Gamma > 0) {
		return sim.ConfigError{Field: "gamma", Reason: fmt.Sprintf("must be positive, got %g", p.Gamma)}
	}
	if !(p.N > 0) {
		return sim.ConfigError{Field: "population", Reason: fmt.Sprintf("must be positive, got %g", p.N)}
	}
	return nil
}

// WithBeta returns a copy with the transmission rate replaced. Used for
// intervention phases that depress transmission.
func (p Params) WithBeta(beta float64) Params {
	p.Beta = beta
	return p
}
