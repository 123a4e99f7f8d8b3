package analytic

import (
	"fmt"
	"math"
)

// DomainError reports final-size inputs for which the relation is not
// defined over the reals.
type DomainError struct {
	R0  float64
	Arg float64 // argument handed to the Lambert W evaluation
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("final size undefined for R0=%g (W argument %g outside [-1/e, 0))", e.R0, e.Arg)
}

// FinalSusceptible returns the t->inf susceptible fraction of an SIR
// epidemic from the implicit final-size relation, solved in closed form:
//
//	s_inf = -(1/R0) * W0(-s0 * R0 * exp(-R0*(1 - r0)))
//
// s0 and r0 are the initial susceptible and recovered fractions; the
// infected remainder 1-s0-r0 must not be negative.
func FinalSusceptible(R0, s0, r0 float64) (float64, error) {
	if !(R0 > 0) || !(s0 > 0) || s0 > 1 || r0 < 0 || r0 >= 1 || s0+r0 > 1 {
		return 0, &DomainError{R0: R0, Arg: math.NaN()}
	}

	arg := -s0 * R0 * math.Exp(-R0*(1-r0))
	if arg < NegInvE || arg >= 0 {
		return 0, &DomainError{R0: R0, Arg: arg}
	}

	return -LambertW0(arg) / R0, nil
}

// FinalRecovered returns the t->inf recovered fraction 1 - s_inf.
func FinalRecovered(R0, s0, r0 float64) (float64, error) {
	sInf, err := FinalSusceptible(R0, s0, r0)
	if err != nil {
		return 0, err
	}
	return 1 - sInf, nil
}

// HerdImmunityThreshold is the immune fraction 1 - 1/R0 beyond which a
// fully mixed epidemic cannot grow. Not positive when R0 <= 1.
func HerdImmunityThreshold(R0 float64) float64 {
	return 1 - 1/R0
}
