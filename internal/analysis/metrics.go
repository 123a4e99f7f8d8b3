package analysis

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"

	"github.com/episim/episim/internal/epi"
	"github.com/episim/episim/internal/phase"
)

// PeakFraction returns the largest share of the population held by
// compartment c at any sample of the run.
func PeakFraction(p *phase.Trajectory, c epi.Compartment) float64 {
	_, values := p.Series(c)
	return floats.Max(values) / p.Population()
}

// FinalFraction returns compartment c's share of the population at the last
// sample of the run.
func FinalFraction(p *phase.Trajectory, c epi.Compartment) float64 {
	return p.Final().State[int(c)] / p.Population()
}

// SampleSum adds compartment c over the raw sample concatenation. Interior
// phase boundaries contribute twice, once per adjacent phase.
func SampleSum(p *phase.Trajectory, c epi.Compartment) float64 {
	total := 0.0
	for _, s := range p.Samples() {
		total += s.State[int(c)]
	}
	return total
}

// DedupSampleSum adds compartment c with every boundary instant counted
// once.
func DedupSampleSum(p *phase.Trajectory, c epi.Compartment) float64 {
	total := 0.0
	for _, s := range p.DedupSamples() {
		total += s.State[int(c)]
	}
	return total
}

// Integrate returns the time integral of compartment c over the run via the
// trapezoid rule, in compartment-time units (person-days when time is in
// days).
func Integrate(p *phase.Trajectory, c epi.Compartment) float64 {
	times, values := p.Series(c)
	return integrate.Trapezoidal(times, values)
}
