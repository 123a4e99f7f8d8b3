// Package analysis provides post-hoc summaries of simulated epidemics.
//
// The package operates on finished trajectories; nothing here advances a
// simulation.
//
//   - [FirstReach]: earliest sample at which a series reaches a threshold
//   - [FirstFractionReach]: the same scan over a compartment's population share
//   - [PeakFraction]: largest compartment share across a run
//   - [FinalFraction]: compartment share at the last sample
//   - [SampleSum], [DedupSampleSum]: compartment sums with and without
//     phase-boundary double counting
//   - [Integrate]: trapezoid time integral of a compartment
//
// # Threshold scans
//
// A scan that finds nothing reports [ErrNotReached]. It never substitutes
// the last sample for a missing crossing:
//
//	cross, err := analysis.FirstFractionReach(traj, epi.Recovered, herd, 1e-9)
//	if errors.Is(err, analysis.ErrNotReached) {
//	    // never crossed within the horizon
//	}
package analysis
