// Package phase chains single-regime simulations into piecewise-constant
// scenarios: each phase runs the SIR dynamics under its own parameters and
// hands its final state to the next phase as the initial state.
//
// The instant where two phases meet belongs to both: the earlier phase
// produced it and the later phase starts from it. [Trajectory.Samples]
// keeps both tagged copies, [Trajectory.DedupSamples] keeps only the
// earlier one, and [Trajectory.Boundary] exposes the pair directly.
package phase
