package analysis

import (
	"errors"

	"github.com/episim/episim/internal/epi"
	"github.com/episim/episim/internal/phase"
	"github.com/episim/episim/internal/sim"
)

// ErrNotReached reports that no sample in a scanned series qualified.
var ErrNotReached = errors.New("analysis: threshold not reached")

// Crossing is the earliest qualifying sample of a threshold scan.
type Crossing struct {
	Index int // position in the scanned series
	Time  float64
	Value float64 // series value at the crossing
}

// FirstReach returns the earliest sample with values[i] >= threshold - epsilon.
// An exhausted scan returns ErrNotReached, never the final index.
func FirstReach(times, values []float64, threshold, epsilon float64) (Crossing, error) {
	if len(times) != len(values) {
		return Crossing{}, sim.ConfigError{Field: "series", Reason: "times and values have different lengths"}
	}
	if !(epsilon >= 0) {
		return Crossing{}, sim.ConfigError{Field: "epsilon", Reason: "must be non-negative"}
	}
	for i, v := range values {
		if v >= threshold-epsilon {
			return Crossing{Index: i, Time: times[i], Value: v}, nil
		}
	}
	return Crossing{}, ErrNotReached
}

// FirstFractionReach scans the deduplicated samples of a phased run for the
// earliest instant at which compartment c's share of the population reaches
// threshold. The returned index addresses the deduplicated sample sequence.
func FirstFractionReach(p *phase.Trajectory, c epi.Compartment, threshold, epsilon float64) (Crossing, error) {
	times, values := p.Series(c)
	n := p.Population()
	for i := range values {
		values[i] /= n
	}
	return FirstReach(times, values, threshold, epsilon)
}
