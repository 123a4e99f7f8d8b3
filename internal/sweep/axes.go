package sweep

import (
	"fmt"

	"gonum.org/v1/gonum/stat/combin"

	"github.com/episim/episim/internal/sim"
)

// Axes are the named dimensions of a sweep grid. Every axis must hold at
// least one value.
type Axes struct {
	Betas       []float64 // baseline transmission rates
	Gammas      []float64 // recovery rates
	Depressions []float64 // intervention multipliers on beta, in (0,1]
	Durations   []float64 // intervention lengths
}

// Combination is one point of the Cartesian product, tagged with its
// position in the grid.
type Combination struct {
	Index      int
	Beta       float64
	Gamma      float64
	Depression float64
	Duration   float64
}

func (a Axes) lens() []int {
	return []int{len(a.Betas), len(a.Gammas), len(a.Depressions), len(a.Durations)}
}

// Size is the number of combinations in the grid.
func (a Axes) Size() int {
	return combin.Card(a.lens())
}

func (a Axes) validate() error {
	axes := []struct {
		name   string
		values []float64
	}{
		{"betas", a.Betas},
		{"gammas", a.Gammas},
		{"depressions", a.Depressions},
		{"durations", a.Durations},
	}
	for _, ax := range axes {
		if len(ax.values) == 0 {
			return sim.ConfigError{Field: ax.name, Reason: "axis is empty"}
		}
		for _, v := range ax.values {
			if !(v > 0) {
				return sim.ConfigError{Field: ax.name, Reason: fmt.Sprintf("values must be positive, got %g", v)}
			}
		}
	}
	for _, d := range a.Depressions {
		if d > 1 {
			return sim.ConfigError{Field: "depressions", Reason: fmt.Sprintf("values must be in (0,1], got %g", d)}
		}
	}
	return nil
}

// Combinations enumerates the grid in row-major order: the first axis
// varies slowest, matching the order rows appear in sweep results.
func (a Axes) Combinations() ([]Combination, error) {
	if err := a.validate(); err != nil {
		return nil, err
	}
	out := make([]Combination, 0, a.Size())
	for i, idx := range combin.Cartesian(a.lens()) {
		out = append(out, Combination{
			Index:      i,
			Beta:       a.Betas[idx[0]],
			Gamma:      a.Gammas[idx[1]],
			Depression: a.Depressions[idx[2]],
			Duration:   a.Durations[idx[3]],
		})
	}
	return out, nil
}
