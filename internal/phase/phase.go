package phase

import (
	"context"
	"fmt"

	"github.com/episim/episim/internal/epi"
	"github.com/episim/episim/internal/sim"
)

// Phase is one piecewise-constant regime of an epidemic scenario.
type Phase struct {
	Name     string
	Params   epi.Params
	Duration float64
	Samples  int // grid points across the phase, both endpoints included
}

func (p Phase) validate() error {
	if err := p.Params.Validate(); err != nil {
		return err
	}
	if !(p.Duration > 0) {
		return sim.ConfigError{Field: "duration", Reason: fmt.Sprintf("must be positive, got %g", p.Duration)}
	}
	if p.Samples < 2 {
		return sim.ConfigError{Field: "samples", Reason: fmt.Sprintf("must be at least 2, got %d", p.Samples)}
	}
	return nil
}

// Run simulates consecutive phases starting at time start from x0. Phase
// k > 0 begins from the final state of phase k-1. A failing phase aborts
// the run; the returned error carries that phase's index, and segments of
// the phases completed before it are returned alongside.
func Run(ctx context.Context, stepper sim.Stepper, cfg sim.Config, x0 epi.State, start float64, phases []Phase) (*Trajectory, error) {
	if len(phases) == 0 {
		return nil, sim.ConfigError{Field: "phases", Reason: "must not be empty"}
	}

	n := phases[0].Params.N
	for k, ph := range phases {
		if err := ph.validate(); err != nil {
			return nil, &Error{Phase: k, Name: ph.Name, Err: err}
		}
		if ph.Params.N != n {
			err := sim.ConfigError{Field: "population", Reason: fmt.Sprintf("phase %d has population %g, phase 0 has %g", k, ph.Params.N, n)}
			return nil, &Error{Phase: k, Name: ph.Name, Err: err}
		}
	}
	if err := x0.Validate(n); err != nil {
		return nil, err
	}

	traj := &Trajectory{Segments: make([]Segment, 0, len(phases))}
	x := x0.Vec()
	t := start

	for k, ph := range phases {
		grid, err := sim.UniformGrid(t, t+ph.Duration, ph.Samples)
		if err != nil {
			return traj, &Error{Phase: k, Name: ph.Name, Err: err}
		}

		runner := sim.New(epi.NewModel(ph.Params), stepper, cfg)
		tr, err := runner.Run(ctx, x, grid)
		if err != nil {
			return traj, &Error{Phase: k, Name: ph.Name, Err: err}
		}

		traj.Segments = append(traj.Segments, Segment{
			Index:  k,
			Name:   ph.Name,
			Params: ph.Params,
			Traj:   tr,
		})
		x = tr.Final().Clone()
		t = tr.FinalTime()
	}

	return traj, nil
}
