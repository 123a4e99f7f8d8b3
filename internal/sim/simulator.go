package sim

import (
	"context"
	"fmt"
	"math"
)

// Step-size controller constants for the accept/reject loop.
const (
	stepSafety   = 0.9
	stepMinScale = 0.2
	stepMaxScale = 10.0

	timeEps = 1e-12
)

type Simulator struct {
	sys     System
	stepper Stepper
	cfg     Config
}

func New(sys System, stepper Stepper, cfg Config) *Simulator {
	return &Simulator{sys: sys, stepper: stepper, cfg: cfg.withDefaults()}
}

// countingSystem counts derivative evaluations on behalf of a run.
type countingSystem struct {
	System
	evals *int
}

func (c countingSystem) Derivative(x State, t float64) State {
	*c.evals++
	return c.System.Derivative(x, t)
}

// Run integrates from x0 across the grid and returns one sample per grid
// point, the first being x0 itself. Steppers with error estimates drive an
// accept/reject loop against the configured tolerances; plain steppers
// subdivide each grid interval into FixedStep-sized substeps. On failure
// the partial trajectory is returned alongside the error.
func (s *Simulator) Run(ctx context.Context, x0 State, grid []float64) (*Trajectory, error) {
	cfg := s.cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if err := CheckGrid(grid); err != nil {
		return nil, err
	}
	if len(x0) != s.sys.Dim() {
		return nil, ConfigError{Field: "state", Reason: fmt.Sprintf("dimension %d does not match system dimension %d", len(x0), s.sys.Dim())}
	}
	if !x0.IsValid() {
		return nil, ConfigError{Field: "state", Reason: "contains NaN or Inf"}
	}

	traj := &Trajectory{
		Times:  make([]float64, 0, len(grid)),
		States: make([]State, 0, len(grid)),
	}
	sys := countingSystem{System: s.sys, evals: &traj.Stats.Evals}

	x := x0.Clone()
	t := grid[0]
	traj.Times = append(traj.Times, t)
	traj.States = append(traj.States, x.Clone())

	es, adaptive := s.stepper.(ErrStepper)

	var h float64
	if adaptive {
		h = cfg.InitialStep
		if h <= 0 {
			h = estimateStep(sys, x, t, cfg, grid)
		}
	}

	for _, target := range grid[1:] {
		var err error
		if adaptive {
			x, h, err = advanceAdaptive(ctx, sys, es, x, t, target, h, cfg, &traj.Stats)
		} else {
			x, err = advanceFixed(ctx, sys, s.stepper, x, t, target, cfg, &traj.Stats)
		}
		if err != nil {
			return traj, err
		}
		t = target
		traj.Times = append(traj.Times, t)
		traj.States = append(traj.States, x.Clone())
	}

	return traj, nil
}

func advanceAdaptive(ctx context.Context, sys System, es ErrStepper, x State, t, target, h float64, cfg Config, st *Stats) (State, float64, error) {
	for target-t > timeEps*math.Max(1, math.Abs(target)) {
		select {
		case <-ctx.Done():
			return x, h, ctx.Err()
		default:
		}

		if st.Steps+st.Rejected >= cfg.MaxSteps {
			return x, h, &NumericError{Time: t, StepSize: h, Wrapped: ErrTooManySteps}
		}

		hs := math.Min(h, target-t)
		if cfg.MaxStep > 0 {
			hs = math.Min(hs, cfg.MaxStep)
		}

		next, errNorm := es.StepErr(sys, x, t, hs, cfg.ATol, cfg.RTol)

		if errNorm > 1 {
			st.Rejected++
			h = hs * math.Max(stepMinScale, stepSafety*math.Pow(errNorm, -0.25))
			if h < cfg.MinStep {
				return x, h, &NumericError{Time: t, StepSize: h, Wrapped: ErrStepTooSmall}
			}
			continue
		}

		if !next.IsValid() {
			return x, hs, &NumericError{Time: t, StepSize: hs, Wrapped: ErrInvalidState}
		}

		st.Steps++
		x = next
		t += hs

		if errNorm > 0 {
			h = hs * math.Min(stepMaxScale, stepSafety*math.Pow(errNorm, -0.2))
		} else {
			h = hs * stepMaxScale
		}
	}
	return x, h, nil
}

func advanceFixed(ctx context.Context, sys System, stepper Stepper, x State, t, target float64, cfg Config, st *Stats) (State, error) {
	span := target - t
	nSub := int(math.Ceil(span / cfg.FixedStep))
	if nSub < 1 {
		nSub = 1
	}
	hs := span / float64(nSub)

	for i := 0; i < nSub; i++ {
		select {
		case <-ctx.Done():
			return x, ctx.Err()
		default:
		}

		if st.Steps >= cfg.MaxSteps {
			return x, &NumericError{Time: t, StepSize: hs, Wrapped: ErrTooManySteps}
		}

		x = stepper.Step(sys, x, t+float64(i)*hs, hs)
		st.Steps++

		if !x.IsValid() {
			return x, &NumericError{Time: t + float64(i)*hs, StepSize: hs, Wrapped: ErrInvalidState}
		}
	}
	return x, nil
}

// estimateStep picks an initial adaptive step from the magnitudes of the
// state and its first two derivatives, using an explicit Euler probe.
func estimateStep(sys System, x State, t float64, cfg Config, grid []float64) float64 {
	hMax := grid[len(grid)-1] - grid[0]
	if cfg.MaxStep > 0 && cfg.MaxStep < hMax {
		hMax = cfg.MaxStep
	}

	f := sys.Derivative(x, t)

	dnf, dny := 0.0, 0.0
	for i := range x {
		sc := cfg.ATol + cfg.RTol*math.Abs(x[i])
		dnf += (f[i] / sc) * (f[i] / sc)
		dny += (x[i] / sc) * (x[i] / sc)
	}

	var h float64
	if math.Min(dnf, dny) < 1e-10 {
		h = 1e-6
	} else {
		h = 1e-2 * math.Sqrt(dny/dnf)
	}
	h = math.Min(h, hMax)

	probe := make(State, len(x))
	for i := range x {
		probe[i] = x[i] + h*f[i]
	}
	f2 := sys.Derivative(probe, t+h)

	der2 := 0.0
	for i := range x {
		sc := cfg.ATol + cfg.RTol*math.Abs(x[i])
		d := (f2[i] - f[i]) / sc
		der2 += d * d
	}
	der2 = math.Sqrt(der2) / h
	der12 := math.Max(der2, math.Sqrt(dnf))

	var h1 float64
	if der12 <= 1e-15 {
		h1 = math.Max(1e-6, h*1e-3)
	} else {
		h1 = math.Pow(1e-2/der12, 0.2)
	}
	return math.Min(100*h, math.Min(h1, hMax))
}
