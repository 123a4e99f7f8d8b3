package sweep

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/episim/episim/internal/analysis"
	"github.com/episim/episim/internal/analytic"
	"github.com/episim/episim/internal/epi"
	"github.com/episim/episim/internal/phase"
	"github.com/episim/episim/internal/sim"
)

// Config describes one sweep: the parameter grid plus the scenario shared
// by every combination.
type Config struct {
	Axes Axes

	Population      float64
	InitialInfected float64
	Horizon         float64 // total simulated span; the intervention runs first
	Samples         int     // grid points per phase

	// Calibrate derives each intervention beta from the herd-immunity
	// target of the combination's baseline R0 instead of the depression
	// axis. The row's Depression then reports the effective factor.
	Calibrate bool

	Workers int // worker goroutines; 0 means runtime.NumCPU()
}

func (c Config) validate() error {
	if !(c.Population > 0) {
		return sim.ConfigError{Field: "population", Reason: fmt.Sprintf("must be positive, got %g", c.Population)}
	}
	if !(c.InitialInfected > 0) || c.InitialInfected > c.Population {
		return sim.ConfigError{Field: "initial_infected", Reason: fmt.Sprintf("must be in (0, population], got %g", c.InitialInfected)}
	}
	if !(c.Horizon > 0) {
		return sim.ConfigError{Field: "horizon", Reason: fmt.Sprintf("must be positive, got %g", c.Horizon)}
	}
	if c.Samples < 2 {
		return sim.ConfigError{Field: "samples", Reason: fmt.Sprintf("must be at least 2, got %d", c.Samples)}
	}
	if c.Workers < 0 {
		return sim.ConfigError{Field: "workers", Reason: fmt.Sprintf("must be non-negative, got %d", c.Workers)}
	}
	return nil
}

// Row is the summary of one combination. Failed rows keep their tag and
// carry the error and its kind; metric columns are zero.
type Row struct {
	Combination

	InterventionBeta float64 // phase-1 transmission rate actually used
	InterventionR0   float64
	BaselineR0       float64

	TotalInfected     float64 // final recovered fraction over the full run
	PeakInfected      float64 // max infected fraction across samples
	InterventionTotal float64 // recovered fraction at the end of phase 1
	InfectedAtShift   float64 // infected fraction at the phase boundary

	Kind string // error kind for failed rows, empty otherwise
	Err  error
}

// Failed reports whether this combination's evaluation errored.
func (r Row) Failed() bool { return r.Err != nil }

// Result holds one row per combination, in grid order.
type Result struct {
	Rows []Row
}

// Failures returns the failed rows, preserving grid order.
func (r *Result) Failures() []Row {
	var out []Row
	for _, row := range r.Rows {
		if row.Failed() {
			out = append(out, row)
		}
	}
	return out
}

// FailureKind maps an evaluation error onto the row taxonomy: "config",
// "numeric", "domain", "no-root", "max-iterations", "not-found", or
// "error" for anything unrecognized.
func FailureKind(err error) string {
	var (
		cfgErr sim.ConfigError
		numErr *sim.NumericError
		domErr *analytic.DomainError
	)
	switch {
	case err == nil:
		return ""
	case errors.As(err, &cfgErr):
		return "config"
	case errors.As(err, &numErr):
		return "numeric"
	case errors.As(err, &domErr):
		return "domain"
	case errors.Is(err, analytic.ErrNoRootInBracket):
		return "no-root"
	case errors.Is(err, analytic.ErrMaxIterations):
		return "max-iterations"
	case errors.Is(err, analysis.ErrNotReached):
		return "not-found"
	default:
		return "error"
	}
}

// Engine runs sweep evaluations on a bounded worker pool.
type Engine struct {
	cfg     Config
	stepper sim.Stepper
	simCfg  sim.Config
}

func New(cfg Config, stepper sim.Stepper, simCfg sim.Config) *Engine {
	return &Engine{cfg: cfg, stepper: stepper, simCfg: simCfg}
}

// Run evaluates every combination of the grid. Rows are written into their
// combination's slot, so the result is ordered like the grid regardless of
// which worker finished first. Row failures are isolated; Run itself only
// fails on an invalid sweep configuration.
func (e *Engine) Run(ctx context.Context) (*Result, error) {
	if err := e.cfg.validate(); err != nil {
		return nil, err
	}
	combos, err := e.cfg.Axes.Combinations()
	if err != nil {
		return nil, err
	}

	workers := e.cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(combos) {
		workers = len(combos)
	}

	logrus.Infof("sweep: %d combinations on %d workers", len(combos), workers)

	rows := make([]Row, len(combos))
	jobs := make(chan int, len(combos))
	for i := range combos {
		jobs <- i
	}
	close(jobs)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				rows[i] = e.evaluate(ctx, combos[i])
			}
		}()
	}
	wg.Wait()

	for _, row := range rows {
		if row.Failed() {
			logrus.Warnf("sweep: combination %d (beta=%g gamma=%g depression=%g duration=%g) failed: %v",
				row.Index, row.Beta, row.Gamma, row.Depression, row.Duration, row.Err)
		}
	}

	return &Result{Rows: rows}, nil
}

func (e *Engine) evaluate(ctx context.Context, c Combination) Row {
	row := Row{Combination: c}
	fail := func(err error) Row {
		row.Err = err
		row.Kind = FailureKind(err)
		return row
	}

	base := epi.Params{Beta: c.Beta, Gamma: c.Gamma, N: e.cfg.Population}
	row.BaselineR0 = base.R0()

	interBeta := c.Beta * c.Depression
	if e.cfg.Calibrate {
		target := analytic.HerdImmunityThreshold(base.R0())
		res, err := analytic.CalibrateBeta(c.Gamma, target, analytic.DefaultBracket(c.Gamma), analytic.DefaultOptions())
		if err != nil {
			return fail(err)
		}
		interBeta = res.Beta
		row.Depression = interBeta / c.Beta
	}
	inter := base.WithBeta(interBeta)
	row.InterventionBeta = interBeta
	row.InterventionR0 = inter.R0()

	x0 := epi.State{S: e.cfg.Population - e.cfg.InitialInfected, I: e.cfg.InitialInfected}
	phases := []phase.Phase{
		{Name: "intervention", Params: inter, Duration: c.Duration, Samples: e.cfg.Samples},
		{Name: "baseline", Params: base, Duration: e.cfg.Horizon - c.Duration, Samples: e.cfg.Samples},
	}

	traj, err := phase.Run(ctx, e.stepper, e.simCfg, x0, 0, phases)
	if err != nil {
		return fail(err)
	}

	row.TotalInfected = analysis.FinalFraction(traj, epi.Recovered)
	row.PeakInfected = analysis.PeakFraction(traj, epi.Infected)

	b, ok := traj.Boundary(1)
	if !ok {
		return fail(fmt.Errorf("sweep: two-phase run produced %d segments", len(traj.Segments)))
	}
	n := e.cfg.Population
	row.InterventionTotal = b.Earlier.State[int(epi.Recovered)] / n
	row.InfectedAtShift = b.Earlier.State[int(epi.Infected)] / n

	return row
}
