package sweep

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/episim/episim/internal/analysis"
	"github.com/episim/episim/internal/analytic"
	"github.com/episim/episim/internal/integrators"
	"github.com/episim/episim/internal/phase"
	"github.com/episim/episim/internal/sim"
)

func testConfig(axes Axes) Config {
	return Config{
		Axes:            axes,
		Population:      1000,
		InitialInfected: 1,
		Horizon:         50,
		Samples:         51,
		Workers:         2,
	}
}

func TestRunOrderedRows(t *testing.T) {
	cfg := testConfig(Axes{
		Betas:       []float64{2, 3},
		Gammas:      []float64{0.9},
		Depressions: []float64{0.5},
		Durations:   []float64{10},
	})

	eng := New(cfg, integrators.NewRK45(), sim.DefaultConfig())
	res, err := eng.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, res.Rows, 2)
	assert.Empty(t, res.Failures())

	// Rows sit in grid order whatever the completion order was.
	assert.Equal(t, 0, res.Rows[0].Index)
	assert.Equal(t, 2.0, res.Rows[0].Beta)
	assert.Equal(t, 1, res.Rows[1].Index)
	assert.Equal(t, 3.0, res.Rows[1].Beta)

	// Faster transmission infects more in total.
	assert.Greater(t, res.Rows[1].TotalInfected, res.Rows[0].TotalInfected)

	for _, row := range res.Rows {
		assert.InDelta(t, row.Beta/0.9, row.BaselineR0, 1e-12)
		assert.InDelta(t, row.Beta*0.5/0.9, row.InterventionR0, 1e-12)
		assert.Greater(t, row.PeakInfected, 0.0)
		assert.Less(t, row.InterventionTotal, row.TotalInfected)
		assert.Greater(t, row.TotalInfected, 0.0)
		assert.Less(t, row.TotalInfected, 1.0)
	}
}

func TestRunTagsRowsUnderParallelism(t *testing.T) {
	axes := Axes{
		Betas:       []float64{1.2, 1.6, 2, 2.4},
		Gammas:      []float64{0.8, 1},
		Depressions: []float64{0.6},
		Durations:   []float64{5, 8},
	}
	cfg := testConfig(axes)
	cfg.Horizon = 30
	cfg.Samples = 31
	cfg.Workers = 4

	combos, err := axes.Combinations()
	require.NoError(t, err)

	eng := New(cfg, integrators.NewRK45(), sim.DefaultConfig())
	res, err := eng.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, res.Rows, len(combos))
	assert.Empty(t, res.Failures())

	for i, row := range res.Rows {
		assert.Equal(t, combos[i], row.Combination)
	}
}

func TestRunIsolatesRowFailure(t *testing.T) {
	// The second duration exceeds the horizon, so its free phase has
	// negative length and fails validation. The first combination must be
	// untouched.
	cfg := testConfig(Axes{
		Betas:       []float64{2},
		Gammas:      []float64{0.9},
		Depressions: []float64{0.5},
		Durations:   []float64{10, 60},
	})

	eng := New(cfg, integrators.NewRK45(), sim.DefaultConfig())
	res, err := eng.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, res.Rows, 2)

	assert.False(t, res.Rows[0].Failed())
	assert.Greater(t, res.Rows[0].TotalInfected, 0.0)

	bad := res.Rows[1]
	require.True(t, bad.Failed())
	assert.Equal(t, "config", bad.Kind)
	assert.Equal(t, 1, bad.Index)
	assert.Equal(t, 60.0, bad.Duration)

	var perr *phase.Error
	require.True(t, errors.As(bad.Err, &perr))
	assert.Equal(t, 1, perr.Phase)

	failures := res.Failures()
	require.Len(t, failures, 1)
	assert.Equal(t, 1, failures[0].Index)
}

func TestRunNumericFailureKind(t *testing.T) {
	cfg := testConfig(Axes{
		Betas:       []float64{2},
		Gammas:      []float64{0.9},
		Depressions: []float64{0.5},
		Durations:   []float64{10},
	})

	// A five-step budget cannot cover the grid with this substep size.
	simCfg := sim.Config{FixedStep: 0.001, MaxSteps: 5}
	eng := New(cfg, integrators.NewEuler(), simCfg)
	res, err := eng.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, res.Rows, 1)

	row := res.Rows[0]
	require.True(t, row.Failed())
	assert.Equal(t, "numeric", row.Kind)
	assert.ErrorIs(t, row.Err, sim.ErrTooManySteps)
}

func TestRunCalibrateMode(t *testing.T) {
	cfg := testConfig(Axes{
		Betas:       []float64{2},
		Gammas:      []float64{0.9},
		Depressions: []float64{1}, // ignored when calibrating
		Durations:   []float64{20},
	})
	cfg.Horizon = 60
	cfg.Calibrate = true

	eng := New(cfg, integrators.NewRK45(), sim.DefaultConfig())
	res, err := eng.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, res.Rows, 1)

	row := res.Rows[0]
	require.False(t, row.Failed())

	// The intervention is calibrated so its unchecked final size equals
	// the herd threshold 1 - 1/R0 = 0.55 of the baseline.
	assert.InDelta(t, 1.3067, row.InterventionBeta, 1e-3)
	assert.InDelta(t, 1.4518, row.InterventionR0, 1e-3)
	assert.InDelta(t, 0.6533, row.Depression, 1e-3)
	assert.Greater(t, row.TotalInfected, 0.55)
}

func TestRunCalibrateModeSubcriticalRowFails(t *testing.T) {
	// R0 = 0.5 has a negative herd threshold; calibration rejects the
	// target and only that row fails.
	cfg := testConfig(Axes{
		Betas:       []float64{0.5, 2},
		Gammas:      []float64{1},
		Depressions: []float64{1},
		Durations:   []float64{15},
	})
	cfg.Horizon = 40
	cfg.Samples = 41
	cfg.Calibrate = true

	eng := New(cfg, integrators.NewRK45(), sim.DefaultConfig())
	res, err := eng.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, res.Rows, 2)

	require.True(t, res.Rows[0].Failed())
	assert.Equal(t, "config", res.Rows[0].Kind)
	assert.False(t, res.Rows[1].Failed())
}

func TestConfigValidation(t *testing.T) {
	axes := Axes{
		Betas:       []float64{2},
		Gammas:      []float64{1},
		Depressions: []float64{0.5},
		Durations:   []float64{10},
	}
	cases := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"population", func(c *Config) { c.Population = 0 }, "population"},
		{"initial infected", func(c *Config) { c.InitialInfected = -1 }, "initial_infected"},
		{"horizon", func(c *Config) { c.Horizon = 0 }, "horizon"},
		{"samples", func(c *Config) { c.Samples = 1 }, "samples"},
		{"workers", func(c *Config) { c.Workers = -1 }, "workers"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := testConfig(axes)
			c.mutate(&cfg)

			eng := New(cfg, integrators.NewRK45(), sim.DefaultConfig())
			_, err := eng.Run(context.Background())
			require.Error(t, err)

			var cerr sim.ConfigError
			require.True(t, errors.As(err, &cerr))
			assert.Equal(t, c.field, cerr.Field)
		})
	}
}

func TestFailureKind(t *testing.T) {
	cases := []struct {
		err  error
		kind string
	}{
		{nil, ""},
		{sim.ConfigError{Field: "beta", Reason: "must be positive"}, "config"},
		{&sim.NumericError{Time: 3, StepSize: 1e-12, Wrapped: sim.ErrStepTooSmall}, "numeric"},
		{&phase.Error{Phase: 1, Name: "free", Err: &sim.NumericError{Wrapped: sim.ErrTooManySteps}}, "numeric"},
		{&analytic.DomainError{R0: 0.5, Arg: 0.2}, "domain"},
		{fmt.Errorf("calibrate: %w", analytic.ErrNoRootInBracket), "no-root"},
		{analytic.ErrMaxIterations, "max-iterations"},
		{analysis.ErrNotReached, "not-found"},
		{errors.New("boom"), "error"},
	}

	for _, c := range cases {
		assert.Equal(t, c.kind, FailureKind(c.err), "%v", c.err)
	}
}
