package sim

import "fmt"

// Config controls the integration loop. Zero values take defaults in Run.
type Config struct {
	ATol        float64 // absolute error tolerance per component
	RTol        float64 // relative error tolerance per component
	InitialStep float64 // 0 means estimate from the dynamics
	MinStep     float64 // adaptive step floor before failing
	MaxStep     float64 // 0 means no cap beyond the current grid interval
	MaxSteps    int     // step attempts (accepted + rejected) per run
	FixedStep   float64 // substep size for steppers without error estimates
}

func DefaultConfig() Config {
	return Config{
		ATol:      1e-6,
		RTol:      1e-6,
		MinStep:   1e-10,
		MaxSteps:  1000000,
		FixedStep: 0.01,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.ATol == 0 {
		c.ATol = d.ATol
	}
	if c.RTol == 0 {
		c.RTol = d.RTol
	}
	if c.MinStep == 0 {
		c.MinStep = d.MinStep
	}
	if c.MaxSteps == 0 {
		c.MaxSteps = d.MaxSteps
	}
	if c.FixedStep == 0 {
		c.FixedStep = d.FixedStep
	}
	return c
}

func (c Config) validate() error {
	if c.ATol < 0 {
		return ConfigError{Field: "atol", Reason: fmt.Sprintf("must not be negative, got %g", c.ATol)}
	}
	if c.RTol < 0 {
		return ConfigError{Field: "rtol", Reason: fmt.Sprintf("must not be negative, got %g", c.RTol)}
	}
	if c.MinStep <= 0 {
		return ConfigError{Field: "min_step", Reason: fmt.Sprintf("must be positive, got %g", c.MinStep)}
	}
	if c.MaxStep < 0 {
		return ConfigError{Field: "max_step", Reason: fmt.Sprintf("must not be negative, got %g", c.MaxStep)}
	}
	if c.MaxSteps <= 0 {
		return ConfigError{Field: "max_steps", Reason: fmt.Sprintf("must be positive, got %d", c.MaxSteps)}
	}
	if c.FixedStep <= 0 {
		return ConfigError{Field: "fixed_step", Reason: fmt.Sprintf("must be positive, got %g", c.FixedStep)}
	}
	if c.InitialStep < 0 {
		return ConfigError{Field: "initial_step", Reason: fmt.Sprintf("must not be negative, got %g", c.InitialStep)}
	}
	return nil
}
