package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/episim/episim/internal/epi"
	"github.com/episim/episim/internal/phase"
	"github.com/episim/episim/internal/sim"
)

const (
	DefaultPopulation = 1000.0
	DefaultInfected   = 1.0
	DefaultBeta       = 2.0
	DefaultGamma      = 0.9
	DefaultHorizon    = 50.0
	DefaultSamples    = 201
	DefaultTolerance  = 1e-6
	DefaultStep       = 0.01
)

// Scenario is the on-disk description of an epidemic run: the population,
// the baseline rates, the horizon, and any intervention phases preceding
// the free phase.
type Scenario struct {
	Name       string `yaml:"name"`
	Integrator string `yaml:"integrator"`

	Population float64 `yaml:"population"`
	Infected   float64 `yaml:"infected"`  // initially infected
	Recovered  float64 `yaml:"recovered"` // initially immune
	Beta       float64 `yaml:"beta"`
	Gamma      float64 `yaml:"gamma"`

	Horizon float64 `yaml:"horizon"`
	Samples int     `yaml:"samples"` // grid points per phase

	Tolerance float64 `yaml:"tolerance"` // adaptive error tolerance
	Step      float64 `yaml:"step"`      // substep for fixed-step integrators

	Phases []PhaseSpec `yaml:"phases,omitempty"`
}

// PhaseSpec is one intervention entry. Exactly one of Beta and Depression
// must be set: Beta is an absolute transmission rate, Depression a
// multiplier on the scenario's baseline rate.
type PhaseSpec struct {
	Name       string  `yaml:"name"`
	Beta       float64 `yaml:"beta,omitempty"`
	Depression float64 `yaml:"depression,omitempty"`
	Duration   float64 `yaml:"duration"`
}

func DefaultScenario() *Scenario {
	return &Scenario{
		Name:       "baseline",
		Integrator: "rk45",
		Population: DefaultPopulation,
		Infected:   DefaultInfected,
		Beta:       DefaultBeta,
		Gamma:      DefaultGamma,
		Horizon:    DefaultHorizon,
		Samples:    DefaultSamples,
		Tolerance:  DefaultTolerance,
		Step:       DefaultStep,
	}
}

func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s := DefaultScenario()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func Save(path string, s *Scenario) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (s *Scenario) Validate() error {
	if !(s.Population > 0) {
		return sim.ConfigError{Field: "population", Reason: fmt.Sprintf("must be positive, got %g", s.Population)}
	}
	if !(s.Infected >= 0) {
		return sim.ConfigError{Field: "infected", Reason: fmt.Sprintf("must be non-negative, got %g", s.Infected)}
	}
	if !(s.Recovered >= 0) {
		return sim.ConfigError{Field: "recovered", Reason: fmt.Sprintf("must be non-negative, got %g", s.Recovered)}
	}
	if s.Infected+s.Recovered > s.Population {
		return sim.ConfigError{Field: "infected", Reason: "infected plus recovered exceeds the population"}
	}
	if !(s.Beta > 0) {
		return sim.ConfigError{Field: "beta", Reason: fmt.Sprintf("must be positive, got %g", s.Beta)}
	}
	if !(s.Gamma > 0) {
		return sim.ConfigError{Field: "gamma", Reason: fmt.Sprintf("must be positive, got %g", s.Gamma)}
	}
	if !(s.Horizon > 0) {
		return sim.ConfigError{Field: "horizon", Reason: fmt.Sprintf("must be positive, got %g", s.Horizon)}
	}
	if s.Samples < 2 {
		return sim.ConfigError{Field: "samples", Reason: fmt.Sprintf("must be at least 2, got %d", s.Samples)}
	}
	if !(s.Tolerance >= 0) {
		return sim.ConfigError{Field: "tolerance", Reason: fmt.Sprintf("must be non-negative, got %g", s.Tolerance)}
	}
	if !(s.Step >= 0) {
		return sim.ConfigError{Field: "step", Reason: fmt.Sprintf("must be non-negative, got %g", s.Step)}
	}

	elapsed := 0.0
	for i, ps := range s.Phases {
		hasBeta := ps.Beta != 0
		hasDep := ps.Depression != 0
		if hasBeta == hasDep {
			return sim.ConfigError{Field: "phases", Reason: fmt.Sprintf("phase %d: exactly one of beta and depression must be set", i)}
		}
		if hasBeta && !(ps.Beta > 0) {
			return sim.ConfigError{Field: "phases", Reason: fmt.Sprintf("phase %d: beta must be positive, got %g", i, ps.Beta)}
		}
		if hasDep && !(ps.Depression > 0 && ps.Depression <= 1) {
			return sim.ConfigError{Field: "phases", Reason: fmt.Sprintf("phase %d: depression must be in (0,1], got %g", i, ps.Depression)}
		}
		if !(ps.Duration > 0) {
			return sim.ConfigError{Field: "phases", Reason: fmt.Sprintf("phase %d: duration must be positive, got %g", i, ps.Duration)}
		}
		elapsed += ps.Duration
	}
	if elapsed > s.Horizon {
		return sim.ConfigError{Field: "phases", Reason: fmt.Sprintf("phase durations sum to %g, beyond the horizon %g", elapsed, s.Horizon)}
	}
	return nil
}

// Params returns the baseline rate constants.
func (s *Scenario) Params() epi.Params {
	return epi.Params{Beta: s.Beta, Gamma: s.Gamma, N: s.Population}
}

// Initial returns the starting compartment counts; susceptible is the
// remainder of the population.
func (s *Scenario) Initial() epi.State {
	return epi.State{
		S: s.Population - s.Infected - s.Recovered,
		I: s.Infected,
		R: s.Recovered,
	}
}

// PhaseList expands the scenario into the ordered phase sequence of a run:
// the configured interventions first, then a free phase at the baseline
// rate covering the rest of the horizon.
func (s *Scenario) PhaseList() []phase.Phase {
	base := s.Params()
	out := make([]phase.Phase, 0, len(s.Phases)+1)

	elapsed := 0.0
	for _, ps := range s.Phases {
		beta := ps.Beta
		if beta == 0 {
			beta = s.Beta * ps.Depression
		}
		name := ps.Name
		if name == "" {
			name = fmt.Sprintf("phase-%d", len(out))
		}
		out = append(out, phase.Phase{
			Name:     name,
			Params:   base.WithBeta(beta),
			Duration: ps.Duration,
			Samples:  s.Samples,
		})
		elapsed += ps.Duration
	}

	if rem := s.Horizon - elapsed; len(out) == 0 || rem > 0 {
		out = append(out, phase.Phase{
			Name:     "baseline",
			Params:   base,
			Duration: s.Horizon - elapsed,
			Samples:  s.Samples,
		})
	}
	return out
}

// SimConfig maps the scenario's numeric settings onto the integrator
// configuration; zero values fall back to the simulator defaults.
func (s *Scenario) SimConfig() sim.Config {
	return sim.Config{
		ATol:      s.Tolerance,
		RTol:      s.Tolerance,
		FixedStep: s.Step,
	}
}
