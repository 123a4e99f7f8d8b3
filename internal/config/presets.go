package config

import "sort"

var Presets = map[string]*Scenario{
	"baseline": {
		Name: "baseline", Integrator: "rk45",
		Population: 1000, Infected: 1,
		Beta: 2.0, Gamma: 0.9,
		Horizon: 50, Samples: 201, Tolerance: 1e-6, Step: 0.01,
	},
	"mild": {
		Name: "mild", Integrator: "rk45",
		Population: 1000, Infected: 1,
		Beta: 1.2, Gamma: 0.9,
		Horizon: 120, Samples: 241, Tolerance: 1e-6, Step: 0.01,
	},
	"subcritical": {
		Name: "subcritical", Integrator: "rk45",
		Population: 1000, Infected: 20,
		Beta: 0.9, Gamma: 1.0,
		Horizon: 40, Samples: 161, Tolerance: 1e-6, Step: 0.01,
	},
	"lockdown": {
		Name: "lockdown", Integrator: "rk45",
		Population: 1000, Infected: 1,
		Beta: 2.0, Gamma: 0.9,
		Horizon: 80, Samples: 201, Tolerance: 1e-6, Step: 0.01,
		Phases: []PhaseSpec{
			{Name: "lockdown", Depression: 0.5, Duration: 15},
		},
	},
	"two-wave": {
		Name: "two-wave", Integrator: "rk45",
		Population: 1000, Infected: 1,
		Beta: 2.0, Gamma: 0.9,
		Horizon: 150, Samples: 301, Tolerance: 1e-6, Step: 0.01,
		Phases: []PhaseSpec{
			{Name: "lockdown", Depression: 0.35, Duration: 40},
		},
	},
}

// GetPreset returns a copy of the named preset, or nil if there is none.
// The copy is the caller's to mutate.
func GetPreset(name string) *Scenario {
	s, ok := Presets[name]
	if !ok {
		return nil
	}
	out := *s
	out.Phases = append([]PhaseSpec(nil), s.Phases...)
	return &out
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
