package integrators

import (
	"fmt"
	"sort"

	"github.com/episim/episim/internal/sim"
)

var constructors = map[string]func() sim.Stepper{
	"euler": func() sim.Stepper { return NewEuler() },
	"rk4":   func() sim.Stepper { return NewRK4() },
	"rk45":  func() sim.Stepper { return NewRK45() },
}

// New returns a stepper for name. Steppers hold no state between steps
// and are safe to share across concurrent runs.
func New(name string) (sim.Stepper, error) {
	fn, ok := constructors[name]
	if !ok {
		return nil, fmt.Errorf("unknown integrator: %s", name)
	}
	return fn(), nil
}

func Names() []string {
	names := make([]string, 0, len(constructors))
	for name := range constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
