package integrators

import (
	"math"
	"testing"

	"github.com/episim/episim/internal/sim"
)

func TestRK45_Step(t *testing.T) {
	integ := NewRK45()
	sys := &oscillator{}

	x := sim.State{1.0, 0.0}
	h := 0.01

	for i := 0; i < 1000; i++ {
		x = integ.Step(sys, x, float64(i)*h, h)
	}

	if !x.IsValid() {
		t.Error("RK45 produced invalid state")
	}
}

func TestRK45_EnergyConservation(t *testing.T) {
	integ := NewRK45()
	sys := &oscillator{}
	x0 := sim.State{1.0, 0.0}

	initialEnergy := sys.Energy(x0)
	x := x0.Clone()
	h := 0.01

	for i := 0; i < 10000; i++ {
		x = integ.Step(sys, x, float64(i)*h, h)
	}

	finalEnergy := sys.Energy(x)
	drift := math.Abs(finalEnergy-initialEnergy) / initialEnergy

	if drift > 1e-6 {
		t.Errorf("RK45 energy drift too high: %e", drift)
	}
}

func TestRK45_ErrorNormShrinksWithStep(t *testing.T) {
	integ := NewRK45()
	sys := &oscillator{}
	x := sim.State{1.0, 0.0}

	_, errBig := integ.StepErr(sys, x, 0, 0.2, 1e-6, 1e-6)
	_, errSmall := integ.StepErr(sys, x, 0, 0.1, 1e-6, 1e-6)

	if errBig <= 0 || errSmall <= 0 {
		t.Fatalf("expected positive error norms, got %g and %g", errBig, errSmall)
	}

	// Embedded error is 5th order, so halving h should shrink it ~32x.
	if errSmall > errBig/10 {
		t.Errorf("error norm did not shrink with step: h=0.2 -> %g, h=0.1 -> %g", errBig, errSmall)
	}
}

func TestRK45_WithinToleranceForSmallStep(t *testing.T) {
	integ := NewRK45()
	sys := &oscillator{}
	x := sim.State{1.0, 0.0}

	_, errNorm := integ.StepErr(sys, x, 0, 0.01, 1e-6, 1e-6)
	if errNorm > 1 {
		t.Errorf("expected error norm <= 1 at h=0.01, got %g", errNorm)
	}
}

func TestRK45_VsRK4_Accuracy(t *testing.T) {
	rk4 := NewRK4()
	rk45 := NewRK45()
	sys := &oscillator{}
	x0 := sim.State{1.0, 0.0}

	x4 := x0.Clone()
	x45 := x0.Clone()
	h := 0.1

	for i := 0; i < 100; i++ {
		x4 = rk4.Step(sys, x4, float64(i)*h, h)
		x45 = rk45.Step(sys, x45, float64(i)*h, h)
	}

	t.Logf("RK4 final: [%.6f, %.6f]", x4[0], x4[1])
	t.Logf("RK45 final: [%.6f, %.6f]", x45[0], x45[1])

	e4 := sys.Energy(x4)
	e45 := sys.Energy(x45)

	if math.Abs(e45-0.5) > math.Abs(e4-0.5) {
		t.Log("Warning: RK45 not more accurate than RK4 for this case")
	}
}

func TestRegistry(t *testing.T) {
	for _, name := range []string{"euler", "rk4", "rk45"} {
		stepper, err := New(name)
		if err != nil {
			t.Errorf("New(%q) failed: %v", name, err)
		}
		if stepper == nil {
			t.Errorf("New(%q) returned nil stepper", name)
		}
	}

	if _, err := New("simpson"); err == nil {
		t.Error("expected error for unknown integrator")
	}

	names := Names()
	if len(names) != 3 {
		t.Errorf("expected 3 integrator names, got %d", len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("names not sorted: %v", names)
		}
	}
}

func TestRK45_ImplementsErrStepper(t *testing.T) {
	var s sim.Stepper = NewRK45()
	if _, ok := s.(sim.ErrStepper); !ok {
		t.Error("RK45 should provide an error estimate")
	}

	var fixed sim.Stepper = NewRK4()
	if _, ok := fixed.(sim.ErrStepper); ok {
		t.Error("RK4 should not claim an error estimate")
	}
}
