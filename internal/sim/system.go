package sim

// System is an ODE right-hand side x' = f(x, t).
type System interface {
	Derivative(x State, t float64) State
	Dim() int
}

// Stepper advances a state by a single step of size h.
type Stepper interface {
	Step(sys System, x State, t, h float64) State
}

// ErrStepper is a Stepper with an embedded error estimate. StepErr returns
// the candidate state and a scaled error norm: values <= 1 mean the step
// satisfies the tolerances atol + rtol*|x_i| per component.
type ErrStepper interface {
	Stepper
	StepErr(sys System, x State, t, h, atol, rtol float64) (State, float64)
}
