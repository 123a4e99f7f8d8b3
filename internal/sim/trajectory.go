package sim

// Stats counts the work done by a run.
type Stats struct {
	Steps    int // accepted steps
	Rejected int // rejected step attempts
	Evals    int // derivative evaluations
}

// Trajectory holds one state sample per grid point. Samples are owned by
// the trajectory; callers must not mutate them.
type Trajectory struct {
	Times  []float64
	States []State
	Stats  Stats
}

func (tr *Trajectory) Len() int { return len(tr.Times) }

func (tr *Trajectory) At(i int) (float64, State) {
	return tr.Times[i], tr.States[i]
}

func (tr *Trajectory) Final() State {
	return tr.States[len(tr.States)-1]
}

func (tr *Trajectory) FinalTime() float64 {
	return tr.Times[len(tr.Times)-1]
}

// Component extracts the time series of state component i.
func (tr *Trajectory) Component(i int) []float64 {
	out := make([]float64, len(tr.States))
	for k, x := range tr.States {
		out[k] = x[i]
	}
	return out
}
