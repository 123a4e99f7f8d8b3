package phase

import (
	"github.com/episim/episim/internal/epi"
	"github.com/episim/episim/internal/sim"
)

// Sample is one trajectory point tagged with the phase that produced it.
type Sample struct {
	Phase int
	Time  float64
	State sim.State
}

// Segment is the trajectory of a single phase.
type Segment struct {
	Index  int
	Name   string
	Params epi.Params
	Traj   *sim.Trajectory
}

// Trajectory is the ordered result of a phased run.
type Trajectory struct {
	Segments []Segment
}

// Samples returns the raw concatenation of all segments. Every interior
// phase boundary appears twice, once per adjacent phase; sums over this
// slice count boundary instants double. Use DedupSamples when that
// matters.
func (p *Trajectory) Samples() []Sample {
	out := make([]Sample, 0, p.numSamples())
	for _, seg := range p.Segments {
		for i := range seg.Traj.Times {
			out = append(out, Sample{
				Phase: seg.Index,
				Time:  seg.Traj.Times[i],
				State: seg.Traj.States[i],
			})
		}
	}
	return out
}

// DedupSamples drops the later phase's copy of each boundary instant, so
// times are strictly increasing. The boundary sample keeps the earlier
// phase's tag.
func (p *Trajectory) DedupSamples() []Sample {
	out := make([]Sample, 0, p.numSamples()-max(0, len(p.Segments)-1))
	for k, seg := range p.Segments {
		start := 0
		if k > 0 {
			start = 1
		}
		for i := start; i < len(seg.Traj.Times); i++ {
			out = append(out, Sample{
				Phase: seg.Index,
				Time:  seg.Traj.Times[i],
				State: seg.Traj.States[i],
			})
		}
	}
	return out
}

func (p *Trajectory) numSamples() int {
	n := 0
	for _, seg := range p.Segments {
		n += seg.Traj.Len()
	}
	return n
}

// Boundary holds both tagged copies of a handoff instant. The states are
// equal by construction; the tags differ.
type Boundary struct {
	Time    float64
	Earlier Sample // last sample of phase k-1
	Later   Sample // first sample of phase k
}

// Boundary returns the handoff into phase k, for k in [1, len(Segments)).
func (p *Trajectory) Boundary(k int) (Boundary, bool) {
	if k < 1 || k >= len(p.Segments) {
		return Boundary{}, false
	}
	prev := p.Segments[k-1]
	next := p.Segments[k]
	i := prev.Traj.Len() - 1
	return Boundary{
		Time: next.Traj.Times[0],
		Earlier: Sample{
			Phase: prev.Index,
			Time:  prev.Traj.Times[i],
			State: prev.Traj.States[i],
		},
		Later: Sample{
			Phase: next.Index,
			Time:  next.Traj.Times[0],
			State: next.Traj.States[0],
		},
	}, true
}

// Final returns the last sample of the last phase.
func (p *Trajectory) Final() Sample {
	seg := p.Segments[len(p.Segments)-1]
	i := seg.Traj.Len() - 1
	return Sample{
		Phase: seg.Index,
		Time:  seg.Traj.Times[i],
		State: seg.Traj.States[i],
	}
}

// Series extracts the deduplicated time series of one compartment across
// all phases.
func (p *Trajectory) Series(c epi.Compartment) (times, values []float64) {
	samples := p.DedupSamples()
	times = make([]float64, len(samples))
	values = make([]float64, len(samples))
	for i, s := range samples {
		times[i] = s.Time
		values[i] = s.State[int(c)]
	}
	return times, values
}

// Population is the conserved total of the scenario.
func (p *Trajectory) Population() float64 {
	return p.Segments[0].Params.N
}
