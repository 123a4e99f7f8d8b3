package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/episim/episim/internal/epi"
	"github.com/episim/episim/internal/phase"
)

const (
	chartWidth  = 78
	chartHeight = 14
	barWidth    = 40
)

type TickMsg time.Time

// Player replays a finished phased run sample by sample. The trajectory is
// immutable; playback only moves a head index across it.
type Player struct {
	name    string
	traj    *phase.Trajectory
	samples []phase.Sample
	series  [][]float64 // full fraction curves, sliced by head when drawing
	head    int         // visible samples, in [1, len(samples)]
	playing bool
	fps     int
}

func NewPlayer(name string, p *phase.Trajectory, fps int) Player {
	if fps <= 0 {
		fps = 30
	}
	return Player{
		name:    name,
		traj:    p,
		samples: p.DedupSamples(),
		series:  FractionSeries(p),
		head:    1,
		playing: true,
		fps:     fps,
	}
}

func (p Player) Init() tea.Cmd { return p.tick() }

func (p Player) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(p.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles key input and advances the playback head.
func (p Player) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return p, tea.Quit
		case " ":
			p.playing = !p.playing
		case "r":
			p.head = 1
			p.playing = true
		case "[":
			p.playing = false
			if p.head > 1 {
				p.head--
			}
		case "]":
			p.playing = false
			if p.head < len(p.samples) {
				p.head++
			}
		}
	case TickMsg:
		if p.playing {
			p.head++
			if p.head >= len(p.samples) {
				p.head = len(p.samples)
				p.playing = false
			}
		}
		return p, p.tick()
	}
	return p, nil
}

// View renders the chart up to the head plus a live stats panel.
func (p Player) View() string {
	cur := p.samples[p.head-1]
	seg := p.traj.Segments[cur.Phase]
	n := p.traj.Population()

	visible := make([][]float64, len(p.series))
	for i := range p.series {
		visible[i] = p.series[i][:p.head]
	}
	names := make([]string, len(p.traj.Segments))
	for i, s := range p.traj.Segments {
		names[i] = s.Name
	}

	status := "PLAYING"
	switch {
	case p.head == len(p.samples):
		status = "DONE"
	case !p.playing:
		status = "PAUSED"
	}

	var b strings.Builder
	b.WriteString(HeaderStyle.Render(strings.ToUpper(p.name)))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s  t=%.2f  ", status, cur.Time))
	b.WriteString(PhaseStyle.Render(fmt.Sprintf("phase %d: %s", cur.Phase, seg.Name)))
	b.WriteString(fmt.Sprintf("  (R0 %.3f)", seg.Params.R0()))
	b.WriteString("\n\n")

	b.WriteString(plotFractionSeries(visible, names, chartWidth, chartHeight))
	b.WriteString("\n\n")

	s := cur.State[int(epi.Susceptible)]
	i := cur.State[int(epi.Infected)]
	r := cur.State[int(epi.Recovered)]
	b.WriteString(RenderSummary("state", [][2]string{
		{"susceptible", fmt.Sprintf("%10.1f  (%.4f)", s, s/n)},
		{"infected", fmt.Sprintf("%10.1f  (%.4f)", i, i/n)},
		{"recovered", fmt.Sprintf("%10.1f  (%.4f)", r, r/n)},
	}))
	b.WriteString("\n")

	b.WriteString(ProgressBar(float64(p.head)/float64(len(p.samples)), barWidth))
	b.WriteString(fmt.Sprintf(" %d/%d\n", p.head, len(p.samples)))
	b.WriteString(Subtle.Render("space pause  r restart  [/] step  q quit"))
	b.WriteString("\n")

	return b.String()
}
