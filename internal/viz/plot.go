package viz

import (
	"math"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/episim/episim/internal/epi"
	"github.com/episim/episim/internal/phase"
)

// FractionSeries extracts the compartment curves of a run as shares of the
// population, ordered S, I, R. The integrator may undershoot zero by a
// rounding epsilon; displayed fractions are clamped at 0.
func FractionSeries(p *phase.Trajectory) [][]float64 {
	n := p.Population()
	series := make([][]float64, 0, 3)
	for _, c := range []epi.Compartment{epi.Susceptible, epi.Infected, epi.Recovered} {
		_, values := p.Series(c)
		for j := range values {
			values[j] = math.Max(0, values[j]/n)
		}
		series = append(series, values)
	}
	return series
}

// PlotFractions charts all three compartment curves of a finished run.
func PlotFractions(p *phase.Trajectory, width, height int) string {
	names := make([]string, len(p.Segments))
	for i, seg := range p.Segments {
		names[i] = seg.Name
	}
	return plotFractionSeries(FractionSeries(p), names, width, height)
}

func plotFractionSeries(series [][]float64, phases []string, width, height int) string {
	return asciigraph.PlotMany(series,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.SeriesColors(asciigraph.Blue, asciigraph.Red, asciigraph.Green),
		asciigraph.SeriesLegends("susceptible", "infected", "recovered"),
		asciigraph.Caption("phases: "+strings.Join(phases, ", ")),
	)
}

// PlotSeries charts one series with a caption.
func PlotSeries(values []float64, caption string, width, height int) string {
	return asciigraph.Plot(values,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}
