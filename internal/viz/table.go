package viz

import (
	"fmt"
	"strings"

	"github.com/episim/episim/internal/sweep"
)

// RenderSweep renders a sweep result as a fixed-width table. Failed rows
// show their error kind in place of the metric columns.
func RenderSweep(rows []sweep.Row) string {
	var b strings.Builder

	header := fmt.Sprintf("%-4s %-8s %-8s %-7s %-7s %-7s %-7s %-9s %-9s %-9s %-9s %s",
		"IDX", "BETA", "GAMMA", "DEPR", "DUR", "R0", "R0INT", "TOTAL", "PEAK", "INTTOT", "ISHIFT", "STATUS")
	b.WriteString(tableHeaderStyle.Render(header))
	b.WriteString("\n")
	b.WriteString(Subtle.Render(strings.Repeat("─", len(header))))
	b.WriteString("\n")

	for _, r := range rows {
		tag := fmt.Sprintf("%-4d %-8.3f %-8.3f %-7.3f %-7.1f %-7.3f %-7.3f ",
			r.Index, r.Beta, r.Gamma, r.Depression, r.Duration, r.BaselineR0, r.InterventionR0)

		if r.Failed() {
			line := tag + fmt.Sprintf("%-9s %-9s %-9s %-9s %s", "-", "-", "-", "-", r.Kind)
			b.WriteString(FailedStyle.Render(line))
			b.WriteString("\n")
			continue
		}

		b.WriteString(tag + fmt.Sprintf("%-9.4f %-9.4f %-9.4f %-9.4f %s",
			r.TotalInfected, r.PeakInfected, r.InterventionTotal, r.InfectedAtShift, "ok"))
		b.WriteString("\n")
	}

	return b.String()
}
