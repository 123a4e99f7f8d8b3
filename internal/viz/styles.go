package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// HeaderStyle titles a rendered block.
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86")).
			MarginBottom(1)

	// LabelStyle and ValueStyle pair up in summary panels.
	LabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(22)
	ValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

	// PhaseStyle marks which phase produced a sample.
	PhaseStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)

	// Subtle renders key hints and separators.
	Subtle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	// FailedStyle marks failed sweep rows.
	FailedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)

	// OKStyle marks healthy values.
	OKStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	tableHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252"))
)

// RenderSummary renders aligned label/value rows inside a bordered panel.
func RenderSummary(title string, rows [][2]string) string {
	var b strings.Builder
	b.WriteString(HeaderStyle.Render(title))
	b.WriteString("\n")
	for _, row := range rows {
		b.WriteString(LabelStyle.Render(row[0]))
		b.WriteString(ValueStyle.Render(row[1]))
		b.WriteString("\n")
	}
	return panelStyle.Render(strings.TrimRight(b.String(), "\n"))
}

// ProgressBar renders head progress through a playback.
func ProgressBar(percent float64, width int) string {
	filled := int(percent * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return OKStyle.Render(bar)
}
