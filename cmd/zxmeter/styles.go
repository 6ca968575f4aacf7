package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	primary = lipgloss.Color("#7C3AED")
	success = lipgloss.Color("#10B981")
	warning = lipgloss.Color("#F59E0B")
	danger  = lipgloss.Color("#EF4444")
	subtle  = lipgloss.Color("#6B7280")
	border  = lipgloss.Color("#374151")

	titleStyle = lipgloss.NewStyle().
			Foreground(primary).
			Bold(true).
			Padding(0, 1)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(1, 2).
			Width(56)

	helpStyle = lipgloss.NewStyle().
			Foreground(subtle).
			Padding(1, 0)

	issueStyle = lipgloss.NewStyle().
			Foreground(warning)
)

// verdictColor returns the meter color for a verdict label.
func verdictColor(verdict string) lipgloss.Color {
	switch verdict {
	case "Very Weak", "Weak":
		return danger
	case "Okay":
		return warning
	default:
		return success
	}
}

// renderBar renders a 30-cell score bar, filled proportionally to score
// (0-100) and colored by verdict.
func renderBar(score int, verdict string) string {
	const width = 30
	filled := width * score / 100
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	empty := width - filled

	filledStyle := lipgloss.NewStyle().Foreground(verdictColor(verdict))
	emptyStyle := lipgloss.NewStyle().Foreground(border)

	return filledStyle.Render(strings.Repeat("█", filled)) +
		emptyStyle.Render(strings.Repeat("░", empty))
}
