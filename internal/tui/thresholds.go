package tui

import "github.com/charmbracelet/lipgloss"

// severity represents the alert level for a dashboard value.
type severity int

const (
	severityNormal   severity = iota
	severityWarning           // yellow
	severityCritical          // red
)

// rateSeverity grades an export success rate: Warning below 80%,
// Critical below 50%.
func rateSeverity(pct float64) severity {
	switch {
	case pct < 50:
		return severityCritical
	case pct < 80:
		return severityWarning
	default:
		return severityNormal
	}
}

// queueSeverity grades queue utilization: Warning above 50%, Critical
// above 80%.
func queueSeverity(pct float64) severity {
	switch {
	case pct >= 80:
		return severityCritical
	case pct >= 50:
		return severityWarning
	default:
		return severityNormal
	}
}

// failureSeverity grades the failed point counter: any failures warrant
// attention.
func failureSeverity(failed float64) severity {
	if failed > 0 {
		return severityWarning
	}
	return severityNormal
}

// severityToStyle maps a severity level to the appropriate lipgloss style.
func severityToStyle(s severity) lipgloss.Style {
	switch s {
	case severityWarning:
		return StyleYellow
	case severityCritical:
		return StyleRed
	default:
		return lipgloss.NewStyle()
	}
}

// severityFg maps a severity level to a foreground color for stat cards.
func severityFg(s severity) lipgloss.Color {
	switch s {
	case severityWarning:
		return colorYellow
	case severityCritical:
		return colorRed
	default:
		return colorWhite
	}
}
