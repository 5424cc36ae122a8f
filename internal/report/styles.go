package report

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/dm/otelprobe/internal/model"
)

// Console report palette, shared hex values with the watch dashboard.
var (
	colorGreen  = lipgloss.Color("#10b981")
	colorYellow = lipgloss.Color("#f59e0b")
	colorOrange = lipgloss.Color("#f97316")
	colorRed    = lipgloss.Color("#ef4444")
	colorGray   = lipgloss.Color("#6b7280")
	colorCyan   = lipgloss.Color("#06b6d4")
)

var (
	styleTitle = lipgloss.NewStyle().Bold(true)
	styleRule  = lipgloss.NewStyle().Foreground(colorGray)
	styleDim   = lipgloss.NewStyle().Foreground(colorGray)
	styleURL   = lipgloss.NewStyle().Foreground(colorCyan)
	styleOK    = lipgloss.NewStyle().Foreground(colorGreen)
	styleBad   = lipgloss.NewStyle().Bold(true).Foreground(colorRed)
)

// TierStyle returns the style used to render a health tier.
func TierStyle(t model.Tier) lipgloss.Style {
	switch t {
	case model.TierExcellent:
		return lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
	case model.TierGood:
		return lipgloss.NewStyle().Bold(true).Foreground(colorYellow)
	case model.TierDegraded:
		return lipgloss.NewStyle().Bold(true).Foreground(colorOrange)
	case model.TierCritical:
		return lipgloss.NewStyle().Bold(true).Foreground(colorRed)
	default:
		return lipgloss.NewStyle().Foreground(colorGray)
	}
}

// QueueStyle returns the style used to render a queue state.
func QueueStyle(q model.QueueState) lipgloss.Style {
	switch q {
	case model.QueueHealthy:
		return lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
	case model.QueueModerate:
		return lipgloss.NewStyle().Bold(true).Foreground(colorYellow)
	case model.QueueHigh:
		return lipgloss.NewStyle().Bold(true).Foreground(colorRed)
	default:
		return lipgloss.NewStyle().Foreground(colorGray)
	}
}

// tierQualifier is the parenthetical guidance printed after a tier name.
func tierQualifier(t model.Tier) string {
	switch t {
	case model.TierGood:
		return " (monitor for improvements)"
	case model.TierDegraded:
		return " (investigate failures)"
	case model.TierCritical:
		return " (immediate attention required)"
	default:
		return ""
	}
}

// queueQualifier is the parenthetical guidance printed after a queue state.
func queueQualifier(q model.QueueState) string {
	switch q {
	case model.QueueModerate:
		return " (monitor load)"
	case model.QueueHigh:
		return " (risk of data loss)"
	default:
		return ""
	}
}

// severityBadge returns a colored, fixed-width badge for the given severity.
func severityBadge(sev model.AdviceSeverity) string {
	switch sev {
	case model.SeverityCritical:
		return styleBad.Render("[CRITICAL]")
	case model.SeverityWarning:
		return lipgloss.NewStyle().Bold(true).Foreground(colorYellow).Render("[WARN]    ")
	default:
		return lipgloss.NewStyle().Bold(true).Foreground(colorGreen).Render("[INFO]    ")
	}
}
