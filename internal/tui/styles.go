package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/dm/otelprobe/internal/model"
)

// Dashboard palette. Tier and severity colors deliberately match the
// console report so both surfaces read the same.
var (
	colorGreen  = lipgloss.Color("#10b981")
	colorYellow = lipgloss.Color("#f59e0b")
	colorOrange = lipgloss.Color("#f97316")
	colorRed    = lipgloss.Color("#ef4444")
	colorGray   = lipgloss.Color("#6b7280")
	colorCyan   = lipgloss.Color("#06b6d4")
	colorPurple = lipgloss.Color("#8b5cf6")
	colorBlue   = lipgloss.Color("#3b82f6")
	colorWhite  = lipgloss.Color("#f8fafc")
	colorDark   = lipgloss.Color("#1e293b")
	colorAlt    = lipgloss.Color("#0f172a")
)

// StyleHeader fills the full-width bar at the top of the dashboard.
var StyleHeader = lipgloss.NewStyle().
	Background(colorDark).
	Foreground(colorWhite).
	Padding(0, 1)

// StyleOverviewCard is one cell of the stat card row.
var StyleOverviewCard = lipgloss.NewStyle().
	Background(colorAlt).
	Foreground(colorWhite).
	Padding(0, 1).
	Margin(0).
	Align(lipgloss.Center)

var (
	StyleError = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	StyleDim   = lipgloss.NewStyle().Foreground(colorGray)

	// Badge and cell tints.
	StyleGreen  = lipgloss.NewStyle().Foreground(colorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(colorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(colorRed)
)

// tierStyle returns the bold foreground style for an export health tier.
func tierStyle(t model.Tier) lipgloss.Style {
	return lipgloss.NewStyle().Bold(t != model.TierUnknown).Foreground(tierColor(t))
}

// tierColor returns the raw palette color for a tier, also used for
// card backgrounds.
func tierColor(t model.Tier) lipgloss.Color {
	switch t {
	case model.TierExcellent:
		return colorGreen
	case model.TierGood:
		return colorYellow
	case model.TierDegraded:
		return colorOrange
	case model.TierCritical:
		return colorRed
	default:
		return colorGray
	}
}
