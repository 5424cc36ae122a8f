package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dm/otelprobe/internal/format"
)

// renderHeader renders the top header bar with host, tier, and timing info.
//
// Layout:
//
//	left:   collector host (or "Connecting to <URL>..." on first cycle)
//	center: colored "● TIER" indicator (or "● DISCONNECTED  <error>" when offline)
//	right:  "Last: HH:MM:SS  Poll: Ns" (or "Press r to retry" when offline)
func renderHeader(app *App) string {
	width := app.width
	if width <= 0 {
		width = 80
	}

	var left, center, right string

	if app.current == nil {
		// No completed cycle yet.
		target := ""
		if app.prober != nil {
			target = app.prober.HealthURL()
		}
		left = "Connecting to " + target + "..."

		if app.connState == stateDisconnected && app.lastError != nil {
			errMsg := app.lastError.Error()
			if len(errMsg) > 40 {
				errMsg = errMsg[:40] + "..."
			}
			center = StyleError.Render("● DISCONNECTED  " + errMsg)
			right = StyleError.Render("Press r to retry")
		}
	} else {
		left = app.current.Host

		if app.connState == stateDisconnected {
			// Lost the collector after a successful cycle.
			errDisplay := "● DISCONNECTED"
			if app.lastError != nil {
				errMsg := app.lastError.Error()
				if len(errMsg) > 40 {
					errMsg = errMsg[:40] + "..."
				}
				errDisplay += "  " + errMsg
			}
			center = StyleError.Render(errDisplay)
			right = StyleError.Render("Press r to retry")
		} else {
			center = tierStyle(app.current.Tier).Render("● " + app.current.Tier.String())

			lastStr := "Connecting..."
			if !app.lastUpdated.IsZero() {
				lastStr = app.lastUpdated.Format("15:04:05")
			}
			right = StyleDim.Render(fmt.Sprintf("Last: %s  Poll: %s", lastStr, format.FormatCompactDuration(app.pollInterval)))
		}
	}

	// Build row: left + padding + center + padding + right, filling innerWidth.
	// StyleHeader has Padding(0, 1) so inner content width = total width - 2.
	innerWidth := width - 2
	leftVW := lipgloss.Width(left)
	centerVW := lipgloss.Width(center)
	rightVW := lipgloss.Width(right)

	spacing := innerWidth - leftVW - centerVW - rightVW
	if spacing < 0 {
		spacing = 0
	}
	leftSpacing := spacing / 2
	rightSpacing := spacing - leftSpacing

	row := left +
		strings.Repeat(" ", leftSpacing) +
		center +
		strings.Repeat(" ", rightSpacing) +
		right

	return StyleHeader.Width(width).Render(row)
}
