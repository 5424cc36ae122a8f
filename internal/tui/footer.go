package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderFooter renders the key help line. While a probe is in flight a
// dim activity marker sits at the right edge.
func renderFooter(app *App) string {
	width := app.width
	if width <= 0 {
		width = 80
	}
	text := "? for help"
	if app.showHelp {
		text = helpText()
	}
	if app.fetching {
		const marker = "checking..."
		gap := width - lipgloss.Width(text) - len(marker)
		if gap > 0 {
			return StyleDim.Render(text + strings.Repeat(" ", gap) + marker)
		}
	}
	return StyleDim.Width(width).Render(text)
}
