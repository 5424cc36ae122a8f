package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dm/otelprobe/internal/format"
)

// renderOverview renders the 6-stat overview bar.
// Wide terminals (>= 80 cols): all 6 cards in a single horizontal row.
// Narrow terminals (< 80 cols): cards stacked in rows of 2.
// Returns empty string if no snapshot is available yet.
func renderOverview(app *App) string {
	if app.current == nil {
		return ""
	}

	width := app.width
	if width <= 0 {
		width = 80
	}

	narrowMode := width < 80

	var cardWidth int
	if narrowMode {
		// 2 cards per row: split width evenly between 2 cards.
		cardWidth = (width - 4) / 2
		if cardWidth < 10 {
			cardWidth = 10
		}
	} else {
		cardWidth = (width - 12) / 6
		if cardWidth < 8 {
			cardWidth = 8
		}
	}

	// Mini bar inner width: card width minus padding (1 char each side).
	barWidth := cardWidth - 4
	if barWidth < 4 {
		barWidth = 4
	}

	snap := app.current

	// Card 1: export health tier on its own colored background.
	card1 := StyleOverviewCard.
		Background(tierColor(snap.Tier)).
		Foreground(colorDark).
		Bold(true).
		Width(cardWidth).
		Render(snap.Tier.String() + "\nExport Health")

	// Cards 2-6 need export statistics; a missing scrape renders placeholders.
	rateVal, queueVal := "---", "---"
	sentVal, failedVal, recvVal := "---", "---", "---"
	var ratePct, queuePct float64
	rateSev, queueSev, failedSev := severityNormal, severityNormal, severityNormal
	if st := snap.Export; st != nil {
		ratePct, queuePct = st.SuccessRate, st.QueueUtilization
		rateSev = rateSeverity(ratePct)
		queueSev = queueSeverity(queuePct)
		failedSev = failureSeverity(st.FailedPoints)
		rateVal = format.FormatPercent(ratePct)
		queueVal = format.FormatPercent(queuePct)
		sentVal = format.FormatCount(st.SentPoints)
		failedVal = format.FormatCount(st.FailedPoints)
		recvVal = format.FormatCount(st.ReceivedPoints)
	}

	// Card 2: success rate with mini bar, tinted by severity.
	if rateSev == severityCritical {
		rateVal += "!"
	}
	card2 := StyleOverviewCard.
		Foreground(severityFg(rateSev)).
		Width(cardWidth).
		Render(rateVal + "\n" + renderMiniBar(ratePct, barWidth) + "\nSuccess Rate")

	// Card 3: queue utilization with mini bar, tinted by severity.
	if queueSev == severityCritical {
		queueVal += "!"
	}
	card3 := StyleOverviewCard.
		Foreground(severityFg(queueSev)).
		Width(cardWidth).
		Render(queueVal + "\n" + renderMiniBar(queuePct, barWidth) + "\nQueue")

	// Card 4: points sent.
	card4 := StyleOverviewCard.
		Foreground(colorPurple).
		Width(cardWidth).
		Render(sentVal + "\nSent")

	// Card 5: send failures, tinted by severity.
	card5 := StyleOverviewCard.
		Foreground(severityFg(failedSev)).
		Width(cardWidth).
		Render(failedVal + "\nFailed")

	// Card 6: points received.
	card6 := StyleOverviewCard.
		Foreground(colorBlue).
		Width(cardWidth).
		Render(recvVal + "\nReceived")

	if narrowMode {
		// Arrange 6 cards in rows of 2.
		row1 := lipgloss.JoinHorizontal(lipgloss.Top, card1, card2)
		row2 := lipgloss.JoinHorizontal(lipgloss.Top, card3, card4)
		row3 := lipgloss.JoinHorizontal(lipgloss.Top, card5, card6)
		return lipgloss.JoinVertical(lipgloss.Left, row1, row2, row3)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, card1, card2, card3, card4, card5, card6)
}

// renderMiniBar renders a mini progress bar using Unicode block characters.
// Fills proportionally using "█" (U+2588) for filled and "░" (U+2591) for empty cells.
func renderMiniBar(percent float64, width int) string {
	if width <= 0 {
		return ""
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := int(percent / 100.0 * float64(width))
	if filled > width {
		filled = width
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
