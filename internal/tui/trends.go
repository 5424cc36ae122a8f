package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/dm/otelprobe/internal/format"
	"github.com/dm/otelprobe/internal/model"
)

// renderTrendCard renders a single trend card with title, value, and sparkline.
//
// Layout (3 rows inside a rounded border):
//
//	╭──────────────────╮
//	│ Title            │   ← titleStyle (normally dim/muted; yellow/red when threshold exceeded)
//	│ 98.2%            │   ← bold, metric color
//	│ ▁▂▃▅▇█▇▅▃▂       │   ← colored sparkline
//	╰──────────────────╯
func renderTrendCard(title, value string, sparkValues []float64, cardWidth int, color lipgloss.Color, titleStyle lipgloss.Style) string {
	// Minimum of 8 avoids zero/negative Width() args.
	const minCardWidth = 8
	if cardWidth < minCardWidth {
		cardWidth = minCardWidth
	}

	// Inner width = card width minus border (2) and padding (2).
	// lipgloss Width() includes padding in its measurement, so available content
	// width = Width - padding = (cardWidth-4) - 2 = cardWidth-6.
	innerWidth := cardWidth - 6
	if innerWidth < 1 {
		innerWidth = 1
	}

	valueStyle := lipgloss.NewStyle().Bold(true).Foreground(color)

	titleLine := titleStyle.Render(title)
	valueLine := valueStyle.Render(value)
	sparkLine := RenderSparkline(sparkValues, innerWidth, color)

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorGray).
		Padding(0, 1).
		Width(cardWidth - 4)

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		titleLine,
		valueLine,
		sparkLine,
	))
}

// renderTrendRow renders 4 trend cards (Success Rate, Queue Utilization,
// Sent/cycle, Failed/cycle) with an "Export Trends" section label.
// Wide terminals (>= 80 cols): 1x4 horizontal row.
// Narrow terminals (< 80 cols): 2x2 grid.
// Returns empty string when no data is available.
func renderTrendRow(app *App) string {
	if app.current == nil {
		return ""
	}

	label := StyleDim.Render("Export Trends")

	rateSeries := app.history.Series(func(p model.TrendPoint) float64 { return p.SuccessRate })
	queueSeries := app.history.Series(func(p model.TrendPoint) float64 { return p.QueueUtilization })
	sentDeltas := deltaSeries(app.history.Series(func(p model.TrendPoint) float64 { return p.SentPoints }))
	failedDeltas := deltaSeries(app.history.Series(func(p model.TrendPoint) float64 { return p.FailedPoints }))

	rateVal, queueVal := "---", "---"
	var rateTitleStyle, queueTitleStyle, failedTitleStyle lipgloss.Style = StyleDim, StyleDim, StyleDim
	if st := app.current.Export; st != nil {
		rateVal = format.FormatPercent(st.SuccessRate)
		queueVal = format.FormatPercent(st.QueueUtilization)
		if s := rateSeverity(st.SuccessRate); s != severityNormal {
			rateTitleStyle = severityToStyle(s)
		}
		if s := queueSeverity(st.QueueUtilization); s != severityNormal {
			queueTitleStyle = severityToStyle(s)
		}
		if s := failureSeverity(st.FailedPoints); s != severityNormal {
			failedTitleStyle = severityToStyle(s)
		}
	}
	sentVal := lastDeltaValue(sentDeltas)
	failedVal := lastDeltaValue(failedDeltas)

	if app.width > 0 && app.width < 80 {
		// 2x2 grid layout for narrow terminals.
		// Each card renders at (cardWidth-2) chars wide (lipgloss Width includes
		// padding, border adds 2). For 2 cards to fill app.width:
		// 2*(cardWidth-2)=app.width → cardWidth=(app.width+4)/2. Return empty when
		// the terminal is too narrow for the minimum card size rather than overflow.
		cardWidth := (app.width + 4) / 2
		if cardWidth < 8 {
			return ""
		}
		narrowLabel := StyleDim.MaxWidth(app.width).Render("Export Trends")
		top := lipgloss.JoinHorizontal(lipgloss.Top,
			renderTrendCard("Success Rate", rateVal, rateSeries, cardWidth, colorGreen, rateTitleStyle),
			renderTrendCard("Queue Utilization", queueVal, queueSeries, cardWidth, colorCyan, queueTitleStyle),
		)
		bottom := lipgloss.JoinHorizontal(lipgloss.Top,
			renderTrendCard("Sent / cycle", sentVal, sentDeltas, cardWidth, colorPurple, StyleDim),
			renderTrendCard("Failed / cycle", failedVal, failedDeltas, cardWidth, colorRed, failedTitleStyle),
		)
		return lipgloss.JoinVertical(lipgloss.Left, narrowLabel, top, bottom)
	}

	// 1x4 horizontal row for wide terminals.
	cardWidth := (app.width + 8) / 4
	if cardWidth < 20 {
		cardWidth = 20
	}

	cards := []string{
		renderTrendCard("Success Rate", rateVal, rateSeries, cardWidth, colorGreen, rateTitleStyle),
		renderTrendCard("Queue Utilization", queueVal, queueSeries, cardWidth, colorCyan, queueTitleStyle),
		renderTrendCard("Sent / cycle", sentVal, sentDeltas, cardWidth, colorPurple, StyleDim),
		renderTrendCard("Failed / cycle", failedVal, failedDeltas, cardWidth, colorRed, failedTitleStyle),
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, cards...)
	return lipgloss.JoinVertical(lipgloss.Left, label, row)
}

// deltaSeries converts an absolute counter series into per-cycle
// increments. Counter resets (a decrease) clamp to zero instead of
// going negative.
func deltaSeries(values []float64) []float64 {
	if len(values) < 2 {
		return nil
	}
	out := make([]float64, len(values)-1)
	for i := 1; i < len(values); i++ {
		d := values[i] - values[i-1]
		if d < 0 {
			d = 0
		}
		out[i-1] = d
	}
	return out
}

// lastDeltaValue formats the most recent per-cycle increment.
func lastDeltaValue(deltas []float64) string {
	if len(deltas) == 0 {
		return "---"
	}
	return format.FormatDelta(deltas[len(deltas)-1])
}
