package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dm/otelprobe/internal/model"
)

// categoryLabel returns the display name for an advice category.
func categoryLabel(cat model.AdviceCategory) string {
	switch cat {
	case model.CategoryConnectivity:
		return "Connectivity"
	case model.CategoryExportFailures:
		return "Export Failures"
	case model.CategoryQueuePressure:
		return "Queue Pressure"
	case model.CategoryTelemetry:
		return "Telemetry"
	default:
		return "Other"
	}
}

// severityBadge returns a colored, fixed-width badge for the given severity.
func severityBadge(sev model.AdviceSeverity) string {
	switch sev {
	case model.SeverityCritical:
		return StyleRed.Bold(true).Render("[CRITICAL]")
	case model.SeverityWarning:
		return StyleYellow.Bold(true).Render("[WARN]    ")
	default:
		return StyleGreen.Bold(true).Render("[INFO]    ")
	}
}

// wrapText wraps text at maxWidth rune-columns, breaking at word boundaries.
// Returns the original string unchanged when it fits within maxWidth.
func wrapText(text string, maxWidth int) string {
	if maxWidth <= 0 || utf8.RuneCountInString(text) <= maxWidth {
		return text
	}
	words := strings.Fields(text)
	if len(words) == 0 {
		return text
	}
	var lines []string
	var current strings.Builder
	var currentLen int // rune count of current line
	for _, word := range words {
		wordLen := utf8.RuneCountInString(word)
		if currentLen == 0 {
			current.WriteString(word)
			currentLen = wordLen
		} else if currentLen+1+wordLen <= maxWidth {
			current.WriteByte(' ')
			current.WriteString(word)
			currentLen += 1 + wordLen
		} else {
			lines = append(lines, current.String())
			current.Reset()
			current.WriteString(word)
			currentLen = wordLen
		}
	}
	if currentLen > 0 {
		lines = append(lines, current.String())
	}
	return strings.Join(lines, "\n")
}

// buildAdviceLines returns the rendered content lines for the advice
// panel, grouped by category in fixed order.
func buildAdviceLines(advice []model.Advice, width int) []string {
	var lines []string
	if len(advice) == 0 {
		lines = append(lines, "  "+StyleGreen.Bold(true).Render("No active recommendations, collector looks healthy"))
		return lines
	}
	categories := []model.AdviceCategory{
		model.CategoryConnectivity,
		model.CategoryTelemetry,
		model.CategoryExportFailures,
		model.CategoryQueuePressure,
	}
	for _, cat := range categories {
		var catAdvice []model.Advice
		for _, a := range advice {
			if a.Category == cat {
				catAdvice = append(catAdvice, a)
			}
		}
		if len(catAdvice) == 0 {
			continue
		}
		catHeader := StyleDim.Bold(true).Underline(true).Render(categoryLabel(cat))
		lines = append(lines, "")
		lines = append(lines, "  "+catHeader)
		for _, a := range catAdvice {
			badge := severityBadge(a.Severity)
			lines = append(lines, fmt.Sprintf("  %s %s", badge, a.Title))
			if a.Detail != "" {
				wrapped := wrapText(a.Detail, width-6)
				for _, dline := range strings.Split(wrapped, "\n") {
					lines = append(lines, "    "+dline)
				}
			}
		}
	}
	return lines
}

// renderAdvice renders the "Recommendations" section of the dashboard.
func renderAdvice(app *App) string {
	if app.current == nil {
		return ""
	}
	width := app.width
	if width <= 0 {
		width = 80
	}
	label := StyleDim.Render("Recommendations")
	lines := buildAdviceLines(app.current.Advice, width)
	return label + "\n" + strings.Join(lines, "\n")
}
