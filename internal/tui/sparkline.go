package tui

import (
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// sparkLevels is the 8-step block character ramp used for sparklines.
var sparkLevels = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// RenderSparkline converts a series of float64 values into a block-ramp
// sparkline string of exactly width characters, colored with the given
// lipgloss color.
//
// Rules:
//   - No values → width spaces
//   - All zeros (or negatives) → all '▁' (floor level)
//   - More values than width → keep the newest width values
//   - Fewer values than width → left-pad with spaces
func RenderSparkline(values []float64, width int, color lipgloss.Color) string {
	if width <= 0 {
		return ""
	}
	if len(values) == 0 {
		return strings.Repeat(" ", width)
	}

	if len(values) > width {
		values = values[len(values)-width:]
	}
	maxVal := slices.Max(values)

	var sb strings.Builder
	sb.WriteString(strings.Repeat(" ", width-len(values)))
	for _, v := range values {
		sb.WriteRune(sparkLevels[levelIndex(v, maxVal)])
	}

	return lipgloss.NewStyle().Foreground(color).Render(sb.String())
}

// levelIndex maps v onto the ramp index [0, 7] relative to maxVal.
func levelIndex(v, maxVal float64) int {
	if maxVal <= 0 {
		return 0
	}
	idx := int(v / maxVal * 7)
	if idx < 0 {
		return 0
	}
	if idx > 7 {
		return 7
	}
	return idx
}
