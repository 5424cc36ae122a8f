package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"

	"github.com/dm/otelprobe/internal/client"
	"github.com/dm/otelprobe/internal/format"
)

// endpointRow is one line of the endpoints panel.
type endpointRow struct {
	name    string
	status  string
	latency string
	url     string
	ok      bool
}

// endpointRows flattens a snapshot's probe results into display rows:
// health, metrics, the zPages root and its sub-pages.
func endpointRows(app *App) []endpointRow {
	snap := app.current
	row := func(name string, r client.EndpointResult) endpointRow {
		if r.Reachable {
			return endpointRow{
				name:    name,
				status:  fmt.Sprintf("ok (%d)", r.StatusCode),
				latency: format.FormatLatency(r.Latency),
				url:     r.URL,
				ok:      true,
			}
		}
		reason := string(r.Reason)
		if reason == "" || reason == string(client.ReasonUnknown) {
			reason = "error"
		}
		return endpointRow{
			name:    name,
			status:  "unavailable (" + reason + ")",
			latency: "---",
			url:     r.URL,
		}
	}

	rows := []endpointRow{
		row("health", snap.Health),
		row("metrics", snap.Metrics),
	}
	if snap.ZPages != nil {
		rows = append(rows, row("zpages", snap.ZPages.Root))
		for _, sub := range snap.ZPages.Subs {
			rows = append(rows, row("  "+sub.Name, sub.Result))
		}
	}
	return rows
}

// renderEndpoints renders the "Endpoints" section: a dim label followed
// by a borderless status table.
func renderEndpoints(app *App) string {
	if app.current == nil {
		return ""
	}

	rows := endpointRows(app)
	okByRow := make([]bool, len(rows))
	for i, r := range rows {
		okByRow[i] = r.ok
	}

	t := ltable.New().
		Headers("Endpoint", "Status", "Latency", "URL").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == ltable.HeaderRow {
				return lipgloss.NewStyle().Bold(true).Foreground(colorGray)
			}
			base := lipgloss.NewStyle()
			if row%2 == 0 {
				base = base.Background(colorAlt)
			}
			switch col {
			case 1:
				if row >= 0 && row < len(okByRow) && okByRow[row] {
					return base.Foreground(colorGreen)
				}
				return base.Foreground(colorRed)
			case 3:
				return base.Foreground(colorCyan)
			default:
				return base.Foreground(colorWhite)
			}
		}).
		BorderStyle(lipgloss.NewStyle().Foreground(colorGray)).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(true).
		BorderColumn(false)

	if app.width > 0 {
		t = t.Width(app.width)
	}

	for _, r := range rows {
		t = t.Row(r.name, r.status, r.latency, r.url)
	}

	label := StyleDim.Render("Endpoints")
	return lipgloss.JoinVertical(lipgloss.Left, label, t.String())
}
