// Package tui implements the live watch dashboard.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dm/otelprobe/internal/client"
	"github.com/dm/otelprobe/internal/engine"
	"github.com/dm/otelprobe/internal/model"
)

type connState int

const (
	stateConnected    connState = iota
	stateDisconnected connState = iota
)

// App is the root Bubble Tea model for the watch dashboard.
type App struct {
	prober       client.Prober
	pollInterval time.Duration

	// Poll state
	fetching bool // true while a fetchCmd goroutine is in-flight
	current  *model.HealthSnapshot
	previous *model.HealthSnapshot
	history  *model.TrendHistory

	// Connection state
	connState        connState
	consecutiveFails int
	lastError        error
	lastUpdated      time.Time

	// Layout
	width, height int

	// UI state
	showHelp bool
}

// NewApp creates a new App polling p every interval.
func NewApp(p client.Prober, interval time.Duration) *App {
	return &App{
		prober:       p,
		pollInterval: interval,
		history:      model.NewTrendHistory(0),
		connState:    stateDisconnected,
		fetching:     true, // Init() always issues an immediate fetchCmd
	}
}

// Init implements tea.Model. Starts the first cycle immediately on launch.
func (app *App) Init() tea.Cmd {
	return fetchCmd(app.prober, app.pollInterval)
}

// Update implements tea.Model. All state mutation happens here.
func (app *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		app.width = msg.Width
		app.height = msg.Height

	case SnapshotMsg:
		app.fetching = false
		app.previous = app.current
		app.current = msg.Snapshot
		if st := msg.Snapshot.Export; st != nil {
			app.history.Push(model.TrendPoint{
				At:               msg.Snapshot.Taken,
				SuccessRate:      st.SuccessRate,
				QueueUtilization: st.QueueUtilization,
				SentPoints:       st.SentPoints,
				FailedPoints:     st.FailedPoints,
			})
		}
		app.consecutiveFails = 0
		app.lastError = nil
		app.connState = stateConnected
		app.lastUpdated = msg.Snapshot.Taken
		return app, tickCmd(app.pollInterval)

	case FetchErrorMsg:
		app.fetching = false
		app.consecutiveFails++
		app.lastError = msg.Err
		app.connState = stateDisconnected
		backoff := backoffDuration(app.consecutiveFails)
		return app, tea.Tick(backoff, func(t time.Time) tea.Msg {
			return TickMsg(t)
		})

	case TickMsg:
		if app.fetching {
			return app, nil
		}
		app.fetching = true
		return app, fetchCmd(app.prober, app.pollInterval)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return app, tea.Quit
		case key.Matches(msg, keys.Refresh):
			if app.fetching {
				return app, nil
			}
			app.fetching = true
			return app, fetchCmd(app.prober, app.pollInterval)
		case key.Matches(msg, keys.Help):
			app.showHelp = !app.showHelp
		}
	}

	return app, nil
}

// View implements tea.Model. Renders the full dashboard.
func (app *App) View() string {
	var parts []string

	if h := renderHeader(app); h != "" {
		parts = append(parts, h)
	}
	if o := renderOverview(app); o != "" {
		parts = append(parts, o)
	}
	if tr := renderTrendRow(app); tr != "" {
		parts = append(parts, tr)
	}
	if e := renderEndpoints(app); e != "" {
		parts = append(parts, e)
	}
	if a := renderAdvice(app); a != "" {
		parts = append(parts, a)
	}
	parts = append(parts, renderFooter(app))

	return strings.Join(parts, "\n")
}

// tickCmd schedules the next cycle after duration d.
func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// fetchCmd is a Bubble Tea command that runs one diagnostic cycle.
// A fully down collector (health and metrics both unreachable) becomes
// a FetchErrorMsg so the dashboard keeps the last good snapshot on
// screen; partial failures still produce a SnapshotMsg.
func fetchCmd(p client.Prober, interval time.Duration) tea.Cmd {
	return func() tea.Msg {
		timeout := interval - 500*time.Millisecond
		if timeout < 500*time.Millisecond {
			timeout = 500 * time.Millisecond
		}
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		snap := engine.Collect(ctx, p)
		if !snap.Health.Reachable && !snap.Metrics.Reachable {
			return FetchErrorMsg{Err: collectorDownError(snap)}
		}
		return SnapshotMsg{Snapshot: &snap}
	}
}

// collectorDownError condenses a fully failed cycle into one error.
func collectorDownError(snap model.HealthSnapshot) error {
	reason := string(snap.Health.Reason)
	if reason == "" || reason == string(client.ReasonUnknown) {
		if snap.Health.Error != "" {
			reason = snap.Health.Error
		} else {
			reason = "no response"
		}
	}
	return fmt.Errorf("collector unreachable: %s", reason)
}

// backoffDuration returns min(2^fails * time.Second, 60*time.Second).
// At fails=1: 2s, fails=2: 4s, fails=3: 8s, ..., fails>=6: 60s.
func backoffDuration(fails int) time.Duration {
	const maxBackoff = 60 * time.Second
	if fails <= 0 {
		return time.Second
	}
	if fails >= 6 {
		return maxBackoff
	}
	return time.Duration(1<<fails) * time.Second
}
