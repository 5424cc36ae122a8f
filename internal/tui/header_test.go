package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dm/otelprobe/internal/model"
)

func TestRenderHeader_Connecting(t *testing.T) {
	app := NewApp(&fakeProber{}, 30*time.Second)
	app.width = 100

	got := stripANSI(renderHeader(app))
	assert.Contains(t, got, "Connecting to http://localhost:13133/health...")
	assert.NotContains(t, got, "DISCONNECTED")
}

func TestRenderHeader_ConnectingAfterFailure(t *testing.T) {
	app := NewApp(&fakeProber{}, 30*time.Second)
	app.width = 120

	newModel, _ := app.Update(FetchErrorMsg{Err: assertableError("dial tcp 127.0.0.1:13133: connect: connection refused")})
	app = newModel.(*App)

	got := stripANSI(renderHeader(app))
	assert.Contains(t, got, "DISCONNECTED")
	assert.Contains(t, got, "Press r to retry")
	// Long errors are truncated to keep the bar on one line.
	assert.Contains(t, got, "...")
}

func TestRenderHeader_Connected(t *testing.T) {
	app := NewApp(&fakeProber{}, 30*time.Second)
	app.width = 120

	newModel, _ := app.Update(SnapshotMsg{Snapshot: makeSnapshot()})
	app = newModel.(*App)

	got := stripANSI(renderHeader(app))
	assert.Contains(t, got, "localhost")
	assert.Contains(t, got, "● EXCELLENT")
	assert.Contains(t, got, "Last: ")
	assert.Contains(t, got, "Poll: 30s")
}

func TestRenderHeader_DisconnectedAfterSnapshot(t *testing.T) {
	app := NewApp(&fakeProber{}, 30*time.Second)
	app.width = 120

	newModel, _ := app.Update(SnapshotMsg{Snapshot: makeSnapshot()})
	newModel, _ = newModel.(*App).Update(FetchErrorMsg{Err: assertableError("collector unreachable: timeout")})
	app = newModel.(*App)

	got := stripANSI(renderHeader(app))
	// Host stays visible alongside the disconnect notice.
	assert.Contains(t, got, "localhost")
	assert.Contains(t, got, "DISCONNECTED")
	assert.Contains(t, got, "Press r to retry")
}

func TestRenderHeader_TierColorsFollowSnapshot(t *testing.T) {
	cases := []struct {
		tier model.Tier
		want string
	}{
		{model.TierExcellent, "● EXCELLENT"},
		{model.TierGood, "● GOOD"},
		{model.TierDegraded, "● DEGRADED"},
		{model.TierCritical, "● CRITICAL"},
		{model.TierUnknown, "● UNKNOWN"},
	}
	for _, tc := range cases {
		t.Run(tc.want, func(t *testing.T) {
			app := NewApp(&fakeProber{}, 30*time.Second)
			app.width = 120
			snap := makeSnapshot()
			snap.Tier = tc.tier
			newModel, _ := app.Update(SnapshotMsg{Snapshot: snap})
			app = newModel.(*App)

			assert.Contains(t, stripANSI(renderHeader(app)), tc.want)
		})
	}
}

// assertableError is a trivial error type for fixture messages.
type assertableError string

func (e assertableError) Error() string { return string(e) }

func TestRenderFooter(t *testing.T) {
	app := NewApp(nil, 30*time.Second)
	app.width = 80

	got := stripANSI(renderFooter(app))
	assert.Contains(t, got, "? for help")
	assert.Contains(t, got, "checking...", "first probe is in flight right after NewApp")

	app.fetching = false
	assert.NotContains(t, stripANSI(renderFooter(app)), "checking...")

	app.showHelp = true
	got = stripANSI(renderFooter(app))
	assert.Contains(t, got, "q/ctrl+c: quit")
	assert.Contains(t, got, "r: check now")
	assert.True(t, strings.Contains(got, "toggle help"))
}
