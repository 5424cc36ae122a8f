package tui

import (
	"time"

	"github.com/dm/otelprobe/internal/model"
)

// SnapshotMsg delivers a completed diagnostic cycle to the dashboard.
type SnapshotMsg struct {
	Snapshot *model.HealthSnapshot
}

// FetchErrorMsg signals a cycle where the collector was fully
// unreachable.
type FetchErrorMsg struct{ Err error }

// TickMsg triggers the next scheduled cycle.
type TickMsg time.Time
