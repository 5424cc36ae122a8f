package engine

import (
	"context"
	"time"

	"github.com/dm/otelprobe/internal/client"
	"github.com/dm/otelprobe/internal/model"
	"github.com/dm/otelprobe/internal/promtext"
)

// Collect runs one full diagnostic cycle against the collector: poll the
// health, metrics and zPages endpoints, parse the metrics body, derive the
// export statistics and classify them. Endpoint failures are recorded in
// the snapshot rather than returned, so a fully down collector still
// yields a renderable snapshot.
//
// The cycle is sequential; only the zPages sub-page probe fans out inside
// ProbeZPages. There are no retries, the next cycle is the retry.
func Collect(ctx context.Context, p client.Prober) model.HealthSnapshot {
	snap := model.HealthSnapshot{
		Taken: time.Now(),
		Host:  p.Host(),
	}

	snap.Health = p.CheckHealth(ctx)
	snap.Metrics = p.FetchMetrics(ctx)
	zp := p.ProbeZPages(ctx)
	snap.ZPages = &zp

	if snap.Metrics.Reachable {
		snap.Samples = promtext.Parse(snap.Metrics.Body)
		stats := DeriveExportStats(snap.Samples)
		snap.Export = &stats
		snap.Tier = ClassifyExportHealth(stats.SuccessRate)
		snap.Queue = ClassifyQueue(stats.QueueUtilization)
	}

	snap.Advice = BuildAdvice(snap)
	return snap
}
