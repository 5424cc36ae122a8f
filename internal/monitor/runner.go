// Package monitor drives diagnostic cycles: one-shot or on a ticker.
package monitor

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/dm/otelprobe/internal/client"
	"github.com/dm/otelprobe/internal/engine"
	"github.com/dm/otelprobe/internal/model"
	"github.com/dm/otelprobe/internal/report"
)

// Config is the runtime configuration of a Runner.
type Config struct {
	Interval  time.Duration
	FailBelow model.Tier
}

// Runner owns the check loop. It probes, renders and decides the exit
// status; it never retries inside a cycle.
type Runner struct {
	cfg      Config
	prober   client.Prober
	renderer *report.Renderer
	log      *slog.Logger
}

// New creates a runner with immutable config.
func New(cfg Config, p client.Prober, r *report.Renderer, log *slog.Logger) (*Runner, error) {
	if p == nil {
		return nil, errors.New("monitor: prober required")
	}
	if r == nil {
		return nil, errors.New("monitor: renderer required")
	}
	if cfg.Interval <= 0 {
		return nil, errors.New("monitor: interval must be > 0")
	}
	if log == nil {
		log = slog.Default()
	}
	return &Runner{cfg: cfg, prober: p, renderer: r, log: log}, nil
}

// RunOnce performs exactly one diagnostic cycle and reports the process
// exit code: 0 when the collector meets the acceptance threshold, 1
// otherwise.
func (r *Runner) RunOnce(ctx context.Context) (model.HealthSnapshot, int) {
	return r.cycle(ctx, nil)
}

// Run performs cycles until ctx is cancelled. The first cycle starts
// immediately, later ones follow the ticker. Cancellation between
// cycles exits cleanly; cancellation mid-cycle drops the report rather
// than printing a half-probed one.
func (r *Runner) Run(ctx context.Context) {
	snap, _ := r.cycle(ctx, nil)
	if ctx.Err() != nil {
		return
	}

	ticker := time.NewTicker(r.cfg.Interval)
	defer ticker.Stop()

	prev := snap
	for {
		r.renderer.WriteCycleSeparator(r.cfg.Interval)
		select {
		case <-ctx.Done():
			r.log.Info("monitoring stopped")
			return
		case <-ticker.C:
			snap, _ = r.cycle(ctx, &prev)
			if ctx.Err() != nil {
				return
			}
			prev = snap
		}
	}
}

func (r *Runner) cycle(ctx context.Context, prev *model.HealthSnapshot) (model.HealthSnapshot, int) {
	start := time.Now()
	snap := engine.Collect(ctx, r.prober)
	if ctx.Err() != nil {
		return snap, 1
	}

	r.renderer.Render(snap, prev)

	code := 0
	if !engine.Acceptable(snap, r.cfg.FailBelow) {
		code = 1
		r.log.Warn("collector below acceptance threshold",
			"tier", snap.Tier.String(),
			"fail_below", r.cfg.FailBelow.String(),
			"health_reachable", snap.Health.Reachable,
			"metrics_reachable", snap.Metrics.Reachable)
	}
	r.log.Debug("cycle complete",
		"duration", time.Since(start),
		"tier", snap.Tier.String(),
		"advice", len(snap.Advice))
	return snap, code
}
