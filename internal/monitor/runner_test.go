package monitor

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dm/otelprobe/internal/client"
	"github.com/dm/otelprobe/internal/model"
	"github.com/dm/otelprobe/internal/report"
)

const goodBody = `otelcol_exporter_sent_metric_points_total{exporter="otlphttp"} 9800
otelcol_exporter_send_failed_metric_points_total{exporter="otlphttp"} 200
otelcol_exporter_queue_size{exporter="otlphttp"} 120
otelcol_exporter_queue_capacity{exporter="otlphttp"} 1000
otelcol_receiver_accepted_metric_points_total{receiver="otlp"} 15000
`

const poorBody = `otelcol_exporter_sent_metric_points_total{exporter="otlphttp"} 500
otelcol_exporter_send_failed_metric_points_total{exporter="otlphttp"} 500
`

// stubProber implements client.Prober without a network.
type stubProber struct {
	healthDown  bool
	metricsDown bool
	zpagesDown  bool
	metricsBody string
}

func (s *stubProber) CheckHealth(ctx context.Context) client.EndpointResult {
	if s.healthDown {
		return client.EndpointResult{URL: s.HealthURL(), Error: "connect: connection refused", Reason: client.ReasonConnectionRefused}
	}
	return client.EndpointResult{URL: s.HealthURL(), Reachable: true, StatusCode: 200, Body: "Server available"}
}

func (s *stubProber) FetchMetrics(ctx context.Context) client.EndpointResult {
	if s.metricsDown {
		return client.EndpointResult{URL: s.MetricsURL(), Error: "context deadline exceeded", Reason: client.ReasonTimeout}
	}
	body := s.metricsBody
	if body == "" {
		body = goodBody
	}
	return client.EndpointResult{URL: s.MetricsURL(), Reachable: true, StatusCode: 200, Body: body}
}

func (s *stubProber) ProbeZPages(ctx context.Context) client.ZPagesResult {
	probe := func(url string) client.EndpointResult {
		if s.zpagesDown {
			return client.EndpointResult{URL: url, Error: "connect: connection refused", Reason: client.ReasonConnectionRefused}
		}
		return client.EndpointResult{URL: url, Reachable: true, StatusCode: 200}
	}
	return client.ZPagesResult{
		Root: probe(s.ZPagesURL()),
		Subs: []client.SubPage{
			{Name: "servicez", Result: probe(s.ZPagesURL() + "servicez")},
			{Name: "pipelinez", Result: probe(s.ZPagesURL() + "pipelinez")},
			{Name: "extensionz", Result: probe(s.ZPagesURL() + "extensionz")},
		},
	}
}

func (s *stubProber) Host() string       { return "localhost" }
func (s *stubProber) HealthURL() string  { return "http://localhost:13133/health" }
func (s *stubProber) MetricsURL() string { return "http://localhost:8888/metrics" }
func (s *stubProber) ZPagesURL() string  { return "http://localhost:55679/debug/" }

// syncBuffer lets the test read output while Run is still writing it.
type syncBuffer struct {
	mu sync.Mutex
	b  strings.Builder
}

func (s *syncBuffer) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.Write(p)
}

func (s *syncBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.String()
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newRunner(t *testing.T, cfg Config, p client.Prober, out io.Writer) *Runner {
	t.Helper()
	r, err := New(cfg, p, report.NewRenderer(out, report.ModeFull), discardLogger())
	require.NoError(t, err)
	return r
}

func TestNewValidation(t *testing.T) {
	renderer := report.NewRenderer(io.Discard, report.ModeFull)
	cfg := Config{Interval: time.Second, FailBelow: model.TierDegraded}

	cases := []struct {
		name    string
		cfg     Config
		prober  client.Prober
		r       *report.Renderer
		wantErr string
	}{
		{"valid", cfg, &stubProber{}, renderer, ""},
		{"nil prober", cfg, nil, renderer, "prober"},
		{"nil renderer", cfg, &stubProber{}, nil, "renderer"},
		{"zero interval", Config{FailBelow: model.TierDegraded}, &stubProber{}, renderer, "interval"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.cfg, tc.prober, tc.r, nil)
			if tc.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tc.wantErr)
			}
		})
	}
}

func TestRunOnceHealthy(t *testing.T) {
	var out strings.Builder
	r := newRunner(t, Config{Interval: time.Second, FailBelow: model.TierDegraded}, &stubProber{}, &out)

	snap, code := r.RunOnce(context.Background())

	assert.Equal(t, 0, code)
	assert.Equal(t, model.TierExcellent, snap.Tier)
	assert.Contains(t, out.String(), "OTEL COLLECTOR DIAGNOSTICS")
	assert.Contains(t, out.String(), "Export health: EXCELLENT")
}

func TestRunOnceHealthDown(t *testing.T) {
	var out strings.Builder
	r := newRunner(t, Config{Interval: time.Second, FailBelow: model.TierDegraded}, &stubProber{healthDown: true}, &out)

	_, code := r.RunOnce(context.Background())

	assert.Equal(t, 1, code)
	assert.Contains(t, out.String(), "Status: unavailable (connection_refused)")
}

func TestRunOnceBelowThreshold(t *testing.T) {
	// A 50% success rate classifies as DEGRADED.
	prober := &stubProber{metricsBody: poorBody}

	var out strings.Builder
	r := newRunner(t, Config{Interval: time.Second, FailBelow: model.TierDegraded}, prober, &out)
	_, code := r.RunOnce(context.Background())
	assert.Equal(t, 0, code)

	r = newRunner(t, Config{Interval: time.Second, FailBelow: model.TierGood}, prober, &out)
	_, code = r.RunOnce(context.Background())
	assert.Equal(t, 1, code)

	// Lowering the bar to critical accepts the same degraded collector.
	r = newRunner(t, Config{Interval: time.Second, FailBelow: model.TierCritical}, prober, &out)
	snap, code := r.RunOnce(context.Background())
	assert.Equal(t, 0, code)
	assert.Equal(t, model.TierDegraded, snap.Tier)
}

func TestRunContinuousCycles(t *testing.T) {
	var out syncBuffer
	r := newRunner(t, Config{Interval: 10 * time.Millisecond, FailBelow: model.TierDegraded}, &stubProber{}, &out)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		r.Run(ctx)
	}()

	require.Eventually(t, func() bool {
		return strings.Count(out.String(), "OTEL COLLECTOR DIAGNOSTICS") >= 3
	}, 2*time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}

	got := out.String()
	assert.Contains(t, got, "Next check in")
	// Later cycles carry deltas against the previous one.
	assert.Contains(t, got, "(+0)")
}

func TestRunContinuousAllDown(t *testing.T) {
	var out syncBuffer
	prober := &stubProber{healthDown: true, metricsDown: true, zpagesDown: true}
	r := newRunner(t, Config{Interval: 10 * time.Millisecond, FailBelow: model.TierDegraded}, prober, &out)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		r.Run(ctx)
	}()

	// The loop keeps reporting even when every endpoint is down.
	require.Eventually(t, func() bool {
		return strings.Count(out.String(), "OTEL COLLECTOR DIAGNOSTICS") >= 2
	}, 2*time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}

	got := out.String()
	assert.Contains(t, got, "Status: unavailable (connection_refused)")
	assert.Contains(t, got, "Status: unavailable (timeout)")
	assert.Contains(t, got, "Export health: UNKNOWN (metrics unavailable)")
}

func TestRunCancelledBeforeFirstReport(t *testing.T) {
	var out strings.Builder
	r := newRunner(t, Config{Interval: time.Second, FailBelow: model.TierDegraded}, &stubProber{}, &out)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r.Run(ctx)

	assert.Empty(t, out.String())
}
