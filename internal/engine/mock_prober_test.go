package engine

import (
	"context"

	"github.com/dm/otelprobe/internal/client"
)

// healthyMetricsBody is a trimmed but representative scrape of a healthy
// collector: 98% export success, 12% queue utilization.
const healthyMetricsBody = `# HELP otelcol_exporter_sent_metric_points_total Number of metric points successfully sent to destination.
# TYPE otelcol_exporter_sent_metric_points_total counter
otelcol_exporter_sent_metric_points_total{exporter="debug",service_instance_id="f9d6d96b"} 1234
otelcol_exporter_sent_metric_points_total{exporter="otlphttp",service_instance_id="f9d6d96b"} 98000
# HELP otelcol_exporter_send_failed_metric_points_total Number of metric points in failed attempts to send to destination.
# TYPE otelcol_exporter_send_failed_metric_points_total counter
otelcol_exporter_send_failed_metric_points_total{exporter="otlphttp",service_instance_id="f9d6d96b"} 2000
# TYPE otelcol_exporter_queue_size gauge
otelcol_exporter_queue_size{exporter="otlphttp"} 120
# TYPE otelcol_exporter_queue_capacity gauge
otelcol_exporter_queue_capacity{exporter="otlphttp"} 1000
# TYPE otelcol_receiver_accepted_metric_points_total counter
otelcol_receiver_accepted_metric_points_total{receiver="prometheus",transport="http"} 150000
`

// mockProber implements client.Prober for testing. Unset fields fall back
// to a healthy local collector.
type mockProber struct {
	HealthFn  func(ctx context.Context) client.EndpointResult
	MetricsFn func(ctx context.Context) client.EndpointResult
	ZPagesFn  func(ctx context.Context) client.ZPagesResult
}

func (m *mockProber) CheckHealth(ctx context.Context) client.EndpointResult {
	if m.HealthFn != nil {
		return m.HealthFn(ctx)
	}
	return client.EndpointResult{
		URL:        m.HealthURL(),
		Reachable:  true,
		StatusCode: 200,
		Body:       "Server available",
	}
}

func (m *mockProber) FetchMetrics(ctx context.Context) client.EndpointResult {
	if m.MetricsFn != nil {
		return m.MetricsFn(ctx)
	}
	return client.EndpointResult{
		URL:        m.MetricsURL(),
		Reachable:  true,
		StatusCode: 200,
		Body:       healthyMetricsBody,
	}
}

func (m *mockProber) ProbeZPages(ctx context.Context) client.ZPagesResult {
	if m.ZPagesFn != nil {
		return m.ZPagesFn(ctx)
	}
	sub := func(name string) client.SubPage {
		return client.SubPage{Name: name, Result: client.EndpointResult{
			URL:        m.ZPagesURL() + name,
			Reachable:  true,
			StatusCode: 200,
		}}
	}
	return client.ZPagesResult{
		Root: client.EndpointResult{URL: m.ZPagesURL(), Reachable: true, StatusCode: 200},
		Subs: []client.SubPage{sub("servicez"), sub("pipelinez"), sub("extensionz")},
	}
}

func (m *mockProber) Host() string       { return "localhost" }
func (m *mockProber) HealthURL() string  { return "http://localhost:13133/health" }
func (m *mockProber) MetricsURL() string { return "http://localhost:8888/metrics" }
func (m *mockProber) ZPagesURL() string  { return "http://localhost:55679/debug/" }

// unreachable builds the result of a refused connection to url.
func unreachable(url string) client.EndpointResult {
	return client.EndpointResult{
		URL:    url,
		Error:  "dial tcp 127.0.0.1: connect: connection refused",
		Reason: client.ReasonConnectionRefused,
	}
}
