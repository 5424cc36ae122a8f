package engine

import (
	"github.com/dm/otelprobe/internal/model"
	"github.com/dm/otelprobe/internal/promtext"
)

// Counter name fallbacks. Some collector builds flatten the unit into the
// metric name, so the flattened spelling is probed first.
var (
	sentNames = []string{
		"otelcol_exporter_sent_metric_points__datapoints__total",
		"otelcol_exporter_sent_metric_points_total",
	}
	failedNames = []string{
		"otelcol_exporter_send_failed_metric_points__datapoints__total",
		"otelcol_exporter_send_failed_metric_points_total",
	}
	queueSizeNames = []string{
		"otelcol_exporter_queue_size__batches_",
		"otelcol_exporter_queue_size",
	}
	queueCapacityNames = []string{
		"otelcol_exporter_queue_capacity__batches_",
		"otelcol_exporter_queue_capacity",
	}
	receivedNames = []string{
		"otelcol_receiver_accepted_metric_points__datapoints__total",
		"otelcol_receiver_accepted_metric_points_total",
	}
)

// otlpExporter narrows exporter counters to the OTLP HTTP exporter.
var otlpExporter = map[string]string{"exporter": "otlphttp"}

// DeriveExportStats extracts the OTLP HTTP exporter counters and the
// receiver accepted total from parsed samples and computes the derived
// percentages. Counters missing from the scrape read as zero, and both
// percentages survive zero denominators.
func DeriveExportStats(samples []promtext.Sample) model.ExportStats {
	var stats model.ExportStats
	stats.SentPoints, _ = promtext.FirstOf(samples, sentNames, otlpExporter)
	stats.FailedPoints, _ = promtext.FirstOf(samples, failedNames, otlpExporter)
	stats.QueueSize, _ = promtext.FirstOf(samples, queueSizeNames, otlpExporter)
	stats.QueueCapacity, _ = promtext.FirstOf(samples, queueCapacityNames, otlpExporter)
	stats.ReceivedPoints, _ = promtext.FirstOf(samples, receivedNames, nil)

	stats.SuccessRate = safeDivide(stats.SentPoints, stats.SentPoints+stats.FailedPoints) * 100
	stats.QueueUtilization = safeDivide(stats.QueueSize, stats.QueueCapacity) * 100
	return stats
}

// safeDivide returns a/b, or 0 when b is zero.
func safeDivide(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}
