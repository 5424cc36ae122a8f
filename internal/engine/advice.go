package engine

import (
	"fmt"

	"github.com/dm/otelprobe/internal/client"
	"github.com/dm/otelprobe/internal/model"
)

// Queue utilization above this triggers tuning advice even before the
// state turns HIGH.
const advisoryQueueUtil = 70.0

// BuildAdvice derives actionable suggestions from one snapshot.
// Returns an empty (non-nil) slice when nothing needs attention.
func BuildAdvice(snap model.HealthSnapshot) []model.Advice {
	result := []model.Advice{}

	if !snap.Health.Reachable {
		result = append(result, model.Advice{
			Severity: model.SeverityCritical,
			Category: model.CategoryConnectivity,
			Title:    "Health endpoint unreachable",
			Detail: fmt.Sprintf("No response from %s (%s). Ensure the collector is running, the health_check extension is enabled and the port is exposed, then check the collector logs.",
				snap.Health.URL, failureText(snap.Health)),
		})
	}

	if !snap.Metrics.Reachable {
		result = append(result, model.Advice{
			Severity: model.SeverityCritical,
			Category: model.CategoryTelemetry,
			Title:    "Metrics endpoint unreachable",
			Detail: fmt.Sprintf("No response from %s (%s). Ensure the collector is running, the metrics port is exposed and internal telemetry is configured.",
				snap.Metrics.URL, failureText(snap.Metrics)),
		})
	}

	if snap.Export != nil && snap.Export.FailedPoints > 0 {
		result = append(result, model.Advice{
			Severity: model.SeverityWarning,
			Category: model.CategoryExportFailures,
			Title:    "Export attempts are failing",
			Detail: fmt.Sprintf("%.0f metric points failed to export. Check the access token permissions, verify the OTLP endpoint configuration, review network connectivity to the backend and check the collector logs.",
				snap.Export.FailedPoints),
		})
	}

	if snap.Export != nil && snap.Export.QueueUtilization > advisoryQueueUtil {
		result = append(result, model.Advice{
			Severity: model.SeverityWarning,
			Category: model.CategoryQueuePressure,
			Title:    "Export queue filling up",
			Detail: fmt.Sprintf("Queue at %.1f%% of capacity. Consider increasing queue_size, adding num_consumers for parallel draining, or reviewing the batch processor settings.",
				snap.Export.QueueUtilization),
		})
	}

	return result
}

// failureText summarizes how an endpoint poll failed for use in a detail
// sentence.
func failureText(r client.EndpointResult) string {
	if r.Reason != "" && r.Reason != client.ReasonUnknown {
		return string(r.Reason)
	}
	if r.Error != "" {
		return r.Error
	}
	return "no response"
}
