package engine

import "github.com/dm/otelprobe/internal/model"

// Success-rate tier bounds, in percent. Lower bounds are inclusive.
const (
	tierExcellentMin = 95.0
	tierGoodMin      = 80.0
	tierDegradedMin  = 50.0
)

// Queue utilization bounds, in percent.
const (
	queueModerateMin = 50.0
	queueHighMin     = 80.0
)

// ClassifyExportHealth grades a success-rate percentage into a Tier.
// Out-of-range input is clamped: anything negative grades CRITICAL and
// anything above 100 grades EXCELLENT. NaN grades CRITICAL.
func ClassifyExportHealth(successRate float64) model.Tier {
	switch {
	case successRate >= tierExcellentMin:
		return model.TierExcellent
	case successRate >= tierGoodMin:
		return model.TierGood
	case successRate >= tierDegradedMin:
		return model.TierDegraded
	default:
		return model.TierCritical
	}
}

// ClassifyQueue grades a queue-utilization percentage into a QueueState.
func ClassifyQueue(utilization float64) model.QueueState {
	switch {
	case utilization < queueModerateMin:
		return model.QueueHealthy
	case utilization < queueHighMin:
		return model.QueueModerate
	default:
		return model.QueueHigh
	}
}

// Acceptable reports whether a snapshot meets the exit policy: the health
// and metrics endpoints both answered and the tier is at least failBelow.
func Acceptable(snap model.HealthSnapshot, failBelow model.Tier) bool {
	if !snap.Health.Reachable || !snap.Metrics.Reachable {
		return false
	}
	return snap.Tier >= failBelow
}
