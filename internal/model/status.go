package model

import (
	"fmt"
	"strings"
)

// Tier grades overall export health. Order matters: higher is healthier,
// so tiers compare directly against a minimum acceptable tier.
type Tier int

const (
	TierUnknown Tier = iota
	TierCritical
	TierDegraded
	TierGood
	TierExcellent
)

func (t Tier) String() string {
	switch t {
	case TierExcellent:
		return "EXCELLENT"
	case TierGood:
		return "GOOD"
	case TierDegraded:
		return "DEGRADED"
	case TierCritical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// ParseTier maps a case-insensitive tier name to its Tier.
func ParseTier(s string) (Tier, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "excellent":
		return TierExcellent, nil
	case "good":
		return TierGood, nil
	case "degraded":
		return TierDegraded, nil
	case "critical":
		return TierCritical, nil
	default:
		return TierUnknown, fmt.Errorf("unknown health tier %q", s)
	}
}

// QueueState grades exporter queue pressure.
type QueueState int

const (
	QueueUnknown QueueState = iota
	QueueHealthy
	QueueModerate
	QueueHigh
)

func (q QueueState) String() string {
	switch q {
	case QueueHealthy:
		return "HEALTHY"
	case QueueModerate:
		return "MODERATE"
	case QueueHigh:
		return "HIGH"
	default:
		return "UNKNOWN"
	}
}
