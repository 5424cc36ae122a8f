package model

import (
	"time"

	"github.com/dm/otelprobe/internal/client"
	"github.com/dm/otelprobe/internal/promtext"
)

// HealthSnapshot holds everything one diagnostic cycle produced: the raw
// endpoint results, the parsed metric samples, the derived export statistics
// and the classifications drawn from them.
type HealthSnapshot struct {
	Taken   time.Time
	Host    string
	Health  client.EndpointResult
	Metrics client.EndpointResult
	ZPages  *client.ZPagesResult
	Samples []promtext.Sample

	// Export is nil when the metrics endpoint was unreachable.
	Export *ExportStats
	Tier   Tier
	Queue  QueueState
	Advice []Advice
}
