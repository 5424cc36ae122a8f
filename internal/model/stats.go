package model

// ExportStats holds the pipeline counters scraped from the metrics endpoint
// together with the percentages derived from them.
type ExportStats struct {
	SentPoints     float64
	FailedPoints   float64
	QueueSize      float64
	QueueCapacity  float64
	ReceivedPoints float64

	SuccessRate      float64 // percent; 0 when nothing has been exported yet
	QueueUtilization float64 // percent; 0 when the capacity is unknown
}
