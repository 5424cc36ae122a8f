package model

// AdviceSeverity indicates the urgency level of a piece of advice.
type AdviceSeverity int

const (
	SeverityInfo AdviceSeverity = iota
	SeverityWarning
	SeverityCritical
)

// AdviceCategory groups related advice.
type AdviceCategory int

const (
	CategoryConnectivity AdviceCategory = iota
	CategoryExportFailures
	CategoryQueuePressure
	CategoryTelemetry
)

// Advice is a single actionable suggestion derived from a snapshot.
type Advice struct {
	Severity AdviceSeverity
	Category AdviceCategory
	Title    string
	Detail   string
}
