package client

import "time"

// FailureReason classifies why an endpoint could not be reached.
type FailureReason string

const (
	ReasonTimeout           FailureReason = "timeout"
	ReasonConnectionRefused FailureReason = "connection_refused"
	ReasonUnknown           FailureReason = "unknown"
)

// EndpointResult is the raw outcome of polling one collector endpoint.
// Any HTTP response counts as reachable, whatever its status code;
// Reason is set only on transport failures.
type EndpointResult struct {
	URL        string
	Reachable  bool
	StatusCode int // 0 when unreachable
	Latency    time.Duration
	Body       string
	Error      string        // underlying error text, empty when reachable
	Reason     FailureReason // empty when reachable
}

// SubPage is the probe outcome for a single zPages debug sub-page.
type SubPage struct {
	Name   string
	Result EndpointResult
}

// ZPagesResult holds the zPages root probe plus one result per debug
// sub-page, in display order.
type ZPagesResult struct {
	Root EndpointResult
	Subs []SubPage
}
