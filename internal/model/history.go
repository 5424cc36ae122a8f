package model

import "time"

const defaultTrendCap = 60

// TrendPoint is a single timestamped observation kept for trend rendering.
type TrendPoint struct {
	At               time.Time
	SuccessRate      float64
	QueueUtilization float64
	SentPoints       float64
	FailedPoints     float64
}

// TrendHistory is a fixed-size ring buffer of TrendPoints.
// When the buffer is full, new pushes overwrite the oldest entry.
type TrendHistory struct {
	buf  []TrendPoint
	head int // index of the next write position
	size int // number of valid entries
}

// NewTrendHistory creates a TrendHistory with the given capacity.
// If cap <= 0, the defaultTrendCap (60) is used.
func NewTrendHistory(capacity int) *TrendHistory {
	if capacity <= 0 {
		capacity = defaultTrendCap
	}
	return &TrendHistory{
		buf: make([]TrendPoint, capacity),
	}
}

// Push appends a new point to the history, overwriting the oldest if full.
func (h *TrendHistory) Push(p TrendPoint) {
	h.buf[h.head] = p
	h.head = (h.head + 1) % len(h.buf)
	if h.size < len(h.buf) {
		h.size++
	}
}

// Len returns the number of valid entries in the history.
func (h *TrendHistory) Len() int {
	return h.size
}

// Clear resets the history to empty.
func (h *TrendHistory) Clear() {
	h.head = 0
	h.size = 0
}

// Last returns the most recently pushed point, if any.
func (h *TrendHistory) Last() (TrendPoint, bool) {
	if h.size == 0 {
		return TrendPoint{}, false
	}
	idx := (h.head - 1 + len(h.buf)) % len(h.buf)
	return h.buf[idx], true
}

// Series extracts one value per point in chronological order (oldest first).
func (h *TrendHistory) Series(pick func(TrendPoint) float64) []float64 {
	out := make([]float64, h.size)
	// oldest entry sits at (head - size + cap) % cap
	start := (h.head - h.size + len(h.buf)) % len(h.buf)
	for i := 0; i < h.size; i++ {
		out[i] = pick(h.buf[(start+i)%len(h.buf)])
	}
	return out
}
