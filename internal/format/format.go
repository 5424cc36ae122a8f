package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// FormatBytes renders a payload size with one decimal and a binary
// unit, e.g. 4096 → "4.0 KB". Sub-kilobyte sizes stay integral.
func FormatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(n)/float64(div), "KMGTPE"[exp])
}

// FormatLatency formats a measured round-trip time.
// Sub-second values are shown as milliseconds with one decimal place,
// one second and above as seconds with two.
// Negative durations return "---".
func FormatLatency(d time.Duration) string {
	if d < 0 {
		return "---"
	}
	if d >= time.Second {
		return fmt.Sprintf("%.2f s", d.Seconds())
	}
	return fmt.Sprintf("%.1f ms", float64(d)/float64(time.Millisecond))
}

// FormatCount formats a metric counter with locale-style comma separators.
// Counters are integral by convention; fractional values are rounded.
// Example: 12345678 → "12,345,678".
// Non-finite values return "---".
func FormatCount(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "---"
	}
	s := strconv.FormatFloat(v, 'f', 0, 64)
	if strings.HasPrefix(s, "-") {
		return "-" + insertCommas(s[1:])
	}
	return insertCommas(s)
}

// FormatDelta formats the signed change of a counter between two cycles.
// Example: 120 → "+120", -3 → "-3", 0 → "+0".
// Non-finite values return "---".
func FormatDelta(delta float64) string {
	if math.IsNaN(delta) || math.IsInf(delta, 0) {
		return "---"
	}
	s := strconv.FormatFloat(delta, 'f', 0, 64)
	if strings.HasPrefix(s, "-") {
		return "-" + insertCommas(s[1:])
	}
	return "+" + insertCommas(s)
}

// FormatPercent renders a percentage with one decimal place, so a
// success rate of 98 reads "98.0%". NaN returns "---".
func FormatPercent(p float64) string {
	if math.IsNaN(p) {
		return "---"
	}
	return fmt.Sprintf("%.1f%%", p)
}

// FormatCompactDuration formats a duration without zero-valued units,
// so a 90 second interval reads "1m30s" and a whole hour reads "1h".
func FormatCompactDuration(d time.Duration) string {
	d = d.Round(time.Second)
	if d <= 0 {
		return "0s"
	}
	var buf strings.Builder
	if h := int64(d / time.Hour); h > 0 {
		fmt.Fprintf(&buf, "%dh", h)
		d -= time.Duration(h) * time.Hour
	}
	if m := int64(d / time.Minute); m > 0 {
		fmt.Fprintf(&buf, "%dm", m)
		d -= time.Duration(m) * time.Minute
	}
	if s := int64(d / time.Second); s > 0 || buf.Len() == 0 {
		fmt.Fprintf(&buf, "%ds", s)
	}
	return buf.String()
}

// insertCommas groups a digit string into thousands, counted from the
// right.
func insertCommas(s string) string {
	if len(s) <= 3 {
		return s
	}
	out := make([]byte, 0, len(s)+len(s)/3)
	for i := 0; i < len(s); i++ {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, s[i])
	}
	return string(out)
}
