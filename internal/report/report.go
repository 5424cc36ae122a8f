// Package report renders collector diagnostic snapshots as console text.
package report

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/dm/otelprobe/internal/client"
	"github.com/dm/otelprobe/internal/format"
	"github.com/dm/otelprobe/internal/model"
)

// Mode selects which report sections are written.
type Mode int

const (
	// ModeFull writes every section.
	ModeFull Mode = iota
	// ModeHealth writes the banner and the health check section only.
	ModeHealth
	// ModeStats writes the banner, export statistics and assessment only.
	ModeStats
)

const (
	bannerWidth      = 70
	sectionRuleWidth = 50
	wrapWidth        = 66
)

// Renderer writes diagnostic reports to a single output stream.
type Renderer struct {
	out  io.Writer
	mode Mode
}

// NewRenderer returns a renderer writing to out. A nil out falls back
// to stdout.
func NewRenderer(out io.Writer, mode Mode) *Renderer {
	if out == nil {
		out = os.Stdout
	}
	return &Renderer{out: out, mode: mode}
}

// Render writes one report for snap. prev, when non-nil, supplies the
// previous cycle's snapshot so counter lines can show deltas. Rendering
// never fails: sections whose data is missing print an unavailable
// marker with the failure reason instead of being dropped.
func (r *Renderer) Render(snap model.HealthSnapshot, prev *model.HealthSnapshot) {
	var b strings.Builder
	r.writeBanner(&b, snap)
	if r.mode == ModeFull || r.mode == ModeHealth {
		r.writeHealth(&b, snap)
	}
	if r.mode == ModeFull || r.mode == ModeStats {
		r.writeStats(&b, snap, prev)
		r.writeAssessment(&b, snap)
		r.writeAdvice(&b, snap)
	}
	if r.mode == ModeFull {
		r.writeEndpoints(&b, snap)
	}
	b.WriteString("\n")
	fmt.Fprint(r.out, b.String())
}

// WriteCycleSeparator prints the between-cycles line used in
// continuous mode.
func (r *Renderer) WriteCycleSeparator(interval time.Duration) {
	line := fmt.Sprintf("Next check in %s (Ctrl+C to stop)", format.FormatCompactDuration(interval))
	fmt.Fprintf(r.out, "%s\n\n", styleDim.Render(line))
}

func (r *Renderer) writeBanner(b *strings.Builder, snap model.HealthSnapshot) {
	rule := styleRule.Render(strings.Repeat("=", bannerWidth))
	b.WriteString(rule + "\n")
	b.WriteString(styleTitle.Render("OTEL COLLECTOR DIAGNOSTICS") + "\n")
	b.WriteString(rule + "\n")
	fmt.Fprintf(b, "Timestamp: %s\n", snap.Taken.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(b, "Host: %s\n", snap.Host)
	b.WriteString(rule + "\n")
}

func sectionHeader(b *strings.Builder, title string) {
	b.WriteString("\n")
	b.WriteString(styleTitle.Render(title) + "\n")
	b.WriteString(styleRule.Render(strings.Repeat("-", sectionRuleWidth)) + "\n")
}

func (r *Renderer) writeHealth(b *strings.Builder, snap model.HealthSnapshot) {
	sectionHeader(b, "HEALTH CHECK")
	res := snap.Health
	if res.Reachable {
		status := fmt.Sprintf("%d", res.StatusCode)
		if msg := firstLine(res.Body); msg != "" {
			status += ", " + msg
		}
		fmt.Fprintf(b, "Status: %s (%s)\n", styleOK.Render("reachable"), status)
		fmt.Fprintf(b, "Latency: %s\n", format.FormatLatency(res.Latency))
	} else {
		fmt.Fprintf(b, "Status: %s (%s)\n", styleBad.Render("unavailable"), failureText(res.Reason, res.Error))
		b.WriteString(styleDim.Render("Verify the collector is running and the health_check extension is enabled.") + "\n")
	}
	fmt.Fprintf(b, "Endpoint: %s\n", styleURL.Render(res.URL))
}

func (r *Renderer) writeStats(b *strings.Builder, snap model.HealthSnapshot, prev *model.HealthSnapshot) {
	sectionHeader(b, "OTLP EXPORT STATISTICS")
	res := snap.Metrics
	if !res.Reachable || snap.Export == nil {
		fmt.Fprintf(b, "Status: %s (%s)\n", styleBad.Render("unavailable"), failureText(res.Reason, res.Error))
		b.WriteString(styleDim.Render("Internal telemetry is not being served; export figures cannot be derived.") + "\n")
		return
	}

	st := *snap.Export
	var base *model.ExportStats
	if prev != nil && prev.Export != nil {
		base = prev.Export
	}

	writeCounter(b, "Metric points sent:", st.SentPoints, base, func(s *model.ExportStats) float64 { return s.SentPoints })
	writeCounter(b, "Failed export attempts:", st.FailedPoints, base, func(s *model.ExportStats) float64 { return s.FailedPoints })
	fmt.Fprintf(b, "Success rate: %s\n", format.FormatPercent(st.SuccessRate))
	fmt.Fprintf(b, "Queue size: %s\n", format.FormatCount(st.QueueSize))
	fmt.Fprintf(b, "Queue capacity: %s\n", format.FormatCount(st.QueueCapacity))
	fmt.Fprintf(b, "Queue utilization: %s\n", format.FormatPercent(st.QueueUtilization))
	writeCounter(b, "Metric points received:", st.ReceivedPoints, base, func(s *model.ExportStats) float64 { return s.ReceivedPoints })
	fmt.Fprintf(b, "Scrape: %s in %s\n",
		format.FormatBytes(int64(len(res.Body))), format.FormatLatency(res.Latency))
}

// writeCounter prints one counter line, appending a delta against the
// previous cycle when a baseline exists.
func writeCounter(b *strings.Builder, label string, cur float64, base *model.ExportStats, pick func(*model.ExportStats) float64) {
	line := fmt.Sprintf("%s %s", label, format.FormatCount(cur))
	if base != nil {
		line += " " + styleDim.Render(fmt.Sprintf("(%s)", format.FormatDelta(cur-pick(base))))
	}
	b.WriteString(line + "\n")
}

func (r *Renderer) writeAssessment(b *strings.Builder, snap model.HealthSnapshot) {
	sectionHeader(b, "STATUS ASSESSMENT")
	if snap.Export == nil {
		fmt.Fprintf(b, "Export health: %s (metrics unavailable)\n", TierStyle(snap.Tier).Render(snap.Tier.String()))
		return
	}
	fmt.Fprintf(b, "Export health: %s%s\n", TierStyle(snap.Tier).Render(snap.Tier.String()), tierQualifier(snap.Tier))
	fmt.Fprintf(b, "Queue status: %s%s\n", QueueStyle(snap.Queue).Render(snap.Queue.String()), queueQualifier(snap.Queue))
}

func (r *Renderer) writeAdvice(b *strings.Builder, snap model.HealthSnapshot) {
	if len(snap.Advice) == 0 {
		return
	}
	sectionHeader(b, "RECOMMENDATIONS")
	for i, a := range snap.Advice {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(b, "%s %s\n", severityBadge(a.Severity), styleTitle.Render(a.Title))
		for _, line := range wrapText(a.Detail, wrapWidth) {
			fmt.Fprintf(b, "    %s\n", line)
		}
	}
}

func (r *Renderer) writeEndpoints(b *strings.Builder, snap model.HealthSnapshot) {
	sectionHeader(b, "MONITORING ENDPOINTS")
	fmt.Fprintf(b, "Health check: %s\n", styleURL.Render(snap.Health.URL))
	fmt.Fprintf(b, "Metrics (Prometheus): %s\n", styleURL.Render(snap.Metrics.URL))
	if snap.ZPages == nil {
		return
	}
	fmt.Fprintf(b, "zPages: %s\n", styleURL.Render(snap.ZPages.Root.URL))
	for _, sub := range snap.ZPages.Subs {
		if sub.Result.Reachable {
			fmt.Fprintf(b, "  %s: %s (%d)\n", sub.Name, styleOK.Render("ok"), sub.Result.StatusCode)
		} else {
			fmt.Fprintf(b, "  %s: %s (%s)\n", sub.Name, styleBad.Render("unavailable"), failureText(sub.Result.Reason, sub.Result.Error))
		}
	}
}

// failureText picks the most specific description of a probe failure.
func failureText(reason client.FailureReason, errText string) string {
	if reason != "" && reason != client.ReasonUnknown {
		return string(reason)
	}
	if errText != "" {
		return errText
	}
	return "no response"
}

// firstLine returns the first non-empty line of s, truncated so health
// bodies cannot blow up the report layout.
func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = strings.TrimSpace(s[:i])
	}
	const max = 60
	if len(s) > max {
		s = s[:max] + "..."
	}
	return s
}

// wrapText splits text into lines no wider than width, breaking on
// spaces.
func wrapText(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	cur := words[0]
	for _, w := range words[1:] {
		if len(cur)+1+len(w) > width {
			lines = append(lines, cur)
			cur = w
			continue
		}
		cur += " " + w
	}
	lines = append(lines, cur)
	return lines
}
