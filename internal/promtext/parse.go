// Package promtext parses the Prometheus text exposition format served on
// the collector's metrics port. The parser is deliberately lenient: every
// line is classified on its own, and a malformed line never aborts the rest
// of the body.
package promtext

import (
	"fmt"
	"strconv"
	"strings"
)

// LineKind classifies one line of a metrics body.
type LineKind int

const (
	LineBlank LineKind = iota
	LineComment
	LineSample
	LineMalformed
)

// Sample is one parsed metric line: a name, its label set and a value.
// Labels is nil when the line carried no label set.
type Sample struct {
	Name   string
	Labels map[string]string
	Value  float64
}

// Line is the tagged result of parsing a single input line.
type Line struct {
	Kind   LineKind
	Raw    string
	Sample Sample // valid when Kind == LineSample
	Err    error  // set when Kind == LineMalformed
}

// ParseLines parses every line of a metrics body and tags each with its
// kind, in input order.
func ParseLines(body string) []Line {
	if body == "" {
		return nil
	}
	rawLines := strings.Split(body, "\n")
	// A trailing newline yields one empty trailing element; drop it so a
	// well-formed body parses to exactly its visible lines.
	if n := len(rawLines); rawLines[n-1] == "" {
		rawLines = rawLines[:n-1]
	}
	out := make([]Line, 0, len(rawLines))
	for _, raw := range rawLines {
		out = append(out, parseLine(raw))
	}
	return out
}

// Parse returns the well-formed samples of body in input order. Comments,
// blank lines and malformed lines are skipped. An empty or sample-free
// body yields an empty slice, never an error.
func Parse(body string) []Sample {
	var out []Sample
	for _, ln := range ParseLines(body) {
		if ln.Kind == LineSample {
			out = append(out, ln.Sample)
		}
	}
	return out
}

func parseLine(raw string) Line {
	s := strings.TrimSpace(strings.TrimSuffix(raw, "\r"))
	switch {
	case s == "":
		return Line{Kind: LineBlank, Raw: raw}
	case strings.HasPrefix(s, "#"):
		return Line{Kind: LineComment, Raw: raw}
	}
	sample, err := parseSample(s)
	if err != nil {
		return Line{Kind: LineMalformed, Raw: raw, Err: err}
	}
	return Line{Kind: LineSample, Raw: raw, Sample: sample}
}

// parseSample parses "name value", "name{labels} value" and the same forms
// with a trailing integer timestamp, which is accepted and discarded.
func parseSample(s string) (Sample, error) {
	i := 0
	for i < len(s) && isNameChar(s[i], i == 0) {
		i++
	}
	if i == 0 {
		return Sample{}, fmt.Errorf("missing metric name")
	}
	smp := Sample{Name: s[:i]}

	rest := s[i:]
	if strings.HasPrefix(rest, "{") {
		labels, n, err := parseLabels(rest)
		if err != nil {
			return Sample{}, err
		}
		smp.Labels = labels
		rest = rest[n:]
	}

	if rest == "" {
		return Sample{}, fmt.Errorf("missing value for %s", smp.Name)
	}
	if rest[0] != ' ' && rest[0] != '\t' {
		return Sample{}, fmt.Errorf("expected whitespace before value, got %q", rest[0])
	}

	fields := strings.Fields(rest)
	switch len(fields) {
	case 0:
		return Sample{}, fmt.Errorf("missing value for %s", smp.Name)
	case 1:
	case 2:
		if _, err := strconv.ParseInt(fields[1], 10, 64); err != nil {
			return Sample{}, fmt.Errorf("invalid timestamp %q", fields[1])
		}
	default:
		return Sample{}, fmt.Errorf("unexpected tokens after value: %q", fields[2])
	}

	// ParseFloat already accepts Inf, +Inf, -Inf and NaN in any case.
	v, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return Sample{}, fmt.Errorf("invalid value %q", fields[0])
	}
	smp.Value = v
	return smp, nil
}

// parseLabels parses a {name="value",...} set at the start of s and returns
// the labels plus the number of bytes consumed. A trailing comma before the
// closing brace is allowed, as the exposition format permits it.
func parseLabels(s string) (map[string]string, int, error) {
	labels := map[string]string{}
	i := 1 // past '{'
	for {
		i = skipSpaces(s, i)
		if i >= len(s) {
			return nil, 0, fmt.Errorf("unterminated label set")
		}
		if s[i] == '}' {
			return labels, i + 1, nil
		}

		start := i
		for i < len(s) && isLabelNameChar(s[i], i == start) {
			i++
		}
		if i == start {
			return nil, 0, fmt.Errorf("missing label name")
		}
		name := s[start:i]

		if i >= len(s) || s[i] != '=' {
			return nil, 0, fmt.Errorf("expected '=' after label %s", name)
		}
		i++
		if i >= len(s) || s[i] != '"' {
			return nil, 0, fmt.Errorf("value of label %s must be quoted", name)
		}
		value, n, err := parseQuoted(s[i:])
		if err != nil {
			return nil, 0, err
		}
		labels[name] = value
		i += n

		i = skipSpaces(s, i)
		if i >= len(s) {
			return nil, 0, fmt.Errorf("unterminated label set")
		}
		switch s[i] {
		case ',':
			i++
		case '}':
			return labels, i + 1, nil
		default:
			return nil, 0, fmt.Errorf("unexpected character %q in label set", s[i])
		}
	}
}

// parseQuoted decodes a double-quoted label value starting at s[0] and
// returns it plus the number of bytes consumed including both quotes.
// Recognized escapes are \\, \" and \n; anything else passes through
// untouched.
func parseQuoted(s string) (string, int, error) {
	var b strings.Builder
	i := 1
	for i < len(s) {
		switch c := s[i]; c {
		case '"':
			return b.String(), i + 1, nil
		case '\\':
			if i+1 >= len(s) {
				return "", 0, fmt.Errorf("unterminated escape in label value")
			}
			switch s[i+1] {
			case '\\':
				b.WriteByte('\\')
			case '"':
				b.WriteByte('"')
			case 'n':
				b.WriteByte('\n')
			default:
				b.WriteByte('\\')
				b.WriteByte(s[i+1])
			}
			i += 2
		default:
			b.WriteByte(c)
			i++
		}
	}
	return "", 0, fmt.Errorf("unterminated label value")
}

func isNameChar(c byte, first bool) bool {
	if c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_' || c == ':' {
		return true
	}
	return !first && c >= '0' && c <= '9'
}

func isLabelNameChar(c byte, first bool) bool {
	if c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_' {
		return true
	}
	return !first && c >= '0' && c <= '9'
}

func skipSpaces(s string, i int) int {
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	return i
}
