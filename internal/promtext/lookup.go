package promtext

// Find returns the value of the first sample with the given name whose
// label set contains want as a subset. Extra labels on the sample are
// ignored; a nil or empty want matches any sample of that name.
func Find(samples []Sample, name string, want map[string]string) (float64, bool) {
	for _, s := range samples {
		if s.Name != name {
			continue
		}
		if hasLabels(s, want) {
			return s.Value, true
		}
	}
	return 0, false
}

// FirstOf probes names in order and returns the first hit. The collector
// renames some counters between versions, so callers pass every spelling
// they know.
func FirstOf(samples []Sample, names []string, want map[string]string) (float64, bool) {
	for _, name := range names {
		if v, ok := Find(samples, name, want); ok {
			return v, true
		}
	}
	return 0, false
}

func hasLabels(s Sample, want map[string]string) bool {
	for k, v := range want {
		if s.Labels[k] != v {
			return false
		}
	}
	return true
}
