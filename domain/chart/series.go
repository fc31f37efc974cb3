package chart

import (
	"sort"

	"ifcdash/domain/model"
)

// Kind selects the chart shape the caller intends to render.
type Kind string

const (
	KindBar Kind = "bar"
	KindPie Kind = "pie"
)

// ParseKind normalizes a user-supplied chart kind, defaulting to bar.
func ParseKind(s string) Kind {
	if s == string(KindPie) {
		return KindPie
	}
	return KindBar
}

// Series is the chart-ready shape of a frequency table: parallel label/value
// slices sorted by value descending. The core never renders; this is exactly
// the coordinate form the charting side consumes.
type Series struct {
	Kind   Kind     `json:"kind"`
	Labels []string `json:"labels"`
	Values []int    `json:"values"`
}

// IsEmpty reports the "no data" state; renderers show a placeholder chart.
func (s Series) IsEmpty() bool {
	return len(s.Labels) == 0
}

// BuildSeries reshapes a frequency table for charting. Entries are ordered by
// count descending; ties fall back to label order so output stays
// deterministic, though callers should not rely on tie order.
func BuildSeries(t model.FrequencyTable, kind Kind) Series {
	s := Series{
		Kind:   kind,
		Labels: make([]string, 0, len(t)),
		Values: make([]int, 0, len(t)),
	}

	labels := make([]string, 0, len(t))
	for label := range t {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		if t[labels[i]] != t[labels[j]] {
			return t[labels[i]] > t[labels[j]]
		}
		return labels[i] < labels[j]
	})

	for _, label := range labels {
		s.Labels = append(s.Labels, label)
		s.Values = append(s.Values, t[label])
	}

	return s
}
