package compare

import (
	"sort"

	"ifcdash/domain/model"
)

// Row is one label of a two-table comparison. Diff is CountA - CountB, so a
// positive value means side A has more.
type Row struct {
	Label  string `json:"label"`
	CountA int    `json:"count_a"`
	CountB int    `json:"count_b"`
	Diff   int    `json:"diff"`
}

// Tables compares two frequency tables over the union of their labels. A label
// missing from one side counts as zero there. Output is total over the union
// and sorted by label ascending so results are deterministic.
func Tables(a, b model.FrequencyTable) []Row {
	labels := make(map[string]struct{}, len(a)+len(b))
	for label := range a {
		labels[label] = struct{}{}
	}
	for label := range b {
		labels[label] = struct{}{}
	}

	rows := make([]Row, 0, len(labels))
	for label := range labels {
		countA := a[label]
		countB := b[label]
		rows = append(rows, Row{
			Label:  label,
			CountA: countA,
			CountB: countB,
			Diff:   countA - countB,
		})
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].Label < rows[j].Label })
	return rows
}
