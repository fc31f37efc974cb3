package compare

import (
	"github.com/montanaflynn/stats"

	"ifcdash/domain/dataset"
)

// StatRow holds per-column mean/sum statistics for two datasets and their
// differences. Diffs follow the same sign convention as Row: side A minus
// side B.
type StatRow struct {
	Column   string  `json:"column"`
	MeanA    float64 `json:"mean_a"`
	MeanB    float64 `json:"mean_b"`
	MeanDiff float64 `json:"mean_diff"`
	SumA     float64 `json:"sum_a"`
	SumB     float64 `json:"sum_b"`
	SumDiff  float64 `json:"sum_diff"`
}

// ColumnStats compares two tabular datasets over the requested columns. The
// caller pre-filters columns to those present in both datasets; a column that
// is numeric in both sides yields a StatRow, anything else is silently
// excluded. Plain IEEE double-precision summation, no compensation.
func ColumnStats(a, b dataset.Table, columns []string) map[string]StatRow {
	result := make(map[string]StatRow)

	for _, name := range columns {
		colA, okA := a.Column(name)
		colB, okB := b.Column(name)
		if !okA || !okB {
			continue
		}
		if !colA.IsNumeric() || !colB.IsNumeric() {
			continue
		}

		numsA := colA.Numbers()
		numsB := colB.Numbers()

		meanA, _ := stats.Mean(numsA)
		meanB, _ := stats.Mean(numsB)
		sumA, _ := stats.Sum(numsA)
		sumB, _ := stats.Sum(numsB)

		result[name] = StatRow{
			Column:   name,
			MeanA:    meanA,
			MeanB:    meanB,
			MeanDiff: meanA - meanB,
			SumA:     sumA,
			SumB:     sumB,
			SumDiff:  sumA - sumB,
		}
	}

	return result
}
