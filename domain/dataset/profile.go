package dataset

import (
	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

// ColumnProfile summarizes one column for the dashboard's dataset view.
// Numeric fields are zero for text columns.
type ColumnProfile struct {
	Name        string    `json:"name"`
	Type        ValueType `json:"type"`
	Count       int       `json:"count"`
	MissingRate float64   `json:"missing_rate"`
	Mean        float64   `json:"mean"`
	Sum         float64   `json:"sum"`
	Min         float64   `json:"min"`
	Max         float64   `json:"max"`
	StdDev      float64   `json:"std_dev"`
	Variance    float64   `json:"variance"`
}

// Profile computes per-column descriptive statistics in table order.
func Profile(t Table) []ColumnProfile {
	profiles := make([]ColumnProfile, 0, len(t.Columns))
	rows := t.RowCount()

	for _, col := range t.Columns {
		p := ColumnProfile{Name: col.Name, Type: col.Type}

		nums := col.Numbers()
		p.Count = len(nums)
		if rows > 0 {
			p.MissingRate = float64(rows-len(nums)) / float64(rows)
		}

		if !col.IsNumeric() || len(nums) == 0 {
			p.Count = nonBlankCount(col.Values)
			if rows > 0 {
				p.MissingRate = float64(rows-p.Count) / float64(rows)
			}
			profiles = append(profiles, p)
			continue
		}

		p.Mean, _ = stats.Mean(nums)
		p.Sum, _ = stats.Sum(nums)
		p.Min, _ = stats.Min(nums)
		p.Max, _ = stats.Max(nums)
		if len(nums) > 1 {
			// sample variance needs n > 1
			p.Variance = stat.Variance(nums, nil)
			p.StdDev = stat.StdDev(nums, nil)
		}

		profiles = append(profiles, p)
	}

	return profiles
}

func nonBlankCount(values []string) int {
	n := 0
	for _, v := range values {
		if v != "" {
			n++
		}
	}
	return n
}
