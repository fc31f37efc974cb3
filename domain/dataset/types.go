package dataset

import (
	"strconv"
	"strings"
)

// ValueType classifies a column's scalar values
type ValueType string

const (
	ValueTypeNumeric ValueType = "numeric"
	ValueTypeText    ValueType = "text"
)

// Column is one named, ordered sequence of scalar values. Values are kept in
// their ingested string form; Type records what they uniformly parse as.
type Column struct {
	Name   string    `json:"name"`
	Type   ValueType `json:"type"`
	Values []string  `json:"values"`
}

// Table is an in-memory spreadsheet: ordered columns of equal length.
// A Table with no columns is the "no data" state, never an error.
type Table struct {
	Columns []Column `json:"columns"`
}

// Empty returns the canonical no-data table.
func Empty() Table {
	return Table{}
}

// IsEmpty reports whether the table carries no data at all.
func (t Table) IsEmpty() bool {
	return len(t.Columns) == 0 || t.RowCount() == 0
}

// RowCount returns the shared length of the table's columns.
func (t Table) RowCount() int {
	if len(t.Columns) == 0 {
		return 0
	}
	return len(t.Columns[0].Values)
}

// ColumnNames returns the column names in table order.
func (t Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// Column looks a column up by name.
func (t Table) Column(name string) (Column, bool) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// IsNumeric reports whether the column holds numeric values.
func (c Column) IsNumeric() bool {
	return c.Type == ValueTypeNumeric
}

// Numbers parses the column's non-blank values as float64. Blank cells are
// treated as missing and skipped.
func (c Column) Numbers() []float64 {
	nums := make([]float64, 0, len(c.Values))
	for _, v := range c.Values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			continue
		}
		nums = append(nums, f)
	}
	return nums
}

// InferType classifies a value sequence: numeric when every non-blank value
// parses as a float and at least one value is present, text otherwise.
func InferType(values []string) ValueType {
	parsed := 0
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, err := strconv.ParseFloat(v, 64); err != nil {
			return ValueTypeText
		}
		parsed++
	}
	if parsed == 0 {
		return ValueTypeText
	}
	return ValueTypeNumeric
}
