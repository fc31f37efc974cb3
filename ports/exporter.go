package ports

import (
	"ifcdash/domain/chart"
	"ifcdash/domain/compare"
)

// ChartExporter regenerates a chart (and optional comparison tables) as a
// downloadable document. The core hands over plain data only; all image and
// PDF encoding lives behind this port.
type ChartExporter interface {
	ExportSeries(title string, s chart.Series) ([]byte, error)
	ExportComparison(title string, rows []compare.Row) ([]byte, error)
	ExportStats(title string, rows []compare.StatRow) ([]byte, error)
}
