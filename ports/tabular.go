package ports

import (
	"context"

	"ifcdash/domain/dataset"
)

// TabularReader ingests a spreadsheet file into a Table. Malformed input
// yields the empty table, never an error: the dashboard renders "no data"
// rather than distinguishing empty from corrupt. Only file-system level
// failures (missing path, unreadable file) return a hard error.
type TabularReader interface {
	Read(ctx context.Context, path string) (dataset.Table, error)
}
