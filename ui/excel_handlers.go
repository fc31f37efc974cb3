package ui

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"ifcdash/domain/compare"
	"ifcdash/domain/core"
	"ifcdash/domain/dataset"
)

// handleExcelAnalyze ingests one spreadsheet and returns per-column
// descriptive statistics. A malformed or empty file is "no data".
func (s *Server) handleExcelAnalyze(c *gin.Context) {
	var table dataset.Table
	err := s.withUpload(c, "file", func(path string) error {
		var err error
		table, err = s.tabular.Read(c.Request.Context(), path)
		return err
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"columns": table.ColumnNames(),
		"rows":    table.RowCount(),
		"profile": dataset.Profile(table),
		"no_data": table.IsEmpty(),
	})
}

// handleExcelCompare ingests two spreadsheets and compares mean/sum per
// column. An explicitly requested column (comma-separated "columns" field)
// must exist in both datasets; with no explicit list every shared column is
// compared.
func (s *Server) handleExcelCompare(c *gin.Context) {
	var tableA, tableB dataset.Table

	err := s.withUpload(c, "file_a", func(path string) error {
		var err error
		tableA, err = s.tabular.Read(c.Request.Context(), path)
		return err
	})
	if err != nil {
		respondError(c, err)
		return
	}

	err = s.withUpload(c, "file_b", func(path string) error {
		var err error
		tableB, err = s.tabular.Read(c.Request.Context(), path)
		return err
	})
	if err != nil {
		respondError(c, err)
		return
	}

	columns := splitColumns(c.PostForm("columns"))
	for _, name := range columns {
		_, inA := tableA.Column(name)
		_, inB := tableB.Column(name)
		if !inA || !inB {
			respondError(c, core.NewSchemaError(name))
			return
		}
	}
	if len(columns) == 0 {
		columns = sharedColumns(tableA.ColumnNames(), tableA, tableB)
	}

	stats := compare.ColumnStats(tableA, tableB, columns)
	c.JSON(http.StatusOK, gin.H{
		"columns": columns,
		"stats":   stats,
		"no_data": len(stats) == 0,
	})
}

func splitColumns(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	columns := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			columns = append(columns, p)
		}
	}
	return columns
}

// sharedColumns keeps the names present in both tables, in the given order.
func sharedColumns(names []string, a, b dataset.Table) []string {
	shared := make([]string, 0, len(names))
	for _, name := range names {
		_, inA := a.Column(name)
		_, inB := b.Column(name)
		if inA && inB {
			shared = append(shared, name)
		}
	}
	return shared
}
