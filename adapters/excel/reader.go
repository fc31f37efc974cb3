// Package excel ingests Excel and CSV files into tabular datasets.
package excel

import (
	"context"
	"encoding/csv"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"ifcdash/domain/core"
	"ifcdash/domain/dataset"
)

// Reader handles reading Excel and CSV files into dataset.Table. Malformed
// content yields the empty table rather than an error: the dashboard shows
// "no data" and does not distinguish an empty file from a corrupt one. Only
// a missing or unreadable path is a hard failure.
type Reader struct{}

// NewReader creates a new tabular file reader.
func NewReader() *Reader {
	return &Reader{}
}

// Read ingests the file at path, dispatching on extension (.csv vs xlsx).
func (r *Reader) Read(ctx context.Context, path string) (dataset.Table, error) {
	if err := ctx.Err(); err != nil {
		return dataset.Empty(), err
	}
	if _, err := os.Stat(path); err != nil {
		return dataset.Empty(), core.NewParseError(path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".csv" {
		return r.readCSV(path), nil
	}
	return r.readExcel(path), nil
}

// readExcel reads Sheet1 of an xlsx workbook.
func (r *Reader) readExcel(path string) dataset.Table {
	f, err := excelize.OpenFile(path)
	if err != nil {
		log.Printf("[excel] failed to open %s: %v", path, err)
		return dataset.Empty()
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		log.Printf("[excel] failed to read first sheet of %s: %v", path, err)
		return dataset.Empty()
	}

	return buildTable(rows)
}

// readCSV reads a comma-separated file.
func (r *Reader) readCSV(path string) dataset.Table {
	f, err := os.Open(path)
	if err != nil {
		log.Printf("[excel] failed to open %s: %v", path, err)
		return dataset.Empty()
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		log.Printf("[excel] failed to read %s: %v", path, err)
		return dataset.Empty()
	}

	return buildTable(rows)
}

// buildTable converts raw string rows (header row first) into a typed column
// table. A ragged row contributes blanks for its missing cells so columns stay
// equal length.
func buildTable(rows [][]string) dataset.Table {
	if len(rows) < 2 {
		// header-only or nothing: no data
		return dataset.Empty()
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.TrimSpace(h)
	}

	columns := make([]dataset.Column, len(headers))
	for i, h := range headers {
		columns[i] = dataset.Column{
			Name:   h,
			Values: make([]string, 0, len(rows)-1),
		}
	}

	for _, row := range rows[1:] {
		for i := range columns {
			cell := ""
			if i < len(row) {
				cell = strings.TrimSpace(row[i])
			}
			columns[i].Values = append(columns[i].Values, cell)
		}
	}

	for i := range columns {
		columns[i].Type = dataset.InferType(columns[i].Values)
	}

	log.Printf("[excel] ingested %d columns, %d rows", len(columns), len(rows)-1)
	return dataset.Table{Columns: columns}
}
