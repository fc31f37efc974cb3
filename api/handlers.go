package api

import (
	"net/http"
	"path/filepath"
	"strings"

	"ifcdash/domain/chart"
	"ifcdash/domain/compare"
	"ifcdash/domain/core"
	"ifcdash/domain/dataset"
	"ifcdash/domain/model"
	"ifcdash/internal/errors"
	"ifcdash/internal/scratch"
	"ifcdash/ports"
)

// withUpload materializes one multipart upload to a scratch file and runs fn
// against its path. The file is gone by the time this returns.
func (a *App) withUpload(r *http.Request, field string, fn func(path string) error) error {
	if err := r.ParseMultipartForm(a.cfg.Upload.MaxBytes); err != nil {
		return errors.InvalidInput("invalid multipart request")
	}

	src, header, err := r.FormFile(field)
	if err != nil {
		return errors.InvalidInput("missing uploaded file: " + field)
	}
	defer src.Close()

	if header.Size > a.cfg.Upload.MaxBytes {
		return errors.InvalidInput("uploaded file exceeds the size limit")
	}

	return scratch.WithFile(a.cfg.Upload.ScratchDir, filepath.Ext(header.Filename), src, fn)
}

func (a *App) countProducts(r *http.Request, path string) (model.FrequencyTable, []string, error) {
	m, err := a.parser.Open(r.Context(), path)
	if err != nil {
		return nil, nil, err
	}
	defer m.Close()

	counts, warnings := model.CountByType(m.EntitiesOf(ports.KindProduct))
	messages := make([]string, 0, len(warnings))
	for _, w := range warnings {
		messages = append(messages, w.Error())
	}
	return counts, messages, nil
}

func respond(w http.ResponseWriter, err error) {
	switch {
	case errors.GetCode(err) == errors.CodeInvalidInput:
		writeError(w, http.StatusBadRequest, err)
	case core.IsSchemaMismatch(err):
		writeError(w, http.StatusBadRequest, err)
	case core.IsParseFailure(err):
		writeError(w, http.StatusUnprocessableEntity, err)
	default:
		writeError(w, http.StatusInternalServerError, err)
	}
}

func (a *App) handleIFCCounts(w http.ResponseWriter, r *http.Request) {
	kind := chart.ParseKind(r.FormValue("chart"))

	var (
		counts   model.FrequencyTable
		warnings []string
	)
	err := a.withUpload(r, "file", func(path string) error {
		var err error
		counts, warnings, err = a.countProducts(r, path)
		return err
	})
	if err != nil {
		respond(w, err)
		return
	}

	series := chart.BuildSeries(counts, kind)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"series":   series,
		"total":    counts.Total(),
		"warnings": warnings,
		"no_data":  series.IsEmpty(),
	})
}

func (a *App) handleIFCGrouped(w http.ResponseWriter, r *http.Request) {
	var grouped model.FrequencyTable

	err := a.withUpload(r, "file", func(path string) error {
		entityType := strings.TrimSpace(r.FormValue("type"))
		if entityType == "" {
			return errors.InvalidInput("missing entity type")
		}

		m, err := a.parser.Open(r.Context(), path)
		if err != nil {
			return err
		}
		defer m.Close()

		grouped = model.GroupByNamePrefix(m.EntitiesOf(entityType))
		return nil
	})
	if err != nil {
		respond(w, err)
		return
	}

	series := chart.BuildSeries(grouped, chart.ParseKind(r.FormValue("chart")))
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"series":  series,
		"total":   grouped.Total(),
		"no_data": series.IsEmpty(),
	})
}

func (a *App) handleIFCCompare(w http.ResponseWriter, r *http.Request) {
	var (
		countsA, countsB model.FrequencyTable
		warnings         []string
	)

	err := a.withUpload(r, "file_a", func(path string) error {
		var err error
		countsA, warnings, err = a.countProducts(r, path)
		return err
	})
	if err == nil {
		err = a.withUpload(r, "file_b", func(path string) error {
			var warningsB []string
			var innerErr error
			countsB, warningsB, innerErr = a.countProducts(r, path)
			warnings = append(warnings, warningsB...)
			return innerErr
		})
	}
	if err != nil {
		respond(w, err)
		return
	}

	rows := compare.Tables(countsA, countsB)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"rows":     rows,
		"warnings": warnings,
		"no_data":  len(rows) == 0,
	})
}

func (a *App) handleExcelProfile(w http.ResponseWriter, r *http.Request) {
	var table dataset.Table

	err := a.withUpload(r, "file", func(path string) error {
		var err error
		table, err = a.tabular.Read(r.Context(), path)
		return err
	})
	if err != nil {
		respond(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"columns": table.ColumnNames(),
		"rows":    table.RowCount(),
		"profile": dataset.Profile(table),
		"no_data": table.IsEmpty(),
	})
}

func (a *App) handleExcelCompare(w http.ResponseWriter, r *http.Request) {
	var tableA, tableB dataset.Table

	err := a.withUpload(r, "file_a", func(path string) error {
		var err error
		tableA, err = a.tabular.Read(r.Context(), path)
		return err
	})
	if err == nil {
		err = a.withUpload(r, "file_b", func(path string) error {
			var innerErr error
			tableB, innerErr = a.tabular.Read(r.Context(), path)
			return innerErr
		})
	}
	if err != nil {
		respond(w, err)
		return
	}

	columns := splitColumns(r.FormValue("columns"))
	for _, name := range columns {
		_, inA := tableA.Column(name)
		_, inB := tableB.Column(name)
		if !inA || !inB {
			respond(w, core.NewSchemaError(name))
			return
		}
	}
	if len(columns) == 0 {
		// default to the intersection; the comparator assumes membership
		for _, name := range tableA.ColumnNames() {
			if _, ok := tableB.Column(name); ok {
				columns = append(columns, name)
			}
		}
	}

	stats := compare.ColumnStats(tableA, tableB, columns)
	writeJSON(w, http.StatusOK, map[string]interface{}{
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
