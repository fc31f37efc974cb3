package ui

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"ifcdash/domain/chart"
	"ifcdash/domain/compare"
	"ifcdash/internal/errors"
)

// exportRequest carries the already-computed chart data back from the client
// for PDF regeneration. Exactly one payload field is used, selected by Kind.
type exportRequest struct {
	Kind   string            `json:"kind" binding:"required"`
	Title  string            `json:"title"`
	Series *chart.Series     `json:"series,omitempty"`
	Rows   []compare.Row     `json:"rows,omitempty"`
	Stats  []compare.StatRow `json:"stats,omitempty"`
}

// handleExportPDF regenerates a chart or comparison table as a PDF download.
func (s *Server) handleExportPDF(c *gin.Context) {
	var req exportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.InvalidInput("invalid export payload: "+err.Error()))
		return
	}

	title := req.Title
	if title == "" {
		title = "Visualization"
	}

	var (
		data []byte
		err  error
	)
	switch req.Kind {
	case "series":
		if req.Series == nil {
			respondError(c, errors.InvalidInput("series payload missing"))
			return
		}
		data, err = s.export.ExportSeries(title, *req.Series)
	case "comparison":
		data, err = s.export.ExportComparison(title, req.Rows)
	case "stats":
		data, err = s.export.ExportStats(title, req.Stats)
	default:
		respondError(c, errors.InvalidInput("unknown export kind: "+req.Kind))
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "visualization.pdf"))
	c.Data(http.StatusOK, "application/pdf", data)
}
