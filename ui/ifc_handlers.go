package ui

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"ifcdash/domain/chart"
	"ifcdash/domain/compare"
	"ifcdash/domain/model"
	"ifcdash/internal/errors"
	"ifcdash/ports"
)

// countProducts parses the model at path and tabulates its product entities.
func (s *Server) countProducts(c *gin.Context, path string) (model.FrequencyTable, []string, error) {
	release, err := s.acquireParseSlot(c)
	if err != nil {
		return nil, nil, err
	}
	defer release()

	m, err := s.parser.Open(c.Request.Context(), path)
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

// handleIFCAnalyze counts product entities in one uploaded model and returns
// the chart-ready series. Zero products is a "no data" response, not an error.
func (s *Server) handleIFCAnalyze(c *gin.Context) {
	kind := chart.ParseKind(c.DefaultPostForm("chart", "bar"))

	var (
		counts   model.FrequencyTable
		warnings []string
	)
	err := s.withUpload(c, "file", func(path string) error {
		var err error
		counts, warnings, err = s.countProducts(c, path)
		return err
	})
	if err != nil {
		respondError(c, err)
		return
	}

	series := chart.BuildSeries(counts, kind)
	c.JSON(http.StatusOK, gin.H{
		"series":   series,
		"total":    counts.Total(),
		"warnings": warnings,
		"no_data":  series.IsEmpty(),
	})
}

// handleIFCDetail groups entities of one requested type by their name prefix,
// e.g. all IfcWall instances bucketed as "Wall", "Partition", "Unnamed".
func (s *Server) handleIFCDetail(c *gin.Context) {
	entityType := strings.TrimSpace(c.PostForm("type"))
	if entityType == "" {
		respondError(c, errors.InvalidInput("missing entity type"))
		return
	}
	kind := chart.ParseKind(c.DefaultPostForm("chart", "bar"))

	var grouped model.FrequencyTable
	err := s.withUpload(c, "file", func(path string) error {
		release, err := s.acquireParseSlot(c)
		if err != nil {
			return err
		}
		defer release()

		m, err := s.parser.Open(c.Request.Context(), path)
		if err != nil {
			return err
		}
		defer m.Close()

		grouped = model.GroupByNamePrefix(m.EntitiesOf(entityType))
		return nil
	})
	if err != nil {
		respondError(c, err)
		return
	}

	series := chart.BuildSeries(grouped, kind)
	c.JSON(http.StatusOK, gin.H{
		"type":    entityType,
		"series":  series,
		"total":   grouped.Total(),
		"no_data": series.IsEmpty(),
	})
}

// handleIFCCompare tabulates two uploaded models and diffs their counts over
// the union of entity types.
func (s *Server) handleIFCCompare(c *gin.Context) {
	var (
		countsA, countsB model.FrequencyTable
		warnings         []string
	)

	err := s.withUpload(c, "file_a", func(pathA string) error {
		var err error
		countsA, warnings, err = s.countProducts(c, pathA)
		return err
	})
	if err != nil {
		respondError(c, err)
		return
	}

	err = s.withUpload(c, "file_b", func(pathB string) error {
		var err error
		var warningsB []string
		countsB, warningsB, err = s.countProducts(c, pathB)
		warnings = append(warnings, warningsB...)
		return err
	})
	if err != nil {
		respondError(c, err)
		return
	}

	rows := compare.Tables(countsA, countsB)
	c.JSON(http.StatusOK, gin.H{
		"rows":     rows,
		"warnings": warnings,
		"no_data":  len(rows) == 0,
	})
}
