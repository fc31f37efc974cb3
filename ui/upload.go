package ui

import (
	"log"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"ifcdash/domain/core"
	"ifcdash/internal/errors"
	"ifcdash/internal/scratch"
)

// withUpload materializes one multipart upload to a scratch file, runs fn
// against its path, and guarantees the file is deleted before returning. The
// scratch name is unique per request, so concurrent uploads never collide.
func (s *Server) withUpload(c *gin.Context, field string, fn func(path string) error) error {
	header, err := c.FormFile(field)
	if err != nil {
		return errors.InvalidInput("missing uploaded file: " + field)
	}
	if header.Size > s.cfg.Upload.MaxBytes {
		return errors.InvalidInput("uploaded file exceeds the size limit")
	}

	src, err := header.Open()
	if err != nil {
		return errors.UploadFailure(err)
	}
	defer src.Close()

	ext := filepath.Ext(header.Filename)
	return scratch.WithFile(s.cfg.Upload.ScratchDir, ext, src, fn)
}

// acquireParseSlot gates heavy parse work; it blocks until a slot frees up or
// the request is cancelled.
func (s *Server) acquireParseSlot(c *gin.Context) (release func(), err error) {
	if err := s.parseGate.Acquire(c.Request.Context(), 1); err != nil {
		return nil, err
	}
	return func() { s.parseGate.Release(1) }, nil
}

// respondError maps the error taxonomy onto HTTP statuses. Parse failures are
// the user's file, not our bug; empty data never reaches here.
func respondError(c *gin.Context, err error) {
	log.Printf("[Server] request failed: %v", err)

	status := http.StatusInternalServerError
	switch {
	case errors.GetCode(err) == errors.CodeInvalidInput:
		status = http.StatusBadRequest
	case core.IsSchemaMismatch(err):
		status = http.StatusBadRequest
	case core.IsParseFailure(err):
		status = http.StatusUnprocessableEntity
	case core.IsTransientIO(err):
		status = http.StatusInsufficientStorage
	}

	c.JSON(status, gin.H{"error": err.Error()})
}
