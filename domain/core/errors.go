package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Boundary errors: only the parsing/ingestion collaborators can fail hard
	ErrParseFailure   = errors.New("model parse failure")
	ErrSchemaMismatch = errors.New("column missing from dataset")
	ErrTransientIO    = errors.New("transient file I/O failure")

	// Per-entity errors: recoverable, reported as warnings by the tabulator
	ErrEntityUntyped = errors.New("entity has no resolvable type name")
)

// Error constructors with context
func NewParseError(path string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrParseFailure, path, err)
}

func NewSchemaError(column string) error {
	return fmt.Errorf("%w: %s", ErrSchemaMismatch, column)
}

func NewScratchError(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrTransientIO, op, err)
}

// Error checking helpers
func IsParseFailure(err error) bool {
	return errors.Is(err, ErrParseFailure)
}

func IsSchemaMismatch(err error) bool {
	return errors.Is(err, ErrSchemaMismatch)
}

func IsTransientIO(err error) bool {
	return errors.Is(err, ErrTransientIO)
}
