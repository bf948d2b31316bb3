package application

import (
	"errors"
	"fmt"

	"herosheet/internal/domain"
)

// Sentinel errors for common conditions
var (
	ErrNotFound           = errors.New("not found")
	ErrNoSelection        = errors.New("no character selected")
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrExportUnavailable  = errors.New("export unavailable")
	ErrDuplicateID        = errors.New("duplicate character id")
)

// Re-export domain errors for use by adapters
var (
	ErrInvalidGrade       = domain.ErrInvalidGrade
	ErrDuplicateModifier  = domain.ErrDuplicateModifier
	ErrModifierOutOfRange = domain.ErrModifierOutOfRange
	ErrUnknownCategory    = domain.ErrUnknownCategory
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NotFoundError reports a character id that is not in the collection
type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("character %d not found", e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// StorageError wraps a persistence failure
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s failed: %v", e.Op, e.Err)
}

func (e *StorageError) Is(target error) bool {
	return target == ErrStorageUnavailable
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// ExportError wraps an export failure
type ExportError struct {
	Reason string
	Err    error
}

func (e *ExportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot export: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("cannot export: %s", e.Reason)
}

func (e *ExportError) Is(target error) bool {
	return target == ErrExportUnavailable
}

func (e *ExportError) Unwrap() error {
	return e.Err
}
