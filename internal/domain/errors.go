package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrConflict      = errors.New("conflict")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// ConflictError reports that a word with the same normalized key already exists.
type ConflictError struct {
	NormalizedTerm string
	ExistingID     uuid.UUID
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("word %q already exists as %s", e.NormalizedTerm, e.ExistingID)
}

func (e *ConflictError) Unwrap() error { return ErrAlreadyExists }

// EnrichmentStage names the enrichment sub-step that failed.
type EnrichmentStage string

const (
	EnrichmentStageLookup    EnrichmentStage = "lookup"
	EnrichmentStageTranslate EnrichmentStage = "translate"
)

// EnrichmentError wraps a dictionary or translation failure. It is never
// returned past the review service; callers see it only in logs.
type EnrichmentError struct {
	Stage  EnrichmentStage
	WordID uuid.UUID
	Err    error
}

func (e *EnrichmentError) Error() string {
	return fmt.Sprintf("enrich %s %s: %v", e.Stage, e.WordID, e.Err)
}

func (e *EnrichmentError) Unwrap() error { return e.Err }
