package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failure classes the API distinguishes.
var (
	// ErrExtraction is returned when text cannot be extracted from an uploaded file
	ErrExtraction = errors.New("could not read file")

	// ErrEmptyInput is returned when the resume text or job description is blank
	ErrEmptyInput = errors.New("empty input")

	// ErrAIUnavailable is returned when the AI feedback service cannot be used.
	// It is always recovered internally by falling back to rule-based suggestions.
	ErrAIUnavailable = errors.New("ai feedback unavailable")

	// ErrAnalysisNotFound is returned when a stored analysis is not found
	ErrAnalysisNotFound = errors.New("analysis not found")
)

// ExtractionError reports why an uploaded document could not be read.
type ExtractionError struct {
	Format string
	Err    error
}

func (e *ExtractionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("could not read %s file: %v", e.Format, e.Err)
	}
	return fmt.Sprintf("could not read %s file", e.Format)
}

func (e *ExtractionError) Is(target error) bool {
	return target == ErrExtraction
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError creates a new ExtractionError
func NewExtractionError(format string, err error) *ExtractionError {
	return &ExtractionError{Format: format, Err: err}
}

// EmptyInputError identifies which input was blank.
type EmptyInputError struct {
	Field string
}

func (e *EmptyInputError) Error() string {
	return fmt.Sprintf("%s must not be empty", e.Field)
}

func (e *EmptyInputError) Is(target error) bool {
	return target == ErrEmptyInput
}

// NewEmptyInputError creates a new EmptyInputError
func NewEmptyInputError(field string) *EmptyInputError {
	return &EmptyInputError{Field: field}
}

// AIUnavailableError carries the underlying reason the AI call failed.
type AIUnavailableError struct {
	Reason string
	Err    error
}

func (e *AIUnavailableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("ai feedback unavailable (%s): %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("ai feedback unavailable (%s)", e.Reason)
}

func (e *AIUnavailableError) Is(target error) bool {
	return target == ErrAIUnavailable
}

func (e *AIUnavailableError) Unwrap() error {
	return e.Err
}

// NewAIUnavailableError creates a new AIUnavailableError
func NewAIUnavailableError(reason string, err error) *AIUnavailableError {
	return &AIUnavailableError{Reason: reason, Err: err}
}

// AnalysisNotFoundError reports a missing stored analysis.
type AnalysisNotFoundError struct {
	ID string
}

func (e *AnalysisNotFoundError) Error() string {
	return fmt.Sprintf("analysis with ID '%s' not found", e.ID)
}

func (e *AnalysisNotFoundError) Is(target error) bool {
	return target == ErrAnalysisNotFound
}

// NewAnalysisNotFoundError creates a new AnalysisNotFoundError
func NewAnalysisNotFoundError(id string) *AnalysisNotFoundError {
	return &AnalysisNotFoundError{ID: id}
}
