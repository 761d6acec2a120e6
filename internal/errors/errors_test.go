package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractionError(t *testing.T) {
	err := NewExtractionError("pdf", fmt.Errorf("bad xref table"))

	assert.True(t, errors.Is(err, ErrExtraction))
	assert.False(t, errors.Is(err, ErrEmptyInput))
	assert.Contains(t, err.Error(), "pdf")
	assert.Contains(t, err.Error(), "bad xref table")
}

func TestExtractionError_Wrapped(t *testing.T) {
	cause := fmt.Errorf("truncated stream")
	err := fmt.Errorf("parsing resume: %w", NewExtractionError("docx", cause))

	assert.True(t, errors.Is(err, ErrExtraction))

	var extractionErr *ExtractionError
	assert.True(t, errors.As(err, &extractionErr))
	assert.Equal(t, "docx", extractionErr.Format)
}

func TestEmptyInputError(t *testing.T) {
	err := NewEmptyInputError("job_description")

	assert.True(t, errors.Is(err, ErrEmptyInput))
	assert.Equal(t, "job_description must not be empty", err.Error())
}

func TestAIUnavailableError(t *testing.T) {
	err := NewAIUnavailableError("timeout", fmt.Errorf("context deadline exceeded"))

	assert.True(t, errors.Is(err, ErrAIUnavailable))
	assert.Contains(t, err.Error(), "timeout")

	noKey := NewAIUnavailableError("api key not configured", nil)
	assert.True(t, errors.Is(noKey, ErrAIUnavailable))
}

func TestAnalysisNotFoundError(t *testing.T) {
	err := NewAnalysisNotFoundError("3f1c9a0e")

	assert.True(t, errors.Is(err, ErrAnalysisNotFound))
	assert.Contains(t, err.Error(), "3f1c9a0e")
}
