package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "resumatch/resume-analyzer/internal/errors"
)

func TestFormatFromFilename(t *testing.T) {
	tests := []struct {
		filename string
		want     Format
		ok       bool
	}{
		{"resume.pdf", FormatPDF, true},
		{"Resume.PDF", FormatPDF, true},
		{"resume.docx", FormatDOCX, true},
		{"My Resume.DOCX", FormatDOCX, true},
		{"resume.txt", "", false},
		{"resume.doc", "", false},
		{"resume", "", false},
		{"archive.pdf.zip", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			format, ok := FormatFromFilename(tt.filename)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, format)
		})
	}
}

func TestExtract_EmptyData(t *testing.T) {
	extractor := NewExtractorService()

	_, err := extractor.Extract(nil, FormatPDF)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrExtraction)
}

func TestExtract_RenamedTextFileAsPDF(t *testing.T) {
	extractor := NewExtractorService()

	// A plain text file renamed to .pdf must fail, not silently pass through.
	_, err := extractor.Extract([]byte("just some plain text pretending to be a pdf"), FormatPDF)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrExtraction)

	var extractionErr *apperrors.ExtractionError
	require.True(t, errors.As(err, &extractionErr))
	assert.Equal(t, "pdf", extractionErr.Format)
}

func TestExtract_CorruptDocx(t *testing.T) {
	extractor := NewExtractorService()

	_, err := extractor.Extract([]byte("not a zip archive"), FormatDOCX)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrExtraction)
}

func TestExtract_UnsupportedFormat(t *testing.T) {
	extractor := NewExtractorService()

	_, err := extractor.Extract([]byte("some bytes"), Format("rtf"))
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrExtraction)
}

func TestCleanText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"collapses spaces", "hello   world", "hello world"},
		{"drops blank lines", "first\n\n\nsecond", "first\nsecond"},
		{"trims line whitespace", "  padded line  \n\tnext\t", "padded line\nnext"},
		{"empty input", "   \n\n  ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanText(tt.in))
		})
	}
}
