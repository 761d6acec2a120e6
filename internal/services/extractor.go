package services

import (
	"bytes"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	apperrors "resumatch/resume-analyzer/internal/errors"
)

// Format is the declared document format of an upload.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
)

// FormatFromFilename infers the document format from the file extension.
func FormatFromFilename(filename string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return FormatPDF, true
	case ".docx":
		return FormatDOCX, true
	default:
		return "", false
	}
}

type ExtractorService interface {
	Extract(data []byte, format Format) (string, error)
}

type extractorService struct{}

func NewExtractorService() ExtractorService {
	return &extractorService{}
}

// Extract produces plain text from an uploaded document. A byte stream that
// is not a well-formed document of the declared format (corrupt, renamed,
// empty, password-protected) yields an extraction error; it is not retried.
func (e *extractorService) Extract(data []byte, format Format) (string, error) {
	if len(data) == 0 {
		return "", apperrors.NewExtractionError(string(format), fmt.Errorf("file is empty"))
	}

	var text string
	var err error
	switch format {
	case FormatPDF:
		text, err = extractPDFText(data)
	case FormatDOCX:
		text, err = extractDocxText(data)
	default:
		return "", apperrors.NewExtractionError(string(format), fmt.Errorf("unsupported format"))
	}
	if err != nil {
		return "", apperrors.NewExtractionError(string(format), err)
	}

	text = CleanText(text)
	if text == "" {
		return "", apperrors.NewExtractionError(string(format), fmt.Errorf("no text content found"))
	}
	return text, nil
}

func extractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	var textBuilder strings.Builder
	totalPage := reader.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Skip unreadable pages, later pages may still extract
			continue
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString("\n\n")
	}

	return textBuilder.String(), nil
}

var xmlTagRegex = regexp.MustCompile(`<[^>]+>`)

func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	// GetContent returns the raw document XML, strip the markup.
	content := doc.Editable().GetContent()
	return xmlTagRegex.ReplaceAllString(content, " "), nil
}

// CleanText trims blank lines and excess whitespace from extracted text.
func CleanText(text string) string {
	text = strings.TrimSpace(text)

	lines := strings.Split(text, "\n")
	var cleanedLines []string

	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			cleanedLines = append(cleanedLines, line)
		}
	}

	return strings.Join(cleanedLines, "\n")
}
