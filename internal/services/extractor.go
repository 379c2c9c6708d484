package services

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/fumiama/go-docx"
)

type ExtractionStatus string

const (
	ExtractionOK          ExtractionStatus = "extracted"
	ExtractionUnsupported ExtractionStatus = "unsupported"
	ExtractionSkipped     ExtractionStatus = "skipped"
)

// Extraction is the tagged result of one extraction attempt. Unsupported
// and skipped files carry no text and are not errors.
type Extraction struct {
	Status  ExtractionStatus
	Text    string
	Message string
}

type ExtractorService interface {
	Extract(data []byte, filename string) (Extraction, error)
}

type extractorService struct{}

func NewExtractorService() ExtractorService {
	return &extractorService{}
}

func (e *extractorService) Extract(data []byte, filename string) (Extraction, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))

	switch ext {
	case "txt":
		if !utf8.Valid(data) {
			return Extraction{}, fmt.Errorf("%s is not valid UTF-8 text", filename)
		}
		return Extraction{
			Status:  ExtractionOK,
			Text:    strings.TrimSpace(string(data)),
			Message: fmt.Sprintf("Successfully parsed %s as plain text.", filename),
		}, nil

	case "docx":
		text, err := extractDOCXText(data)
		if err != nil {
			return Extraction{}, fmt.Errorf("failed to parse %s: %w", filename, err)
		}
		return Extraction{
			Status:  ExtractionOK,
			Text:    strings.TrimSpace(text),
			Message: fmt.Sprintf("Successfully parsed %s (DOCX).", filename),
		}, nil

	case "pdf":
		// PDF content extraction is intentionally not attempted.
		return Extraction{
			Status: ExtractionUnsupported,
			Message: fmt.Sprintf(
				"PDF file detected: %s. Please upload a TXT or DOCX for reliable results, or manually paste the content.",
				filename,
			),
		}, nil
	}

	return Extraction{Status: ExtractionSkipped}, nil
}

// extractDOCXText concatenates paragraph texts in document order.
func extractDOCXText(data []byte) (string, error) {
	doc, err := docx.Parse(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	var paragraphs []string
	for _, item := range doc.Document.Body.Items {
		para, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}

		var sb strings.Builder
		for _, child := range para.Children {
			run, ok := child.(*docx.Run)
			if !ok {
				continue
			}
			for _, rc := range run.Children {
				if t, ok := rc.(*docx.Text); ok {
					sb.WriteString(t.Text)
				}
			}
		}
		paragraphs = append(paragraphs, sb.String())
	}

	return strings.Join(paragraphs, "\n"), nil
}

// CleanText trims lines and drops blank ones, normalizing extracted text
// before it is offered as a form field value.
func CleanText(text string) string {
	text = strings.TrimSpace(text)

	lines := strings.Split(text, "\n")
	var cleanedLines []string

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleanedLines = append(cleanedLines, line)
		}
	}

	return strings.Join(cleanedLines, "\n")
}
