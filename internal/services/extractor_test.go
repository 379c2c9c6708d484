package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractPlainText(t *testing.T) {
	extractor := NewExtractorService()

	result, err := extractor.Extract([]byte("  Jane Doe\nBackend Engineer  \n"), "resume.txt")
	require.NoError(t, err)

	assert.Equal(t, ExtractionOK, result.Status)
	assert.Equal(t, "Jane Doe\nBackend Engineer", result.Text)
	assert.Contains(t, result.Message, "resume.txt")
}

func TestExtractPlainTextIdempotent(t *testing.T) {
	extractor := NewExtractorService()
	data := []byte("5 years backend engineering experience")

	first, err := extractor.Extract(data, "resume.txt")
	require.NoError(t, err)
	second, err := extractor.Extract(data, "resume.txt")
	require.NoError(t, err)

	assert.Equal(t, first.Text, second.Text)
}

func TestExtractInvalidUTF8(t *testing.T) {
	extractor := NewExtractorService()

	_, err := extractor.Extract([]byte{0xff, 0xfe, 0xfd}, "resume.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "UTF-8")
}

func TestExtractPDFUnsupported(t *testing.T) {
	extractor := NewExtractorService()

	result, err := extractor.Extract([]byte("%PDF-1.4 fake content"), "resume.pdf")
	require.NoError(t, err)

	assert.Equal(t, ExtractionUnsupported, result.Status)
	assert.Empty(t, result.Text)
	assert.Contains(t, result.Message, "PDF")
}

func TestExtractUnknownExtensionSkipped(t *testing.T) {
	extractor := NewExtractorService()

	result, err := extractor.Extract([]byte("binary stuff"), "resume.png")
	require.NoError(t, err)

	assert.Equal(t, ExtractionSkipped, result.Status)
	assert.Empty(t, result.Text)
	assert.Empty(t, result.Message)
}

func TestExtractNoFilename(t *testing.T) {
	extractor := NewExtractorService()

	result, err := extractor.Extract(nil, "")
	require.NoError(t, err)
	assert.Equal(t, ExtractionSkipped, result.Status)
}

func TestExtractDOCXRoundTrip(t *testing.T) {
	// Build a DOCX with the export service, then read it back.
	blob, err := NewExportService().BuildDOCX("Jane Doe - Resume", "Professional Summary\nBackend engineer with Go experience")
	require.NoError(t, err)

	result, err := NewExtractorService().Extract(blob, "generated.docx")
	require.NoError(t, err)

	assert.Equal(t, ExtractionOK, result.Status)
	assert.Contains(t, result.Text, "Jane Doe - Resume")
	assert.Contains(t, result.Text, "Professional Summary")
	assert.Contains(t, result.Text, "Backend engineer with Go experience")
}

func TestExtractCorruptDOCX(t *testing.T) {
	extractor := NewExtractorService()

	_, err := extractor.Extract([]byte("not a zip container"), "resume.docx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "resume.docx")
}

func TestCleanText(t *testing.T) {
	input := "  First line  \n\n\n   Second line\n\n"
	assert.Equal(t, "First line\nSecond line", CleanText(input))
}
