package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-resume-generator/internal/models"
)

func TestBuildPDF(t *testing.T) {
	export := NewExportService()

	blob, err := export.BuildPDF("Jane Doe - Resume", "Professional Summary\nBackend engineer")
	require.NoError(t, err)

	require.NotEmpty(t, blob)
	assert.Equal(t, "%PDF", string(blob[:4]))
}

func TestBuildPDFDeterministicInputsProduceOutput(t *testing.T) {
	export := NewExportService()

	blob, err := export.BuildPDF("Título con acentos", "Résumé — body with unicode")
	require.NoError(t, err)
	assert.NotEmpty(t, blob)
}

func TestBuildDOCX(t *testing.T) {
	export := NewExportService()

	blob, err := export.BuildDOCX("Jane Doe - Cover Letter", "Dear Hiring Manager,\n\nSincerely,\nJane")
	require.NoError(t, err)

	require.NotEmpty(t, blob)
	// DOCX is a zip container.
	assert.Equal(t, "PK", string(blob[:2]))
}

func TestArtifactFileNames(t *testing.T) {
	assert.Equal(t, "Jane Doe_Resume.docx", models.ArtifactResume.FileName("Jane Doe", "docx"))
	assert.Equal(t, "Jane Doe_Resume.pdf", models.ArtifactResume.FileName("Jane Doe", "pdf"))
	assert.Equal(t, "Jane Doe_CoverLetter.docx", models.ArtifactCoverLetter.FileName("Jane Doe", "docx"))
}
