package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-resume-generator/internal/models"
)

func TestInterpretResumeWellFormed(t *testing.T) {
	ri := NewResponseInterpreter()

	result, err := ri.InterpretResume(`{"ats_score":"82","keywords":["Go","backend","API"],"resume_text":"Jane Doe\nBackend Engineer"}`)
	require.NoError(t, err)

	assert.Equal(t, "82", result.ATSScore)
	assert.Equal(t, []string{"Go", "backend", "API"}, result.Keywords)
	assert.Equal(t, "Jane Doe\nBackend Engineer", result.ResumeText)
}

func TestInterpretResumeStripsMarkdownFences(t *testing.T) {
	ri := NewResponseInterpreter()

	raw := "```json\n{\"ats_score\":\"75\",\"keywords\":[\"Go\"],\"resume_text\":\"text\"}\n```"
	result, err := ri.InterpretResume(raw)
	require.NoError(t, err)

	assert.Equal(t, "75", result.ATSScore)
}

func TestInterpretResumeMissingFieldDefaults(t *testing.T) {
	ri := NewResponseInterpreter()

	result, err := ri.InterpretResume(`{}`)
	require.NoError(t, err)

	assert.Equal(t, models.ATSScoreUnavailable, result.ATSScore)
	assert.Empty(t, result.Keywords)
	assert.NotNil(t, result.Keywords)
	assert.Equal(t, models.ResumeTextNotFound, result.ResumeText)
}

func TestInterpretResumeInvalidJSON(t *testing.T) {
	ri := NewResponseInterpreter()

	raw := "sorry, I could not produce JSON today"
	_, err := ri.InterpretResume(raw)
	require.Error(t, err)

	var malformed *models.MalformedOutputError
	require.True(t, errors.As(err, &malformed))
	assert.Equal(t, raw, malformed.Raw)
}

func TestInterpretResumeWrongFieldType(t *testing.T) {
	ri := NewResponseInterpreter()

	_, err := ri.InterpretResume(`{"ats_score":"82","keywords":"Go, backend","resume_text":"text"}`)
	require.Error(t, err)

	var malformed *models.MalformedOutputError
	require.True(t, errors.As(err, &malformed))
	assert.Contains(t, malformed.Err.Error(), "schema validation failed")
}

func TestFallbackResumeResult(t *testing.T) {
	malformed := &models.MalformedOutputError{
		Raw: "garbage",
		Err: errors.New("unexpected end of JSON input"),
	}

	result := FallbackResumeResult(malformed)

	assert.Equal(t, models.ATSScoreUnavailable, result.ATSScore)
	assert.Empty(t, result.Keywords)
	assert.Contains(t, result.ResumeText, "unexpected end of JSON input")
}

func TestInterpretCoverLetterPassThrough(t *testing.T) {
	ri := NewResponseInterpreter()

	assert.Equal(t, "Dear Hiring Manager,", ri.InterpretCoverLetter("  Dear Hiring Manager,\n"))
}

func TestExtractJSONFromProse(t *testing.T) {
	raw := "Here is your result: {\"ats_score\":\"90\"} hope it helps"
	assert.Equal(t, `{"ats_score":"90"}`, extractJSON(raw))
}
