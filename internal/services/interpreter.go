package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"ai-resume-generator/internal/models"
)

// resumeResultSchema checks field types only; absent fields fall back to
// per-field defaults instead of failing the whole response.
const resumeResultSchema = `{
	"type": "object",
	"properties": {
		"ats_score": {"type": "string"},
		"keywords": {"type": "array", "items": {"type": "string"}},
		"resume_text": {"type": "string"}
	}
}`

// ResponseInterpreter normalizes raw model output into typed results and
// never lets a parse failure escape as anything but a MalformedOutputError.
type ResponseInterpreter struct{}

func NewResponseInterpreter() *ResponseInterpreter {
	return &ResponseInterpreter{}
}

// InterpretCoverLetter is a pass-through; cover letters are plain text.
func (ri *ResponseInterpreter) InterpretCoverLetter(raw string) string {
	return strings.TrimSpace(raw)
}

// InterpretResume parses the JSON-shaped resume response. Missing fields get
// independent defaults; malformed payloads come back as a
// MalformedOutputError carrying the raw output.
func (ri *ResponseInterpreter) InterpretResume(raw string) (*models.ResumeResult, error) {
	payload := extractJSON(raw)

	validation, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(resumeResultSchema),
		gojsonschema.NewStringLoader(payload),
	)
	if err != nil {
		return nil, &models.MalformedOutputError{Raw: raw, Err: err}
	}
	if !validation.Valid() {
		var msgs []string
		for _, desc := range validation.Errors() {
			msgs = append(msgs, desc.String())
		}
		return nil, &models.MalformedOutputError{
			Raw: raw,
			Err: fmt.Errorf("schema validation failed: %s", strings.Join(msgs, "; ")),
		}
	}

	var decoded struct {
		ATSScore   *string  `json:"ats_score"`
		Keywords   []string `json:"keywords"`
		ResumeText *string  `json:"resume_text"`
	}
	if err := json.Unmarshal([]byte(payload), &decoded); err != nil {
		return nil, &models.MalformedOutputError{Raw: raw, Err: err}
	}

	result := &models.ResumeResult{
		ATSScore:   models.ATSScoreUnavailable,
		Keywords:   []string{},
		ResumeText: models.ResumeTextNotFound,
	}
	if decoded.ATSScore != nil {
		result.ATSScore = *decoded.ATSScore
	}
	if decoded.Keywords != nil {
		result.Keywords = decoded.Keywords
	}
	if decoded.ResumeText != nil {
		result.ResumeText = *decoded.ResumeText
	}

	return result, nil
}

// FallbackResumeResult is the defaulted result attached alongside a
// malformed-output failure so the UI still has fields to render.
func FallbackResumeResult(err *models.MalformedOutputError) *models.ResumeResult {
	return &models.ResumeResult{
		ATSScore:   models.ATSScoreUnavailable,
		Keywords:   []string{},
		ResumeText: err.Error(),
	}
}

// extractJSON pulls the outermost JSON value out of text that may wrap it in
// markdown fences or prose.
func extractJSON(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")

	startObj := strings.Index(text, "{")
	startArr := strings.Index(text, "[")
	endObj := strings.LastIndex(text, "}")
	endArr := strings.LastIndex(text, "]")

	if startObj != -1 && endObj != -1 && endObj > startObj {
		return text[startObj : endObj+1]
	} else if startArr != -1 && endArr != -1 && endArr > startArr {
		return text[startArr : endArr+1]
	}

	return text
}
