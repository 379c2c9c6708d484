package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"ai-resume-generator/internal/models"
	"ai-resume-generator/internal/services"
)

type fakeGeneratorService struct {
	outcome *models.GenerationOutcome
	lastReq *models.GenerateRequest
}

func (f *fakeGeneratorService) Generate(_ context.Context, session *services.Session, req *models.GenerateRequest) *models.GenerationOutcome {
	f.lastReq = req
	session.Candidate = req.Candidate
	session.JobDescription = req.JobDescription
	session.LastOutcome = f.outcome
	return f.outcome
}

func newGenerateApp(store services.SessionStore, generator services.GeneratorService) *fiber.App {
	app := fiber.New()
	handler := NewGenerateHandler(store, generator)
	app.Post("/api/v1/sessions/:id/generate", handler.HandleGenerate)
	return app
}

func postGenerate(t *testing.T, app *fiber.App, url string, req models.GenerateRequest) *http.Response {
	t.Helper()

	body, err := json.Marshal(req)
	require.NoError(t, err)

	httpReq := httptest.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(httpReq)
	require.NoError(t, err)
	return resp
}

func decodeGenerateResponse(t *testing.T, resp *http.Response) models.GenerateResponse {
	t.Helper()
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded models.GenerateResponse
	require.NoError(t, json.Unmarshal(data, &decoded))
	return decoded
}

func TestGenerateResponseView(t *testing.T) {
	store := services.NewSessionStore(time.Hour, time.Hour, zap.NewNop())
	session := store.Create()

	generator := &fakeGeneratorService{outcome: &models.GenerationOutcome{
		Status:      models.StatusSucceeded,
		GeneratedAt: time.Now(),
		Artifacts: []models.ArtifactResult{{
			Kind:   models.ArtifactResume,
			Status: models.ArtifactSucceeded,
			Resume: &models.ResumeResult{
				ATSScore:   "82",
				Keywords:   []string{"Go", "backend", "API"},
				ResumeText: "Jane Doe\n...",
			},
		}},
	}}
	app := newGenerateApp(store, generator)

	url := fmt.Sprintf("/api/v1/sessions/%s/generate", session.ID)
	resp := postGenerate(t, app, url, models.GenerateRequest{
		Candidate: models.CandidateInfo{
			Name:    "Jane Doe",
			Summary: "5 years backend engineering...",
		},
		JobDescription: "Seeking a backend engineer with Go experience...",
		Artifacts:      models.ChoiceResume,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	decoded := decodeGenerateResponse(t, resp)
	assert.Equal(t, string(models.StatusSucceeded), decoded.Status)
	require.Len(t, decoded.Artifacts, 1)

	artifact := decoded.Artifacts[0]
	assert.Equal(t, "82", artifact.ATSScore)
	assert.Equal(t, "Go, backend, API", artifact.KeywordSummary)
	assert.Equal(t, "Jane Doe\n...", artifact.Preview)

	require.Len(t, artifact.Downloads, 2)
	assert.Equal(t, "Jane Doe_Resume.docx", artifact.Downloads[0].FileName)
	assert.Equal(t, "Jane Doe_Resume.pdf", artifact.Downloads[1].FileName)
}

func TestGenerateRejectedResponse(t *testing.T) {
	store := services.NewSessionStore(time.Hour, time.Hour, zap.NewNop())
	session := store.Create()

	generator := &fakeGeneratorService{outcome: &models.GenerationOutcome{
		Status:      models.StatusRejected,
		Message:     "Full Name, Resume Content (Summary), and Job Description must be provided",
		GeneratedAt: time.Now(),
	}}
	app := newGenerateApp(store, generator)

	url := fmt.Sprintf("/api/v1/sessions/%s/generate", session.ID)
	resp := postGenerate(t, app, url, models.GenerateRequest{})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	decoded := decodeGenerateResponse(t, resp)
	assert.Equal(t, string(models.StatusRejected), decoded.Status)
	assert.NotEmpty(t, decoded.Message)
	assert.Empty(t, decoded.Artifacts)
}

func TestGenerateFallsBackToUploadedFields(t *testing.T) {
	store := services.NewSessionStore(time.Hour, time.Hour, zap.NewNop())
	session := store.Create()
	session.Candidate.Summary = "summary from upload"
	session.JobDescription = "jd from upload"

	generator := &fakeGeneratorService{outcome: &models.GenerationOutcome{
		Status:      models.StatusSucceeded,
		GeneratedAt: time.Now(),
	}}
	app := newGenerateApp(store, generator)

	url := fmt.Sprintf("/api/v1/sessions/%s/generate", session.ID)
	resp := postGenerate(t, app, url, models.GenerateRequest{
		Candidate: models.CandidateInfo{Name: "Jane Doe"},
		Artifacts: models.ChoiceResume,
	})
	resp.Body.Close()

	require.NotNil(t, generator.lastReq)
	assert.Equal(t, "summary from upload", generator.lastReq.Candidate.Summary)
	assert.Equal(t, "jd from upload", generator.lastReq.JobDescription)
}

func TestGenerateUnknownSession(t *testing.T) {
	store := services.NewSessionStore(time.Hour, time.Hour, zap.NewNop())
	app := newGenerateApp(store, &fakeGeneratorService{})

	resp := postGenerate(t, app,
		"/api/v1/sessions/6e5a2c3f-8f1a-4f6f-9c3e-1b2d3c4e5f6a/generate",
		models.GenerateRequest{})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
