package services

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"ai-resume-generator/internal/models"
)

const (
	resumeMaxOutputTokens      = 1024
	coverLetterMaxOutputTokens = 400
)

// GeneratorService orchestrates one submission: validate, then per requested
// artifact render the prompt, call the backend, and interpret the output.
// Every per-artifact fault is folded into the outcome; nothing escapes.
type GeneratorService interface {
	Generate(ctx context.Context, session *Session, req *models.GenerateRequest) *models.GenerationOutcome
}

type generatorService struct {
	gemini      TextGenerator
	prompts     *PromptBuilder
	interpreter *ResponseInterpreter
	validate    *validator.Validate
	logger      *zap.Logger
}

func NewGeneratorService(gemini TextGenerator, logger *zap.Logger) GeneratorService {
	return &generatorService{
		gemini:      gemini,
		prompts:     NewPromptBuilder(),
		interpreter: NewResponseInterpreter(),
		validate:    validator.New(),
		logger:      logger,
	}
}

// Generate implements GeneratorService.
func (g *generatorService) Generate(ctx context.Context, session *Session, req *models.GenerateRequest) *models.GenerationOutcome {
	if req.Artifacts == "" {
		req.Artifacts = models.ChoiceResume
	}

	outcome := &models.GenerationOutcome{GeneratedAt: time.Now()}

	if err := g.checkRequired(req); err != nil {
		outcome.Status = models.StatusRejected
		outcome.Message = err.Error()
		session.LastOutcome = outcome
		return outcome
	}

	// Field values become the session's state only once validation passed.
	session.Candidate = req.Candidate
	session.JobDescription = req.JobDescription

	kinds := req.Artifacts.Kinds()
	if len(kinds) == 0 {
		outcome.Status = models.StatusRejected
		outcome.Message = "unknown artifact choice: " + string(req.Artifacts)
		session.LastOutcome = outcome
		return outcome
	}

	for _, kind := range kinds {
		outcome.Artifacts = append(outcome.Artifacts, g.generateArtifact(ctx, kind, req))
	}

	succeeded := 0
	for _, artifact := range outcome.Artifacts {
		if artifact.Status == models.ArtifactSucceeded {
			succeeded++
		}
	}

	switch {
	case succeeded == len(outcome.Artifacts):
		outcome.Status = models.StatusSucceeded
	case succeeded > 0:
		outcome.Status = models.StatusPartiallyFailed
	default:
		outcome.Status = models.StatusFailed
		outcome.Message = outcome.Artifacts[0].ErrorMessage
	}

	g.logger.Info("generation finished",
		zap.String("session_id", session.ID.String()),
		zap.String("status", string(outcome.Status)),
		zap.Int("artifacts", len(outcome.Artifacts)),
	)

	session.LastOutcome = outcome
	return outcome
}

// generateArtifact runs one artifact end to end. Faults stay inside this
// scope so a failing resume never blocks the cover letter, and vice versa.
func (g *generatorService) generateArtifact(ctx context.Context, kind models.ArtifactKind, req *models.GenerateRequest) models.ArtifactResult {
	result := models.ArtifactResult{Kind: kind}

	switch kind {
	case models.ArtifactResume:
		prompt := g.prompts.BuildResumePrompt(req.Candidate, req.JobDescription)
		raw, err := g.gemini.GenerateText(ctx, prompt, resumeMaxOutputTokens, ResumeResponseSchema())
		if err != nil {
			return g.failArtifact(result, err)
		}

		resume, err := g.interpreter.InterpretResume(raw)
		if err != nil {
			var malformed *models.MalformedOutputError
			if errors.As(err, &malformed) {
				result.Status = models.ArtifactFailed
				result.ErrorMessage = malformed.Error()
				result.Resume = FallbackResumeResult(malformed)
				result.RawOutput = malformed.Raw
				return result
			}
			return g.failArtifact(result, err)
		}

		result.Status = models.ArtifactSucceeded
		result.Resume = resume
		return result

	case models.ArtifactCoverLetter:
		prompt := g.prompts.BuildCoverLetterPrompt(req.Candidate, req.JobDescription)
		raw, err := g.gemini.GenerateText(ctx, prompt, coverLetterMaxOutputTokens, nil)
		if err != nil {
			return g.failArtifact(result, err)
		}

		result.Status = models.ArtifactSucceeded
		result.CoverLetter = g.interpreter.InterpretCoverLetter(raw)
		return result
	}

	result.Status = models.ArtifactFailed
	result.ErrorMessage = "unknown artifact kind: " + string(kind)
	return result
}

func (g *generatorService) failArtifact(result models.ArtifactResult, err error) models.ArtifactResult {
	g.logger.Warn("artifact generation failed",
		zap.String("kind", string(result.Kind)),
		zap.Error(err),
	)
	result.Status = models.ArtifactFailed
	result.ErrorMessage = err.Error()
	return result
}

// checkRequired consolidates all missing required fields into one message.
func (g *generatorService) checkRequired(req *models.GenerateRequest) error {
	err := g.validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	labels := map[string]string{
		"Name":           "Full Name",
		"Summary":        "Resume Content (Summary)",
		"JobDescription": "Job Description",
	}

	var missing []string
	for _, fe := range fieldErrs {
		if label, ok := labels[fe.Field()]; ok {
			missing = append(missing, label)
		} else {
			missing = append(missing, fe.Field())
		}
	}

	return &models.ValidationError{Missing: missing}
}
