package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"ai-resume-generator/internal/models"
)

// TextGenerator sends one prompt to the generation backend and returns its
// text. With a schema the backend is asked for a JSON-formatted response.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string, maxOutputTokens int32, schema *genai.Schema) (string, error)
}

type geminiService struct {
	apiKey    string
	modelName string
	logger    *zap.Logger

	mu     sync.Mutex
	client *genai.Client
}

func NewGeminiService(apiKey, modelName string, logger *zap.Logger) TextGenerator {
	return &geminiService{
		apiKey:    apiKey,
		modelName: modelName,
		logger:    logger,
	}
}

// ensureClient builds the genai client on first use. The credential is
// checked here, not at startup.
func (g *geminiService) ensureClient(ctx context.Context) (*genai.Client, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.client != nil {
		return g.client, nil
	}

	if strings.TrimSpace(g.apiKey) == "" {
		return nil, models.ErrMissingAPIKey
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  g.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, &models.TransportError{
			Category: "client",
			Err:      fmt.Errorf("failed to create gemini client: %w", err),
		}
	}

	g.client = client
	return client, nil
}

// GenerateText implements TextGenerator.
func (g *geminiService) GenerateText(ctx context.Context, prompt string, maxOutputTokens int32, schema *genai.Schema) (string, error) {
	client, err := g.ensureClient(ctx)
	if err != nil {
		return "", err
	}

	// Temperature 0 favors reproducible output over creativity.
	temperature := float32(0)
	config := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: maxOutputTokens,
	}

	if schema != nil {
		config.ResponseMIMEType = "application/json"
		config.ResponseSchema = schema
	}

	resp, err := client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), config)
	if err != nil {
		category := "transport"
		var apiErr genai.APIError
		if errors.As(err, &apiErr) {
			category = apiErr.Status
		}
		g.logger.Error("gemini call failed",
			zap.String("category", category),
			zap.Error(err),
		)
		return "", &models.TransportError{Category: category, Err: err}
	}

	if resp == nil {
		return "", &models.TransportError{
			Category: "backend",
			Err:      errors.New("nil response from gemini"),
		}
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		blocked, reason := blockReason(resp)
		g.logger.Warn("gemini returned empty output",
			zap.Bool("blocked", blocked),
			zap.String("reason", reason),
		)
		return "", &models.EmptyOutputError{Blocked: blocked, Reason: reason}
	}

	return text, nil
}

// blockReason inspects candidates for an explicit safety or policy block.
func blockReason(resp *genai.GenerateContentResponse) (bool, string) {
	for _, candidate := range resp.Candidates {
		if candidate == nil {
			continue
		}
		switch candidate.FinishReason {
		case genai.FinishReasonSafety, genai.FinishReasonRecitation:
			return true, string(candidate.FinishReason)
		}
	}
	return false, ""
}
