package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"ai-resume-generator/internal/models"
	"ai-resume-generator/internal/services"
)

type GenerateHandler struct {
	store     services.SessionStore
	generator services.GeneratorService
}

func NewGenerateHandler(store services.SessionStore, generator services.GeneratorService) *GenerateHandler {
	return &GenerateHandler{store: store, generator: generator}
}

// HandleGenerate handles POST /sessions/:id/generate. Fields absent from the
// payload fall back to values the session picked up from uploads.
func (h *GenerateHandler) HandleGenerate(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid session ID format",
		})
	}

	session, err := h.store.Get(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Session not found",
		})
	}

	var req models.GenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.Candidate.Summary == "" {
		req.Candidate.Summary = session.Candidate.Summary
	}
	if req.JobDescription == "" {
		req.JobDescription = session.JobDescription
	}

	outcome := h.generator.Generate(c.Context(), session, &req)

	status := fiber.StatusOK
	if outcome.Status == models.StatusRejected {
		status = fiber.StatusUnprocessableEntity
	}

	return c.Status(status).JSON(buildGenerateResponse(session, outcome))
}
