package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"ai-resume-generator/internal/models"
	"ai-resume-generator/internal/services"
)

type SessionHandler struct {
	store services.SessionStore
}

func NewSessionHandler(store services.SessionStore) *SessionHandler {
	return &SessionHandler{store: store}
}

// HandleCreateSession handles POST /sessions
func (h *SessionHandler) HandleCreateSession(c *fiber.Ctx) error {
	session := h.store.Create()

	return c.Status(fiber.StatusCreated).JSON(models.SessionResponse{
		ID:        session.ID.String(),
		CreatedAt: session.CreatedAt,
	})
}

// HandleGetResult handles GET /sessions/:id/result
func (h *SessionHandler) HandleGetResult(c *fiber.Ctx) error {
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

	if session.LastOutcome == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "No generation has been run for this session",
		})
	}

	return c.JSON(buildGenerateResponse(session, session.LastOutcome))
}
