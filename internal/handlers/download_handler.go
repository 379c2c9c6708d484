package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"ai-resume-generator/internal/models"
	"ai-resume-generator/internal/services"
)

const (
	contentTypeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	contentTypePDF  = "application/pdf"
)

type DownloadHandler struct {
	store  services.SessionStore
	export services.ExportService
}

func NewDownloadHandler(store services.SessionStore, export services.ExportService) *DownloadHandler {
	return &DownloadHandler{store: store, export: export}
}

// HandleDownload handles GET /sessions/:id/artifacts/:kind/download?format=docx|pdf
func (h *DownloadHandler) HandleDownload(c *fiber.Ctx) error {
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

	kind, ok := artifactKindParam(c.Params("kind"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unknown artifact kind. Use 'resume' or 'cover_letter'",
		})
	}

	format := c.Query("format", formatDOCX)
	if format != formatDOCX && format != formatPDF {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unknown format. Use 'docx' or 'pdf'",
		})
	}

	if session.LastOutcome == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "No generation has been run for this session",
		})
	}

	artifact := session.LastOutcome.Artifact(kind)
	if artifact == nil || artifact.Status != models.ArtifactSucceeded {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": fmt.Sprintf("No successful %s available for download", kind),
		})
	}

	title := fmt.Sprintf("%s - %s", session.Candidate.Name, kind)
	body := artifact.Body()

	var blob []byte
	var contentType string
	switch format {
	case formatPDF:
		blob, err = h.export.BuildPDF(title, body)
		contentType = contentTypePDF
	default:
		blob, err = h.export.BuildDOCX(title, body)
		contentType = contentTypeDOCX
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to build %s document: %v", format, err),
		})
	}

	c.Attachment(kind.FileName(session.Candidate.Name, format))
	c.Set(fiber.HeaderContentType, contentType)
	return c.Send(blob)
}
