package handlers

import (
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"ai-resume-generator/internal/models"
	"ai-resume-generator/internal/services"
)

type UploadHandler struct {
	store       services.SessionStore
	extractor   services.ExtractorService
	maxFileSize int64
}

func NewUploadHandler(
	store services.SessionStore,
	extractor services.ExtractorService,
	maxFileSize int64,
) *UploadHandler {
	return &UploadHandler{
		store:       store,
		extractor:   extractor,
		maxFileSize: maxFileSize,
	}
}

// HandleUpload handles POST /sessions/:id/upload. The multipart form may
// carry a "resume" file and/or a "job_description" file; extracted text
// prefills the matching form field. Each slot caches by content fingerprint
// so re-attaching an unchanged file skips extraction.
func (h *UploadHandler) HandleUpload(c *fiber.Ctx) error {
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

	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "failed to parse multipart form",
		})
	}

	var results []models.UploadSlotResult

	for _, slot := range []services.Slot{services.SlotResume, services.SlotJobDescription} {
		files, exists := form.File[string(slot)]
		if !exists || len(files) == 0 {
			continue
		}
		file := files[0]

		if file.Size > h.maxFileSize {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("%s file too large. Max size: %d bytes", slot, h.maxFileSize),
			})
		}

		src, err := file.Open()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": fmt.Sprintf("failed to open uploaded %s file: %v", slot, err),
			})
		}
		data, err := io.ReadAll(src)
		src.Close()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": fmt.Sprintf("failed to read uploaded %s file: %v", slot, err),
			})
		}

		results = append(results, h.processSlot(session, slot, data, file.Filename))
	}

	if len(results) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No valid files uploaded. Provide 'resume' and/or 'job_description' as TXT or DOCX files.",
		})
	}

	return c.JSON(models.UploadResponse{
		SessionID: session.ID.String(),
		Results:   results,
	})
}

func (h *UploadHandler) processSlot(session *services.Session, slot services.Slot, data []byte, filename string) models.UploadSlotResult {
	fingerprint := services.Fingerprint(data)

	if text, ok := session.CachedExtraction(slot, fingerprint); ok {
		applyExtractedText(session, slot, text)
		return models.UploadSlotResult{
			Slot:     string(slot),
			Status:   string(services.ExtractionOK),
			Text:     text,
			CacheHit: true,
		}
	}

	extraction, err := h.extractor.Extract(data, filename)
	if err != nil {
		// Extraction failure degrades to a visible message, never a fault.
		return models.UploadSlotResult{
			Slot:    string(slot),
			Status:  "error",
			Message: fmt.Sprintf("Error processing %s: %v", filename, err),
		}
	}

	if extraction.Status == services.ExtractionOK {
		session.StoreExtraction(slot, fingerprint, extraction.Text)
		applyExtractedText(session, slot, extraction.Text)
	}

	return models.UploadSlotResult{
		Slot:    string(slot),
		Status:  string(extraction.Status),
		Text:    extraction.Text,
		Message: extraction.Message,
	}
}

// applyExtractedText prefills the session field the slot feeds.
func applyExtractedText(session *services.Session, slot services.Slot, text string) {
	switch slot {
	case services.SlotResume:
		session.Candidate.Summary = text
	case services.SlotJobDescription:
		session.JobDescription = text
	}
}
