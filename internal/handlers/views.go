package handlers

import (
	"fmt"
	"strings"

	"ai-resume-generator/internal/models"
	"ai-resume-generator/internal/services"
)

const (
	formatDOCX = "docx"
	formatPDF  = "pdf"
)

// artifactKindParam maps the :kind route segment to an artifact kind.
func artifactKindParam(param string) (models.ArtifactKind, bool) {
	switch param {
	case "resume":
		return models.ArtifactResume, true
	case "cover_letter", "cover-letter":
		return models.ArtifactCoverLetter, true
	}
	return "", false
}

func artifactKindPath(kind models.ArtifactKind) string {
	if kind == models.ArtifactCoverLetter {
		return "cover_letter"
	}
	return "resume"
}

// buildGenerateResponse renders an outcome into the API view, attaching
// download links only to succeeded artifacts.
func buildGenerateResponse(session *services.Session, outcome *models.GenerationOutcome) models.GenerateResponse {
	resp := models.GenerateResponse{
		SessionID:   session.ID.String(),
		Status:      string(outcome.Status),
		Message:     outcome.Message,
		GeneratedAt: outcome.GeneratedAt,
	}

	for i := range outcome.Artifacts {
		artifact := &outcome.Artifacts[i]

		view := models.ArtifactResponse{
			Kind:         string(artifact.Kind),
			Status:       string(artifact.Status),
			Preview:      artifact.Body(),
			ErrorMessage: artifact.ErrorMessage,
			RawOutput:    artifact.RawOutput,
		}

		if artifact.Resume != nil {
			view.ATSScore = artifact.Resume.ATSScore
			view.Keywords = artifact.Resume.Keywords
			view.KeywordSummary = strings.Join(artifact.Resume.Keywords, ", ")
		}

		if artifact.Status == models.ArtifactSucceeded {
			for _, format := range []string{formatDOCX, formatPDF} {
				view.Downloads = append(view.Downloads, models.DownloadLink{
					Format:   format,
					FileName: artifact.Kind.FileName(session.Candidate.Name, format),
					URL: fmt.Sprintf("/api/v1/sessions/%s/artifacts/%s/download?format=%s",
						session.ID, artifactKindPath(artifact.Kind), format),
				})
			}
		}

		resp.Artifacts = append(resp.Artifacts, view)
	}

	return resp
}
