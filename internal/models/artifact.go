package models

import (
	"fmt"
	"time"
)

// CandidateInfo holds the free-form fields of the input form. Summary is
// expected to carry the full resume prose.
type CandidateInfo struct {
	Name       string `json:"name" validate:"required"`
	Contact    string `json:"contact"`
	Summary    string `json:"summary" validate:"required"`
	Skills     string `json:"skills"`
	Experience string `json:"experience"`
	Education  string `json:"education"`
}

type ArtifactKind string

const (
	ArtifactResume      ArtifactKind = "Resume"
	ArtifactCoverLetter ArtifactKind = "CoverLetter"
)

// FileName builds the download name, e.g. "Jane Doe_Resume.docx".
func (k ArtifactKind) FileName(candidateName, format string) string {
	return fmt.Sprintf("%s_%s.%s", candidateName, k, format)
}

// ArtifactChoice is the user's selection of what to generate.
type ArtifactChoice string

const (
	ChoiceResume      ArtifactChoice = "resume"
	ChoiceCoverLetter ArtifactChoice = "cover_letter"
	ChoiceBoth        ArtifactChoice = "both"
)

// Kinds expands the choice into the artifacts to produce, resume first.
func (c ArtifactChoice) Kinds() []ArtifactKind {
	switch c {
	case ChoiceResume:
		return []ArtifactKind{ArtifactResume}
	case ChoiceCoverLetter:
		return []ArtifactKind{ArtifactCoverLetter}
	case ChoiceBoth:
		return []ArtifactKind{ArtifactResume, ArtifactCoverLetter}
	}
	return nil
}

// ATSScoreUnavailable is the sentinel shown when the model omitted a score.
const ATSScoreUnavailable = "N/A"

// ResumeTextNotFound marks a structurally valid response without resume text.
const ResumeTextNotFound = "Error: resume text not found in model output."

// ResumeResult is the decoded JSON-shaped resume response.
type ResumeResult struct {
	ATSScore   string   `json:"ats_score"`
	Keywords   []string `json:"keywords"`
	ResumeText string   `json:"resume_text"`
}

type ArtifactStatus string

const (
	ArtifactSucceeded ArtifactStatus = "succeeded"
	ArtifactFailed    ArtifactStatus = "failed"
)

// ArtifactResult is the per-artifact outcome of one generation attempt.
// RawOutput keeps the unparsed model payload when decoding failed.
type ArtifactResult struct {
	Kind         ArtifactKind   `json:"kind"`
	Status       ArtifactStatus `json:"status"`
	Resume       *ResumeResult  `json:"resume,omitempty"`
	CoverLetter  string         `json:"cover_letter,omitempty"`
	ErrorMessage string         `json:"error_message,omitempty"`
	RawOutput    string         `json:"raw_output,omitempty"`
}

// Body returns the exportable text of a succeeded artifact.
func (r *ArtifactResult) Body() string {
	if r.Kind == ArtifactResume && r.Resume != nil {
		return r.Resume.ResumeText
	}
	return r.CoverLetter
}

type OutcomeStatus string

const (
	StatusRejected        OutcomeStatus = "rejected"
	StatusSucceeded       OutcomeStatus = "succeeded"
	StatusPartiallyFailed OutcomeStatus = "partially_failed"
	StatusFailed          OutcomeStatus = "failed"
)

// GenerationOutcome aggregates one submission's results.
type GenerationOutcome struct {
	Status      OutcomeStatus    `json:"status"`
	Message     string           `json:"message,omitempty"`
	Artifacts   []ArtifactResult `json:"artifacts,omitempty"`
	GeneratedAt time.Time        `json:"generated_at"`
}

// Artifact returns the result for the given kind, or nil.
func (o *GenerationOutcome) Artifact(kind ArtifactKind) *ArtifactResult {
	for i := range o.Artifacts {
		if o.Artifacts[i].Kind == kind {
			return &o.Artifacts[i]
		}
	}
	return nil
}
