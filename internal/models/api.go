package models

import "time"

type SessionResponse struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

// UploadSlotResult reports extraction for one upload slot. CacheHit is true
// when the file's fingerprint matched the cached one and no re-extraction ran.
type UploadSlotResult struct {
	Slot     string `json:"slot"`
	Status   string `json:"status"`
	Text     string `json:"text,omitempty"`
	CacheHit bool   `json:"cache_hit"`
	Message  string `json:"message,omitempty"`
}

type UploadResponse struct {
	SessionID string             `json:"session_id"`
	Results   []UploadSlotResult `json:"results"`
}

type GenerateRequest struct {
	Candidate      CandidateInfo  `json:"candidate"`
	JobDescription string         `json:"job_description" validate:"required"`
	Artifacts      ArtifactChoice `json:"artifacts"`
}

type GenerateResponse struct {
	SessionID   string             `json:"session_id"`
	Status      string             `json:"status"`
	Message     string             `json:"message,omitempty"`
	Artifacts   []ArtifactResponse `json:"artifacts,omitempty"`
	GeneratedAt time.Time          `json:"generated_at"`
}

// ArtifactResponse is the rendered view of one artifact: preview text,
// ATS analysis for resumes, and download links when export is possible.
type ArtifactResponse struct {
	Kind           string         `json:"kind"`
	Status         string         `json:"status"`
	ATSScore       string         `json:"ats_score,omitempty"`
	Keywords       []string       `json:"keywords,omitempty"`
	KeywordSummary string         `json:"keyword_summary,omitempty"`
	Preview        string         `json:"preview,omitempty"`
	ErrorMessage   string         `json:"error_message,omitempty"`
	RawOutput      string         `json:"raw_output,omitempty"`
	Downloads      []DownloadLink `json:"downloads,omitempty"`
}

type DownloadLink struct {
	Format   string `json:"format"`
	FileName string `json:"file_name"`
	URL      string `json:"url"`
}
