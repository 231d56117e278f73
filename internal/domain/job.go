package domain

import (
	"time"

	"github.com/google/uuid"
)

// Export job statuses.
const (
	JobStatusCompleted = "completed"
	JobStatusFailed    = "failed"
)

// Export formats.
const (
	FormatHTML = "html"
	FormatPDF  = "pdf"
	FormatDOCX = "docx"
)

// ExportJob records one resume export. It carries no resume content, only
// what is needed to trace a download.
type ExportJob struct {
	ID            uuid.UUID              `json:"id"`
	Format        string                 `json:"format"`
	CandidateName string                 `json:"candidate_name"`
	TargetJob     string                 `json:"target_job"`
	Status        string                 `json:"status"`
	Metadata      map[string]interface{} `json:"metadata"`
	CreatedAt     time.Time              `json:"created_at"`
	UpdatedAt     time.Time              `json:"updated_at"`
}

func NewExportJob(format, candidateName, targetJob string) *ExportJob {
	now := time.Now().UTC()
	return &ExportJob{
		ID:            uuid.New(),
		Format:        format,
		CandidateName: candidateName,
		TargetJob:     targetJob,
		Status:        JobStatusCompleted,
		Metadata:      map[string]interface{}{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
