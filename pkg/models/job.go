package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	JobStatusProcessing = "processing"
	JobStatusCompleted  = "completed"
	JobStatusFailed     = "failed"
)

// Job tracks one submitted analysis and its asynchronous lifecycle. The API
// returns the job ID on POST /analyze; the client polls the status and report
// endpoints until the job is completed or failed.
//
// Exactly one of Report and Error is set once the job is terminal, keyed by
// Status. Progress is meaningful only while processing; Status is
// authoritative for completion.
type Job struct {
	ID           uuid.UUID      `json:"id"`
	Status       string         `json:"status"`
	Progress     int            `json:"progress"`
	Config       AnalysisConfig `json:"config"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	Report       *Report        `json:"report,omitempty"`
	Error        string         `json:"error,omitempty"`
	ShouldRefund bool           `json:"should_refund,omitempty"`
	RefundReason string         `json:"refund_reason,omitempty"`
}

// Terminal reports whether the job has reached a final state.
func (j *Job) Terminal() bool {
	return j.Status == JobStatusCompleted || j.Status == JobStatusFailed
}
