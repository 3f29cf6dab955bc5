package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/quantumcreationsapp-ai/fightlabai-backend/internal/api/response"
	"github.com/quantumcreationsapp-ai/fightlabai-backend/internal/store"
	"github.com/quantumcreationsapp-ai/fightlabai-backend/pkg/models"
)

// JobGetter defines the read side of the job store the polling handlers
// depend on.
type JobGetter interface {
	GetJob(ctx context.Context, id uuid.UUID) (*models.Job, error)
}

type statusResponse struct {
	Status       string `json:"status"`
	Progress     int    `json:"progress"`
	Message      string `json:"message"`
	ShouldRefund *bool  `json:"shouldRefund,omitempty"`
	RefundReason string `json:"refundReason,omitempty"`
	Error        string `json:"error,omitempty"`
}

// NewStatusHandler returns an http.HandlerFunc for GET /api/analysis/status/{id}.
// Polling clients always receive a well-formed body, including after failure.
func NewStatusHandler(st JobGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		job, ok := lookupJob(w, r, st)
		if !ok {
			return
		}

		resp := statusResponse{
			Status:   job.Status,
			Progress: job.Progress,
			Message:  statusMessage(job),
		}
		if job.Status == models.JobStatusFailed {
			refund := job.ShouldRefund
			resp.ShouldRefund = &refund
			resp.RefundReason = job.RefundReason
			resp.Error = job.Error
		}

		response.JSON(w, http.StatusOK, resp)
	}
}

// lookupJob resolves the {id} path parameter, writing a 404 for unknown or
// unparseable ids. A malformed id can never name a job, so it is reported the
// same way as a missing one.
func lookupJob(w http.ResponseWriter, r *http.Request, st JobGetter) (*models.Job, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, http.StatusNotFound, "NOT_FOUND", "No analysis with that id")
		return nil, false
	}

	job, err := st.GetJob(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			response.Error(w, http.StatusNotFound, "NOT_FOUND", "No analysis with that id")
			return nil, false
		}
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Could not load the analysis")
		return nil, false
	}
	return job, true
}

func statusMessage(job *models.Job) string {
	switch job.Status {
	case models.JobStatusCompleted:
		return "Analysis complete. Fetch the report from the report endpoint."
	case models.JobStatusFailed:
		if job.RefundReason != "" {
			return job.RefundReason
		}
		return "Analysis failed."
	default:
		return fmt.Sprintf("Analysis in progress (%d%%).", job.Progress)
	}
}
