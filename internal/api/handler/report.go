package handler

import (
	"net/http"

	"github.com/quantumcreationsapp-ai/fightlabai-backend/internal/api/response"
	"github.com/quantumcreationsapp-ai/fightlabai-backend/pkg/models"
)

type pendingResponse struct {
	Message  string `json:"message"`
	Status   string `json:"status"`
	Progress int    `json:"progress"`
}

// NewReportHandler returns an http.HandlerFunc for GET /analysis/{id} and its
// /api/analysis/report/{id} alias. Completed jobs return the full report;
// anything else returns 202 with the current status so clients keep polling
// the status endpoint for detail.
func NewReportHandler(st JobGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		job, ok := lookupJob(w, r, st)
		if !ok {
			return
		}

		if job.Status == models.JobStatusCompleted {
			response.JSON(w, http.StatusOK, job.Report)
			return
		}

		response.JSON(w, http.StatusAccepted, pendingResponse{
			Message:  statusMessage(job),
			Status:   job.Status,
			Progress: job.Progress,
		})
	}
}
