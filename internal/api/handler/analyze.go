package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/quantumcreationsapp-ai/fightlabai-backend/internal/ai"
	"github.com/quantumcreationsapp-ai/fightlabai-backend/internal/api/response"
	"github.com/quantumcreationsapp-ai/fightlabai-backend/pkg/models"
)

const (
	maxFrameCount   = 100
	maxFrameBytes   = 10 << 20 // 10MB per frame
	maxUploadMemory = 32 << 20 // multipart parse buffer; larger parts spill to disk
)

// AnalysisStarter defines the interface the analyze handler depends on.
type AnalysisStarter interface {
	StartAnalysis(ctx context.Context, cfg *models.AnalysisConfig, frames [][]byte) (*models.Job, error)
}

type analyzeResponse struct {
	// Both spellings are emitted; older client builds read analysisID.
	AnalysisID       string `json:"analysisId"`
	AnalysisIDCompat string `json:"analysisID"`
	Status           string `json:"status"`
	Message          string `json:"message"`
}

// NewAnalyzeHandler returns an http.HandlerFunc for POST /analyze. The
// response carries the job id immediately; processing happens in the
// background.
func NewAnalyzeHandler(svc AnalysisStarter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
			response.Error(w, http.StatusBadRequest, "INVALID_REQUEST",
				"Request must be multipart/form-data with a frames field")
			return
		}
		defer r.MultipartForm.RemoveAll()

		files := r.MultipartForm.File["frames"]
		if len(files) == 0 {
			response.Error(w, http.StatusBadRequest, "NO_FRAMES",
				"At least one frame image is required")
			return
		}
		if len(files) > maxFrameCount {
			response.Error(w, http.StatusBadRequest, "TOO_MANY_FRAMES",
				fmt.Sprintf("At most %d frames are accepted, got %d", maxFrameCount, len(files)))
			return
		}

		frames := make([][]byte, 0, len(files))
		for i, fh := range files {
			if fh.Size > maxFrameBytes {
				response.Error(w, http.StatusBadRequest, "FRAME_TOO_LARGE",
					fmt.Sprintf("Frame %d exceeds the 10MB limit", i+1))
				return
			}
			data, err := readFrame(fh)
			if err != nil {
				response.Error(w, http.StatusBadRequest, "INVALID_FRAME",
					fmt.Sprintf("Frame %d could not be read", i+1))
				return
			}
			frames = append(frames, data)
		}

		var cfg models.AnalysisConfig
		if raw := r.FormValue("config"); raw != "" {
			if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
				response.Error(w, http.StatusBadRequest, "INVALID_CONFIG",
					"config must be a JSON object")
				return
			}
		}

		job, err := svc.StartAnalysis(r.Context(), &cfg, frames)
		if err != nil {
			if errors.Is(err, ai.ErrNoFrames) {
				response.Error(w, http.StatusBadRequest, "NO_FRAMES",
					"At least one frame image is required")
				return
			}
			response.Error(w, http.StatusInternalServerError, "SUBMISSION_FAILED",
				"Could not start the analysis; please try again")
			return
		}

		response.JSON(w, http.StatusOK, analyzeResponse{
			AnalysisID:       job.ID.String(),
			AnalysisIDCompat: job.ID.String(),
			Status:           job.Status,
			Message:          "Analysis started. Poll the status endpoint for progress.",
		})
	}
}

func readFrame(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
