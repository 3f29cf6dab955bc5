// Package ai orchestrates the analysis job lifecycle: prompt assembly, the
// model round trip, JSON extraction, normalization, and terminal job state.
package ai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/quantumcreationsapp-ai/fightlabai-backend/internal/cache"
	"github.com/quantumcreationsapp-ai/fightlabai-backend/internal/metrics"
	"github.com/quantumcreationsapp-ai/fightlabai-backend/internal/prompt"
	"github.com/quantumcreationsapp-ai/fightlabai-backend/internal/report"
	"github.com/quantumcreationsapp-ai/fightlabai-backend/internal/store"
	"github.com/quantumcreationsapp-ai/fightlabai-backend/pkg/models"
)

const statusCacheTTL = 30 * time.Minute

// Coarse progress checkpoints written by the background task. Status, not
// progress, is authoritative for completion.
const (
	progressStarted     = 10
	progressModelCall   = 30
	progressNormalizing = 90
)

// Service owns analysis jobs from submission to terminal state.
type Service struct {
	provider models.VisionProvider
	store    store.Store
	cache    cache.Cache
	timeout  time.Duration
}

// NewService creates a Service. timeout bounds the model round trip per job.
func NewService(provider models.VisionProvider, st store.Store, ca cache.Cache, timeout time.Duration) *Service {
	return &Service{
		provider: provider,
		store:    st,
		cache:    ca,
		timeout:  timeout,
	}
}

// StartAnalysis creates a processing job and dispatches the analysis in a
// background goroutine. Returns the job immediately; the expensive work
// happens after the HTTP response is sent. Zero frames is rejected
// synchronously with ErrNoFrames and no job is created.
func (s *Service) StartAnalysis(ctx context.Context, cfg *models.AnalysisConfig, frames [][]byte) (*models.Job, error) {
	if len(frames) == 0 {
		return nil, ErrNoFrames
	}

	now := time.Now().UTC()
	job := &models.Job{
		ID:        uuid.New(),
		Status:    models.JobStatusProcessing,
		Progress:  0,
		Config:    *cfg,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.store.CreateJob(ctx, job); err != nil {
		return nil, fmt.Errorf("creating job: %w", err)
	}
	_ = s.cache.SetJobStatus(ctx, job.ID, models.JobStatusProcessing, statusCacheTTL)
	metrics.JobsSubmitted.Inc()

	go s.runAnalysis(job.ID, *cfg, frames)

	return job, nil
}

// runAnalysis performs one analysis in a goroutine. It recovers from panics
// and always leaves the job in a terminal state. The goroutine's lifetime is
// scoped to the process, never to the request that spawned it.
func (s *Service) runAnalysis(jobID uuid.UUID, cfg models.AnalysisConfig, frames [][]byte) {
	ctx := context.Background()

	defer func() {
		if r := recover(); r != nil {
			slog.Error("panic in runAnalysis", "error", r, "job_id", jobID)
			s.failJob(ctx, jobID, fmt.Errorf("panic: %v", r))
		}
	}()

	_ = s.store.SetProgress(ctx, jobID, progressStarted)

	raw, err := s.callModel(ctx, jobID, &cfg, frames)
	frames = nil // frame buffers are owned by this task; drop them the moment the call returns
	if err != nil {
		s.failJob(ctx, jobID, err)
		return
	}

	_ = s.store.SetProgress(ctx, jobID, progressNormalizing)

	obj, err := ExtractJSON(raw)
	if err != nil {
		s.failJob(ctx, jobID, err)
		return
	}

	rep := report.Build(jobID, &cfg, obj, time.Now().UTC())

	if err := s.store.CompleteJob(ctx, jobID, rep); err != nil {
		slog.Error("recording completion", "job_id", jobID, "error", err)
		return
	}
	_ = s.cache.SetJobStatus(ctx, jobID, models.JobStatusCompleted, statusCacheTTL)
	metrics.JobsCompleted.Inc()
	slog.Info("analysis completed", "job_id", jobID, "provider", s.provider.Name())
}

// callModel samples frames, builds the prompt, and performs exactly one model
// round trip under the configured wall-clock timeout.
func (s *Service) callModel(ctx context.Context, jobID uuid.UUID, cfg *models.AnalysisConfig, frames [][]byte) (string, error) {
	sampled := SampleFrames(frames, MaxFramesPerRequest)
	text := prompt.Builder{}.Build(cfg, len(sampled))

	_ = s.store.SetProgress(ctx, jobID, progressModelCall)

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	raw, err := s.provider.Generate(callCtx, models.GenerationRequest{
		Prompt:   text,
		Frames:   sampled,
		MIMEType: "image/jpeg",
	})
	metrics.ObserveModelRequest(time.Since(start))

	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) && !errors.Is(err, models.ErrTimeout) {
			return "", fmt.Errorf("%w: %v", models.ErrTimeout, err)
		}
		return "", err
	}
	return raw, nil
}

// failJob records the terminal failure with its refund classification.
func (s *Service) failJob(ctx context.Context, jobID uuid.UUID, err error) {
	label, reason := ClassifyFailure(err)
	if serr := s.store.FailJob(ctx, jobID, err.Error(), true, reason); serr != nil {
		slog.Error("recording job failure", "job_id", jobID, "error", serr)
	}
	_ = s.cache.SetJobStatus(ctx, jobID, models.JobStatusFailed, statusCacheTTL)
	metrics.JobsFailed.WithLabelValues(label).Inc()
	slog.Error("analysis failed", "job_id", jobID, "reason", label, "error", err)
}

// ClassifyFailure maps a background-task error to a metrics label and a
// user-facing refund reason. All server-side failures are refundable.
func ClassifyFailure(err error) (label, refundReason string) {
	switch {
	case errors.Is(err, models.ErrTimeout):
		return "timeout", "Analysis took too long. Please try a shorter video."
	case errors.Is(err, models.ErrRateLimited):
		return "rate_limited", "The analysis service is busy right now. Please retry in a few minutes."
	case errors.Is(err, models.ErrServiceUnavailable):
		return "service_unavailable", "The analysis service is temporarily unavailable. Please try again later."
	case errors.Is(err, models.ErrMalformedResponse):
		return "malformed_response", "The analysis produced an invalid response. Please try again."
	case errors.Is(err, models.ErrBadRequest):
		return "bad_request", "The analysis request was rejected. Please try again."
	case errors.Is(err, models.ErrAPI):
		return "api_error", "An unexpected analysis error occurred. Please try again."
	default:
		return "internal", "An unexpected server error occurred. Please try again."
	}
}
