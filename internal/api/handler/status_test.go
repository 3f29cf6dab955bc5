package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/quantumcreationsapp-ai/fightlabai-backend/internal/store"
	"github.com/quantumcreationsapp-ai/fightlabai-backend/pkg/models"
)

type fakeJobGetter map[uuid.UUID]*models.Job

func (f fakeJobGetter) GetJob(_ context.Context, id uuid.UUID) (*models.Job, error) {
	job, ok := f[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *job
	return &cp, nil
}

func getStatus(t *testing.T, jobs fakeJobGetter, id string) *httptest.ResponseRecorder {
	t.Helper()
	r := chi.NewRouter()
	r.Get("/api/analysis/status/{id}", NewStatusHandler(jobs))

	req := httptest.NewRequest(http.MethodGet, "/api/analysis/status/"+id, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestStatusHandlerProcessing(t *testing.T) {
	job := &models.Job{
		ID:       uuid.New(),
		Status:   models.JobStatusProcessing,
		Progress: 30,
	}
	rec := getStatus(t, fakeJobGetter{job.ID: job}, job.ID.String())

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp["status"] != models.JobStatusProcessing {
		t.Errorf("status = %v, want processing", resp["status"])
	}
	if resp["progress"] != float64(30) {
		t.Errorf("progress = %v, want 30", resp["progress"])
	}
	// Refund fields only appear on failed jobs.
	if _, ok := resp["shouldRefund"]; ok {
		t.Error("processing status carries refund fields")
	}
}

func TestStatusHandlerFailed(t *testing.T) {
	job := &models.Job{
		ID:           uuid.New(),
		Status:       models.JobStatusFailed,
		Progress:     30,
		Error:        "model timeout",
		ShouldRefund: true,
		RefundReason: "Analysis took too long. Please try a shorter video.",
	}
	rec := getStatus(t, fakeJobGetter{job.ID: job}, job.ID.String())

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (failure is a valid poll result)", rec.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp["shouldRefund"] != true {
		t.Errorf("shouldRefund = %v, want true", resp["shouldRefund"])
	}
	if resp["refundReason"] != job.RefundReason {
		t.Errorf("refundReason = %v", resp["refundReason"])
	}
	if resp["error"] != "model timeout" {
		t.Errorf("error = %v", resp["error"])
	}
	if resp["message"] != job.RefundReason {
		t.Errorf("message = %v, want the refund reason", resp["message"])
	}
}

func TestStatusHandlerCompleted(t *testing.T) {
	job := &models.Job{
		ID:        uuid.New(),
		Status:    models.JobStatusCompleted,
		Progress:  100,
		Report:    &models.Report{},
		UpdatedAt: time.Now().UTC(),
	}
	rec := getStatus(t, fakeJobGetter{job.ID: job}, job.ID.String())

	var resp map[string]any
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["status"] != models.JobStatusCompleted {
		t.Errorf("status = %v, want completed", resp["status"])
	}
	if resp["progress"] != float64(100) {
		t.Errorf("progress = %v, want 100", resp["progress"])
	}
}

func TestStatusHandlerUnknownJob(t *testing.T) {
	rec := getStatus(t, fakeJobGetter{}, uuid.NewString())
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestStatusHandlerMalformedID(t *testing.T) {
	rec := getStatus(t, fakeJobGetter{}, "not-a-uuid")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404 for an unparseable id", rec.Code)
	}
}
