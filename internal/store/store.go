// Package store holds the process-scoped job store. Jobs live in memory for
// the life of the process; terminal jobs are reaped after a TTL.
package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/quantumcreationsapp-ai/fightlabai-backend/pkg/models"
)

var (
	ErrNotFound = errors.New("job not found")
	// ErrTerminal is returned on any attempt to mutate a job that has
	// already completed or failed. No transition out of a terminal state
	// exists.
	ErrTerminal = errors.New("job already in a terminal state")
)

// Store is the job data access interface. All job state goes through here.
// Implementations must be safe for concurrent use: one background task writes
// per job while any number of polling requests read.
type Store interface {
	CreateJob(ctx context.Context, job *models.Job) error
	GetJob(ctx context.Context, id uuid.UUID) (*models.Job, error)
	// SetProgress advances progress while processing. Progress is
	// monotonic: a value at or below the current one is ignored.
	SetProgress(ctx context.Context, id uuid.UUID, progress int) error
	CompleteJob(ctx context.Context, id uuid.UUID, report *models.Report) error
	FailJob(ctx context.Context, id uuid.UUID, errMsg string, shouldRefund bool, refundReason string) error
	Len() int
}
