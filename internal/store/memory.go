package store

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/quantumcreationsapp-ai/fightlabai-backend/pkg/models"
)

// MemoryStore implements Store with a mutex-guarded map. Reads return copies
// so callers never observe a job mid-mutation.
type MemoryStore struct {
	mu   sync.RWMutex
	jobs map[uuid.UUID]*models.Job
	ttl  time.Duration
}

// NewMemoryStore creates a MemoryStore. Terminal jobs older than ttl are
// evicted by the reaper; processing jobs are never evicted.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		jobs: make(map[uuid.UUID]*models.Job),
		ttl:  ttl,
	}
}

func (s *MemoryStore) CreateJob(_ context.Context, job *models.Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *job
	s.jobs[job.ID] = &cp
	return nil
}

func (s *MemoryStore) GetJob(_ context.Context, id uuid.UUID) (*models.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	job, ok := s.jobs[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *job
	return &cp, nil
}

func (s *MemoryStore) SetProgress(_ context.Context, id uuid.UUID, progress int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[id]
	if !ok {
		return ErrNotFound
	}
	if job.Terminal() {
		return ErrTerminal
	}
	if progress > job.Progress {
		job.Progress = progress
		job.UpdatedAt = time.Now().UTC()
	}
	return nil
}

func (s *MemoryStore) CompleteJob(_ context.Context, id uuid.UUID, report *models.Report) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[id]
	if !ok {
		return ErrNotFound
	}
	if job.Terminal() {
		return ErrTerminal
	}
	job.Status = models.JobStatusCompleted
	job.Progress = 100
	job.Report = report
	job.Error = ""
	job.UpdatedAt = time.Now().UTC()
	return nil
}

func (s *MemoryStore) FailJob(_ context.Context, id uuid.UUID, errMsg string, shouldRefund bool, refundReason string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[id]
	if !ok {
		return ErrNotFound
	}
	if job.Terminal() {
		return ErrTerminal
	}
	job.Status = models.JobStatusFailed
	job.Report = nil
	job.Error = errMsg
	job.ShouldRefund = shouldRefund
	job.RefundReason = refundReason
	job.UpdatedAt = time.Now().UTC()
	return nil
}

func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.jobs)
}

// StartReaper evicts expired terminal jobs every interval until ctx is done.
func (s *MemoryStore) StartReaper(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n := s.Reap(time.Now().UTC()); n > 0 {
					slog.Info("reaped expired jobs", "count", n)
				}
			}
		}
	}()
}

// Reap removes terminal jobs whose last update is older than the TTL relative
// to now. Returns the number of jobs removed.
func (s *MemoryStore) Reap(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, job := range s.jobs {
		if job.Terminal() && now.Sub(job.UpdatedAt) > s.ttl {
			delete(s.jobs, id)
			removed++
		}
	}
	return removed
}

var _ Store = (*MemoryStore)(nil)
