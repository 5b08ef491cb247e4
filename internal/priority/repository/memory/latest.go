package memory

import (
	"context"
	"sync"

	"student-task-priority/internal/model"
	"student-task-priority/internal/priority/repository"
)

type implRepository struct {
	mu     sync.RWMutex
	latest *model.ScoringResult
}

// New creates an in-process repository. Results are lost on restart.
func New() repository.Repository {
	return &implRepository{}
}

func (r *implRepository) SaveLatest(_ context.Context, result model.ScoringResult) error {
	cp := result
	cp.RatedTasks = append([]model.ScoredTask(nil), result.RatedTasks...)

	r.mu.Lock()
	r.latest = &cp
	r.mu.Unlock()
	return nil
}

func (r *implRepository) GetLatest(_ context.Context) (model.ScoringResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.latest == nil {
		return model.ScoringResult{}, repository.ErrNotFound
	}
	cp := *r.latest
	cp.RatedTasks = append([]model.ScoredTask(nil), r.latest.RatedTasks...)
	return cp, nil
}
