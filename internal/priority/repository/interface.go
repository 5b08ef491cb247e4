package repository

import (
	"context"
	"errors"

	"student-task-priority/internal/model"
)

// ErrNotFound is returned by GetLatest before any result was saved.
var ErrNotFound = errors.New("latest result not found")

// Repository persists the most recent scoring result under a single key.
type Repository interface {
	SaveLatest(ctx context.Context, result model.ScoringResult) error
	GetLatest(ctx context.Context) (model.ScoringResult, error)
}
