package priority

import (
	"context"

	"student-task-priority/internal/model"
)

// UseCase defines the business logic interface for the priority domain.
type UseCase interface {
	// Prioritize normalizes raw tasks, scores them and stores the result as latest.
	Prioritize(ctx context.Context, input PrioritizeInput) (model.ScoringResult, error)

	// Latest returns the most recently stored result.
	Latest(ctx context.Context) (model.ScoringResult, error)

	// Schedule plans study blocks for the latest result and optionally pushes them to Google Calendar.
	Schedule(ctx context.Context, input ScheduleInput) (ScheduleOutput, error)
}
