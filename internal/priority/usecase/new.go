package usecase

import (
	"time"

	"github.com/google/uuid"

	"student-task-priority/internal/priority"
	"student-task-priority/internal/priority/repository"
	"student-task-priority/internal/priority/scorer"
	"student-task-priority/pkg/gcalendar"
	"student-task-priority/pkg/llmprovider"
	pkgLog "student-task-priority/pkg/log"
)

// ScoringDefaults are the server-side values a request may override.
type ScoringDefaults struct {
	// Weights default to scorer.DefaultWeights when all three are zero.
	Weights      scorer.Weights
	CustomPrompt string
	Temperature  float64
	Timeout      time.Duration
	// Provider is used for requests that carry an API key but no provider name.
	Provider string
}

// ScheduleDefaults bound the study planner.
type ScheduleDefaults struct {
	Timezone     string
	DayStartHour int
	DayEndHour   int
	CalendarID   string
}

// Options carries the optional collaborators of the use case.
type Options struct {
	// LLM is the server-configured provider chain. Nil means heuristic only
	// unless a request brings its own API key.
	LLM      scorer.Generator
	Calendar gcalendar.ICalendar
	Scoring  ScoringDefaults
	Schedule ScheduleDefaults
	Clock    func() time.Time
}

type implUseCase struct {
	l           pkgLog.Logger
	scorer      *scorer.Scorer
	repo        repository.Repository
	llm         scorer.Generator
	calendar    gcalendar.ICalendar
	scoring     ScoringDefaults
	schedule    ScheduleDefaults
	now         func() time.Time
	newID       func() string
	newProvider func(llmprovider.ProviderSpec) (llmprovider.Provider, error)
}

var _ priority.UseCase = (*implUseCase)(nil)

// New creates a new priority UseCase instance.
func New(l pkgLog.Logger, sc *scorer.Scorer, repo repository.Repository, opts Options) priority.UseCase {
	now := opts.Clock
	if now == nil {
		now = time.Now
	}
	if opts.Scoring.Weights == (scorer.Weights{}) {
		opts.Scoring.Weights = scorer.DefaultWeights()
	}
	if opts.Scoring.Provider == "" {
		opts.Scoring.Provider = defaultRequestProvider
	}
	if opts.Schedule.Timezone == "" {
		opts.Schedule.Timezone = "UTC"
	}
	if opts.Schedule.DayEndHour <= opts.Schedule.DayStartHour {
		opts.Schedule.DayStartHour, opts.Schedule.DayEndHour = defaultDayStartHour, defaultDayEndHour
	}

	return &implUseCase{
		l:           l,
		scorer:      sc,
		repo:        repo,
		llm:         opts.LLM,
		calendar:    opts.Calendar,
		scoring:     opts.Scoring,
		schedule:    opts.Schedule,
		now:         now,
		newID:       uuid.NewString,
		newProvider: llmprovider.NewProvider,
	}
}
