package priority

import (
	"time"

	"student-task-priority/internal/model"
)

// PrioritizeInput is the input for a scoring run.
type PrioritizeInput struct {
	// RawTasks is any JSON-decoded value; it is coerced by the normalizer.
	RawTasks any
	LLM      LLMOptions
}

// LLMOptions are per-request overrides of the server scoring defaults.
// Nil pointers and empty strings keep the server value.
type LLMOptions struct {
	APIKey       string
	Provider     string
	Model        string
	BaseURL      string
	Temperature  *float64
	CustomPrompt string
	Tuning       Tuning
	TimeoutMs    int
}

// Tuning overrides individual heuristic weights.
type Tuning struct {
	DeadlineWeight *float64
	ModuleWeight   *float64
	EffortWeight   *float64
}

// ScheduleInput is the input for planning study blocks.
type ScheduleInput struct {
	Timezone       string
	PushToCalendar bool
}

// StudyBlock is one planned work session for a task.
type StudyBlock struct {
	EventID       string
	TaskID        string
	Title         string
	Module        string
	StartAt       time.Time
	EndAt         time.Time
	DueAt         *time.Time
	PriorityScore int
	PriorityBand  model.Band
	Source        string
	Status        string
	CalendarLink  string
}

// ScheduleOutput is the planned study schedule.
type ScheduleOutput struct {
	ResultID string
	Timezone string
	Events   []StudyBlock
	Pushed   int
}
