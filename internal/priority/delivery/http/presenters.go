package http

import (
	"errors"
	"time"

	"student-task-priority/internal/model"
	"student-task-priority/internal/priority"
)

// --- Request DTOs ---

type prioritizeReq struct {
	// Tasks is left loosely typed; the normalizer coerces whatever arrives.
	Tasks     any           `json:"tasks"`
	LLMConfig *llmConfigReq `json:"llmConfig"`
}

type llmConfigReq struct {
	APIKey       string     `json:"apiKey"`
	Provider     string     `json:"provider"`
	Model        string     `json:"model"`
	BaseURL      string     `json:"baseUrl"`
	Temperature  *float64   `json:"temperature"`
	CustomPrompt string     `json:"customPrompt"`
	Tuning       *tuningReq `json:"tuning"`
	TimeoutMs    int        `json:"timeoutMs"`
}

type tuningReq struct {
	DeadlineWeight *float64 `json:"deadlineWeight"`
	ModuleWeight   *float64 `json:"moduleWeight"`
	EffortWeight   *float64 `json:"effortWeight"`
}

func (r prioritizeReq) validate() error {
	if r.LLMConfig == nil {
		return nil
	}
	if r.LLMConfig.TimeoutMs < 0 {
		return errors.New("llmConfig.timeoutMs must not be negative")
	}
	if t := r.LLMConfig.Temperature; t != nil && (*t < 0 || *t > 2) {
		return errors.New("llmConfig.temperature must be between 0 and 2")
	}
	return nil
}

func (r prioritizeReq) toInput() priority.PrioritizeInput {
	input := priority.PrioritizeInput{RawTasks: r.Tasks}
	if r.LLMConfig == nil {
		return input
	}

	cfg := r.LLMConfig
	input.LLM = priority.LLMOptions{
		APIKey:       cfg.APIKey,
		Provider:     cfg.Provider,
		Model:        cfg.Model,
		BaseURL:      cfg.BaseURL,
		Temperature:  cfg.Temperature,
		CustomPrompt: cfg.CustomPrompt,
		TimeoutMs:    cfg.TimeoutMs,
	}
	if cfg.Tuning != nil {
		input.LLM.Tuning = priority.Tuning{
			DeadlineWeight: cfg.Tuning.DeadlineWeight,
			ModuleWeight:   cfg.Tuning.ModuleWeight,
			EffortWeight:   cfg.Tuning.EffortWeight,
		}
	}
	return input
}

// ---

type scheduleReq struct {
	Timezone       string `json:"timezone"`
	PushToCalendar bool   `json:"pushToCalendar"`
}

func (r scheduleReq) toInput() priority.ScheduleInput {
	return priority.ScheduleInput{
		Timezone:       r.Timezone,
		PushToCalendar: r.PushToCalendar,
	}
}

// --- Response DTOs ---

type ratedTaskResp struct {
	ID                  string     `json:"id"`
	Title               string     `json:"title"`
	Module              string     `json:"module"`
	DueAt               *time.Time `json:"dueAt"`
	ModuleWeightPercent float64    `json:"moduleWeightPercent"`
	EstimatedHours      float64    `json:"estimatedHours"`
	Notes               string     `json:"notes,omitempty"`
	PriorityScore       int        `json:"priorityScore"`
	PriorityBand        string     `json:"priorityBand"`
	Reason              string     `json:"reason"`
}

type resultResp struct {
	ID             string          `json:"id"`
	RatedTasks     []ratedTaskResp `json:"ratedTasks"`
	Summary        string          `json:"summary"`
	Mode           string          `json:"mode"`
	Fallback       bool            `json:"fallback"`
	FallbackReason *string         `json:"fallbackReason"`
	Provider       string          `json:"provider,omitempty"`
	Model          string          `json:"model,omitempty"`
	GeneratedAt    time.Time       `json:"generatedAt"`
}

func newResultResp(r model.ScoringResult) resultResp {
	tasks := make([]ratedTaskResp, len(r.RatedTasks))
	for i, t := range r.RatedTasks {
		tasks[i] = ratedTaskResp{
			ID:                  t.ID,
			Title:               t.Title,
			Module:              t.Module,
			DueAt:               t.DueAt,
			ModuleWeightPercent: t.ModuleWeightPercent,
			EstimatedHours:      t.EstimatedHours,
			Notes:               t.Notes,
			PriorityScore:       t.PriorityScore,
			PriorityBand:        string(t.PriorityBand),
			Reason:              t.Reason,
		}
	}

	resp := resultResp{
		ID:          r.ID,
		RatedTasks:  tasks,
		Summary:     r.Summary,
		Mode:        string(r.Mode),
		Fallback:    r.Fallback,
		Provider:    r.Provider,
		Model:       r.Model,
		GeneratedAt: r.GeneratedAt,
	}
	if r.FallbackReason != "" {
		reason := r.FallbackReason
		resp.FallbackReason = &reason
	}
	return resp
}

type studyEventResp struct {
	ID            string     `json:"id"`
	TaskID        string     `json:"taskId"`
	Title         string     `json:"title"`
	Module        string     `json:"module"`
	StartAt       time.Time  `json:"startAt"`
	EndAt         time.Time  `json:"endAt"`
	DueAt         *time.Time `json:"dueAt"`
	PriorityScore int        `json:"priorityScore"`
	PriorityBand  string     `json:"priorityBand"`
	Source        string     `json:"source"`
	Status        string     `json:"status"`
	CalendarLink  string     `json:"calendarLink,omitempty"`
}

type scheduleResp struct {
	ResultID string           `json:"resultId"`
	Timezone string           `json:"timezone"`
	Pushed   int              `json:"pushed"`
	Events   []studyEventResp `json:"events"`
}

func newScheduleResp(out priority.ScheduleOutput) scheduleResp {
	events := make([]studyEventResp, len(out.Events))
	for i, e := range out.Events {
		events[i] = studyEventResp{
			ID:            e.EventID,
			TaskID:        e.TaskID,
			Title:         e.Title,
			Module:        e.Module,
			StartAt:       e.StartAt,
			EndAt:         e.EndAt,
			DueAt:         e.DueAt,
			PriorityScore: e.PriorityScore,
			PriorityBand:  string(e.PriorityBand),
			Source:        e.Source,
			Status:        e.Status,
			CalendarLink:  e.CalendarLink,
		}
	}
	return scheduleResp{
		ResultID: out.ResultID,
		Timezone: out.Timezone,
		Pushed:   out.Pushed,
		Events:   events,
	}
}
