package scorer

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	"student-task-priority/internal/model"
	"student-task-priority/pkg/datemath"
)

const (
	noDueDateDays     = 999
	urgencyPerDay     = 9.0
	moduleImpactScale = 2.2
	effortPerHour     = 10.0
)

// HeuristicStrategy scores tasks from due date, module weight and effort.
// It never blocks and never fails.
type HeuristicStrategy struct {
	now func() time.Time
}

// NewHeuristicStrategy returns a heuristic bound to the given clock.
func NewHeuristicStrategy(now func() time.Time) *HeuristicStrategy {
	if now == nil {
		now = time.Now
	}
	return &HeuristicStrategy{now: now}
}

func (h *HeuristicStrategy) Mode() model.Mode { return model.ModeHeuristic }

func (h *HeuristicStrategy) Rate(_ context.Context, tasks []model.Task, cfg Config) (Rating, error) {
	now := h.now()
	w := cfg.Weights.normalized()

	out := make([]model.ScoredTask, len(tasks))
	for i, t := range tasks {
		out[i] = scoreTask(t, now, w)
	}

	return Rating{
		Tasks:   out,
		Summary: fmt.Sprintf("Prioritized %d task(s) by deadline, module weight and effort.", len(tasks)),
	}, nil
}

func scoreTask(t model.Task, now time.Time, w Weights) model.ScoredTask {
	days := daysUntilDue(t, now)
	urgency := clamp(100 - float64(days)*urgencyPerDay)
	moduleImpact := clamp(t.ModuleWeightPercent * moduleImpactScale)
	effort := clamp(t.EstimatedHours * effortPerHour)

	score := ClampScore(w.Deadline*urgency + w.Module*moduleImpact + w.Effort*effort)
	return model.ScoredTask{
		Task:          t,
		PriorityScore: score,
		PriorityBand:  BandFor(score),
		Reason:        heuristicReason(t, days),
	}
}

func daysUntilDue(t model.Task, now time.Time) int {
	if t.DueAt == nil {
		return noDueDateDays
	}
	return datemath.CeilDays(now, *t.DueAt)
}

func heuristicReason(t model.Task, days int) string {
	var due string
	switch {
	case t.DueAt == nil:
		due = "No due date"
	case days < 0:
		due = fmt.Sprintf("Overdue by %d day(s)", -days)
	case days == 0:
		due = "Due today"
	default:
		due = fmt.Sprintf("Due in %d day(s)", days)
	}
	weight := strconv.FormatFloat(t.ModuleWeightPercent, 'f', -1, 64)
	return fmt.Sprintf("%s; module weight %s%%.", due, weight)
}

// normalized re-scales w to sum to 1. Negative weights count as 0 and a
// zero sum is treated as 1.
func (w Weights) normalized() Weights {
	d, m, e := nonNegative(w.Deadline), nonNegative(w.Module), nonNegative(w.Effort)
	sum := d + m + e
	if sum == 0 {
		sum = 1
	}
	return Weights{Deadline: d / sum, Module: m / sum, Effort: e / sum}
}

func nonNegative(f float64) float64 {
	if f < 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
