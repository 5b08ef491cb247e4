package scorer

import (
	"context"
	"sort"
	"time"

	"student-task-priority/internal/model"
	"student-task-priority/pkg/log"
)

const emptyBatchSummary = "No tasks to prioritize."

// Scorer runs the LLM strategy when one is configured and falls back to
// the heuristic on any LLM failure. It holds no per-call state.
type Scorer struct {
	l         log.Logger
	now       func() time.Time
	heuristic *HeuristicStrategy
}

// New creates a Scorer.
func New(l log.Logger, opts ...Option) *Scorer {
	s := &Scorer{l: l, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	s.heuristic = NewHeuristicStrategy(s.now)
	return s
}

// Score ranks tasks. LLM failures never surface as errors; they are
// recorded in FallbackReason.
func (s *Scorer) Score(ctx context.Context, tasks []model.Task, cfg Config) (model.ScoringResult, error) {
	if len(tasks) == 0 {
		return model.ScoringResult{
			RatedTasks:  []model.ScoredTask{},
			Summary:     emptyBatchSummary,
			Mode:        model.ModeHeuristic,
			GeneratedAt: s.now().UTC(),
		}, nil
	}

	var fallbackReason string
	if cfg.LLM != nil {
		rating, err := s.attempt(ctx, NewLLMStrategy(cfg.LLM, s.heuristic), tasks, cfg)
		if err == nil {
			s.l.Info(ctx, "priority.scorer.Score: llm strategy succeeded",
				"tasks", len(tasks), "provider", rating.Provider, "model", rating.Model)
			return s.finish(rating, model.ModeLLM), nil
		}
		fallbackReason = err.Error()
		s.l.Warn(ctx, "priority.scorer.Score: llm strategy failed, using heuristic", "reason", fallbackReason)
	}

	rating, err := s.attempt(ctx, s.heuristic, tasks, cfg)
	if err != nil {
		s.l.Error(ctx, "priority.scorer.Score: heuristic failed", "error", err)
		return model.ScoringResult{}, ErrNoStrategy
	}

	result := s.finish(rating, model.ModeHeuristic)
	result.Fallback = cfg.LLM != nil
	result.FallbackReason = fallbackReason
	return result, nil
}

func (s *Scorer) attempt(ctx context.Context, strategy Strategy, tasks []model.Task, cfg Config) (Rating, error) {
	if strategy.Mode() == model.ModeLLM && cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}
	return strategy.Rate(ctx, tasks, cfg)
}

// finish applies the post-processing shared by every strategy.
func (s *Scorer) finish(r Rating, mode model.Mode) model.ScoringResult {
	rated := make([]model.ScoredTask, len(r.Tasks))
	for i, t := range r.Tasks {
		t.PriorityScore = ClampScore(float64(t.PriorityScore))
		t.PriorityBand = BandFor(t.PriorityScore)
		rated[i] = t
	}

	sort.SliceStable(rated, func(i, j int) bool {
		return rated[i].PriorityScore > rated[j].PriorityScore
	})

	return model.ScoringResult{
		RatedTasks:  rated,
		Summary:     r.Summary,
		Mode:        mode,
		Provider:    r.Provider,
		Model:       r.Model,
		GeneratedAt: s.now().UTC(),
	}
}
