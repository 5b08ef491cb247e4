package scorer

import (
	"context"
	"fmt"

	"student-task-priority/internal/model"
	"student-task-priority/pkg/llmprovider"
)

const defaultLLMReason = "LLM prioritization"

// LLMStrategy asks a Generator to rate the batch. Tasks the model did not
// rate are scored with the heuristic so the output always covers the
// whole batch.
type LLMStrategy struct {
	gen       Generator
	heuristic *HeuristicStrategy
}

func NewLLMStrategy(gen Generator, heuristic *HeuristicStrategy) *LLMStrategy {
	return &LLMStrategy{gen: gen, heuristic: heuristic}
}

func (s *LLMStrategy) Mode() model.Mode { return model.ModeLLM }

func (s *LLMStrategy) Rate(ctx context.Context, tasks []model.Task, cfg Config) (Rating, error) {
	resp, err := s.gen.GenerateContent(ctx, &llmprovider.Request{
		Messages: []llmprovider.Message{{
			Role:  "user",
			Parts: []llmprovider.Part{{Text: BuildPrompt(tasks, cfg.CustomPrompt)}},
		}},
		Temperature: cfg.Temperature,
		JSONMode:    true,
	})
	if err != nil {
		return Rating{}, fmt.Errorf("%w: %v", ErrLLMUnavailable, err)
	}
	if resp == nil {
		return Rating{}, fmt.Errorf("%w: empty response", ErrLLMUnavailable)
	}

	parsed, err := ParseRatings(resp.Content.Text())
	if err != nil {
		return Rating{}, err
	}

	index := make(map[string]int, len(tasks))
	for i, t := range tasks {
		if _, dup := index[t.ID]; !dup {
			index[t.ID] = i
		}
	}

	out := make([]model.ScoredTask, len(tasks))
	rated := make([]bool, len(tasks))
	matched := 0
	for _, item := range parsed.Items {
		i, ok := index[item.ID]
		if !ok || rated[i] {
			continue
		}
		reason := item.Reason
		if reason == "" {
			reason = defaultLLMReason
		}
		score := ClampScore(item.Score)
		out[i] = model.ScoredTask{
			Task:          tasks[i],
			PriorityScore: score,
			PriorityBand:  BandFor(score),
			Reason:        reason,
		}
		rated[i] = true
		matched++
	}
	if matched == 0 {
		return Rating{}, ErrNoMatchedRatings
	}

	if matched < len(tasks) {
		rest, _ := s.heuristic.Rate(ctx, tasks, cfg)
		for i := range tasks {
			if !rated[i] {
				out[i] = rest.Tasks[i]
			}
		}
	}

	summary := parsed.Summary
	if summary == "" {
		summary = fmt.Sprintf("Prioritized %d task(s)", len(tasks))
	}

	return Rating{
		Tasks:    out,
		Summary:  summary,
		Provider: resp.ProviderName,
		Model:    resp.ModelName,
	}, nil
}
