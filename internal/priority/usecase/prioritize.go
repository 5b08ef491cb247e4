package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"student-task-priority/internal/model"
	"student-task-priority/internal/priority"
	"student-task-priority/internal/priority/normalizer"
	"student-task-priority/internal/priority/repository"
	"student-task-priority/internal/priority/scorer"
	"student-task-priority/pkg/llmprovider"
)

// Prioritize normalizes, scores and persists a batch. Persistence failures
// are logged and do not fail the request.
func (uc *implUseCase) Prioritize(ctx context.Context, input priority.PrioritizeInput) (model.ScoringResult, error) {
	tasks := normalizer.Normalize(input.RawTasks)
	uc.l.Infof(ctx, "priority.usecase.Prioritize: tasks=%d", len(tasks))

	cfg := uc.scoringConfig(ctx, input.LLM)

	result, err := uc.scorer.Score(ctx, tasks, cfg)
	if err != nil {
		uc.l.Errorf(ctx, "priority.usecase.Prioritize: score: %v", err)
		return model.ScoringResult{}, err
	}
	result.ID = uc.newID()

	if err := uc.repo.SaveLatest(ctx, result); err != nil {
		uc.l.Warnf(ctx, "priority.usecase.Prioritize: save latest (non-fatal): %v", err)
	}

	uc.l.Infof(ctx, "priority.usecase.Prioritize: id=%s mode=%s fallback=%t", result.ID, result.Mode, result.Fallback)
	return result, nil
}

// Latest returns the last stored result.
func (uc *implUseCase) Latest(ctx context.Context) (model.ScoringResult, error) {
	result, err := uc.repo.GetLatest(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return model.ScoringResult{}, priority.ErrNoLatestResult
	}
	if err != nil {
		uc.l.Errorf(ctx, "priority.usecase.Latest: %v", err)
		return model.ScoringResult{}, err
	}
	return result, nil
}

// scoringConfig merges request overrides onto server defaults. A request
// API key selects a one-off provider; otherwise the server chain is used.
func (uc *implUseCase) scoringConfig(ctx context.Context, opts priority.LLMOptions) scorer.Config {
	cfg := scorer.Config{
		LLM:          uc.llm,
		Weights:      uc.scoring.Weights,
		CustomPrompt: uc.scoring.CustomPrompt,
		Temperature:  uc.scoring.Temperature,
		Timeout:      uc.scoring.Timeout,
	}

	if p := strings.TrimSpace(opts.CustomPrompt); p != "" {
		cfg.CustomPrompt = p
	}
	if opts.Temperature != nil {
		cfg.Temperature = *opts.Temperature
	}
	if opts.TimeoutMs > 0 {
		cfg.Timeout = time.Duration(opts.TimeoutMs) * time.Millisecond
	}
	if w := opts.Tuning.DeadlineWeight; w != nil {
		cfg.Weights.Deadline = *w
	}
	if w := opts.Tuning.ModuleWeight; w != nil {
		cfg.Weights.Module = *w
	}
	if w := opts.Tuning.EffortWeight; w != nil {
		cfg.Weights.Effort = *w
	}

	if strings.TrimSpace(opts.APIKey) == "" {
		return cfg
	}

	name := opts.Provider
	if name == "" {
		name = uc.scoring.Provider
	}
	provider, err := uc.newProvider(llmprovider.ProviderSpec{
		Name:    name,
		APIKey:  opts.APIKey,
		Model:   opts.Model,
		BaseURL: opts.BaseURL,
		Timeout: cfg.Timeout,
	})
	if err != nil {
		uc.l.Warnf(ctx, "priority.usecase.scoringConfig: request provider %q unusable: %v", name, err)
		cfg.LLM = failingGenerator{err: err}
		return cfg
	}
	cfg.LLM = provider
	return cfg
}

// failingGenerator turns a provider construction error into a regular
// strategy failure so it is reported as the fallback reason.
type failingGenerator struct {
	err error
}

func (g failingGenerator) GenerateContent(context.Context, *llmprovider.Request) (*llmprovider.Response, error) {
	return nil, fmt.Errorf("provider setup: %w", g.err)
}
