package scorer

import (
	"context"
	"time"

	"student-task-priority/internal/model"
	"student-task-priority/pkg/llmprovider"
)

// Generator is anything that can answer an LLM request: a single
// llmprovider.Provider or the fallback llmprovider.Manager.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// Weights are the relative heuristic weights. They are re-normalized
// to sum to 1 before use.
type Weights struct {
	Deadline float64
	Module   float64
	Effort   float64
}

// DefaultWeights returns 0.55 / 0.35 / 0.10.
func DefaultWeights() Weights {
	return Weights{Deadline: 0.55, Module: 0.35, Effort: 0.10}
}

// Config is the per-call scoring configuration. Start from DefaultConfig:
// the zero value has all weights 0, which scores every task 0.
type Config struct {
	// LLM is nil when no endpoint or credentials are configured.
	LLM Generator
	// Weights are used as given; an all-zero set is a valid tuning.
	Weights      Weights
	CustomPrompt string
	Temperature  float64
	// Timeout bounds the LLM attempt only. Zero means no extra bound.
	Timeout time.Duration
}

// DefaultConfig returns a heuristic-only Config with DefaultWeights.
func DefaultConfig() Config {
	return Config{Weights: DefaultWeights()}
}

// Strategy produces unsorted scored tasks for a batch.
type Strategy interface {
	Mode() model.Mode
	Rate(ctx context.Context, tasks []model.Task, cfg Config) (Rating, error)
}

// Rating is the raw output of a strategy before post-processing.
type Rating struct {
	Tasks    []model.ScoredTask
	Summary  string
	Provider string
	Model    string
}

// Option configures a Scorer.
type Option func(*Scorer)

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Scorer) {
		if now != nil {
			s.now = now
		}
	}
}
