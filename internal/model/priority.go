package model

import "time"

// Band is a coarse priority label derived from a score.
type Band string

const (
	BandCritical Band = "critical"
	BandHigh     Band = "high"
	BandMedium   Band = "medium"
	BandLow      Band = "low"
)

// Valid reports whether b is one of the known bands.
func (b Band) Valid() bool {
	switch b {
	case BandCritical, BandHigh, BandMedium, BandLow:
		return true
	}
	return false
}

// Mode names the strategy that produced a result.
type Mode string

const (
	ModeLLM       Mode = "llm"
	ModeHeuristic Mode = "heuristic"
)

// ScoringResult is produced fresh per scoring request and never mutated.
type ScoringResult struct {
	ID             string       `json:"id"`
	RatedTasks     []ScoredTask `json:"ratedTasks"`
	Summary        string       `json:"summary"`
	Mode           Mode         `json:"mode"`
	Fallback       bool         `json:"fallback"`
	FallbackReason string       `json:"fallbackReason,omitempty"`
	Provider       string       `json:"provider,omitempty"`
	Model          string       `json:"model,omitempty"`
	GeneratedAt    time.Time    `json:"generatedAt"`
}
