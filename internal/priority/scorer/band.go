package scorer

import (
	"math"

	"student-task-priority/internal/model"
)

// Band thresholds, inclusive lower bounds.
const (
	criticalFrom = 85
	highFrom     = 70
	mediumFrom   = 45
)

// BandFor maps a score to its band.
func BandFor(score int) model.Band {
	switch {
	case score >= criticalFrom:
		return model.BandCritical
	case score >= highFrom:
		return model.BandHigh
	case score >= mediumFrom:
		return model.BandMedium
	default:
		return model.BandLow
	}
}

// ClampScore rounds f half away from zero and clamps it to [0,100].
// NaN maps to 0.
func ClampScore(f float64) int {
	if math.IsNaN(f) {
		return 0
	}
	return int(clamp(math.Round(f)))
}

func clamp(f float64) float64 {
	return math.Max(0, math.Min(100, f))
}
