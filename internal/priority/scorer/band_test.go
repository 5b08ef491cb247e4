package scorer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"student-task-priority/internal/model"
)

func TestBandFor(t *testing.T) {
	tests := []struct {
		score int
		want  model.Band
	}{
		{100, model.BandCritical},
		{85, model.BandCritical},
		{84, model.BandHigh},
		{70, model.BandHigh},
		{69, model.BandMedium},
		{45, model.BandMedium},
		{44, model.BandLow},
		{0, model.BandLow},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, BandFor(tt.score), "score %d", tt.score)
	}
}

func TestClampScore(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{-5, 0},
		{0.4, 0},
		{44.5, 45},
		{86.85, 87},
		{250, 100},
		{math.NaN(), 0},
		{math.Inf(1), 100},
		{math.Inf(-1), 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ClampScore(tt.in), "input %v", tt.in)
	}
}
