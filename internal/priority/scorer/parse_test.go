package scorer

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"student-task-priority/internal/model"
)

func TestParseRatings(t *testing.T) {
	tests := []struct {
		name        string
		in          string
		wantSummary string
		wantIDs     []string
	}{
		{
			name:        "snake case",
			in:          `{"summary":"s","rated_tasks":[{"id":"a","priority_score":80,"priority_band":"HIGH","reason":"r"}]}`,
			wantSummary: "s",
			wantIDs:     []string{"a"},
		},
		{
			name:    "camel case in fence",
			in:      "Here you go:\n```json\n{\"ratedTasks\":[{\"id\":\"a\",\"priorityScore\":\"77\"}]}\n```",
			wantIDs: []string{"a"},
		},
		{
			name:    "prose around object",
			in:      `Sure! {"rated_tasks":[{"id":1,"priority_score":10}]} Hope it helps.`,
			wantIDs: []string{"1"},
		},
		{
			name:    "bare array",
			in:      `[{"id":"x","score":5}]`,
			wantIDs: []string{"x"},
		},
		{
			name:    "items without id or score are skipped",
			in:      `{"rated_tasks":[{"priority_score":10},{"id":"b"},{"id":"c","priority_score":"high"},{"id":"d","priority_score":1}]}`,
			wantIDs: []string{"d"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRatings(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.wantSummary, got.Summary)

			ids := make([]string, 0, len(got.Items))
			for _, it := range got.Items {
				ids = append(ids, it.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestParseRatings_Fields(t *testing.T) {
	got, err := ParseRatings(`{"rated_tasks":[{"id":"a","title":"T","priority_score":80.5,"priority_band":" High ","reason":" r "}]}`)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, ParsedRating{ID: "a", Score: 80.5, Band: "high", Reason: "r", Title: "T"}, got.Items[0])
}

func TestParseRatings_NullFallsThroughToAlias(t *testing.T) {
	got, err := ParseRatings(`{"rated_tasks":null,"ratedTasks":[{"id":"a","priority_score":null,"priorityScore":80,"priority_band":null,"priorityBand":"high"}]}`)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, 80.0, got.Items[0].Score)
	assert.Equal(t, "high", got.Items[0].Band)
}

func TestParseRatings_Errors(t *testing.T) {
	for _, in := range []string{"", "no json here", "{broken", `{"summary":"only"}`, `{"rated_tasks":{}}`, `"text"`} {
		_, err := ParseRatings(in)
		assert.ErrorIs(t, err, ErrMalformedResponse, "input %q", in)
	}
}

func TestBuildPrompt(t *testing.T) {
	dueAt := time.Date(2026, 2, 23, 16, 0, 0, 0, time.UTC)
	tasks := []model.Task{
		{ID: "t1", Title: "Essay", Module: "History", DueAt: &dueAt, ModuleWeightPercent: 40, EstimatedHours: 6},
		{ID: "t2", Title: "Reading", Module: "General"},
	}

	prompt := BuildPrompt(tasks, "")
	assert.True(t, strings.HasPrefix(prompt, DefaultInstruction))
	assert.Contains(t, prompt, `"rated_tasks"`)
	assert.Contains(t, prompt, `"due_at": "2026-02-23T16:00:00Z"`)
	assert.Contains(t, prompt, `"due_at": null`)
	assert.Contains(t, prompt, `"module_weight_percent": 40`)

	custom := BuildPrompt(tasks, "  Focus on exams.  ")
	assert.True(t, strings.HasPrefix(custom, "Focus on exams.\n"))
	assert.NotContains(t, custom, DefaultInstruction)
}
