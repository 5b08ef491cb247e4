package normalizer

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"student-task-priority/internal/model"
)

func TestNormalize_NonSequenceInput(t *testing.T) {
	inputs := []any{
		nil,
		42,
		"not json",
		map[string]any{"id": "a"},
		json.RawMessage(`{"tasks": []}`),
		[]byte(`[broken`),
	}

	for _, in := range inputs {
		got := Normalize(in)
		assert.NotNil(t, got)
		assert.Empty(t, got, "input %#v", in)
	}
}

func TestNormalize_Defaults(t *testing.T) {
	got := Normalize([]any{
		map[string]any{},
		map[string]any{"module": "Math"},
		"just a string",
		nil,
	})

	require.Len(t, got, 4)

	assert.Equal(t, model.Task{ID: "task-1", Title: "Task 1", Module: DefaultModule}, got[0])
	assert.Equal(t, model.Task{ID: "task-2", Title: "Math", Module: "Math"}, got[1])
	assert.Equal(t, "task-3", got[2].ID)
	assert.Equal(t, "Task 3", got[2].Title)
	assert.Equal(t, "task-4", got[3].ID)
	assert.Nil(t, got[3].DueAt)
}

func TestNormalize_FullRecord(t *testing.T) {
	got := Normalize([]any{
		map[string]any{
			"id":                  "moodle-1",
			"title":               "Apple essay",
			"module":              "Business Essay",
			"dueAt":               "2026-02-23T16:00:00Z",
			"moduleWeightPercent": 50.0,
			"estimatedHours":      "6",
			"notes":               "draft first",
		},
	})

	require.Len(t, got, 1)
	due := time.Date(2026, 2, 23, 16, 0, 0, 0, time.UTC)
	assert.Equal(t, model.Task{
		ID:                  "moodle-1",
		Title:               "Apple essay",
		Module:              "Business Essay",
		DueAt:               &due,
		ModuleWeightPercent: 50,
		EstimatedHours:      6,
		Notes:               "draft first",
	}, got[0])
}

func TestNormalize_SnakeCaseAliases(t *testing.T) {
	got := Normalize([]map[string]any{
		{
			"id":                    7,
			"title":                 "Revision",
			"due_at":                "2026-03-01",
			"module_weight_percent": "30",
			"estimated_hours":       2,
		},
	})

	require.Len(t, got, 1)
	assert.Equal(t, "7", got[0].ID)
	require.NotNil(t, got[0].DueAt)
	assert.True(t, got[0].DueAt.Equal(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 30.0, got[0].ModuleWeightPercent)
	assert.Equal(t, 2.0, got[0].EstimatedHours)
}

func TestNormalize_BadValuesDegrade(t *testing.T) {
	got := Normalize([]any{
		map[string]any{
			"title":               map[string]any{"nested": true},
			"dueAt":               "someday",
			"moduleWeightPercent": "lots",
			"estimatedHours":      -4,
		},
		map[string]any{
			"dueAt":               true,
			"moduleWeightPercent": math.NaN(),
			"estimatedHours":      math.Inf(1),
		},
	})

	require.Len(t, got, 2)
	for _, task := range got {
		assert.Nil(t, task.DueAt)
		assert.Zero(t, task.ModuleWeightPercent)
		assert.Zero(t, task.EstimatedHours)
		assert.NotEmpty(t, task.ID)
		assert.NotEmpty(t, task.Title)
	}
	assert.Equal(t, "Task 1", got[0].Title)
}

func TestNormalize_EpochMillisDueDate(t *testing.T) {
	got := Normalize([]any{map[string]any{"dueAt": 1771862400000.0}})

	require.Len(t, got, 1)
	require.NotNil(t, got[0].DueAt)
	assert.True(t, got[0].DueAt.Equal(time.Date(2026, 2, 23, 16, 0, 0, 0, time.UTC)))
}

func TestNormalize_JSONInput(t *testing.T) {
	raw := json.RawMessage(`[
		{"title": "Mathingy", "module": "Math", "dueAt": "2026-02-25T16:00:00Z", "moduleWeightPercent": 30},
		{"module": "Sport"}
	]`)

	got := Normalize(raw)

	require.Len(t, got, 2)
	assert.Equal(t, "task-1", got[0].ID)
	assert.Equal(t, "Mathingy", got[0].Title)
	assert.Equal(t, "Sport", got[1].Title)
}

func TestNormalize_Idempotent(t *testing.T) {
	offset := time.FixedZone("UTC+2", 2*60*60)
	due := time.Date(2026, 2, 25, 18, 0, 0, 0, offset)

	inputs := []any{
		[]any{
			map[string]any{"title": "A", "dueAt": "2026-02-25T16:00:00+02:00", "estimatedHours": -1},
			map[string]any{"module": "Sport", "moduleWeightPercent": "10"},
			7,
		},
		[]model.Task{{Title: "  ", Module: " Math ", DueAt: &due}},
		json.RawMessage(`[{"id": "x"}, {}]`),
		nil,
	}

	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		assert.Equal(t, once, twice)
	}
}

func TestNormalize_CanonicalTasksPassThrough(t *testing.T) {
	due := time.Date(2026, 2, 23, 16, 0, 0, 0, time.UTC)
	canonical := []model.Task{{
		ID:                  "a",
		Title:               "Essay",
		Module:              "English",
		DueAt:               &due,
		ModuleWeightPercent: 40,
		EstimatedHours:      3,
		Notes:               "n",
	}}

	assert.Equal(t, canonical, Normalize(canonical))
}

func TestNormalize_UniqueIDs(t *testing.T) {
	t.Run("generated id collides with supplied id", func(t *testing.T) {
		got := Normalize([]any{map[string]any{"id": "task-2"}, map[string]any{}})
		require.Len(t, got, 2)
		assert.Equal(t, "task-2", got[0].ID)
		assert.Equal(t, "task-2-2", got[1].ID)
	})

	t.Run("duplicate supplied ids", func(t *testing.T) {
		got := Normalize([]any{
			map[string]any{"id": "a"},
			map[string]any{"id": "a"},
			map[string]any{"id": "a-2"},
			map[string]any{"id": "a"},
		})
		ids := make([]string, len(got))
		for i, task := range got {
			ids[i] = task.ID
		}
		assert.Equal(t, []string{"a", "a-3", "a-2", "a-4"}, ids)

		again := Normalize(got)
		assert.Equal(t, got, again)
	})
}
