// Package normalizer coerces loosely shaped task records into canonical tasks.
// It never rejects input: unknown shapes degrade to defaults so a batch always
// yields a usable, full-length result.
package normalizer

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/spf13/cast"

	"student-task-priority/internal/model"
	"student-task-priority/pkg/datemath"
)

const DefaultModule = "General"

// Field aliases accepted for each canonical field, first match wins.
var (
	idKeys     = []string{"id", "taskId", "task_id"}
	titleKeys  = []string{"title", "name"}
	moduleKeys = []string{"module", "subject"}
	dueKeys    = []string{"dueAt", "due_at", "deadline", "closesOn"}
	weightKeys = []string{"moduleWeightPercent", "module_weight_percent"}
	hoursKeys  = []string{"estimatedHours", "estimated_hours"}
	notesKeys  = []string{"notes"}
)

var parser = datemath.UTC()

// Normalize converts raw into canonical tasks. Accepted inputs are slices of
// records ([]any, []map[string]any, []model.Task) or a JSON array given as
// []byte, json.RawMessage or string. Anything else yields an empty slice.
func Normalize(raw any) []model.Task {
	items := toSlice(raw)
	tasks := make([]model.Task, 0, len(items))
	for i, item := range items {
		tasks = append(tasks, normalizeOne(item, i))
	}
	uniqueIDs(tasks)
	return tasks
}

// uniqueIDs suffixes repeated ids with -2, -3, ... in batch order. A suffix
// never takes an id that appears elsewhere in the batch, and a batch whose
// ids are already distinct is left unchanged.
func uniqueIDs(tasks []model.Task) {
	taken := make(map[string]bool, len(tasks))
	for _, t := range tasks {
		taken[t.ID] = true
	}

	seen := make(map[string]bool, len(tasks))
	for i := range tasks {
		id := tasks[i].ID
		if !seen[id] {
			seen[id] = true
			continue
		}
		for n := 2; ; n++ {
			candidate := fmt.Sprintf("%s-%d", id, n)
			if !taken[candidate] {
				tasks[i].ID = candidate
				taken[candidate] = true
				seen[candidate] = true
				break
			}
		}
	}
}

func toSlice(raw any) []any {
	switch v := raw.(type) {
	case nil:
		return nil
	case []any:
		return v
	case []map[string]any:
		out := make([]any, len(v))
		for i := range v {
			out[i] = v[i]
		}
		return out
	case []model.Task:
		out := make([]any, len(v))
		for i := range v {
			out[i] = v[i]
		}
		return out
	case json.RawMessage:
		return decodeArray(v)
	case []byte:
		return decodeArray(v)
	case string:
		return decodeArray([]byte(v))
	default:
		return nil
	}
}

func decodeArray(data []byte) []any {
	var out []any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil
	}
	return out
}

func normalizeOne(item any, index int) model.Task {
	switch v := item.(type) {
	case model.Task:
		return canonicalize(v, index)
	case *model.Task:
		if v == nil {
			return canonicalize(model.Task{}, index)
		}
		return canonicalize(*v, index)
	case map[string]any:
		return canonicalize(fromRecord(v), index)
	default:
		return canonicalize(model.Task{}, index)
	}
}

func fromRecord(rec map[string]any) model.Task {
	return model.Task{
		ID:                  text(lookup(rec, idKeys)),
		Title:               text(lookup(rec, titleKeys)),
		Module:              text(lookup(rec, moduleKeys)),
		DueAt:               timestamp(lookup(rec, dueKeys)),
		ModuleWeightPercent: number(lookup(rec, weightKeys)),
		EstimatedHours:      number(lookup(rec, hoursKeys)),
		Notes:               text(lookup(rec, notesKeys)),
	}
}

// canonicalize applies the default rules. It is idempotent on its own output.
func canonicalize(t model.Task, index int) model.Task {
	t.ID = strings.TrimSpace(t.ID)
	if t.ID == "" {
		t.ID = fmt.Sprintf("task-%d", index+1)
	}

	t.Module = strings.TrimSpace(t.Module)
	if strings.TrimSpace(t.Title) == "" {
		t.Title = t.Module
	}
	if strings.TrimSpace(t.Title) == "" {
		t.Title = fmt.Sprintf("Task %d", index+1)
	}
	if t.Module == "" {
		t.Module = DefaultModule
	}

	t.ModuleWeightPercent = finite(t.ModuleWeightPercent)
	t.EstimatedHours = math.Max(0, finite(t.EstimatedHours))

	if t.DueAt != nil {
		due := t.DueAt.UTC()
		t.DueAt = &due
	}
	return t
}

func lookup(rec map[string]any, keys []string) any {
	for _, k := range keys {
		if v, ok := rec[k]; ok && v != nil {
			return v
		}
	}
	return nil
}

// text accepts scalars only; nested objects and arrays count as absent.
func text(v any) string {
	switch v.(type) {
	case nil, map[string]any, []any:
		return ""
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return ""
	}
	return s
}

func number(v any) float64 {
	switch v.(type) {
	case nil, bool, map[string]any, []any:
		return 0
	}
	if s, ok := v.(string); ok {
		v = strings.TrimSpace(s)
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0
	}
	return finite(f)
}

func finite(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

func timestamp(v any) *time.Time {
	var (
		t   time.Time
		err error
	)

	switch val := v.(type) {
	case nil:
		return nil
	case time.Time:
		t = val
	case *time.Time:
		if val == nil {
			return nil
		}
		t = *val
	case string:
		t, err = parser.Parse(val)
	case float64, float32, int, int64, int32, json.Number:
		var ms float64
		ms, err = cast.ToFloat64E(val)
		if err == nil {
			t, err = datemath.FromUnixMillis(ms)
		}
	default:
		return nil
	}

	if err != nil || t.IsZero() {
		return nil
	}
	t = t.UTC()
	return &t
}
