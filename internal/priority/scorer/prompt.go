package scorer

import (
	"encoding/json"
	"strings"
	"time"

	"student-task-priority/internal/model"
)

// DefaultInstruction is sent when no custom prompt is configured.
const DefaultInstruction = "Prioritize student tasks by due date urgency, module weighting, and estimated effort."

const responseShape = `Return JSON only in this exact shape:
{
  "rated_tasks": [
    {
      "id": "string",
      "title": "string",
      "priority_score": 0,
      "priority_band": "critical|high|medium|low",
      "reason": "short reason"
    }
  ],
  "summary": "short summary"
}`

type promptTask struct {
	ID                  string  `json:"id"`
	Title               string  `json:"title"`
	Module              string  `json:"module"`
	DueAt               *string `json:"due_at"`
	ModuleWeightPercent float64 `json:"module_weight_percent"`
	EstimatedHours      float64 `json:"estimated_hours"`
	Notes               string  `json:"notes,omitempty"`
}

// BuildPrompt renders the instruction, the response contract and the
// tasks in snake_case JSON.
func BuildPrompt(tasks []model.Task, customPrompt string) string {
	instruction := strings.TrimSpace(customPrompt)
	if instruction == "" {
		instruction = DefaultInstruction
	}

	view := make([]promptTask, len(tasks))
	for i, t := range tasks {
		view[i] = promptTask{
			ID:                  t.ID,
			Title:               t.Title,
			Module:              t.Module,
			ModuleWeightPercent: t.ModuleWeightPercent,
			EstimatedHours:      t.EstimatedHours,
			Notes:               t.Notes,
		}
		if t.DueAt != nil {
			due := t.DueAt.UTC().Format(time.RFC3339)
			view[i].DueAt = &due
		}
	}

	// Marshalling plain strings and floats cannot fail.
	body, _ := json.MarshalIndent(view, "", "  ")

	var sb strings.Builder
	sb.WriteString(instruction)
	sb.WriteString("\n\n")
	sb.WriteString(responseShape)
	sb.WriteString("\n\nTasks:\n")
	sb.Write(body)
	return sb.String()
}
