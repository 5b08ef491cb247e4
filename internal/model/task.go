package model

import "time"

// Task is a canonical unit of student work after normalization.
// ID and Title are never empty and numeric fields are always finite.
type Task struct {
	ID                  string     `json:"id"`
	Title               string     `json:"title"`
	Module              string     `json:"module"`
	DueAt               *time.Time `json:"dueAt"`
	ModuleWeightPercent float64    `json:"moduleWeightPercent"`
	EstimatedHours      float64    `json:"estimatedHours"`
	Notes               string     `json:"notes"`
}

// ScoredTask is a Task with its computed priority.
type ScoredTask struct {
	Task
	PriorityScore int    `json:"priorityScore"`
	PriorityBand  Band   `json:"priorityBand"`
	Reason        string `json:"reason"`
}
