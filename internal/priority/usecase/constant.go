package usecase

import "time"

const (
	defaultRequestProvider = "gemini"

	defaultDayStartHour = 9
	defaultDayEndHour   = 21

	minBlock = 30 * time.Minute
	maxBlock = 8 * time.Hour
	blockGap = 30 * time.Minute

	eventSource = "ai_scheduler"
	eventStatus = "scheduled"
)
