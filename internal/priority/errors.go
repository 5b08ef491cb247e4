package priority

import "errors"

// Domain-specific errors for the priority package.
var (
	ErrNoLatestResult        = errors.New("no prioritization result stored yet")
	ErrInvalidTimezone       = errors.New("invalid timezone")
	ErrCalendarNotConfigured = errors.New("google calendar is not configured")
)
