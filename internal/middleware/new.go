package middleware

import (
	"student-task-priority/pkg/log"
)

// Config holds the middleware settings.
type Config struct {
	// RequestsPerMin is the per-client budget. Zero or less disables limiting.
	RequestsPerMin int
}

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{l: l}
	if cfg.RequestsPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RequestsPerMin)
	}
	return mw
}
