package http

import (
	"github.com/gin-gonic/gin"

	"student-task-priority/internal/priority"
	"student-task-priority/pkg/log"
)

// Handler is the public interface for the priority HTTP delivery layer.
type Handler interface {
	Prioritize(c *gin.Context)
	Latest(c *gin.Context)
	Schedule(c *gin.Context)

	// Bridge-compatible variants answer with the bare payload.
	LegacyPrioritize(c *gin.Context)
	LegacyLatest(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc priority.UseCase
}

// New creates a new HTTP handler for the priority domain.
func New(l log.Logger, uc priority.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
