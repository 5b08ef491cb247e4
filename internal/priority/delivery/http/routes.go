package http

import (
	"github.com/gin-gonic/gin"

	"student-task-priority/internal/middleware"
)

// RegisterRoutes maps /priority endpoints. Scoring calls may reach an LLM
// and are rate limited.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	p := rg.Group("/priority")
	{
		p.POST("", mw.RateLimit(), h.Prioritize)
		p.GET("/latest", h.Latest)
		p.POST("/schedule", mw.RateLimit(), h.Schedule)
	}
}

// RegisterLegacyRoutes keeps the paths served by the earlier Node bridge.
func RegisterLegacyRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/llm-priority", mw.RateLimit(), h.LegacyPrioritize)
	rg.GET("/llm-priority/file", h.LegacyLatest)
}
