package http

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	pkgErrors "student-task-priority/pkg/errors"
)

var errInvalidBody = pkgErrors.NewHTTPError(400, "request body must be a JSON object")

// processPrioritizeReq binds and validates the scoring request body.
func (h *handler) processPrioritizeReq(c *gin.Context) (prioritizeReq, error) {
	var req prioritizeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errInvalidBody
	}
	return req, req.validate()
}

// processScheduleReq binds the schedule options. An empty body uses the defaults.
func (h *handler) processScheduleReq(c *gin.Context) (scheduleReq, error) {
	var req scheduleReq
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		return req, errInvalidBody
	}
	return req, nil
}
