package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "student-task-priority/pkg/errors"
	"student-task-priority/pkg/response"
)

// Prioritize godoc
// @Summary     Prioritize tasks
// @Description Normalizes the submitted tasks and scores them with the configured LLM, falling back to the deterministic heuristic.
// @Tags        Priority
// @Accept      json
// @Produce     json
// @Param       body body prioritizeReq true "Tasks and optional LLM overrides"
// @Success     200  {object} resultResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/priority [POST]
func (h *handler) Prioritize(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processPrioritizeReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Prioritize(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Prioritize: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newResultResp(output))
}

// Latest godoc
// @Summary     Latest prioritization
// @Description Returns the most recently stored scoring result.
// @Tags        Priority
// @Produce     json
// @Success     200 {object} resultResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/priority/latest [GET]
func (h *handler) Latest(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Latest(ctx)
	if err != nil {
		h.l.Warnf(ctx, "uc.Latest: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newResultResp(output))
}

// Schedule godoc
// @Summary     Plan study blocks
// @Description Plans one study block per task of the latest result, optionally pushing them to Google Calendar.
// @Tags        Priority
// @Accept      json
// @Produce     json
// @Param       body body scheduleReq false "Planner options"
// @Success     200  {object} scheduleResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     404  {object} response.Resp "Not Found"
// @Failure     409  {object} response.Resp "Calendar not configured"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/priority/schedule [POST]
func (h *handler) Schedule(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processScheduleReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Schedule(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Schedule: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newScheduleResp(output))
}

// LegacyPrioritize godoc
// @Summary     Prioritize tasks (bridge path)
// @Description Same as POST /api/v1/priority but answers with the bare result object.
// @Tags        Legacy
// @Accept      json
// @Produce     json
// @Param       body body prioritizeReq true "Tasks and optional LLM overrides"
// @Success     200  {object} resultResp
// @Router      /member4/llm-priority [POST]
func (h *handler) LegacyPrioritize(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processPrioritizeReq(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	output, err := h.uc.Prioritize(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Prioritize: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, newResultResp(output))
}

// LegacyLatest godoc
// @Summary     Latest prioritization (bridge path)
// @Tags        Legacy
// @Produce     json
// @Success     200 {object} resultResp
// @Failure     404 {object} map[string]string
// @Router      /member4/llm-priority/file [GET]
func (h *handler) LegacyLatest(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Latest(ctx)
	if err != nil {
		h.l.Warnf(ctx, "uc.Latest: %v", err)
		c.JSON(h.legacyStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, newResultResp(output))
}

func (h *handler) legacyStatus(err error) int {
	var httpErr *pkgErrors.HTTPError
	if errors.As(h.mapError(err), &httpErr) {
		return httpErr.StatusCode
	}
	return http.StatusInternalServerError
}
