package httpserver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"student-task-priority/internal/model"
	"student-task-priority/internal/priority"
	"student-task-priority/pkg/log"
)

type stubUseCase struct{}

func (stubUseCase) Prioritize(context.Context, priority.PrioritizeInput) (model.ScoringResult, error) {
	return model.ScoringResult{}, nil
}

func (stubUseCase) Latest(context.Context) (model.ScoringResult, error) {
	return model.ScoringResult{}, priority.ErrNoLatestResult
}

func (stubUseCase) Schedule(context.Context, priority.ScheduleInput) (priority.ScheduleOutput, error) {
	return priority.ScheduleOutput{}, nil
}

func newTestServer(t *testing.T, origins []string) http.Handler {
	t.Helper()
	srv, err := New(log.NewNop(), Config{
		Port:            8787,
		Mode:            gin.TestMode,
		Environment:     "test",
		AllowedOrigins:  origins,
		PriorityUseCase: stubUseCase{},
	})
	require.NoError(t, err)
	return srv.Handler()
}

func TestNew_Validation(t *testing.T) {
	_, err := New(log.NewNop(), Config{Mode: gin.TestMode, PriorityUseCase: stubUseCase{}})
	assert.EqualError(t, err, "port is required")

	_, err = New(log.NewNop(), Config{Port: 1, Mode: gin.TestMode})
	assert.EqualError(t, err, "priority use case is required")

	_, err = New(log.NewNop(), Config{Port: 1, Mode: gin.TestMode, PriorityUseCase: stubUseCase{}, TrustedProxies: []string{"not-an-ip"}})
	assert.ErrorContains(t, err, "trusted proxies")
}

func TestSystemRoutes(t *testing.T) {
	h := newTestServer(t, nil)

	for _, path := range []string{"/health", "/ready", "/live"} {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Contains(t, w.Body.String(), ServiceName)
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	}
}

func TestDomainRoutes(t *testing.T) {
	h := newTestServer(t, nil)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/priority/latest", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/member4/llm-priority/file", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCORS(t *testing.T) {
	h := newTestServer(t, []string{"http://localhost:5173"})

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/priority", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "http://evil.example")
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
