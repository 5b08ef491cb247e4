package httpserver

import (
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"student-task-priority/internal/middleware"
	"student-task-priority/internal/priority"
	"student-task-priority/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	allowedOrigins  []string
	trustedProxies  []string
	shutdownTimeout time.Duration

	mw middleware.Middleware

	// Priority domain
	priorityUC priority.UseCase
}

// Config is the dependency bag passed to New().
type Config struct {
	Port            int
	Mode            string
	Environment     string
	AllowedOrigins  []string
	TrustedProxies  []string
	RequestsPerMin  int
	ShutdownTimeout time.Duration

	PriorityUseCase priority.UseCase
}

// New creates a new HTTPServer instance and registers its routes.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		allowedOrigins:  cfg.AllowedOrigins,
		trustedProxies:  cfg.TrustedProxies,
		shutdownTimeout: cfg.ShutdownTimeout,
		mw:              middleware.New(logger, middleware.Config{RequestsPerMin: cfg.RequestsPerMin}),
		priorityUC:      cfg.PriorityUseCase,
	}
	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = defaultShutdownTimeout
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if err := srv.gin.SetTrustedProxies(srv.trustedProxies); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}

	srv.mapHandlers()
	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.priorityUC == nil {
		return errors.New("priority use case is required")
	}
	return nil
}
