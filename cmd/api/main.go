package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	goredis "github.com/redis/go-redis/v9"

	"student-task-priority/config"
	_ "student-task-priority/docs" // Swagger docs
	"student-task-priority/internal/httpserver"
	"student-task-priority/internal/priority/repository"
	fileRepo "student-task-priority/internal/priority/repository/file"
	memoryRepo "student-task-priority/internal/priority/repository/memory"
	redisRepo "student-task-priority/internal/priority/repository/redis"
	"student-task-priority/internal/priority/scorer"
	"student-task-priority/internal/priority/usecase"
	"student-task-priority/pkg/gcalendar"
	"student-task-priority/pkg/llmprovider"
	"student-task-priority/pkg/log"
)

// @title       Student Task Priority API
// @description Scores student tasks with an LLM or a deterministic heuristic and plans study blocks.
// @version     1
// @host        localhost:8787
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Student Task Priority service...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. LLM provider chain (optional)
	var llm scorer.Generator
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	switch {
	case errors.Is(err, llmprovider.ErrNoProvidersConfigured):
		logger.Warn(ctx, "No LLM providers enabled, scoring will use the heuristic unless a request brings an API key")
	case err != nil:
		logger.Warnf(ctx, "LLM providers unavailable: %v", err)
	default:
		llm = llmprovider.NewManager(providers, llmprovider.ManagerConfig(&cfg.LLM), logger)
		for _, p := range providers {
			logger.Infof(ctx, "LLM provider ready: %s (%s)", p.Name(), p.Model())
		}
	}

	// 4. Latest-result storage
	repo, closeRepo, err := newRepository(ctx, cfg.Storage)
	if err != nil {
		logger.Error(ctx, "Failed to initialize storage: ", err)
		os.Exit(1)
	}
	defer closeRepo()
	logger.Infof(ctx, "Storage driver: %s", cfg.Storage.Driver)

	// 5. Google Calendar client (optional)
	var calendar gcalendar.ICalendar
	if cfg.GoogleCalendar.CredentialsPath != "" {
		client, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
		} else {
			calendar = client
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 6. Priority use case
	sc := scorer.New(logger)
	priorityUC := usecase.New(logger, sc, repo, usecase.Options{
		LLM:      llm,
		Calendar: calendar,
		Scoring: usecase.ScoringDefaults{
			Weights: scorer.Weights{
				Deadline: cfg.Scoring.DeadlineWeight,
				Module:   cfg.Scoring.ModuleWeight,
				Effort:   cfg.Scoring.EffortWeight,
			},
			CustomPrompt: cfg.Scoring.CustomPrompt,
			Temperature:  cfg.Scoring.Temperature,
			Timeout:      cfg.Scoring.Timeout,
		},
		Schedule: usecase.ScheduleDefaults{
			Timezone:     cfg.Schedule.Timezone,
			DayStartHour: cfg.Schedule.DayStartHour,
			DayEndHour:   cfg.Schedule.DayEndHour,
			CalendarID:   cfg.GoogleCalendar.CalendarID,
		},
	})

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		AllowedOrigins:  cfg.CORS.AllowedOrigins,
		TrustedProxies:  cfg.HTTPServer.TrustedProxies,
		RequestsPerMin:  cfg.RateLimit.RequestsPerMin,
		PriorityUseCase: priorityUC,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		os.Exit(1)
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// newRepository builds the configured latest-result store and its cleanup.
func newRepository(ctx context.Context, cfg config.StorageConfig) (repository.Repository, func(), error) {
	switch cfg.Driver {
	case config.StorageRedis:
		client := goredis.NewClient(&goredis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("redis ping %s: %w", cfg.Redis.Addr, err)
		}
		return redisRepo.New(client, cfg.Redis.Key, cfg.Redis.TTL), func() { _ = client.Close() }, nil
	case config.StorageMemory:
		return memoryRepo.New(), func() {}, nil
	default:
		return fileRepo.New(cfg.FilePath), func() {}, nil
	}
}
