package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"student-task-priority/internal/model"
	"student-task-priority/internal/priority/repository"
)

// DefaultKey is used when no key is configured.
const DefaultKey = "priority:latest"

type implRepository struct {
	client goredis.UniversalClient
	key    string
	ttl    time.Duration
}

// New creates a repository storing the latest result as JSON under key.
// A zero ttl keeps the value until it is overwritten.
func New(client goredis.UniversalClient, key string, ttl time.Duration) repository.Repository {
	if key == "" {
		key = DefaultKey
	}
	return &implRepository{client: client, key: key, ttl: ttl}
}

func (r *implRepository) SaveLatest(ctx context.Context, result model.ScoringResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("redis.SaveLatest: marshal: %w", err)
	}
	if err := r.client.Set(ctx, r.key, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis.SaveLatest: set %s: %w", r.key, err)
	}
	return nil
}

func (r *implRepository) GetLatest(ctx context.Context) (model.ScoringResult, error) {
	data, err := r.client.Get(ctx, r.key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return model.ScoringResult{}, repository.ErrNotFound
	}
	if err != nil {
		return model.ScoringResult{}, fmt.Errorf("redis.GetLatest: get %s: %w", r.key, err)
	}

	var result model.ScoringResult
	if err := json.Unmarshal(data, &result); err != nil {
		return model.ScoringResult{}, fmt.Errorf("redis.GetLatest: decode: %w", err)
	}
	return result, nil
}
