package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"student-task-priority/internal/model"
	"student-task-priority/internal/priority/repository"
)

func newTestRepo(t *testing.T, ttl time.Duration) (repository.Repository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return New(client, "", ttl), mr
}

func TestRepository_RoundTrip(t *testing.T) {
	repo, mr := newTestRepo(t, 0)
	ctx := context.Background()

	_, err := repo.GetLatest(ctx)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	result := model.ScoringResult{
		ID:          "r1",
		RatedTasks:  []model.ScoredTask{{Task: model.Task{ID: "a", Title: "A"}, PriorityScore: 72, PriorityBand: model.BandHigh}},
		Summary:     "ok",
		Mode:        model.ModeLLM,
		Provider:    "gemini",
		GeneratedAt: time.Date(2026, 2, 22, 10, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.SaveLatest(ctx, result))
	assert.True(t, mr.Exists(DefaultKey))

	got, err := repo.GetLatest(ctx)
	require.NoError(t, err)
	assert.Equal(t, result, got)
}

func TestRepository_TTL(t *testing.T) {
	repo, mr := newTestRepo(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, repo.SaveLatest(ctx, model.ScoringResult{ID: "r1"}))
	assert.Equal(t, time.Minute, mr.TTL(DefaultKey))

	mr.FastForward(2 * time.Minute)
	_, err := repo.GetLatest(ctx)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestRepository_CorruptValue(t *testing.T) {
	repo, mr := newTestRepo(t, 0)
	require.NoError(t, mr.Set(DefaultKey, "not json"))

	_, err := repo.GetLatest(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrNotFound)
}
