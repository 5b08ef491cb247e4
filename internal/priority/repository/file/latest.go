package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"student-task-priority/internal/model"
	"student-task-priority/internal/priority/repository"
)

type implRepository struct {
	mu   sync.RWMutex
	path string
}

var _ repository.Repository = (*implRepository)(nil)

// New creates a repository that keeps the latest result as a pretty-printed
// JSON file at path. Parent directories are created on first save.
func New(path string) repository.Repository {
	return &implRepository{path: path}
}

// SaveLatest writes to a temp file in the same directory and renames it
// over the target so readers never see a partial document.
func (r *implRepository) SaveLatest(_ context.Context, result model.ScoringResult) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("file.SaveLatest: marshal: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("file.SaveLatest: mkdir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".latest-*.json")
	if err != nil {
		return fmt.Errorf("file.SaveLatest: create temp: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		return fmt.Errorf("file.SaveLatest: write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("file.SaveLatest: close: %w", err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		return fmt.Errorf("file.SaveLatest: rename: %w", err)
	}
	return nil
}

func (r *implRepository) GetLatest(_ context.Context) (model.ScoringResult, error) {
	r.mu.RLock()
	data, err := os.ReadFile(r.path)
	r.mu.RUnlock()

	if errors.Is(err, fs.ErrNotExist) {
		return model.ScoringResult{}, repository.ErrNotFound
	}
	if err != nil {
		return model.ScoringResult{}, fmt.Errorf("file.GetLatest: read: %w", err)
	}

	var result model.ScoringResult
	if err := json.Unmarshal(data, &result); err != nil {
		return model.ScoringResult{}, fmt.Errorf("file.GetLatest: decode %s: %w", r.path, err)
	}
	return result, nil
}
