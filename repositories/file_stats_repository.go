package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/furk4ng99/fenerbahce-squad-builder/models"
)

// fileStatsRepository keeps the tally as a single JSON blob on disk. It is
// the default store when no database is configured.
type fileStatsRepository struct {
	path   string
	logger *slog.Logger
	mu     sync.Mutex
}

func NewFileStatsRepository(path string, logger *slog.Logger) StatsRepository {
	return &fileStatsRepository{path: path, logger: logger}
}

func (r *fileStatsRepository) Get(ctx context.Context) (models.DuelStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := os.ReadFile(r.path)
	if err != nil {
		if !os.IsNotExist(err) {
			r.logger.Warn("stats blob unreadable, starting from empty state", slog.Any("error", err))
		}
		return models.EmptyDuelStats(""), nil
	}

	var stats models.DuelStats
	if err := json.Unmarshal(data, &stats); err != nil {
		r.logger.Warn("stats blob malformed, starting from empty state", slog.Any("error", err))
		return models.EmptyDuelStats(""), nil
	}
	if stats.PlayerPicks == nil {
		stats.PlayerPicks = make(map[string]int)
	}
	return stats, nil
}

func (r *fileStatsRepository) Set(ctx context.Context, stats models.DuelStats) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("failed to encode stats blob: %w", err)
	}
	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create stats directory: %w", err)
		}
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write stats blob: %w", err)
	}
	return nil
}

func (r *fileStatsRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := os.Remove(r.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear stats blob: %w", err)
	}
	return nil
}
