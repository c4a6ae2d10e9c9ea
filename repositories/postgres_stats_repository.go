package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/furk4ng99/fenerbahce-squad-builder/models"
	_ "github.com/lib/pq"
)

// postgresStatsRepository persists the tally as one upserted row. Schema:
//
//	CREATE TABLE IF NOT EXISTS duel_stats (
//	    id          smallint PRIMARY KEY DEFAULT 1 CHECK (id = 1),
//	    total_picks integer  NOT NULL,
//	    picks       jsonb    NOT NULL,
//	    day         text     NOT NULL
//	);
type postgresStatsRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

func NewPostgresStatsRepository(db *sql.DB, logger *slog.Logger) StatsRepository {
	return &postgresStatsRepository{db: db, logger: logger}
}

func (r *postgresStatsRepository) Get(ctx context.Context) (models.DuelStats, error) {
	query := `SELECT total_picks, picks, day FROM duel_stats WHERE id = 1`

	var stats models.DuelStats
	var picksJSON []byte
	err := r.db.QueryRowContext(ctx, query).Scan(&stats.TotalPicks, &picksJSON, &stats.Date)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.EmptyDuelStats(""), nil
		}
		return models.EmptyDuelStats(""), fmt.Errorf("failed to read duel stats row: %w", err)
	}

	if err := json.Unmarshal(picksJSON, &stats.PlayerPicks); err != nil {
		r.logger.Warn("duel stats picks column malformed, starting from empty state", slog.Any("error", err))
		return models.EmptyDuelStats(""), nil
	}
	if stats.PlayerPicks == nil {
		stats.PlayerPicks = make(map[string]int)
	}
	return stats, nil
}

func (r *postgresStatsRepository) Set(ctx context.Context, stats models.DuelStats) error {
	picksJSON, err := json.Marshal(stats.PlayerPicks)
	if err != nil {
		return fmt.Errorf("failed to encode duel stats picks: %w", err)
	}

	query := `
		INSERT INTO duel_stats (id, total_picks, picks, day)
		VALUES (1, $1, $2, $3)
		ON CONFLICT (id) DO UPDATE
		SET total_picks = EXCLUDED.total_picks,
		    picks = EXCLUDED.picks,
		    day = EXCLUDED.day`

	if _, err := r.db.ExecContext(ctx, query, stats.TotalPicks, picksJSON, stats.Date); err != nil {
		return fmt.Errorf("failed to upsert duel stats row: %w", err)
	}
	return nil
}

func (r *postgresStatsRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM duel_stats WHERE id = 1`); err != nil {
		return fmt.Errorf("failed to clear duel stats row: %w", err)
	}
	return nil
}
