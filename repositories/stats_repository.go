package repositories

import (
	"context"

	"github.com/furk4ng99/fenerbahce-squad-builder/models"
)

// StatsRepository is the storage port for the daily duel-pick tally. The
// daily-rollover policy lives in the service layer; implementations only
// persist and return the blob as-is. A missing or unreadable blob must be
// reported as empty state, never as an error; the leaderboard starting at
// zero is the expected behavior for corrupt storage.
//
// Concurrent read-modify-write from multiple clients can lose picks; the
// tally is a non-critical vanity metric and the race is an accepted
// approximation.
type StatsRepository interface {
	Get(ctx context.Context) (models.DuelStats, error)
	Set(ctx context.Context, stats models.DuelStats) error
	Clear(ctx context.Context) error
}
