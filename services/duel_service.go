package services

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/furk4ng99/fenerbahce-squad-builder/duel"
	"github.com/furk4ng99/fenerbahce-squad-builder/models"
	"github.com/furk4ng99/fenerbahce-squad-builder/repositories"
)

// LeaderboardSize caps the daily top-picks view.
const LeaderboardSize = 6

type DuelService interface {
	// NextPair draws the next free-running matchup from the roster.
	NextPair(ctx context.Context, excludeIDs []string, category models.DuelCategory) ([2]models.DuelPlayer, error)
	// RecordPick tallies an accepted pick and notifies subscribers.
	RecordPick(ctx context.Context, playerID string) (models.DuelStats, error)
	// Stats returns today's tally; yesterday's blob reads as zeros.
	Stats(ctx context.Context) (models.DuelStats, error)
	// Leaderboard returns today's most-picked players with pick rates.
	Leaderboard(ctx context.Context) ([]models.LeaderboardRow, error)
}

type duelService struct {
	roster []models.DuelPlayer
	stats  repositories.StatsRepository
	hub    *duel.Hub
	logger *slog.Logger
	today  func() string

	mu  sync.Mutex
	rnd *rand.Rand
}

// NewDuelService wires the duel arena. today is injectable for the daily
// rollover tests; pass nil for the local clock.
func NewDuelService(
	roster []models.DuelPlayer,
	stats repositories.StatsRepository,
	hub *duel.Hub,
	logger *slog.Logger,
	rnd *rand.Rand,
	today func() string,
) DuelService {
	if today == nil {
		today = func() string { return time.Now().Format("2006-01-02") }
	}
	return &duelService{
		roster: roster,
		stats:  stats,
		hub:    hub,
		logger: logger,
		today:  today,
		rnd:    rnd,
	}
}

func (s *duelService) NextPair(ctx context.Context, excludeIDs []string, category models.DuelCategory) ([2]models.DuelPlayer, error) {
	s.mu.Lock()
	pair, ok := duel.DrawPair(s.roster, excludeIDs, category, s.rnd)
	s.mu.Unlock()
	if !ok {
		return [2]models.DuelPlayer{}, fmt.Errorf("roster cannot supply a duel pair: %w", ErrValidationFailed)
	}
	return pair, nil
}

// rollover returns stats reset to empty when the stored day is not today.
func (s *duelService) rollover(stats models.DuelStats) models.DuelStats {
	today := s.today()
	if stats.Date != today {
		return models.EmptyDuelStats(today)
	}
	return stats
}

func (s *duelService) Stats(ctx context.Context) (models.DuelStats, error) {
	stored, err := s.stats.Get(ctx)
	if err != nil {
		return models.DuelStats{}, err
	}
	return s.rollover(stored), nil
}

func (s *duelService) RecordPick(ctx context.Context, playerID string) (models.DuelStats, error) {
	if _, ok := duel.RosterByID(playerID); !ok {
		return models.DuelStats{}, ErrDuelPlayerNotFound
	}

	// Read-modify-write without coordination across clients; lost picks
	// are an accepted approximation for this vanity counter.
	stats, err := s.Stats(ctx)
	if err != nil {
		return models.DuelStats{}, err
	}
	stats.TotalPicks++
	stats.PlayerPicks[playerID]++
	stats.Date = s.today()

	if err := s.stats.Set(ctx, stats); err != nil {
		return models.DuelStats{}, err
	}

	if s.hub != nil {
		s.hub.BroadcastToRoom(duel.StatsRoom, duel.Event{
			Type:    duel.EventStatsUpdated,
			Payload: stats,
		})
	}
	s.logger.Debug("duel pick recorded",
		slog.String("player_id", playerID),
		slog.Int("total_picks", stats.TotalPicks))

	return stats, nil
}

func (s *duelService) Leaderboard(ctx context.Context) ([]models.LeaderboardRow, error) {
	stats, err := s.Stats(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]models.LeaderboardRow, 0, len(stats.PlayerPicks))
	for id, picks := range stats.PlayerPicks {
		player, ok := duel.RosterByID(id)
		if !ok {
			continue
		}
		rate := 0.0
		if stats.TotalPicks > 0 {
			rate = float64(picks) / float64(stats.TotalPicks) * 100
		}
		rows = append(rows, models.LeaderboardRow{Player: player, Picks: picks, PickRate: rate})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Picks != rows[j].Picks {
			return rows[i].Picks > rows[j].Picks
		}
		return rows[i].Player.ID < rows[j].Player.ID
	})
	if len(rows) > LeaderboardSize {
		rows = rows[:LeaderboardSize]
	}
	return rows, nil
}
