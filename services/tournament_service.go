package services

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"sync"

	"github.com/furk4ng99/fenerbahce-squad-builder/duel"
	"github.com/furk4ng99/fenerbahce-squad-builder/models"
	"github.com/google/uuid"
)

// TournamentView is the state snapshot returned to the UI after every
// transition.
type TournamentView struct {
	ID             string              `json:"id"`
	State          duel.State          `json:"state"`
	RoundName      string              `json:"round_name"`
	CurrentPair    *[2]duel.Slot       `json:"current_pair,omitempty"`
	Champion       *models.DuelPlayer  `json:"champion,omitempty"`
	DuelsCompleted int                 `json:"duels_completed"`
	TotalDuels     int                 `json:"total_duels"`
	Remaining      int                 `json:"players_remaining"`
	TotalPlayers   int                 `json:"total_players"`
	Progress       float64             `json:"progress"`
	History        []duel.HistoryEntry `json:"history"`
}

// TournamentRoom names the hub room carrying one tournament's updates.
func TournamentRoom(id string) string {
	return "tournament_" + id
}

type TournamentService interface {
	Start(ctx context.Context) (TournamentView, error)
	Get(ctx context.Context, id string) (TournamentView, error)
	SelectWinner(ctx context.Context, id string, slotID int) (TournamentView, error)
	Restart(ctx context.Context, id string) (TournamentView, error)
}

// session pairs a tournament with its own lock; the engine itself is a
// single-actor machine and every HTTP transition serializes through here.
type session struct {
	mu sync.Mutex
	t  *duel.Tournament
}

type tournamentService struct {
	roster []models.DuelPlayer
	hub    *duel.Hub
	logger *slog.Logger
	newRnd func() *rand.Rand

	mu       sync.RWMutex
	sessions map[string]*session
}

func NewTournamentService(roster []models.DuelPlayer, hub *duel.Hub, logger *slog.Logger, newRnd func() *rand.Rand) TournamentService {
	return &tournamentService{
		roster:   roster,
		hub:      hub,
		logger:   logger,
		newRnd:   newRnd,
		sessions: make(map[string]*session),
	}
}

func (s *tournamentService) view(id string, t *duel.Tournament) TournamentView {
	v := TournamentView{
		ID:             id,
		State:          t.State(),
		RoundName:      t.RoundName(),
		DuelsCompleted: t.DuelsCompleted(),
		TotalDuels:     duel.PoolSize - 1,
		Remaining:      duel.PoolSize - t.EliminatedCount(),
		TotalPlayers:   duel.PoolSize,
		Progress:       t.Progress(),
		History:        t.History(),
	}
	if pair, ok := t.CurrentPair(); ok {
		v.CurrentPair = &pair
	}
	if champion, ok := t.Champion(); ok {
		v.Champion = &champion
	}
	return v
}

func (s *tournamentService) Start(ctx context.Context) (TournamentView, error) {
	t, err := duel.NewTournament(s.roster, s.newRnd())
	if err != nil {
		return TournamentView{}, err
	}

	id := uuid.NewString()
	s.mu.Lock()
	s.sessions[id] = &session{t: t}
	s.mu.Unlock()

	s.logger.Info("tournament started", slog.String("tournament_id", id))
	return s.view(id, t), nil
}

func (s *tournamentService) getSession(id string) (*session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrTournamentNotFound
	}
	return sess, nil
}

func (s *tournamentService) Get(ctx context.Context, id string) (TournamentView, error) {
	sess, err := s.getSession(id)
	if err != nil {
		return TournamentView{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return s.view(id, sess.t), nil
}

func (s *tournamentService) SelectWinner(ctx context.Context, id string, slotID int) (TournamentView, error) {
	sess, err := s.getSession(id)
	if err != nil {
		return TournamentView{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if err := sess.t.SelectWinner(slotID); err != nil {
		switch {
		case errors.Is(err, duel.ErrTournamentFinished):
			return TournamentView{}, ErrTournamentFinished
		case errors.Is(err, duel.ErrSlotNotInPair):
			return TournamentView{}, ErrSlotNotInPair
		default:
			return TournamentView{}, err
		}
	}

	v := s.view(id, sess.t)
	if s.hub != nil {
		s.hub.BroadcastToRoom(TournamentRoom(id), duel.Event{
			Type:    duel.EventTournamentUpdate,
			Payload: v,
		})
	}
	if v.Champion != nil {
		s.logger.Info("tournament champion crowned",
			slog.String("tournament_id", id),
			slog.String("champion", v.Champion.Name))
	}
	return v, nil
}

func (s *tournamentService) Restart(ctx context.Context, id string) (TournamentView, error) {
	sess, err := s.getSession(id)
	if err != nil {
		return TournamentView{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.t.Restart(s.roster)
	s.logger.Info("tournament restarted", slog.String("tournament_id", id))
	return s.view(id, sess.t), nil
}
