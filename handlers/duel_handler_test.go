package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/furk4ng99/fenerbahce-squad-builder/models"
	"github.com/furk4ng99/fenerbahce-squad-builder/services"
)

type mockDuelService struct {
	NextPairFunc    func(ctx context.Context, excludeIDs []string, category models.DuelCategory) ([2]models.DuelPlayer, error)
	RecordPickFunc  func(ctx context.Context, playerID string) (models.DuelStats, error)
	StatsFunc       func(ctx context.Context) (models.DuelStats, error)
	LeaderboardFunc func(ctx context.Context) ([]models.LeaderboardRow, error)
}

func (m *mockDuelService) NextPair(ctx context.Context, excludeIDs []string, category models.DuelCategory) ([2]models.DuelPlayer, error) {
	return m.NextPairFunc(ctx, excludeIDs, category)
}

func (m *mockDuelService) RecordPick(ctx context.Context, playerID string) (models.DuelStats, error) {
	return m.RecordPickFunc(ctx, playerID)
}

func (m *mockDuelService) Stats(ctx context.Context) (models.DuelStats, error) {
	return m.StatsFunc(ctx)
}

func (m *mockDuelService) Leaderboard(ctx context.Context) ([]models.LeaderboardRow, error) {
	return m.LeaderboardFunc(ctx)
}

func duelRouter(svc services.DuelService) *chi.Mux {
	h := NewDuelHandler(svc)
	r := chi.NewRouter()
	r.Get("/duels/next", h.NextPair)
	r.Post("/duels/picks", h.RecordPick)
	r.Get("/duels/stats", h.Stats)
	r.Get("/duels/leaderboard", h.Leaderboard)
	return r
}

func TestDuelNextPairForwardsFilters(t *testing.T) {
	var gotExclude []string
	var gotCategory models.DuelCategory
	svc := &mockDuelService{
		NextPairFunc: func(ctx context.Context, excludeIDs []string, category models.DuelCategory) ([2]models.DuelPlayer, error) {
			gotExclude = excludeIDs
			gotCategory = category
			return [2]models.DuelPlayer{{ID: "a"}, {ID: "b"}}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/duels/next?category=strikers&exclude=a,b,%20c", nil)
	rec := httptest.NewRecorder()
	duelRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if gotCategory != models.CategoryStrikers {
		t.Errorf("category = %q", gotCategory)
	}
	if len(gotExclude) != 3 || gotExclude[2] != "c" {
		t.Errorf("exclude = %v", gotExclude)
	}
}

func TestDuelNextPairUnknownCategory(t *testing.T) {
	svc := &mockDuelService{
		NextPairFunc: func(ctx context.Context, excludeIDs []string, category models.DuelCategory) ([2]models.DuelPlayer, error) {
			t.Fatal("service must not be called for an unknown category")
			return [2]models.DuelPlayer{}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/duels/next?category=managers", nil)
	rec := httptest.NewRecorder()
	duelRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestDuelRecordPick(t *testing.T) {
	svc := &mockDuelService{
		RecordPickFunc: func(ctx context.Context, playerID string) (models.DuelStats, error) {
			if playerID != "alex-de-souza" {
				t.Errorf("player id = %q", playerID)
			}
			return models.DuelStats{TotalPicks: 1, PlayerPicks: map[string]int{playerID: 1}, Date: "2024-01-01"}, nil
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/duels/picks", strings.NewReader(`{"player_id":"alex-de-souza"}`))
	rec := httptest.NewRecorder()
	duelRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
}

func TestDuelRecordPickUnknownPlayer(t *testing.T) {
	svc := &mockDuelService{
		RecordPickFunc: func(ctx context.Context, playerID string) (models.DuelStats, error) {
			return models.DuelStats{}, services.ErrDuelPlayerNotFound
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/duels/picks", strings.NewReader(`{"player_id":"nobody"}`))
	rec := httptest.NewRecorder()
	duelRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestDuelRecordPickMalformedBody(t *testing.T) {
	svc := &mockDuelService{
		RecordPickFunc: func(ctx context.Context, playerID string) (models.DuelStats, error) {
			t.Fatal("service must not be called for a malformed body")
			return models.DuelStats{}, nil
		},
	}

	for _, body := range []string{"", "{bad", `{"unknown":"field"}`} {
		req := httptest.NewRequest(http.MethodPost, "/duels/picks", strings.NewReader(body))
		rec := httptest.NewRecorder()
		duelRouter(svc).ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %q: status = %d, want 400", body, rec.Code)
		}
	}
}
