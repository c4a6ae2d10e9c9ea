package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/furk4ng99/fenerbahce-squad-builder/models"
	"github.com/furk4ng99/fenerbahce-squad-builder/services"
)

type mockPlayerService struct {
	SearchFunc         func(ctx context.Context, input services.SearchPlayersInput) []models.Player
	GetByIDFunc        func(ctx context.Context, id string) (models.Player, error)
	UploadPortraitFunc func(ctx context.Context, id, contentType string, r io.Reader) (models.Player, error)
	RemovePortraitFunc func(ctx context.Context, id string) (models.Player, error)
}

func (m *mockPlayerService) Search(ctx context.Context, input services.SearchPlayersInput) []models.Player {
	return m.SearchFunc(ctx, input)
}

func (m *mockPlayerService) GetByID(ctx context.Context, id string) (models.Player, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *mockPlayerService) UploadPortrait(ctx context.Context, id, contentType string, r io.Reader) (models.Player, error) {
	return m.UploadPortraitFunc(ctx, id, contentType, r)
}

func (m *mockPlayerService) RemovePortrait(ctx context.Context, id string) (models.Player, error) {
	return m.RemovePortraitFunc(ctx, id)
}

func playerRouter(svc services.PlayerService) *chi.Mux {
	h := NewPlayerHandler(svc, "Fenerbahce")
	r := chi.NewRouter()
	r.Get("/players/search", h.Search)
	r.Get("/players/{id}", h.Get)
	r.Put("/players/{id}/portrait", h.UploadPortrait)
	r.Delete("/players/{id}/portrait", h.RemovePortrait)
	return r
}

func TestPlayerSearchGlobalTier(t *testing.T) {
	var captured services.SearchPlayersInput
	svc := &mockPlayerService{
		SearchFunc: func(ctx context.Context, input services.SearchPlayersInput) []models.Player {
			captured = input
			return []models.Player{{ID: "1", Name: "Kerem"}}
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/players/search?q=kerem&limit=5", nil)
	rec := httptest.NewRecorder()
	playerRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if captured.Query != "kerem" || captured.Club != "" || captured.Limit != 5 {
		t.Errorf("forwarded input = %+v", captured)
	}

	var body struct {
		Players []models.Player `json:"players"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(body.Players) != 1 || body.Players[0].Name != "Kerem" {
		t.Errorf("body = %+v", body)
	}
}

func TestPlayerSearchShortQueryFallsBackToDefaultClub(t *testing.T) {
	var captured services.SearchPlayersInput
	svc := &mockPlayerService{
		SearchFunc: func(ctx context.Context, input services.SearchPlayersInput) []models.Player {
			captured = input
			return nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/players/search?q=ke", nil)
	rec := httptest.NewRecorder()
	playerRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	// Below the global-search minimum the query is dropped in favor of
	// the default-club tier.
	if captured.Club != "Fenerbahce" || captured.Query != "" {
		t.Errorf("forwarded input = %+v", captured)
	}
}

func TestPlayerSearchExplicitClubWins(t *testing.T) {
	var captured services.SearchPlayersInput
	svc := &mockPlayerService{
		SearchFunc: func(ctx context.Context, input services.SearchPlayersInput) []models.Player {
			captured = input
			return nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/players/search?club=Galatasaray", nil)
	rec := httptest.NewRecorder()
	playerRouter(svc).ServeHTTP(rec, req)

	if captured.Club != "Galatasaray" {
		t.Errorf("forwarded input = %+v", captured)
	}
}

func TestPlayerSearchBadLimit(t *testing.T) {
	svc := &mockPlayerService{
		SearchFunc: func(ctx context.Context, input services.SearchPlayersInput) []models.Player {
			t.Fatal("service must not be called for an invalid limit")
			return nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/players/search?limit=abc", nil)
	rec := httptest.NewRecorder()
	playerRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestPlayerGetNotFound(t *testing.T) {
	svc := &mockPlayerService{
		GetByIDFunc: func(ctx context.Context, id string) (models.Player, error) {
			return models.Player{}, services.ErrPlayerNotFound
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/players/404", nil)
	rec := httptest.NewRecorder()
	playerRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestPlayerPortraitUploadsDisabled(t *testing.T) {
	svc := &mockPlayerService{
		UploadPortraitFunc: func(ctx context.Context, id, contentType string, r io.Reader) (models.Player, error) {
			return models.Player{}, services.ErrPortraitUploadsDisabled
		},
	}

	req := httptest.NewRequest(http.MethodPut, "/players/1/portrait", nil)
	rec := httptest.NewRecorder()
	playerRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
}

func TestPlayerPortraitUpload(t *testing.T) {
	svc := &mockPlayerService{
		UploadPortraitFunc: func(ctx context.Context, id, contentType string, r io.Reader) (models.Player, error) {
			if id != "1" {
				t.Errorf("id = %q", id)
			}
			if contentType != "image/png" {
				t.Errorf("content type = %q", contentType)
			}
			return models.Player{ID: "1", Image: "https://cdn.example/players/1/portrait"}, nil
		},
	}

	req := httptest.NewRequest(http.MethodPut, "/players/1/portrait", nil)
	req.Header.Set("Content-Type", "image/png")
	rec := httptest.NewRecorder()
	playerRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}
