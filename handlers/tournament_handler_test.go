package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/furk4ng99/fenerbahce-squad-builder/services"
)

type mockTournamentService struct {
	StartFunc        func(ctx context.Context) (services.TournamentView, error)
	GetFunc          func(ctx context.Context, id string) (services.TournamentView, error)
	SelectWinnerFunc func(ctx context.Context, id string, slotID int) (services.TournamentView, error)
	RestartFunc      func(ctx context.Context, id string) (services.TournamentView, error)
}

func (m *mockTournamentService) Start(ctx context.Context) (services.TournamentView, error) {
	return m.StartFunc(ctx)
}

func (m *mockTournamentService) Get(ctx context.Context, id string) (services.TournamentView, error) {
	return m.GetFunc(ctx, id)
}

func (m *mockTournamentService) SelectWinner(ctx context.Context, id string, slotID int) (services.TournamentView, error) {
	return m.SelectWinnerFunc(ctx, id, slotID)
}

func (m *mockTournamentService) Restart(ctx context.Context, id string) (services.TournamentView, error) {
	return m.RestartFunc(ctx, id)
}

func tournamentRouter(svc services.TournamentService) *chi.Mux {
	h := NewTournamentHandler(svc)
	r := chi.NewRouter()
	r.Post("/tournaments", h.Start)
	r.Get("/tournaments/{id}", h.Get)
	r.Post("/tournaments/{id}/winner", h.SelectWinner)
	r.Post("/tournaments/{id}/restart", h.Restart)
	return r
}

func TestTournamentStartCreated(t *testing.T) {
	svc := &mockTournamentService{
		StartFunc: func(ctx context.Context) (services.TournamentView, error) {
			return services.TournamentView{ID: "t1"}, nil
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/tournaments", nil)
	rec := httptest.NewRecorder()
	tournamentRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}
}

func TestTournamentSelectWinner(t *testing.T) {
	svc := &mockTournamentService{
		SelectWinnerFunc: func(ctx context.Context, id string, slotID int) (services.TournamentView, error) {
			if id != "t1" || slotID != 7 {
				t.Errorf("forwarded id=%q slot=%d", id, slotID)
			}
			return services.TournamentView{ID: id}, nil
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/tournaments/t1/winner", strings.NewReader(`{"slot_id":7}`))
	rec := httptest.NewRecorder()
	tournamentRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
}

func TestTournamentErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"unknown session", services.ErrTournamentNotFound, http.StatusNotFound},
		{"slot outside pair", services.ErrSlotNotInPair, http.StatusBadRequest},
		{"already finished", services.ErrTournamentFinished, http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockTournamentService{
				SelectWinnerFunc: func(ctx context.Context, id string, slotID int) (services.TournamentView, error) {
					return services.TournamentView{}, tt.err
				},
			}

			req := httptest.NewRequest(http.MethodPost, "/tournaments/t1/winner", strings.NewReader(`{"slot_id":0}`))
			rec := httptest.NewRecorder()
			tournamentRouter(svc).ServeHTTP(rec, req)

			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestTournamentRestart(t *testing.T) {
	svc := &mockTournamentService{
		RestartFunc: func(ctx context.Context, id string) (services.TournamentView, error) {
			return services.TournamentView{ID: id}, nil
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/tournaments/t1/restart", nil)
	rec := httptest.NewRecorder()
	tournamentRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}
