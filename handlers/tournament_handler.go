package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/furk4ng99/fenerbahce-squad-builder/services"
)

type TournamentHandler struct {
	service services.TournamentService
}

func NewTournamentHandler(service services.TournamentService) *TournamentHandler {
	return &TournamentHandler{service: service}
}

// Start handles POST /tournaments.
func (h *TournamentHandler) Start(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.Start(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"tournament": view}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Get handles GET /tournaments/{id}.
func (h *TournamentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	view, err := h.service.Get(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"tournament": view}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// SelectWinner handles POST /tournaments/{id}/winner.
func (h *TournamentHandler) SelectWinner(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var input struct {
		SlotID int `json:"slot_id"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	view, err := h.service.SelectWinner(r.Context(), id, input.SlotID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"tournament": view}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Restart handles POST /tournaments/{id}/restart.
func (h *TournamentHandler) Restart(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	view, err := h.service.Restart(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"tournament": view}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
