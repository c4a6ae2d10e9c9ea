package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/furk4ng99/fenerbahce-squad-builder/models"
	"github.com/furk4ng99/fenerbahce-squad-builder/services"
)

type DuelHandler struct {
	service services.DuelService
}

func NewDuelHandler(service services.DuelService) *DuelHandler {
	return &DuelHandler{service: service}
}

func parseCategory(raw string) (models.DuelCategory, error) {
	if raw == "" {
		return "", nil
	}
	for _, c := range models.DuelCategories {
		if strings.EqualFold(raw, string(c)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown duel category %q", raw)
}

// NextPair handles GET /duels/next?category=&exclude=id1,id2.
func (h *DuelHandler) NextPair(w http.ResponseWriter, r *http.Request) {
	category, err := parseCategory(r.URL.Query().Get("category"))
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var exclude []string
	if raw := r.URL.Query().Get("exclude"); raw != "" {
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				exclude = append(exclude, id)
			}
		}
	}

	pair, err := h.service.NextPair(r.Context(), exclude, category)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"pair": pair}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// RecordPick handles POST /duels/picks.
func (h *DuelHandler) RecordPick(w http.ResponseWriter, r *http.Request) {
	var input struct {
		PlayerID string `json:"player_id"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	stats, err := h.service.RecordPick(r.Context(), input.PlayerID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"stats": stats}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Stats handles GET /duels/stats.
func (h *DuelHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"stats": stats}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Leaderboard handles GET /duels/leaderboard.
func (h *DuelHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	rows, err := h.service.Leaderboard(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"leaderboard": rows}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
