package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/furk4ng99/fenerbahce-squad-builder/catalog"
	"github.com/furk4ng99/fenerbahce-squad-builder/services"
)

var errInvalidLimit = errors.New("limit must be a non-negative integer")

type PlayerHandler struct {
	service     services.PlayerService
	defaultClub string
}

func NewPlayerHandler(service services.PlayerService, defaultClub string) *PlayerHandler {
	return &PlayerHandler{service: service, defaultClub: defaultClub}
}

// Search handles GET /players/search?q=&club=&limit=. Queries shorter than
// the global-search minimum fall back to the default-club tier; the
// catalog itself enforces no minimum.
func (h *PlayerHandler) Search(w http.ResponseWriter, r *http.Request) {
	input := services.SearchPlayersInput{
		Query: r.URL.Query().Get("q"),
		Club:  r.URL.Query().Get("club"),
	}

	if input.Club == "" && len(strings.TrimSpace(input.Query)) < catalog.MinGlobalQueryLen {
		input.Club = h.defaultClub
		input.Query = ""
	}

	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			badRequestResponse(w, r, errInvalidLimit)
			return
		}
		input.Limit = limit
	}

	players := h.service.Search(r.Context(), input)
	if err := writeJSON(w, http.StatusOK, jsonResponse{"players": players}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Get handles GET /players/{id}.
func (h *PlayerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	player, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"player": player}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// UploadPortrait handles PUT /players/{id}/portrait. The request body is
// the raw image; Content-Type is forwarded to storage.
func (h *PlayerHandler) UploadPortrait(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	player, err := h.service.UploadPortrait(r.Context(), id, contentType, r.Body)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"player": player}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// RemovePortrait handles DELETE /players/{id}/portrait.
func (h *PlayerHandler) RemovePortrait(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	player, err := h.service.RemovePortrait(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"player": player}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
