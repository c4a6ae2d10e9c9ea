package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/furk4ng99/fenerbahce-squad-builder/services"
)

type SquadHandler struct {
	service services.SquadService
}

func NewSquadHandler(service services.SquadService) *SquadHandler {
	return &SquadHandler{service: service}
}

// ListFormations handles GET /formations.
func (h *SquadHandler) ListFormations(w http.ResponseWriter, r *http.Request) {
	formations := h.service.Formations(r.Context())
	if err := writeJSON(w, http.StatusOK, jsonResponse{"formations": formations}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetFormation handles GET /formations/{name}.
func (h *SquadHandler) GetFormation(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	formation, err := h.service.Formation(r.Context(), name)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"formation": formation}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Summary handles POST /squads/summary.
func (h *SquadHandler) Summary(w http.ResponseWriter, r *http.Request) {
	var input services.SquadSummaryInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	summary, err := h.service.Summary(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"summary": summary}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
