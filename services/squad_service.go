package services

import (
	"context"
	"fmt"
	"math"

	"github.com/furk4ng99/fenerbahce-squad-builder/catalog"
	"github.com/furk4ng99/fenerbahce-squad-builder/models"
)

// SquadSummaryInput is a formation name plus slot→player assignments.
// Slots may be empty; unknown player ids are reported, not fatal.
type SquadSummaryInput struct {
	Formation   string            `json:"formation"`
	Assignments map[string]string `json:"assignments"`
}

// SquadSlotView is one resolved pitch slot.
type SquadSlotView struct {
	Slot   models.FormationSlot `json:"slot"`
	Player *models.Player       `json:"player,omitempty"`
}

// SquadSummary mirrors the squad-builder footer: total market cost in
// millions (one decimal) and the average rating of placed players.
type SquadSummary struct {
	Formation     string          `json:"formation"`
	Slots         []SquadSlotView `json:"slots"`
	PlacedPlayers int             `json:"placed_players"`
	TotalCostM    float64         `json:"total_cost_m"`
	AverageRating float64         `json:"average_rating"`
	UnknownIDs    []string        `json:"unknown_ids,omitempty"`
}

type SquadService interface {
	Formations(ctx context.Context) []models.Formation
	Formation(ctx context.Context, name string) (models.Formation, error)
	Summary(ctx context.Context, input SquadSummaryInput) (SquadSummary, error)
}

type squadService struct {
	catalog *catalog.Catalog
}

func NewSquadService(c *catalog.Catalog) SquadService {
	return &squadService{catalog: c}
}

func (s *squadService) Formations(ctx context.Context) []models.Formation {
	return models.Formations
}

func (s *squadService) Formation(ctx context.Context, name string) (models.Formation, error) {
	f, ok := models.FormationByName(name)
	if !ok {
		return models.Formation{}, ErrFormationNotFound
	}
	return f, nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func (s *squadService) Summary(ctx context.Context, input SquadSummaryInput) (SquadSummary, error) {
	formation, ok := models.FormationByName(input.Formation)
	if !ok {
		return SquadSummary{}, ErrFormationNotFound
	}
	for slotID := range input.Assignments {
		if !formationHasSlot(formation, slotID) {
			return SquadSummary{}, fmt.Errorf("unknown slot %q in formation %s: %w", slotID, formation.Name, ErrValidationFailed)
		}
	}

	summary := SquadSummary{Formation: formation.Name}
	var totalValue, totalRating float64

	for _, slot := range formation.Slots {
		view := SquadSlotView{Slot: slot}
		if playerID, assigned := input.Assignments[slot.ID]; assigned && playerID != "" {
			if player, found := s.catalog.Get(playerID); found {
				view.Player = &player
				totalValue += player.Value
				totalRating += float64(player.Rating)
				summary.PlacedPlayers++
			} else {
				summary.UnknownIDs = append(summary.UnknownIDs, playerID)
			}
		}
		summary.Slots = append(summary.Slots, view)
	}

	summary.TotalCostM = round1(totalValue / 1_000_000)
	if summary.PlacedPlayers > 0 {
		summary.AverageRating = round1(totalRating / float64(summary.PlacedPlayers))
	}
	return summary, nil
}

func formationHasSlot(f models.Formation, slotID string) bool {
	for _, s := range f.Slots {
		if s.ID == slotID {
			return true
		}
	}
	return false
}
