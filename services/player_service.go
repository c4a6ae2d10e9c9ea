package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/furk4ng99/fenerbahce-squad-builder/catalog"
	"github.com/furk4ng99/fenerbahce-squad-builder/models"
	"github.com/furk4ng99/fenerbahce-squad-builder/storage"
)

// SearchPlayersInput carries one picker query. The picker UI applies a
// 3-character minimum (catalog.MinGlobalQueryLen) before issuing a global
// free-text search and falls back to the default-club tier below it; that
// policy belongs to the caller and is deliberately not enforced here.
type SearchPlayersInput struct {
	Query string
	Club  string
	Limit int
}

type PlayerService interface {
	Search(ctx context.Context, input SearchPlayersInput) []models.Player
	GetByID(ctx context.Context, id string) (models.Player, error)
	UploadPortrait(ctx context.Context, id, contentType string, r io.Reader) (models.Player, error)
	RemovePortrait(ctx context.Context, id string) (models.Player, error)
}

type playerService struct {
	catalog  *catalog.Catalog
	uploader storage.FileUploader // nil when uploads are not configured
	logger   *slog.Logger
}

func NewPlayerService(c *catalog.Catalog, uploader storage.FileUploader, logger *slog.Logger) PlayerService {
	return &playerService{catalog: c, uploader: uploader, logger: logger}
}

func (s *playerService) Search(ctx context.Context, input SearchPlayersInput) []models.Player {
	return s.catalog.Search(strings.TrimSpace(input.Query), strings.TrimSpace(input.Club), input.Limit)
}

func (s *playerService) GetByID(ctx context.Context, id string) (models.Player, error) {
	p, ok := s.catalog.Get(id)
	if !ok {
		return models.Player{}, ErrPlayerNotFound
	}
	return p, nil
}

func portraitKey(id string) string {
	return fmt.Sprintf("players/%s/portrait", id)
}

// UploadPortrait stores a new portrait for the player under a stable key
// (overwriting any earlier upload) and points the catalog record at its
// public URL.
func (s *playerService) UploadPortrait(ctx context.Context, id, contentType string, r io.Reader) (models.Player, error) {
	if s.uploader == nil {
		return models.Player{}, ErrPortraitUploadsDisabled
	}
	if _, ok := s.catalog.Get(id); !ok {
		return models.Player{}, ErrPlayerNotFound
	}

	result, err := s.uploader.Upload(ctx, portraitKey(id), contentType, r)
	if err != nil {
		return models.Player{}, fmt.Errorf("failed to upload portrait for player %s: %w", id, err)
	}

	s.catalog.SetImage(id, result.Location)
	s.logger.Info("player portrait uploaded",
		slog.String("player_id", id),
		slog.String("key", result.Key))

	p, _ := s.catalog.Get(id)
	return p, nil
}

// RemovePortrait deletes an uploaded portrait and resets the record to the
// placeholder image.
func (s *playerService) RemovePortrait(ctx context.Context, id string) (models.Player, error) {
	if s.uploader == nil {
		return models.Player{}, ErrPortraitUploadsDisabled
	}
	if _, ok := s.catalog.Get(id); !ok {
		return models.Player{}, ErrPlayerNotFound
	}

	if err := s.uploader.Delete(ctx, portraitKey(id)); err != nil {
		return models.Player{}, fmt.Errorf("failed to delete portrait for player %s: %w", id, err)
	}

	s.catalog.SetImage(id, catalog.PlaceholderImage)
	p, _ := s.catalog.Get(id)
	return p, nil
}
