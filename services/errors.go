package services

import "errors"

// Shared service errors, mapped to HTTP statuses in the handlers package.
var (
	ErrNotFound         = errors.New("requested resource not found")
	ErrValidationFailed = errors.New("validation failed")

	ErrPlayerNotFound     = errors.New("player not found")
	ErrDuelPlayerNotFound = errors.New("duel player not found")
	ErrFormationNotFound  = errors.New("formation not found")
	ErrTournamentNotFound = errors.New("tournament session not found")

	ErrTournamentFinished = errors.New("tournament already has a champion")
	ErrSlotNotInPair      = errors.New("selected slot is not part of the current pair")

	ErrPortraitUploadsDisabled = errors.New("portrait uploads are not configured")
)
