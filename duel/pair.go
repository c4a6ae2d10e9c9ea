package duel

import (
	"math/rand"

	"github.com/furk4ng99/fenerbahce-squad-builder/models"
)

// Shuffle applies a uniform Fisher–Yates shuffle in place.
func Shuffle[T any](items []T, rnd *rand.Rand) {
	for i := len(items) - 1; i > 0; i-- {
		j := rnd.Intn(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}

// DrawPair draws two distinct players uniformly at random from pool minus
// excludeIDs, optionally restricted to one category (empty category means
// no restriction). If fewer than two candidates remain after exclusion the
// exclusion set is dropped and the draw is taken from the categorized (or
// full) pool again. Returns false when even the unfiltered pool cannot
// supply two players.
//
// The random source is explicit so tests can substitute a fixed sequence.
func DrawPair(pool []models.DuelPlayer, excludeIDs []string, category models.DuelCategory, rnd *rand.Rand) ([2]models.DuelPlayer, bool) {
	excluded := make(map[string]struct{}, len(excludeIDs))
	for _, id := range excludeIDs {
		excluded[id] = struct{}{}
	}

	candidates := filterPool(pool, excluded, category)
	if len(candidates) < 2 {
		candidates = filterPool(pool, nil, category)
	}
	if len(candidates) < 2 {
		candidates = filterPool(pool, nil, "")
	}
	if len(candidates) < 2 {
		return [2]models.DuelPlayer{}, false
	}

	Shuffle(candidates, rnd)
	return [2]models.DuelPlayer{candidates[0], candidates[1]}, true
}

func filterPool(pool []models.DuelPlayer, excluded map[string]struct{}, category models.DuelCategory) []models.DuelPlayer {
	out := make([]models.DuelPlayer, 0, len(pool))
	for _, p := range pool {
		if _, skip := excluded[p.ID]; skip {
			continue
		}
		if category != "" && p.Category != category {
			continue
		}
		out = append(out, p)
	}
	return out
}
