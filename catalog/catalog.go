package catalog

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/furk4ng99/fenerbahce-squad-builder/models"
)

// Query limits. Truncation always happens after filtering and sorting.
const (
	DefaultSearchLimit = 20
	MaxSearchLimit     = 50
)

// MinGlobalQueryLen is the caller-side convention for switching from the
// default-club tier to the global search tier. The catalog itself does not
// enforce a minimum query length; the threshold is documented here as the
// contract between catalog and picker UI.
const MinGlobalQueryLen = 3

// Catalog is the in-memory queryable player table. It is built once from
// the ingested dataset; the only mutation after load is SetImage.
type Catalog struct {
	mu      sync.RWMutex
	players []models.Player
	byID    map[string]int
}

// New builds a catalog from normalized records, preserving their order.
func New(players []models.Player) *Catalog {
	byID := make(map[string]int, len(players))
	for i, p := range players {
		if _, ok := byID[p.ID]; !ok {
			byID[p.ID] = i
		}
	}
	return &Catalog{players: players, byID: byID}
}

// Load ingests the dataset at path and builds the catalog. A missing or
// unreadable dataset is a fatal error: there is no partial catalog.
func Load(path string, opts NormalizeOptions) (*Catalog, error) {
	rows, err := ParseCSVFile(path)
	if err != nil {
		return nil, err
	}
	players := NormalizeRows(rows, opts)
	if len(players) == 0 {
		return nil, fmt.Errorf("dataset %s produced no usable player rows", path)
	}
	return New(players), nil
}

// Len returns the number of records in the catalog.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.players)
}

// Get returns the record with the given id.
func (c *Catalog) Get(id string) (models.Player, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	i, ok := c.byID[id]
	if !ok {
		return models.Player{}, false
	}
	return c.players[i], true
}

// SetImage replaces the portrait URL of the record with the given id.
func (c *Catalog) SetImage(id, url string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	i, ok := c.byID[id]
	if !ok {
		return false
	}
	c.players[i].Image = url
	return true
}

// Search answers a filter query against the table.
//
// When club is non-empty it takes priority: only records whose club matches
// it case-insensitively (exact match, not substring) are returned and the
// free-text query is ignored. Otherwise a non-empty query matches records
// whose name or club contains it as a case-insensitive substring, with
// Turkish characters folded to ASCII on both sides. With neither filter the
// full catalog is returned, subject to limit.
//
// Results are ordered by market value descending; ties keep their original
// row order. Truncation to limit happens after filtering and sorting.
func (c *Catalog) Search(query, club string, limit int) []models.Player {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	if limit > MaxSearchLimit {
		limit = MaxSearchLimit
	}

	c.mu.RLock()
	matched := make([]models.Player, 0, len(c.players))
	switch {
	case club != "":
		want := strings.ToLower(club)
		for _, p := range c.players {
			if strings.ToLower(p.Club) == want {
				matched = append(matched, p)
			}
		}
	case query != "":
		needle := FoldTurkish(strings.ToLower(query))
		for _, p := range c.players {
			name := FoldTurkish(strings.ToLower(p.Name))
			clubName := FoldTurkish(strings.ToLower(p.Club))
			if strings.Contains(name, needle) || strings.Contains(clubName, needle) {
				matched = append(matched, p)
			}
		}
	default:
		matched = append(matched, c.players...)
	}
	c.mu.RUnlock()

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Value > matched[j].Value
	})

	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched
}

// foldMap sends Turkish and common accented letters to ASCII so "Şanlı"
// matches a plain "sanli" query.
var foldMap = map[rune]rune{
	'ç': 'c', 'Ç': 'C',
	'ğ': 'g', 'Ğ': 'G',
	'ı': 'i', 'İ': 'I',
	'ö': 'o', 'Ö': 'O',
	'ş': 's', 'Ş': 'S',
	'ü': 'u', 'Ü': 'U',
	'á': 'a', 'à': 'a', 'â': 'a', 'ã': 'a', 'ä': 'a',
	'é': 'e', 'è': 'e', 'ê': 'e', 'ë': 'e',
	'í': 'i', 'ì': 'i', 'î': 'i', 'ï': 'i',
	'ó': 'o', 'ò': 'o', 'ô': 'o', 'õ': 'o',
	'ú': 'u', 'ù': 'u', 'û': 'u',
	'ñ': 'n', 'Ñ': 'N',
	'ý': 'y', 'ÿ': 'y',
}

// FoldTurkish normalizes Turkish and accented characters to their ASCII
// equivalents for search comparison.
func FoldTurkish(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, ch := range s {
		if folded, ok := foldMap[ch]; ok {
			b.WriteRune(folded)
		} else {
			b.WriteRune(ch)
		}
	}
	return b.String()
}
