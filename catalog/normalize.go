package catalog

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/furk4ng99/fenerbahce-squad-builder/models"
)

// Dataset column names (Transfermarkt export).
const (
	colPlayerID     = "player_id"
	colPlayerName   = "player_name"
	colPosition     = "position"
	colMainPosition = "main_position"
	colClubName     = "current_club_name"
	colMarketValue  = "market_value_in_eur"
	colImageURL     = "player_image_url"
)

// PlaceholderImage is used when the source row carries no portrait URL.
const PlaceholderImage = "https://img.a.transfermarkt.technology/portrait/header/default.jpg"

// DefaultRating is assigned when no rating can be derived from the source.
const DefaultRating = 75

// RatingStrategy selects how a normalized player gets its rating.
type RatingStrategy string

const (
	// RatingFixed assigns DefaultRating to every player.
	RatingFixed RatingStrategy = "fixed"
	// RatingDerived computes 70 + id mod 21 from the numeric player id,
	// falling back to DefaultRating for non-numeric ids.
	RatingDerived RatingStrategy = "derived"
)

// NormalizeOptions tune row normalization.
type NormalizeOptions struct {
	Rating RatingStrategy
}

// positionRule maps a source-text phrase to a position code. Rules are
// evaluated in order against the upper-cased source text; first match wins.
// Specific phrases come before generic ones ("DEFENSIVE MIDFIELD" before
// "MIDFIELD").
type positionRule struct {
	phrase string
	code   models.Position
}

var positionRules = []positionRule{
	{"GOALKEEPER", models.PositionGK},
	{"CENTRE-BACK", models.PositionCB},
	{"LEFT-BACK", models.PositionLB},
	{"RIGHT-BACK", models.PositionRB},
	{"DEFENSIVE MIDFIELD", models.PositionCDM},
	{"CENTRAL MIDFIELD", models.PositionCM},
	{"ATTACKING MIDFIELD", models.PositionCAM},
	{"LEFT WINGER", models.PositionLW},
	{"RIGHT WINGER", models.PositionRW},
	{"CENTRE-FORWARD", models.PositionST},
	{"SECOND STRIKER", models.PositionST},
	// Coarse vocabulary from the grouped export columns.
	{"DEFENDER", models.PositionCB},
	{"MIDFIELD", models.PositionCM},
	{"ATTACK", models.PositionST},
}

// MapPosition resolves free position text to a position code. The mapping
// is total: unrecognized or empty text yields PositionCM.
func MapPosition(text string) models.Position {
	p := strings.ToUpper(text)
	for _, rule := range positionRules {
		if strings.Contains(p, rule.phrase) {
			return rule.code
		}
	}
	return models.PositionCM
}

var nameIDSuffix = regexp.MustCompile(`\s*\(\d+\)$`)

// CleanPlayerName strips a trailing "(digits)" suffix and trims whitespace.
// Applying it twice gives the same result as applying it once. The trim
// runs first so a padded suffix still matches the end anchor.
func CleanPlayerName(name string) string {
	return strings.TrimSpace(nameIDSuffix.ReplaceAllString(strings.TrimSpace(name), ""))
}

// ParseCurrency extracts a numeric market value from currency-formatted
// text. Every character that is not a digit, minus sign or decimal point is
// stripped, then the longest valid leading float prefix is parsed, so
// "€5,000,000" yields 5000000 and "€12.500.000" yields 12.5. Empty or
// unparsable input yields 0.
func ParseCurrency(text string) float64 {
	var b strings.Builder
	for _, ch := range text {
		if ch >= '0' && ch <= '9' || ch == '.' || ch == '-' {
			b.WriteRune(ch)
		}
	}
	s := b.String()
	if s == "" {
		return 0
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v
	}
	// Longest valid prefix: optional sign, digits, at most one dot.
	end, dotSeen := 0, false
	for i, ch := range s {
		if ch == '-' {
			if i != 0 {
				break
			}
		} else if ch == '.' {
			if dotSeen {
				break
			}
			dotSeen = true
		}
		end = i + 1
	}
	for end > 0 {
		if v, err := strconv.ParseFloat(s[:end], 64); err == nil {
			return v
		}
		end--
	}
	return 0
}

// ratingFor applies the configured rating strategy.
func ratingFor(id string, strategy RatingStrategy) int {
	if strategy == RatingDerived {
		if n, err := strconv.Atoi(id); err == nil && n >= 0 {
			return 70 + n%21
		}
	}
	return DefaultRating
}

// NormalizeRow maps one raw dataset row to a catalog record. The second
// return value reports whether the row was kept; rows with a missing id or
// an empty cleaned name are dropped, which is expected data noise rather
// than an error.
func NormalizeRow(row RawRow, opts NormalizeOptions) (models.Player, bool) {
	id := strings.TrimSpace(row[colPlayerID])
	name := CleanPlayerName(row[colPlayerName])
	if id == "" || name == "" {
		return models.Player{}, false
	}

	posText := row[colPosition]
	if posText == "" {
		posText = row[colMainPosition]
	}

	image := strings.TrimSpace(row[colImageURL])
	if image == "" {
		image = PlaceholderImage
	}

	return models.Player{
		ID:       id,
		Name:     name,
		Position: MapPosition(posText),
		Rating:   ratingFor(id, opts.Rating),
		Value:    ParseCurrency(row[colMarketValue]),
		Image:    image,
		Club:     strings.TrimSpace(row[colClubName]),
	}, true
}

// NormalizeRows maps a batch of raw rows, silently dropping incomplete
// ones. Input order is preserved for the kept rows.
func NormalizeRows(rows []RawRow, opts NormalizeOptions) []models.Player {
	players := make([]models.Player, 0, len(rows))
	for _, row := range rows {
		if p, ok := NormalizeRow(row, opts); ok {
			players = append(players, p)
		}
	}
	return players
}
