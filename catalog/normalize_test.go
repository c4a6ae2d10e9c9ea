package catalog

import (
	"testing"

	"github.com/furk4ng99/fenerbahce-squad-builder/models"
)

func TestCleanPlayerName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Ayhan (1)", "Ayhan"},
		{"Alex de Souza (42)", "Alex de Souza"},
		{"Edin Dzeko", "Edin Dzeko"},
		{"  Mert Müldür (7)  ", "Mert Müldür"},
		{"(5)", ""},
		{"", ""},
	}
	for _, tt := range tests {
		got := CleanPlayerName(tt.input)
		if got != tt.want {
			t.Errorf("CleanPlayerName(%q) = %q, want %q", tt.input, got, tt.want)
		}
		// Idempotent: a second pass changes nothing.
		if again := CleanPlayerName(got); again != got {
			t.Errorf("CleanPlayerName(%q) not idempotent: %q -> %q", tt.input, got, again)
		}
	}
}

func TestMapPosition(t *testing.T) {
	tests := []struct {
		input string
		want  models.Position
	}{
		{"Goalkeeper", models.PositionGK},
		{"Centre-Back", models.PositionCB},
		{"Left-Back", models.PositionLB},
		{"Right-Back", models.PositionRB},
		{"Defensive Midfield", models.PositionCDM},
		{"Central Midfield", models.PositionCM},
		{"Attacking Midfield", models.PositionCAM},
		{"Left Winger", models.PositionLW},
		{"Right Winger", models.PositionRW},
		{"Centre-Forward", models.PositionST},
		{"Second Striker", models.PositionST},
		{"Defender", models.PositionCB},
		{"Midfield", models.PositionCM},
		{"Attack", models.PositionST},
		// Unrecognized and empty text still resolve.
		{"Libero", models.PositionCM},
		{"", models.PositionCM},
	}
	for _, tt := range tests {
		if got := MapPosition(tt.input); got != tt.want {
			t.Errorf("MapPosition(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestParseCurrency(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"€5,000,000", 5000000},
		{"$1,000", 1000},
		{"€12.500.000", 12.5},
		{"750000", 750000},
		{"€-100", -100},
		{"", 0},
		{"unknown", 0},
		{"-", 0},
	}
	for _, tt := range tests {
		if got := ParseCurrency(tt.input); got != tt.want {
			t.Errorf("ParseCurrency(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestNormalizeRow(t *testing.T) {
	row := RawRow{
		"player_id":           "1",
		"player_name":         "Ayhan (1)",
		"position":            "Centre-Back",
		"current_club_name":   "Fenerbahce",
		"market_value_in_eur": "€5,000,000",
	}

	p, ok := NormalizeRow(row, NormalizeOptions{Rating: RatingFixed})
	if !ok {
		t.Fatal("expected the row to be kept")
	}
	want := models.Player{
		ID:       "1",
		Name:     "Ayhan",
		Position: models.PositionCB,
		Rating:   DefaultRating,
		Value:    5000000,
		Image:    PlaceholderImage,
		Club:     "Fenerbahce",
	}
	if p != want {
		t.Errorf("NormalizeRow = %+v, want %+v", p, want)
	}
}

func TestNormalizeRowDropsIncomplete(t *testing.T) {
	tests := []struct {
		name string
		row  RawRow
	}{
		{"missing id", RawRow{"player_name": "Ayhan"}},
		{"missing name", RawRow{"player_id": "1"}},
		{"name reduces to empty", RawRow{"player_id": "1", "player_name": " (7) "}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := NormalizeRow(tt.row, NormalizeOptions{}); ok {
				t.Error("expected the row to be dropped")
			}
		})
	}
}

func TestNormalizeRowPositionFallback(t *testing.T) {
	row := RawRow{
		"player_id":     "2",
		"player_name":   "Mert",
		"main_position": "Goalkeeper",
	}
	p, ok := NormalizeRow(row, NormalizeOptions{})
	if !ok {
		t.Fatal("expected the row to be kept")
	}
	if p.Position != models.PositionGK {
		t.Errorf("position = %q, want %q", p.Position, models.PositionGK)
	}
}

func TestRatingStrategies(t *testing.T) {
	tests := []struct {
		id       string
		strategy RatingStrategy
		want     int
	}{
		{"0", RatingDerived, 70},
		{"20", RatingDerived, 90},
		{"21", RatingDerived, 70},
		{"43", RatingDerived, 71},
		{"abc", RatingDerived, DefaultRating},
		{"43", RatingFixed, DefaultRating},
	}
	for _, tt := range tests {
		row := RawRow{"player_id": tt.id, "player_name": "X"}
		p, ok := NormalizeRow(row, NormalizeOptions{Rating: tt.strategy})
		if !ok {
			t.Fatalf("row with id %q dropped", tt.id)
		}
		if p.Rating != tt.want {
			t.Errorf("rating for id %q under %q = %d, want %d", tt.id, tt.strategy, p.Rating, tt.want)
		}
	}
}
