package models

// DuelCategory groups the legend roster for the duel arena filters.
type DuelCategory string

const (
	CategoryLegends     DuelCategory = "Legends"
	CategoryStrikers    DuelCategory = "Strikers"
	CategoryMidfielders DuelCategory = "Midfielders"
	CategoryDefenders   DuelCategory = "Defenders"
	CategoryGoalkeepers DuelCategory = "Goalkeepers"
)

// DuelCategories lists the fixed five-way category enumeration.
var DuelCategories = []DuelCategory{
	CategoryLegends,
	CategoryStrikers,
	CategoryMidfielders,
	CategoryDefenders,
	CategoryGoalkeepers,
}

// DuelPlayer is a static legend-roster entry. The roster is compiled into
// the binary and never mutated at runtime. Position here is a free-text
// short label (FW, AM, ...), a separate vocabulary from Player.Position.
type DuelPlayer struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Image    string       `json:"image"`
	Position string       `json:"position"`
	Era      string       `json:"era"`
	Apps     int          `json:"apps"`
	Goals    int          `json:"goals"`
	Trophies int          `json:"trophies"`
	Category DuelCategory `json:"category"`
}

// DuelStats is the daily-rolling pick tally behind the duel leaderboard.
type DuelStats struct {
	TotalPicks  int            `json:"totalPicks"`
	PlayerPicks map[string]int `json:"playerPicks"`
	Date        string         `json:"date"` // "2006-01-02", local clock
}

// EmptyDuelStats returns a zeroed tally for the given day.
func EmptyDuelStats(date string) DuelStats {
	return DuelStats{PlayerPicks: make(map[string]int), Date: date}
}

// LeaderboardRow is one row of the daily top-picks view.
type LeaderboardRow struct {
	Player   DuelPlayer `json:"player"`
	Picks    int        `json:"picks"`
	PickRate float64    `json:"pick_rate"`
}
