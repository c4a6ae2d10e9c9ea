package duel

import (
	"errors"
	"math/rand"

	"github.com/furk4ng99/fenerbahce-squad-builder/models"
)

// PoolSize is the fixed entrant count of a tournament. When the roster is
// shorter it is cycled, so the same player may occupy two bracket slots.
const PoolSize = 40

// HistorySize caps the recent-duel ring; most recent first.
const HistorySize = 4

// State names of the tournament lifecycle.
type State string

const (
	StateInProgress      State = "in_progress"
	StateChampionCrowned State = "champion_crowned"
)

var (
	ErrTournamentFinished = errors.New("tournament already has a champion")
	ErrSlotNotInPair      = errors.New("selected slot is not part of the current pair")
)

// Slot is one bracket entrant. Slots have identity of their own so a
// player cycled into the pool twice is eliminated one slot at a time.
type Slot struct {
	ID     int               `json:"slot_id"`
	Player models.DuelPlayer `json:"player"`
}

// HistoryEntry records one resolved duel.
type HistoryEntry struct {
	Winner     models.DuelPlayer `json:"winner"`
	Loser      models.DuelPlayer `json:"loser"`
	DuelNumber int               `json:"duel_number"`
}

// Tournament is the single-elimination state machine: a pool of PoolSize
// slots is reduced one duel at a time until a champion remains. It is a
// single-actor machine; callers serialize access.
type Tournament struct {
	rnd            *rand.Rand
	slots          []Slot
	eliminated     map[int]struct{}
	currentPair    *[2]Slot
	champion       *models.DuelPlayer
	duelsCompleted int
	history        []HistoryEntry
}

// NewTournament builds the pool by cycling roster up to PoolSize entrants,
// shuffles it, and selects the opening pair. The roster must not be empty.
func NewTournament(roster []models.DuelPlayer, rnd *rand.Rand) (*Tournament, error) {
	if len(roster) == 0 {
		return nil, errors.New("cannot start a tournament with an empty roster")
	}
	t := &Tournament{rnd: rnd}
	t.reset(roster)
	return t, nil
}

func (t *Tournament) reset(roster []models.DuelPlayer) {
	slots := make([]Slot, 0, PoolSize)
	for i := 0; len(slots) < PoolSize; i++ {
		slots = append(slots, Slot{ID: i, Player: roster[i%len(roster)]})
	}
	Shuffle(slots, t.rnd)

	t.slots = slots
	t.eliminated = make(map[int]struct{})
	pair := [2]Slot{slots[0], slots[1]}
	t.currentPair = &pair
	t.champion = nil
	t.duelsCompleted = 0
	t.history = nil
}

// Restart discards all state and rebuilds the pool from the roster. It is
// the only transition out of the champion-crowned state.
func (t *Tournament) Restart(roster []models.DuelPlayer) {
	t.reset(roster)
}

// State reports the lifecycle phase.
func (t *Tournament) State() State {
	if t.champion != nil {
		return StateChampionCrowned
	}
	return StateInProgress
}

// Alive returns the surviving slots in pool order.
func (t *Tournament) Alive() []Slot {
	alive := make([]Slot, 0, len(t.slots)-len(t.eliminated))
	for _, s := range t.slots {
		if _, out := t.eliminated[s.ID]; !out {
			alive = append(alive, s)
		}
	}
	return alive
}

// CurrentPair returns the two slots facing off, or false once a champion
// has been crowned.
func (t *Tournament) CurrentPair() ([2]Slot, bool) {
	if t.currentPair == nil {
		return [2]Slot{}, false
	}
	return *t.currentPair, true
}

// Champion returns the crowned champion, if any.
func (t *Tournament) Champion() (models.DuelPlayer, bool) {
	if t.champion == nil {
		return models.DuelPlayer{}, false
	}
	return *t.champion, true
}

// DuelsCompleted returns the number of resolved duels. It never exceeds
// PoolSize-1.
func (t *Tournament) DuelsCompleted() int {
	return t.duelsCompleted
}

// EliminatedCount returns the number of eliminated slots.
func (t *Tournament) EliminatedCount() int {
	return len(t.eliminated)
}

// History returns the most recent duels, newest first, capped at
// HistorySize entries.
func (t *Tournament) History() []HistoryEntry {
	out := make([]HistoryEntry, len(t.history))
	copy(out, t.history)
	return out
}

// Progress reports duelsCompleted / (PoolSize-1), clamped to [0,1].
func (t *Tournament) Progress() float64 {
	p := float64(t.duelsCompleted) / float64(PoolSize-1)
	if p > 1 {
		return 1
	}
	return p
}

// RoundName names the current round from the surviving pool size.
func (t *Tournament) RoundName() string {
	return RoundName(len(t.slots) - len(t.eliminated))
}

// RoundName is a pure function of the number of players remaining.
func RoundName(remaining int) string {
	switch {
	case remaining == 2:
		return "FİNAL"
	case remaining <= 4:
		return "YARI FİNAL"
	case remaining <= 8:
		return "ÇEYREK FİNAL"
	case remaining <= 16:
		return "SON 16"
	case remaining <= 32:
		return "SON 32"
	default:
		return "ELEME TURU"
	}
}

// SelectWinner resolves the current duel in favor of the slot with the
// given id. The other member of the pair is eliminated, the duel is pushed
// onto the history ring, and either a champion is crowned (one survivor
// left) or the next pair is drawn uniformly at random from the surviving
// slots. The crowning check runs before any new pair is drawn, so the pool
// can never underflow.
func (t *Tournament) SelectWinner(slotID int) error {
	if t.champion != nil || t.currentPair == nil {
		return ErrTournamentFinished
	}

	pair := *t.currentPair
	var winner, loser Slot
	switch slotID {
	case pair[0].ID:
		winner, loser = pair[0], pair[1]
	case pair[1].ID:
		winner, loser = pair[1], pair[0]
	default:
		return ErrSlotNotInPair
	}

	t.history = append([]HistoryEntry{{
		Winner:     winner.Player,
		Loser:      loser.Player,
		DuelNumber: t.duelsCompleted + 1,
	}}, t.history...)
	if len(t.history) > HistorySize {
		t.history = t.history[:HistorySize]
	}

	t.eliminated[loser.ID] = struct{}{}
	t.duelsCompleted++

	alive := t.Alive()
	if len(alive) == 1 {
		champion := winner.Player
		t.champion = &champion
		t.currentPair = nil
		return nil
	}

	// Two distinct survivors, uniformly at random. The winner stays a
	// candidate; the only exclusion is self-pairing, which distinct slot
	// draws rule out by construction.
	Shuffle(alive, t.rnd)
	next := [2]Slot{alive[0], alive[1]}
	t.currentPair = &next
	return nil
}
