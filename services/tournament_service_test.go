package services

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/furk4ng99/fenerbahce-squad-builder/duel"
)

func newTestTournamentService() TournamentService {
	seed := int64(0)
	newRnd := func() *rand.Rand {
		seed++
		return rand.New(rand.NewSource(seed))
	}
	return NewTournamentService(duel.Roster, nil, testLogger(), newRnd)
}

func TestTournamentStartAndGet(t *testing.T) {
	svc := newTestTournamentService()
	ctx := context.Background()

	started, err := svc.Start(ctx)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if started.ID == "" {
		t.Fatal("started tournament must carry an id")
	}
	if started.State != duel.StateInProgress {
		t.Errorf("state = %q, want %q", started.State, duel.StateInProgress)
	}
	if started.CurrentPair == nil {
		t.Fatal("started tournament must have a current pair")
	}
	if started.Remaining != duel.PoolSize || started.TotalPlayers != duel.PoolSize {
		t.Errorf("pool counts = %d/%d, want %d/%d", started.Remaining, started.TotalPlayers, duel.PoolSize, duel.PoolSize)
	}
	if started.TotalDuels != duel.PoolSize-1 {
		t.Errorf("total duels = %d, want %d", started.TotalDuels, duel.PoolSize-1)
	}

	got, err := svc.Get(ctx, started.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.ID != started.ID || got.DuelsCompleted != 0 {
		t.Errorf("Get = %+v", got)
	}
}

func TestTournamentGetUnknownID(t *testing.T) {
	svc := newTestTournamentService()

	if _, err := svc.Get(context.Background(), "missing"); !errors.Is(err, ErrTournamentNotFound) {
		t.Fatalf("got %v, want ErrTournamentNotFound", err)
	}
}

func TestTournamentSelectWinnerToChampion(t *testing.T) {
	svc := newTestTournamentService()
	ctx := context.Background()

	view, err := svc.Start(ctx)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	id := view.ID

	for view.CurrentPair != nil {
		view, err = svc.SelectWinner(ctx, id, view.CurrentPair[0].ID)
		if err != nil {
			t.Fatalf("SelectWinner at duel %d: %v", view.DuelsCompleted, err)
		}
		if view.Remaining < 1 {
			t.Fatalf("pool underflow: %+v", view)
		}
	}

	if view.State != duel.StateChampionCrowned {
		t.Errorf("final state = %q, want %q", view.State, duel.StateChampionCrowned)
	}
	if view.Champion == nil {
		t.Fatal("finished tournament must report a champion")
	}
	if view.DuelsCompleted != duel.PoolSize-1 {
		t.Errorf("duels = %d, want %d", view.DuelsCompleted, duel.PoolSize-1)
	}
	if view.Progress != 1 {
		t.Errorf("progress = %v, want 1", view.Progress)
	}

	// A finished tournament rejects further selections.
	if _, err := svc.SelectWinner(ctx, id, 0); !errors.Is(err, ErrTournamentFinished) {
		t.Fatalf("got %v, want ErrTournamentFinished", err)
	}
}

func TestTournamentSelectWinnerBadSlot(t *testing.T) {
	svc := newTestTournamentService()
	ctx := context.Background()

	view, err := svc.Start(ctx)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	if _, err := svc.SelectWinner(ctx, view.ID, -1); !errors.Is(err, ErrSlotNotInPair) {
		t.Fatalf("got %v, want ErrSlotNotInPair", err)
	}
}

func TestTournamentRestart(t *testing.T) {
	svc := newTestTournamentService()
	ctx := context.Background()

	view, err := svc.Start(ctx)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	id := view.ID

	for view.CurrentPair != nil {
		if view, err = svc.SelectWinner(ctx, id, view.CurrentPair[0].ID); err != nil {
			t.Fatalf("SelectWinner: %v", err)
		}
	}

	restarted, err := svc.Restart(ctx, id)
	if err != nil {
		t.Fatalf("Restart: %v", err)
	}
	if restarted.ID != id {
		t.Errorf("restart changed the session id: %q -> %q", id, restarted.ID)
	}
	if restarted.State != duel.StateInProgress || restarted.DuelsCompleted != 0 {
		t.Errorf("restarted view = %+v", restarted)
	}
	if restarted.Champion != nil {
		t.Error("restarted tournament must not carry a champion")
	}
	if restarted.CurrentPair == nil {
		t.Error("restarted tournament must have an opening pair")
	}
}

func TestTournamentSessionsAreIndependent(t *testing.T) {
	svc := newTestTournamentService()
	ctx := context.Background()

	first, err := svc.Start(ctx)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	second, err := svc.Start(ctx)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if first.ID == second.ID {
		t.Fatal("two sessions share an id")
	}

	if _, err := svc.SelectWinner(ctx, first.ID, first.CurrentPair[0].ID); err != nil {
		t.Fatalf("SelectWinner: %v", err)
	}

	got, err := svc.Get(ctx, second.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.DuelsCompleted != 0 {
		t.Errorf("second session advanced by the first session's duel: %+v", got)
	}
}
