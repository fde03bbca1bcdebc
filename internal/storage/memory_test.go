package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/lgbarn/varichess-go/internal/chess"
	"github.com/lgbarn/varichess-go/internal/team"
	"github.com/lgbarn/varichess-go/internal/testutil"
)

func TestMemory_RoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	m := NewMemory()

	rec := team.NewStandard(chess.Black).Record()
	testutil.AssertNoError(t, m.SaveTeam(ctx, "alice", rec))

	got, err := m.LoadTeam(ctx, "alice")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, got.Record, rec)
	testutil.AssertFalse(t, got.UpdatedAt.IsZero(), "update time recorded")

	got.Record.Pieces[0].Upgrades[0] = true
	again, err := m.LoadTeam(ctx, "alice")
	testutil.AssertNoError(t, err)
	testutil.AssertFalse(t, again.Record.Pieces[0].Upgrades[0], "loaded records are copies")
}

func TestMemory_ListAndDelete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	m := NewMemory()
	for _, name := range []string{"white", "black", "alice"} {
		testutil.AssertNoError(t, m.SaveTeam(ctx, name, team.NewStandard(chess.White).Record()))
	}

	names, err := m.ListProfiles(ctx)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, names, []string{"alice", "black", "white"})

	testutil.AssertNoError(t, m.DeleteTeam(ctx, "black"))
	if _, err := m.LoadTeam(ctx, "black"); !errors.Is(err, ErrNotFound) {
		t.Errorf("LoadTeam(deleted) error = %v; want ErrNotFound", err)
	}
	if err := m.DeleteTeam(ctx, "black"); !errors.Is(err, ErrNotFound) {
		t.Errorf("DeleteTeam(missing) error = %v; want ErrNotFound", err)
	}
}

func TestMemory_Validation(t *testing.T) {
	t.Parallel()
	m := NewMemory()
	testutil.AssertError(t, m.SaveTeam(context.Background(), "  ", team.Record{}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := m.LoadTeam(ctx, "x"); !errors.Is(err, context.Canceled) {
		t.Errorf("LoadTeam(cancelled) error = %v; want context.Canceled", err)
	}
}
