package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/lgbarn/varichess-go/internal/chess"
	"github.com/lgbarn/varichess-go/internal/storage"
	"github.com/lgbarn/varichess-go/internal/team"
	"github.com/lgbarn/varichess-go/internal/testutil"
)

func openTempStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "teams.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Fatalf("close store: %v", err)
		}
	})
	return store
}

func TestOpen_RequiresPath(t *testing.T) {
	if _, err := Open(" "); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestSaveLoadTeam(t *testing.T) {
	store := openTempStore(t)
	store.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	ctx := context.Background()

	tm := team.NewStandard(chess.White)
	_, err := tm.SetUpgrades("bishop_1", []bool{false, false, false, false, false, true})
	testutil.AssertNoError(t, err)
	rec := tm.Record()

	testutil.AssertNoError(t, store.SaveTeam(ctx, "alice", rec))
	got, err := store.LoadTeam(ctx, "alice")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, got.Profile, "alice")
	testutil.AssertEqual(t, got.Record, rec)
	testutil.AssertEqual(t, got.UpdatedAt, time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC))

	rebuilt, err := team.FromRecord(got.Record)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, rebuilt.Value(), tm.Value())
}

func TestSaveTeam_Replaces(t *testing.T) {
	store := openTempStore(t)
	ctx := context.Background()

	testutil.AssertNoError(t, store.SaveTeam(ctx, "alice", team.NewStandard(chess.White).Record()))
	black := team.NewStandard(chess.Black).Record()
	testutil.AssertNoError(t, store.SaveTeam(ctx, "alice", black))

	got, err := store.LoadTeam(ctx, "alice")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, got.Record.Colour, chess.Black)
}

func TestListAndDelete(t *testing.T) {
	store := openTempStore(t)
	ctx := context.Background()

	names, err := store.ListProfiles(ctx)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, names, []string{})

	for _, name := range []string{"white", "black", "alice"} {
		testutil.AssertNoError(t, store.SaveTeam(ctx, name, team.NewStandard(chess.White).Record()))
	}
	names, err = store.ListProfiles(ctx)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, names, []string{"alice", "black", "white"})

	testutil.AssertNoError(t, store.DeleteTeam(ctx, "black"))
	if _, err := store.LoadTeam(ctx, "black"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("LoadTeam(deleted) error = %v; want ErrNotFound", err)
	}
	if err := store.DeleteTeam(ctx, "black"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("DeleteTeam(missing) error = %v; want ErrNotFound", err)
	}
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "teams.db")
	ctx := context.Background()

	first, err := Open(path)
	testutil.AssertNoError(t, err)
	testutil.AssertNoError(t, first.SaveTeam(ctx, "bob", team.NewStandard(chess.Black).Record()))
	testutil.AssertNoError(t, first.Close())

	second, err := Open(path)
	testutil.AssertNoError(t, err)
	defer second.Close()
	got, err := second.LoadTeam(ctx, "bob")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(got.Record.Pieces), 16)
}

func TestSaveTeam_RequiresProfile(t *testing.T) {
	store := openTempStore(t)
	testutil.AssertError(t, store.SaveTeam(context.Background(), "", team.Record{}))
}
