package server

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"
	"sync"

	"github.com/lgbarn/varichess-go/internal/chess"
	"github.com/lgbarn/varichess-go/internal/storage"
	"github.com/lgbarn/varichess-go/internal/team"
)

// errBadRequest marks input the client must fix.
var errBadRequest = stderrors.New("bad request")

// TeamService loads and edits saved teams. A profile that was never saved
// reads as the standard team of its colour.
type TeamService struct {
	mu    sync.Mutex // serializes load-modify-save cycles
	store storage.TeamStore
}

// NewTeamService returns a service over store.
func NewTeamService(store storage.TeamStore) *TeamService {
	return &TeamService{store: store}
}

// ProfileColour decides the colour of a profile: an explicit hint wins,
// otherwise the profile must be named after a colour.
func ProfileColour(profile, hint string) (chess.Colour, error) {
	if hint != "" {
		c, err := chess.ParseColour(hint)
		if err != nil {
			return chess.White, fmt.Errorf("%v: %w", err, errBadRequest)
		}
		return c, nil
	}
	c, err := chess.ParseColour(profile)
	if err != nil {
		return chess.White, fmt.Errorf("profile %q needs a colour: %w", profile, errBadRequest)
	}
	return c, nil
}

// Get returns the team saved under profile. hint names the colour to use
// when nothing is saved yet.
func (ts *TeamService) Get(ctx context.Context, profile, hint string) (*team.Team, error) {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return ts.load(ctx, profile, hint)
}

func (ts *TeamService) load(ctx context.Context, profile, hint string) (*team.Team, error) {
	profile = strings.TrimSpace(profile)
	if profile == "" {
		return nil, fmt.Errorf("empty profile: %w", errBadRequest)
	}
	saved, err := ts.store.LoadTeam(ctx, profile)
	switch {
	case err == nil:
		return team.FromRecord(saved.Record)
	case !stderrors.Is(err, storage.ErrNotFound):
		return nil, err
	}
	colour, err := ProfileColour(profile, hint)
	if err != nil {
		return nil, err
	}
	return team.NewStandard(colour), nil
}

// Update loads profile, applies fn and saves the result. Nothing is saved
// when fn fails.
func (ts *TeamService) Update(ctx context.Context, profile, hint string, fn func(*team.Team) error) (*team.Team, error) {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	t, err := ts.load(ctx, profile, hint)
	if err != nil {
		return nil, err
	}
	if err := fn(t); err != nil {
		return nil, err
	}
	if err := ts.store.SaveTeam(ctx, strings.TrimSpace(profile), t.Record()); err != nil {
		return nil, err
	}
	return t, nil
}

// Delete forgets a saved profile.
func (ts *TeamService) Delete(ctx context.Context, profile string) error {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return ts.store.DeleteTeam(ctx, strings.TrimSpace(profile))
}

// List returns the saved profile names.
func (ts *TeamService) List(ctx context.Context) ([]string, error) {
	return ts.store.ListProfiles(ctx)
}
