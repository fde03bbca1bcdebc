package storage

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/lgbarn/varichess-go/internal/team"
)

// Memory is a TeamStore kept in process memory. Records are copied on the
// way in and out so callers cannot alias stored state.
type Memory struct {
	mu       sync.RWMutex
	profiles map[string]TeamProfile
	now      func() time.Time
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{profiles: make(map[string]TeamProfile), now: time.Now}
}

// SaveTeam inserts or replaces the team saved under profile.
func (m *Memory) SaveTeam(ctx context.Context, profile string, record team.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	profile = strings.TrimSpace(profile)
	if profile == "" {
		return fmt.Errorf("profile is required")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profiles[profile] = TeamProfile{Profile: profile, Record: copyRecord(record), UpdatedAt: m.now().UTC()}
	return nil
}

// LoadTeam returns the team saved under profile.
func (m *Memory) LoadTeam(ctx context.Context, profile string) (TeamProfile, error) {
	if err := ctx.Err(); err != nil {
		return TeamProfile{}, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.profiles[strings.TrimSpace(profile)]
	if !ok {
		return TeamProfile{}, ErrNotFound
	}
	p.Record = copyRecord(p.Record)
	return p, nil
}

// DeleteTeam removes profile.
func (m *Memory) DeleteTeam(ctx context.Context, profile string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	profile = strings.TrimSpace(profile)
	if _, ok := m.profiles[profile]; !ok {
		return ErrNotFound
	}
	delete(m.profiles, profile)
	return nil
}

// ListProfiles returns the saved profile names in sorted order.
func (m *Memory) ListProfiles(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, 0, len(m.profiles))
	for name := range m.profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Close is a no-op.
func (m *Memory) Close() error { return nil }

func copyRecord(r team.Record) team.Record {
	out := team.Record{Colour: r.Colour, Pieces: make([]team.PieceRecord, len(r.Pieces))}
	for i, p := range r.Pieces {
		p.Upgrades = append([]bool(nil), p.Upgrades...)
		out.Pieces[i] = p
	}
	return out
}
