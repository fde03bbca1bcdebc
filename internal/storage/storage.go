// Package storage defines persistence contracts for saved teams.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/lgbarn/varichess-go/internal/team"
)

// ErrNotFound indicates a requested profile is missing.
var ErrNotFound = errors.New("record not found")

// TeamProfile is one saved team under a profile name.
type TeamProfile struct {
	Profile   string
	Record    team.Record
	UpdatedAt time.Time
}

// TeamStore persists customized teams by profile name.
type TeamStore interface {
	SaveTeam(ctx context.Context, profile string, record team.Record) error
	LoadTeam(ctx context.Context, profile string) (TeamProfile, error)
	DeleteTeam(ctx context.Context, profile string) error
	ListProfiles(ctx context.Context) ([]string, error)
	Close() error
}
