// Package sqlite persists saved teams in a SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/lgbarn/varichess-go/internal/storage"
	"github.com/lgbarn/varichess-go/internal/storage/sqlite/migrations"
	"github.com/lgbarn/varichess-go/internal/storage/sqlitemigrate"
	"github.com/lgbarn/varichess-go/internal/team"
	_ "modernc.org/sqlite"
)

// Store is a storage.TeamStore backed by SQLite.
type Store struct {
	sqlDB *sql.DB
	now   func() time.Time
}

var _ storage.TeamStore = (*Store)(nil)

// Open opens the database at path, creating it if needed, and applies
// pending migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	sqlDB, err := sql.Open("sqlite", dsn(path))
	if err != nil {
		return nil, fmt.Errorf("open sqlite store: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite store: %w", err)
	}
	if err := sqlitemigrate.Apply(context.Background(), sqlDB, migrations.FS, "."); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("migrate sqlite store: %w", err)
	}
	return &Store{sqlDB: sqlDB, now: time.Now}, nil
}

func dsn(path string) string {
	return filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// SaveTeam inserts or replaces the team saved under profile.
func (s *Store) SaveTeam(ctx context.Context, profile string, record team.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	profile = strings.TrimSpace(profile)
	if profile == "" {
		return fmt.Errorf("profile is required")
	}
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode team record: %w", err)
	}

	_, err = s.sqlDB.ExecContext(ctx, `
INSERT INTO team_profiles (profile, colour, record_json, updated_at)
VALUES (?, ?, ?, ?)
ON CONFLICT(profile) DO UPDATE SET
    colour = excluded.colour,
    record_json = excluded.record_json,
    updated_at = excluded.updated_at`,
		profile, record.Colour.String(), string(payload), s.now().UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("save team %s: %w", profile, err)
	}
	return nil
}

// LoadTeam returns the team saved under profile, or storage.ErrNotFound.
func (s *Store) LoadTeam(ctx context.Context, profile string) (storage.TeamProfile, error) {
	if err := ctx.Err(); err != nil {
		return storage.TeamProfile{}, err
	}
	profile = strings.TrimSpace(profile)

	var (
		payload   string
		updatedAt int64
	)
	err := s.sqlDB.QueryRowContext(ctx,
		`SELECT record_json, updated_at FROM team_profiles WHERE profile = ?`, profile,
	).Scan(&payload, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return storage.TeamProfile{}, storage.ErrNotFound
	}
	if err != nil {
		return storage.TeamProfile{}, fmt.Errorf("load team %s: %w", profile, err)
	}

	var record team.Record
	if err := json.Unmarshal([]byte(payload), &record); err != nil {
		return storage.TeamProfile{}, fmt.Errorf("decode team %s: %w", profile, err)
	}
	return storage.TeamProfile{
		Profile:   profile,
		Record:    record,
		UpdatedAt: time.UnixMilli(updatedAt).UTC(),
	}, nil
}

// DeleteTeam removes profile, or returns storage.ErrNotFound.
func (s *Store) DeleteTeam(ctx context.Context, profile string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	res, err := s.sqlDB.ExecContext(ctx, `DELETE FROM team_profiles WHERE profile = ?`, strings.TrimSpace(profile))
	if err != nil {
		return fmt.Errorf("delete team %s: %w", profile, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete team %s: %w", profile, err)
	}
	if n == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// ListProfiles returns saved profile names in sorted order.
func (s *Store) ListProfiles(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rows, err := s.sqlDB.QueryContext(ctx, `SELECT profile FROM team_profiles ORDER BY profile`)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan profile: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate profiles: %w", err)
	}
	return names, nil
}
