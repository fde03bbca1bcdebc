package config

import (
	"fmt"
	"strings"

	"github.com/lgbarn/varichess-go/internal/errors"
)

// StorageConfig holds settings for saved teams.
type StorageConfig struct {
	// Path is the SQLite database file; empty keeps teams in memory
	Path string

	// Profile names the saved team the CLI loads for White
	Profile string
}

// NewStorageConfig creates a StorageConfig with default values.
// All fields default to empty (in-memory storage, no profile).
func NewStorageConfig() *StorageConfig {
	return &StorageConfig{}
}

// Persistent reports whether teams are written to disk.
func (s *StorageConfig) Persistent() bool {
	return strings.TrimSpace(s.Path) != ""
}

// Validate requires a profile to come with a database path.
func (s *StorageConfig) Validate() error {
	if s.Profile != "" && !s.Persistent() {
		return fmt.Errorf("profile %q needs a storage path: %w", s.Profile, errors.ErrInvalidConfig)
	}
	return nil
}
