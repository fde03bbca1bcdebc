package config

import (
	"fmt"
	"strings"

	"github.com/lgbarn/varichess-go/internal/errors"
)

// ServerConfig holds settings for the HTTP and WebSocket service.
type ServerConfig struct {
	// Addr is the listen address, e.g. ":8080"
	Addr string

	// AllowOrigins is the comma-separated CORS origin list
	AllowOrigins string
}

// NewServerConfig creates a ServerConfig with default values.
func NewServerConfig() *ServerConfig {
	return &ServerConfig{
		Addr:         ":8080",
		AllowOrigins: "*",
	}
}

// Validate requires a listen address with a port.
func (s *ServerConfig) Validate() error {
	if !strings.Contains(s.Addr, ":") {
		return fmt.Errorf("server address %q: %w", s.Addr, errors.ErrInvalidConfig)
	}
	if strings.TrimSpace(s.AllowOrigins) == "" {
		return fmt.Errorf("empty CORS origins: %w", errors.ErrInvalidConfig)
	}
	return nil
}
