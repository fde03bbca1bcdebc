package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds the settings read from the environment.
type Env struct {
	Addr         string `env:"VARICHESS_ADDR"          envDefault:":8080"`
	AllowOrigins string `env:"VARICHESS_ALLOW_ORIGINS" envDefault:"*"`
	DBPath       string `env:"VARICHESS_DB_PATH"`
	Profile      string `env:"VARICHESS_PROFILE"`
	Workers      int    `env:"VARICHESS_WORKERS"       envDefault:"4"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadEnv reads Env and copies it onto c.
func (c *Config) LoadEnv() error {
	var e Env
	if err := ParseEnv(&e); err != nil {
		return err
	}
	c.Server.Addr = e.Addr
	c.Server.AllowOrigins = e.AllowOrigins
	c.Storage.Path = e.DBPath
	c.Storage.Profile = e.Profile
	c.Workers = e.Workers
	return nil
}
