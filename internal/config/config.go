// Package config provides configuration for varichess: program-wide
// settings, the output, server and storage sub-configs, and environment
// loading.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/varichess-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	Verbosity int  // 0=nothing, 1=summary, 2=running commentary
	Trace     bool // Write resolver traces to LogFile
	Workers   int  // Goroutines used to analyze a team

	Output  *OutputConfig
	Server  *ServerConfig
	Storage *StorageConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Workers:    4,
		Output:     NewOutputConfig(),
		Server:     NewServerConfig(),
		Storage:    NewStorageConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the writer for results.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the writer for diagnostics and traces.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Validate checks the config and every sub-config.
func (c *Config) Validate() error {
	if c.Verbosity < 0 {
		return fmt.Errorf("verbosity %d: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers %d: %w", c.Workers, errors.ErrInvalidConfig)
	}
	if err := c.Output.Validate(); err != nil {
		return err
	}
	if err := c.Server.Validate(); err != nil {
		return err
	}
	return c.Storage.Validate()
}

// Logf writes a diagnostic line when Verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format, args...)
}
