package config

import (
	"fmt"

	"golang.org/x/text/language"

	"github.com/lgbarn/varichess-go/internal/errors"
)

// OutputConfig holds settings related to result formatting.
type OutputConfig struct {
	// JSONFormat enables JSON output instead of text
	JSONFormat bool

	// ShowBoard draws the board diagram with resolved squares
	ShowBoard bool

	// Locale selects number formatting in value reports (BCP 47 tag)
	Locale string
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		ShowBoard: true,
		Locale:    "en",
	}
}

// Tag returns the parsed locale, falling back to English.
func (o *OutputConfig) Tag() language.Tag {
	tag, err := language.Parse(o.Locale)
	if err != nil {
		return language.English
	}
	return tag
}

// Validate rejects an unparsable locale.
func (o *OutputConfig) Validate() error {
	if _, err := language.Parse(o.Locale); err != nil {
		return fmt.Errorf("locale %q: %w", o.Locale, errors.ErrInvalidConfig)
	}
	return nil
}
