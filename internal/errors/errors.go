// Package errors provides sentinel errors and error types for the variant engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidCoordinate indicates a malformed or off-board coordinate.
	ErrInvalidCoordinate = errors.New("invalid coordinate")

	// ErrIrregularRange indicates an irregular vector larger than knight scale
	// was asked for the squares between its endpoints.
	ErrIrregularRange = errors.New("irregular vector outside validated range")

	// ErrInvalidDescriptor indicates a movement descriptor with bad vectors or bounds.
	ErrInvalidDescriptor = errors.New("invalid movement descriptor")

	// ErrInvalidUpgrades indicates an upgrade vector of the wrong length.
	ErrInvalidUpgrades = errors.New("invalid upgrade vector")

	// ErrUnknownKind indicates an unrecognised piece type.
	ErrUnknownKind = errors.New("unknown piece type")

	// ErrPieceNotFound indicates no piece has the requested id.
	ErrPieceNotFound = errors.New("piece not found")

	// ErrNotYourTurn indicates a move by the side that is not to play.
	ErrNotYourTurn = errors.New("not your turn")

	// ErrNoStartSquare indicates the team's start zone is full.
	ErrNoStartSquare = errors.New("no free start square")

	// ErrSquareOccupied indicates a target square already holds a piece.
	ErrSquareOccupied = errors.New("square occupied")

	// ErrInvalidPlacement indicates a malformed placement string or a square
	// outside the allowed setup zone.
	ErrInvalidPlacement = errors.New("invalid placement")

	// ErrGameNotFound indicates no game has the requested id.
	ErrGameNotFound = errors.New("game not found")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// PieceError wraps errors with piece context: its id, type and square.
// It implements the error interface and supports unwrapping via errors.Is()
// and errors.As().
type PieceError struct {
	Err        error  // The underlying error
	PieceID    string // Piece identifier (if known)
	Kind       string // Piece type name (if known)
	Coordinate string // Square in algebraic form (if known)
}

// Error returns a formatted error message including all available context.
func (e *PieceError) Error() string {
	var parts []string

	if e.PieceID != "" {
		parts = append(parts, fmt.Sprintf("piece %s", e.PieceID))
	}
	if e.Kind != "" {
		parts = append(parts, strings.ToLower(e.Kind))
	}
	if e.Coordinate != "" {
		parts = append(parts, "on "+e.Coordinate)
	}

	context := strings.Join(parts, " ")
	if context == "" {
		context = "piece"
	}

	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the PieceError wrapper.
func (e *PieceError) Unwrap() error {
	return e.Err
}

// ParseError represents a parsing error with input location context.
// It's used for coordinate and placement parsing.
type ParseError struct {
	Err      error  // The underlying error
	Input    string // The text being parsed
	Column   int    // Column number (1-based, 0 if unknown)
	Expected string // What was expected
	Got      string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.Input != "" {
		loc := fmt.Sprintf("%q", e.Input)
		if e.Column > 0 {
			loc += fmt.Sprintf(" at column %d", e.Column)
		}
		parts = append(parts, loc)
	}

	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %s", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %s", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
