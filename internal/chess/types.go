// Package chess provides core board types: coordinates, direction geometry,
// the occupancy store, movement descriptors and pieces.
package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/varichess-go/internal/errors"
)

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns the row delta that moves a piece of this colour toward
// the opponent: -1 for White (toward rank 8), +1 for Black.
func (c Colour) Forward() int {
	if c == White {
		return -1
	}
	return 1
}

// BackRow returns the row index of this colour's back rank.
func (c Colour) BackRow() int {
	if c == White {
		return BoardSize - 1
	}
	return 0
}

// PawnRow returns the row index of this colour's pawn rank.
func (c Colour) PawnRow() int {
	return c.BackRow() + c.Forward()
}

// MarshalText implements encoding.TextMarshaler.
func (c Colour) MarshalText() ([]byte, error) {
	return []byte(strings.ToLower(c.String())), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Colour) UnmarshalText(text []byte) error {
	parsed, err := ParseColour(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseColour parses "white"/"w" or "black"/"b", case-insensitively.
func ParseColour(s string) (Colour, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "white", "w":
		return White, nil
	case "black", "b":
		return Black, nil
	}
	return White, fmt.Errorf("unknown colour %q", s)
}

// Kind is the closed set of piece types.
type Kind int

const (
	NoKind Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// Kinds lists every playable piece type in display order.
var Kinds = []Kind{Pawn, Knight, Bishop, Rook, Queen, King}

var kindNames = []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}

// String returns the display name of a kind.
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// ID returns the lower-case identifier used in piece ids and records.
func (k Kind) ID() string {
	return strings.ToLower(k.String())
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// ParseKind parses a kind by name ("knight") or letter ("N").
func ParseKind(s string) (Kind, error) {
	s = strings.TrimSpace(s)
	if len(s) == 1 {
		if k := KindFromLetter(s[0]); k != NoKind {
			return k, nil
		}
	}
	for _, k := range Kinds {
		if strings.EqualFold(s, k.String()) {
			return k, nil
		}
	}
	return NoKind, fmt.Errorf("%q: %w", s, errors.ErrUnknownKind)
}

// KindFromLetter converts a placement letter of either case to a kind.
func KindFromLetter(c byte) Kind {
	switch c {
	case 'K', 'k':
		return King
	case 'Q', 'q':
		return Queen
	case 'R', 'r':
		return Rook
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'P', 'p':
		return Pawn
	default:
		return NoKind
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if k == NoKind || k.String() == "Unknown" {
		return nil, fmt.Errorf("kind %d: %w", int(k), errors.ErrUnknownKind)
	}
	return []byte(k.ID()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
