package engine

import (
	"fmt"

	"github.com/lgbarn/varichess-go/internal/chess"
)

// OutcomeKind classifies the result of a move request.
type OutcomeKind int

const (
	Rejected OutcomeKind = iota
	Moved
	Captured
)

var outcomeNames = []string{"rejected", "moved", "captured"}

func (k OutcomeKind) String() string {
	if k >= 0 && int(k) < len(outcomeNames) {
		return outcomeNames[k]
	}
	return fmt.Sprintf("OutcomeKind(%d)", int(k))
}

// MarshalText implements encoding.TextMarshaler.
func (k OutcomeKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *OutcomeKind) UnmarshalText(text []byte) error {
	for i, name := range outcomeNames {
		if name == string(text) {
			*k = OutcomeKind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown outcome kind %q", text)
}

// CapturedPiece describes a piece removed by a move.
type CapturedPiece struct {
	ID    string           `json:"id"`
	Name  string           `json:"name"`
	Kind  chess.Kind       `json:"kind"`
	Owner chess.Colour     `json:"owner"`
	At    chess.Coordinate `json:"at"`
	Value int              `json:"value"`
}

// MoveOutcome reports what a move request did.
type MoveOutcome struct {
	Kind    OutcomeKind      `json:"kind"`
	PieceID string           `json:"pieceId"`
	Owner   chess.Colour     `json:"owner"`
	From    chess.Coordinate `json:"from"`
	To      chess.Coordinate `json:"to"`

	Captured         *CapturedPiece     `json:"captured,omitempty"`
	EnPassantSquares []chess.Coordinate `json:"enPassantSquares,omitempty"`
	RoyalCaptured    bool               `json:"royalCaptured,omitempty"`
	Flipped          bool               `json:"flipped,omitempty"`
}

// String returns a one-line summary such as "White pawn_5 e2-e4".
func (o MoveOutcome) String() string {
	sep := "-"
	if o.Kind == Captured {
		sep = "x"
	}
	s := fmt.Sprintf("%s %s %s%s%s", o.Owner, o.PieceID, o.From, sep, o.To)
	switch {
	case o.Kind == Rejected:
		s += " (rejected)"
	case o.Captured != nil:
		s += " captures " + o.Captured.ID
	}
	return s
}
