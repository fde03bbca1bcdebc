package team

import (
	"fmt"

	"github.com/lgbarn/varichess-go/internal/chess"
	"github.com/lgbarn/varichess-go/internal/errors"
	"github.com/lgbarn/varichess-go/internal/pieces"
)

// PieceRecord is the persisted form of a piece.
type PieceRecord struct {
	Kind       chess.Kind       `json:"pieceTypeId"`
	ID         string           `json:"uniqueId"`
	Name       string           `json:"displayName"`
	Coordinate chess.Coordinate `json:"coordinate"`
	Upgrades   []bool           `json:"upgradeVector"`
}

// Record is the persisted form of a team.
type Record struct {
	Colour chess.Colour  `json:"colour"`
	Pieces []PieceRecord `json:"pieces"`
}

// NewPieceRecord captures p at its starting square.
func NewPieceRecord(p *chess.Piece) PieceRecord {
	return PieceRecord{
		Kind:       p.Kind,
		ID:         p.ID,
		Name:       p.Name,
		Coordinate: p.Start,
		Upgrades:   p.Upgrades.Slice(),
	}
}

// Record returns the persisted form of t.
func (t *Team) Record() Record {
	r := Record{Colour: t.Colour, Pieces: make([]PieceRecord, 0, len(t.Pieces))}
	for _, p := range t.Pieces {
		r.Pieces = append(r.Pieces, NewPieceRecord(p))
	}
	return r
}

// FromRecord rebuilds a team, running every piece through the upgrade
// tables. Names stored in the record are ignored in favour of the rebuilt
// ones.
func FromRecord(r Record) (*Team, error) {
	t := New(r.Colour)
	ids := make(map[string]bool, len(r.Pieces))
	for i, pr := range r.Pieces {
		if pr.ID == "" {
			return nil, fmt.Errorf("piece %d: empty id: %w", i, errors.ErrInvalidPlacement)
		}
		if ids[pr.ID] {
			return nil, &errors.PieceError{Err: fmt.Errorf("duplicate id: %w", errors.ErrInvalidPlacement), PieceID: pr.ID}
		}
		ids[pr.ID] = true
		if t.PieceAt(pr.Coordinate) != nil {
			return nil, &errors.PieceError{Err: errors.ErrSquareOccupied, PieceID: pr.ID, Coordinate: pr.Coordinate.String()}
		}
		u, err := pieces.ParseUpgrades(pr.Upgrades)
		if err != nil {
			return nil, &errors.PieceError{Err: err, PieceID: pr.ID, Kind: pr.Kind.String()}
		}
		p, err := pieces.New(pr.Kind, pr.ID, r.Colour, pr.Coordinate, u)
		if err != nil {
			return nil, err
		}
		t.Pieces = append(t.Pieces, p)
	}
	return t, nil
}
