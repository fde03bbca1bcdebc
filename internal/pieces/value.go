package pieces

import (
	"fmt"
	"math"

	"github.com/lgbarn/varichess-go/internal/chess"
	"github.com/lgbarn/varichess-go/internal/errors"
)

// Value computes a piece's points from its type, starting square and
// upgrade delta, floored to an integer.
func Value(kind chess.Kind, start chess.Coordinate, upgradeDelta int) int {
	s, ok := stats[kind]
	if !ok {
		return 0
	}
	total := s.Base +
		s.Base*s.RowCoef*rowBand(start.Row) +
		s.Base*s.ColCoef*colBand(start.Col) +
		float64(upgradeDelta)
	return int(math.Floor(total))
}

// colBand weights columns: edge files lose, central files gain twice.
func colBand(col int) float64 {
	switch col {
	case 0, 7:
		return -1
	case 1, 6:
		return 0
	case 2, 5:
		return 1
	case 3, 4:
		return 2
	}
	return 0
}

// rowBand weights rows by index: back ranks lose, third ranks gain.
func rowBand(row int) float64 {
	switch row {
	case 0, 7:
		return -1
	case 2, 5:
		return 1
	}
	return 0
}

// New creates a piece of kind for owner on start with the given upgrades.
func New(kind chess.Kind, id string, owner chess.Colour, start chess.Coordinate, u chess.Upgrades) (*chess.Piece, error) {
	if !start.OnBoard() {
		return nil, &errors.PieceError{Err: errors.ErrInvalidCoordinate, PieceID: id, Kind: kind.String()}
	}
	p := &chess.Piece{
		ID:      id,
		Kind:    kind,
		Owner:   owner,
		Forward: owner.Forward(),
		Start:   start,
		Current: start,
		History: []chess.Coordinate{start},
	}
	if err := apply(p, u); err != nil {
		return nil, &errors.PieceError{Err: err, PieceID: id, Kind: kind.String(), Coordinate: start.String()}
	}
	return p, nil
}

// SetUpgrades replaces a piece's upgrade vector, rebuilding its descriptor,
// name and value. It reports whether the vector changed and returns the
// upgrade value delta of the new build.
func SetUpgrades(p *chess.Piece, toggles []bool) (bool, int, error) {
	u, err := ParseUpgrades(toggles)
	if err != nil {
		return false, 0, &errors.PieceError{Err: err, PieceID: p.ID, Kind: p.Kind.String()}
	}
	changed := u != p.Upgrades
	b, err := BuildPiece(p.Kind, p.Forward, u)
	if err != nil {
		return false, 0, &errors.PieceError{Err: err, PieceID: p.ID, Kind: p.Kind.String()}
	}
	p.Upgrades = u
	setBuild(p, b)
	return changed, b.ValueDelta, nil
}

// Rebuild recomputes the descriptor from the piece's current upgrades and
// forward direction, for example after a pawn's forward flip.
func Rebuild(p *chess.Piece) error {
	return apply(p, p.Upgrades)
}

func apply(p *chess.Piece, u chess.Upgrades) error {
	b, err := BuildPiece(p.Kind, p.Forward, u)
	if err != nil {
		return err
	}
	p.Upgrades = u
	setBuild(p, b)
	return nil
}

func setBuild(p *chess.Piece, b Build) {
	p.Descriptor = b.Descriptor
	p.Name = b.Name
	p.Value = Value(p.Kind, p.Start, b.ValueDelta)
	p.ClearResolution()
}

// Describe returns a one-line summary of a piece's movement, used in logs.
func Describe(p *chess.Piece) string {
	d := p.Descriptor
	return fmt.Sprintf("%s %s: move %v x%d-%d, take %v x%d-%d, leap=%t jump=%d reflect=%t",
		p.ID, p.Name, d.MoveVectors(), d.MinMove(), d.MaxMove(),
		d.TakeVectors(), d.MinTake(), d.MaxTake(), d.Leap(), d.Jump(), d.Reflect())
}
