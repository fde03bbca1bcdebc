// Package team manages a player's pieces: the standard setup, pre-game
// customization and the persisted team record.
package team

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/varichess-go/internal/chess"
	"github.com/lgbarn/varichess-go/internal/errors"
	"github.com/lgbarn/varichess-go/internal/pieces"
)

// StartRows is the depth of a side's start zone.
const StartRows = 3

// Team is one side's set of pieces.
type Team struct {
	Colour chess.Colour
	Pieces []*chess.Piece
	Turn   bool
}

// New returns an empty team.
func New(colour chess.Colour) *Team {
	return &Team{Colour: colour}
}

var backRank = []chess.Kind{
	chess.Rook, chess.Knight, chess.Bishop, chess.Queen,
	chess.King, chess.Bishop, chess.Knight, chess.Rook,
}

// NewStandard returns the standard sixteen-piece setup for colour.
func NewStandard(colour chess.Colour) *Team {
	t := New(colour)
	for col := 0; col < chess.BoardSize; col++ {
		t.mustAdd(chess.Pawn, chess.NewCoordinate(col, colour.PawnRow()))
	}
	// Pair order gives rook_1 the a-file and rook_2 the h-file.
	for _, col := range []int{0, 7, 1, 6, 2, 5, 3, 4} {
		t.mustAdd(backRank[col], chess.NewCoordinate(col, colour.BackRow()))
	}
	return t
}

// mustAdd places a piece of the static standard layout.
func (t *Team) mustAdd(kind chess.Kind, c chess.Coordinate) {
	p, err := pieces.New(kind, t.nextID(kind), t.Colour, c, chess.Upgrades{})
	if err != nil {
		panic(err)
	}
	t.Pieces = append(t.Pieces, p)
}

// Value returns the sum of the team's piece values.
func (t *Team) Value() int {
	total := 0
	for _, p := range t.Pieces {
		total += p.Value
	}
	return total
}

// Piece returns the piece with id, or nil.
func (t *Team) Piece(id string) *chess.Piece {
	for _, p := range t.Pieces {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// PieceAt returns the piece whose current square is c, or nil.
func (t *Team) PieceAt(c chess.Coordinate) *chess.Piece {
	for _, p := range t.Pieces {
		if p.Current == c {
			return p
		}
	}
	return nil
}

// StartZone lists the side's start squares in fill order: files a to h,
// and within a file by increasing row index.
func (t *Team) StartZone() []chess.Coordinate {
	first := 0
	if t.Colour == chess.White {
		first = chess.BoardSize - StartRows
	}
	zone := make([]chess.Coordinate, 0, chess.BoardSize*StartRows)
	for col := 0; col < chess.BoardSize; col++ {
		for row := first; row < first+StartRows; row++ {
			zone = append(zone, chess.NewCoordinate(col, row))
		}
	}
	return zone
}

// InStartZone reports whether c is one of the side's start squares.
func (t *Team) InStartZone(c chess.Coordinate) bool {
	if !c.OnBoard() {
		return false
	}
	if t.Colour == chess.White {
		return c.Row >= chess.BoardSize-StartRows
	}
	return c.Row < StartRows
}

// nextID returns "<kind>_<n>" with the smallest n not already in use.
func (t *Team) nextID(kind chess.Kind) string {
	used := make(map[int]bool)
	prefix := kind.ID() + "_"
	for _, p := range t.Pieces {
		if !strings.HasPrefix(p.ID, prefix) {
			continue
		}
		if n, err := strconv.Atoi(strings.TrimPrefix(p.ID, prefix)); err == nil {
			used[n] = true
		}
	}
	n := 1
	for used[n] {
		n++
	}
	return prefix + strconv.Itoa(n)
}

// AddPiece adds a new piece of kind on the first free start square.
func (t *Team) AddPiece(kind chess.Kind) (*chess.Piece, error) {
	var free chess.Coordinate
	found := false
	for _, c := range t.StartZone() {
		if t.PieceAt(c) == nil {
			free, found = c, true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("%s team: %w", t.Colour, errors.ErrNoStartSquare)
	}
	p, err := pieces.New(kind, t.nextID(kind), t.Colour, free, chess.Upgrades{})
	if err != nil {
		return nil, err
	}
	t.Pieces = append(t.Pieces, p)
	return p, nil
}

// Place adds a piece of kind on c with the next free id. Unlike AddPiece
// it accepts any square, for building arbitrary positions.
func (t *Team) Place(kind chess.Kind, c chess.Coordinate, u chess.Upgrades) (*chess.Piece, error) {
	if t.PieceAt(c) != nil {
		return nil, &errors.PieceError{Err: errors.ErrSquareOccupied, Kind: kind.String(), Coordinate: c.String()}
	}
	p, err := pieces.New(kind, t.nextID(kind), t.Colour, c, u)
	if err != nil {
		return nil, err
	}
	t.Pieces = append(t.Pieces, p)
	return p, nil
}

// RemovePiece deletes the piece with id from the team.
func (t *Team) RemovePiece(id string) (*chess.Piece, error) {
	for i, p := range t.Pieces {
		if p.ID == id {
			t.Pieces = append(t.Pieces[:i], t.Pieces[i+1:]...)
			return p, nil
		}
	}
	return nil, &errors.PieceError{Err: errors.ErrPieceNotFound, PieceID: id}
}

// Relocate moves a piece to another free start square during setup. The
// piece's value is recomputed since it depends on the starting square.
func (t *Team) Relocate(id string, c chess.Coordinate) error {
	p := t.Piece(id)
	if p == nil {
		return &errors.PieceError{Err: errors.ErrPieceNotFound, PieceID: id}
	}
	if !t.InStartZone(c) {
		return &errors.PieceError{Err: errors.ErrInvalidPlacement, PieceID: id, Kind: p.Kind.String(), Coordinate: c.String()}
	}
	if other := t.PieceAt(c); other != nil && other != p {
		return &errors.PieceError{Err: errors.ErrSquareOccupied, PieceID: id, Kind: p.Kind.String(), Coordinate: c.String()}
	}
	p.Start = c
	p.Current = c
	p.History = []chess.Coordinate{c}
	return pieces.Rebuild(p)
}

// SetUpgrades replaces the upgrade vector of a piece. It reports whether
// anything changed.
func (t *Team) SetUpgrades(id string, toggles []bool) (bool, error) {
	p := t.Piece(id)
	if p == nil {
		return false, &errors.PieceError{Err: errors.ErrPieceNotFound, PieceID: id}
	}
	changed, _, err := pieces.SetUpgrades(p, toggles)
	return changed, err
}

// Reset restores the standard setup.
func (t *Team) Reset() {
	t.Pieces = NewStandard(t.Colour).Pieces
}
