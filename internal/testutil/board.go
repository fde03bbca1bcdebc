package testutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/lgbarn/varichess-go/internal/chess"
)

// Squares parses algebraic square names, panicking on a bad name.
func Squares(names ...string) []chess.Coordinate {
	out := make([]chess.Coordinate, 0, len(names))
	for _, n := range names {
		out = append(out, chess.MustParseCoordinate(n))
	}
	return out
}

// NewPiece builds a bare piece with a hand-written descriptor. It does not
// go through the upgrade tables, so tests can exercise any movement shape.
func NewPiece(t *testing.T, id string, owner chess.Colour, at string, opts chess.DescriptorOptions) *chess.Piece {
	t.Helper()
	d, err := chess.NewDescriptor(opts)
	if err != nil {
		t.Fatalf("NewDescriptor(%s): %v", id, err)
	}
	c := chess.MustParseCoordinate(at)
	return &chess.Piece{
		ID:         id,
		Name:       id,
		Kind:       chess.Bishop,
		Owner:      owner,
		Forward:    owner.Forward(),
		Start:      c,
		Current:    c,
		History:    []chess.Coordinate{c},
		Descriptor: d,
	}
}

// NewBoard returns a board with every piece set on its current square.
func NewBoard(pieces ...*chess.Piece) *chess.Board {
	b := chess.NewBoard()
	for _, p := range pieces {
		b.SetOccupied(p)
	}
	return b
}

// AssertSquares compares a coordinate set against square names, ignoring
// order.
func AssertSquares(t *testing.T, got []chess.Coordinate, want []string, msgAndArgs ...interface{}) {
	t.Helper()
	names := make([]string, 0, len(got))
	for _, c := range got {
		names = append(names, c.String())
	}
	less := func(a, b string) bool { return a < b }
	if diff := cmp.Diff(want, names, cmpopts.SortSlices(less), cmpopts.EquateEmpty()); diff != "" {
		msg := formatMessage(msgAndArgs...)
		if msg != "" {
			t.Errorf("%s: squares mismatch (-want +got):\n%s", msg, diff)
		} else {
			t.Errorf("squares mismatch (-want +got):\n%s", diff)
		}
	}
}
