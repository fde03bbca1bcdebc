package chess

import (
	"testing"
)

func TestNewBoard(t *testing.T) {
	b := NewBoard()

	t.Run("all squares empty", func(t *testing.T) {
		for i := 0; i < NumSquares; i++ {
			c := CoordinateFromIndex(i)
			if b.IsOccupied(c) {
				t.Errorf("IsOccupied(%v) = true; want false", c)
			}
			if b.IsEnPassant(c) {
				t.Errorf("IsEnPassant(%v) = true; want false", c)
			}
		}
	})

	t.Run("squares know their coordinate", func(t *testing.T) {
		for i := range b.Squares {
			if got := b.Squares[i].Coordinate.Index(); got != i {
				t.Errorf("Squares[%d].Coordinate.Index() = %d; want %d", i, got, i)
			}
		}
	})
}

func TestBoard_Occupancy(t *testing.T) {
	t.Parallel()
	b := NewBoard()
	e4 := MustParseCoordinate("e4")
	knight := &Piece{ID: "knight_1", Kind: Knight, Owner: White, Current: e4}

	b.SetOccupied(knight)

	if !b.IsOccupied(e4) {
		t.Fatal("IsOccupied(e4) = false; want true")
	}
	if got := b.OccupiedBy(e4); got != knight {
		t.Errorf("OccupiedBy(e4) = %v; want %v", got, knight)
	}
	if !b.IsOccupiedByPlayer(White, e4) {
		t.Error("IsOccupiedByPlayer(White, e4) = false; want true")
	}
	if b.IsOccupiedByPlayer(Black, e4) {
		t.Error("IsOccupiedByPlayer(Black, e4) = true; want false")
	}
	if b.IsOccupied(MustParseCoordinate("e5")) {
		t.Error("IsOccupied(e5) = true; want false")
	}

	b.UnsetOccupied(e4)
	if b.IsOccupied(e4) {
		t.Error("IsOccupied(e4) after UnsetOccupied = true; want false")
	}
}

func TestBoard_SetOccupiedDoesNotVacate(t *testing.T) {
	t.Parallel()
	b := NewBoard()
	p := &Piece{ID: "rook_1", Owner: Black, Current: MustParseCoordinate("a8")}
	b.SetOccupied(p)

	p.Current = MustParseCoordinate("a5")
	b.SetOccupied(p)

	if !b.IsOccupied(MustParseCoordinate("a8")) {
		t.Error("old square was vacated by SetOccupied")
	}
	if got := len(b.Pieces()); got != 2 {
		t.Errorf("len(Pieces()) = %d; want 2 references", got)
	}
}

func TestBoard_EnPassant(t *testing.T) {
	t.Parallel()
	b := NewBoard()
	e3 := MustParseCoordinate("e3")
	pawn := &Piece{ID: "pawn_5", Kind: Pawn, Owner: White, Current: MustParseCoordinate("e4")}

	b.SetEnPassant(e3, pawn)

	if !b.IsEnPassant(e3) {
		t.Fatal("IsEnPassant(e3) = false; want true")
	}
	if got := b.EnPassantVictim(e3); got != pawn {
		t.Errorf("EnPassantVictim(e3) = %v; want %v", got, pawn)
	}
	if b.IsOccupied(e3) {
		t.Error("en-passant mark must not occupy the square")
	}

	b.UnsetEnPassant(e3)
	if b.IsEnPassant(e3) {
		t.Error("IsEnPassant(e3) after UnsetEnPassant = true; want false")
	}
}

func TestBoard_OffBoard(t *testing.T) {
	t.Parallel()
	b := NewBoard()
	off := Coordinate{Col: 8, Row: 3}
	p := &Piece{ID: "x", Current: off}

	b.SetOccupied(p)
	b.SetEnPassant(off, p)

	if b.IsOccupied(off) || b.IsEnPassant(off) {
		t.Error("off-board coordinate reported as marked")
	}
	if got := len(b.Pieces()); got != 0 {
		t.Errorf("len(Pieces()) = %d; want 0", got)
	}
}

func TestBoard_Clear(t *testing.T) {
	t.Parallel()
	b := NewBoard()
	p := &Piece{ID: "queen_1", Current: MustParseCoordinate("d1")}
	b.SetOccupied(p)
	b.SetEnPassant(MustParseCoordinate("d2"), p)

	b.Clear()

	if len(b.Pieces()) != 0 || b.IsEnPassant(MustParseCoordinate("d2")) {
		t.Error("Clear left marks on the board")
	}
}
