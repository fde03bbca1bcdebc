package team

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/lgbarn/varichess-go/internal/chess"
	verrors "github.com/lgbarn/varichess-go/internal/errors"
	"github.com/lgbarn/varichess-go/internal/testutil"
)

func at(s string) chess.Coordinate { return chess.MustParseCoordinate(s) }

func TestNewStandard(t *testing.T) {
	tests := []struct {
		colour chess.Colour
		want   map[string]string
	}{
		{chess.White, map[string]string{
			"pawn_1": "a2", "pawn_8": "h2", "rook_1": "a1", "rook_2": "h1",
			"knight_1": "b1", "knight_2": "g1", "bishop_1": "c1", "bishop_2": "f1",
			"queen_1": "d1", "king_1": "e1",
		}},
		{chess.Black, map[string]string{
			"pawn_1": "a7", "pawn_8": "h7", "rook_1": "a8", "rook_2": "h8",
			"queen_1": "d8", "king_1": "e8",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.colour.String(), func(t *testing.T) {
			team := NewStandard(tt.colour)
			testutil.AssertEqual(t, len(team.Pieces), 16)
			for id, square := range tt.want {
				p := team.Piece(id)
				if p == nil {
					t.Fatalf("piece %s missing", id)
				}
				testutil.AssertEqual(t, p.Current.String(), square, id)
				testutil.AssertEqual(t, p.Owner, tt.colour, id)
			}
			testutil.AssertEqual(t, team.Value(), 4423)
		})
	}
}

func TestStartZone(t *testing.T) {
	white := New(chess.White).StartZone()
	testutil.AssertEqual(t, len(white), 24)
	testutil.AssertEqual(t, white[:4], testutil.Squares("a3", "a2", "a1", "b3"))

	black := New(chess.Black).StartZone()
	testutil.AssertEqual(t, black[:4], testutil.Squares("a8", "a7", "a6", "b8"))

	testutil.AssertTrue(t, New(chess.White).InStartZone(at("h3")), "h3 in white zone")
	testutil.AssertFalse(t, New(chess.White).InStartZone(at("h4")), "h4 outside white zone")
	testutil.AssertTrue(t, New(chess.Black).InStartZone(at("c6")), "c6 in black zone")
}

func TestAddPiece(t *testing.T) {
	team := NewStandard(chess.White)

	knight, err := team.AddPiece(chess.Knight)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, knight.ID, "knight_3")
	testutil.AssertEqual(t, knight.Current, at("a3"))

	pawn, err := team.AddPiece(chess.Pawn)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, pawn.ID, "pawn_9")
	testutil.AssertEqual(t, pawn.Current, at("b3"))
	testutil.AssertEqual(t, len(team.Pieces), 18)
}

func TestAddPiece_ZoneFull(t *testing.T) {
	team := NewStandard(chess.Black)
	for i := 0; i < 8; i++ {
		if _, err := team.AddPiece(chess.Pawn); err != nil {
			t.Fatalf("AddPiece #%d: %v", i+1, err)
		}
	}
	_, err := team.AddPiece(chess.Queen)
	if !errors.Is(err, verrors.ErrNoStartSquare) {
		t.Fatalf("AddPiece on full zone error = %v; want ErrNoStartSquare", err)
	}
	testutil.AssertEqual(t, len(team.Pieces), 24)
}

func TestRemovePiece_FreesIDAndSquare(t *testing.T) {
	team := NewStandard(chess.White)
	removed, err := team.RemovePiece("knight_1")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, removed.Current, at("b1"))
	testutil.AssertNil(t, team.Piece("knight_1"))

	again, err := team.AddPiece(chess.Knight)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, again.ID, "knight_1")

	_, err = team.RemovePiece("dragon_1")
	if !errors.Is(err, verrors.ErrPieceNotFound) {
		t.Errorf("RemovePiece(unknown) error = %v; want ErrPieceNotFound", err)
	}
}

func TestRelocate(t *testing.T) {
	team := NewStandard(chess.White)

	testutil.AssertNoError(t, team.Relocate("queen_1", at("d3")))
	queen := team.Piece("queen_1")
	testutil.AssertEqual(t, queen.Start, at("d3"))
	testutil.AssertEqual(t, queen.History, testutil.Squares("d3"))
	testutil.AssertEqual(t, queen.Value, 1273)

	tests := []struct {
		name string
		id   string
		to   string
		want error
	}{
		{"outside zone", "queen_1", "d4", verrors.ErrInvalidPlacement},
		{"occupied", "queen_1", "e1", verrors.ErrSquareOccupied},
		{"unknown piece", "queen_9", "d3", verrors.ErrPieceNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := team.Relocate(tt.id, at(tt.to))
			if !errors.Is(err, tt.want) {
				t.Errorf("Relocate(%s, %s) error = %v; want %v", tt.id, tt.to, err, tt.want)
			}
		})
	}
}

func TestSetUpgrades(t *testing.T) {
	team := NewStandard(chess.White)
	before := team.Value()

	changed, err := team.SetUpgrades("bishop_1", []bool{false, false, false, false, false, true})
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, changed, "reflect toggle applied")
	testutil.AssertEqual(t, team.Value(), before+200)

	_, err = team.SetUpgrades("bishop_1", []bool{true})
	if !errors.Is(err, verrors.ErrInvalidUpgrades) {
		t.Errorf("SetUpgrades(short) error = %v; want ErrInvalidUpgrades", err)
	}
	_, err = team.SetUpgrades("bishop_9", make([]bool, chess.NumUpgrades))
	if !errors.Is(err, verrors.ErrPieceNotFound) {
		t.Errorf("SetUpgrades(unknown) error = %v; want ErrPieceNotFound", err)
	}
}

func TestReset(t *testing.T) {
	team := NewStandard(chess.Black)
	_, _ = team.RemovePiece("queen_1")
	_, _ = team.AddPiece(chess.Rook)
	team.Reset()
	testutil.AssertEqual(t, team.Record(), NewStandard(chess.Black).Record())
}

func TestRecord_RoundTrip(t *testing.T) {
	team := NewStandard(chess.White)
	_, err := team.SetUpgrades("pawn_3", []bool{false, false, true, true, false, false})
	testutil.AssertNoError(t, err)

	data, err := json.Marshal(team.Record())
	testutil.AssertNoError(t, err)
	testutil.AssertContains(t, string(data), `"colour":"white"`)
	testutil.AssertContains(t, string(data), `"pieceTypeId":"pawn"`)
	testutil.AssertContains(t, string(data), `"uniqueId":"pawn_3","displayName":"Sergeant","coordinate":"c2"`)
	testutil.AssertContains(t, string(data), `"upgradeVector":[false,false,true,true,false,false]`)

	var rec Record
	testutil.AssertNoError(t, json.Unmarshal(data, &rec))
	loaded, err := FromRecord(rec)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, loaded.Record(), team.Record())
	testutil.AssertEqual(t, loaded.Value(), team.Value())
	testutil.AssertTrue(t, loaded.Piece("pawn_3").Descriptor.Equal(team.Piece("pawn_3").Descriptor),
		"descriptor rebuilt from upgrades")
}

func TestFromRecord_Errors(t *testing.T) {
	valid := func() Record { return NewStandard(chess.White).Record() }

	tests := []struct {
		name   string
		mutate func(*Record)
		want   error
	}{
		{"short upgrades", func(r *Record) { r.Pieces[0].Upgrades = []bool{true} }, verrors.ErrInvalidUpgrades},
		{"unknown kind", func(r *Record) { r.Pieces[0].Kind = chess.NoKind }, verrors.ErrUnknownKind},
		{"off board", func(r *Record) { r.Pieces[0].Coordinate = chess.Coordinate{Col: 8, Row: 0} }, verrors.ErrInvalidCoordinate},
		{"shared square", func(r *Record) { r.Pieces[1].Coordinate = r.Pieces[0].Coordinate }, verrors.ErrSquareOccupied},
		{"duplicate id", func(r *Record) { r.Pieces[1].ID = r.Pieces[0].ID }, verrors.ErrInvalidPlacement},
		{"empty id", func(r *Record) { r.Pieces[2].ID = "" }, verrors.ErrInvalidPlacement},
		{"sliding giraffe", func(r *Record) {
			for i := range r.Pieces {
				if r.Pieces[i].ID == "knight_1" {
					r.Pieces[i].Upgrades = []bool{true, false, false, false, true, false}
				}
			}
		}, verrors.ErrInvalidUpgrades},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := valid()
			tt.mutate(&rec)
			_, err := FromRecord(rec)
			if !errors.Is(err, tt.want) {
				t.Errorf("FromRecord() error = %v; want %v", err, tt.want)
			}
		})
	}
}

func TestRecord_RejectsBadJSON(t *testing.T) {
	var rec Record
	err := json.Unmarshal([]byte(`{"colour":"white","pieces":[{"pieceTypeId":"pawn","coordinate":"z9"}]}`), &rec)
	if !errors.Is(err, verrors.ErrInvalidCoordinate) {
		t.Errorf("Unmarshal(bad coordinate) error = %v; want ErrInvalidCoordinate", err)
	}
}

func TestPlace(t *testing.T) {
	team := New(chess.Black)
	p, err := team.Place(chess.Queen, at("d4"), chess.Upgrades{})
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, p.ID, "queen_1")
	testutil.AssertEqual(t, p.Forward, 1)

	_, err = team.Place(chess.Rook, at("d4"), chess.Upgrades{})
	if !errors.Is(err, verrors.ErrSquareOccupied) {
		t.Errorf("Place on occupied square error = %v; want ErrSquareOccupied", err)
	}
}
