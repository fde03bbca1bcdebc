package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lgbarn/varichess-go/internal/chess"
	"github.com/lgbarn/varichess-go/internal/config"
	"github.com/lgbarn/varichess-go/internal/engine"
	verrors "github.com/lgbarn/varichess-go/internal/errors"
	"github.com/lgbarn/varichess-go/internal/output"
	"github.com/lgbarn/varichess-go/internal/storage/sqlite"
	"github.com/lgbarn/varichess-go/internal/team"
	"github.com/lgbarn/varichess-go/internal/testutil"
)

func testConfig(out, log *bytes.Buffer) *config.Config {
	return config.NewConfigBuilder().WithOutput(out).WithLog(log).WithVerbosity(1).Build()
}

func TestParseMoves(t *testing.T) {
	got, err := parseMoves(" pawn_5=e4, black:pawn_4=d5 ,")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(got), 2)
	testutil.AssertEqual(t, got[1].ref, "black:pawn_4")
	testutil.AssertEqual(t, got[1].to, chess.MustParseCoordinate("d5"))

	none, err := parseMoves("")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(none), 0)

	for _, bad := range []string{"pawn_5", "=e4", "pawn_5=e9"} {
		if _, err := parseMoves(bad); err == nil {
			t.Errorf("parseMoves(%q) should fail", bad)
		}
	}
	_, err = parseMoves("pawn_5=z1")
	if !errors.Is(err, verrors.ErrInvalidCoordinate) {
		t.Errorf("parseMoves bad square error = %v; want ErrInvalidCoordinate", err)
	}
}

func TestRunResolve_Text(t *testing.T) {
	var out, log bytes.Buffer
	cfg := testConfig(&out, &log)

	err := runResolve(cfg, options{position: engine.StandardPlacement, piece: "knight_1"})
	testutil.AssertNoError(t, err)

	text := out.String()
	testutil.AssertContains(t, text, "White Knight knight_1 on b1")
	testutil.AssertContains(t, text, "moves: a3 c3")
	testutil.AssertContains(t, text, "takes: -")
	testutil.AssertContains(t, text, "3 | * . * . . . . . |")
	testutil.AssertContains(t, log.String(), "2 moves, 0 takes")
}

func TestRunResolve_AfterMoves(t *testing.T) {
	var out, log bytes.Buffer
	cfg := testConfig(&out, &log)
	cfg.Output.ShowBoard = false

	err := runResolve(cfg, options{
		position: engine.StandardPlacement,
		moves:    "pawn_5=e4,pawn_4=d5",
		piece:    "pawn_5",
	})
	testutil.AssertNoError(t, err)
	testutil.AssertContains(t, out.String(), "moves: e5")
	testutil.AssertContains(t, out.String(), "takes: d5")
}

func TestRunResolve_JSON(t *testing.T) {
	var out, log bytes.Buffer
	cfg := testConfig(&out, &log)
	cfg.Output.JSONFormat = true

	err := runResolve(cfg, options{position: "4k3/8/8/8/8/8/8/4K3 w", piece: "black:king_1"})
	testutil.AssertNoError(t, err)

	var view output.ResolutionView
	testutil.AssertNoError(t, json.Unmarshal(out.Bytes(), &view))
	testutil.AssertEqual(t, view.PieceID, "king_1")
	testutil.AssertEqual(t, view.Owner, chess.Black)
	testutil.AssertEqual(t, len(view.Moves), 5)
}

func TestRunResolve_Errors(t *testing.T) {
	tests := []struct {
		name string
		opts options
		want error
	}{
		{"bad placement", options{position: "9/8", piece: "king_1"}, verrors.ErrInvalidPlacement},
		{"unknown piece", options{position: engine.StandardPlacement, piece: "wizard_1"}, verrors.ErrPieceNotFound},
		{"wrong side moves", options{position: engine.StandardPlacement, moves: "black:pawn_1=a6", piece: "pawn_1"}, verrors.ErrNotYourTurn},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out, log bytes.Buffer
			err := runResolve(testConfig(&out, &log), tt.opts)
			if !errors.Is(err, tt.want) {
				t.Errorf("runResolve() error = %v; want %v", err, tt.want)
			}
		})
	}

	var out, log bytes.Buffer
	testutil.AssertError(t, runResolve(testConfig(&out, &log), options{position: engine.StandardPlacement}), "no piece")
	err := runResolve(testConfig(&out, &log), options{position: engine.StandardPlacement, moves: "pawn_1=a5", piece: "pawn_1"})
	testutil.AssertContains(t, err.Error(), "rejected")
}

func TestRunAnalyze_Text(t *testing.T) {
	var out, log bytes.Buffer
	cfg := testConfig(&out, &log)
	cfg.Workers = 3

	err := runAnalyze(cfg, options{position: engine.StandardPlacement, value: true})
	testutil.AssertNoError(t, err)

	text := out.String()
	testutil.AssertTrue(t, strings.HasPrefix(text, "White\n"), "side to move first")
	testutil.AssertContains(t, text, "\nBlack\n")
	testutil.AssertContains(t, text, "8 | r n b q k b n r |")
	testutil.AssertContains(t, text, "White team, 16 pieces")
	testutil.AssertContains(t, text, "4,423")
	testutil.AssertContains(t, log.String(), "analyzed 16 Black pieces")
}

func TestRunAnalyze_JSON(t *testing.T) {
	var out, log bytes.Buffer
	cfg := testConfig(&out, &log)
	cfg.Output.JSONFormat = true
	cfg.Output.ShowBoard = false

	err := runAnalyze(cfg, options{position: "4k3/8/8/8/8/8/8/4K3 b", value: true})
	testutil.AssertNoError(t, err)

	var views []output.AnalysisView
	testutil.AssertNoError(t, json.Unmarshal(out.Bytes(), &views))
	testutil.AssertEqual(t, len(views), 2)
	testutil.AssertEqual(t, views[0].Colour, chess.Black)
	testutil.AssertEqual(t, len(views[1].Pieces[0].Moves), 5)
}

func TestSetupGame_Profile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "teams.db")
	store, err := sqlite.Open(path)
	testutil.AssertNoError(t, err)
	custom := team.NewStandard(chess.White)
	_, err = custom.AddPiece(chess.Queen)
	testutil.AssertNoError(t, err)
	testutil.AssertNoError(t, store.SaveTeam(context.Background(), "alice", custom.Record()))
	testutil.AssertNoError(t, store.Close())

	var out, log bytes.Buffer
	cfg := testConfig(&out, &log)
	cfg.Storage.Path = path
	cfg.Storage.Profile = "alice"

	g, err := setupGame(cfg, options{position: engine.StandardPlacement})
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(g.White.Pieces), 17)
	testutil.AssertEqual(t, g.White.Piece("queen_2").Current, chess.MustParseCoordinate("a3"))

	cfg.Storage.Profile = "bob"
	_, err = setupGame(cfg, options{position: engine.StandardPlacement})
	testutil.AssertError(t, err, "missing profile")
}
