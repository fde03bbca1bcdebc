package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/lgbarn/varichess-go/internal/chess"
	"github.com/lgbarn/varichess-go/internal/engine"
	"github.com/lgbarn/varichess-go/internal/testutil"
)

func standardReports(t *testing.T) (*engine.Game, []engine.PieceReport) {
	t.Helper()
	g, err := engine.NewGameFromPlacement(engine.StandardPlacement)
	testutil.AssertNoError(t, err)
	reports, err := engine.AnalyzeTeam(g.Board, g.White.Pieces, 2)
	testutil.AssertNoError(t, err)
	return g, reports
}

func TestTextWriter_WriteReport(t *testing.T) {
	_, reports := standardReports(t)
	var buf bytes.Buffer
	w := NewTextWriter(&buf)
	testutil.AssertNoError(t, w.WriteReport(chess.White, reports))
	testutil.AssertNoError(t, w.Close())

	out := buf.String()
	testutil.AssertTrue(t, strings.HasPrefix(out, "White\n"), "heading first")
	testutil.AssertContains(t, out, "pawn_5")
	testutil.AssertContains(t, out, "moves  2: e4 e3")
	testutil.AssertContains(t, out, "moves  2: a3 c3")
	testutil.AssertEqual(t, strings.Count(out, "\n"), 17)
}

func TestJSONWriter_BatchesUntilFlush(t *testing.T) {
	_, reports := standardReports(t)
	var buf bytes.Buffer
	w := NewJSONWriter(&buf)
	testutil.AssertNoError(t, w.WriteReport(chess.White, reports))
	testutil.AssertEqual(t, buf.Len(), 0, "nothing written before flush")
	testutil.AssertNoError(t, w.Close())

	var got []AnalysisView
	testutil.AssertNoError(t, json.Unmarshal(buf.Bytes(), &got))
	testutil.AssertEqual(t, len(got), 1)
	testutil.AssertEqual(t, got[0].Colour, chess.White)
	testutil.AssertEqual(t, len(got[0].Pieces), 16)
	testutil.AssertEqual(t, got[0].Pieces[4].PieceID, "pawn_5")
	testutil.AssertEqual(t, got[0].Pieces[4].Moves, []chess.Coordinate{chess.MustParseCoordinate("e4"), chess.MustParseCoordinate("e3")})
	testutil.AssertEqual(t, got[0].Pieces[4].Takes, []chess.Coordinate{})
}

func TestJSONWriterSingle_WritesImmediately(t *testing.T) {
	_, reports := standardReports(t)
	var buf bytes.Buffer
	w := NewJSONWriterSingle(&buf)
	testutil.AssertNoError(t, w.WriteReport(chess.White, reports))
	testutil.AssertTrue(t, buf.Len() > 0, "single mode writes at once")
	testutil.AssertContains(t, buf.String(), `"colour": "white"`)
	testutil.AssertContains(t, buf.String(), `"takes": []`)
	testutil.AssertNoError(t, w.Close())
}
