package output

import (
	"github.com/lgbarn/varichess-go/internal/chess"
	"github.com/lgbarn/varichess-go/internal/engine"
	"github.com/lgbarn/varichess-go/internal/team"
)

// PieceView is the JSON form of a piece in play.
type PieceView struct {
	ID               string             `json:"id"`
	Name             string             `json:"name"`
	Kind             chess.Kind         `json:"kind"`
	Owner            chess.Colour       `json:"owner"`
	At               chess.Coordinate   `json:"at"`
	Start            chess.Coordinate   `json:"start"`
	Value            int                `json:"value"`
	Upgrades         []bool             `json:"upgrades"`
	History          []chess.Coordinate `json:"history"`
	EnPassantSquares []chess.Coordinate `json:"enPassantSquares,omitempty"`
}

// TeamView is the JSON form of a team.
type TeamView struct {
	Colour chess.Colour `json:"colour"`
	Value  int          `json:"value"`
	Pieces []PieceView  `json:"pieces"`
}

// GameView is the JSON form of a game's state.
type GameView struct {
	ID        string               `json:"gameId,omitempty"`
	ToMove    chess.Colour         `json:"toMove"`
	Placement string               `json:"placement"`
	White     TeamView             `json:"white"`
	Black     TeamView             `json:"black"`
	History   []engine.MoveOutcome `json:"history"`
}

// ResolutionView is the JSON form of one piece's moves and takes.
type ResolutionView struct {
	PieceID string             `json:"pieceId"`
	Name    string             `json:"name"`
	Owner   chess.Colour       `json:"owner"`
	From    chess.Coordinate   `json:"from"`
	Moves   []chess.Coordinate `json:"moves"`
	Takes   []chess.Coordinate `json:"takes"`
}

// AnalysisView is the JSON form of a team analysis.
type AnalysisView struct {
	Colour chess.Colour     `json:"colour"`
	Pieces []ResolutionView `json:"pieces"`
}

// NewPieceView converts p.
func NewPieceView(p *chess.Piece) PieceView {
	return PieceView{
		ID:               p.ID,
		Name:             p.Name,
		Kind:             p.Kind,
		Owner:            p.Owner,
		At:               p.Current,
		Start:            p.Start,
		Value:            p.Value,
		Upgrades:         p.Upgrades.Slice(),
		History:          squares(p.History),
		EnPassantSquares: p.EnPassantSquares,
	}
}

// NewTeamView converts t, keeping piece order.
func NewTeamView(t *team.Team) TeamView {
	v := TeamView{Colour: t.Colour, Value: t.Value(), Pieces: make([]PieceView, 0, len(t.Pieces))}
	for _, p := range t.Pieces {
		v.Pieces = append(v.Pieces, NewPieceView(p))
	}
	return v
}

// NewGameView converts g under the given id.
func NewGameView(id string, g *engine.Game) GameView {
	history := g.History()
	if history == nil {
		history = []engine.MoveOutcome{}
	}
	return GameView{
		ID:        id,
		ToMove:    g.ToMove(),
		Placement: engine.FormatPlacement(g.Board, g.ToMove()),
		White:     NewTeamView(g.White),
		Black:     NewTeamView(g.Black),
		History:   history,
	}
}

// NewResolutionView converts the resolution of p.
func NewResolutionView(p *chess.Piece, res engine.Resolution) ResolutionView {
	return ResolutionView{
		PieceID: p.ID,
		Name:    p.Name,
		Owner:   p.Owner,
		From:    p.Current,
		Moves:   squares(res.Moves),
		Takes:   squares(res.Takes),
	}
}

// NewAnalysisView converts a team analysis.
func NewAnalysisView(colour chess.Colour, reports []engine.PieceReport) AnalysisView {
	v := AnalysisView{Colour: colour, Pieces: make([]ResolutionView, 0, len(reports))}
	for _, r := range reports {
		v.Pieces = append(v.Pieces, NewResolutionView(r.Piece, engine.Resolution{Moves: r.Moves, Takes: r.Takes}))
	}
	return v
}

// squares returns cs, or an empty slice so JSON shows [] rather than null.
func squares(cs []chess.Coordinate) []chess.Coordinate {
	if cs == nil {
		return []chess.Coordinate{}
	}
	return cs
}
