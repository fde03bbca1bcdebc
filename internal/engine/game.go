package engine

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/varichess-go/internal/chess"
	"github.com/lgbarn/varichess-go/internal/errors"
	"github.com/lgbarn/varichess-go/internal/pieces"
	"github.com/lgbarn/varichess-go/internal/team"
)

// Observer is notified of resolutions and committed moves. Calls are made
// synchronously from the goroutine driving the game.
type Observer interface {
	Highlight(p *chess.Piece, res Resolution)
	Committed(outcome MoveOutcome)
}

// Game is a match between two teams on a shared board. It is not safe for
// concurrent use.
type Game struct {
	White *team.Team
	Black *team.Team
	Board *chess.Board

	toMove    chess.Colour
	history   []MoveOutcome
	observers []Observer

	log       io.Writer
	verbosity int
	trace     io.Writer
}

// Option configures a Game.
type Option func(*Game)

// WithLog sends commentary to w. Level 2 and above logs every move.
func WithLog(w io.Writer, verbosity int) Option {
	return func(g *Game) {
		g.log = w
		g.verbosity = verbosity
	}
}

// WithTrace writes a resolver trace for every resolution to w.
func WithTrace(w io.Writer) Option {
	return func(g *Game) { g.trace = w }
}

// WithObserver registers an observer.
func WithObserver(o Observer) Option {
	return func(g *Game) { g.observers = append(g.observers, o) }
}

// WithToMove sets the side that moves first. White moves first by default.
func WithToMove(c chess.Colour) Option {
	return func(g *Game) { g.toMove = c }
}

// NewGame places both teams on a fresh board.
func NewGame(white, black *team.Team, opts ...Option) (*Game, error) {
	if white == nil || black == nil || white.Colour != chess.White || black.Colour != chess.Black {
		return nil, fmt.Errorf("new game needs a white and a black team: %w", errors.ErrInvalidPlacement)
	}
	g := &Game{
		White:  white,
		Black:  black,
		Board:  chess.NewBoard(),
		toMove: chess.White,
	}
	for _, opt := range opts {
		opt(g)
	}
	for _, p := range g.Pieces() {
		if other := g.Board.OccupiedBy(p.Current); other != nil {
			return nil, &errors.PieceError{
				Err:        fmt.Errorf("shares square with %s: %w", other.ID, errors.ErrSquareOccupied),
				PieceID:    p.ID,
				Kind:       p.Kind.String(),
				Coordinate: p.Current.String(),
			}
		}
		g.Board.SetOccupied(p)
	}
	g.setTurn(g.toMove)
	g.logf(2, "new game: white %d pieces (%d), black %d pieces (%d), %s to move\n",
		len(white.Pieces), white.Value(), len(black.Pieces), black.Value(), g.toMove)
	return g, nil
}

// AddObserver registers an observer after construction.
func (g *Game) AddObserver(o Observer) {
	g.observers = append(g.observers, o)
}

// ToMove returns the side whose turn it is.
func (g *Game) ToMove() chess.Colour {
	return g.toMove
}

// Team returns the team of colour c.
func (g *Game) Team(c chess.Colour) *team.Team {
	if c == chess.White {
		return g.White
	}
	return g.Black
}

// Pieces returns every piece still in play, White first.
func (g *Game) Pieces() []*chess.Piece {
	out := make([]*chess.Piece, 0, len(g.White.Pieces)+len(g.Black.Pieces))
	out = append(out, g.White.Pieces...)
	return append(out, g.Black.Pieces...)
}

// History returns the committed moves in order.
func (g *Game) History() []MoveOutcome {
	return append([]MoveOutcome(nil), g.history...)
}

// Lookup finds a piece by reference. Both teams use the same id scheme, so
// a reference is either "<colour>:<id>" or a bare id, which is looked up on
// the side to move first and then on the other side.
func (g *Game) Lookup(ref string) (*chess.Piece, error) {
	if colour, id, ok := strings.Cut(ref, ":"); ok {
		c, err := chess.ParseColour(colour)
		if err != nil {
			return nil, &errors.PieceError{Err: errors.ErrPieceNotFound, PieceID: ref}
		}
		if p := g.Team(c).Piece(id); p != nil {
			return p, nil
		}
		return nil, &errors.PieceError{Err: errors.ErrPieceNotFound, PieceID: ref}
	}
	if p := g.Team(g.toMove).Piece(ref); p != nil {
		return p, nil
	}
	if p := g.Team(g.toMove.Opposite()).Piece(ref); p != nil {
		return p, nil
	}
	return nil, &errors.PieceError{Err: errors.ErrPieceNotFound, PieceID: ref}
}

// ResolveMoves computes fresh moves and takes for a piece, stores them on
// the piece and notifies observers.
func (g *Game) ResolveMoves(ref string) (Resolution, error) {
	p, err := g.Lookup(ref)
	if err != nil {
		return Resolution{}, err
	}
	res, err := g.resolve(p)
	if err != nil {
		return Resolution{}, err
	}
	for _, o := range g.observers {
		o.Highlight(p, res)
	}
	return res, nil
}

func (g *Game) resolve(p *chess.Piece) (Resolution, error) {
	res, err := ResolveTrace(p, g.Board, g.trace)
	if err != nil {
		return Resolution{}, err
	}
	p.ValidMoves = res.Moves
	p.ValidTakes = res.Takes
	return res, nil
}

// ApplyMove moves a piece of the side to move to dest. A destination the
// piece cannot reach yields a Rejected outcome and leaves the game as it
// was; errors are reserved for unknown pieces, turn violations and
// resolution failures.
func (g *Game) ApplyMove(ref string, dest chess.Coordinate) (MoveOutcome, error) {
	p, err := g.Lookup(ref)
	if err != nil {
		return MoveOutcome{}, err
	}
	if p.Owner != g.toMove {
		return MoveOutcome{}, &errors.PieceError{
			Err:        fmt.Errorf("%s to move: %w", g.toMove, errors.ErrNotYourTurn),
			PieceID:    p.ID,
			Kind:       p.Kind.String(),
			Coordinate: p.Current.String(),
		}
	}

	res, err := g.resolve(p)
	if err != nil {
		return MoveOutcome{}, err
	}
	out := MoveOutcome{Kind: Rejected, PieceID: p.ID, Owner: p.Owner, From: p.Current, To: dest}
	if !res.Contains(dest) {
		g.logf(2, "%s\n", out)
		return out, nil
	}

	// The capture target is read before the en-passant marks are cleared,
	// since clearing removes the mark being taken.
	var victim *chess.Piece
	if res.IsTake(dest) {
		if occ := g.Board.OccupiedBy(dest); isOpponent(p, occ) {
			victim = occ
		} else {
			victim = g.Board.EnPassantVictim(dest)
		}
	}

	g.clearEnPassant()

	out.Kind = Moved
	if isOpponent(p, victim) {
		out.Kind = Captured
		out.Captured = g.capture(victim)
		out.RoyalCaptured = victim.Descriptor.Royal()
	}

	from := p.Current
	g.Board.UnsetOccupied(from)
	p.Current = dest
	p.History = append(p.History, dest)
	g.Board.SetOccupied(p)

	if p.Descriptor.EnPassant() {
		out.EnPassantSquares = g.markEnPassant(p, from, dest)
	}

	if p.Kind == chess.Pawn && farRow(p) == dest.Row {
		p.Forward = -p.Forward
		if err := pieces.Rebuild(p); err != nil {
			return MoveOutcome{}, err
		}
		out.Flipped = true
	}

	for _, q := range g.Pieces() {
		q.ClearResolution()
	}

	g.history = append(g.history, out)
	g.setTurn(g.toMove.Opposite())
	g.logf(2, "%s\n", out)
	for _, o := range g.observers {
		o.Committed(out)
	}
	return out, nil
}

// farRow is the last row in the piece's forward direction.
func farRow(p *chess.Piece) int {
	if p.Forward < 0 {
		return 0
	}
	return chess.BoardSize - 1
}

// capture removes victim from its team and from the board.
func (g *Game) capture(victim *chess.Piece) *CapturedPiece {
	if g.Board.OccupiedBy(victim.Current) == victim {
		g.Board.UnsetOccupied(victim.Current)
	}
	if _, err := g.Team(victim.Owner).RemovePiece(victim.ID); err != nil {
		g.logf(1, "%s: capture: %v\n", victim.ID, err)
	}
	return &CapturedPiece{
		ID:    victim.ID,
		Name:  victim.Name,
		Kind:  victim.Kind,
		Owner: victim.Owner,
		At:    victim.Current,
		Value: victim.Value,
	}
}

// markEnPassant marks every square passed over between from and to as
// capturable en passant until the opponent's reply.
func (g *Game) markEnPassant(p *chess.Piece, from, to chess.Coordinate) []chess.Coordinate {
	between, err := chess.SquaresBetween(from, to)
	if err != nil {
		g.logf(1, "%s: no en-passant squares: %v\n", p.ID, err)
		return nil
	}
	for _, c := range between {
		g.Board.SetEnPassant(c, p)
	}
	p.EnPassantSquares = between
	return between
}

// clearEnPassant closes every open en-passant window.
func (g *Game) clearEnPassant() {
	for _, p := range g.Pieces() {
		for _, c := range p.EnPassantSquares {
			g.Board.UnsetEnPassant(c)
		}
		p.EnPassantSquares = nil
	}
}

func (g *Game) setTurn(c chess.Colour) {
	g.toMove = c
	g.White.Turn = c == chess.White
	g.Black.Turn = c == chess.Black
}

func (g *Game) logf(level int, format string, args ...interface{}) {
	if g.log != nil && g.verbosity >= level {
		fmt.Fprintf(g.log, format, args...)
	}
}
