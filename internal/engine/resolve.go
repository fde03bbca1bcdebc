// Package engine resolves where pieces may move and capture, and runs a
// game between two teams on a shared board.
package engine

import (
	"fmt"
	"io"

	"github.com/lgbarn/varichess-go/internal/chess"
	"github.com/lgbarn/varichess-go/internal/errors"
)

// Resolution holds the squares a piece may move to and capture on this
// turn, each ordered by square index.
type Resolution struct {
	Moves []chess.Coordinate
	Takes []chess.Coordinate
}

// Contains reports whether c is a move or a take.
func (r Resolution) Contains(c chess.Coordinate) bool {
	return r.IsMove(c) || r.IsTake(c)
}

// IsMove reports whether c is a non-capturing destination.
func (r Resolution) IsMove(c chess.Coordinate) bool {
	return containsCoordinate(r.Moves, c)
}

// IsTake reports whether c is a capturing destination.
func (r Resolution) IsTake(c chess.Coordinate) bool {
	return containsCoordinate(r.Takes, c)
}

func containsCoordinate(cs []chess.Coordinate, c chess.Coordinate) bool {
	for _, x := range cs {
		if x == c {
			return true
		}
	}
	return false
}

// Resolve computes the moves and takes of p on b. Neither the piece nor the
// board is modified.
func Resolve(p *chess.Piece, b *chess.Board) (Resolution, error) {
	return ResolveTrace(p, b, nil)
}

// ResolveTrace is Resolve with a step-by-step trace written to w.
// A nil w disables tracing.
func ResolveTrace(p *chess.Piece, b *chess.Board, w io.Writer) (Resolution, error) {
	r := &resolver{
		piece: p,
		board: b,
		d:     effectiveDescriptor(p),
		trace: w,
	}
	symmetric := r.d.Symmetric()
	r.tracef("resolve %s (symmetric=%t)\n", p, symmetric)

	for _, v := range r.d.MoveVectors() {
		if err := r.walk(v, symmetric); err != nil {
			return Resolution{}, &errors.PieceError{
				Err:        err,
				PieceID:    p.ID,
				Kind:       p.Kind.String(),
				Coordinate: p.Current.String(),
			}
		}
	}
	if !symmetric {
		r.specialTakes()
	}

	moves := r.moves.minus(&r.intermediates)
	res := Resolution{Moves: moves.list(), Takes: r.takes.list()}
	r.tracef("result moves=%v takes=%v\n", res.Moves, res.Takes)
	return res, nil
}

// effectiveDescriptor applies the opening boost to an unmoved piece without
// touching the stored descriptor.
func effectiveDescriptor(p *chess.Piece) chess.Descriptor {
	d := p.Descriptor
	if !d.OpeningBoost() || p.HasMoved() {
		return d
	}
	boost := 0
	switch p.Current.Row {
	case 0, chess.BoardSize - 1:
		boost = 3
	case 1, chess.BoardSize - 2:
		boost = 2
	}
	if boost <= d.MaxMove() {
		return d
	}
	opts := d.Options()
	opts.MaxMove = boost
	boosted, err := chess.NewDescriptor(opts)
	if err != nil {
		return d
	}
	return boosted
}

type resolver struct {
	piece *chess.Piece
	board *chess.Board
	d     chess.Descriptor
	trace io.Writer

	moves         squareSet
	takes         squareSet
	intermediates squareSet
}

func (r *resolver) tracef(format string, args ...interface{}) {
	if r.trace != nil {
		fmt.Fprintf(r.trace, format, args...)
	}
}

// walk follows one move vector for up to MaxMove steps.
func (r *resolver) walk(v chess.Vector, symmetric bool) error {
	origin := r.piece.Current
	cursor := origin
	jumps := r.d.Jump()
	r.tracef("  vector %s from %s\n", v, origin)

	for step := 1; step <= r.d.MaxMove(); step++ {
		next := cursor.Add(v)
		if !next.OnBoard() {
			if !r.d.Reflect() {
				return nil
			}
			v = reflectVector(cursor, v)
			next = cursor.Add(v)
			r.tracef("    reflect to %s\n", v)
			if !next.OnBoard() {
				return nil
			}
		}
		hop := cursor
		cursor = next
		if cursor == origin {
			continue
		}
		record := step >= r.d.MinMove()

		if r.d.Leap() {
			r.land(cursor, record, symmetric)
			continue
		}

		if v.IsIrregular() {
			reachable, err := r.clearHop(hop, cursor)
			if err != nil {
				return err
			}
			if !reachable {
				r.tracef("    %s unreachable\n", cursor)
				return nil
			}
		}

		occupant := r.board.OccupiedBy(cursor)
		if occupant == nil {
			r.land(cursor, record, symmetric)
			continue
		}
		if record && symmetric && isOpponent(r.piece, occupant) {
			r.tracef("    take %s\n", cursor)
			r.takes.add(cursor)
		}
		if jumps > 0 {
			jumps--
			r.tracef("    jump %s\n", cursor)
			r.intermediates.add(cursor)
			continue
		}
		r.tracef("    blocked at %s\n", cursor)
		return nil
	}
	return nil
}

// land records a candidate reached without passing through an occupant.
func (r *resolver) land(c chess.Coordinate, record, symmetric bool) {
	if !record {
		return
	}
	occupant := r.board.OccupiedBy(c)
	switch {
	case occupant == nil:
		r.tracef("    move %s\n", c)
		r.moves.add(c)
	case symmetric && isOpponent(r.piece, occupant):
		r.tracef("    take %s\n", c)
		r.takes.add(c)
	}
	if symmetric && r.d.EnPassant() && isOpponent(r.piece, r.board.EnPassantVictim(c)) {
		r.tracef("    en passant %s\n", c)
		r.takes.add(c)
	}
}

// clearHop checks the squares an irregular hop passes between. A hop is
// unreachable when every between square is occupied; otherwise the free
// between squares become intermediates.
func (r *resolver) clearHop(from, to chess.Coordinate) (bool, error) {
	between, err := chess.SquaresBetween(from, to)
	if err != nil {
		return false, err
	}
	free := 0
	for _, c := range between {
		if !r.board.IsOccupied(c) {
			free++
			r.intermediates.add(c)
		}
	}
	return len(between) == 0 || free > 0, nil
}
