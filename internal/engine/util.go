package engine

import "github.com/lgbarn/varichess-go/internal/chess"

// squareSet is a set of board squares keyed by Coordinate.Index().
type squareSet [chess.NumSquares]bool

func (s *squareSet) add(c chess.Coordinate) {
	if c.OnBoard() {
		s[c.Index()] = true
	}
}

func (s *squareSet) has(c chess.Coordinate) bool {
	return c.OnBoard() && s[c.Index()]
}

// minus returns the squares of s that are not in o.
func (s *squareSet) minus(o *squareSet) squareSet {
	var out squareSet
	for i := range s {
		out[i] = s[i] && !o[i]
	}
	return out
}

// list returns the members ordered by index.
func (s *squareSet) list() []chess.Coordinate {
	var out []chess.Coordinate
	for i, in := range s {
		if in {
			out = append(out, chess.CoordinateFromIndex(i))
		}
	}
	return out
}

// reflectVector inverts each axis of v along which a step from c would
// leave the board.
func reflectVector(c chess.Coordinate, v chess.Vector) chess.Vector {
	next := c.Add(v)
	if next.Col < 0 || next.Col >= chess.BoardSize {
		v.Col = -v.Col
	}
	if next.Row < 0 || next.Row >= chess.BoardSize {
		v.Row = -v.Row
	}
	return v
}

// isOpponent reports whether p belongs to the other side of mover.
func isOpponent(mover, p *chess.Piece) bool {
	return p != nil && p.Owner != mover.Owner
}
