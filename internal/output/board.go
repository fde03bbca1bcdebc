// Package output renders boards, resolutions and teams as text and JSON.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/varichess-go/internal/chess"
	"github.com/lgbarn/varichess-go/internal/engine"
)

// Diagram marks.
const (
	emptyMark = '.'
	moveMark  = '*'
	takeMark  = 'x'
)

const boardEdge = "  +-----------------+"

// WriteBoard draws b with rank 8 at the top. Pieces use placement letters.
// When res is non-nil its moves are drawn as '*' and its takes as 'x'.
func WriteBoard(w io.Writer, b *chess.Board, res *engine.Resolution) error {
	var sb strings.Builder
	sb.WriteString(boardEdge)
	sb.WriteByte('\n')
	for row := 0; row < chess.BoardSize; row++ {
		fmt.Fprintf(&sb, "%d |", chess.BoardSize-row)
		for col := 0; col < chess.BoardSize; col++ {
			sb.WriteByte(' ')
			sb.WriteByte(squareMark(b, chess.NewCoordinate(col, row), res))
		}
		sb.WriteString(" |\n")
	}
	sb.WriteString(boardEdge)
	sb.WriteString("\n    a b c d e f g h\n")
	_, err := io.WriteString(w, sb.String())
	return err
}

func squareMark(b *chess.Board, c chess.Coordinate, res *engine.Resolution) byte {
	if res != nil {
		switch {
		case res.IsTake(c):
			return takeMark
		case res.IsMove(c):
			return moveMark
		}
	}
	if p := b.OccupiedBy(c); p != nil {
		return engine.PieceLetter(p)
	}
	return emptyMark
}

// FormatSquares joins coordinates as "e3 e4", or "-" when there are none.
func FormatSquares(cs []chess.Coordinate) string {
	if len(cs) == 0 {
		return "-"
	}
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
