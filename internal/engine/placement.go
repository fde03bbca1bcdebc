package engine

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/varichess-go/internal/chess"
	"github.com/lgbarn/varichess-go/internal/errors"
	"github.com/lgbarn/varichess-go/internal/team"
)

// StandardPlacement is the standard starting position.
const StandardPlacement = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w"

// Position is a parsed placement: both teams and the side to move.
type Position struct {
	White  *team.Team
	Black  *team.Team
	ToMove chess.Colour
}

// ParsePlacement parses a FEN-like placement such as StandardPlacement.
// Ranks run from 8 down to 1, upper-case letters are White, digits count
// empty squares. The optional second field is the side to move. Pieces get
// ids in reading order, so the standard placement yields the standard ids.
func ParsePlacement(layout string) (Position, error) {
	fields := strings.Fields(layout)
	if len(fields) == 0 || len(fields) > 2 {
		return Position{}, &errors.ParseError{
			Err:      errors.ErrInvalidPlacement,
			Input:    layout,
			Expected: "placement and optional side to move",
		}
	}

	pos := Position{
		White:  team.New(chess.White),
		Black:  team.New(chess.Black),
		ToMove: chess.White,
	}
	if err := parseRanks(pos, fields[0]); err != nil {
		return Position{}, err
	}
	if len(fields) == 2 {
		c, err := chess.ParseColour(fields[1])
		if err != nil {
			return Position{}, &errors.ParseError{
				Err:      errors.ErrInvalidPlacement,
				Input:    layout,
				Column:   len(fields[0]) + 2,
				Expected: "w or b",
				Got:      fields[1],
			}
		}
		pos.ToMove = c
	}
	return pos, nil
}

func parseRanks(pos Position, placement string) error {
	row, col := 0, 0
	fail := func(i int, expected, got string) error {
		return &errors.ParseError{
			Err:      errors.ErrInvalidPlacement,
			Input:    placement,
			Column:   i + 1,
			Expected: expected,
			Got:      got,
		}
	}

	for i, c := range placement {
		switch {
		case c == '/':
			if col != chess.BoardSize {
				return fail(i, "8 squares in rank", fmt.Sprintf("%d", col))
			}
			row++
			col = 0
			if row >= chess.BoardSize {
				return fail(i, "8 ranks", "more")
			}
		case c >= '1' && c <= '8':
			col += int(c - '0')
			if col > chess.BoardSize {
				return fail(i, "8 squares in rank", fmt.Sprintf("%d", col))
			}
		default:
			kind := chess.KindFromLetter(byte(c))
			if kind == chess.NoKind || c > unicode.MaxASCII {
				return fail(i, "piece letter", fmt.Sprintf("%q", c))
			}
			if col >= chess.BoardSize {
				return fail(i, "8 squares in rank", "more")
			}
			t := pos.Black
			if unicode.IsUpper(c) {
				t = pos.White
			}
			if _, err := t.Place(kind, chess.NewCoordinate(col, row), chess.Upgrades{}); err != nil {
				return err
			}
			col++
		}
	}
	if row != chess.BoardSize-1 || col != chess.BoardSize {
		return fail(len(placement)-1, "8 full ranks", fmt.Sprintf("%d ranks", row+1))
	}
	return nil
}

// FormatPlacement writes the board in placement notation with the side to
// move.
func FormatPlacement(b *chess.Board, toMove chess.Colour) string {
	var sb strings.Builder
	for row := 0; row < chess.BoardSize; row++ {
		empty := 0
		for col := 0; col < chess.BoardSize; col++ {
			p := b.OccupiedBy(chess.NewCoordinate(col, row))
			if p == nil {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(PieceLetter(p))
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if row < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')
	if toMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	return sb.String()
}

// PieceLetter returns the placement letter of p: upper case for White.
func PieceLetter(p *chess.Piece) byte {
	letter := p.Kind.Letter()
	if p.Owner == chess.Black {
		letter = byte(unicode.ToLower(rune(letter)))
	}
	return letter
}

// NewGameFromPlacement parses layout and starts a game from it.
func NewGameFromPlacement(layout string, opts ...Option) (*Game, error) {
	pos, err := ParsePlacement(layout)
	if err != nil {
		return nil, err
	}
	opts = append([]Option{WithToMove(pos.ToMove)}, opts...)
	return NewGame(pos.White, pos.Black, opts...)
}
