package chess

import (
	"fmt"
	"sort"

	"github.com/lgbarn/varichess-go/internal/errors"
)

// Constants for board dimensions.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize

	ColBase = 'a'
)

// Coordinate is a board square as column and row indices.
// Col 0..7 maps to files a..h; Row 0 is rank 8 and Row 7 is rank 1,
// so "up" (toward rank 8) is a decreasing row index.
type Coordinate struct {
	Col int
	Row int
}

// NewCoordinate returns the coordinate for the given indices.
func NewCoordinate(col, row int) Coordinate {
	return Coordinate{Col: col, Row: row}
}

// ParseCoordinate parses an algebraic square such as "e4".
func ParseCoordinate(s string) (Coordinate, error) {
	if len(s) != 2 {
		return Coordinate{}, &errors.ParseError{
			Err:      errors.ErrInvalidCoordinate,
			Input:    s,
			Expected: "file and rank",
		}
	}
	file, rank := s[0], s[1]
	if file >= 'A' && file <= 'H' {
		file += 'a' - 'A'
	}
	if file < 'a' || file > 'h' {
		return Coordinate{}, &errors.ParseError{
			Err:    errors.ErrInvalidCoordinate,
			Input:  s,
			Column: 1,
			Got:    fmt.Sprintf("file %q", file),
		}
	}
	if rank < '1' || rank > '8' {
		return Coordinate{}, &errors.ParseError{
			Err:    errors.ErrInvalidCoordinate,
			Input:  s,
			Column: 2,
			Got:    fmt.Sprintf("rank %q", rank),
		}
	}
	return Coordinate{Col: int(file - ColBase), Row: int('8' - rank)}, nil
}

// MustParseCoordinate is like ParseCoordinate but panics on error.
// Intended for tables of literal squares.
func MustParseCoordinate(s string) Coordinate {
	c, err := ParseCoordinate(s)
	if err != nil {
		panic(err)
	}
	return c
}

// String returns the algebraic form, or "-" for an off-board coordinate.
func (c Coordinate) String() string {
	if !c.OnBoard() {
		return "-"
	}
	return string([]byte{byte(ColBase + c.Col), byte('8' - c.Row)})
}

// OnBoard reports whether both indices fall inside the 8x8 board.
func (c Coordinate) OnBoard() bool {
	return c.Col >= 0 && c.Col < BoardSize && c.Row >= 0 && c.Row < BoardSize
}

// Index returns the integer encoding col*8+row used by the occupancy store.
func (c Coordinate) Index() int {
	return c.Col*BoardSize + c.Row
}

// CoordinateFromIndex is the inverse of Index.
func CoordinateFromIndex(i int) Coordinate {
	return Coordinate{Col: i / BoardSize, Row: i % BoardSize}
}

// Add returns the coordinate offset by v.
func (c Coordinate) Add(v Vector) Coordinate {
	return Coordinate{Col: c.Col + v.Col, Row: c.Row + v.Row}
}

// Sub returns the vector from o to c.
func (c Coordinate) Sub(o Coordinate) Vector {
	return Vector{Col: c.Col - o.Col, Row: c.Row - o.Row}
}

// MarshalText implements encoding.TextMarshaler.
func (c Coordinate) MarshalText() ([]byte, error) {
	if !c.OnBoard() {
		return nil, fmt.Errorf("(%d,%d): %w", c.Col, c.Row, errors.ErrInvalidCoordinate)
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Coordinate) UnmarshalText(text []byte) error {
	parsed, err := ParseCoordinate(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// SortCoordinates orders coordinates by their integer encoding.
func SortCoordinates(cs []Coordinate) {
	sort.Slice(cs, func(i, j int) bool { return cs[i].Index() < cs[j].Index() })
}
