package chess

import (
	"fmt"

	"github.com/lgbarn/varichess-go/internal/errors"
)

// Direction classifies the relationship between two coordinates.
type Direction int

const (
	None Direction = iota
	Up
	Down
	Left
	Right
	UpRight
	UpLeft
	DownRight
	DownLeft
	UpRightMostlyUp
	UpRightMostlyRight
	UpLeftMostlyUp
	UpLeftMostlyLeft
	DownRightMostlyDown
	DownRightMostlyRight
	DownLeftMostlyDown
	DownLeftMostlyLeft
)

var directionNames = []string{
	"None", "Up", "Down", "Left", "Right",
	"UpRight", "UpLeft", "DownRight", "DownLeft",
	"UpRightMostlyUp", "UpRightMostlyRight", "UpLeftMostlyUp", "UpLeftMostlyLeft",
	"DownRightMostlyDown", "DownRightMostlyRight", "DownLeftMostlyDown", "DownLeftMostlyLeft",
}

// String returns the name of the direction.
func (d Direction) String() string {
	if d >= 0 && int(d) < len(directionNames) {
		return directionNames[d]
	}
	return "Unknown"
}

// IsStraight reports whether d is orthogonal or an exact diagonal.
func (d Direction) IsStraight() bool {
	return d >= Up && d <= DownLeft
}

// IsIrregular reports whether d is one of the eight knight-like codes.
func (d Direction) IsIrregular() bool {
	return d >= UpRightMostlyUp && d <= DownLeftMostlyLeft
}

// Opposite returns the direction from end back to start.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	case UpRight:
		return DownLeft
	case DownLeft:
		return UpRight
	case UpLeft:
		return DownRight
	case DownRight:
		return UpLeft
	case UpRightMostlyUp:
		return DownLeftMostlyDown
	case DownLeftMostlyDown:
		return UpRightMostlyUp
	case UpRightMostlyRight:
		return DownLeftMostlyLeft
	case DownLeftMostlyLeft:
		return UpRightMostlyRight
	case UpLeftMostlyUp:
		return DownRightMostlyDown
	case DownRightMostlyDown:
		return UpLeftMostlyUp
	case UpLeftMostlyLeft:
		return DownRightMostlyRight
	case DownRightMostlyRight:
		return UpLeftMostlyLeft
	}
	return None
}

// ClassifyDirection returns the direction code from start to end.
// Identical coordinates classify as None.
func ClassifyDirection(start, end Coordinate) Direction {
	dc := end.Col - start.Col
	dr := end.Row - start.Row

	switch {
	case dc == 0 && dr == 0:
		return None
	case dc == 0:
		if dr < 0 {
			return Up
		}
		return Down
	case dr == 0:
		if dc < 0 {
			return Left
		}
		return Right
	}

	up, right := dr < 0, dc > 0
	ac, ar := abs(dc), abs(dr)

	switch {
	case up && right:
		return pickDiagonal(ac, ar, UpRight, UpRightMostlyUp, UpRightMostlyRight)
	case up:
		return pickDiagonal(ac, ar, UpLeft, UpLeftMostlyUp, UpLeftMostlyLeft)
	case right:
		return pickDiagonal(ac, ar, DownRight, DownRightMostlyDown, DownRightMostlyRight)
	default:
		return pickDiagonal(ac, ar, DownLeft, DownLeftMostlyDown, DownLeftMostlyLeft)
	}
}

// pickDiagonal selects within one quadrant by comparing the magnitudes.
func pickDiagonal(ac, ar int, straight, rowDominant, colDominant Direction) Direction {
	switch {
	case ac == ar:
		return straight
	case ac < ar:
		return rowDominant
	default:
		return colDominant
	}
}

// MaxIrregularSpan is the largest column or row delta for which the
// rectangle rule of SquaresBetween is defined on irregular directions.
const MaxIrregularSpan = 2

// SquaresBetween returns the squares strictly between start and end.
//
// For straight directions it is the exact line, ordered from start toward
// end. For irregular directions it is every square of the rectangle spanned
// by start and end except those two corners, ordered row by row beginning
// with start's row. Irregular pairs with a delta larger than
// MaxIrregularSpan return ErrIrregularRange.
func SquaresBetween(start, end Coordinate) ([]Coordinate, error) {
	dir := ClassifyDirection(start, end)
	if dir == None {
		return nil, nil
	}

	dc := end.Col - start.Col
	dr := end.Row - start.Row

	if dir.IsStraight() {
		step := Vector{Col: sign(dc), Row: sign(dr)}
		var between []Coordinate
		for c := start.Add(step); c != end; c = c.Add(step) {
			between = append(between, c)
		}
		return between, nil
	}

	if abs(dc) > MaxIrregularSpan || abs(dr) > MaxIrregularSpan {
		return nil, fmt.Errorf("%s to %s (%s): %w", start, end, dir, errors.ErrIrregularRange)
	}

	colStep, rowStep := sign(dc), sign(dr)
	between := make([]Coordinate, 0, (abs(dc)+1)*(abs(dr)+1)-2)
	for row := start.Row; ; row += rowStep {
		for col := start.Col; ; col += colStep {
			c := Coordinate{Col: col, Row: row}
			if c != start && c != end {
				between = append(between, c)
			}
			if col == end.Col {
				break
			}
		}
		if row == end.Row {
			break
		}
	}
	return between, nil
}
