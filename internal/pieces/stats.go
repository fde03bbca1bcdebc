// Package pieces defines the six piece types: their base statistics, the
// upgrade toggles that reshape their movement, and their point values.
package pieces

import (
	"github.com/lgbarn/varichess-go/internal/chess"
)

// Stats are the fixed numbers behind a piece type's value.
type Stats struct {
	Base    float64 // Base value in points
	ColCoef float64 // Fraction of Base applied per column band
	RowCoef float64 // Fraction of Base applied per row band
}

var stats = map[chess.Kind]Stats{
	chess.Pawn:   {Base: 97, ColCoef: 0.12, RowCoef: 0.1},
	chess.Knight: {Base: 253, ColCoef: 0, RowCoef: 0.25},
	chess.Bishop: {Base: 347, ColCoef: 0, RowCoef: 0.1},
	chess.Rook:   {Base: 491, ColCoef: 0.2, RowCoef: 0.1},
	chess.Queen:  {Base: 1019, ColCoef: 0, RowCoef: 0.25},
	chess.King:   {Base: 1151, ColCoef: 0, RowCoef: 0},
}

// StatsFor returns the base statistics of kind.
func StatsFor(kind chess.Kind) (Stats, bool) {
	s, ok := stats[kind]
	return s, ok
}

// UpgradeText describes each upgrade toggle by piece type.
var UpgradeText = map[chess.Kind][chess.NumUpgrades]string{
	chess.Pawn: {
		"Remove en passant capture",
		"Remove opening move",
		"Add move diagonal forward",
		"Add take forward",
		"Remove move forward",
		"Remove take diagonal",
	},
	chess.Knight: {
		"Remove leap",
		"Increase move by 2",
		"Increase take by 2",
		"Add zig zag (reserved)",
		"Change to 1, 4 leap",
		"Add post move orthogonal slide (reserved)",
	},
	chess.Bishop: {
		"Reduce move and take by 5",
		"Reduce move and take by 1",
		"Increase move and take by 3",
		"Minimum move 2",
		"Give jump 1",
		"Give reflect",
	},
}
