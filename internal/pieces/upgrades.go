package pieces

import (
	"fmt"

	"github.com/lgbarn/varichess-go/internal/chess"
	"github.com/lgbarn/varichess-go/internal/errors"
)

// Build is the result of applying an upgrade vector to a piece type.
type Build struct {
	Descriptor chess.Descriptor
	ValueDelta int
	Name       string
}

// ParseUpgrades converts a record's upgrade slice to a fixed vector.
// Any length other than chess.NumUpgrades is a configuration error.
func ParseUpgrades(toggles []bool) (chess.Upgrades, error) {
	var u chess.Upgrades
	if len(toggles) != chess.NumUpgrades {
		return u, fmt.Errorf("got %d toggles, want %d: %w",
			len(toggles), chess.NumUpgrades, errors.ErrInvalidUpgrades)
	}
	copy(u[:], toggles)
	return u, nil
}

// BuildPiece applies upgrades to the base movement of kind. forward is the
// row delta the piece treats as forward. The result depends only on the
// arguments, so repeated calls yield identical builds.
func BuildPiece(kind chess.Kind, forward int, u chess.Upgrades) (Build, error) {
	var (
		opts  chess.DescriptorOptions
		delta int
		name  = kind.String()
	)

	switch kind {
	case chess.Pawn:
		opts, delta, name = pawn(forward, u)
	case chess.Knight:
		opts, delta, name = knight(u)
	case chess.Bishop:
		opts, delta, name = bishop(u)
	case chess.Rook:
		opts = slider(chess.Orthogonal, 7)
	case chess.Queen:
		opts = slider(chess.Union(chess.Diagonal, chess.Orthogonal), 7)
	case chess.King:
		opts = slider(chess.Union(chess.Diagonal, chess.Orthogonal), 1)
		opts.Royal = true
	default:
		return Build{}, fmt.Errorf("kind %d: %w", int(kind), errors.ErrUnknownKind)
	}

	if err := checkSlidingSpan(opts); err != nil {
		return Build{}, errors.Wrapf(err, "build %s", kind)
	}
	d, err := chess.NewDescriptor(opts)
	if err != nil {
		return Build{}, errors.Wrapf(err, "build %s", kind)
	}
	return Build{Descriptor: d, ValueDelta: delta, Name: name}, nil
}

// checkSlidingSpan rejects sliding move vectors whose hops the resolver
// cannot check for blockers.
func checkSlidingSpan(opts chess.DescriptorOptions) error {
	if opts.Leap {
		return nil
	}
	for _, v := range opts.MoveVectors {
		if abs(v.Col) > chess.MaxIrregularSpan || abs(v.Row) > chess.MaxIrregularSpan {
			return fmt.Errorf("sliding vector %s spans more than %d squares: %w",
				v, chess.MaxIrregularSpan, errors.ErrInvalidUpgrades)
		}
	}
	return nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func slider(vectors []chess.Vector, distance int) chess.DescriptorOptions {
	return chess.DescriptorOptions{
		MoveVectors: vectors,
		TakeVectors: vectors,
		MaxMove:     distance,
		MaxTake:     distance,
	}
}

// is reports whether exactly the listed toggles are on.
func is(u chess.Upgrades, on ...int) bool {
	var want chess.Upgrades
	for _, i := range on {
		want[i] = true
	}
	return u == want
}

func pawn(f int, u chess.Upgrades) (chess.DescriptorOptions, int, string) {
	forward := chess.Vector{Col: 0, Row: f}
	diagonals := []chess.Vector{{Col: 1, Row: f}, {Col: -1, Row: f}}

	opts := chess.DescriptorOptions{
		MoveVectors:  []chess.Vector{forward},
		TakeVectors:  diagonals,
		MaxMove:      1,
		MaxTake:      1,
		EnPassant:    true,
		OpeningBoost: true,
	}
	delta := 0

	if u[0] {
		opts.EnPassant = false
		delta += 19
	}
	if u[1] {
		opts.OpeningBoost = false
		delta -= 23
	}
	if u[2] {
		opts.MoveVectors = chess.Union(opts.MoveVectors, diagonals)
		delta += 75
	}
	if u[3] {
		opts.TakeVectors = chess.Union(opts.TakeVectors, []chess.Vector{forward})
		delta += 90
	}
	if u[4] {
		opts.MoveVectors = chess.Without(opts.MoveVectors, forward)
		delta -= 90
	}
	if u[5] {
		opts.TakeVectors = chess.Without(opts.TakeVectors, diagonals...)
		delta -= 75
	}

	name := "Pawn"
	switch {
	case is(u, 2, 3):
		name = "Sergeant"
	case is(u, 2, 3, 4, 5):
		name = "Berolina Pawn"
	case is(u, 3):
		name = "Eurasian Pawn"
	}
	return opts, delta, name
}

func knight(u chess.Upgrades) (chess.DescriptorOptions, int, string) {
	opts := slider(chess.KnightJumps, 1)
	opts.Leap = true

	if u[0] {
		opts.Leap = false
	}
	if u[1] {
		opts.MaxMove += 2
	}
	if u[2] {
		opts.MaxTake += 2
	}
	if u[4] {
		opts.MoveVectors = chess.GiraffeJumps
		opts.TakeVectors = chess.GiraffeJumps
	}

	name := "Knight"
	if is(u, 1, 2) {
		name = "Knight Rider"
	}
	return opts, 0, name
}

// namedVariantDelta is charged to bishops whose toggles form a known piece.
const namedVariantDelta = -20

func bishop(u chess.Upgrades) (chess.DescriptorOptions, int, string) {
	opts := slider(chess.Diagonal, 7)
	delta := 0

	if u[0] {
		opts.MaxMove -= 5
		opts.MaxTake -= 5
		delta -= 150
	}
	if u[1] {
		opts.MaxMove--
		opts.MaxTake--
		delta -= 25
	}
	if u[2] {
		opts.MaxMove += 3
		opts.MaxTake += 3
		delta += 100
	}
	if u[3] {
		opts.MinMove = 2
		opts.MinTake = 2
		delta -= 100
	}
	if u[4] {
		opts.Jump = 1
		delta += 200
	}
	if u[5] {
		opts.Reflect = true
		delta += 200
	}

	name := "Bishop"
	switch {
	case is(u, 0, 3, 4):
		name = "Alfil"
	case is(u, 2, 5):
		name = "ArchBishop"
	case is(u, 0, 1):
		name = "Ferz"
	}
	if name != "Bishop" {
		delta += namedVariantDelta
	}
	return opts, delta, name
}
