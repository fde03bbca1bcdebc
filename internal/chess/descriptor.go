package chess

import (
	"fmt"

	"github.com/lgbarn/varichess-go/internal/errors"
)

// DescriptorOptions is the editable form of a Descriptor.
type DescriptorOptions struct {
	MoveVectors []Vector
	TakeVectors []Vector

	MinMove int
	MaxMove int
	MinTake int
	MaxTake int

	Leap         bool // Ignore intervening occupancy
	Jump         int  // Occupied squares a slide may pass per direction
	Reflect      bool // Bounce off board edges
	EnPassant    bool // Can take and be taken en passant
	OpeningBoost bool // First move may travel further
	Royal        bool
}

// Descriptor describes how a piece moves and captures.
// It is an immutable value: use Options to derive a modified copy.
type Descriptor struct {
	moves []Vector
	takes []Vector

	minMove, maxMove int
	minTake, maxTake int

	leap, reflect, enPassant, openingBoost, royal bool
	jump                                          int
}

// NewDescriptor validates opts and builds a Descriptor.
// Zero vectors are rejected, duplicate vectors are dropped, and minimum
// distances below 1 are raised to 1.
func NewDescriptor(opts DescriptorOptions) (Descriptor, error) {
	moves, err := normalizeVectors(opts.MoveVectors, "move")
	if err != nil {
		return Descriptor{}, err
	}
	takes, err := normalizeVectors(opts.TakeVectors, "take")
	if err != nil {
		return Descriptor{}, err
	}

	// A max below the min is allowed and leaves no reachable distance.
	if opts.MaxMove < 0 || opts.MaxTake < 0 {
		return Descriptor{}, fmt.Errorf("negative max distance %d/%d: %w",
			opts.MaxMove, opts.MaxTake, errors.ErrInvalidDescriptor)
	}
	if opts.Jump < 0 {
		return Descriptor{}, fmt.Errorf("jump count %d: %w", opts.Jump, errors.ErrInvalidDescriptor)
	}

	return Descriptor{
		moves:        moves,
		takes:        takes,
		minMove:      max(opts.MinMove, 1),
		maxMove:      opts.MaxMove,
		minTake:      max(opts.MinTake, 1),
		maxTake:      opts.MaxTake,
		leap:         opts.Leap,
		jump:         opts.Jump,
		reflect:      opts.Reflect,
		enPassant:    opts.EnPassant,
		openingBoost: opts.OpeningBoost,
		royal:        opts.Royal,
	}, nil
}

func normalizeVectors(vs []Vector, label string) ([]Vector, error) {
	out := make([]Vector, 0, len(vs))
	for _, v := range vs {
		if v.IsZero() {
			return nil, fmt.Errorf("zero %s vector: %w", label, errors.ErrInvalidDescriptor)
		}
		if !containsVector(out, v) {
			out = append(out, v)
		}
	}
	return out, nil
}

// Options returns an independent editable copy of d.
func (d Descriptor) Options() DescriptorOptions {
	return DescriptorOptions{
		MoveVectors:  d.MoveVectors(),
		TakeVectors:  d.TakeVectors(),
		MinMove:      d.minMove,
		MaxMove:      d.maxMove,
		MinTake:      d.minTake,
		MaxTake:      d.maxTake,
		Leap:         d.leap,
		Jump:         d.jump,
		Reflect:      d.reflect,
		EnPassant:    d.enPassant,
		OpeningBoost: d.openingBoost,
		Royal:        d.royal,
	}
}

// MoveVectors returns a copy of the non-capturing vectors.
func (d Descriptor) MoveVectors() []Vector {
	return append([]Vector(nil), d.moves...)
}

// TakeVectors returns a copy of the capturing vectors.
func (d Descriptor) TakeVectors() []Vector {
	return append([]Vector(nil), d.takes...)
}

// Distance bounds, in steps along a vector.
func (d Descriptor) MinMove() int { return d.minMove }
func (d Descriptor) MaxMove() int { return d.maxMove }
func (d Descriptor) MinTake() int { return d.minTake }
func (d Descriptor) MaxTake() int { return d.maxTake }

// Modifiers.
func (d Descriptor) Leap() bool         { return d.leap }
func (d Descriptor) Jump() int          { return d.jump }
func (d Descriptor) Reflect() bool      { return d.reflect }
func (d Descriptor) EnPassant() bool    { return d.enPassant }
func (d Descriptor) OpeningBoost() bool { return d.openingBoost }
func (d Descriptor) Royal() bool        { return d.royal }

// Symmetric reports whether moves and takes share vectors and bounds, in
// which case captures are found in the same pass as moves.
func (d Descriptor) Symmetric() bool {
	return SameVectors(d.moves, d.takes) &&
		d.minMove == d.minTake && d.maxMove == d.maxTake
}

// Equal reports whether two descriptors are identical, including vector order.
func (d Descriptor) Equal(o Descriptor) bool {
	if len(d.moves) != len(o.moves) || len(d.takes) != len(o.takes) {
		return false
	}
	for i := range d.moves {
		if d.moves[i] != o.moves[i] {
			return false
		}
	}
	for i := range d.takes {
		if d.takes[i] != o.takes[i] {
			return false
		}
	}
	return d.minMove == o.minMove && d.maxMove == o.maxMove &&
		d.minTake == o.minTake && d.maxTake == o.maxTake &&
		d.leap == o.leap && d.jump == o.jump && d.reflect == o.reflect &&
		d.enPassant == o.enPassant && d.openingBoost == o.openingBoost &&
		d.royal == o.royal
}
