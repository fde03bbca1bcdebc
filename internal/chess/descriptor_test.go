package chess

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	verrors "github.com/lgbarn/varichess-go/internal/errors"
)

func TestNewDescriptor_Normalizes(t *testing.T) {
	d, err := NewDescriptor(DescriptorOptions{
		MoveVectors: []Vector{{0, -1}, {0, -1}, {1, -1}},
		TakeVectors: []Vector{{1, -1}},
		MinMove:     0,
		MaxMove:     1,
		MaxTake:     1,
	})
	if err != nil {
		t.Fatalf("NewDescriptor error: %v", err)
	}

	if diff := cmp.Diff([]Vector{{0, -1}, {1, -1}}, d.MoveVectors()); diff != "" {
		t.Errorf("MoveVectors mismatch (-want +got):\n%s", diff)
	}
	if d.MinMove() != 1 || d.MinTake() != 1 {
		t.Errorf("min distances = %d/%d; want 1/1", d.MinMove(), d.MinTake())
	}
}

func TestNewDescriptor_Rejects(t *testing.T) {
	tests := []struct {
		name string
		opts DescriptorOptions
	}{
		{"zero move vector", DescriptorOptions{MoveVectors: []Vector{{0, 0}}, MaxMove: 1}},
		{"zero take vector", DescriptorOptions{TakeVectors: []Vector{{1, 1}, {0, 0}}, MaxTake: 1}},
		{"negative max move", DescriptorOptions{MoveVectors: Diagonal, MaxMove: -1}},
		{"negative max take", DescriptorOptions{TakeVectors: Diagonal, MaxTake: -2}},
		{"negative jump", DescriptorOptions{MoveVectors: Diagonal, MaxMove: 7, Jump: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewDescriptor(tt.opts); !errors.Is(err, verrors.ErrInvalidDescriptor) {
				t.Errorf("NewDescriptor error = %v; want ErrInvalidDescriptor", err)
			}
		})
	}
}

func TestDescriptor_OptionsAreIndependent(t *testing.T) {
	d, err := NewDescriptor(DescriptorOptions{MoveVectors: Orthogonal, TakeVectors: Orthogonal, MaxMove: 7, MaxTake: 7})
	if err != nil {
		t.Fatalf("NewDescriptor error: %v", err)
	}

	opts := d.Options()
	opts.MoveVectors[0] = Vector{5, 5}
	opts.MaxMove = 1

	if d.MoveVectors()[0] != (Vector{1, 0}) {
		t.Error("editing Options() changed the descriptor's vectors")
	}
	if d.MaxMove() != 7 {
		t.Error("editing Options() changed the descriptor's bounds")
	}

	again, err := NewDescriptor(d.Options())
	if err != nil {
		t.Fatalf("NewDescriptor(Options()) error: %v", err)
	}
	if !again.Equal(d) {
		t.Error("NewDescriptor(d.Options()) is not equal to d")
	}
}

func TestDescriptor_Symmetric(t *testing.T) {
	queen, _ := NewDescriptor(DescriptorOptions{
		MoveVectors: Union(Diagonal, Orthogonal),
		TakeVectors: Union(Orthogonal, Diagonal),
		MaxMove:     7,
		MaxTake:     7,
	})
	pawn, _ := NewDescriptor(DescriptorOptions{
		MoveVectors: []Vector{{0, -1}},
		TakeVectors: []Vector{{1, -1}, {-1, -1}},
		MaxMove:     1,
		MaxTake:     1,
	})
	rider, _ := NewDescriptor(DescriptorOptions{
		MoveVectors: KnightJumps,
		TakeVectors: KnightJumps,
		MaxMove:     3,
		MaxTake:     1,
	})

	if !queen.Symmetric() {
		t.Error("queen.Symmetric() = false; want true (vector order is irrelevant)")
	}
	if pawn.Symmetric() {
		t.Error("pawn.Symmetric() = true; want false")
	}
	if rider.Symmetric() {
		t.Error("rider.Symmetric() = true; want false (bounds differ)")
	}
}

func TestVectorSets(t *testing.T) {
	got := Without(Union(Orthogonal, Diagonal), Vector{1, 0}, Vector{-1, -1})
	if len(got) != 6 {
		t.Errorf("len = %d; want 6", len(got))
	}
	if !SameVectors(Union(Diagonal, Diagonal), Diagonal) {
		t.Error("Union with itself added duplicates")
	}
	for _, v := range KnightJumps {
		if !v.IsIrregular() {
			t.Errorf("%v.IsIrregular() = false", v)
		}
	}
	for _, v := range Union(Diagonal, Orthogonal) {
		if v.IsIrregular() {
			t.Errorf("%v.IsIrregular() = true", v)
		}
	}
}
