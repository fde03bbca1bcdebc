package chess

import "fmt"

// Vector is a movement offset in (column, row) index space.
type Vector struct {
	Col int
	Row int
}

// Standard vector sets.
var (
	Diagonal     = []Vector{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	Orthogonal   = []Vector{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	KnightJumps  = []Vector{{2, 1}, {2, -1}, {-2, 1}, {-2, -1}, {1, 2}, {1, -2}, {-1, 2}, {-1, -2}}
	GiraffeJumps = []Vector{{1, 4}, {1, -4}, {-1, 4}, {-1, -4}, {4, 1}, {4, -1}, {-4, 1}, {-4, -1}}
)

// String returns the vector as "(col,row)".
func (v Vector) String() string {
	return fmt.Sprintf("(%d,%d)", v.Col, v.Row)
}

// IsZero reports whether v is the zero vector.
func (v Vector) IsZero() bool {
	return v.Col == 0 && v.Row == 0
}

// IsIrregular reports whether either component's magnitude exceeds 1.
func (v Vector) IsIrregular() bool {
	return abs(v.Col) > 1 || abs(v.Row) > 1
}

// Scale returns v multiplied by n.
func (v Vector) Scale(n int) Vector {
	return Vector{Col: v.Col * n, Row: v.Row * n}
}

// Union returns a followed by the vectors of b not already in a.
func Union(a, b []Vector) []Vector {
	out := make([]Vector, 0, len(a)+len(b))
	out = append(out, a...)
	for _, v := range b {
		if !containsVector(out, v) {
			out = append(out, v)
		}
	}
	return out
}

// Without returns a minus every vector in remove.
func Without(a []Vector, remove ...Vector) []Vector {
	out := make([]Vector, 0, len(a))
	for _, v := range a {
		if !containsVector(remove, v) {
			out = append(out, v)
		}
	}
	return out
}

// SameVectors reports whether a and b hold the same vectors, ignoring order.
func SameVectors(a, b []Vector) bool {
	if len(a) != len(b) {
		return false
	}
	for _, v := range a {
		if !containsVector(b, v) {
			return false
		}
	}
	return true
}

func containsVector(vs []Vector, v Vector) bool {
	for _, w := range vs {
		if w == v {
			return true
		}
	}
	return false
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
