package chess

// NumUpgrades is the length of every piece type's upgrade vector.
const NumUpgrades = 6

// Upgrades holds the upgrade toggles of a piece.
type Upgrades [NumUpgrades]bool

// Slice returns the toggles as a slice, the shape used in records.
func (u Upgrades) Slice() []bool {
	return append([]bool(nil), u[:]...)
}

// Count returns the number of toggles that are on.
func (u Upgrades) Count() int {
	n := 0
	for _, on := range u {
		if on {
			n++
		}
	}
	return n
}

// Piece is a single playing piece.
type Piece struct {
	ID    string
	Name  string
	Kind  Kind
	Owner Colour

	// Forward is the row delta of this piece's forward direction. It starts
	// as Owner.Forward() and only changes through the pawn forward flip.
	Forward int

	Start   Coordinate
	Current Coordinate
	History []Coordinate

	Descriptor Descriptor
	Upgrades   Upgrades
	Value      int

	// EnPassantSquares are the squares on which this piece may currently
	// be captured en passant.
	EnPassantSquares []Coordinate

	// ValidMoves and ValidTakes hold the last resolution. They are stale as
	// soon as any piece moves.
	ValidMoves []Coordinate
	ValidTakes []Coordinate
}

// HasMoved reports whether the piece has left its setup square.
func (p *Piece) HasMoved() bool {
	return len(p.History) > 1
}

// ClearResolution drops the cached move and take sets.
func (p *Piece) ClearResolution() {
	p.ValidMoves = nil
	p.ValidTakes = nil
}

// String returns a short description such as "White Knight knight_1 on g1".
func (p *Piece) String() string {
	return p.Owner.String() + " " + p.Name + " " + p.ID + " on " + p.Current.String()
}
