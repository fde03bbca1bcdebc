package chess

// Square is one cell of the occupancy store.
type Square struct {
	Coordinate      Coordinate
	Occupant        *Piece
	EnPassantVictim *Piece
}

// Board is the occupancy store: 64 squares indexed by Coordinate.Index().
// It holds references to pieces but does not own them. Off-board
// coordinates read as empty and are ignored by setters.
type Board struct {
	Squares [NumSquares]Square
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	b := &Board{}
	for i := range b.Squares {
		b.Squares[i].Coordinate = CoordinateFromIndex(i)
	}
	return b
}

// Square returns the square at c, or nil when c is off the board.
func (b *Board) Square(c Coordinate) *Square {
	if !c.OnBoard() {
		return nil
	}
	return &b.Squares[c.Index()]
}

// IsOccupied reports whether a piece stands on c.
func (b *Board) IsOccupied(c Coordinate) bool {
	return b.OccupiedBy(c) != nil
}

// OccupiedBy returns the piece standing on c, if any.
func (b *Board) OccupiedBy(c Coordinate) *Piece {
	if sq := b.Square(c); sq != nil {
		return sq.Occupant
	}
	return nil
}

// IsOccupiedByPlayer reports whether a piece of colour stands on c.
func (b *Board) IsOccupiedByPlayer(colour Colour, c Coordinate) bool {
	p := b.OccupiedBy(c)
	return p != nil && p.Owner == colour
}

// SetOccupied records p on its current coordinate. The previous square is
// not vacated; callers do that with UnsetOccupied.
func (b *Board) SetOccupied(p *Piece) {
	if sq := b.Square(p.Current); sq != nil {
		sq.Occupant = p
	}
}

// UnsetOccupied clears the occupant of c.
func (b *Board) UnsetOccupied(c Coordinate) {
	if sq := b.Square(c); sq != nil {
		sq.Occupant = nil
	}
}

// SetEnPassant marks c as capturable en passant, capturing victim.
func (b *Board) SetEnPassant(c Coordinate, victim *Piece) {
	if sq := b.Square(c); sq != nil {
		sq.EnPassantVictim = victim
	}
}

// UnsetEnPassant clears the en-passant mark on c.
func (b *Board) UnsetEnPassant(c Coordinate) {
	if sq := b.Square(c); sq != nil {
		sq.EnPassantVictim = nil
	}
}

// IsEnPassant reports whether c is currently capturable en passant.
func (b *Board) IsEnPassant(c Coordinate) bool {
	return b.EnPassantVictim(c) != nil
}

// EnPassantVictim returns the piece captured by taking on c en passant.
func (b *Board) EnPassantVictim(c Coordinate) *Piece {
	if sq := b.Square(c); sq != nil {
		return sq.EnPassantVictim
	}
	return nil
}

// Pieces returns every occupant, ordered by square index.
func (b *Board) Pieces() []*Piece {
	var pieces []*Piece
	for i := range b.Squares {
		if p := b.Squares[i].Occupant; p != nil {
			pieces = append(pieces, p)
		}
	}
	return pieces
}

// Clear empties every square.
func (b *Board) Clear() {
	for i := range b.Squares {
		b.Squares[i].Occupant = nil
		b.Squares[i].EnPassantVictim = nil
	}
}
