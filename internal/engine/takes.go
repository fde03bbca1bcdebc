package engine

// specialTakes resolves captures for pieces whose take geometry differs from
// their move geometry. Take vectors are scaled from the current square
// without reflection. A slider stops at the first occupant, though
// en-passant squares further along still count as takes.
func (r *resolver) specialTakes() {
	origin := r.piece.Current
	eligible := r.d.EnPassant()

	for _, v := range r.d.TakeVectors() {
		r.tracef("  take vector %s from %s\n", v, origin)
		blocked := false
		for step := r.d.MinTake(); step <= r.d.MaxTake(); step++ {
			c := origin.Add(v.Scale(step))
			if !c.OnBoard() {
				break
			}
			if eligible && isOpponent(r.piece, r.board.EnPassantVictim(c)) {
				r.tracef("    en passant %s\n", c)
				r.takes.add(c)
			}
			if blocked {
				continue
			}
			occupant := r.board.OccupiedBy(c)
			if occupant == nil {
				continue
			}
			if isOpponent(r.piece, occupant) {
				r.tracef("    take %s\n", c)
				r.takes.add(c)
			}
			if !r.d.Leap() {
				blocked = true
			}
		}
	}
}
