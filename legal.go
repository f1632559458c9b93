package chesscore

// legal.go is the legality filter (spec section 4.5): the generator above
// produces pseudo-legal moves that can leave the mover's own king in
// check, so every candidate is applied and checked against the
// opponent's reply before it is accepted.

// IsLegal reports whether applying m to p leaves the mover's own king safe.
// scratch is caller-owned working space for the opponent's reply
// generation, so callers on a hot path (perft) can reuse one Moves value
// across every candidate instead of allocating.
func IsLegal(p *Position, m Move, scratch *Moves) bool {
	mover := p.ToMove

	successor := p.MakeMove(m)
	GenerateMoves(&successor, scratch)
	attacked := scratch.AllAttacks | scratch.PawnAttacks

	// The king's own square in the successor position: for every move kind
	// but a king move this equals its square in p, but a regular king move
	// (or castling) relocates it, so it must be read back from successor
	// rather than captured from p up front.
	kingSquare := successor.KingSquare(mover)
	if attacked&squareBit(kingSquare) != 0 {
		return false
	}

	if m.Kind == MoveCastleKingside || m.Kind == MoveCastleQueenside {
		var traversal Bitboard
		if m.Kind == MoveCastleKingside {
			if mover == White {
				traversal = kingAndRookPosCastleKingsideWhite
			} else {
				traversal = kingAndRookPosCastleKingsideBlack
			}
		} else {
			if mover == White {
				traversal = kingAndRookPosCastleQueensideWhite
			} else {
				traversal = kingAndRookPosCastleQueensideBlack
			}
		}
		kingFrom, _, _, _ := castleSquares(mover, m.Kind)
		if attacked&(traversal|squareBit(kingFrom)) != 0 {
			return false
		}
	}

	return true
}
