package chesscore

// makemove.go implements MakeMove (spec section 4.4): given a position and
// a concrete move, produce the successor position. Unlike the teacher's
// mutate-in-place-plus-undo-closure model, MakeMove copies the Position
// value (cheap — it holds no slices or pointers) and mutates the copy,
// matching the spec's "Positions are immutable to callers" requirement.

const (
	whiteHomeRank = 0
	blackHomeRank = 7
)

// cornerRookCastleRight reports the castling right that a rook on a home
// corner square guards, or false if sq is not one of the four corners.
func cornerRookCastleRight(sq Square) (CastleRights, bool) {
	switch sq {
	case 0: // a1
		return CastleWhiteQueenside, true
	case 7: // h1
		return CastleWhiteKingside, true
	case 56: // a8
		return CastleBlackQueenside, true
	case 63: // h8
		return CastleBlackKingside, true
	}
	return 0, false
}

// castleSquares returns the king and rook source/destination squares for a
// castling move, given the mover's color. Shared by MakeMove and move-list
// expansion (which fills in Move.From/To so castling moves render the same
// way as any other concrete move).
func castleSquares(mover Color, kind MoveKind) (kingFrom, kingTo, rookFrom, rookTo Square) {
	homeRank := whiteHomeRank
	if mover == Black {
		homeRank = blackHomeRank
	}
	kingFrom = Square(homeRank*8 + 4)
	if kind == MoveCastleKingside {
		kingTo = Square(homeRank*8 + 6)
		rookFrom = Square(homeRank*8 + 7)
		rookTo = Square(homeRank*8 + 5)
	} else {
		kingTo = Square(homeRank*8 + 2)
		rookFrom = Square(homeRank*8 + 0)
		rookTo = Square(homeRank*8 + 3)
	}
	return kingFrom, kingTo, rookFrom, rookTo
}

// applyCapture removes whatever opponent piece (if any) occupies "to",
// clearing the matching castling right if it was a corner rook. Shared by
// the Regular and Promotion cases per spec section 4.4.
func (p *Position) applyCapture(opponent Color, to Square) {
	kind, found := p.locatePiece(opponent, to)
	if !found {
		return
	}
	p.removePiece(opponent, kind, to)
	if kind == Rook {
		if right, ok := cornerRookCastleRight(to); ok {
			p.Castling &^= right
		}
	}
}

// MakeMove returns the position resulting from applying m to p. m is
// assumed pseudo-legal for p; legality (king safety) is checked separately
// by the legality filter.
func (p Position) MakeMove(m Move) Position {
	mover := p.ToMove
	opponent := mover.Other()
	next := p

	switch m.Kind {
	case MoveRegular:
		fromSq, toSq := lsbSquare(m.From), lsbSquare(m.To)
		next.applyCapture(opponent, toSq)
		next.removePiece(mover, m.Piece, fromSq)
		next.placePiece(mover, m.Piece, toSq)
		next.EnPassant = 0
		switch m.Piece {
		case King:
			next.Castling &^= rightsFor(mover, CastleKingsideSide) | rightsFor(mover, CastleQueensideSide)
		case Rook:
			if right, ok := cornerRookCastleRight(fromSq); ok {
				next.Castling &^= right
			}
		case Pawn:
			if mover == White && rankOf(fromSq) == 1 && rankOf(toSq) == 3 {
				next.EnPassant = squareBit(fromSq + 8)
			} else if mover == Black && rankOf(fromSq) == 6 && rankOf(toSq) == 4 {
				next.EnPassant = squareBit(fromSq - 8)
			}
		}

	case MoveEnPassant:
		fromSq, toSq := lsbSquare(m.From), lsbSquare(m.To)
		var capturedSq Square
		if mover == White {
			capturedSq = toSq - 8
		} else {
			capturedSq = toSq + 8
		}
		next.removePiece(opponent, Pawn, capturedSq)
		next.removePiece(mover, Pawn, fromSq)
		next.placePiece(mover, Pawn, toSq)
		next.EnPassant = 0

	case MovePromotion:
		fromSq, toSq := lsbSquare(m.From), lsbSquare(m.To)
		next.applyCapture(opponent, toSq)
		next.removePiece(mover, Pawn, fromSq)
		next.placePiece(mover, m.Promote, toSq)
		next.EnPassant = 0

	case MoveCastleKingside, MoveCastleQueenside:
		kingFrom, kingTo, rookFrom, rookTo := castleSquares(mover, m.Kind)
		next.removePiece(mover, King, kingFrom)
		next.placePiece(mover, King, kingTo)
		next.removePiece(mover, Rook, rookFrom)
		next.placePiece(mover, Rook, rookTo)
		next.Castling &^= rightsFor(mover, CastleKingsideSide) | rightsFor(mover, CastleQueensideSide)
		next.EnPassant = 0
	}

	next.Halfmoves++
	if mover == Black {
		next.Fullmoves++
	}
	next.ToMove = opponent
	return next
}
