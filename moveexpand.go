package chesscore

// moveexpand.go turns the compact, bit-serial Moves scratch structure into a
// concrete MoveList of tagged Move values, per spec section 4.3. Emission
// order is fixed (castles, en-passant captors, pawns, then knight..king) so
// that perft split-points are deterministic across runs, not for any
// correctness reason.

// pawnPromoteRank is the rank a pawn moves *from* when its destination is
// the back rank — i.e. the move promotes. Rank 7 (0-indexed 6) for white,
// rank 2 (0-indexed 1) for black.
func pawnPromoteRank(c Color) int {
	if c == White {
		return 6
	}
	return 1
}

var promotionKinds = [4]PieceKind{Knight, Bishop, Rook, Queen}

// ExpandMoves reads the populated scratch structure mv and appends every
// concrete move it represents to out. out is not reset first; callers that
// want a fresh list must call out.Reset() themselves.
func ExpandMoves(p *Position, mv *Moves, out *MoveList) {
	if mv.CastleKingside {
		kingFrom, kingTo, _, _ := castleSquares(mv.Color, MoveCastleKingside)
		out.Push(Move{Kind: MoveCastleKingside, Piece: King, From: squareBit(kingFrom), To: squareBit(kingTo)})
	}
	if mv.CastleQueenside {
		kingFrom, kingTo, _, _ := castleSquares(mv.Color, MoveCastleQueenside)
		out.Push(Move{Kind: MoveCastleQueenside, Piece: King, From: squareBit(kingFrom), To: squareBit(kingTo)})
	}

	for i := 0; i < mv.EnPassantCount; i++ {
		from := mv.EnPassantCaptors[i]
		out.Push(Move{
			Kind: MoveEnPassant,
			From: squareBit(from),
			To:   mv.EnPassantTarget,
		})
	}

	promoteRank := pawnPromoteRank(mv.Color)
	pawnStart := mv.PiecesStart[Pawn]
	if pawnStart >= 0 {
		count := mv.pieceCount(Pawn)
		for i := pawnStart; i < pawnStart+count; i++ {
			from := mv.PiecesList[i]
			fromSq := lsbSquare(from)
			destinations := mv.MovesList[i]
			promotes := rankOf(fromSq) == promoteRank
			for destinations != 0 {
				var toSq Square
				toSq, destinations = popLSB(destinations)
				to := squareBit(toSq)
				if promotes {
					for _, kind := range promotionKinds {
						out.Push(Move{Kind: MovePromotion, Promote: kind, From: from, To: to})
					}
				} else {
					out.Push(Move{Kind: MoveRegular, Piece: Pawn, From: from, To: to})
				}
			}
		}
	}

	for kind := Knight; kind < NPieceKinds; kind++ {
		start := mv.PiecesStart[kind]
		if start < 0 {
			continue
		}
		count := mv.pieceCount(kind)
		for i := start; i < start+count; i++ {
			from := mv.PiecesList[i]
			destinations := mv.MovesList[i]
			for destinations != 0 {
				var toSq Square
				toSq, destinations = popLSB(destinations)
				out.Push(Move{Kind: MoveRegular, Piece: kind, From: from, To: squareBit(toSq)})
			}
		}
	}
}
