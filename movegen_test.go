package chesscore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateMovesStartingPositionCount(t *testing.T) {
	p := StartingPosition()
	var mv Moves
	GenerateMoves(&p, &mv)
	var list MoveList
	ExpandMoves(&p, &mv, &list)
	assert.Equal(t, 20, list.Len, "starting position has 20 pseudo-legal (== legal) moves")
}

// legalMovesFrom is a small test helper: generate, expand, and filter to
// the legal subset for a position.
func legalMovesFrom(p Position) []Move {
	var mv Moves
	GenerateMoves(&p, &mv)
	var list MoveList
	ExpandMoves(&p, &mv, &list)

	var scratch Moves
	out := make([]Move, 0, list.Len)
	for i := 0; i < list.Len; i++ {
		m := list.Moves[i]
		if IsLegal(&p, m, &scratch) {
			out = append(out, m)
		}
	}
	return out
}

func TestSideBitboardsStayCoherent(t *testing.T) {
	p, err := ParseFEN(kiwipeteFEN)
	require.NoError(t, err)

	for _, m := range legalMovesFrom(p) {
		next := p.MakeMove(m)
		union := next.Sides[White] | next.Sides[Black]
		assert.Equal(t, next.AllPieces(), union)

		var pieceUnion Bitboard
		for c := Color(0); c < NColors; c++ {
			for k := PieceKind(0); k < NPieceKinds; k++ {
				pieceUnion |= next.Pieces[c][k]
			}
		}
		assert.Equal(t, union, pieceUnion, "piece bitboards must partition the side bitboards")
		assert.Zero(t, next.Sides[White]&next.Sides[Black], "sides must be disjoint")
	}
}

func TestExactlyOneKingPerSideAfterAnyLegalMove(t *testing.T) {
	p, err := ParseFEN(kiwipeteFEN)
	require.NoError(t, err)

	for _, m := range legalMovesFrom(p) {
		next := p.MakeMove(m)
		assert.Equal(t, 1, popCount(next.Pieces[White][King]))
		assert.Equal(t, 1, popCount(next.Pieces[Black][King]))
	}
}

// TestCastlingRightsAreMonotonicallyLost confirms castling rights never
// reappear once cleared, playing the first legal move at each ply (castling
// is emitted first, so the sequence clears them).
func TestCastlingRightsAreMonotonicallyLost(t *testing.T) {
	p, err := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)

	prevRights := p.Castling
	cur := p
	for ply := 0; ply < 6; ply++ {
		moves := legalMovesFrom(cur)
		require.NotEmpty(t, moves)
		cur = cur.MakeMove(moves[0])
		assert.Zero(t, cur.Castling&^prevRights, "castling rights must never be gained back")
		prevRights = cur.Castling
	}
}

func TestEnPassantCaptureRemovesCorrectPawn(t *testing.T) {
	// White just pushed e2-e4 with a black pawn on d4 positioned to capture en passant.
	p, err := ParseFEN("rnbqkbnr/ppp1pppp/8/8/3pP3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 2")
	require.NoError(t, err)

	var mv Moves
	GenerateMoves(&p, &mv)
	require.Equal(t, 1, mv.EnPassantCount)

	var list MoveList
	ExpandMoves(&p, &mv, &list)

	var found bool
	for i := 0; i < list.Len; i++ {
		m := list.Moves[i]
		if m.Kind != MoveEnPassant {
			continue
		}
		found = true
		next := p.MakeMove(m)
		assert.Zero(t, next.Pieces[White][Pawn]&squareBit(Square(28)), "captured pawn on e4 must be removed")
		assert.NotZero(t, next.Pieces[Black][Pawn]&squareBit(Square(20)), "capturing pawn must land on e3")
	}
	assert.True(t, found, "expected an en-passant move in the expanded list")
}

func TestPromotionExpandsToFourVariants(t *testing.T) {
	p, err := ParseFEN("8/P7/8/8/8/8/8/k6K w - - 0 1")
	require.NoError(t, err)

	var mv Moves
	GenerateMoves(&p, &mv)
	var list MoveList
	ExpandMoves(&p, &mv, &list)

	var promotions []Move
	for i := 0; i < list.Len; i++ {
		if list.Moves[i].Kind == MovePromotion {
			promotions = append(promotions, list.Moves[i])
		}
	}
	require.Len(t, promotions, 4)

	seen := map[PieceKind]bool{}
	for _, m := range promotions {
		seen[m.Promote] = true
	}
	assert.True(t, seen[Knight])
	assert.True(t, seen[Bishop])
	assert.True(t, seen[Rook])
	assert.True(t, seen[Queen])
}

func TestCastlingThroughCheckIsRejected(t *testing.T) {
	// Black rook on e8 covers e1, so white can't castle either side (king
	// passes through or starts on an attacked square).
	p, err := ParseFEN("4r3/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	require.NoError(t, err)

	moves := legalMovesFrom(p)
	for _, m := range moves {
		assert.NotEqual(t, MoveCastleKingside, m.Kind)
		assert.NotEqual(t, MoveCastleQueenside, m.Kind)
	}
}

func TestCornerRookCaptureStripsCastlingRight(t *testing.T) {
	// Black bishop captures the white rook on h1, which must strip white's
	// kingside castling right even though white's king never moved.
	p, err := ParseFEN("4k3/8/8/8/8/8/6b1/R3K2R b KQ - 0 1")
	require.NoError(t, err)

	var found bool
	for _, m := range legalMovesFrom(p) {
		if m.Piece != Bishop || m.To != squareBit(Square(7)) {
			continue
		}
		found = true
		next := p.MakeMove(m)
		assert.Zero(t, next.Castling&CastleWhiteKingside)
		assert.NotZero(t, next.Castling&CastleWhiteQueenside, "queenside right must survive")
	}
	assert.True(t, found, "expected the bishop to be able to capture on h1")
}
