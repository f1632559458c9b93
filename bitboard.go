package chesscore

import "math/bits"

// Bitboard is a set of squares packed into a 64 bit word.
//
// Squares are indexed 0..63 using little-endian rank-file mapping:
//
//	56  57  58  59  60  61  62  63
//	48  49  50  51  52  53  54  55
//	40  41  42  43  44  45  46  47
//	32  33  34  35  36  37  38  39
//	24  25  26  27  28  29  30  31
//	16  17  18  19  20  21  22  23
//	8   9   10  11  12  13  14  15
//	0   1   2   3   4   5   6   7
//
// Bit 0 is a1, bit 7 is h1, bit 56 is a8, bit 63 is h8. Shifting a white
// piece's bitboard left by 8 moves it one rank forward.
type Bitboard uint64

// Square is a board square index in 0..63.
type Square int8

// squareBit returns the single-bit bitboard for a square.
func squareBit(sq Square) Bitboard {
	return Bitboard(1) << uint(sq)
}

// has reports whether any bit of mask is set in bb.
func has(bb, mask Bitboard) bool {
	return bb&mask != 0
}

// set returns bb with every bit of mask set.
func set(bb, mask Bitboard) Bitboard {
	return bb | mask
}

// clear returns bb with every bit of mask cleared.
func clear(bb, mask Bitboard) Bitboard {
	return bb &^ mask
}

// lsbSquare returns the index of the least significant set bit.
// Callers must not pass an empty bitboard.
func lsbSquare(bb Bitboard) Square {
	return Square(bits.TrailingZeros64(uint64(bb)))
}

// popLSB clears the least significant set bit and returns its square
// together with the resulting bitboard.
func popLSB(bb Bitboard) (Square, Bitboard) {
	sq := lsbSquare(bb)
	return sq, bb & (bb - 1)
}

// popCount returns the number of set bits.
func popCount(bb Bitboard) int {
	return bits.OnesCount64(uint64(bb))
}

// File and rank masks.
const (
	FileA Bitboard = 0x0101010101010101
	FileB Bitboard = FileA << 1
	FileC Bitboard = FileA << 2
	FileD Bitboard = FileA << 3
	FileE Bitboard = FileA << 4
	FileF Bitboard = FileA << 5
	FileG Bitboard = FileA << 6
	FileH Bitboard = FileA << 7

	Rank1 Bitboard = 0xFF
	Rank2 Bitboard = Rank1 << (8 * 1)
	Rank3 Bitboard = Rank1 << (8 * 2)
	Rank4 Bitboard = Rank1 << (8 * 3)
	Rank5 Bitboard = Rank1 << (8 * 4)
	Rank6 Bitboard = Rank1 << (8 * 5)
	Rank7 Bitboard = Rank1 << (8 * 6)
	Rank8 Bitboard = Rank1 << (8 * 7)
)

var files = [8]Bitboard{FileA, FileB, FileC, FileD, FileE, FileF, FileG, FileH}
var ranks = [8]Bitboard{Rank1, Rank2, Rank3, Rank4, Rank5, Rank6, Rank7, Rank8}

// fileOf and rankOf return the 0-indexed file/rank of a square.
func fileOf(sq Square) int { return int(sq) % 8 }
func rankOf(sq Square) int { return int(sq) / 8 }

// Starting-position piece bitboards, standard chess setup.
const (
	whitePawnsStart   Bitboard = Rank2
	whiteKnightsStart Bitboard = 0x42
	whiteBishopsStart Bitboard = 0x24
	whiteRooksStart   Bitboard = 0x81
	whiteQueensStart  Bitboard = 0x08
	whiteKingStart    Bitboard = 0x10

	blackPawnsStart   Bitboard = Rank7
	blackKnightsStart Bitboard = whiteKnightsStart << (8 * 7)
	blackBishopsStart Bitboard = whiteBishopsStart << (8 * 7)
	blackRooksStart   Bitboard = whiteRooksStart << (8 * 7)
	blackQueensStart  Bitboard = whiteQueensStart << (8 * 7)
	blackKingStart    Bitboard = whiteKingStart << (8 * 7)
)

// Castling squares. The must-be-free masks are the squares (excluding the
// king's own square) that have to be empty for castling to be available.
// The king/rook traversal masks are the squares the king passes through or
// lands on (excluding its origin square, which legal.go ORs in separately
// per spec section 4.5); those are checked for enemy attacks.
const (
	mustBeFreeCastleKingsideWhite  Bitboard = 0x60                 // f1, g1
	mustBeFreeCastleQueensideWhite Bitboard = 0x0E                 // b1, c1, d1
	mustBeFreeCastleKingsideBlack  Bitboard = 0x6000000000000000   // f8, g8
	mustBeFreeCastleQueensideBlack Bitboard = 0x0E00000000000000   // b8, c8, d8

	kingAndRookPosCastleKingsideWhite  Bitboard = 0x60                 // f1, g1
	kingAndRookPosCastleQueensideWhite Bitboard = 0x0C                 // c1, d1
	kingAndRookPosCastleKingsideBlack  Bitboard = 0x6000000000000000   // f8, g8
	kingAndRookPosCastleQueensideBlack Bitboard = 0x0C00000000000000   // c8, d8
)
