package chesscore

import "fmt"

// algebraic.go is the algebraic square-string codec (SPEC_FULL.md section
// 4.9): <file><rank> strings such as "e4", used only for debug output and
// the FEN codec's en-passant field — never consulted by move generation or
// legality.

// SquareName renders a square as its <file><rank> algebraic string.
func SquareName(sq Square) string {
	return string([]byte{
		byte('a' + fileOf(sq)),
		byte('1' + rankOf(sq)),
	})
}

// ParseSquareName parses a <file><rank> string into a square index.
func ParseSquareName(s string) (Square, error) {
	if len(s) != 2 {
		return 0, fmt.Errorf("chesscore: square %q must be exactly 2 characters", s)
	}
	file := s[0]
	rank := s[1]
	if file < 'a' || file > 'h' {
		return 0, fmt.Errorf("chesscore: square %q has an invalid file", s)
	}
	if rank < '1' || rank > '8' {
		return 0, fmt.Errorf("chesscore: square %q has an invalid rank", s)
	}
	return Square(int(rank-'1')*8 + int(file-'a')), nil
}

var promoteLetters = map[PieceKind]byte{Knight: 'n', Bishop: 'b', Rook: 'r', Queen: 'q'}

// UCI renders a concrete move as a long-algebraic string: "e2e4", "e7e8q"
// for a promotion, "e1g1" for kingside castling (the king's own move). Move
// carries its From/To squares for every kind move-list expansion produces,
// including castling, so there is no special case here. Used only for
// debug/CLI output.
func (m Move) UCI() string {
	from := SquareName(lsbSquare(m.From))
	to := SquareName(lsbSquare(m.To))
	if m.Kind == MovePromotion {
		return from + to + string(promoteLetters[m.Promote])
	}
	return from + to
}
