package chesscore

import (
	"fmt"
	"strconv"
	"strings"
)

// fen.go is the FEN codec (SPEC_FULL.md section 4.8), adapted from the
// teacher's ParseFen/ToFen pair: unlike the teacher, a malformed field
// returns a non-nil error instead of silently producing a blank board,
// per spec section 7's error-handling design ("invalid FEN input...
// surfaced to the caller as a parse failure").

var pieceLetterKind = map[byte]PieceKind{
	'p': Pawn, 'n': Knight, 'b': Bishop, 'r': Rook, 'q': Queen, 'k': King,
}

// ParseFEN parses a standard six-field Forsyth-Edwards string.
func ParseFEN(s string) (Position, error) {
	fields := strings.Fields(s)
	if len(fields) != 6 {
		return Position{}, fmt.Errorf("chesscore: FEN %q must have 6 fields, got %d", s, len(fields))
	}

	var p Position
	if err := parsePlacement(&p, fields[0]); err != nil {
		return Position{}, err
	}

	switch fields[1] {
	case "w":
		p.ToMove = White
	case "b":
		p.ToMove = Black
	default:
		return Position{}, fmt.Errorf("chesscore: FEN %q has invalid side to move %q", s, fields[1])
	}

	castling, err := parseCastling(fields[2])
	if err != nil {
		return Position{}, err
	}
	p.Castling = castling

	if fields[3] != "-" {
		sq, err := ParseSquareName(fields[3])
		if err != nil {
			return Position{}, fmt.Errorf("chesscore: FEN %q has invalid en-passant field: %w", s, err)
		}
		rank := rankOf(sq)
		if rank != 2 && rank != 5 {
			return Position{}, fmt.Errorf("chesscore: FEN %q en-passant square %q is not on rank 3 or 6", s, fields[3])
		}
		p.EnPassant = squareBit(sq)
	}

	halfmoves, err := strconv.Atoi(fields[4])
	if err != nil {
		return Position{}, fmt.Errorf("chesscore: FEN %q has invalid halfmove clock: %w", s, err)
	}
	p.Halfmoves = halfmoves

	fullmoves, err := strconv.Atoi(fields[5])
	if err != nil {
		return Position{}, fmt.Errorf("chesscore: FEN %q has invalid fullmove number: %w", s, err)
	}
	p.Fullmoves = fullmoves

	return p, nil
}

func parsePlacement(p *Position, field string) error {
	ranks := strings.Split(field, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("chesscore: FEN placement %q must have 8 ranks, got %d", field, len(ranks))
	}
	for i, rankStr := range ranks {
		rank := 7 - i // field lists rank 8 first
		file := 0
		for _, ch := range []byte(rankStr) {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			if file > 7 {
				return fmt.Errorf("chesscore: FEN placement %q overruns rank %d", field, rank+1)
			}
			color := White
			letter := ch
			if ch >= 'a' && ch <= 'z' {
				color = Black
			} else {
				letter = ch + ('a' - 'A')
			}
			kind, ok := pieceLetterKind[letter]
			if !ok {
				return fmt.Errorf("chesscore: FEN placement %q has unrecognized piece letter %q", field, string(ch))
			}
			p.placePiece(color, kind, Square(rank*8+file))
			file++
		}
		if file != 8 {
			return fmt.Errorf("chesscore: FEN placement %q rank %d does not sum to 8 files, got %d", field, rank+1, file)
		}
	}
	return nil
}

func parseCastling(field string) (CastleRights, error) {
	if field == "-" {
		return 0, nil
	}
	var rights CastleRights
	for _, ch := range []byte(field) {
		switch ch {
		case 'K':
			rights |= CastleWhiteKingside
		case 'Q':
			rights |= CastleWhiteQueenside
		case 'k':
			rights |= CastleBlackKingside
		case 'q':
			rights |= CastleBlackQueenside
		default:
			return 0, fmt.Errorf("chesscore: castling field %q has unrecognized character %q", field, string(ch))
		}
	}
	return rights, nil
}

// FEN serializes p back to a standard six-field Forsyth-Edwards string.
func (p Position) FEN() string {
	var b strings.Builder

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			sq := Square(rank*8 + file)
			kind, color, occupied := p.pieceAt(sq)
			if !occupied {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			letter := kind.Letter()
			if color == Black {
				letter += 'a' - 'A'
			}
			b.WriteByte(letter)
		}
		if empty > 0 {
			b.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			b.WriteByte('/')
		}
	}

	b.WriteByte(' ')
	if p.ToMove == White {
		b.WriteByte('w')
	} else {
		b.WriteByte('b')
	}

	b.WriteByte(' ')
	if p.Castling == 0 {
		b.WriteByte('-')
	} else {
		if p.Castling&CastleWhiteKingside != 0 {
			b.WriteByte('K')
		}
		if p.Castling&CastleWhiteQueenside != 0 {
			b.WriteByte('Q')
		}
		if p.Castling&CastleBlackKingside != 0 {
			b.WriteByte('k')
		}
		if p.Castling&CastleBlackQueenside != 0 {
			b.WriteByte('q')
		}
	}

	b.WriteByte(' ')
	if p.EnPassant == 0 {
		b.WriteByte('-')
	} else {
		b.WriteString(SquareName(lsbSquare(p.EnPassant)))
	}

	fmt.Fprintf(&b, " %d %d", p.Halfmoves, p.Fullmoves)
	return b.String()
}

// pieceAt scans both sides' piece bitboards for sq, returning its kind and
// color. Used only by FEN serialization, where speed is not a concern.
func (p *Position) pieceAt(sq Square) (PieceKind, Color, bool) {
	if kind, ok := p.locatePiece(White, sq); ok {
		return kind, White, true
	}
	if kind, ok := p.locatePiece(Black, sq); ok {
		return kind, Black, true
	}
	return 0, 0, false
}
