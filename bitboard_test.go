package chesscore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPopLSBVisitsEveryBitOnce(t *testing.T) {
	bb := FileA | Rank8 | squareBit(Square(33))
	var seen []Square
	for bb != 0 {
		var sq Square
		sq, bb = popLSB(bb)
		seen = append(seen, sq)
	}
	assert.Equal(t, popCount(FileA|Rank8|squareBit(Square(33))), len(seen))
	for i := 1; i < len(seen); i++ {
		assert.Less(t, seen[i-1], seen[i], "popLSB must visit squares in ascending order")
	}
}

func TestFileOfAndRankOf(t *testing.T) {
	assert.Equal(t, 4, fileOf(Square(28))) // e4
	assert.Equal(t, 3, rankOf(Square(28)))
}

func TestHasSetClear(t *testing.T) {
	var bb Bitboard
	bb = set(bb, squareBit(Square(10)))
	assert.True(t, has(bb, squareBit(Square(10))))
	bb = clear(bb, squareBit(Square(10)))
	assert.False(t, has(bb, squareBit(Square(10))))
}
