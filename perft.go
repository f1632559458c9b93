package chesscore

// perft.go is the perft driver (spec section 4.6): count leaf nodes of the
// full-width game tree to a fixed depth, used to validate the generator
// against known reference counts. Scratch buffers are preallocated one
// level per depth so a full recursive search allocates nothing.

// perftSlab holds one depth level's worth of reusable scratch: a compact
// Moves structure plus the concrete move list it expands into.
type perftSlab struct {
	moves     Moves
	list      MoveList
	successor Moves // reused by the legality filter's opponent-reply generation
}

// perftScratch is a stack of slabs, one per depth, reused across the whole
// recursion per spec section 4.6's "one per-depth slab" layout.
type perftScratch struct {
	slabs []perftSlab
}

func newPerftScratch(depth int) *perftScratch {
	return &perftScratch{slabs: make([]perftSlab, depth+1)}
}

// Perft counts the leaf nodes of the move tree rooted at p, to the given
// depth. depth must be >= 1.
func Perft(p Position, depth int) uint64 {
	log.Debugf("perft: depth=%d fen=%s", depth, p.FEN())
	scratch := newPerftScratch(depth)
	return perftAt(p, depth, scratch)
}

func perftAt(p Position, depth int, scratch *perftScratch) uint64 {
	slab := &scratch.slabs[depth]
	GenerateMoves(&p, &slab.moves)
	slab.list.Reset()
	ExpandMoves(&p, &slab.moves, &slab.list)

	var count uint64
	for i := 0; i < slab.list.Len; i++ {
		m := slab.list.Moves[i]
		if !IsLegal(&p, m, &slab.successor) {
			continue
		}
		if depth == 1 {
			count++
			continue
		}
		successor := p.MakeMove(m)
		count += perftAt(successor, depth-1, scratch)
	}
	return count
}
