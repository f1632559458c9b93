package chesscore

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// parallel.go is the root-split parallel dispatcher (spec section 4.7):
// the root move list is generated once, then one goroutine per legal root
// move computes Perft(child, depth-1) independently, each with its own
// scratch slabs. golang.org/x/sync/errgroup supplies the fan-out/join;
// the group's error return is never actually populated by this package
// (Perft itself cannot fail) but lets the dispatcher share the idiom the
// library is built around instead of hand-rolling a WaitGroup.
func MultiThreadPerft(p Position, depth int) (uint64, error) {
	if depth <= 0 {
		return 1, nil
	}

	var root Moves
	GenerateMoves(&p, &root)
	var list MoveList
	ExpandMoves(&p, &root, &list)

	var legalityScratch Moves
	legal := make([]Move, 0, list.Len)
	for i := 0; i < list.Len; i++ {
		m := list.Moves[i]
		if IsLegal(&p, m, &legalityScratch) {
			legal = append(legal, m)
		}
	}

	if depth == 1 {
		return uint64(len(legal)), nil
	}

	var (
		mu    sync.Mutex
		total uint64
	)
	g, _ := errgroup.WithContext(context.Background())
	for _, m := range legal {
		m := m
		g.Go(func() error {
			child := p.MakeMove(m)
			n := Perft(child, depth-1)
			mu.Lock()
			total += n
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	return total, nil
}
