package engine

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// Perft counts the leaf nodes of the legal move tree to the given depth.
// Depth 0 counts the position itself.
func Perft(board *chess.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := AllLegalMoves(board)
	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, move := range moves {
		nodes += Perft(ApplyMove(board, move), depth-1)
	}
	return nodes
}

// PerftCached is Perft backed by a transposition table keyed on
// hashing.Zobrist. A nil cache falls back to Perft.
func PerftCached(board *chess.Board, depth int, cache hashing.Cache) uint64 {
	if cache == nil || depth <= 1 {
		return Perft(board, depth)
	}
	key := hashing.Zobrist(board)
	if nodes, ok := cache.Lookup(key, depth); ok {
		return nodes
	}

	var nodes uint64
	for _, move := range AllLegalMoves(board) {
		nodes += PerftCached(ApplyMove(board, move), depth-1, cache)
	}
	cache.Store(key, depth, nodes)
	return nodes
}

// DivideEntry is the node count below one root move.
type DivideEntry struct {
	Move  chess.Move
	Nodes uint64
}

// PerftDivide returns the node count below each legal root move, in the
// order AllLegalMoves produces them.
func PerftDivide(board *chess.Board, depth int) []DivideEntry {
	if depth <= 0 {
		return nil
	}
	moves := AllLegalMoves(board)
	entries := make([]DivideEntry, len(moves))
	for i, move := range moves {
		entries[i] = DivideEntry{Move: move, Nodes: Perft(ApplyMove(board, move), depth-1)}
	}
	return entries
}

// ParallelPerftDivide is PerftDivide with the root moves spread over a
// worker pool. The result is identical to PerftDivide.
func ParallelPerftDivide(board *chess.Board, depth, workers int) ([]DivideEntry, error) {
	return ParallelPerftDivideCached(board, depth, workers, nil)
}

// ParallelPerftDivideCached is ParallelPerftDivide with every worker
// sharing cache, which must then be safe for concurrent use.
func ParallelPerftDivideCached(board *chess.Board, depth, workers int, cache hashing.Cache) ([]DivideEntry, error) {
	if depth <= 0 {
		return nil, nil
	}
	moves := AllLegalMoves(board)
	items := make([]worker.WorkItem, len(moves))
	for i, move := range moves {
		items[i] = worker.WorkItem{
			Board: ApplyMove(board, move),
			Move:  move,
			Depth: depth - 1,
			Index: i,
			Cache: cache,
		}
	}

	pool := worker.NewPool(perftItem, worker.WithWorkers(workers), worker.WithBufferSize(len(items)+1))
	results, err := pool.Run(items)
	if err != nil {
		return nil, err
	}
	if len(results) != len(items) {
		return nil, fmt.Errorf("perft divide: %d of %d root moves completed", len(results), len(items))
	}

	entries := make([]DivideEntry, len(results))
	for i, result := range results {
		entries[i] = DivideEntry{Move: result.Move, Nodes: result.Nodes}
	}
	return entries, nil
}

// perftItem is the worker.ProcessFunc for one root move.
func perftItem(item worker.WorkItem) worker.ProcessResult {
	if item.Board == nil {
		return worker.ProcessResult{Move: item.Move, Index: item.Index, Error: fmt.Errorf("root move %s: no board", item.Move)}
	}
	return worker.ProcessResult{
		Move:  item.Move,
		Index: item.Index,
		Nodes: PerftCached(item.Board, item.Depth, item.Cache),
	}
}

// TotalNodes sums the node counts of a divide.
func TotalNodes(entries []DivideEntry) uint64 {
	var total uint64
	for _, e := range entries {
		total += e.Nodes
	}
	return total
}
