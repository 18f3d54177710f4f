package engine

import (
	"runtime"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// Perft counts the leaf nodes of the legal move tree of pos to depth.
// It is a move generation check, not a search.
func Perft(pos *chess.Position, depth int) uint64 {
	return perft(pos, depth, nil)
}

func perft(pos *chess.Position, depth int, table *hashing.PerftTable) uint64 {
	if depth <= 0 {
		return 1
	}

	var key uint64
	if table != nil {
		key = hashing.Zobrist(pos)
		if nodes, ok := table.Lookup(key, depth); ok {
			return nodes
		}
	}

	moves := LegalMoves(pos)
	var nodes uint64
	if depth == 1 {
		nodes = uint64(len(moves))
	} else {
		for _, m := range moves {
			next := MakeMove(pos, m.From, m.To)
			nodes += perft(&next, depth-1, table)
		}
	}

	if table != nil {
		table.Store(key, depth, nodes)
	}
	return nodes
}

// DivideEntry is the node count below one root move.
type DivideEntry struct {
	Move  chess.Move
	Nodes uint64
}

// DivideResult holds per-move counts sorted by move name, and their sum.
type DivideResult struct {
	Entries []DivideEntry
	Total   uint64
}

// PerftOptions configures PerftDivide.
type PerftOptions struct {
	Workers int                 // 0 means runtime.NumCPU()
	Table   *hashing.PerftTable // optional shared memo table
}

// PerftDivide counts the nodes below each legal root move, spreading the
// root moves over a worker pool.
func PerftDivide(pos *chess.Position, depth int, opts PerftOptions) DivideResult {
	var result DivideResult
	if depth < 1 {
		return result
	}

	workers := opts.Workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	moves := LegalMoves(pos)
	jobs := make([]worker.Job, len(moves))
	for i, m := range moves {
		jobs[i] = worker.Job{Position: MakeMove(pos, m.From, m.To), Move: m, Depth: depth - 1}
	}

	pool := worker.New(func(p *chess.Position, d int) uint64 {
		return perft(p, d, opts.Table)
	}, worker.WithWorkers(workers), worker.WithQueue(len(jobs)+1))

	byName := make(map[string]DivideEntry, len(moves))
	for _, r := range pool.Run(jobs) {
		byName[r.Move.String()] = DivideEntry{Move: r.Move, Nodes: r.Nodes}
		result.Total += r.Nodes
	}

	names := maps.Keys(byName)
	slices.Sort(names)
	for _, name := range names {
		result.Entries = append(result.Entries, byName[name])
	}
	return result
}
