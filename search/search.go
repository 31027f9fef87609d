// Package search implements the iterative-deepening PVS/negascout
// engine: root move generation and ordering, a sequential
// Young-Brothers-Wait seed, root-parallel brothers dispatched to a
// worker pool with a shared CAS-raised alpha, and time-budget
// enforcement between depths. Grounded on the teacher's
// engine/searchserviceparallel.go (IterateSearchParallel /
// AlphaBetaParallel), generalized from the teacher's
// mutex-guarded-alpha root split to the spec's lock-free atomic CAS
// and from its ParallelDo goroutine fan-out to a genuine pool.Pool.
package search

import (
	"os"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/AlexXLi12/othello-engine/bitboard"
	"github.com/AlexXLi12/othello-engine/board"
	"github.com/AlexXLi12/othello-engine/eval"
	"github.com/AlexXLi12/othello-engine/pool"
	"github.com/AlexXLi12/othello-engine/tt"
	"github.com/rs/zerolog"
)

// Options are the tunable knobs a front-end sets before calling
// FindBestMove, grounded on the teacher's IntUciOption/BoolUciOption
// fields on Engine (engine/engine.go: Hash, Threads).
type Options struct {
	PoolSize   int // degree of root-level parallelism
	TTCapacity int // per-root-move table size hint, in entries
}

// DefaultOptions mirrors the teacher's NewEngine defaults, with
// Threads defaulting to runtime.NumCPU().
func DefaultOptions() Options {
	return Options{
		PoolSize:   runtime.NumCPU(),
		TTCapacity: 1 << 16,
	}
}

// Engine is the search core's single external collaborator surface
// (§6): construct one, then call FindBestMove.
type Engine struct {
	Evaluator eval.Evaluator
	Options   Options

	NodesSearched atomic.Uint64 // diagnostic only, §4.8 Observability
	CacheHits     atomic.Uint64 // diagnostic only

	pool   *pool.Pool
	logger zerolog.Logger
}

// NewEngine builds an Engine with its own worker pool of the given
// size (at least 1). The pool lives for the Engine's lifetime; call
// Close when done with it.
func NewEngine(evaluator eval.Evaluator, options Options) *Engine {
	if options.PoolSize < 1 {
		options.PoolSize = 1
	}
	if options.TTCapacity < 1 {
		options.TTCapacity = 1 << 16
	}
	return &Engine{
		Evaluator: evaluator,
		Options:   options,
		pool:      pool.New(options.PoolSize),
		logger:    zerolog.New(os.Stderr).With().Timestamp().Str("component", "search").Logger(),
	}
}

// SetLogger overrides the engine's diagnostic logger, e.g. so
// cmd/othello can inject one configured for the process's verbosity.
func (e *Engine) SetLogger(logger zerolog.Logger) {
	e.logger = logger
}

// Close shuts down the engine's worker pool. The engine must not be
// used again afterward.
func (e *Engine) Close() {
	e.pool.Shutdown()
}

type rootResult struct {
	score int
	move  int
}

// FindBestMove implements §4.8's top-level findBestMove: iterative
// deepening from depth 1 to maxDepth, a sequential YBW seed at each
// depth followed by root-parallel brothers sharing a CAS-raised
// alpha, stopping between depths once timeLimit has elapsed and
// returning the last fully completed depth's choice. Returns -1 if
// side has no legal move.
func (e *Engine) FindBestMove(b board.GameBoard, maxDepth int, side board.Color, timeLimit time.Duration) int {
	var rootBitboard = board.GetPossibleMoves(b, side)
	if rootBitboard == 0 {
		return -1
	}

	var initialRootMoves = bitboard.Positions(rootBitboard)
	// Each root move owns exactly one table for the whole call,
	// independent of how orderMoves resequences the slice at each
	// depth (§4.6: "one TT per root move").
	var tables = make(map[int]*tt.Table, len(initialRootMoves))
	for _, move := range initialRootMoves {
		tables[move] = tt.New(e.Options.TTCapacity)
	}

	var start = time.Now()
	var bestMove = initialRootMoves[0]
	var bestScore = 0
	var orderingTable = tables[initialRootMoves[0]]

	for depth := 1; depth <= maxDepth; depth++ {
		if depth > 1 && time.Since(start) >= timeLimit {
			break
		}

		var hint, hasHint = orderingTable.Probe(b.Hash)
		var rootMoves = orderMoves(rootBitboard, hint, hasHint)

		var alpha atomic.Int32
		alpha.Store(-infinity)

		var seedMove = rootMoves[0]
		var seedSearcher = &searcher{evaluator: e.Evaluator.Evaluate, table: tables[seedMove]}
		var seedChild = board.ApplyMove(b, seedMove, side)
		var seedChildScore, _ = seedSearcher.negamax(seedChild, depth-1, -infinity, infinity, side.Opponent())
		var seedScore = -seedChildScore
		alpha.Store(int32(seedScore))

		var depthBestMove = seedMove
		var depthBestScore = seedScore

		var brotherSearchers = make([]*searcher, len(rootMoves))
		brotherSearchers[0] = seedSearcher

		var futures = make([]*pool.Future, 0, len(rootMoves)-1)
		for i := 1; i < len(rootMoves); i++ {
			var i = i
			var move = rootMoves[i]
			var table = tables[move]
			var brother = &searcher{evaluator: e.Evaluator.Evaluate, table: table}
			brotherSearchers[i] = brother

			future, err := e.pool.Submit(func() any {
				var child = board.ApplyMove(b, move, side)
				var a = int(alpha.Load())

				var probeScore, _ = brother.negamax(child, depth-1, -(a + 1), -a, side.Opponent())
				var score = -probeScore
				if score > a {
					var fullScore, _ = brother.negamax(child, depth-1, -infinity, -a, side.Opponent())
					score = -fullScore
				}

				for {
					var cur = alpha.Load()
					if int32(score) <= cur {
						break
					}
					if alpha.CompareAndSwap(cur, int32(score)) {
						break
					}
				}
				return rootResult{score: score, move: move}
			})
			if err != nil {
				// The engine never submits during shutdown; this branch is
				// unreachable in normal operation (§7).
				panic(err)
			}
			futures = append(futures, future)
		}

		for _, f := range futures {
			var res = f.Wait().(rootResult)
			if res.score > depthBestScore || (res.score == depthBestScore && res.move < depthBestMove) {
				depthBestScore = res.score
				depthBestMove = res.move
			}
		}

		for _, s := range brotherSearchers {
			e.NodesSearched.Add(s.nodes)
			e.CacheHits.Add(s.cacheHits)
		}

		bestMove, bestScore = depthBestMove, depthBestScore

		e.logger.Debug().
			Int("depth", depth).
			Int("score", bestScore).
			Int("move", bestMove).
			Uint64("nodes", e.NodesSearched.Load()).
			Dur("elapsed", time.Since(start)).
			Msg("iterative deepening depth completed")
	}

	return bestMove
}

