package search

import (
	"testing"
	"time"

	"github.com/AlexXLi12/othello-engine/board"
	"github.com/AlexXLi12/othello-engine/eval"
	"github.com/AlexXLi12/othello-engine/tt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTableForTest() *tt.Table {
	return tt.New(1 << 10)
}

func TestNegamaxDepth1AgreesWithEvaluator(t *testing.T) {
	var b = board.CreateInitialBoard()
	var evaluator = eval.NewWeightedEvaluator()
	var s = &searcher{evaluator: evaluator.Evaluate, table: newTableForTest()}

	var moves = board.GetPossibleMoves(b, board.Black)
	var best = -infinity
	for m := moves; m != 0; m &= m - 1 {
		var pos = firstSet(m)
		var child = board.ApplyMove(b, pos, board.Black)
		var v = -int(board.White) * evaluator.Evaluate(child)
		if v > best {
			best = v
		}
	}

	var score, _ = s.negamax(b, 1, -infinity, infinity, board.Black)
	assert.Equal(t, best, score)
}

func TestNegamaxTerminalScoreMatchesBoardTerminalScore(t *testing.T) {
	var b = board.GameBoard{Black: ^uint64(0), White: 0}
	var s = &searcher{evaluator: eval.NewWeightedEvaluator().Evaluate, table: newTableForTest()}
	var score, move = s.negamax(b, 4, -infinity, infinity, board.Black)
	require.Equal(t, -1, move)
	assert.Equal(t, board.TerminalScore(b, board.Black), score)
}

func TestFindBestMoveReturnsALegalMove(t *testing.T) {
	var engine = NewEngine(eval.NewWeightedEvaluator(), Options{PoolSize: 2, TTCapacity: 1 << 10})
	defer engine.Close()

	var b = board.CreateInitialBoard()
	var move = engine.FindBestMove(b, 4, board.Black, time.Second)
	require.NotEqual(t, -1, move)
	assert.True(t, board.IsValidMove(b, move, board.Black))
}

func TestFindBestMoveReturnsMinusOneWithNoLegalMoves(t *testing.T) {
	var engine = NewEngine(eval.NewWeightedEvaluator(), Options{PoolSize: 1, TTCapacity: 1 << 10})
	defer engine.Close()

	var b = board.GameBoard{Black: ^uint64(0), White: 0}
	var move = engine.FindBestMove(b, 4, board.Black, time.Second)
	assert.Equal(t, -1, move)
}

// TestFindBestMoveDeterministicAcrossPoolSizes is the property-based
// test from spec §8: the chosen move at a fixed depth must not depend
// on the degree of root-level parallelism.
func TestFindBestMoveDeterministicAcrossPoolSizes(t *testing.T) {
	var b = board.GameBoard{Black: 0x000010100C000000, White: 0x0000080830000000, Turn: board.Black}
	var evaluator = eval.NewWeightedEvaluator()

	var want = -2
	for _, poolSize := range []int{1, 2, 4, 8} {
		var engine = NewEngine(evaluator, Options{PoolSize: poolSize, TTCapacity: 1 << 12})
		var move = engine.FindBestMove(b, 5, board.Black, 5*time.Second)
		engine.Close()

		if want == -2 {
			want = move
		} else {
			assert.Equal(t, want, move, "pool size %d disagreed with pool size 1", poolSize)
		}
	}
}

func TestFindBestMoveDiagnosticCountersAdvance(t *testing.T) {
	var engine = NewEngine(eval.NewWeightedEvaluator(), Options{PoolSize: 4, TTCapacity: 1 << 10})
	defer engine.Close()

	var b = board.CreateInitialBoard()
	engine.FindBestMove(b, 3, board.Black, time.Second)
	assert.Greater(t, engine.NodesSearched.Load(), uint64(0))
}

func firstSet(x uint64) int {
	var n = 0
	for x&1 == 0 {
		x >>= 1
		n++
	}
	return n
}
