package search

import (
	"github.com/AlexXLi12/othello-engine/board"
	"github.com/AlexXLi12/othello-engine/tt"
)

// infinity bounds the alpha-beta window. It only needs to dwarf both
// the evaluator's typical range and the terminal score (§4.4 scales
// terminal scores by 100x the disc-difference margin, at most 6400),
// the same role VALUE_INFINITE plays in the teacher's search.
const infinity = 1 << 20

// searcher owns one per-root-move transposition table and its own
// node/cache-hit counters; §4.6/§5 give each root-parallel brother an
// exclusive table, so a searcher is never shared across goroutines.
type searcher struct {
	evaluator func(board.GameBoard) int
	table     *tt.Table
	nodes     uint64
	cacheHits uint64
}

// negamax implements §4.8's negamax(board, tt, depth, alpha, beta,
// side). It returns the score from side's perspective and the move
// that achieved it (tt.NoMove if none, e.g. at depth 0 or on a
// terminal position).
func (s *searcher) negamax(b board.GameBoard, depth, alpha, beta int, side board.Color) (int, int) {
	var alpha0 = alpha

	entry, hasEntry := s.table.Probe(b.Hash)
	if hasEntry && int(entry.Depth) >= depth {
		switch entry.Bound {
		case tt.Exact:
			s.cacheHits++
			return int(entry.Score), int(entry.BestMove)
		case tt.Lower:
			if int(entry.Score) >= beta {
				s.cacheHits++
				return int(entry.Score), int(entry.BestMove)
			}
		case tt.Upper:
			if int(entry.Score) <= alpha {
				s.cacheHits++
				return int(entry.Score), int(entry.BestMove)
			}
		}
	}

	if depth == 0 {
		s.nodes++
		return int(side) * s.evaluator(b), tt.NoMove
	}
	s.nodes++

	var moves = board.GetPossibleMoves(b, side)
	if moves == 0 {
		if board.GetPossibleMoves(b, side.Opponent()) == 0 {
			return board.TerminalScore(b, side), tt.NoMove
		}
		// Forced pass: depth is deliberately decremented even though a
		// pass is not a move, to bound cost in pathological pass chains.
		var childScore, _ = s.negamax(b, depth-1, -beta, -alpha, side.Opponent())
		return -childScore, tt.NoMove
	}

	var ordered = orderMoves(moves, entry, hasEntry)
	var bestScore = -infinity
	var bestMove = tt.NoMove

	for i, pos := range ordered {
		var child = board.ApplyMove(b, pos, side)
		var score int
		if i == 0 {
			var childScore, _ = s.negamax(child, depth-1, -beta, -alpha, side.Opponent())
			score = -childScore
		} else {
			var probeScore, _ = s.negamax(child, depth-1, -(alpha + 1), -alpha, side.Opponent())
			score = -probeScore
			if score > alpha {
				var fullScore, _ = s.negamax(child, depth-1, -beta, -alpha, side.Opponent())
				score = -fullScore
			}
		}

		if score > bestScore {
			bestScore = score
			bestMove = pos
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			break
		}
	}

	var bound tt.Bound
	switch {
	case bestScore <= alpha0:
		bound = tt.Upper
	case bestScore >= beta:
		bound = tt.Lower
	default:
		bound = tt.Exact
	}
	s.table.Store(b.Hash, tt.Entry{
		Score:    int32(bestScore),
		Depth:    uint8(depth),
		Bound:    bound,
		BestMove: int8(bestMove),
	})

	return bestScore, bestMove
}
