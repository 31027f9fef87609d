package search

import (
	"github.com/AlexXLi12/othello-engine/bitboard"
	"github.com/AlexXLi12/othello-engine/board"
	"github.com/AlexXLi12/othello-engine/tt"
)

// orderMoves returns the legal moves in moves ordered per §4.7:
// corners first, then edges, then interior squares, with the TT
// entry's best move (if present in the list) promoted to the very
// front. Within a class, square index breaks ties, so two calls on
// the same inputs always agree — §5 requires deterministic tie-breaks
// so the overall best-move return is reproducible across scheduling
// orders.
func orderMoves(moves uint64, hint tt.Entry, hasHint bool) []int {
	var corners, edges, interior []int
	for m := moves; m != 0; m &= m - 1 {
		var s = bitboard.Ctz(m)
		switch {
		case board.CornerMask&(uint64(1)<<uint(s)) != 0:
			corners = append(corners, s)
		case board.EdgeMask&(uint64(1)<<uint(s)) != 0:
			edges = append(edges, s)
		default:
			interior = append(interior, s)
		}
	}

	var ordered = make([]int, 0, len(corners)+len(edges)+len(interior))
	ordered = append(ordered, corners...)
	ordered = append(ordered, edges...)
	ordered = append(ordered, interior...)

	if hasHint && hint.BestMove != tt.NoMove {
		var hintMove = int(hint.BestMove)
		for i, m := range ordered {
			if m == hintMove {
				copy(ordered[1:i+1], ordered[0:i])
				ordered[0] = hintMove
				break
			}
		}
	}
	return ordered
}
