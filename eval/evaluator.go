// Package eval defines the static position evaluator the search core
// consumes and a concrete weighted implementation. Grounded on the
// teacher's material evaluator (pkg/eval/material/evaluation.go): a
// linear combination of signed popcount differences, generalized from
// piece-type regions to Othello's board regions plus a mobility term.
package eval

import (
	"github.com/AlexXLi12/othello-engine/bitboard"
	"github.com/AlexXLi12/othello-engine/board"
)

// Evaluator is a pure function from a position to a signed score,
// positive meaning Black is ahead (§4.5). Implementations must be
// referentially transparent and must not read or mutate search
// state.
type Evaluator interface {
	Evaluate(b board.GameBoard) int
}

// EvaluatorFunc adapts a plain function to Evaluator, the way the
// teacher's EvaluatorAdapter wraps a bare Evaluate method (pkg/engine/engine.go).
type EvaluatorFunc func(b board.GameBoard) int

func (f EvaluatorFunc) Evaluate(b board.GameBoard) int {
	return f(b)
}

// Weights of a WeightedEvaluator. Concrete values are a quality
// tuning parameter, not part of the core's contract (§4.5) — these
// mirror the classic corner-good/X-and-C-square-bad/mobility-matters
// shape without claiming to be tournament-tuned.
type Weights struct {
	Corner   int
	XSquare  int
	CSquare  int
	BSquare  int
	Center   int
	Mobility int
}

// DefaultWeights is a reasonable, untuned starting point.
var DefaultWeights = Weights{
	Corner:   25,
	XSquare:  -12,
	CSquare:  -6,
	BSquare:  2,
	Center:   1,
	Mobility: 3,
}

// WeightedEvaluator scores a position as a weighted sum of
// region-popcount differences and a mobility differential.
type WeightedEvaluator struct {
	Weights Weights
}

// NewWeightedEvaluator builds an evaluator with DefaultWeights.
func NewWeightedEvaluator() *WeightedEvaluator {
	return &WeightedEvaluator{Weights: DefaultWeights}
}

func regionDiff(b board.GameBoard, mask uint64) int {
	return bitboard.PopCount(b.Black&mask) - bitboard.PopCount(b.White&mask)
}

// Evaluate implements Evaluator.
func (e *WeightedEvaluator) Evaluate(b board.GameBoard) int {
	var w = e.Weights
	var score = 0
	score += w.Corner * regionDiff(b, board.CornerMask)
	score += w.XSquare * regionDiff(b, board.XSquareMask)
	score += w.CSquare * regionDiff(b, board.CSquareMask)
	score += w.BSquare * regionDiff(b, board.BSquareMask)
	score += w.Center * regionDiff(b, board.CenterMask)

	var blackMoves = bitboard.PopCount(board.GetPossibleMoves(b, board.Black))
	var whiteMoves = bitboard.PopCount(board.GetPossibleMoves(b, board.White))
	score += w.Mobility * (blackMoves - whiteMoves)

	return score
}
