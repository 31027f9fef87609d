// Package board implements the Othello bitboard representation: move
// generation, move application with incremental Zobrist hashing, and
// terminal-position scoring. Grounded on the teacher's Position type
// and MakeMove (common/position.go, common/movegen.go), generalized
// from chess's piece-type bitboards to Othello's two-color occupancy
// bitboards.
package board

import (
	"errors"

	"github.com/AlexXLi12/othello-engine/bitboard"
	"github.com/AlexXLi12/othello-engine/zobrist"
)

// Color is a side to move. The sign doubles as the negamax
// orientation multiplier: Black is positive, White is negative.
type Color int

const (
	Black Color = 1
	White Color = -1
)

// Opponent returns the other side.
func (c Color) Opponent() Color {
	return -c
}

func (c Color) zobristIndex() int {
	if c == Black {
		return zobrist.Black
	}
	return zobrist.White
}

// ErrIllegalMove is returned by TryApplyMove when pos is not a legal
// move for side on b. ApplyMove itself performs no such check — §7
// treats an illegal ApplyMove call as undefined behavior, and callers
// that cannot already guarantee legality should call TryApplyMove or
// IsValidMove instead.
var ErrIllegalMove = errors.New("othello: illegal move")

// GameBoard is an immutable snapshot of an Othello position: both
// players' occupancy bitboards, the side to move, and a Zobrist key
// consistent with (Black, White, Turn). Values are copied, never
// aliased.
type GameBoard struct {
	Black uint64
	White uint64
	Turn  Color
	Hash  uint64
}

// CreateInitialBoard returns the standard Othello starting position,
// Black to move.
func CreateInitialBoard() GameBoard {
	return GameBoard{
		Black: InitialBlack,
		White: InitialWhite,
		Turn:  Black,
		Hash:  zobrist.Hash(InitialBlack, InitialWhite, true),
	}
}

func own(b GameBoard, side Color) (me, op uint64) {
	if side == Black {
		return b.Black, b.White
	}
	return b.White, b.Black
}

// GetPossibleMoves returns the bitboard of squares into which side
// may legally play.
func GetPossibleMoves(b GameBoard, side Color) uint64 {
	var me, op = own(b, side)
	var empty = ^(me | op)
	var moves uint64
	for _, d := range bitboard.AllDirections {
		moves |= movesInDirection(me, op, empty, d)
	}
	return moves
}

// movesInDirection finds legal targets reached by flipping a run of
// opponent discs in direction d (§4.2). A run is at most six discs
// long on an 8x8 board, hence the five-step flood fill.
func movesInDirection(me, op, empty uint64, d bitboard.Direction) uint64 {
	var t = bitboard.Shift(me, d) & op
	for i := 0; i < 5; i++ {
		t |= bitboard.Shift(t, d) & op
	}
	return bitboard.Shift(t, d) & empty
}

// IsValidMove reports whether pos is a legal move for side on b.
func IsValidMove(b GameBoard, pos int, side Color) bool {
	return GetPossibleMoves(b, side)&(uint64(1)<<pos) != 0
}

// flips returns the bitboard of opponent discs captured by playing
// pos as side, the union of the eight directional walks of §4.2.
func flips(me, op uint64, pos int) uint64 {
	var result uint64
	for _, d := range bitboard.AllDirections {
		result |= flipsInDirection(me, op, pos, d)
	}
	return result
}

func flipsInDirection(me, op uint64, pos int, d bitboard.Direction) uint64 {
	var acc uint64
	var m = bitboard.Shift(uint64(1)<<uint(pos), d)
	for m != 0 {
		if m&op != 0 {
			acc |= m
			m = bitboard.Shift(m, d)
			continue
		}
		if m&me != 0 {
			return acc
		}
		return 0 // ran into an empty square: nothing flips this way
	}
	return 0 // ran off the board
}

// ApplyMove plays pos for side and returns the successor board. The
// caller guarantees pos is legal for side on b; callers that cannot
// already guarantee this must call IsValidMove (or TryApplyMove)
// first, per §7.
func ApplyMove(b GameBoard, pos int, side Color) GameBoard {
	var me, op = own(b, side)
	var flipped = flips(me, op, pos)
	var newMe = me | (uint64(1) << uint(pos)) | flipped
	var newOp = op &^ flipped

	var newBlack, newWhite uint64
	if side == Black {
		newBlack, newWhite = newMe, newOp
	} else {
		newBlack, newWhite = newOp, newMe
	}

	var next = side.Opponent()
	var succ = GameBoard{Black: newBlack, White: newWhite}
	if GetPossibleMoves(succ, next) == 0 && GetPossibleMoves(succ, side) != 0 {
		next = side // forced pass: opponent has no move, side moves again
	}

	var h = b.Hash
	h ^= zobrist.Squares[pos][side.zobristIndex()]
	for f := flipped; f != 0; f &= f - 1 {
		var s = bitboard.Ctz(f)
		h ^= zobrist.Squares[s][side.zobristIndex()] ^ zobrist.Squares[s][side.Opponent().zobristIndex()]
	}
	if next != side {
		h ^= zobrist.BlackToMove
	}

	succ.Turn, succ.Hash = next, h
	return succ
}

// TryApplyMove validates pos before applying it, returning
// ErrIllegalMove rather than producing an undefined result. It is a
// convenience for collaborators (tests, the CLI) that do not already
// know the move is legal.
func TryApplyMove(b GameBoard, pos int, side Color) (GameBoard, error) {
	if !IsValidMove(b, pos, side) {
		return GameBoard{}, ErrIllegalMove
	}
	return ApplyMove(b, pos, side), nil
}

// CountDiscs returns the number of Black and White discs on the
// board.
func CountDiscs(b GameBoard) (black, white int) {
	return bitboard.PopCount(b.Black), bitboard.PopCount(b.White)
}

// IsTerminal reports whether neither side has a legal move.
func IsTerminal(b GameBoard) bool {
	return GetPossibleMoves(b, Black) == 0 && GetPossibleMoves(b, White) == 0
}

// TerminalScore is the negamax-oriented score of a terminal position
// from side's perspective (§4.4): large enough that it dominates any
// heuristic evaluation, signed so the mover's disc-count margin
// determines the sign.
func TerminalScore(b GameBoard, side Color) int {
	var black, white = CountDiscs(b)
	return int(side) * 100 * (black - white)
}
