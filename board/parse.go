package board

import (
	"fmt"

	"github.com/AlexXLi12/othello-engine/zobrist"
)

// ErrInvalidGrid is returned by ParseGrid when its input isn't a
// well-formed 64-square grid.
var ErrInvalidGrid = fmt.Errorf("othello: grid must contain exactly 64 squares of '.', 'X', or 'O'")

// ParseGrid builds a GameBoard from a textual grid using Render's
// vocabulary ('.' empty, 'X' Black, 'O' White; '*' reads as an empty
// square and spaces and newlines are skipped, so ParseGrid accepts
// Render's own output unchanged).
// Squares are read left-to-right, top-to-bottom, matching Render's
// row/column order. Grounded on the teacher's NewPositionFromFEN
// (common/position.go): a rune-by-rune scan building occupancy,
// narrowed from FEN's run-length-encoded piece placement to one
// character per square.
func ParseGrid(grid string, turn Color) (GameBoard, error) {
	var black, white uint64
	var sq = 0
	for _, ch := range grid {
		switch ch {
		case '.', '*':
			sq++
		case 'X', 'x':
			black |= uint64(1) << uint(sq)
			sq++
		case 'O', 'o':
			white |= uint64(1) << uint(sq)
			sq++
		case '\n', '\r', ' ':
			continue
		default:
			return GameBoard{}, fmt.Errorf("%w: unexpected character %q", ErrInvalidGrid, ch)
		}
	}
	if sq != 64 {
		return GameBoard{}, fmt.Errorf("%w: got %d squares, want 64", ErrInvalidGrid, sq)
	}
	if black&white != 0 {
		return GameBoard{}, fmt.Errorf("%w: a square cannot hold both colors", ErrInvalidGrid)
	}

	return GameBoard{
		Black: black,
		White: white,
		Turn:  turn,
		Hash:  zobrist.Hash(black, white, turn == Black),
	}, nil
}
