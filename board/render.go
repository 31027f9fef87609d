package board

import "strings"

// Render draws b as an 8x8 grid of '.', 'X', 'O' (empty, Black,
// White), marking every set bit of candidates with '*'. Rows run
// top-to-bottom, squares left-to-right within a row, each row
// newline-terminated. This is test-fixture vocabulary (§6): the core
// never calls it, only tests and the CLI do.
func Render(b GameBoard, candidates uint64) string {
	var sb strings.Builder
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			var bit = sq(r, c)
			switch {
			case b.Black&bit != 0:
				sb.WriteByte('X')
			case b.White&bit != 0:
				sb.WriteByte('O')
			case candidates&bit != 0:
				sb.WriteByte('*')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
