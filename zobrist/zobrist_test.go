package zobrist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashDeterministic(t *testing.T) {
	var black, white uint64 = 0x0000000810000000, 0x0000001008000000
	assert.Equal(t, Hash(black, white, true), Hash(black, white, true))
}

func TestHashSensitiveToTurn(t *testing.T) {
	var black, white uint64 = 0x0000000810000000, 0x0000001008000000
	assert.NotEqual(t, Hash(black, white, true), Hash(black, white, false))
}

func TestHashSensitiveToOccupancy(t *testing.T) {
	var black, white uint64 = 0x0000000810000000, 0x0000001008000000
	assert.NotEqual(t, Hash(black, white, true), Hash(black|1, white, true))
}

func TestSquareKeysAreDistinct(t *testing.T) {
	assert.NotEqual(t, Squares[0][Black], Squares[0][White])
	assert.NotEqual(t, Squares[0][Black], Squares[1][Black])
}
