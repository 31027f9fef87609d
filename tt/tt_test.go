package tt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProbeMiss(t *testing.T) {
	var table = New(16)
	_, ok := table.Probe(123)
	assert.False(t, ok)
}

func TestStoreThenProbeHit(t *testing.T) {
	var table = New(16)
	var entry = Entry{Score: 42, Depth: 5, Bound: Exact, BestMove: 19}
	table.Store(99, entry)
	got, ok := table.Probe(99)
	assert.True(t, ok)
	assert.Equal(t, entry, got)
}

func TestStoreUnconditionallyReplacesCollision(t *testing.T) {
	var table = New(2) // tiny table: forces a collision
	table.Store(0, Entry{Score: 1, Bound: Exact})
	table.Store(2, Entry{Score: 2, Bound: Exact}) // same slot as key 0 (mask=1)
	got, ok := table.Probe(2)
	assert.True(t, ok)
	assert.Equal(t, int32(2), got.Score)
	// key 0's slot was overwritten, so probing it now reports the new key's data absent
	_, ok = table.Probe(0)
	assert.False(t, ok)
}

func TestNoMoveSentinel(t *testing.T) {
	assert.Equal(t, -1, NoMove)
}

func TestLen(t *testing.T) {
	var table = New(16)
	assert.Equal(t, 0, table.Len())
	table.Store(1, Entry{})
	table.Store(2, Entry{})
	assert.Equal(t, 2, table.Len())
}
