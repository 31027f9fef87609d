package pool

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitRunsTaskAndReturnsResult(t *testing.T) {
	var p = New(4)
	defer p.Shutdown()

	future, err := p.Submit(func() any { return 42 })
	require.NoError(t, err)
	assert.Equal(t, 42, future.Wait())
}

func TestManyTasksAllComplete(t *testing.T) {
	var p = New(4)
	defer p.Shutdown()

	const n = 200
	var futures = make([]*Future, n)
	for i := 0; i < n; i++ {
		var i = i
		future, err := p.Submit(func() any { return i * i })
		require.NoError(t, err)
		futures[i] = future
	}
	for i, f := range futures {
		assert.Equal(t, i*i, f.Wait())
	}
}

func TestSubmitAfterShutdownFails(t *testing.T) {
	var p = New(2)
	p.Shutdown()
	_, err := p.Submit(func() any { return 1 })
	assert.ErrorIs(t, err, ErrPoolStopped)
}

func TestShutdownWaitsForQueueToDrain(t *testing.T) {
	var p = New(2)
	var completed atomic.Int32
	for i := 0; i < 20; i++ {
		_, err := p.Submit(func() any {
			completed.Add(1)
			return nil
		})
		require.NoError(t, err)
	}
	p.Shutdown()
	assert.Equal(t, int32(20), completed.Load())
}
