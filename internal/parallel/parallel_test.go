package parallel

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestForCoversEntireRange(t *testing.T) {
	for _, n := range []int{1, 37, MinChunk, 3*MinChunk + 17} {
		counts := make([]int32, n)
		For(n, func(start, end int) {
			for i := start; i < end; i++ {
				atomic.AddInt32(&counts[i], 1)
			}
		})
		for i, c := range counts {
			require.EqualValues(t, 1, c, "n=%d index %d", n, i)
		}
	}
}

func TestForNoopOnNonPositive(t *testing.T) {
	called := false
	For(0, func(start, end int) {
		called = true
	})
	For(-3, func(start, end int) {
		called = true
	})
	require.False(t, called)
}

func TestForSmallRangeRunsInline(t *testing.T) {
	var calls int32
	For(MinChunk-1, func(start, end int) {
		atomic.AddInt32(&calls, 1)
		require.Equal(t, 0, start)
		require.Equal(t, MinChunk-1, end)
	})
	require.EqualValues(t, 1, calls)
}
