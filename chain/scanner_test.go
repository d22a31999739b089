package chain

import (
	"sync/atomic"
	"testing"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitRange(t *testing.T) {
	cases := []struct {
		name string
		from uint64
		to   uint64
		size uint64
		want []BlockRange
	}{
		{"single batch", 100, 150, 100, []BlockRange{{100, 150}}},
		{"exact batches", 0, 19, 10, []BlockRange{{0, 9}, {10, 19}}},
		{"ragged tail", 5, 17, 5, []BlockRange{{5, 9}, {10, 14}, {15, 17}}},
		{"one block", 42, 42, 5000, []BlockRange{{42, 42}}},
		{"empty range", 10, 9, 100, nil},
		{"zero size", 0, 10, 0, nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, SplitRange(c.from, c.to, c.size))
		})
	}
}

func TestSplitRangeCoversEveryBlockOnce(t *testing.T) {
	ranges := SplitRange(1000, 23456, 5000)
	require.NotEmpty(t, ranges)
	next := uint64(1000)
	for _, r := range ranges {
		require.Equal(t, next, r.From)
		require.GreaterOrEqual(t, r.To, r.From)
		next = r.To + 1
	}
	require.Equal(t, uint64(23457), next)
}

func TestStartWorkersDrainsJobs(t *testing.T) {
	jobs := make(chan types.Log, 64)
	var n int64
	wg := StartWorkers(4, jobs, func(types.Log) {
		atomic.AddInt64(&n, 1)
	})
	for i := 0; i < 50; i++ {
		jobs <- types.Log{BlockNumber: uint64(i)}
	}
	close(jobs)
	wg.Wait()
	assert.Equal(t, int64(50), atomic.LoadInt64(&n))
}
