package utils

import (
	"errors"
	"math"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartitionMap(t *testing.T) {
	{ // Bucket sizes
		getHisto := func(K, Np int) (histo map[int]int) {
			pm := NewPartitionMap(Np, K)
			histo = make(map[int]int)
			for np := 0; np < pm.ParallelDegree; np++ {
				kMin, kMax := pm.GetBucketRange(np)
				histo[kMax-kMin]++
			}
			return
		}
		getTotal := func(histo map[int]int) (total int) {
			for key, count := range histo {
				total += key * count
			}
			return
		}
		// Degree is clamped to the number of items
		assert.Equal(t, map[int]int{1: 2}, getHisto(2, 32))
		assert.Equal(t, map[int]int{1: 32}, getHisto(32, 32))
		assert.Equal(t, map[int]int{8: 32}, getHisto(256, 32))
		assert.Equal(t, map[int]int{8: 1, 9: 31}, getHisto(287, 32))
		assert.Equal(t, 287, getTotal(getHisto(287, 32)))
		for n := 64; n < 2000; n++ {
			var (
				keys   [2]float64
				keyNum int
			)
			histo := getHisto(n, 32)
			for key := range histo {
				keys[keyNum] = float64(key)
				keyNum++
			}
			if keyNum == 2 {
				assert.Equal(t, 1., math.Abs(keys[0]-keys[1])) // Maximum imbalance of 1
			}
			assert.Equal(t, n, getTotal(histo))
		}
	}
	{ // Default degree and empty ranges
		pm := NewPartitionMap(0, 1000)
		assert.True(t, pm.ParallelDegree >= 1)
		pm = NewPartitionMap(4, 0)
		assert.Equal(t, 1, pm.ParallelDegree)
		kMin, kMax := pm.GetBucketRange(0)
		assert.Equal(t, kMin, kMax)
		calls := 0
		require.NoError(t, pm.ForEachBucket(func(bn, kMin, kMax int) error {
			calls += kMax - kMin
			return nil
		}))
		assert.Zero(t, calls)
	}
}

func TestForEachBucket(t *testing.T) {
	var (
		pm    = NewPartitionMap(4, 103)
		seen  = make([]int32, 103)
		total int64
	)
	err := pm.ForEachBucket(func(bn, kMin, kMax int) error {
		for k := kMin; k < kMax; k++ {
			atomic.AddInt32(&seen[k], 1)
			atomic.AddInt64(&total, 1)
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, int64(103), total)
	for k := range seen {
		assert.Equal(t, int32(1), seen[k])
	}
	boom := errors.New("boom")
	err = pm.ForEachBucket(func(bn, kMin, kMax int) error {
		if bn == 2 {
			return boom
		}
		return nil
	})
	assert.ErrorIs(t, err, boom)
}
