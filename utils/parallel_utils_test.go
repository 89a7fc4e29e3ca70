package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartitionMap(t *testing.T) {
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
	// More threads than cells collapses to one cell per thread
	assert.Equal(t, map[int]int{1: 2}, getHisto(2, 32))
	assert.Equal(t, map[int]int{1: 32}, getHisto(32, 32))
	assert.Equal(t, map[int]int{8: 32}, getHisto(256, 32))
	assert.Equal(t, map[int]int{8: 1, 9: 31}, getHisto(287, 32))
	assert.Equal(t, map[int]int{256: 1}, getHisto(256, 0))
	for n := 64; n < 2000; n++ {
		histo := getHisto(n, 7)
		assert.LessOrEqual(t, len(histo), 2) // Maximum imbalance of 1
		assert.Equal(t, n, getTotal(histo))
	}
	{ // Buckets are contiguous and cover the range
		pm := NewPartitionMap(5, 103)
		var next int
		for np := 0; np < pm.ParallelDegree; np++ {
			kMin, kMax := pm.GetBucketRange(np)
			assert.Equal(t, next, kMin)
			next = kMax
		}
		assert.Equal(t, 103, next)
	}
}
