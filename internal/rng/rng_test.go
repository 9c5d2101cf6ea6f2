package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloat64Range(t *testing.T) {
	src, err := New()
	require.NoError(t, err)

	for i := 0; i < 10000; i++ {
		v := src.Float64()
		require.GreaterOrEqual(t, v, 0.0)
		require.Less(t, v, 1.0)
	}
}

func TestFloat64RoughlyUniform(t *testing.T) {
	src, err := New()
	require.NoError(t, err)

	const trials = 20000
	var below int
	for i := 0; i < trials; i++ {
		if src.Float64() < 0.5 {
			below++
		}
	}
	// ±5% of an even split
	assert.InDelta(t, trials/2, below, 0.05*trials)
}

func TestPermIsPermutation(t *testing.T) {
	src, err := New()
	require.NoError(t, err)

	p := src.Perm(25)
	require.Len(t, p, 25)

	seen := make(map[int]bool, 25)
	for _, v := range p {
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 25)
		assert.False(t, seen[v], "duplicate %d", v)
		seen[v] = true
	}
}

func TestIntnRange(t *testing.T) {
	src, err := New()
	require.NoError(t, err)

	for i := 0; i < 1000; i++ {
		v := src.Intn(9)
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, 9)
	}
}
