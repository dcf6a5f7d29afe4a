package entropy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInt_InclusiveBounds(t *testing.T) {
	src := NewSource(1)
	for i := 0; i < 1000; i++ {
		v := src.Int(3, 7)
		require.GreaterOrEqual(t, v, 3)
		require.LessOrEqual(t, v, 7)
	}
}

func TestInt_CollapsedRange(t *testing.T) {
	src := NewSource(1)
	for i := 0; i < 100; i++ {
		assert.Equal(t, 5, src.Int(5, 5))
	}
}

func TestInt_PanicsOnInvertedRange(t *testing.T) {
	src := NewSource(1)
	assert.Panics(t, func() { src.Int(7, 3) })
}

func TestBool_ProbabilityExtremes(t *testing.T) {
	src := NewSource(1)
	for i := 0; i < 100; i++ {
		assert.False(t, src.Bool(0))
		assert.True(t, src.Bool(1))
	}
}

func TestShuffle_PreservesElements(t *testing.T) {
	src := NewSource(42)
	values := []int{10, 20, 30, 40, 50}
	src.Shuffle(len(values), func(i, j int) {
		values[i], values[j] = values[j], values[i]
	})

	assert.ElementsMatch(t, []int{10, 20, 30, 40, 50}, values)
}

func TestDistribute_SumInvariant(t *testing.T) {
	src := NewSource(7)
	for _, n := range []int{1, 2, 3, 10, 100, 1000} {
		weights := make([]int, n)
		for i := range weights {
			weights[i] = 1
		}

		chunks := src.Distribute(weights, 3)
		require.NotEmpty(t, chunks)

		total := 0
		for _, chunk := range chunks {
			total += len(chunk)
		}
		assert.Equal(t, n, total, "chunk sizes must sum to the input size")
	}
}

func TestDistribute_SplitsMultipleWeights(t *testing.T) {
	// With more than one weight the first chunk never takes everything,
	// otherwise tree generation could recurse without shrinking.
	src := NewSource(3)
	for i := 0; i < 200; i++ {
		chunks := src.Distribute([]int{1, 1}, 3)
		assert.GreaterOrEqual(t, len(chunks), 2)
	}
}

func TestDistribute_ChunkSizeBounds(t *testing.T) {
	src := NewSource(11)
	weights := make([]int, 500)
	for i := range weights {
		weights[i] = 1
	}

	spread := 4
	chunks := src.Distribute(weights, spread)
	for _, chunk := range chunks {
		assert.GreaterOrEqual(t, len(chunk), 1)
		assert.LessOrEqual(t, len(chunk), 2*spread-1)
	}
}

func TestDistribute_PanicsOnBadSpread(t *testing.T) {
	src := NewSource(1)
	assert.Panics(t, func() { src.Distribute([]int{1, 1}, 0) })
}

func TestSource_DeterministicPerSeed(t *testing.T) {
	a := NewSource(99)
	b := NewSource(99)

	for i := 0; i < 100; i++ {
		require.Equal(t, a.Int(0, 1024), b.Int(0, 1024))
		require.Equal(t, a.Bool(0.3), b.Bool(0.3))
	}
}
