// Package entropy supplies all randomness consumed by tree generation and
// mutation. Every draw goes through a Source so that a fixed seed produces
// a byte-for-byte reproducible sequence of trees.
package entropy

import (
	"math/rand"
)

// Source is the randomness contract. Implementations must be deterministic
// for a fixed seed: the same call sequence yields the same results.
type Source interface {
	// Int returns a uniform integer in [min, max], both bounds inclusive.
	Int(min, max int) int

	// Bool returns true with the given probability in [0, 1].
	Bool(probability float64) bool

	// Shuffle randomly permutes n elements via the swap callback.
	Shuffle(n int, swap func(i, j int))

	// Distribute partitions the given unit weights into randomly sized
	// chunks. Chunk sizes always sum to len(weights), the result is never
	// empty, and when more than one weight is supplied there are always at
	// least two chunks. Spread is the mean chunk size: sizes are drawn
	// uniformly from [1, 2*spread-1].
	Distribute(weights []int, spread int) [][]int
}

type seeded struct {
	rng *rand.Rand
}

// NewSource returns a Source backed by math/rand with the given seed.
func NewSource(seed int64) Source {
	return &seeded{rng: rand.New(rand.NewSource(seed))}
}

func (s *seeded) Int(min, max int) int {
	if max < min {
		panic("entropy: Int called with max < min")
	}
	return min + s.rng.Intn(max-min+1)
}

func (s *seeded) Bool(probability float64) bool {
	return s.rng.Float64() < probability
}

func (s *seeded) Shuffle(n int, swap func(i, j int)) {
	s.rng.Shuffle(n, swap)
}

func (s *seeded) Distribute(weights []int, spread int) [][]int {
	if spread < 1 {
		panic("entropy: Distribute called with spread < 1")
	}

	total := len(weights)
	if total == 0 {
		return [][]int{{}}
	}

	var chunks [][]int
	offset := 0
	for offset < total {
		size := s.Int(1, 2*spread-1)
		remaining := total - offset

		// The first chunk never swallows the whole input, so the tree
		// generator always fans out when it has more than one weight.
		if offset == 0 && total > 1 && size >= total {
			size = total - 1
		}
		if size > remaining {
			size = remaining
		}

		chunks = append(chunks, weights[offset:offset+size])
		offset += size
	}
	return chunks
}
