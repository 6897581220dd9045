package augment

import "math/rand/v2"

// NewRNG builds the deterministic random source used by all stochastic
// transforms. A fresh generator is derived per Apply call so repeated calls
// with the same seed and input yield identical results.
func NewRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// SampleIndexes picks count distinct indexes out of [0, n) in ascending
// order, using rng for the draw. count is clamped to n.
func SampleIndexes(rng *rand.Rand, n, count int) []int {
	if count > n {
		count = n
	}
	if count <= 0 {
		return nil
	}

	perm := rng.Perm(n)[:count]
	picked := make([]int, len(perm))
	copy(picked, perm)

	// Ascending order keeps downstream edits position-stable.
	for i := 1; i < len(picked); i++ {
		for j := i; j > 0 && picked[j] < picked[j-1]; j-- {
			picked[j], picked[j-1] = picked[j-1], picked[j]
		}
	}
	return picked
}
