// SPDX-License-Identifier: MIT
// Package: anneal/problems
//
// rng.go — deterministic random sources of the problems.
//
// Policy: seed==0 ⇒ defaultSeed; any other seed is used verbatim.
// math/rand.Rand is NOT goroutine-safe, hence one source per problem value.

package problems

import "math/rand"

// defaultSeed is the stable seed used when callers pass 0.
const defaultSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// segment draws 1 ≤ i < j ≤ n-1: a reversible stretch that never moves index 0.
// n must be at least 3.
func segment(rng *rand.Rand, n int) (i, j int) {
	i = 1 + rng.Intn(n-2)
	j = i + 1 + rng.Intn(n-1-i)
	return i, j
}
