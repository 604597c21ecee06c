// SPDX-License-Identifier: MIT
// Package: anneal/problems
//
// metropolis.go — probabilistic acceptance as a StateChange decorator.
//
// The engine takes whatever StateChange returns. Metropolis turns a raw
// proposal into the classic acceptance rule:
//   - a candidate with lower or equal energy is always taken;
//   - a worse one is taken with probability exp(−Δ/T);
//   - at T ≤ 0 only non-worsening candidates are taken.

package problems

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/anneal/annealing"
)

// Metropolis wraps propose so that worse candidates are accepted with the
// Boltzmann probability at the current temperature. rng must not be shared
// across goroutines.
func Metropolis[S any](energy annealing.EnergyCalculator[S], propose annealing.StateChange[S], rng *rand.Rand) annealing.StateChange[S] {
	return func(current S, temperature float64) S {
		candidate := propose(current, temperature)
		if accept(energy(current), energy(candidate), temperature, rng) {
			return candidate
		}
		return current
	}
}

// accept applies the Metropolis criterion.
func accept(current, candidate, temperature float64, rng *rand.Rand) bool {
	if candidate <= current {
		return true
	}
	if temperature <= 0 {
		return false
	}
	return rng.Float64() < math.Exp(-(candidate-current)/temperature)
}
