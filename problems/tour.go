// SPDX-License-Identifier: MIT
// Package: anneal/problems
//
// tour.go — travelling-salesman tours as an annealing problem.
//
// A solution is a permutation of {0..n-1} with route[0]==0; the tour is closed
// implicitly (last city → route[0]). The energy is the closed tour length.
//
// Contracts:
//   - dist is n×n with n ≥ 3, entries finite and ≥ 0; asymmetric matrices are
//     accepted, the segment reversal then changes more than two arcs.
//   - Perturb never mutates its input and never moves city 0.

package problems

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/anneal/annealing"
)

// Tour holds a validated distance matrix and the random source of its moves.
type Tour struct {
	dist [][]float64
	rng  *rand.Rand
}

// NewTour validates dist and returns a Tour seeded with seed.
//
// Errors:
//   - ErrBadMatrix — non-square, fewer than 3 cities, or a negative/NaN/Inf entry.
//
// Complexity: O(n²).
func NewTour(dist [][]float64, seed int64) (*Tour, error) {
	if err := validateDistances(dist); err != nil {
		return nil, err
	}
	return &Tour{dist: dist, rng: rngFromSeed(seed)}, nil
}

// Cities returns the number of cities.
func (t *Tour) Cities() int { return len(t.dist) }

// Initial returns the identity route 0,1,…,n-1.
func (t *Tour) Initial() []int {
	route := make([]int, len(t.dist))
	for i := range route {
		route[i] = i
	}
	return route
}

// Energy returns the closed length of route.
// Complexity: O(n).
func (t *Tour) Energy(route []int) float64 {
	var (
		n     = len(route)
		total float64
		i     int
	)
	for i = 0; i < n; i++ {
		total += t.dist[route[i]][route[(i+1)%n]]
	}
	return total
}

// Perturb returns a copy of route with a random segment reversed.
// The temperature is not used: every 2-opt move is equally likely.
// Complexity: O(n).
func (t *Tour) Perturb(route []int, _ float64) []int {
	next := make([]int, len(route))
	copy(next, route)

	i, j := segment(t.rng, len(next))
	for ; i < j; i, j = i+1, j-1 {
		next[i], next[j] = next[j], next[i]
	}
	return next
}

// ValidateRoute checks that route is a permutation of the cities starting at 0.
func (t *Tour) ValidateRoute(route []int) error {
	n := len(t.dist)
	if len(route) != n || route[0] != 0 {
		return ErrBadSolution
	}
	seen := make([]bool, n)
	for _, v := range route {
		if v < 0 || v >= n || seen[v] {
			return ErrBadSolution
		}
		seen[v] = true
	}
	return nil
}

// Options returns the tour's energy and its Metropolis-filtered perturbation.
func (t *Tour) Options() annealing.Options[[]int] {
	return annealing.Options[[]int]{
		EnergyCalculator: t.Energy,
		StateChange:      Metropolis(t.Energy, t.Perturb, t.rng),
	}
}

// validateDistances enforces the matrix contract of NewTour.
func validateDistances(dist [][]float64) error {
	n := len(dist)
	if n < 3 {
		return fmt.Errorf("%w: need at least 3 cities, got %d", ErrBadMatrix, n)
	}
	for i, row := range dist {
		if len(row) != n {
			return fmt.Errorf("%w: row %d has %d entries, want %d", ErrBadMatrix, i, len(row), n)
		}
		for j, d := range row {
			if d < 0 || math.IsNaN(d) || math.IsInf(d, 0) {
				return fmt.Errorf("%w: entry (%d,%d) = %v", ErrBadMatrix, i, j, d)
			}
		}
	}
	return nil
}

// EuclideanDistances builds a symmetric distance matrix from planar points.
func EuclideanDistances(points [][2]float64) [][]float64 {
	n := len(points)
	dist := make([][]float64, n)
	for i := range dist {
		dist[i] = make([]float64, n)
		for j := range dist[i] {
			dist[i][j] = math.Hypot(points[i][0]-points[j][0], points[i][1]-points[j][1])
		}
	}
	return dist
}
