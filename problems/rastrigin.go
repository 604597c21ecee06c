// SPDX-License-Identifier: MIT
// Package: anneal/problems
//
// rastrigin.go — continuous benchmark functions on a bounded box.
//
// Rastrigin: f(x) = 10·d + Σ (xᵢ² − 10·cos(2π·xᵢ)), global minimum 0 at x = 0,
// with a regular lattice of local minima that trap greedy search.
// Sphere:    f(x) = Σ xᵢ², a single basin.

package problems

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/anneal/annealing"
)

// Bound is the half-width of the search box [-Bound, Bound]^d.
const Bound = 5.12

// minStepScale keeps the step from vanishing as the temperature nears zero.
const minStepScale = 1e-3

// Continuous is a d-dimensional minimisation problem on [-Bound, Bound]^d.
type Continuous struct {
	dim       int
	energy    func([]float64) float64
	reference float64
	rng       *rand.Rand
}

// NewRastrigin returns the Rastrigin problem in dim dimensions.
// reference is the temperature at which steps span the whole box; pass the
// run's initial temperature (0 ⇒ annealing.DefaultTemperature).
//
// Errors:
//   - ErrBadDimension — dim < 1.
func NewRastrigin(dim int, seed int64, reference float64) (*Continuous, error) {
	return newContinuous(dim, seed, reference, Rastrigin)
}

// NewSphere returns the sphere problem in dim dimensions; see NewRastrigin.
func NewSphere(dim int, seed int64, reference float64) (*Continuous, error) {
	return newContinuous(dim, seed, reference, Sphere)
}

func newContinuous(dim int, seed int64, reference float64, energy func([]float64) float64) (*Continuous, error) {
	if dim < 1 {
		return nil, ErrBadDimension
	}
	if reference <= 0 {
		reference = annealing.DefaultTemperature
	}
	return &Continuous{
		dim:       dim,
		energy:    energy,
		reference: reference,
		rng:       rngFromSeed(seed),
	}, nil
}

// Rastrigin evaluates the Rastrigin function.
func Rastrigin(x []float64) float64 {
	total := 10 * float64(len(x))
	for _, v := range x {
		total += v*v - 10*math.Cos(2*math.Pi*v)
	}
	return total
}

// Sphere evaluates Σ xᵢ².
func Sphere(x []float64) float64 {
	var total float64
	for _, v := range x {
		total += v * v
	}
	return total
}

// Dimensions returns d.
func (c *Continuous) Dimensions() int { return c.dim }

// Initial draws a uniform point of the box.
func (c *Continuous) Initial() []float64 {
	x := make([]float64, c.dim)
	for i := range x {
		x[i] = (2*c.rng.Float64() - 1) * Bound
	}
	return x
}

// Energy evaluates x.
func (c *Continuous) Energy(x []float64) float64 {
	return c.energy(x)
}

// Perturb returns a copy of x with one random coordinate moved by a uniform
// step of width 2·Bound·max(√(T/reference), minStepScale), clamped to the box.
func (c *Continuous) Perturb(x []float64, temperature float64) []float64 {
	next := make([]float64, len(x))
	copy(next, x)

	scale := minStepScale
	if temperature > 0 {
		scale = math.Max(math.Min(math.Sqrt(temperature/c.reference), 1), minStepScale)
	}

	k := c.rng.Intn(len(next))
	next[k] += (2*c.rng.Float64() - 1) * Bound * scale
	next[k] = math.Max(-Bound, math.Min(Bound, next[k]))
	return next
}

// Options returns the problem's energy and its Metropolis-filtered perturbation.
func (c *Continuous) Options() annealing.Options[[]float64] {
	return annealing.Options[[]float64]{
		EnergyCalculator: c.Energy,
		StateChange:      Metropolis(c.Energy, c.Perturb, c.rng),
	}
}
