// Package problems provides ready-made strategy sets for the annealing engine.
//
// Problems:
//   - Tour      — closed travelling-salesman tour over a distance matrix;
//     solution type []int (a permutation starting at city 0),
//     perturbation = random segment reversal (a 2-opt move).
//   - Rastrigin — continuous minimisation of the Rastrigin function on
//     [-5.12, 5.12]^d; solution type []float64, perturbation = one
//     coordinate nudged by a temperature-scaled step.
//
// Every problem owns a seeded *rand.Rand: equal seeds give equal runs.
// A problem value is NOT safe for concurrent use; build one per goroutine.
//
// Usage:
//
//	tour, err := problems.NewTour(dist, 42)
//	sim := annealing.NewSimulator(annealing.DefaultConfiguration[[]int](), tour.Options())
//	best, err := sim.Run(tour.Initial(), annealing.Options[[]int]{})
package problems
