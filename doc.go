// Package anneal is a generic simulated-annealing toolkit.
//
// 🚀 What is in the box?
//
//	annealing/     — the engine: Configuration, Metal, Simulator, stock coolers & terminators
//	problems/      — ready-made problems (tour, Rastrigin, sphere) with Metropolis moves
//	observability/ — Prometheus collectors wired through run hooks
//	results/       — run records and their stores (memory, Redis)
//	cmd/anneal/    — CLI: solve run files, serve the HTTP API
//
// ✨ Quick example:
//
//	metal, err := annealing.Simulate(1.0, annealing.Options[float64]{
//		EnergyCalculator: func(x float64) float64 { return x * x },
//		StateChange:      func(x, t float64) float64 { return x / 2 },
//	})
//
//	go get github.com/katalvlaran/anneal
package anneal

// Version is the release of the module, reported by `anneal version`.
const Version = "0.1.0"
