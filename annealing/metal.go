// SPDX-License-Identifier: MIT
// Package: anneal/annealing
//
// metal.go — the immutable per-step annealing state.

package annealing

import "fmt"

// Metal couples a solution with its energy and the temperature it was
// produced at. A Metal is never modified: Cool returns a new value, so a run
// can hold "current" and "best" without one disturbing the other.
//
// The energy is computed once, at construction, with the EnergyCalculator of
// the configuration the Metal was created for.
type Metal[S any] struct {
	solution    S
	energy      float64
	temperature float64

	// config is the resolved configuration of the run that produced this state.
	config *Configuration[S]
}

// NewMetal evaluates solution under config and returns the resulting state.
// config must have passed Validate.
func NewMetal[S any](solution S, temperature float64, config *Configuration[S]) Metal[S] {
	return Metal[S]{
		solution:    solution,
		energy:      config.energyCalculator(solution),
		temperature: temperature,
		config:      config,
	}
}

// Solution returns the candidate solution.
func (m Metal[S]) Solution() S { return m.solution }

// Energy returns the energy of Solution.
func (m Metal[S]) Energy() float64 { return m.energy }

// Temperature returns the temperature of the state.
func (m Metal[S]) Temperature() float64 { return m.temperature }

// LowerEnergy reports whether m has strictly lower energy than other.
func (m Metal[S]) LowerEnergy(other Metal[S]) bool {
	return m.energy < other.energy
}

// Cool performs one cooling step: the solution is perturbed at m's own
// temperature, re-evaluated, and stamped with newTemperature.
// On the zero Metal (as returned alongside a Run error) Cool returns m.
func (m Metal[S]) Cool(newTemperature float64) Metal[S] {
	if m.config == nil {
		return m
	}
	next := m.config.stateChange(m.solution, m.temperature)
	return NewMetal(next, newTemperature, m.config)
}

// String renders the state for logs and traces.
func (m Metal[S]) String() string {
	return fmt.Sprintf("solution=%v energy=%g temperature=%g", m.solution, m.energy, m.temperature)
}
