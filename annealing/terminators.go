// SPDX-License-Identifier: MIT
// Package: anneal/annealing
//
// terminators.go — stock termination conditions.

package annealing

import "fmt"

// Terminator names understood by TerminatorByName.
const (
	TerminatorTemperatureIsZero = "temperature-is-zero"
	TerminatorTemperatureBelow  = "temperature-below"
	TerminatorEnergyBelow       = "energy-below"
)

// TemperatureIsZero stops once the temperature is at or below zero.
func TemperatureIsZero[S any]() TerminationCondition[S] {
	return func(_ S, _, temperature float64) bool {
		return temperature <= 0
	}
}

// TemperatureBelow stops once the temperature is at or below floor.
func TemperatureBelow[S any](floor float64) TerminationCondition[S] {
	return func(_ S, _, temperature float64) bool {
		return temperature <= floor
	}
}

// EnergyBelow stops once the energy is at or below target.
func EnergyBelow[S any](target float64) TerminationCondition[S] {
	return func(_ S, energy, _ float64) bool {
		return energy <= target
	}
}

// AnyOf stops as soon as one of conds holds. Nil entries are skipped.
func AnyOf[S any](conds ...TerminationCondition[S]) TerminationCondition[S] {
	return func(solution S, energy, temperature float64) bool {
		for _, cond := range conds {
			if cond != nil && cond(solution, energy, temperature) {
				return true
			}
		}
		return false
	}
}

// TerminatorByName resolves one of the Terminator* names; threshold feeds the
// thresholded ones and is ignored by TerminatorTemperatureIsZero.
//
// Errors:
//   - ErrUnknownStrategy — name is not registered.
func TerminatorByName[S any](name string, threshold float64) (TerminationCondition[S], error) {
	switch name {
	case TerminatorTemperatureIsZero:
		return TemperatureIsZero[S](), nil
	case TerminatorTemperatureBelow:
		return TemperatureBelow[S](threshold), nil
	case TerminatorEnergyBelow:
		return EnergyBelow[S](threshold), nil
	default:
		return nil, fmt.Errorf("%w: terminator %q", ErrUnknownStrategy, name)
	}
}
