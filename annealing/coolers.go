// SPDX-License-Identifier: MIT
// Package: anneal/annealing
//
// coolers.go — stock cooling schedules.
//
// Only Linear reaches zero on its own. Pair the others with
// TemperatureBelow or EnergyBelow, otherwise TemperatureIsZero never holds.

package annealing

import (
	"fmt"
	"math"
)

// Cooler names understood by CoolerByName.
const (
	CoolerLinear      = "linear"
	CoolerExponential = "exponential"
	CoolerGeometric   = "geometric"
)

// Linear subtracts the cooling rate at every step: T' = T − rate.
func Linear() CoolDown {
	return func(_, temperature, coolingRate float64, _ int) float64 {
		return temperature - coolingRate
	}
}

// Exponential decays the temperature by e^(−rate) per step: T' = T·e^(−rate).
func Exponential() CoolDown {
	return func(_, temperature, coolingRate float64, _ int) float64 {
		return temperature * math.Exp(-coolingRate)
	}
}

// Geometric keeps a (1 − rate) fraction per step: T' = T·(1 − rate).
// The rate is expected in [0,1].
func Geometric() CoolDown {
	return func(_, temperature, coolingRate float64, _ int) float64 {
		return temperature * (1 - coolingRate)
	}
}

// Logarithmic follows T(k) = initial / (1 + rate·ln(1 + k)) for step k,
// independent of the previous temperature.
func Logarithmic(initial float64) CoolDown {
	return func(_, _, coolingRate float64, steps int) float64 {
		return initial / (1 + coolingRate*math.Log1p(float64(steps)))
	}
}

// CoolerByName resolves one of the Cooler* names.
//
// Errors:
//   - ErrUnknownStrategy — name is not registered.
func CoolerByName(name string) (CoolDown, error) {
	switch name {
	case CoolerLinear:
		return Linear(), nil
	case CoolerExponential:
		return Exponential(), nil
	case CoolerGeometric:
		return Geometric(), nil
	default:
		return nil, fmt.Errorf("%w: cooler %q", ErrUnknownStrategy, name)
	}
}
