// SPDX-License-Identifier: MIT
// Package: anneal/annealing
//
// types.go — strategy signatures and the option set of a Configuration.
//
// A nil strategy value means "not supplied". The engine never inspects the
// strategies beyond calling them.

package annealing

// StateChange perturbs a solution. It receives the temperature of the state
// being cooled (the pre-cooling temperature) and returns the next candidate.
// Implementations should return a fresh value rather than mutate their input.
type StateChange[S any] func(solution S, temperature float64) S

// EnergyCalculator scores a solution. Lower is better.
type EnergyCalculator[S any] func(solution S) float64

// CoolDown returns the temperature of the next step.
// steps is the 1-based index of the cooling step being produced.
type CoolDown func(energy, temperature, coolingRate float64, steps int) float64

// TerminationCondition reports whether the run is finished. It is evaluated
// on the current state before every cooling step, including the first.
type TerminationCondition[S any] func(solution S, energy, temperature float64) bool

// Recognised option-map keys.
const (
	KeyCoolDown             = "coolDown"
	KeyCoolingRate          = "coolingRate"
	KeyEnergyCalculator     = "energyCalculator"
	KeyReturnBest           = "returnBest"
	KeyStateChange          = "stateChange"
	KeyTemperature          = "temperature"
	KeyTerminationCondition = "terminationCondition"
)

// optionSet is a bitmask over the seven recognised keys.
type optionSet uint8

const (
	optCoolDown optionSet = 1 << iota
	optCoolingRate
	optEnergyCalculator
	optReturnBest
	optStateChange
	optTemperature
	optTerminationCondition
)

func (s optionSet) has(k optionSet) bool { return s&k != 0 }

// Options is a partial Configuration: every nil field is an absent key.
//
// Options is what NewConfiguration, Configuration.Merge, NewSimulator and
// Simulator.Run accept. Build it literally in Go code, or decode it from an
// option map with OptionsFromMap.
//
// Example:
//
//	opts := annealing.Options[[]int]{
//	  EnergyCalculator: tourLength,
//	  StateChange:      reverseSegment,
//	  Temperature:      annealing.Float(500),
//	  ReturnBest:       annealing.Bool(true),
//	}
type Options[S any] struct {
	CoolDown             CoolDown
	CoolingRate          *float64
	EnergyCalculator     EnergyCalculator[S]
	ReturnBest           *bool
	StateChange          StateChange[S]
	Temperature          *float64
	TerminationCondition TerminationCondition[S]

	// keys that were present in an option map but held an unusable value
	// (nil, non-callable strategy, non-boolean returnBest); surfaced by Validate.
	invalid optionSet
}

// IsEmpty reports whether no key is present.
func (o Options[S]) IsEmpty() bool {
	return o.CoolDown == nil &&
		o.CoolingRate == nil &&
		o.EnergyCalculator == nil &&
		o.ReturnBest == nil &&
		o.StateChange == nil &&
		o.Temperature == nil &&
		o.TerminationCondition == nil &&
		o.invalid == 0
}

// Float returns a pointer to v, for the numeric Options fields.
func Float(v float64) *float64 { return &v }

// Bool returns a pointer to v, for Options.ReturnBest.
func Bool(v bool) *bool { return &v }
