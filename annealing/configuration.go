// SPDX-License-Identifier: MIT
// Package: anneal/annealing
//
// configuration.go — the strategy set and scalar knobs of a run.
//
// Design:
//   • Configuration is a value: Merge copies, nothing is shared or mutated.
//   • Defaults are applied at construction; validation is deferred to Validate,
//     which the Simulator calls right before each run. A configuration may
//     therefore be built over several merges before its mandatory strategies
//     (EnergyCalculator, StateChange) are supplied.
//
// Deterministic defaults:
//   • coolDown             = Linear()
//   • coolingRate          = DefaultCoolingRate (0.0003)
//   • energyCalculator     = nil (mandatory)
//   • returnBest           = DefaultReturnBest (true)
//   • stateChange          = nil (mandatory)
//   • temperature          = DefaultTemperature (10000.0)
//   • terminationCondition = TemperatureIsZero()

package annealing

const (
	// DefaultCoolingRate is the rate handed to the cooler when none is given.
	DefaultCoolingRate = 0.0003
	// DefaultTemperature is the initial temperature when none is given.
	DefaultTemperature = 10000.0
	// DefaultReturnBest makes runs return the best state seen by default.
	DefaultReturnBest = true
)

// Configuration holds the strategies and parameters of an annealing run.
// The zero value is not useful; build one with NewConfiguration or
// DefaultConfiguration.
type Configuration[S any] struct {
	coolDown             CoolDown
	coolingRate          float64
	energyCalculator     EnergyCalculator[S]
	returnBest           bool
	stateChange          StateChange[S]
	temperature          float64
	terminationCondition TerminationCondition[S]

	invalid optionSet
}

// DefaultConfiguration returns a Configuration holding only the defaults.
// Applications typically build it once, adjust it with Merge, and hand it to
// every NewSimulator call.
func DefaultConfiguration[S any]() Configuration[S] {
	return Configuration[S]{
		coolDown:             Linear(),
		coolingRate:          DefaultCoolingRate,
		returnBest:           DefaultReturnBest,
		temperature:          DefaultTemperature,
		terminationCondition: TemperatureIsZero[S](),
	}
}

// NewConfiguration returns the defaults overridden by every key present in opts.
func NewConfiguration[S any](opts Options[S]) Configuration[S] {
	return DefaultConfiguration[S]().Merge(opts)
}

// Merge returns a new Configuration equal to c with every key present in opts
// replacing the corresponding field. c itself is left unchanged.
func (c Configuration[S]) Merge(opts Options[S]) Configuration[S] {
	next := c

	if opts.CoolDown != nil {
		next.coolDown = opts.CoolDown
		next.invalid &^= optCoolDown
	}
	if opts.CoolingRate != nil {
		next.coolingRate = *opts.CoolingRate
		next.invalid &^= optCoolingRate
	}
	if opts.EnergyCalculator != nil {
		next.energyCalculator = opts.EnergyCalculator
		next.invalid &^= optEnergyCalculator
	}
	if opts.ReturnBest != nil {
		next.returnBest = *opts.ReturnBest
		next.invalid &^= optReturnBest
	}
	if opts.StateChange != nil {
		next.stateChange = opts.StateChange
		next.invalid &^= optStateChange
	}
	if opts.Temperature != nil {
		next.temperature = *opts.Temperature
		next.invalid &^= optTemperature
	}
	if opts.TerminationCondition != nil {
		next.terminationCondition = opts.TerminationCondition
		next.invalid &^= optTerminationCondition
	}
	next.invalid |= opts.invalid

	return next
}

// Validate checks the configuration in a fixed order and reports the first
// failure as a *ConfigurationError:
//
//  1. cool down function present
//  2. cooling rate present and ≥ 0
//  3. energy calculator present
//  4. return-best flag is a boolean
//  5. state change function present
//  6. initial temperature present and ≥ 0
//  7. termination condition present
//
// It returns nil when every check passes.
func (c Configuration[S]) Validate() error {
	var reason string
	switch {
	case c.coolDown == nil || c.invalid.has(optCoolDown):
		reason = ReasonMissingCoolDown
	case c.coolingRate < 0 || c.invalid.has(optCoolingRate):
		reason = ReasonNegativeCoolingRate
	case c.energyCalculator == nil || c.invalid.has(optEnergyCalculator):
		reason = ReasonMissingEnergyCalculator
	case c.invalid.has(optReturnBest):
		reason = ReasonInvalidReturnBest
	case c.stateChange == nil || c.invalid.has(optStateChange):
		reason = ReasonMissingStateChange
	case c.temperature < 0 || c.invalid.has(optTemperature):
		reason = ReasonNegativeTemperature
	case c.terminationCondition == nil || c.invalid.has(optTerminationCondition):
		reason = ReasonMissingTerminationCondition
	default:
		return nil
	}
	return &ConfigurationError{Reason: reason}
}

// CoolDown returns the cooling function.
func (c Configuration[S]) CoolDown() CoolDown { return c.coolDown }

// CoolingRate returns the rate passed to the cooling function.
func (c Configuration[S]) CoolingRate() float64 { return c.coolingRate }

// EnergyCalculator returns the energy function (nil until supplied).
func (c Configuration[S]) EnergyCalculator() EnergyCalculator[S] { return c.energyCalculator }

// ReturnBest reports whether a run returns the best state instead of the final one.
func (c Configuration[S]) ReturnBest() bool { return c.returnBest }

// StateChange returns the perturbation function (nil until supplied).
func (c Configuration[S]) StateChange() StateChange[S] { return c.stateChange }

// Temperature returns the initial temperature.
func (c Configuration[S]) Temperature() float64 { return c.temperature }

// TerminationCondition returns the termination predicate.
func (c Configuration[S]) TerminationCondition() TerminationCondition[S] {
	return c.terminationCondition
}
