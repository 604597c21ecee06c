// SPDX-License-Identifier: MIT
// Package: anneal/annealing
//
// errors.go — error kinds of the annealing engine.
//
// Error policy:
//   • ConfigurationError is the only validated failure mode of a run. It is
//     produced by Configuration.Validate before the first cooling step.
//   • Every ConfigurationError matches ErrConfiguration via errors.Is.
//   • Reasons are stable strings; tests compare them verbatim.
//   • Panics raised by strategy functions are never recovered here.

package annealing

import "errors"

// ErrConfiguration classifies every *ConfigurationError.
// Usage: if errors.Is(err, ErrConfiguration) { /* fix the options */ }.
var ErrConfiguration = errors.New("annealing: configuration error")

// ErrOptionDecode indicates an option map value of the wrong kind
// (e.g. a string for "coolingRate" or a func of a foreign signature).
var ErrOptionDecode = errors.New("annealing: cannot decode options")

// ErrUnknownStrategy indicates a cooler or terminator name that is not registered.
var ErrUnknownStrategy = errors.New("annealing: unknown strategy")

// Validation reasons, in the order Validate checks them.
const (
	ReasonMissingCoolDown             = "Missing cool down function"
	ReasonNegativeCoolingRate         = "Cooling rate cannot be negative"
	ReasonMissingEnergyCalculator     = "Missing energy calculator function"
	ReasonInvalidReturnBest           = "'Return best' specification must be either true or false"
	ReasonMissingStateChange          = "Missing state change function"
	ReasonNegativeTemperature         = "Initial temperature cannot be negative"
	ReasonMissingTerminationCondition = "Missing termination condition function"
)

// ConfigurationError reports the first failing check of Configuration.Validate.
type ConfigurationError struct {
	Reason string
}

// Error implements error.
func (e *ConfigurationError) Error() string {
	return "annealing: configuration: " + e.Reason
}

// Is makes errors.Is(err, ErrConfiguration) true for any ConfigurationError.
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}
