// SPDX-License-Identifier: MIT
// Package: anneal/annealing
//
// simulator.go — the annealing loop.

package annealing

import (
	"io"
	"log/slog"
	"time"
)

// SimulatorOption configures ambient behaviour of a Simulator (logging,
// hooks). It never changes the annealing semantics.
type SimulatorOption func(*simulatorSettings)

type simulatorSettings struct {
	logger *slog.Logger
	hooks  Hooks
}

// WithLogger sets the structured logger. Nil keeps the discarding default.
func WithLogger(logger *slog.Logger) SimulatorOption {
	return func(s *simulatorSettings) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithHooks registers observation hooks for every run of the Simulator.
func WithHooks(hooks Hooks) SimulatorOption {
	return func(s *simulatorSettings) {
		s.hooks = hooks
	}
}

// Simulator runs simulated annealing with a default configuration that
// individual runs may override.
//
// A Simulator holds no mutable state: Run may be called concurrently as long
// as the strategy functions themselves are safe to share.
type Simulator[S any] struct {
	config Configuration[S]
	logger *slog.Logger
	hooks  Hooks
}

// NewSimulator returns a Simulator whose default configuration is base merged
// with overrides. base is not modified and nothing is validated yet.
func NewSimulator[S any](base Configuration[S], overrides Options[S], opts ...SimulatorOption) *Simulator[S] {
	settings := simulatorSettings{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&settings)
	}

	return &Simulator[S]{
		config: base.Merge(overrides),
		logger: settings.logger,
		hooks:  settings.hooks,
	}
}

// Configuration returns the Simulator's default configuration.
func (s *Simulator[S]) Configuration() Configuration[S] {
	return s.config
}

// Run anneals initial and returns the resulting state.
//
// Algorithm:
//  1. Resolve the run configuration: the default one, merged with overrides
//     when overrides is not empty; then Validate it.
//  2. current = best = NewMetal(initial, T0); steps = 0.
//  3. While !terminationCondition(current): steps++;
//     T = coolDown(current.energy, current.temperature, rate, steps);
//     current = current.Cool(T); if current has lower energy than best, best = current.
//  4. With returnBest, return best's solution at current's temperature
//     (energy re-evaluated); otherwise return current.
//
// Errors:
//   - *ConfigurationError (errors.Is ErrConfiguration) — before any step runs.
//
// The loop has no step limit and no cancellation: a termination condition that
// never holds never returns.
func (s *Simulator[S]) Run(initial S, overrides Options[S]) (Metal[S], error) {
	runtime := s.config
	if !overrides.IsEmpty() {
		runtime = s.config.Merge(overrides)
	}
	if err := runtime.Validate(); err != nil {
		s.logger.Debug("annealing run rejected", "error", err)
		return Metal[S]{}, err
	}

	return s.anneal(initial, &runtime), nil
}

// anneal executes the loop on a validated configuration.
func (s *Simulator[S]) anneal(initial S, config *Configuration[S]) Metal[S] {
	var (
		started = time.Now()
		steps   int
		current = NewMetal(initial, config.temperature, config)
		best    = current
	)

	s.logger.Debug("annealing run started",
		"temperature", current.temperature,
		"energy", current.energy,
		"cooling_rate", config.coolingRate,
		"return_best", config.returnBest,
	)
	if s.hooks.OnRunStart != nil {
		s.hooks.OnRunStart(RunStartEvent{
			Temperature: current.temperature,
			Energy:      current.energy,
			CoolingRate: config.coolingRate,
			ReturnBest:  config.returnBest,
		})
	}

	for !config.terminationCondition(current.solution, current.energy, current.temperature) {
		steps++
		temperature := config.coolDown(current.energy, current.temperature, config.coolingRate, steps)
		current = current.Cool(temperature)

		improved := current.LowerEnergy(best)
		if improved {
			best = current
		}
		if s.hooks.OnStep != nil {
			s.hooks.OnStep(StepEvent{
				Step:        steps,
				Temperature: current.temperature,
				Energy:      current.energy,
				BestEnergy:  best.energy,
				Improved:    improved,
			})
		}
	}

	result := current
	if config.returnBest {
		result = NewMetal(best.solution, current.temperature, config)
	}

	elapsed := time.Since(started)
	s.logger.Debug("annealing run finished",
		"steps", steps,
		"energy", result.energy,
		"temperature", result.temperature,
		"duration", elapsed,
	)
	if s.hooks.OnRunFinish != nil {
		s.hooks.OnRunFinish(RunFinishEvent{
			Steps:        steps,
			Energy:       result.energy,
			Temperature:  result.temperature,
			ReturnedBest: config.returnBest,
			Duration:     elapsed,
		})
	}

	return result
}

// Simulate runs a one-off Simulator built from DefaultConfiguration and opts.
func Simulate[S any](initial S, opts Options[S]) (Metal[S], error) {
	return NewSimulator(DefaultConfiguration[S](), opts).Run(initial, Options[S]{})
}
