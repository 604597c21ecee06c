package runfile

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/anneal/annealing"
	"github.com/katalvlaran/anneal/internal/logging"
	"github.com/katalvlaran/anneal/problems"
	"github.com/katalvlaran/anneal/results"
)

// Solve builds the problem f names, anneals it and summarises the run.
// hooks observe the run; logger receives the engine's diagnostics.
//
// The run also stops when ctx is done; Solve then returns ctx.Err().
//
// Errors:
//   - ErrUnknownProblem, ErrBadCities, problems.Err* — invalid problem description.
//   - annealing.ErrUnknownStrategy, annealing.ErrOptionDecode — invalid options.
//   - *annealing.ConfigurationError — the merged configuration is incomplete.
func Solve(ctx context.Context, f File, hooks annealing.Hooks, logger *slog.Logger) (results.Record, error) {
	if err := ctx.Err(); err != nil {
		return results.Record{}, err
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	logger = logger.With("problem", f.Problem)

	switch f.Problem {
	case problems.NameTour:
		pts, err := f.points()
		if err != nil {
			return results.Record{}, err
		}
		tour, err := problems.NewTour(problems.EuclideanDistances(pts), f.Seed)
		if err != nil {
			return results.Record{}, err
		}
		return solve(ctx, f, tour.Options(), tour.Initial(), hooks, logger)

	case problems.NameRastrigin, problems.NameSphere:
		build := problems.NewRastrigin
		if f.Problem == problems.NameSphere {
			build = problems.NewSphere
		}
		c, err := build(f.Dimensions, f.Seed, f.temperature())
		if err != nil {
			return results.Record{}, err
		}
		return solve(ctx, f, c.Options(), c.Initial(), hooks, logger)

	default:
		return results.Record{}, fmt.Errorf("%w: %q", ErrUnknownProblem, f.Problem)
	}
}

// solve runs the engine with the problem's options as base and the file's
// options as overrides. The resolved termination condition is widened to
// also hold once ctx is done.
func solve[S any](ctx context.Context, f File, base annealing.Options[S], initial S, hooks annealing.Hooks, logger *slog.Logger) (results.Record, error) {
	m, err := OptionMap[S](f)
	if err != nil {
		return results.Record{}, err
	}
	overrides, err := annealing.OptionsFromMap[S](m)
	if err != nil {
		return results.Record{}, err
	}

	record := results.NewRecord(f.Problem)
	var finish annealing.RunFinishEvent
	hooks = annealing.ChainHooks(hooks, annealing.Hooks{
		OnRunFinish: func(e annealing.RunFinishEvent) { finish = e },
	})

	sim := annealing.NewSimulator(annealing.NewConfiguration(base), overrides,
		annealing.WithLogger(logger), annealing.WithHooks(hooks))
	config := sim.Configuration()
	if err := config.Validate(); err != nil {
		logger.Debug("annealing run rejected", "error", err)
		return results.Record{}, err
	}
	var done annealing.TerminationCondition[S] = func(S, float64, float64) bool { return ctx.Err() != nil }

	metal, err := sim.Run(initial, annealing.Options[S]{
		TerminationCondition: annealing.AnyOf(config.TerminationCondition(), done),
	})
	if err != nil {
		return results.Record{}, err
	}
	if err := ctx.Err(); err != nil {
		logger.Warn("annealing run interrupted", "steps", finish.Steps, "error", err)
		return results.Record{}, err
	}

	record.Steps = finish.Steps
	record.Energy = metal.Energy()
	record.Temperature = metal.Temperature()
	record.ReturnedBest = finish.ReturnedBest
	record.Duration = finish.Duration
	if err := record.SetSolution(metal.Solution()); err != nil {
		return results.Record{}, err
	}

	logger.Info("annealing run finished",
		"id", record.ID,
		"steps", record.Steps,
		"energy", record.Energy,
		"duration", record.Duration,
	)
	return record, nil
}
