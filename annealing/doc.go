// Package annealing is a generic simulated-annealing engine.
//
// 🚀 What is simulated annealing?
//
//	Starting from a candidate solution, the engine repeatedly perturbs it,
//	re-scores it and lowers a temperature. The temperature is handed to the
//	perturbation, so early steps may roam widely while late steps stay local.
//	The search ends when a termination condition holds.
//
// ✨ Key features:
//   - Pluggable strategies: StateChange, EnergyCalculator, CoolDown and
//     TerminationCondition are plain functions over your own solution type S.
//   - Value-typed Configuration with Merge and a lazily-run, ordered Validate.
//   - Immutable per-step state (Metal); best-so-far tracking with an
//     opt-out (ReturnBest=false returns the final state instead).
//   - Option maps (map[string]any) decoded by OptionsFromMap, for YAML/JSON
//     driven runs.
//   - Read-only Hooks and slog logging for observability.
//
// ⚙️ Usage:
//
//	base := annealing.DefaultConfiguration[[]int]()
//	sim := annealing.NewSimulator(base, annealing.Options[[]int]{
//	  EnergyCalculator: tour.Energy,
//	  StateChange:      tour.Perturb,
//	  CoolingRate:      annealing.Float(1),
//	  Temperature:      annealing.Float(1000),
//	})
//
//	best, err := sim.Run(tour.Initial(), annealing.Options[[]int]{})
//	if errors.Is(err, annealing.ErrConfiguration) {
//	  // a strategy is missing or a parameter is negative
//	}
//	fmt.Println(best.Solution(), best.Energy())
//
// Concurrency:
//
//	Run is synchronous and keeps all loop state on its own stack. A single
//	Simulator may serve concurrent runs provided the strategy functions do
//	not share mutable state (e.g. one *rand.Rand per run).
//
// Complexity:
//
//	One strategy call of each kind per step; the step count is decided by
//	the cooler and the termination condition alone.
package annealing
