package annealing_test

import (
	"bytes"
	"errors"
	"log/slog"
	"sync"
	"testing"

	"github.com/katalvlaran/anneal/annealing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// counting returns options for the pure counting scenario: T0=3, rate=1,
// linear cooling, stop at T<=0.
func counting(stateChange annealing.StateChange[int], energy annealing.EnergyCalculator[int]) annealing.Options[int] {
	return annealing.Options[int]{
		CoolDown:             annealing.Linear(),
		CoolingRate:          annealing.Float(1),
		Temperature:          annealing.Float(3),
		TerminationCondition: annealing.TemperatureIsZero[int](),
		StateChange:          stateChange,
		EnergyCalculator:     energy,
	}
}

func increment(x int, _ float64) int { return x + 1 }

// distanceToTwo has its minimum at x == 2.
func distanceToTwo(x int) float64 { return float64((x - 2) * (x - 2)) }

// TestRun_CountsExactlyThreeSteps checks termination determinism regardless
// of the strategies' content.
func TestRun_CountsExactlyThreeSteps(t *testing.T) {
	strategies := []struct {
		name   string
		change annealing.StateChange[int]
		energy annealing.EnergyCalculator[int]
	}{
		{"increment", increment, distanceToTwo},
		{"constant", func(int, float64) int { return 7 }, func(int) float64 { return 0 }},
		{"negate", func(x int, _ float64) int { return -x }, func(x int) float64 { return float64(x) }},
	}

	for _, st := range strategies {
		t.Run(st.name, func(t *testing.T) {
			var steps int
			sim := annealing.NewSimulator(
				annealing.DefaultConfiguration[int](),
				counting(st.change, st.energy),
				annealing.WithHooks(annealing.Hooks{
					OnRunFinish: func(e annealing.RunFinishEvent) { steps = e.Steps },
				}),
			)
			final, err := sim.Run(1, annealing.Options[int]{})
			require.NoError(t, err)
			assert.Equal(t, 3, steps)
			assert.Equal(t, 0.0, final.Temperature())
		})
	}
}

// TestRun_ReturnBestVersusFinal compares both result modes on the same
// deterministic trajectory 0 → 1 → 2 → 3.
func TestRun_ReturnBestVersusFinal(t *testing.T) {
	sim := annealing.NewSimulator(annealing.DefaultConfiguration[int](), counting(increment, distanceToTwo))

	best, err := sim.Run(0, annealing.Options[int]{})
	require.NoError(t, err)
	final, err := sim.Run(0, annealing.Options[int]{ReturnBest: annealing.Bool(false)})
	require.NoError(t, err)

	assert.Equal(t, 3, final.Solution())
	assert.Equal(t, 1.0, final.Energy())
	assert.Equal(t, 0.0, final.Temperature())

	assert.Equal(t, 2, best.Solution())
	assert.Equal(t, 0.0, best.Energy())
	// The best solution is reported at the final temperature, not its own (1).
	assert.Equal(t, 0.0, best.Temperature())
	assert.LessOrEqual(t, best.Energy(), final.Energy())
}

// TestRun_ReturnBestWhenFinalIsBest yields identical results in both modes.
func TestRun_ReturnBestWhenFinalIsBest(t *testing.T) {
	descending := func(x int) float64 { return float64(-x) }
	sim := annealing.NewSimulator(annealing.DefaultConfiguration[int](), counting(increment, descending))

	best, err := sim.Run(0, annealing.Options[int]{})
	require.NoError(t, err)
	final, err := sim.Run(0, annealing.Options[int]{ReturnBest: annealing.Bool(false)})
	require.NoError(t, err)

	assert.Equal(t, final.Solution(), best.Solution())
	assert.Equal(t, final.Energy(), best.Energy())
	assert.Equal(t, final.Temperature(), best.Temperature())
}

// TestRun_BestIsMonotone checks that the returned energy is not above any
// intermediate energy of the run.
func TestRun_BestIsMonotone(t *testing.T) {
	// A zig-zag energy over an increasing counter.
	zigzag := func(x int) float64 { return float64((x*7)%11) - 5 }

	var energies []float64
	sim := annealing.NewSimulator(annealing.DefaultConfiguration[int](), annealing.Options[int]{
		EnergyCalculator: zigzag,
		StateChange:      increment,
		CoolingRate:      annealing.Float(1),
		Temperature:      annealing.Float(40),
	}, annealing.WithHooks(annealing.Hooks{
		OnStep: func(e annealing.StepEvent) {
			energies = append(energies, e.Energy)
			assert.LessOrEqual(t, e.BestEnergy, e.Energy)
		},
	}))

	result, err := sim.Run(0, annealing.Options[int]{})
	require.NoError(t, err)
	require.Len(t, energies, 40)
	for _, e := range energies {
		assert.LessOrEqual(t, result.Energy(), e)
	}
	assert.Equal(t, -5.0, result.Energy())
}

// TestRun_TieKeepsIncumbent checks that an equal-energy state never replaces best.
func TestRun_TieKeepsIncumbent(t *testing.T) {
	flat := func(int) float64 { return 1 }
	sim := annealing.NewSimulator(annealing.DefaultConfiguration[int](), counting(increment, flat))

	var improved int
	result, err := sim.Run(10, annealing.Options[int]{}) // default ReturnBest
	require.NoError(t, err)
	assert.Equal(t, 10, result.Solution(), "the initial state stays best on ties")

	sim = annealing.NewSimulator(sim.Configuration(), annealing.Options[int]{}, annealing.WithHooks(annealing.Hooks{
		OnStep: func(e annealing.StepEvent) {
			if e.Improved {
				improved++
			}
		},
	}))
	_, err = sim.Run(10, annealing.Options[int]{})
	require.NoError(t, err)
	assert.Zero(t, improved)
}

// TestRun_TerminatesBeforeFirstStep evaluates the predicate on the initial state.
func TestRun_TerminatesBeforeFirstStep(t *testing.T) {
	calls := 0
	sim := annealing.NewSimulator(annealing.DefaultConfiguration[int](), annealing.Options[int]{
		EnergyCalculator: distanceToTwo,
		StateChange: func(x int, _ float64) int {
			calls++
			return x
		},
		Temperature: annealing.Float(0),
	})

	result, err := sim.Run(5, annealing.Options[int]{})
	require.NoError(t, err)
	assert.Zero(t, calls)
	assert.Equal(t, 5, result.Solution())
	assert.Equal(t, 9.0, result.Energy())
}

// TestRun_InvalidConfigurationRunsNothing checks fail-fast validation.
func TestRun_InvalidConfigurationRunsNothing(t *testing.T) {
	touched := false
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	sim := annealing.NewSimulator(annealing.DefaultConfiguration[int](), annealing.Options[int]{
		StateChange: func(x int, _ float64) int {
			touched = true
			return x
		},
	}, annealing.WithLogger(logger), annealing.WithHooks(annealing.Hooks{
		OnRunStart: func(annealing.RunStartEvent) { touched = true },
	}))

	_, err := sim.Run(0, annealing.Options[int]{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, annealing.ErrConfiguration))
	assert.Equal(t, annealing.ReasonMissingEnergyCalculator, reasonOf(t, err))
	assert.False(t, touched)
	assert.Contains(t, logs.String(), "annealing run rejected")

	// The same simulator succeeds once the run supplies the missing strategy.
	_, err = sim.Run(0, annealing.Options[int]{
		EnergyCalculator: distanceToTwo,
		Temperature:      annealing.Float(1),
		CoolingRate:      annealing.Float(1),
	})
	require.NoError(t, err)
	assert.True(t, touched)
}

// TestRun_OverridesDoNotLeak checks that per-run options never change the
// simulator's default configuration.
func TestRun_OverridesDoNotLeak(t *testing.T) {
	sim := annealing.NewSimulator(annealing.DefaultConfiguration[int](), counting(increment, distanceToTwo))

	_, err := sim.Run(0, annealing.Options[int]{Temperature: annealing.Float(10)})
	require.NoError(t, err)

	assert.Equal(t, 3.0, sim.Configuration().Temperature())
	assert.Equal(t, annealing.DefaultTemperature, annealing.DefaultConfiguration[int]().Temperature())
}

// TestRun_StrategyPanicsPropagate checks that the engine does not swallow panics.
func TestRun_StrategyPanicsPropagate(t *testing.T) {
	sim := annealing.NewSimulator(annealing.DefaultConfiguration[int](), counting(
		func(int, float64) int { panic("boom") },
		distanceToTwo,
	))

	assert.PanicsWithValue(t, "boom", func() {
		_, _ = sim.Run(0, annealing.Options[int]{})
	})
}

// TestRun_Concurrent runs one simulator from several goroutines.
func TestRun_Concurrent(t *testing.T) {
	sim := annealing.NewSimulator(annealing.DefaultConfiguration[int](), annealing.Options[int]{
		EnergyCalculator: distanceToTwo,
		StateChange:      increment,
		CoolingRate:      annealing.Float(1),
		Temperature:      annealing.Float(100),
	})

	const workers = 8
	var wg sync.WaitGroup
	results := make([]int, workers)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			m, err := sim.Run(-w, annealing.Options[int]{})
			assert.NoError(t, err)
			results[w] = m.Solution()
		}(w)
	}
	wg.Wait()

	for _, r := range results {
		assert.Equal(t, 2, r)
	}
}

// TestSimulate is the one-shot helper.
func TestSimulate(t *testing.T) {
	result, err := annealing.Simulate(0, counting(increment, distanceToTwo))
	require.NoError(t, err)
	assert.Equal(t, 2, result.Solution())

	_, err = annealing.Simulate(0, annealing.Options[int]{})
	assert.ErrorIs(t, err, annealing.ErrConfiguration)
}

// TestChainHooks calls members in order and skips nil ones.
func TestChainHooks(t *testing.T) {
	var order []string
	h := annealing.ChainHooks(
		annealing.Hooks{OnStep: func(annealing.StepEvent) { order = append(order, "a") }},
		annealing.Hooks{},
		annealing.Hooks{
			OnStep:      func(annealing.StepEvent) { order = append(order, "b") },
			OnRunFinish: func(annealing.RunFinishEvent) { order = append(order, "done") },
		},
	)

	require.Nil(t, h.OnRunStart)
	h.OnStep(annealing.StepEvent{})
	h.OnRunFinish(annealing.RunFinishEvent{})
	assert.Equal(t, []string{"a", "b", "done"}, order)
}
