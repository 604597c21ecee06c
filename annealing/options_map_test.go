package annealing_test

import (
	"testing"

	"github.com/katalvlaran/anneal/annealing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestOptionsFromMap_AllKeys decodes every recognised key, with plain func
// literals for the strategies and integers for the numbers.
func TestOptionsFromMap_AllKeys(t *testing.T) {
	opts, err := annealing.OptionsFromMap[int](map[string]any{
		"coolDown":             func(_, temperature, rate float64, _ int) float64 { return temperature - 2*rate },
		"coolingRate":          3,
		"energyCalculator":     func(x int) float64 { return float64(x) },
		"returnBest":           false,
		"stateChange":          func(x int, _ float64) int { return x - 1 },
		"temperature":          12,
		"terminationCondition": annealing.TemperatureIsZero[int](),
		"somethingElse":        "ignored",
	})
	require.NoError(t, err)
	require.False(t, opts.IsEmpty())

	cfg := annealing.NewConfiguration(opts)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 3.0, cfg.CoolingRate())
	assert.Equal(t, 12.0, cfg.Temperature())
	assert.False(t, cfg.ReturnBest())
	assert.Equal(t, 4.0, cfg.CoolDown()(0, 10, 3, 1))

	final, err := annealing.NewSimulator(cfg, annealing.Options[int]{}).Run(10, annealing.Options[int]{})
	require.NoError(t, err)
	// 12 → 6 → 0: two steps, two decrements.
	assert.Equal(t, 8, final.Solution())
	assert.Equal(t, 0.0, final.Temperature())
}

// TestOptionsFromMap_UnknownKeysOnly yields empty options.
func TestOptionsFromMap_UnknownKeysOnly(t *testing.T) {
	opts, err := annealing.OptionsFromMap[int](map[string]any{"cooling_rate": 1, "foo": true})
	require.NoError(t, err)
	assert.True(t, opts.IsEmpty())

	opts, err = annealing.OptionsFromMap[int](nil)
	require.NoError(t, err)
	assert.True(t, opts.IsEmpty())
}

// TestOptionsFromMap_WrongSignature records a non-callable strategy instead of failing.
func TestOptionsFromMap_WrongSignature(t *testing.T) {
	opts, err := annealing.OptionsFromMap[int](map[string]any{
		"stateChange": func(x string) string { return x },
	})
	require.NoError(t, err)
	assert.False(t, opts.IsEmpty(), "an invalid key is still a present key")

	cfg := annealing.NewConfiguration(opts).Merge(annealing.Options[int]{
		EnergyCalculator: func(x int) float64 { return float64(x) },
	})
	assert.Equal(t, annealing.ReasonMissingStateChange, reasonOf(t, cfg.Validate()))
}

// TestOptionsFromMap_BadNumber rejects a number that cannot be parsed.
func TestOptionsFromMap_BadNumber(t *testing.T) {
	_, err := annealing.OptionsFromMap[int](map[string]any{"temperature": "hot"})
	assert.ErrorIs(t, err, annealing.ErrOptionDecode)
}

// TestOptionsFromMap_NumericStrings accepts numbers written as strings.
func TestOptionsFromMap_NumericStrings(t *testing.T) {
	opts, err := annealing.OptionsFromMap[int](map[string]any{"coolingRate": "0.5"})
	require.NoError(t, err)
	require.NotNil(t, opts.CoolingRate)
	assert.Equal(t, 0.5, *opts.CoolingRate)
}

// TestOptionsFromMap_NilValues treats a key holding nil as present and
// unusable, so it overrides the default and fails validation.
func TestOptionsFromMap_NilValues(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{annealing.KeyCoolDown, annealing.ReasonMissingCoolDown},
		{annealing.KeyCoolingRate, annealing.ReasonNegativeCoolingRate},
		{annealing.KeyEnergyCalculator, annealing.ReasonMissingEnergyCalculator},
		{annealing.KeyReturnBest, annealing.ReasonInvalidReturnBest},
		{annealing.KeyStateChange, annealing.ReasonMissingStateChange},
		{annealing.KeyTemperature, annealing.ReasonNegativeTemperature},
		{annealing.KeyTerminationCondition, annealing.ReasonMissingTerminationCondition},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			opts, err := annealing.OptionsFromMap[float64](map[string]any{tt.key: nil})
			require.NoError(t, err)
			assert.False(t, opts.IsEmpty())

			cfg := annealing.NewConfiguration(completeOptions()).Merge(opts)
			assert.Equal(t, tt.want, reasonOf(t, cfg.Validate()))
		})
	}
}

// TestOptionsFromMap_NilFunc treats a typed nil strategy like an untyped nil.
func TestOptionsFromMap_NilFunc(t *testing.T) {
	var cooler annealing.CoolDown
	opts, err := annealing.OptionsFromMap[float64](map[string]any{annealing.KeyCoolDown: cooler})
	require.NoError(t, err)

	cfg := annealing.NewConfiguration(completeOptions()).Merge(opts)
	assert.Equal(t, annealing.ReasonMissingCoolDown, reasonOf(t, cfg.Validate()))
}

// TestOptionsFromMap_NilThenValue lets a later valid value repair a nil key.
func TestOptionsFromMap_NilThenValue(t *testing.T) {
	opts, err := annealing.OptionsFromMap[float64](map[string]any{
		annealing.KeyReturnBest:  nil,
		annealing.KeyTemperature: nil,
	})
	require.NoError(t, err)

	cfg := annealing.NewConfiguration(completeOptions()).Merge(opts)
	require.Error(t, cfg.Validate())

	cfg = cfg.Merge(annealing.Options[float64]{
		ReturnBest:  annealing.Bool(false),
		Temperature: annealing.Float(5),
	})
	require.NoError(t, cfg.Validate())
	assert.False(t, cfg.ReturnBest())
	assert.Equal(t, 5.0, cfg.Temperature())
}
