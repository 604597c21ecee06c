package problems_test

import (
	"testing"

	"github.com/katalvlaran/anneal/annealing"
	"github.com/katalvlaran/anneal/problems"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRastrigin_KnownValues checks the function at lattice points.
func TestRastrigin_KnownValues(t *testing.T) {
	assert.InDelta(t, 0.0, problems.Rastrigin([]float64{0, 0, 0}), 1e-12)
	assert.InDelta(t, 1.0, problems.Rastrigin([]float64{1}), 1e-12)
	assert.InDelta(t, 8.0, problems.Rastrigin([]float64{2, 2}), 1e-12)
	assert.Equal(t, 13.0, problems.Sphere([]float64{2, 3}))
}

// TestContinuous_BadDimension rejects empty spaces.
func TestContinuous_BadDimension(t *testing.T) {
	_, err := problems.NewRastrigin(0, 1, 10)
	assert.ErrorIs(t, err, problems.ErrBadDimension)
	_, err = problems.NewSphere(-3, 1, 10)
	assert.ErrorIs(t, err, problems.ErrBadDimension)
}

// TestContinuous_PerturbStaysInBox moves one coordinate and respects bounds.
func TestContinuous_PerturbStaysInBox(t *testing.T) {
	c, err := problems.NewRastrigin(4, 5, 100)
	require.NoError(t, err)
	assert.Equal(t, 4, c.Dimensions())

	x := c.Initial()
	for i := 0; i < 500; i++ {
		next := c.Perturb(x, 100)
		changed := 0
		for k := range next {
			assert.LessOrEqual(t, next[k], problems.Bound)
			assert.GreaterOrEqual(t, next[k], -problems.Bound)
			if next[k] != x[k] {
				changed++
			}
		}
		assert.LessOrEqual(t, changed, 1)
		x = next
	}
}

// TestContinuous_ColdStepsAreSmall checks the temperature scaling.
func TestContinuous_ColdStepsAreSmall(t *testing.T) {
	c, err := problems.NewSphere(1, 9, 100)
	require.NoError(t, err)

	x := []float64{0}
	for i := 0; i < 100; i++ {
		next := c.Perturb(x, 0)
		assert.LessOrEqual(t, next[0]-x[0], problems.Bound*1e-3+1e-12)
		assert.GreaterOrEqual(t, next[0]-x[0], -problems.Bound*1e-3-1e-12)
	}
}

// TestSphere_Anneals checks that a run improves on its starting point.
func TestSphere_Anneals(t *testing.T) {
	c, err := problems.NewSphere(2, 11, 100)
	require.NoError(t, err)

	initial := c.Initial()
	sim := annealing.NewSimulator(annealing.DefaultConfiguration[[]float64](), c.Options())
	best, err := sim.Run(initial, annealing.Options[[]float64]{
		CoolingRate: annealing.Float(0.05),
		Temperature: annealing.Float(100),
	})
	require.NoError(t, err)
	assert.LessOrEqual(t, best.Energy(), problems.Sphere(initial))
	assert.Less(t, best.Energy(), 2.0)
}
