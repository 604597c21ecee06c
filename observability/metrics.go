package observability

import (
	"fmt"

	"github.com/katalvlaran/anneal/annealing"
	"github.com/prometheus/client_golang/prometheus"
)

// Run outcomes.
const (
	OutcomeCompleted = "completed"
	OutcomeRejected  = "rejected"
)

// Metrics holds the collectors of annealing runs.
type Metrics struct {
	runs          *prometheus.CounterVec
	steps         *prometheus.CounterVec
	temperature   *prometheus.GaugeVec
	currentEnergy *prometheus.GaugeVec
	bestEnergy    *prometheus.GaugeVec
	duration      *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer, namespace string) (*Metrics, error) {
	m := &Metrics{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Total number of annealing runs by outcome.",
		}, []string{"problem", "outcome"}),
		steps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "steps_total",
			Help:      "Total number of cooling steps.",
		}, []string{"problem"}),
		temperature: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "temperature",
			Help:      "Temperature after the latest cooling step.",
		}, []string{"problem"}),
		currentEnergy: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "current_energy",
			Help:      "Energy of the latest state.",
		}, []string{"problem"}),
		bestEnergy: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "best_energy",
			Help:      "Lowest energy seen by the latest run.",
		}, []string{"problem"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall-clock duration of annealing runs.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 10),
		}, []string{"problem"}),
	}

	for _, c := range []prometheus.Collector{m.runs, m.steps, m.temperature, m.currentEnergy, m.bestEnergy, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("register annealing metrics: %w", err)
		}
	}
	return m, nil
}

// Hooks returns annealing hooks that record runs of the named problem.
// Series are created on the first event, so hooks built for runs that never
// start add nothing to the registry.
func (m *Metrics) Hooks(problem string) annealing.Hooks {
	return annealing.Hooks{
		OnRunStart: func(e annealing.RunStartEvent) {
			m.temperature.WithLabelValues(problem).Set(e.Temperature)
			m.currentEnergy.WithLabelValues(problem).Set(e.Energy)
			m.bestEnergy.WithLabelValues(problem).Set(e.Energy)
		},
		OnStep: func(e annealing.StepEvent) {
			m.steps.WithLabelValues(problem).Inc()
			m.temperature.WithLabelValues(problem).Set(e.Temperature)
			m.currentEnergy.WithLabelValues(problem).Set(e.Energy)
			m.bestEnergy.WithLabelValues(problem).Set(e.BestEnergy)
		},
		OnRunFinish: func(e annealing.RunFinishEvent) {
			m.runs.WithLabelValues(problem, OutcomeCompleted).Inc()
			m.duration.WithLabelValues(problem).Observe(e.Duration.Seconds())
		},
	}
}

// ObserveRejected counts a run refused by configuration validation.
// The engine fires no hooks for such runs, so callers report them here.
func (m *Metrics) ObserveRejected(problem string) {
	m.runs.WithLabelValues(problem, OutcomeRejected).Inc()
}
