// Package observability exports annealing runs as Prometheus metrics.
//
// Metrics feeds on annealing.Hooks, so any Simulator can be observed without
// changing its trajectory:
//
//	reg := prometheus.NewRegistry()
//	m, err := observability.NewMetrics(reg, "anneal")
//	sim := annealing.NewSimulator(base, opts, annealing.WithHooks(m.Hooks("tour")))
//
// Exported series (namespace prefix omitted):
//   - runs_total{problem,outcome}         counter, outcome = completed|rejected
//   - steps_total{problem}                counter of cooling steps
//   - temperature{problem}                gauge, latest step
//   - current_energy{problem}             gauge, latest step
//   - best_energy{problem}                gauge, best of the latest run
//   - run_duration_seconds{problem}       histogram
package observability
