package runfile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/anneal/annealing"
	"github.com/katalvlaran/anneal/internal/logging"
	"github.com/katalvlaran/anneal/observability"
	"github.com/katalvlaran/anneal/results"
)

// Runner solves run files, reports them to Metrics and persists the records.
// It is the service behind both the CLI and the HTTP API.
type Runner struct {
	store   results.Store
	metrics *observability.Metrics
	logger  *slog.Logger
}

// NewRunner creates a Runner. metrics may be nil; a nil logger discards.
func NewRunner(store results.Store, metrics *observability.Metrics, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Runner{store: store, metrics: metrics, logger: logger}
}

// Submit solves f and saves the resulting record.
func (r *Runner) Submit(ctx context.Context, f File) (results.Record, error) {
	var hooks annealing.Hooks
	if r.metrics != nil {
		hooks = r.metrics.Hooks(f.Problem)
	}

	record, err := Solve(ctx, f, hooks, r.logger)
	if err != nil {
		if r.metrics != nil && errors.Is(err, annealing.ErrConfiguration) {
			r.metrics.ObserveRejected(f.Problem)
		}
		r.logger.Warn("run failed", "problem", f.Problem, "error", err)
		return results.Record{}, err
	}

	if err := r.store.Save(ctx, record); err != nil {
		return results.Record{}, fmt.Errorf("save record %s: %w", record.ID, err)
	}
	return record, nil
}

// Get returns a stored record.
func (r *Runner) Get(ctx context.Context, id string) (results.Record, error) {
	return r.store.Load(ctx, id)
}

// List returns every stored record, oldest first.
func (r *Runner) List(ctx context.Context) ([]results.Record, error) {
	return r.store.List(ctx)
}
