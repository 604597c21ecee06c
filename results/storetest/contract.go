// Package storetest holds the behavioural contract every results.Store must meet.
package storetest

import (
	"context"
	"testing"
	"time"

	"github.com/katalvlaran/anneal/results"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunStoreContract exercises save, load, replace and ordering on an empty store.
func RunStoreContract(t *testing.T, store results.Store) {
	t.Helper()
	ctx := context.Background()

	_, err := store.Load(ctx, "missing")
	assert.ErrorIs(t, err, results.ErrRecordNotFound)

	all, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	older := results.Record{ID: "b", Problem: "tour", Steps: 10, Energy: 4, StartedAt: base}
	newer := results.Record{ID: "a", Problem: "sphere", Steps: 3, Energy: 0.5, StartedAt: base.Add(time.Minute)}
	require.NoError(t, older.SetSolution([]int{0, 1, 2}))

	require.NoError(t, store.Save(ctx, newer))
	require.NoError(t, store.Save(ctx, older))

	got, err := store.Load(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, older.Problem, got.Problem)
	assert.Equal(t, older.Steps, got.Steps)
	assert.Equal(t, older.Energy, got.Energy)
	assert.True(t, older.StartedAt.Equal(got.StartedAt))
	assert.JSONEq(t, `[0,1,2]`, string(got.Solution))

	all, err = store.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "b", all[0].ID, "oldest first")
	assert.Equal(t, "a", all[1].ID)

	// Saving the same ID replaces the record.
	newer.Energy = 0.25
	require.NoError(t, store.Save(ctx, newer))
	got, err = store.Load(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, 0.25, got.Energy)

	all, err = store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
