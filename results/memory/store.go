// Package memory is an in-process results.Store.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/katalvlaran/anneal/results"
)

// Store keeps records in a map guarded by a RWMutex.
type Store struct {
	mu      sync.RWMutex
	records map[string]results.Record
}

var _ results.Store = (*Store)(nil)

// New returns an empty Store.
func New() *Store {
	return &Store{records: make(map[string]results.Record)}
}

// Save inserts or replaces r.
func (s *Store) Save(_ context.Context, r results.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[r.ID] = r
	return nil
}

// Load returns the record with id.
func (s *Store) Load(_ context.Context, id string) (results.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.records[id]
	if !ok {
		return results.Record{}, results.ErrRecordNotFound
	}
	return r, nil
}

// List returns every record ordered by start time, then ID.
func (s *Store) List(_ context.Context) ([]results.Record, error) {
	s.mu.RLock()
	out := make([]results.Record, 0, len(s.records))
	for _, r := range s.records {
		out = append(out, r)
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if !out[i].StartedAt.Equal(out[j].StartedAt) {
			return out[i].StartedAt.Before(out[j].StartedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}
