// Package redis is a results.Store backed by Redis.
//
// Layout: one JSON string per record under <prefix><id>, plus a sorted set
// <prefix>index scored by the record start time (unix nanoseconds).
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/anneal/results"
	backend "github.com/redis/go-redis/v9"
)

// DefaultPrefix namespaces the keys of the store.
const DefaultPrefix = "anneal:run:"

// Store implements results.Store using Redis.
type Store struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

var _ results.Store = (*Store)(nil)

// Option configures a Store.
type Option func(*Store)

// WithTTL sets the expiration of records. Zero keeps them forever.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		s.ttl = ttl
	}
}

// WithPrefix sets the key prefix.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// New connects a Store to the Redis server at address.
func New(address, password string, db int, opts ...Option) *Store {
	return NewFromClient(backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	}), opts...)
}

// NewFromClient creates a Store from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Store {
	store := &Store{
		client: client,
		prefix: DefaultPrefix,
	}
	for _, opt := range opts {
		opt(store)
	}
	return store
}

func (s *Store) key(id string) string {
	return s.prefix + id
}

func (s *Store) indexKey() string {
	return s.prefix + "index"
}

// Save persists r and indexes it by start time.
func (s *Store) Save(ctx context.Context, r results.Record) error {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, s.key(r.ID), data, s.ttl)
	pipe.ZAdd(ctx, s.indexKey(), backend.Z{
		Score:  float64(r.StartedAt.UnixNano()),
		Member: r.ID,
	})
	if _, err = pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save to redis: %w", err)
	}
	return nil
}

// Load retrieves the record with id.
func (s *Store) Load(ctx context.Context, id string) (results.Record, error) {
	val, err := s.client.Get(ctx, s.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, backend.Nil) {
			return results.Record{}, results.ErrRecordNotFound
		}
		return results.Record{}, fmt.Errorf("failed to get from redis: %w", err)
	}

	var r results.Record
	if err := json.Unmarshal(val, &r); err != nil {
		return results.Record{}, fmt.Errorf("failed to unmarshal record: %w", err)
	}
	return r, nil
}

// List returns the indexed records, oldest first. Index entries whose record
// has expired are dropped from the index.
func (s *Store) List(ctx context.Context) ([]results.Record, error) {
	ids, err := s.client.ZRange(ctx, s.indexKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read index: %w", err)
	}

	out := make([]results.Record, 0, len(ids))
	var stale []any
	for _, id := range ids {
		r, err := s.Load(ctx, id)
		if errors.Is(err, results.ErrRecordNotFound) {
			stale = append(stale, id)
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}

	if len(stale) > 0 {
		if err := s.client.ZRem(ctx, s.indexKey(), stale...).Err(); err != nil {
			return nil, fmt.Errorf("failed to prune index: %w", err)
		}
	}
	return out, nil
}

// Ping checks connectivity.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close releases the client.
func (s *Store) Close() error {
	return s.client.Close()
}
