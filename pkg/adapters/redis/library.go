package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/openburn/motordoc/pkg/domain"
	backend "github.com/redis/go-redis/v9"
)

// LibraryStore implements ports.LibraryStore using Redis, storing the
// full propellant collection as one JSON value. Useful when several
// workstations share a propellant library.
type LibraryStore struct {
	client *backend.Client
	key    string
}

// Option configures the LibraryStore.
type Option func(*LibraryStore)

// WithKey overrides the Redis key the collection is stored under.
func WithKey(key string) Option {
	return func(s *LibraryStore) {
		s.key = key
	}
}

// New creates a Redis library store connected to the given address.
func New(address, password string, db int, opts ...Option) *LibraryStore {
	client := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(client, opts...)
}

// NewFromClient creates a Redis library store from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *LibraryStore {
	store := &LibraryStore{
		client: client,
		key:    "motordoc:propellants",
	}
	for _, opt := range opts {
		opt(store)
	}
	return store
}

// Load retrieves the propellant collection. A key that was never
// written loads as an empty library.
func (s *LibraryStore) Load(ctx context.Context) ([]domain.Propellant, error) {
	raw, err := s.client.Get(ctx, s.key).Bytes()
	if err == backend.Nil {
		return []domain.Propellant{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read propellant library from redis: %w", err)
	}

	var entries []domain.Propellant
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal propellant library: %w", err)
	}
	return entries, nil
}

// Persist writes the full collection.
func (s *LibraryStore) Persist(ctx context.Context, propellants []domain.Propellant) error {
	data, err := json.Marshal(propellants)
	if err != nil {
		return fmt.Errorf("failed to marshal propellant library: %w", err)
	}
	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to write propellant library to redis: %w", err)
	}
	return nil
}
