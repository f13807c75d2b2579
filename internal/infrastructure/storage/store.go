// Package storage is the adapter between the services and the durable
// key-value store. It knows the three collection keys and how each one is
// encoded; it knows nothing about the records themselves.
package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/bankapp/investment-club/internal/core/domain"
	"github.com/bankapp/investment-club/internal/core/ports"
)

// Collection keys in the key-value store.
const (
	UsersKey       = "bank-micro-saas-users"
	InvestmentsKey = "bank-micro-saas-investments"
	SessionsKey    = "bank-micro-saas-sessions"
)

var collectionKeys = []string{UsersKey, InvestmentsKey, SessionsKey}

const emptyList = "[]"

var _ ports.CollectionStore = (*Store)(nil)

// Store owns the users, investments and sessions collections.
type Store struct {
	kv  ports.KeyValueStore
	log zerolog.Logger
}

// NewStore wraps a key-value backend.
func NewStore(kv ports.KeyValueStore, log zerolog.Logger) *Store {
	return &Store{kv: kv, log: log}
}

// EnsureInitialized writes an empty list under every collection key that is
// absent. Existing values are left alone, so repeated calls are no-ops.
func (s *Store) EnsureInitialized(ctx context.Context) error {
	for _, key := range collectionKeys {
		_, ok, err := s.kv.Get(ctx, key)
		if err != nil {
			return fmt.Errorf("storage: init %s: %w", key, err)
		}
		if ok {
			continue
		}
		if err := s.kv.Set(ctx, key, emptyList); err != nil {
			return fmt.Errorf("storage: init %s: %w", key, err)
		}
	}
	return nil
}

// Ping reports whether the backend is reachable. Backends without a notion of
// reachability are always considered up.
func (s *Store) Ping(ctx context.Context) error {
	if p, ok := s.kv.(ports.Pinger); ok {
		return p.Ping(ctx)
	}
	return nil
}

// Users returns the users collection.
func (s *Store) Users() ports.Collection[domain.User] {
	return &Collection[domain.User]{store: s, key: UsersKey}
}

// Investments returns the investments collection.
func (s *Store) Investments() ports.Collection[domain.Investment] {
	return &Collection[domain.Investment]{store: s, key: InvestmentsKey}
}

// Sessions returns the sessions collection.
func (s *Store) Sessions() ports.Collection[domain.Session] {
	return &Collection[domain.Session]{store: s, key: SessionsKey}
}

// Collection is one JSON array stored under a single key.
type Collection[T any] struct {
	store *Store
	key   string
}

// Read returns every record in the collection. A missing key or a value that
// does not parse yields an empty list; only backend failures are errors.
func (c *Collection[T]) Read(ctx context.Context) ([]T, error) {
	if err := c.store.EnsureInitialized(ctx); err != nil {
		return nil, err
	}

	raw, ok, err := c.store.kv.Get(ctx, c.key)
	if err != nil {
		return nil, fmt.Errorf("storage: read %s: %w", c.key, err)
	}
	if !ok {
		return []T{}, nil
	}

	var records []T
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		c.store.log.Warn().Err(err).Str("collection", c.key).Msg("corrupt collection, treating as empty")
		return []T{}, nil
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

// Write replaces the whole collection with records.
func (c *Collection[T]) Write(ctx context.Context, records []T) error {
	if records == nil {
		records = []T{}
	}
	b, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("storage: encode %s: %w", c.key, err)
	}
	if err := c.store.kv.Set(ctx, c.key, string(b)); err != nil {
		return fmt.Errorf("storage: write %s: %w", c.key, err)
	}
	return nil
}

// Clear removes the collection key. The next Read re-initializes it empty.
func (c *Collection[T]) Clear(ctx context.Context) error {
	if err := c.store.kv.Delete(ctx, c.key); err != nil {
		return fmt.Errorf("storage: clear %s: %w", c.key, err)
	}
	return nil
}
