// Package collection implements the whole-collection read-modify-write
// pattern every repository is built on: load the full JSON array, transform
// it in memory, write the full array back. There is no isolation between
// concurrent writers — two read-modify-write cycles racing on the same key
// end as last-writer-wins for the whole collection. That is the documented
// contract of this layer, not a bug; writes to different keys never
// interfere.
package collection

import (
	"encoding/json"
	"fmt"

	"github.com/sellit-io/sellit/internal/storage"
)

// Store binds one record type to one logical key on a gateway.
type Store[T any] struct {
	gw  *storage.Gateway
	key string
}

func New[T any](gw *storage.Gateway, key string) *Store[T] {
	return &Store[T]{gw: gw, key: key}
}

// Key returns the logical key this store reads and writes.
func (s *Store[T]) Key() string { return s.key }

// Load returns the full collection. A key that was never written yields an
// empty slice; previously persisted malformed JSON yields an error, and the
// caller decides whether to fall back to an empty collection.
func (s *Store[T]) Load() ([]T, error) {
	raw, ok, err := s.gw.Get(s.key)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", s.key, err)
	}
	if !ok || raw == "" {
		return []T{}, nil
	}

	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.key, err)
	}
	return items, nil
}

// Save rewrites the whole collection. A nil slice is persisted as [].
func (s *Store[T]) Save(items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", s.key, err)
	}
	if err := s.gw.Set(s.key, string(data)); err != nil {
		return fmt.Errorf("save %s: %w", s.key, err)
	}
	return nil
}

// Update runs one read-modify-write cycle: fn receives the current items and
// returns the next value of the whole collection, or an error to abort
// without writing.
func (s *Store[T]) Update(fn func(items []T) ([]T, error)) error {
	items, err := s.Load()
	if err != nil {
		return err
	}
	next, err := fn(items)
	if err != nil {
		return err
	}
	return s.Save(next)
}
