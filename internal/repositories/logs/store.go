package logs

import (
	"context"

	"github.com/sellit-io/sellit/internal/models"
	"github.com/sellit-io/sellit/internal/repositories/collection"
	"github.com/sellit-io/sellit/internal/storage"
)

// Store implements Repository over the whole-collection store.
type Store struct {
	c *collection.Store[models.LogEntry]
}

func NewStore(gw *storage.Gateway) *Store {
	return &Store{c: collection.New[models.LogEntry](gw, storage.KeyLogs)}
}

func (s *Store) List(ctx context.Context) ([]models.LogEntry, error) {
	return s.c.Load()
}

// Append prepends the entry and trims the collection to MaxEntries.
func (s *Store) Append(ctx context.Context, e models.LogEntry) error {
	return s.c.Update(func(items []models.LogEntry) ([]models.LogEntry, error) {
		next := make([]models.LogEntry, 0, len(items)+1)
		next = append(next, e)
		next = append(next, items...)
		if len(next) > MaxEntries {
			next = next[:MaxEntries]
		}
		return next, nil
	})
}

func (s *Store) Clear(ctx context.Context) error {
	return s.c.Save(nil)
}
