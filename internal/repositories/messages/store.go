package messages

import (
	"context"

	"github.com/sellit-io/sellit/internal/common"
	"github.com/sellit-io/sellit/internal/models"
	"github.com/sellit-io/sellit/internal/repositories/collection"
	"github.com/sellit-io/sellit/internal/storage"
)

// Store implements Repository over the whole-collection store.
type Store struct {
	c *collection.Store[models.Message]
}

func NewStore(gw *storage.Gateway) *Store {
	return &Store{c: collection.New[models.Message](gw, storage.KeyMessages)}
}

func (s *Store) List(ctx context.Context) ([]models.Message, error) {
	return s.c.Load()
}

func (s *Store) Append(ctx context.Context, m models.Message) error {
	return s.c.Update(func(items []models.Message) ([]models.Message, error) {
		return append(items, m), nil
	})
}

func (s *Store) Report(ctx context.Context, id, reason string) error {
	return s.replace(id, func(m models.Message) models.Message {
		m.IsReported = true
		m.ReportReason = reason
		return m
	})
}

func (s *Store) MarkBlocked(ctx context.Context, id, reason string) error {
	return s.replace(id, func(m models.Message) models.Message {
		m.IsBlocked = true
		m.ReportReason = reason
		return m
	})
}

// DismissFlags returns a message to the clean state: both flags and the
// reason are cleared together.
func (s *Store) DismissFlags(ctx context.Context, id string) error {
	return s.replace(id, func(m models.Message) models.Message {
		m.IsBlocked = false
		m.IsReported = false
		m.ReportReason = ""
		return m
	})
}

func (s *Store) Flagged(ctx context.Context) ([]models.Message, error) {
	items, err := s.c.Load()
	if err != nil {
		return nil, err
	}
	flagged := make([]models.Message, 0)
	for _, m := range items {
		if m.Flagged() {
			flagged = append(flagged, m)
		}
	}
	return flagged, nil
}

func (s *Store) replace(id string, fn func(models.Message) models.Message) error {
	return s.c.Update(func(items []models.Message) ([]models.Message, error) {
		for i := range items {
			if items[i].ID == id {
				items[i] = fn(items[i])
				return items, nil
			}
		}
		return nil, common.ErrNotFound
	})
}
