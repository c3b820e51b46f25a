package agreements

import (
	"context"

	"github.com/sellit-io/sellit/internal/common"
	"github.com/sellit-io/sellit/internal/models"
	"github.com/sellit-io/sellit/internal/repositories/collection"
	"github.com/sellit-io/sellit/internal/storage"
)

// Store implements Repository over the whole-collection store.
type Store struct {
	c *collection.Store[models.Agreement]
}

func NewStore(gw *storage.Gateway) *Store {
	return &Store{c: collection.New[models.Agreement](gw, storage.KeyAgreements)}
}

func (s *Store) List(ctx context.Context) ([]models.Agreement, error) {
	return s.c.Load()
}

func (s *Store) FindByID(ctx context.Context, id string) (*models.Agreement, error) {
	items, err := s.c.Load()
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			return &items[i], nil
		}
	}
	return nil, common.ErrNotFound
}

func (s *Store) Create(ctx context.Context, a models.Agreement) error {
	return s.c.Update(func(items []models.Agreement) ([]models.Agreement, error) {
		return append(items, a), nil
	})
}

func (s *Store) SetTerms(ctx context.Context, id, terms string) error {
	return s.replace(id, func(a models.Agreement) models.Agreement {
		a.Terms = terms
		return a
	})
}

func (s *Store) SetStatus(ctx context.Context, id string, status models.AgreementStatus) error {
	return s.replace(id, func(a models.Agreement) models.Agreement {
		a.Status = status
		return a
	})
}

func (s *Store) replace(id string, fn func(models.Agreement) models.Agreement) error {
	return s.c.Update(func(items []models.Agreement) ([]models.Agreement, error) {
		for i := range items {
			if items[i].ID == id {
				items[i] = fn(items[i])
				return items, nil
			}
		}
		return nil, common.ErrNotFound
	})
}
