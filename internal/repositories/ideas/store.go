package ideas

import (
	"context"

	"github.com/sellit-io/sellit/internal/common"
	"github.com/sellit-io/sellit/internal/models"
	"github.com/sellit-io/sellit/internal/repositories/collection"
	"github.com/sellit-io/sellit/internal/storage"
)

// Store implements Repository over the whole-collection store.
type Store struct {
	c *collection.Store[models.BusinessIdea]
}

func NewStore(gw *storage.Gateway) *Store {
	return &Store{c: collection.New[models.BusinessIdea](gw, storage.KeyIdeas)}
}

func (s *Store) List(ctx context.Context) ([]models.BusinessIdea, error) {
	return s.c.Load()
}

func (s *Store) FindByID(ctx context.Context, id string) (*models.BusinessIdea, error) {
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

func (s *Store) Create(ctx context.Context, idea models.BusinessIdea) error {
	return s.c.Update(func(items []models.BusinessIdea) ([]models.BusinessIdea, error) {
		return append(items, idea), nil
	})
}

func (s *Store) Update(ctx context.Context, idea models.BusinessIdea) error {
	return s.c.Update(func(items []models.BusinessIdea) ([]models.BusinessIdea, error) {
		for i := range items {
			if items[i].ID == idea.ID {
				items[i] = idea
				return items, nil
			}
		}
		return nil, common.ErrNotFound
	})
}

func (s *Store) SetStatus(ctx context.Context, id string, status models.IdeaStatus) error {
	return s.c.Update(func(items []models.BusinessIdea) ([]models.BusinessIdea, error) {
		for i := range items {
			if items[i].ID == id {
				items[i].Status = status
				return items, nil
			}
		}
		return nil, common.ErrNotFound
	})
}

func (s *Store) Delete(ctx context.Context, id string) error {
	return s.c.Update(func(items []models.BusinessIdea) ([]models.BusinessIdea, error) {
		for i := range items {
			if items[i].ID == id {
				return append(items[:i], items[i+1:]...), nil
			}
		}
		return nil, common.ErrNotFound
	})
}
