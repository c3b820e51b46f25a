package users

import (
	"context"
	"time"

	"github.com/sellit-io/sellit/internal/common"
	"github.com/sellit-io/sellit/internal/models"
	"github.com/sellit-io/sellit/internal/repositories/collection"
	"github.com/sellit-io/sellit/internal/storage"
)

// Store implements Repository over the whole-collection store.
type Store struct {
	c *collection.Store[models.User]
}

func NewStore(gw *storage.Gateway) *Store {
	return &Store{c: collection.New[models.User](gw, storage.KeyUsers)}
}

func (s *Store) List(ctx context.Context) ([]models.User, error) {
	return s.c.Load()
}

func (s *Store) FindByID(ctx context.Context, id string) (*models.User, error) {
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

func (s *Store) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	items, err := s.c.Load()
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].Email == email {
			return &items[i], nil
		}
	}
	return nil, common.ErrNotFound
}

func (s *Store) Create(ctx context.Context, u models.User) error {
	return s.c.Update(func(items []models.User) ([]models.User, error) {
		for _, existing := range items {
			if existing.Email == u.Email {
				return nil, common.ErrEmailTaken
			}
		}
		return append(items, u), nil
	})
}

func (s *Store) Update(ctx context.Context, u models.User) error {
	return s.replace(u.ID, func(models.User) models.User { return u })
}

func (s *Store) Deactivate(ctx context.Context, id string) error {
	return s.replace(id, func(u models.User) models.User {
		u.IsActive = false
		return u
	})
}

func (s *Store) TouchLastLogin(ctx context.Context, id string, at time.Time) error {
	return s.replace(id, func(u models.User) models.User {
		u.LastLoginAt = at
		return u
	})
}

func (s *Store) replace(id string, fn func(models.User) models.User) error {
	return s.c.Update(func(items []models.User) ([]models.User, error) {
		for i := range items {
			if items[i].ID == id {
				items[i] = fn(items[i])
				return items, nil
			}
		}
		return nil, common.ErrNotFound
	})
}
