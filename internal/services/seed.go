package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sellit-io/sellit/internal/models"
	"github.com/sellit-io/sellit/internal/repositories/users"
	"github.com/sellit-io/sellit/internal/storage"
)

// SeedDemoUsers populates the demo accounts and an empty idea catalogue when
// the collections have never been written in the active namespace. An
// existing (even empty-array) collection is left alone.
func SeedDemoUsers(ctx context.Context, gw *storage.Gateway, repo users.Repository) error {
	if _, ok, err := gw.Get(storage.KeyIdeas); err != nil {
		return fmt.Errorf("checking ideas collection: %w", err)
	} else if !ok {
		if err := gw.Set(storage.KeyIdeas, "[]"); err != nil {
			return fmt.Errorf("seeding ideas collection: %w", err)
		}
	}

	if _, ok, err := gw.Get(storage.KeyUsers); err != nil {
		return fmt.Errorf("checking users collection: %w", err)
	} else if ok {
		return nil
	}

	now := time.Now().UTC()
	demo := []models.User{
		{
			ID:         "user-1",
			FullName:   "Sarah Owner",
			Email:      "sell@idea.com",
			Password:   "password123",
			Role:       models.RoleOwner,
			Avatar:     "https://picsum.photos/seed/sarah/200",
			Rating:     4.8,
			IsVerified: true,
			IsActive:   true,
			CreatedAt:  now,
		},
		{
			ID:         "user-2",
			FullName:   "Marcus Investor",
			Email:      "invest@capital.com",
			Password:   "password123",
			Role:       models.RoleInvestor,
			Avatar:     "https://picsum.photos/seed/marcus/200",
			Rating:     4.9,
			IsVerified: true,
			IsActive:   true,
			CreatedAt:  now,
		},
		{
			ID:         "user-3",
			FullName:   "Admin User",
			Email:      "admin@sellit.io",
			Password:   "adminpassword",
			Role:       models.RoleAdmin,
			Avatar:     "https://picsum.photos/seed/admin/200",
			Rating:     5.0,
			IsVerified: true,
			IsActive:   true,
			CreatedAt:  now,
		},
	}

	for _, u := range demo {
		if err := repo.Create(ctx, u); err != nil {
			return fmt.Errorf("seeding user %s: %w", u.Email, err)
		}
	}
	return nil
}
