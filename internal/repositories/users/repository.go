// Package users persists the user collection.
package users

import (
	"context"
	"time"

	"github.com/sellit-io/sellit/internal/models"
)

// Repository is the access contract for the "users" collection. The storage
// layer enforces no uniqueness; Create performs a best-effort email check
// inside its own read-modify-write cycle, which is as strong as this layer
// gets. Users are deactivated, never removed.
type Repository interface {
	List(ctx context.Context) ([]models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, u models.User) error
	Update(ctx context.Context, u models.User) error
	Deactivate(ctx context.Context, id string) error
	TouchLastLogin(ctx context.Context, id string, at time.Time) error
}
