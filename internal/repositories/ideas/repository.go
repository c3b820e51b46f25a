// Package ideas persists the business-idea collection.
package ideas

import (
	"context"

	"github.com/sellit-io/sellit/internal/models"
)

// Repository is the access contract for the "ideas" collection. Unlike
// users, ideas are hard-deleted: Delete removes the record from the array.
type Repository interface {
	List(ctx context.Context) ([]models.BusinessIdea, error)
	FindByID(ctx context.Context, id string) (*models.BusinessIdea, error)
	Create(ctx context.Context, idea models.BusinessIdea) error
	Update(ctx context.Context, idea models.BusinessIdea) error
	SetStatus(ctx context.Context, id string, status models.IdeaStatus) error
	Delete(ctx context.Context, id string) error
}
