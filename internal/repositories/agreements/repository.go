// Package agreements persists the investment-agreement collection.
package agreements

import (
	"context"

	"github.com/sellit-io/sellit/internal/models"
)

// Repository is the access contract for the "agreements" collection.
type Repository interface {
	List(ctx context.Context) ([]models.Agreement, error)
	FindByID(ctx context.Context, id string) (*models.Agreement, error)
	Create(ctx context.Context, a models.Agreement) error
	SetTerms(ctx context.Context, id, terms string) error
	SetStatus(ctx context.Context, id string, status models.AgreementStatus) error
}
