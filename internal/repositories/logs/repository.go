// Package logs persists the audit-log collection.
package logs

import (
	"context"

	"github.com/sellit-io/sellit/internal/models"
)

// MaxEntries is the retention cap. Append keeps the newest MaxEntries
// records and evicts the rest.
const MaxEntries = 200

// Repository is the access contract for the "logs" collection. Entries are
// stored newest-first.
type Repository interface {
	List(ctx context.Context) ([]models.LogEntry, error)
	Append(ctx context.Context, e models.LogEntry) error
	Clear(ctx context.Context) error
}
