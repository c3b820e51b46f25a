// Package messages persists the chat-message collection and its moderation
// flags.
package messages

import (
	"context"

	"github.com/sellit-io/sellit/internal/models"
)

// Repository is the access contract for the "messages" collection. Messages
// are append-only in the normal flow; moderation actions only flip flags.
// The moderation state machine is clean -> blocked|reported -> clean.
type Repository interface {
	List(ctx context.Context) ([]models.Message, error)
	Append(ctx context.Context, m models.Message) error
	Report(ctx context.Context, id, reason string) error
	MarkBlocked(ctx context.Context, id, reason string) error
	DismissFlags(ctx context.Context, id string) error
	Flagged(ctx context.Context) ([]models.Message, error)
}
