// Package services implements the application operations on top of the
// repositories. Role checks live here; the storage layer below enforces
// nothing.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sellit-io/sellit/internal/logging"
	"github.com/sellit-io/sellit/internal/models"
	"github.com/sellit-io/sellit/internal/repositories/logs"
)

// AuditService records application events in the capped audit collection and
// mirrors each entry to the operational logger.
type AuditService interface {
	Record(ctx context.Context, level models.LogLevel, event, userID, details string)
	List(ctx context.Context) ([]models.LogEntry, error)
	Clear(ctx context.Context) error
}

type auditService struct {
	repo logs.Repository
	log  logging.Logger
}

func NewAuditService(repo logs.Repository, log logging.Logger) AuditService {
	return &auditService{repo: repo, log: log}
}

// Record never fails the caller: an audit write error is itself logged and
// swallowed, since no business operation should abort over its audit trail.
func (s *auditService) Record(ctx context.Context, level models.LogLevel, event, userID, details string) {
	entry := models.LogEntry{
		ID:        uuid.NewString(),
		Timestamp: time.Now().UTC(),
		Level:     level,
		Event:     event,
		UserID:    userID,
		Details:   details,
	}

	switch level {
	case models.LevelWarn:
		s.log.Warn(ctx, event, "user_id", userID, "details", details)
	case models.LevelError:
		s.log.Error(ctx, event, "user_id", userID, "details", details)
	default:
		s.log.Info(ctx, event, "user_id", userID, "details", details)
	}

	if err := s.repo.Append(ctx, entry); err != nil {
		s.log.Error(ctx, "audit append failed", "error", err)
	}
}

func (s *auditService) List(ctx context.Context) ([]models.LogEntry, error) {
	entries, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing audit log: %w", err)
	}
	return entries, nil
}

func (s *auditService) Clear(ctx context.Context) error {
	if err := s.repo.Clear(ctx); err != nil {
		return fmt.Errorf("clearing audit log: %w", err)
	}
	return nil
}
