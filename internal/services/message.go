package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sellit-io/sellit/internal/common"
	"github.com/sellit-io/sellit/internal/models"
	"github.com/sellit-io/sellit/internal/policy"
	"github.com/sellit-io/sellit/internal/repositories/messages"
)

// MessageService handles chat between idea owners and investors. Every
// outbound message passes the policy filter first; a rejected message is
// never persisted, only audited.
type MessageService interface {
	Send(ctx context.Context, sender *models.User, receiverID, ideaID, text string) (*models.Message, error)
	Conversation(ctx context.Context, userA, userB string) ([]models.Message, error)
	Participants(ctx context.Context, userID string) ([]string, error)
	Report(ctx context.Context, actor *models.User, id, reason string) error
	DismissFlags(ctx context.Context, actor *models.User, id string) error
	SafetyQueue(ctx context.Context, actor *models.User) ([]models.Message, error)
}

type messageService struct {
	messages messages.Repository
	audit    AuditService
}

func NewMessageService(messages messages.Repository, audit AuditService) MessageService {
	return &messageService{messages: messages, audit: audit}
}

func (s *messageService) Send(ctx context.Context, sender *models.User, receiverID, ideaID, text string) (*models.Message, error) {
	if strings.TrimSpace(text) == "" {
		return nil, common.ErrEmptyMessage
	}

	if res := policy.Check(text); !res.Allowed {
		s.audit.Record(ctx, models.LevelWarn, "message blocked", sender.ID, res.Reason)
		return nil, fmt.Errorf("%s: %w", res.Reason, common.ErrPolicyBlocked)
	}

	m := models.Message{
		ID:          uuid.NewString(),
		SenderID:    sender.ID,
		ReceiverID:  receiverID,
		IdeaID:      ideaID,
		MessageText: text,
		Timestamp:   time.Now().UTC(),
	}
	if err := s.messages.Append(ctx, m); err != nil {
		return nil, fmt.Errorf("saving message: %w", err)
	}
	return &m, nil
}

// Conversation returns the messages between two users in both directions,
// oldest first.
func (s *messageService) Conversation(ctx context.Context, userA, userB string) ([]models.Message, error) {
	all, err := s.messages.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing messages: %w", err)
	}
	conv := make([]models.Message, 0)
	for _, m := range all {
		if (m.SenderID == userA && m.ReceiverID == userB) ||
			(m.SenderID == userB && m.ReceiverID == userA) {
			conv = append(conv, m)
		}
	}
	sort.SliceStable(conv, func(i, j int) bool {
		return conv[i].Timestamp.Before(conv[j].Timestamp)
	})
	return conv, nil
}

// Participants lists the distinct counterparts the user has exchanged
// messages with, in first-contact order.
func (s *messageService) Participants(ctx context.Context, userID string) ([]string, error) {
	all, err := s.messages.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing messages: %w", err)
	}
	seen := make(map[string]bool)
	out := make([]string, 0)
	for _, m := range all {
		var other string
		switch userID {
		case m.SenderID:
			other = m.ReceiverID
		case m.ReceiverID:
			other = m.SenderID
		default:
			continue
		}
		if !seen[other] {
			seen[other] = true
			out = append(out, other)
		}
	}
	return out, nil
}

func (s *messageService) Report(ctx context.Context, actor *models.User, id, reason string) error {
	if err := s.messages.Report(ctx, id, reason); err != nil {
		return fmt.Errorf("reporting message: %w", err)
	}
	s.audit.Record(ctx, models.LevelWarn, "message reported", actor.ID, reason)
	return nil
}

func (s *messageService) DismissFlags(ctx context.Context, actor *models.User, id string) error {
	if actor.Role != models.RoleAdmin {
		return common.ErrForbidden
	}
	if err := s.messages.DismissFlags(ctx, id); err != nil {
		return fmt.Errorf("dismissing flags: %w", err)
	}
	s.audit.Record(ctx, models.LevelInfo, "message flags dismissed", actor.ID, id)
	return nil
}

func (s *messageService) SafetyQueue(ctx context.Context, actor *models.User) ([]models.Message, error) {
	if actor.Role != models.RoleAdmin {
		return nil, common.ErrForbidden
	}
	return s.messages.Flagged(ctx)
}
