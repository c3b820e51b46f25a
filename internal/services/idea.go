package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sellit-io/sellit/internal/common"
	"github.com/sellit-io/sellit/internal/models"
	"github.com/sellit-io/sellit/internal/repositories/ideas"
)

// IdeaService manages the idea catalogue. Visibility and ownership rules are
// applied here: the repositories return whatever is stored.
type IdeaService interface {
	Create(ctx context.Context, actor *models.User, idea models.BusinessIdea) (*models.BusinessIdea, error)
	Browse(ctx context.Context, actor *models.User) ([]models.BusinessIdea, error)
	Get(ctx context.Context, actor *models.User, id string) (*models.BusinessIdea, error)
	Update(ctx context.Context, actor *models.User, idea models.BusinessIdea) error
	SetStatus(ctx context.Context, actor *models.User, id string, status models.IdeaStatus) error
	Delete(ctx context.Context, actor *models.User, id string) error
}

type ideaService struct {
	ideas ideas.Repository
	audit AuditService
}

func NewIdeaService(ideas ideas.Repository, audit AuditService) IdeaService {
	return &ideaService{ideas: ideas, audit: audit}
}

func (s *ideaService) Create(ctx context.Context, actor *models.User, idea models.BusinessIdea) (*models.BusinessIdea, error) {
	if actor.Role != models.RoleOwner && actor.Role != models.RoleAdmin {
		return nil, common.ErrForbidden
	}

	idea.ID = uuid.NewString()
	idea.UserID = actor.ID
	idea.CreatedAt = time.Now().UTC()
	// New ideas go straight to the marketplace unless the caller says otherwise.
	if idea.Status == "" {
		idea.Status = models.StatusPublished
	}
	if idea.Visibility == "" {
		idea.Visibility = models.VisibilityPublic
	}
	if idea.Tags == nil {
		idea.Tags = []string{}
	}

	if err := s.ideas.Create(ctx, idea); err != nil {
		return nil, fmt.Errorf("creating idea: %w", err)
	}

	s.audit.Record(ctx, models.LevelInfo, "idea created", actor.ID, idea.Title)
	return &idea, nil
}

// Browse returns the ideas the actor may see: admins see everything, other
// users see published public ideas plus all of their own.
func (s *ideaService) Browse(ctx context.Context, actor *models.User) ([]models.BusinessIdea, error) {
	all, err := s.ideas.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing ideas: %w", err)
	}
	if actor.Role == models.RoleAdmin {
		return all, nil
	}

	visible := make([]models.BusinessIdea, 0, len(all))
	for _, idea := range all {
		if idea.UserID == actor.ID {
			visible = append(visible, idea)
			continue
		}
		if idea.Visibility == models.VisibilityPublic && idea.Status == models.StatusPublished {
			visible = append(visible, idea)
		}
	}
	return visible, nil
}

func (s *ideaService) Get(ctx context.Context, actor *models.User, id string) (*models.BusinessIdea, error) {
	idea, err := s.ideas.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if actor.Role != models.RoleAdmin && idea.UserID != actor.ID &&
		(idea.Visibility != models.VisibilityPublic || idea.Status != models.StatusPublished) {
		return nil, common.ErrForbidden
	}
	return idea, nil
}

func (s *ideaService) Update(ctx context.Context, actor *models.User, idea models.BusinessIdea) error {
	if err := s.authorize(ctx, actor, idea.ID); err != nil {
		return err
	}
	if err := s.ideas.Update(ctx, idea); err != nil {
		return fmt.Errorf("updating idea: %w", err)
	}
	return nil
}

func (s *ideaService) SetStatus(ctx context.Context, actor *models.User, id string, status models.IdeaStatus) error {
	if err := s.authorize(ctx, actor, id); err != nil {
		return err
	}
	if err := s.ideas.SetStatus(ctx, id, status); err != nil {
		return fmt.Errorf("setting idea status: %w", err)
	}
	s.audit.Record(ctx, models.LevelInfo, "idea status changed", actor.ID, fmt.Sprintf("%s -> %s", id, status))
	return nil
}

func (s *ideaService) Delete(ctx context.Context, actor *models.User, id string) error {
	if err := s.authorize(ctx, actor, id); err != nil {
		return err
	}
	if err := s.ideas.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting idea: %w", err)
	}
	s.audit.Record(ctx, models.LevelWarn, "idea deleted", actor.ID, id)
	return nil
}

// authorize allows the idea's owner and admins.
func (s *ideaService) authorize(ctx context.Context, actor *models.User, id string) error {
	if actor.Role == models.RoleAdmin {
		return nil
	}
	idea, err := s.ideas.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if idea.UserID != actor.ID {
		return common.ErrForbidden
	}
	return nil
}
