package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sellit-io/sellit/internal/common"
	"github.com/sellit-io/sellit/internal/models"
	"github.com/sellit-io/sellit/internal/repositories/agreements"
)

// AgreementService runs the two-party signing flow:
// DRAFT -> PENDING_OWNER | PENDING_INVESTOR -> SIGNED. The first signature
// moves the agreement to pending-on-the-other-party; the counter-signature
// completes it.
type AgreementService interface {
	Draft(ctx context.Context, actor *models.User, ideaID, ownerID, investorID, terms string) (*models.Agreement, error)
	SetTerms(ctx context.Context, actor *models.User, id, terms string) error
	Sign(ctx context.Context, actor *models.User, id string) (*models.Agreement, error)
	List(ctx context.Context, actor *models.User) ([]models.Agreement, error)
}

type agreementService struct {
	agreements agreements.Repository
	audit      AuditService
}

func NewAgreementService(agreements agreements.Repository, audit AuditService) AgreementService {
	return &agreementService{agreements: agreements, audit: audit}
}

func (s *agreementService) Draft(ctx context.Context, actor *models.User, ideaID, ownerID, investorID, terms string) (*models.Agreement, error) {
	if actor.ID != ownerID && actor.ID != investorID && actor.Role != models.RoleAdmin {
		return nil, common.ErrForbidden
	}

	a := models.Agreement{
		ID:         uuid.NewString(),
		IdeaID:     ideaID,
		OwnerID:    ownerID,
		InvestorID: investorID,
		Terms:      terms,
		Status:     models.AgreementDraft,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.agreements.Create(ctx, a); err != nil {
		return nil, fmt.Errorf("drafting agreement: %w", err)
	}

	s.audit.Record(ctx, models.LevelInfo, "agreement drafted", actor.ID, a.ID)
	return &a, nil
}

// SetTerms changes the terms of an agreement still in DRAFT. Once either
// party has signed, the terms are frozen.
func (s *agreementService) SetTerms(ctx context.Context, actor *models.User, id, terms string) error {
	a, err := s.agreements.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if actor.ID != a.OwnerID && actor.ID != a.InvestorID {
		return common.ErrForbidden
	}
	if a.Status != models.AgreementDraft {
		return common.ErrAlreadySigned
	}
	if err := s.agreements.SetTerms(ctx, id, terms); err != nil {
		return fmt.Errorf("updating terms: %w", err)
	}
	return nil
}

func (s *agreementService) Sign(ctx context.Context, actor *models.User, id string) (*models.Agreement, error) {
	a, err := s.agreements.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var next models.AgreementStatus
	switch {
	case a.Status == models.AgreementSigned:
		return nil, common.ErrAlreadySigned
	case a.Status == models.AgreementDraft && actor.ID == a.OwnerID:
		next = models.AgreementPendingInvestor
	case a.Status == models.AgreementDraft && actor.ID == a.InvestorID:
		next = models.AgreementPendingOwner
	case a.Status == models.AgreementPendingOwner && actor.ID == a.OwnerID:
		next = models.AgreementSigned
	case a.Status == models.AgreementPendingInvestor && actor.ID == a.InvestorID:
		next = models.AgreementSigned
	default:
		// either a non-party actor or a party signing twice
		return nil, common.ErrForbidden
	}

	if err := s.agreements.SetStatus(ctx, id, next); err != nil {
		return nil, fmt.Errorf("signing agreement: %w", err)
	}
	a.Status = next

	s.audit.Record(ctx, models.LevelInfo, "agreement signed", actor.ID, fmt.Sprintf("%s -> %s", id, next))
	return a, nil
}

// List returns the agreements the actor is party to; admins see everything.
func (s *agreementService) List(ctx context.Context, actor *models.User) ([]models.Agreement, error) {
	all, err := s.agreements.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing agreements: %w", err)
	}
	if actor.Role == models.RoleAdmin {
		return all, nil
	}
	mine := make([]models.Agreement, 0, len(all))
	for _, a := range all {
		if a.OwnerID == actor.ID || a.InvestorID == actor.ID {
			mine = append(mine, a)
		}
	}
	return mine, nil
}
