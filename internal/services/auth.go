package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sellit-io/sellit/internal/common"
	"github.com/sellit-io/sellit/internal/models"
	"github.com/sellit-io/sellit/internal/repositories/users"
	"github.com/sellit-io/sellit/internal/storage"
)

// AuthService handles registration, login and the bare-identifier session.
// Passwords are compared in plaintext and the session is the user id stored
// under a single key; neither is a security mechanism and neither pretends
// to be one.
type AuthService interface {
	Register(ctx context.Context, fullName, email, password string, role models.UserRole) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, error)
	Logout(ctx context.Context) error
	Current(ctx context.Context) (*models.User, error)
}

type authService struct {
	gw    *storage.Gateway
	users users.Repository
	audit AuditService
}

func NewAuthService(gw *storage.Gateway, users users.Repository, audit AuditService) AuthService {
	return &authService{gw: gw, users: users, audit: audit}
}

func (s *authService) Register(ctx context.Context, fullName, email, password string, role models.UserRole) (*models.User, error) {
	if role != models.RoleInvestor && role != models.RoleOwner {
		return nil, fmt.Errorf("registering as %q: %w", role, common.ErrForbidden)
	}

	u := models.User{
		ID:         uuid.NewString(),
		FullName:   fullName,
		Email:      email,
		Password:   password,
		Role:       role,
		Avatar:     fmt.Sprintf("https://picsum.photos/seed/%s/200", email),
		Rating:     5.0,
		IsVerified: false,
		IsActive:   true,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.users.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("registering user: %w", err)
	}

	if err := s.gw.Set(storage.KeySession, u.ID); err != nil {
		return nil, fmt.Errorf("storing session: %w", err)
	}

	s.audit.Record(ctx, models.LevelInfo, "user registered", u.ID, u.Email)
	return &u, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*models.User, error) {
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		s.audit.Record(ctx, models.LevelWarn, "login failed", "", email)
		return nil, common.ErrInvalidCredentials
	}
	if u.Password != password {
		s.audit.Record(ctx, models.LevelWarn, "login failed", u.ID, email)
		return nil, common.ErrInvalidCredentials
	}
	if !u.IsActive {
		s.audit.Record(ctx, models.LevelWarn, "suspended account login", u.ID, email)
		return nil, common.ErrAccountSuspended
	}

	if err := s.users.TouchLastLogin(ctx, u.ID, time.Now().UTC()); err != nil {
		return nil, fmt.Errorf("updating last login: %w", err)
	}
	if err := s.gw.Set(storage.KeySession, u.ID); err != nil {
		return nil, fmt.Errorf("storing session: %w", err)
	}

	s.audit.Record(ctx, models.LevelInfo, "user logged in", u.ID, "")
	return u, nil
}

func (s *authService) Logout(ctx context.Context) error {
	u, err := s.Current(ctx)
	if err == nil {
		s.audit.Record(ctx, models.LevelInfo, "user logged out", u.ID, "")
	}
	return s.gw.Remove(storage.KeySession)
}

// Current resolves the stored session to a user record. A session pointing
// at a missing or deactivated user counts as no session and is removed, so
// the stale identifier does not linger in the store.
func (s *authService) Current(ctx context.Context) (*models.User, error) {
	id, ok, err := s.gw.Get(storage.KeySession)
	if err != nil {
		return nil, fmt.Errorf("reading session: %w", err)
	}
	if !ok || id == "" {
		return nil, common.ErrNoSession
	}
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		_ = s.gw.Remove(storage.KeySession)
		return nil, common.ErrNoSession
	}
	if !u.IsActive {
		_ = s.gw.Remove(storage.KeySession)
		return nil, common.ErrNoSession
	}
	return u, nil
}
