package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Mdnajimuddinhelal70/medicine-management-server/internal/apperr"
	"github.com/Mdnajimuddinhelal70/medicine-management-server/internal/auth"
	"github.com/Mdnajimuddinhelal70/medicine-management-server/internal/models"
	"github.com/Mdnajimuddinhelal70/medicine-management-server/internal/repository"
)

// AuthService covers token issuance, registration and role management.
type AuthService struct {
	users  repository.UserStore
	tokens *auth.Manager
	log    *zap.SugaredLogger
}

func NewAuthService(users repository.UserStore, tokens *auth.Manager, log *zap.SugaredLogger) *AuthService {
	return &AuthService{users: users, tokens: tokens, log: log}
}

// IssueToken signs an access token for the email claim. The identity is not
// checked against the user store; issuance is a pure signing operation.
func (s *AuthService) IssueToken(email string) (string, error) {
	if email == "" {
		return "", fmt.Errorf("%w: email is required", apperr.ErrInvalidArgument)
	}
	return s.tokens.Issue(email)
}

// Register creates the user on first sight. Registering an existing email is
// a no-op reporting ErrAlreadyExists; self-service registration can never
// set a role.
func (s *AuthService) Register(ctx context.Context, u models.User) (string, error) {
	if u.Email == "" {
		return "", fmt.Errorf("%w: email is required", apperr.ErrInvalidArgument)
	}

	_, err := s.users.FindByEmail(ctx, u.Email)
	if err == nil {
		return "", apperr.ErrAlreadyExists
	}
	if !errors.Is(err, apperr.ErrNotFound) {
		return "", err
	}

	u.Role = models.RoleUser
	u.CreatedAt = time.Now()
	id, err := s.users.Insert(ctx, u)
	if err != nil {
		return "", err
	}
	s.log.Infow("user registered", "email", u.Email)
	return id, nil
}

func (s *AuthService) GetUser(ctx context.Context, email string) (*models.User, error) {
	return s.users.FindByEmail(ctx, email)
}

// IsAdmin reports whether the stored role for email is admin. An absent
// user is simply not an admin.
func (s *AuthService) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, apperr.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return user.Role == models.RoleAdmin, nil
}

func (s *AuthService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.users.List(ctx)
}

// UpdateRole overwrites the stored role. The desired role must belong to
// the enumeration; anything else is rejected before the store is touched.
func (s *AuthService) UpdateRole(ctx context.Context, id, roleStr string) (int64, error) {
	role, err := models.ParseRole(roleStr)
	if err != nil {
		return 0, err
	}
	modified, err := s.users.UpdateRole(ctx, id, role)
	if err != nil {
		return 0, err
	}
	s.log.Infow("role updated", "user_id", id, "role", role)
	return modified, nil
}
