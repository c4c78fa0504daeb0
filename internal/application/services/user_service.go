package services

import (
	"context"
	"strings"

	"github.com/zatekoja/stallsurvey/internal/domain/entities"
	"github.com/zatekoja/stallsurvey/internal/domain/providers"
	"github.com/zatekoja/stallsurvey/internal/domain/repositories"
	apperrors "github.com/zatekoja/stallsurvey/pkg/errors"
)

// UserProfile is the identity carried by a verified token
type UserProfile struct {
	ID    string
	Email string
	Name  string
	Role  entities.UserRole
}

// UserService keeps the users table in step with the identity provider
type UserService struct {
	repo  repositories.UserRepository
	clock providers.Clock
}

// NewUserService creates a new user service
func NewUserService(repo repositories.UserRepository, clock providers.Clock) *UserService {
	return &UserService{repo: repo, clock: clock}
}

// Register records the caller on first sight and refreshes email and name
// afterwards. The stored user is returned.
func (s *UserService) Register(ctx context.Context, profile UserProfile) (*entities.User, error) {
	if profile.ID == "" {
		return nil, apperrors.NewUnauthorizedError("user id is required")
	}

	role := profile.Role
	if !role.Valid() {
		role = entities.UserRoleUser
	}

	user := &entities.User{
		ID:        profile.ID,
		Email:     strings.TrimSpace(profile.Email),
		Name:      strings.TrimSpace(profile.Name),
		Role:      role,
		CreatedAt: s.clock.Now(),
	}
	if err := s.repo.Upsert(ctx, user); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, profile.ID)
}
