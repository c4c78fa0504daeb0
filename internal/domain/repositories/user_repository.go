package repositories

import (
	"context"

	"github.com/zatekoja/stallsurvey/internal/domain/entities"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	// Upsert creates a user or refreshes its email and name. The stored role
	// and creation time are never overwritten.
	Upsert(ctx context.Context, user *entities.User) error

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id string) (*entities.User, error)

	// List retrieves every user
	List(ctx context.Context) ([]*entities.User, error)
}
