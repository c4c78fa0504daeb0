package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/zatekoja/stallsurvey/internal/domain/entities"
	"github.com/zatekoja/stallsurvey/internal/domain/repositories"
	"github.com/zatekoja/stallsurvey/internal/infrastructure/clients/postgres"
	apperrors "github.com/zatekoja/stallsurvey/pkg/errors"
)

const upsertUserQuery = `
	INSERT INTO users (id, email, name, role, created_at)
	VALUES (:id, :email, :name, :role, :created_at)
	ON CONFLICT (id) DO UPDATE SET
		email = EXCLUDED.email,
		name = EXCLUDED.name`

const selectUserColumns = `SELECT id, email, COALESCE(name, '') AS name, role, created_at FROM users`

// UserAdapter implements UserRepository on top of sqlx
type UserAdapter struct {
	db *sqlx.DB
}

// NewUserAdapter creates a new user adapter
func NewUserAdapter(client *postgres.Client) repositories.UserRepository {
	return &UserAdapter{db: client.SQLX()}
}

// Upsert creates a user or refreshes its email and name
func (a *UserAdapter) Upsert(ctx context.Context, user *entities.User) error {
	if _, err := a.db.NamedExecContext(ctx, upsertUserQuery, user); err != nil {
		return apperrors.NewInternalError("failed to upsert user", err)
	}
	return nil
}

// GetByID retrieves a user by ID
func (a *UserAdapter) GetByID(ctx context.Context, id string) (*entities.User, error) {
	var user entities.User
	err := a.db.GetContext(ctx, &user, selectUserColumns+` WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("user with id %s not found", id))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get user", err)
	}
	return &user, nil
}

// List retrieves every user
func (a *UserAdapter) List(ctx context.Context) ([]*entities.User, error) {
	users := make([]*entities.User, 0)
	if err := a.db.SelectContext(ctx, &users, selectUserColumns+` ORDER BY created_at ASC`); err != nil {
		return nil, apperrors.NewInternalError("failed to list users", err)
	}
	return users, nil
}
