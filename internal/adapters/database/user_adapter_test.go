package database_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zatekoja/stallsurvey/internal/adapters/database"
	"github.com/zatekoja/stallsurvey/internal/domain/entities"
	apperrors "github.com/zatekoja/stallsurvey/pkg/errors"
)

func TestUserAdapter_UpsertKeepsRole(t *testing.T) {
	client, mock := setupMockClient(t)
	adapter := database.NewUserAdapter(client)
	created := time.Date(2026, time.January, 5, 8, 0, 0, 0, time.UTC)

	mock.ExpectExec(`(?s)INSERT INTO users .+ON CONFLICT \(id\) DO UPDATE SET\s+email = EXCLUDED.email,\s+name = EXCLUDED.name$`).
		WithArgs("u1", "a@example.com", "Asha", entities.UserRoleUser, created).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := adapter.Upsert(context.Background(), &entities.User{
		ID:        "u1",
		Email:     "a@example.com",
		Name:      "Asha",
		Role:      entities.UserRoleUser,
		CreatedAt: created,
	})

	require.NoError(t, err)
}

func TestUserAdapter_GetByID(t *testing.T) {
	client, mock := setupMockClient(t)
	adapter := database.NewUserAdapter(client)
	created := time.Date(2026, time.January, 5, 8, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`FROM users WHERE id = \$1`).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "name", "role", "created_at"}).
			AddRow("u1", "a@example.com", "", "shop", created))

	user, err := adapter.GetByID(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, entities.UserRoleShop, user.Role)
	assert.Equal(t, created, user.CreatedAt)
}

func TestUserAdapter_GetByIDNotFound(t *testing.T) {
	client, mock := setupMockClient(t)
	adapter := database.NewUserAdapter(client)

	mock.ExpectQuery(`FROM users WHERE id = \$1`).
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "name", "role", "created_at"}))

	_, err := adapter.GetByID(context.Background(), "ghost")

	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))
}
