package errors_test

import (
	"database/sql"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	apperrors "github.com/zatekoja/stallsurvey/pkg/errors"
)

func TestAppError_ErrorIncludesCause(t *testing.T) {
	err := apperrors.NewInternalError("failed to list questions", sql.ErrConnDone)

	assert.Equal(t, "INTERNAL: failed to list questions: sql: connection is already closed", err.Error())
	assert.ErrorIs(t, err, sql.ErrConnDone)
}

func TestTypeOf(t *testing.T) {
	wrapped := fmt.Errorf("submit: %w", apperrors.NewConflictError("already answered"))

	assert.Equal(t, apperrors.ErrorTypeConflict, apperrors.TypeOf(wrapped))
	assert.Equal(t, apperrors.ErrorTypeInternal, apperrors.TypeOf(fmt.Errorf("plain")))
	assert.True(t, apperrors.IsType(wrapped, apperrors.ErrorTypeConflict))
	assert.False(t, apperrors.IsType(wrapped, apperrors.ErrorTypeNotFound))
}
