package handlers

import (
	"context"
	"net/http"

	"github.com/zatekoja/stallsurvey/internal/application/services"
	"github.com/zatekoja/stallsurvey/internal/domain/entities"
)

// UserService defines the user operations used by the handler
type UserService interface {
	Register(ctx context.Context, profile services.UserProfile) (*entities.User, error)
}

// UserHandler handles user profile requests
type UserHandler struct {
	service UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(service UserService) *UserHandler {
	return &UserHandler{service: service}
}

// RegisterSelf handles POST /api/users/me
func (h *UserHandler) RegisterSelf(w http.ResponseWriter, r *http.Request) {
	principal, ok := callerOrReject(w, r)
	if !ok {
		return
	}

	user, err := h.service.Register(r.Context(), services.UserProfile{
		ID:    principal.UserID,
		Email: principal.Email,
		Name:  principal.Name,
		Role:  principal.Role,
	})
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, user)
}
