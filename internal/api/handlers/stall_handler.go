package handlers

import (
	"context"
	"net/http"

	"github.com/zatekoja/stallsurvey/internal/application/services"
	"github.com/zatekoja/stallsurvey/internal/domain/entities"
)

// StallService defines the stall operations used by the handler
type StallService interface {
	Register(ctx context.Context, ownerID string, input services.RegisterStallInput) (*entities.Stall, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*entities.Stall, error)
}

// StallHandler handles stall registration for shop owners
type StallHandler struct {
	service StallService
}

// NewStallHandler creates a new stall handler
func NewStallHandler(service StallService) *StallHandler {
	return &StallHandler{service: service}
}

// RegisterStall handles POST /api/stalls
func (h *StallHandler) RegisterStall(w http.ResponseWriter, r *http.Request) {
	principal, ok := callerOrReject(w, r)
	if !ok {
		return
	}

	var input services.RegisterStallInput
	if err := decodeJSON(r, &input); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	stall, err := h.service.Register(r.Context(), principal.UserID, input)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, stall)
}

// ListOwnedStalls handles GET /api/stalls/mine
func (h *StallHandler) ListOwnedStalls(w http.ResponseWriter, r *http.Request) {
	principal, ok := callerOrReject(w, r)
	if !ok {
		return
	}

	stalls, err := h.service.ListByOwner(r.Context(), principal.UserID)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"stalls": stalls,
		"count":  len(stalls),
	})
}
