package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/zatekoja/stallsurvey/internal/domain/entities"
	"github.com/zatekoja/stallsurvey/internal/domain/providers"
	"github.com/zatekoja/stallsurvey/internal/domain/repositories"
	apperrors "github.com/zatekoja/stallsurvey/pkg/errors"
)

// RegisterStallInput is a shop owner's request to register a stall
type RegisterStallInput struct {
	StallID  string `json:"stall_id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

// StallService handles stall registration and lookup
type StallService struct {
	repo     repositories.StallRepository
	eventBus providers.EventBus
	clock    providers.Clock
}

// NewStallService creates a new stall service
func NewStallService(repo repositories.StallRepository, eventBus providers.EventBus, clock providers.Clock) *StallService {
	return &StallService{
		repo:     repo,
		eventBus: eventBus,
		clock:    clock,
	}
}

// Register creates a stall owned by ownerID. The stall id is stored in
// lowercase and must not already be taken.
func (s *StallService) Register(ctx context.Context, ownerID string, input RegisterStallInput) (*entities.Stall, error) {
	name := strings.TrimSpace(input.Name)
	rawID := strings.TrimSpace(input.StallID)

	if name == "" || rawID == "" {
		return nil, apperrors.NewValidationError("stall name and stall id are required")
	}
	if !entities.IsValidStallID(rawID) {
		return nil, apperrors.NewValidationError("stall id may only contain letters, numbers and underscores")
	}
	if ownerID == "" {
		return nil, apperrors.NewUnauthorizedError("owner is required")
	}

	stallID := entities.NormalizeStallID(rawID)

	existing, err := s.repo.GetByStallID(ctx, stallID)
	if err != nil && !apperrors.IsType(err, apperrors.ErrorTypeNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.NewConflictError("stall id is already registered")
	}

	stall := &entities.Stall{
		ID:        uuid.NewString(),
		StallID:   stallID,
		Name:      name,
		Location:  strings.TrimSpace(input.Location),
		OwnerID:   ownerID,
		CreatedAt: s.clock.Now(),
	}
	if err := s.repo.Create(ctx, stall); err != nil {
		return nil, err
	}

	event := entities.NewSurveyEvent(entities.SurveyEventTypeStallRegistered, stall.CreatedAt)
	event.StallID = stall.StallID
	event.OwnerID = ownerID
	publishSurveyEvent(ctx, s.eventBus, event)

	return stall, nil
}

// ListByOwner returns the stalls owned by ownerID
func (s *StallService) ListByOwner(ctx context.Context, ownerID string) ([]*entities.Stall, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

// GetByStallID resolves a stall from any casing of its stall id
func (s *StallService) GetByStallID(ctx context.Context, stallID string) (*entities.Stall, error) {
	return s.repo.GetByStallID(ctx, entities.NormalizeStallID(stallID))
}
