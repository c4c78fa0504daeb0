package repositories

import (
	"context"

	"github.com/zatekoja/stallsurvey/internal/domain/entities"
)

// ResponseRepository defines the interface for survey response operations.
// Responses are append-only.
type ResponseRepository interface {
	// Create records a response
	Create(ctx context.Context, response *entities.Response) error

	// ListByUser retrieves every response submitted by a user
	ListByUser(ctx context.Context, userID string) ([]*entities.Response, error)

	// ListByStallIDs retrieves responses given at any of the stalls
	ListByStallIDs(ctx context.Context, stallIDs []string) ([]*entities.Response, error)

	// List retrieves every response
	List(ctx context.Context) ([]*entities.Response, error)

	// ExistsForUserQuestion reports whether the user already answered the question
	ExistsForUserQuestion(ctx context.Context, userID, questionID string) (bool, error)
}
