package repositories

import (
	"context"

	"github.com/zatekoja/stallsurvey/internal/domain/entities"
)

// MaxInQueryItems is the largest id set sent in one "member of" predicate.
// Larger sets are split into batches and the results merged.
const MaxInQueryItems = 30

// StallRepository defines the interface for stall data operations
type StallRepository interface {
	// Create creates a new stall
	Create(ctx context.Context, stall *entities.Stall) error

	// GetByStallID retrieves a stall by its public stall id
	GetByStallID(ctx context.Context, stallID string) (*entities.Stall, error)

	// GetByStallIDs retrieves the stalls whose stall id is in stallIDs.
	// Unknown ids are skipped.
	GetByStallIDs(ctx context.Context, stallIDs []string) ([]*entities.Stall, error)

	// ListByOwner retrieves the stalls owned by a user
	ListByOwner(ctx context.Context, ownerID string) ([]*entities.Stall, error)

	// List retrieves every stall
	List(ctx context.Context) ([]*entities.Stall, error)
}
