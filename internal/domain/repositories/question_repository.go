package repositories

import (
	"context"

	"github.com/zatekoja/stallsurvey/internal/domain/entities"
)

// QuestionFilter narrows a question listing
type QuestionFilter struct {
	// ActiveOnly drops inactive questions
	ActiveOnly bool

	// Scope restricts to one scope when set
	Scope entities.QuestionScope
}

// QuestionRepository defines the interface for question data operations
type QuestionRepository interface {
	// Create creates a new question
	Create(ctx context.Context, question *entities.Question) error

	// GetByID retrieves a question by ID
	GetByID(ctx context.Context, id string) (*entities.Question, error)

	// List retrieves questions, newest first
	List(ctx context.Context, filter QuestionFilter) ([]*entities.Question, error)

	// ListEligible retrieves active global questions plus active specific
	// questions whose target stalls contain stallID. An empty stallID yields
	// global questions only.
	ListEligible(ctx context.Context, stallID string) ([]*entities.Question, error)

	// Delete removes a question
	Delete(ctx context.Context, id string) error
}

// QuestionSearchRepository defines full-text search over question texts
type QuestionSearchRepository interface {
	// Index adds or replaces a question in the index
	Index(ctx context.Context, question *entities.Question) error

	// Delete removes a question from the index
	Delete(ctx context.Context, id string) error

	// Search returns the ids of questions matching query, best match first
	Search(ctx context.Context, query string, limit int) ([]string, error)
}
