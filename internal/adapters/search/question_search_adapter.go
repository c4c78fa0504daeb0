package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/typesense/typesense-go/v2/typesense/api"
	"github.com/typesense/typesense-go/v2/typesense/api/pointer"
	"github.com/zatekoja/stallsurvey/internal/domain/entities"
	"github.com/zatekoja/stallsurvey/internal/domain/repositories"
	tsclient "github.com/zatekoja/stallsurvey/internal/infrastructure/clients/typesense"
)

// TypesenseQuestionAdapter implements question search using Typesense
type TypesenseQuestionAdapter struct {
	client *tsclient.Client
}

var _ repositories.QuestionSearchRepository = (*TypesenseQuestionAdapter)(nil)

// NewTypesenseQuestionAdapter creates a new Typesense question adapter
func NewTypesenseQuestionAdapter(client *tsclient.Client) *TypesenseQuestionAdapter {
	return &TypesenseQuestionAdapter{client: client}
}

// Index upserts a question document
func (a *TypesenseQuestionAdapter) Index(ctx context.Context, question *entities.Question) error {
	_, err := a.client.Client().Collection(tsclient.QuestionsCollection).Documents().Upsert(ctx, questionDocument(question))
	if err != nil {
		return fmt.Errorf("failed to index question: %w", err)
	}
	return nil
}

// Delete removes a question from the index
func (a *TypesenseQuestionAdapter) Delete(ctx context.Context, id string) error {
	_, err := a.client.Client().Collection(tsclient.QuestionsCollection).Document(id).Delete(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete question from index: %w", err)
	}
	return nil
}

// Search returns matching question ids, best match first
func (a *TypesenseQuestionAdapter) Search(ctx context.Context, query string, limit int) ([]string, error) {
	result, err := a.client.Client().Collection(tsclient.QuestionsCollection).Documents().Search(ctx, searchParams(query, limit))
	if err != nil {
		return nil, fmt.Errorf("failed to search questions: %w", err)
	}

	ids := []string{}
	if result.Hits == nil {
		return ids, nil
	}
	for _, hit := range *result.Hits {
		if hit.Document == nil {
			continue
		}
		if id, ok := (*hit.Document)["id"].(string); ok {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func searchParams(query string, limit int) *api.SearchCollectionParams {
	q := strings.TrimSpace(query)
	if q == "" {
		q = "*"
	}
	return &api.SearchCollectionParams{
		Q:        pointer.String(q),
		QueryBy:  pointer.String("text,options,target_stalls"),
		FilterBy: pointer.String("active:=true"),
		PerPage:  pointer.Int(limit),
	}
}

func questionDocument(q *entities.Question) map[string]interface{} {
	doc := map[string]interface{}{
		"id":         q.ID,
		"text":       q.Text,
		"scope":      string(q.Scope),
		"active":     q.Active,
		"created_at": q.CreatedAt.Unix(),
	}
	if len(q.Options) > 0 {
		doc["options"] = q.Options
	}
	if len(q.TargetStalls) > 0 {
		doc["target_stalls"] = q.TargetStalls
	}
	return doc
}
