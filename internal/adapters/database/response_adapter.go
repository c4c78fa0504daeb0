package database

import (
	"context"
	"database/sql"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/zatekoja/stallsurvey/internal/domain/entities"
	"github.com/zatekoja/stallsurvey/internal/domain/repositories"
	"github.com/zatekoja/stallsurvey/internal/infrastructure/clients/postgres"
	apperrors "github.com/zatekoja/stallsurvey/pkg/errors"
	"github.com/zatekoja/stallsurvey/pkg/utils"
)

const responsesTable = "user_responses"

var responseColumns = []interface{}{
	"id", "user_id", "question_id", "stall_id", "answer", "submitted_at",
}

// ResponseAdapter implements ResponseRepository
type ResponseAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewResponseAdapter creates a new response adapter
func NewResponseAdapter(client *postgres.Client) repositories.ResponseRepository {
	return &ResponseAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Create records a response. A second answer from the same user to the same
// question is reported as a conflict.
func (a *ResponseAdapter) Create(ctx context.Context, response *entities.Response) error {
	record := goqu.Record{
		"id":           response.ID,
		"user_id":      response.UserID,
		"question_id":  response.QuestionID,
		"stall_id":     sql.NullString{String: response.StallID, Valid: response.StallID != ""},
		"answer":       response.Answer,
		"submitted_at": sql.NullTime{Time: response.SubmittedAt, Valid: !response.SubmittedAt.IsZero()},
	}

	query, args, err := a.db.Insert(responsesTable).Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewConflictError("question has already been answered")
		}
		return apperrors.NewInternalError("failed to create response", err)
	}

	return nil
}

// ListByUser retrieves every response submitted by a user
func (a *ResponseAdapter) ListByUser(ctx context.Context, userID string) ([]*entities.Response, error) {
	ds := a.db.Select(responseColumns...).
		From(responsesTable).
		Where(goqu.Ex{"user_id": userID}).
		Order(goqu.I("submitted_at").Desc())

	return a.query(ctx, ds)
}

// ListByStallIDs retrieves responses given at any of the stalls, querying in
// batches of MaxInQueryItems and merging the results
func (a *ResponseAdapter) ListByStallIDs(ctx context.Context, stallIDs []string) ([]*entities.Response, error) {
	responses := make([]*entities.Response, 0)

	for _, batch := range utils.ChunkStrings(utils.UniqueStrings(stallIDs), repositories.MaxInQueryItems) {
		ds := a.db.Select(responseColumns...).
			From(responsesTable).
			Where(goqu.Ex{"stall_id": batch}).
			Order(goqu.I("submitted_at").Desc())

		found, err := a.query(ctx, ds)
		if err != nil {
			return nil, err
		}
		responses = append(responses, found...)
	}

	return responses, nil
}

// List retrieves every response
func (a *ResponseAdapter) List(ctx context.Context) ([]*entities.Response, error) {
	ds := a.db.Select(responseColumns...).
		From(responsesTable).
		Order(goqu.I("submitted_at").Desc())

	return a.query(ctx, ds)
}

// ExistsForUserQuestion reports whether the user already answered the question
func (a *ResponseAdapter) ExistsForUserQuestion(ctx context.Context, userID, questionID string) (bool, error) {
	query, args, err := a.db.Select(goqu.COUNT("*")).
		From(responsesTable).
		Where(goqu.Ex{"user_id": userID, "question_id": questionID}).
		ToSQL()
	if err != nil {
		return false, apperrors.NewInternalError("failed to build count query", err)
	}

	var count int
	if err := a.client.DB().QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, apperrors.NewInternalError("failed to count responses", err)
	}

	return count > 0, nil
}

func (a *ResponseAdapter) query(ctx context.Context, ds *goqu.SelectDataset) ([]*entities.Response, error) {
	query, args, err := ds.ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list responses", err)
	}
	defer rows.Close()

	responses := make([]*entities.Response, 0)
	for rows.Next() {
		response := &entities.Response{}
		var stallID sql.NullString
		var submittedAt sql.NullTime

		if err := rows.Scan(
			&response.ID,
			&response.UserID,
			&response.QuestionID,
			&stallID,
			&response.Answer,
			&submittedAt,
		); err != nil {
			return nil, apperrors.NewInternalError("failed to scan response", err)
		}

		response.StallID = stallID.String
		if submittedAt.Valid {
			response.SubmittedAt = submittedAt.Time
		}
		responses = append(responses, response)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to iterate responses", err)
	}

	return responses, nil
}
