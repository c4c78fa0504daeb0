package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/lib/pq"
	"github.com/zatekoja/stallsurvey/internal/domain/entities"
	"github.com/zatekoja/stallsurvey/internal/domain/repositories"
	"github.com/zatekoja/stallsurvey/internal/infrastructure/clients/postgres"
	apperrors "github.com/zatekoja/stallsurvey/pkg/errors"
)

const questionsTable = "questions"

var questionColumns = []interface{}{
	"id", "text", "options", "scope", "target_stalls", "active", "created_at",
}

// QuestionAdapter implements QuestionRepository
type QuestionAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewQuestionAdapter creates a new question adapter
func NewQuestionAdapter(client *postgres.Client) repositories.QuestionRepository {
	return &QuestionAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Create creates a new question
func (a *QuestionAdapter) Create(ctx context.Context, question *entities.Question) error {
	targets := question.TargetStalls
	if targets == nil {
		targets = []string{}
	}

	record := goqu.Record{
		"id":            question.ID,
		"text":          question.Text,
		"options":       pq.Array(question.Options),
		"scope":         string(question.Scope),
		"target_stalls": pq.Array(targets),
		"active":        question.Active,
		"created_at":    question.CreatedAt,
	}

	query, args, err := a.db.Insert(questionsTable).Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to create question", err)
	}

	return nil
}

// GetByID retrieves a question by ID
func (a *QuestionAdapter) GetByID(ctx context.Context, id string) (*entities.Question, error) {
	query, args, err := a.db.Select(questionColumns...).
		From(questionsTable).
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	question, err := scanQuestion(a.client.DB().QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("question with id %s not found", id))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get question", err)
	}

	return question, nil
}

// List retrieves questions, newest first
func (a *QuestionAdapter) List(ctx context.Context, filter repositories.QuestionFilter) ([]*entities.Question, error) {
	ds := a.db.Select(questionColumns...).From(questionsTable)

	if filter.ActiveOnly {
		ds = ds.Where(goqu.Ex{"active": true})
	}
	if filter.Scope != "" {
		ds = ds.Where(goqu.Ex{"scope": string(filter.Scope)})
	}

	return a.query(ctx, ds.Order(goqu.I("created_at").Desc(), goqu.I("id").Asc()))
}

// ListEligible retrieves the active questions that may be shown at stallID
func (a *QuestionAdapter) ListEligible(ctx context.Context, stallID string) ([]*entities.Question, error) {
	scope := goqu.Or(goqu.Ex{"scope": string(entities.QuestionScopeGlobal)})

	stallID = entities.NormalizeStallID(stallID)
	if stallID != "" {
		scope = scope.Append(goqu.And(
			goqu.Ex{"scope": string(entities.QuestionScopeSpecific)},
			goqu.L("? = ANY(target_stalls)", stallID),
		))
	}

	ds := a.db.Select(questionColumns...).
		From(questionsTable).
		Where(goqu.Ex{"active": true}, scope).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Asc())

	return a.query(ctx, ds)
}

// Delete removes a question
func (a *QuestionAdapter) Delete(ctx context.Context, id string) error {
	query, args, err := a.db.Delete(questionsTable).
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build delete query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to delete question", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to get rows affected", err)
	}

	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("question with id %s not found", id))
	}

	return nil
}

func (a *QuestionAdapter) query(ctx context.Context, ds *goqu.SelectDataset) ([]*entities.Question, error) {
	query, args, err := ds.ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list questions", err)
	}
	defer rows.Close()

	questions := make([]*entities.Question, 0)
	for rows.Next() {
		question, err := scanQuestion(rows)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan question", err)
		}
		questions = append(questions, question)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to iterate questions", err)
	}

	return questions, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanQuestion(row rowScanner) (*entities.Question, error) {
	question := &entities.Question{}
	var scope string
	var targets []string

	err := row.Scan(
		&question.ID,
		&question.Text,
		pq.Array(&question.Options),
		&scope,
		pq.Array(&targets),
		&question.Active,
		&question.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	question.Scope = entities.QuestionScope(scope)
	if len(targets) > 0 {
		question.TargetStalls = targets
	}

	return question, nil
}
