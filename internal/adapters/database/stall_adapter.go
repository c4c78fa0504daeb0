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
	"github.com/zatekoja/stallsurvey/pkg/utils"
)

const stallsTable = "stalls"

var stallColumns = []interface{}{
	"id", "stall_id", "name", "location", "owner_id", "created_at",
}

// StallAdapter implements StallRepository
type StallAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewStallAdapter creates a new stall adapter
func NewStallAdapter(client *postgres.Client) repositories.StallRepository {
	return &StallAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Create creates a new stall. A duplicate stall id is reported as a conflict.
func (a *StallAdapter) Create(ctx context.Context, stall *entities.Stall) error {
	record := goqu.Record{
		"id":         stall.ID,
		"stall_id":   stall.StallID,
		"name":       stall.Name,
		"location":   sql.NullString{String: stall.Location, Valid: stall.Location != ""},
		"owner_id":   stall.OwnerID,
		"created_at": stall.CreatedAt,
	}

	query, args, err := a.db.Insert(stallsTable).Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewConflictError(fmt.Sprintf("stall id %s is already registered", stall.StallID))
		}
		return apperrors.NewInternalError("failed to create stall", err)
	}

	return nil
}

// GetByStallID retrieves a stall by its public stall id
func (a *StallAdapter) GetByStallID(ctx context.Context, stallID string) (*entities.Stall, error) {
	query, args, err := a.db.Select(stallColumns...).
		From(stallsTable).
		Where(goqu.Ex{"stall_id": stallID}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	stall, err := scanStall(a.client.DB().QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("stall with stall id %s not found", stallID))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get stall", err)
	}

	return stall, nil
}

// GetByStallIDs retrieves stalls by stall id, querying in batches of
// MaxInQueryItems and merging the results
func (a *StallAdapter) GetByStallIDs(ctx context.Context, stallIDs []string) ([]*entities.Stall, error) {
	stalls := make([]*entities.Stall, 0, len(stallIDs))

	for _, batch := range utils.ChunkStrings(utils.UniqueStrings(stallIDs), repositories.MaxInQueryItems) {
		ds := a.db.Select(stallColumns...).
			From(stallsTable).
			Where(goqu.Ex{"stall_id": batch}).
			Order(goqu.I("stall_id").Asc())

		found, err := a.query(ctx, ds)
		if err != nil {
			return nil, err
		}
		stalls = append(stalls, found...)
	}

	return stalls, nil
}

// ListByOwner retrieves the stalls owned by a user
func (a *StallAdapter) ListByOwner(ctx context.Context, ownerID string) ([]*entities.Stall, error) {
	ds := a.db.Select(stallColumns...).
		From(stallsTable).
		Where(goqu.Ex{"owner_id": ownerID}).
		Order(goqu.I("created_at").Asc(), goqu.I("stall_id").Asc())

	return a.query(ctx, ds)
}

// List retrieves every stall
func (a *StallAdapter) List(ctx context.Context) ([]*entities.Stall, error) {
	ds := a.db.Select(stallColumns...).
		From(stallsTable).
		Order(goqu.I("stall_id").Asc())

	return a.query(ctx, ds)
}

func (a *StallAdapter) query(ctx context.Context, ds *goqu.SelectDataset) ([]*entities.Stall, error) {
	query, args, err := ds.ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list stalls", err)
	}
	defer rows.Close()

	stalls := make([]*entities.Stall, 0)
	for rows.Next() {
		stall, err := scanStall(rows)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan stall", err)
		}
		stalls = append(stalls, stall)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to iterate stalls", err)
	}

	return stalls, nil
}

func scanStall(row rowScanner) (*entities.Stall, error) {
	stall := &entities.Stall{}
	var location sql.NullString

	err := row.Scan(
		&stall.ID,
		&stall.StallID,
		&stall.Name,
		&location,
		&stall.OwnerID,
		&stall.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	stall.Location = location.String
	return stall, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
