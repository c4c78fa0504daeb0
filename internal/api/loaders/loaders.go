package loaders

import (
	"context"
	"fmt"
	"net/http"

	"github.com/graph-gophers/dataloader/v7"
	"github.com/zatekoja/stallsurvey/internal/domain/entities"
	"github.com/zatekoja/stallsurvey/internal/domain/repositories"
	apperrors "github.com/zatekoja/stallsurvey/pkg/errors"
)

type ctxKey string

const loadersKey ctxKey = "dataloaders"

// Loaders contains the request-scoped dataloaders
type Loaders struct {
	StallLoader *dataloader.Loader[string, *entities.Stall]
}

// NewLoaders creates a new instance of Loaders. Stall lookups are batched
// at most MaxInQueryItems keys at a time.
func NewLoaders(stallRepo repositories.StallRepository) *Loaders {
	return &Loaders{
		StallLoader: dataloader.NewBatchedLoader(
			func(ctx context.Context, keys []string) []*dataloader.Result[*entities.Stall] {
				results := make([]*dataloader.Result[*entities.Stall], len(keys))
				stalls, err := stallRepo.GetByStallIDs(ctx, keys)

				stallMap := make(map[string]*entities.Stall, len(stalls))
				if err == nil {
					for _, s := range stalls {
						stallMap[s.StallID] = s
					}
				}

				for i, key := range keys {
					if err != nil {
						results[i] = &dataloader.Result[*entities.Stall]{Error: err}
					} else if s, ok := stallMap[key]; ok {
						results[i] = &dataloader.Result[*entities.Stall]{Data: s}
					} else {
						results[i] = &dataloader.Result[*entities.Stall]{Error: apperrors.NewNotFoundError(fmt.Sprintf("stall %s not found", key))}
					}
				}
				return results
			},
			dataloader.WithBatchCapacity[string, *entities.Stall](repositories.MaxInQueryItems),
		),
	}
}

// For returns the loaders for a given context, or nil when none are attached
func For(ctx context.Context) *Loaders {
	l, _ := ctx.Value(loadersKey).(*Loaders)
	return l
}

// WithLoaders returns a new context with the loaders attached
func WithLoaders(ctx context.Context, loaders *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, loaders)
}

// Middleware attaches a fresh set of loaders to every request
func Middleware(stallRepo repositories.StallRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := WithLoaders(r.Context(), NewLoaders(stallRepo))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// LoadStalls resolves stall ids through the request loader, skipping ids
// that do not name a registered stall. Without loaders in ctx it falls back
// to a direct repository read.
func LoadStalls(ctx context.Context, stallRepo repositories.StallRepository, stallIDs []string) (map[string]*entities.Stall, error) {
	found := make(map[string]*entities.Stall, len(stallIDs))
	if len(stallIDs) == 0 {
		return found, nil
	}

	l := For(ctx)
	if l == nil {
		stalls, err := stallRepo.GetByStallIDs(ctx, stallIDs)
		if err != nil {
			return nil, err
		}
		for _, s := range stalls {
			found[s.StallID] = s
		}
		return found, nil
	}

	stalls, errs := l.StallLoader.LoadMany(ctx, stallIDs)()
	for i, s := range stalls {
		if i < len(errs) && errs[i] != nil {
			if apperrors.IsType(errs[i], apperrors.ErrorTypeNotFound) {
				continue
			}
			return nil, errs[i]
		}
		if s != nil {
			found[s.StallID] = s
		}
	}
	return found, nil
}
