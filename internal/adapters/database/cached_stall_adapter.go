package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/zatekoja/stallsurvey/internal/domain/entities"
	"github.com/zatekoja/stallsurvey/internal/domain/providers"
	"github.com/zatekoja/stallsurvey/internal/domain/repositories"
	"github.com/zatekoja/stallsurvey/internal/infrastructure/observability"
)

const (
	// stallByIDTTL is how long a single stall stays cached, in seconds
	stallByIDTTL = 300

	stallCacheFamily = "stall"
)

// CachedStallAdapter wraps a StallRepository with read-through caching of
// single stall lookups
type CachedStallAdapter struct {
	adapter repositories.StallRepository
	cache   providers.CacheProvider
	metrics *observability.Metrics
}

// NewCachedStallAdapter creates a new cached stall adapter. metrics may be nil.
func NewCachedStallAdapter(adapter repositories.StallRepository, cache providers.CacheProvider, metrics *observability.Metrics) repositories.StallRepository {
	return &CachedStallAdapter{
		adapter: adapter,
		cache:   cache,
		metrics: metrics,
	}
}

func stallCacheKey(stallID string) string {
	return fmt.Sprintf("stall:%s", stallID)
}

// Create creates a stall and drops any cached entry under its id
func (a *CachedStallAdapter) Create(ctx context.Context, stall *entities.Stall) error {
	if err := a.adapter.Create(ctx, stall); err != nil {
		return err
	}

	if err := a.cache.Delete(ctx, stallCacheKey(stall.StallID)); err != nil {
		log.Warn().Err(err).Str("stall_id", stall.StallID).Msg("Failed to invalidate cached stall")
	}
	return nil
}

// GetByStallID retrieves a stall, serving it from cache when possible
func (a *CachedStallAdapter) GetByStallID(ctx context.Context, stallID string) (*entities.Stall, error) {
	cacheKey := stallCacheKey(stallID)

	cached, err := a.cache.Get(ctx, cacheKey)
	switch {
	case err == nil:
		var stall entities.Stall
		if err := json.Unmarshal(cached, &stall); err == nil {
			observability.RecordCacheLookup(ctx, a.metrics, stallCacheFamily, true)
			return &stall, nil
		}
		log.Warn().Str("stall_id", stallID).Msg("Discarding unreadable cached stall")
	case !errors.Is(err, providers.ErrCacheMiss):
		log.Warn().Err(err).Str("stall_id", stallID).Msg("Stall cache read failed")
	}
	observability.RecordCacheLookup(ctx, a.metrics, stallCacheFamily, false)

	stall, err := a.adapter.GetByStallID(ctx, stallID)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(stall); err == nil {
		if err := a.cache.Set(ctx, cacheKey, data, stallByIDTTL); err != nil {
			log.Warn().Err(err).Str("stall_id", stallID).Msg("Failed to cache stall")
		}
	}

	return stall, nil
}

// GetByStallIDs is not cached
func (a *CachedStallAdapter) GetByStallIDs(ctx context.Context, stallIDs []string) ([]*entities.Stall, error) {
	return a.adapter.GetByStallIDs(ctx, stallIDs)
}

// ListByOwner is not cached
func (a *CachedStallAdapter) ListByOwner(ctx context.Context, ownerID string) ([]*entities.Stall, error) {
	return a.adapter.ListByOwner(ctx, ownerID)
}

// List is not cached
func (a *CachedStallAdapter) List(ctx context.Context) ([]*entities.Stall, error) {
	return a.adapter.List(ctx)
}
