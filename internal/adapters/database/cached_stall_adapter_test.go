package database_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/zatekoja/stallsurvey/internal/adapters/database"
	"github.com/zatekoja/stallsurvey/internal/domain/entities"
	"github.com/zatekoja/stallsurvey/internal/domain/providers"
	"github.com/zatekoja/stallsurvey/internal/infrastructure/observability/metrictest"
	apperrors "github.com/zatekoja/stallsurvey/pkg/errors"
	"github.com/zatekoja/stallsurvey/tests/mocks"
)

func TestCachedStallAdapter_GetByStallIDHit(t *testing.T) {
	repo := mocks.NewMockStallRepository(t)
	cache := mocks.NewMockCacheProvider(t)
	metrics := metrictest.New(t)
	adapter := database.NewCachedStallAdapter(repo, cache, metrics.Metrics)

	data, err := json.Marshal(&entities.Stall{StallID: "chai_1", Name: "Chai"})
	require.NoError(t, err)
	cache.EXPECT().Get(mock.Anything, "stall:chai_1").Return(data, nil)

	stall, err := adapter.GetByStallID(context.Background(), "chai_1")

	require.NoError(t, err)
	assert.Equal(t, "Chai", stall.Name)
	assert.Equal(t, int64(1), metrics.Count("cache.hit.count", "cache.family", "stall"))
	assert.Equal(t, int64(0), metrics.Count("cache.miss.count", "cache.family", "stall"))
}

func TestCachedStallAdapter_GetByStallIDMiss(t *testing.T) {
	repo := mocks.NewMockStallRepository(t)
	cache := mocks.NewMockCacheProvider(t)
	metrics := metrictest.New(t)
	adapter := database.NewCachedStallAdapter(repo, cache, metrics.Metrics)

	cache.EXPECT().Get(mock.Anything, "stall:chai_1").Return(nil, providers.ErrCacheMiss)
	repo.EXPECT().GetByStallID(mock.Anything, "chai_1").Return(&entities.Stall{StallID: "chai_1", Name: "Chai"}, nil)
	cache.EXPECT().Set(mock.Anything, "stall:chai_1", mock.Anything, 300).Return(nil)

	stall, err := adapter.GetByStallID(context.Background(), "chai_1")

	require.NoError(t, err)
	assert.Equal(t, "chai_1", stall.StallID)
	assert.Equal(t, int64(1), metrics.Count("cache.miss.count", "cache.family", "stall"))
	assert.Equal(t, int64(0), metrics.Count("cache.hit.count", "cache.family", "stall"))
}

func TestCachedStallAdapter_NotFoundIsNotCached(t *testing.T) {
	repo := mocks.NewMockStallRepository(t)
	cache := mocks.NewMockCacheProvider(t)
	adapter := database.NewCachedStallAdapter(repo, cache, nil)

	cache.EXPECT().Get(mock.Anything, "stall:ghost").Return(nil, providers.ErrCacheMiss)
	repo.EXPECT().GetByStallID(mock.Anything, "ghost").Return(nil, apperrors.NewNotFoundError("stall not found"))

	_, err := adapter.GetByStallID(context.Background(), "ghost")

	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))
}

func TestCachedStallAdapter_CreateInvalidates(t *testing.T) {
	repo := mocks.NewMockStallRepository(t)
	cache := mocks.NewMockCacheProvider(t)
	adapter := database.NewCachedStallAdapter(repo, cache, nil)
	stall := &entities.Stall{StallID: "chai_1"}

	repo.EXPECT().Create(mock.Anything, stall).Return(nil)
	cache.EXPECT().Delete(mock.Anything, "stall:chai_1").Return(nil)

	require.NoError(t, adapter.Create(context.Background(), stall))
}
