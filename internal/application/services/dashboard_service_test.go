package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/zatekoja/stallsurvey/internal/application/services"
	"github.com/zatekoja/stallsurvey/internal/domain/entities"
	"github.com/zatekoja/stallsurvey/internal/domain/repositories"
	"github.com/zatekoja/stallsurvey/internal/infrastructure/observability/metrictest"
	"github.com/zatekoja/stallsurvey/tests/mocks"
)

type dashboardFixture struct {
	questions *mocks.MockQuestionRepository
	stalls    *mocks.MockStallRepository
	responses *mocks.MockResponseRepository
	users     *mocks.MockUserRepository
	cache     *memoryCache
	metrics   *metrictest.Recorder
	service   *services.DashboardService
}

func newDashboardFixture(t *testing.T) *dashboardFixture {
	f := &dashboardFixture{
		questions: mocks.NewMockQuestionRepository(t),
		stalls:    mocks.NewMockStallRepository(t),
		responses: mocks.NewMockResponseRepository(t),
		users:     mocks.NewMockUserRepository(t),
		cache:     newMemoryCache(),
		metrics:   metrictest.New(t),
	}
	f.service = services.NewDashboardService(f.questions, f.stalls, f.responses, f.users, f.cache, fixedClock(), 60, f.metrics.Metrics)
	return f
}

func TestDashboardService_AdminStatistics(t *testing.T) {
	f := newDashboardFixture(t)

	f.questions.EXPECT().List(mock.Anything, repositories.QuestionFilter{}).
		Return([]*entities.Question{globalQuestion("q1", "A", "B")}, nil).Once()
	f.stalls.EXPECT().List(mock.Anything).
		Return([]*entities.Stall{{StallID: "s1", Name: "One"}}, nil).Once()
	f.users.EXPECT().List(mock.Anything).
		Return([]*entities.User{{ID: "u1", CreatedAt: testNow.Add(-time.Hour)}}, nil).Once()
	f.responses.EXPECT().List(mock.Anything).
		Return([]*entities.Response{
			response("r1", "q1", "s1", "A", testNow),
			response("r2", "q1", "", "B", testNow.Add(-time.Hour)),
		}, nil).Once()

	stats, err := f.service.AdminStatistics(context.Background())

	require.NoError(t, err)
	assert.False(t, stats.Scoped)
	assert.Equal(t, 2, stats.TotalResponses)
	assert.Equal(t, 1, stats.NewUsers)
	assert.Equal(t, 1, stats.ResponsesWithoutStall)
	assert.True(t, f.cache.has("dashboard:admin"))
	assert.Equal(t, int64(1), f.metrics.Count("cache.miss.count", "cache.family", "dashboard"))
	assert.Equal(t, int64(0), f.metrics.Count("cache.hit.count", "cache.family", "dashboard"))
	assert.Equal(t, uint64(1), f.metrics.Observations("survey.dashboard.computation.duration", "dashboard.view", "admin"))

	// Served from cache; the repository expectations above allow one call each
	cached, err := f.service.AdminStatistics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, stats.TotalResponses, cached.TotalResponses)
	assert.Equal(t, stats.ResponseCountByQuestion, cached.ResponseCountByQuestion)
	assert.Equal(t, int64(1), f.metrics.Count("cache.hit.count", "cache.family", "dashboard"))
	assert.Equal(t, uint64(1), f.metrics.Observations("survey.dashboard.computation.duration", "dashboard.view", "admin"))
}

func TestDashboardService_AdminStatisticsFetchError(t *testing.T) {
	f := newDashboardFixture(t)
	boom := errors.New("connection reset")

	f.questions.EXPECT().List(mock.Anything, mock.Anything).Return(nil, nil).Maybe()
	f.stalls.EXPECT().List(mock.Anything).Return(nil, boom)
	f.users.EXPECT().List(mock.Anything).Return(nil, nil).Maybe()
	f.responses.EXPECT().List(mock.Anything).Return(nil, nil).Maybe()

	_, err := f.service.AdminStatistics(context.Background())

	assert.ErrorIs(t, err, boom)
	assert.False(t, f.cache.has("dashboard:admin"))
}

func TestDashboardService_OwnerStatistics(t *testing.T) {
	f := newDashboardFixture(t)

	f.stalls.EXPECT().ListByOwner(mock.Anything, "owner-1").
		Return([]*entities.Stall{{StallID: "s1", Name: "Mine"}, {StallID: "S2", Name: "Legacy"}}, nil)
	f.questions.EXPECT().List(mock.Anything, repositories.QuestionFilter{}).
		Return([]*entities.Question{globalQuestion("q1", "A")}, nil)
	f.responses.EXPECT().ListByStallIDs(mock.Anything, []string{"s1", "s2"}).
		Return([]*entities.Response{
			response("r1", "q1", "s1", "A", testNow),
			response("r2", "q1", "s2", "A", testNow),
		}, nil)

	stats, err := f.service.OwnerStatistics(context.Background(), "owner-1")

	require.NoError(t, err)
	assert.True(t, stats.Scoped)
	assert.Equal(t, 2, stats.TotalResponses)
	assert.Equal(t, 1, stats.TotalStalls)
	assert.Zero(t, stats.NewUsers)
	assert.True(t, f.cache.has(services.OwnerDashboardKey("owner-1")))
}

func TestDashboardService_OwnerWithoutStalls(t *testing.T) {
	f := newDashboardFixture(t)

	f.stalls.EXPECT().ListByOwner(mock.Anything, "owner-2").Return([]*entities.Stall{}, nil)
	f.questions.EXPECT().List(mock.Anything, repositories.QuestionFilter{}).
		Return([]*entities.Question{globalQuestion("q1", "A")}, nil)

	stats, err := f.service.OwnerStatistics(context.Background(), "owner-2")

	require.NoError(t, err)
	assert.Zero(t, stats.TotalResponses)
	assert.Zero(t, stats.TotalStalls)
	assert.Equal(t, 1, stats.TotalQuestions)
}

func TestDashboardService_IgnoresCorruptCache(t *testing.T) {
	f := newDashboardFixture(t)
	require.NoError(t, f.cache.Set(context.Background(), services.OwnerDashboardKey("owner-3"), []byte("not json"), 60))

	f.stalls.EXPECT().ListByOwner(mock.Anything, "owner-3").Return(nil, nil)
	f.questions.EXPECT().List(mock.Anything, repositories.QuestionFilter{}).Return(nil, nil)

	stats, err := f.service.OwnerStatistics(context.Background(), "owner-3")

	require.NoError(t, err)
	raw, err := f.cache.Get(context.Background(), services.OwnerDashboardKey("owner-3"))
	require.NoError(t, err)
	var decoded entities.Statistics
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, stats.GeneratedAt, decoded.GeneratedAt)
}

func TestDashboardSession_LoadsOnce(t *testing.T) {
	calls := 0
	session := services.NewDashboardSession(func(ctx context.Context) (*entities.Statistics, error) {
		calls++
		if calls == 1 {
			return nil, errors.New("transient")
		}
		return &entities.Statistics{TotalResponses: calls}, nil
	})

	_, err := session.Load(context.Background())
	require.Error(t, err)
	assert.False(t, session.Loaded())

	first, err := session.Load(context.Background())
	require.NoError(t, err)
	second, err := session.Load(context.Background())
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 2, calls)

	session.Reset()
	assert.False(t, session.Loaded())

	third, err := session.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, third.TotalResponses)
}

func TestDashboardSessions_OpenAndEnd(t *testing.T) {
	registry := services.NewDashboardSessions(0, fixedClock())
	load := func(ctx context.Context) (*entities.Statistics, error) { return &entities.Statistics{}, nil }

	a := registry.Open("admin:u1", load)
	assert.Same(t, a, registry.Open("admin:u1", load))

	_, err := a.Load(context.Background())
	require.NoError(t, err)

	registry.End("admin:u1")
	assert.False(t, a.Loaded())
	assert.NotSame(t, a, registry.Open("admin:u1", load))
}

type steppedClock struct {
	now time.Time
}

func (c *steppedClock) Now() time.Time { return c.now }

func TestDashboardSessions_IdleSessionsExpire(t *testing.T) {
	clock := &steppedClock{now: testNow}
	registry := services.NewDashboardSessions(30*time.Minute, clock)
	calls := 0
	load := func(ctx context.Context) (*entities.Statistics, error) {
		calls++
		return &entities.Statistics{TotalResponses: calls}, nil
	}

	a := registry.Open("admin:u1", load)
	_, err := a.Load(context.Background())
	require.NoError(t, err)
	registry.Open("owner:u2", load)
	assert.Equal(t, 2, registry.Len())

	// Reopening inside the window keeps the session alive
	clock.now = testNow.Add(20 * time.Minute)
	assert.Same(t, a, registry.Open("admin:u1", load))

	// owner:u2 has now been idle for the full window
	clock.now = testNow.Add(35 * time.Minute)
	registry.Open("admin:u1", load)
	assert.Equal(t, 1, registry.Len())

	clock.now = testNow.Add(90 * time.Minute)
	fresh := registry.Open("admin:u1", load)
	assert.NotSame(t, a, fresh)
	assert.False(t, a.Loaded())

	stats, err := fresh.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalResponses)
	assert.Equal(t, 1, registry.Len())
}
