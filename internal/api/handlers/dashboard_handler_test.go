package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zatekoja/stallsurvey/internal/api/handlers"
	"github.com/zatekoja/stallsurvey/internal/application/services"
	"github.com/zatekoja/stallsurvey/internal/domain/entities"
	"github.com/zatekoja/stallsurvey/internal/domain/providers"
)

type stubDashboardService struct {
	adminCalls int
	ownerCalls map[string]int
	err        error
}

func (s *stubDashboardService) AdminStatistics(ctx context.Context) (*entities.Statistics, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.adminCalls++
	return &entities.Statistics{TotalResponses: s.adminCalls}, nil
}

func (s *stubDashboardService) OwnerStatistics(ctx context.Context, ownerID string) (*entities.Statistics, error) {
	if s.ownerCalls == nil {
		s.ownerCalls = make(map[string]int)
	}
	s.ownerCalls[ownerID]++
	return &entities.Statistics{Scoped: true, TotalResponses: s.ownerCalls[ownerID]}, nil
}

func getStats(t *testing.T, serve http.HandlerFunc, req *http.Request) *entities.Statistics {
	t.Helper()
	w := httptest.NewRecorder()
	serve(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var stats entities.Statistics
	decodeBody(t, w, &stats)
	return &stats
}

func TestDashboardHandler_AdminDashboardLoadsOncePerSession(t *testing.T) {
	service := &stubDashboardService{}
	handler := handlers.NewDashboardHandler(service, services.NewDashboardSessions(0, providers.FixedClock{}))

	first := getStats(t, handler.AdminDashboard, authedRequest(http.MethodGet, "/api/admin/dashboard", nil, "admin", entities.UserRoleAdmin))
	second := getStats(t, handler.AdminDashboard, authedRequest(http.MethodGet, "/api/admin/dashboard", nil, "admin", entities.UserRoleAdmin))

	assert.Equal(t, 1, first.TotalResponses)
	assert.Equal(t, 1, second.TotalResponses)
	assert.Equal(t, 1, service.adminCalls)

	refreshed := getStats(t, handler.AdminDashboard, authedRequest(http.MethodGet, "/api/admin/dashboard?refresh=true", nil, "admin", entities.UserRoleAdmin))
	assert.Equal(t, 2, refreshed.TotalResponses)
}

func TestDashboardHandler_EndSession(t *testing.T) {
	service := &stubDashboardService{}
	handler := handlers.NewDashboardHandler(service, services.NewDashboardSessions(0, providers.FixedClock{}))

	getStats(t, handler.OwnerDashboard, authedRequest(http.MethodGet, "/api/shop/dashboard", nil, "shop-1", entities.UserRoleShop))

	w := httptest.NewRecorder()
	handler.EndSession(w, authedRequest(http.MethodDelete, "/api/dashboard/session", nil, "shop-1", entities.UserRoleShop))
	require.Equal(t, http.StatusNoContent, w.Code)

	stats := getStats(t, handler.OwnerDashboard, authedRequest(http.MethodGet, "/api/shop/dashboard", nil, "shop-1", entities.UserRoleShop))
	assert.True(t, stats.Scoped)
	assert.Equal(t, 2, service.ownerCalls["shop-1"])
}

func TestDashboardHandler_SessionsAreSeparatePerCaller(t *testing.T) {
	service := &stubDashboardService{}
	handler := handlers.NewDashboardHandler(service, services.NewDashboardSessions(0, providers.FixedClock{}))

	getStats(t, handler.OwnerDashboard, authedRequest(http.MethodGet, "/api/shop/dashboard", nil, "shop-1", entities.UserRoleShop))
	getStats(t, handler.OwnerDashboard, authedRequest(http.MethodGet, "/api/shop/dashboard", nil, "shop-2", entities.UserRoleShop))

	assert.Equal(t, 1, service.ownerCalls["shop-1"])
	assert.Equal(t, 1, service.ownerCalls["shop-2"])
}

func TestDashboardHandler_FailedLoadIsRetried(t *testing.T) {
	service := &stubDashboardService{err: errors.New("dashboard fetch 0: timeout")}
	handler := handlers.NewDashboardHandler(service, services.NewDashboardSessions(0, providers.FixedClock{}))

	w := httptest.NewRecorder()
	handler.AdminDashboard(w, authedRequest(http.MethodGet, "/api/admin/dashboard", nil, "admin", entities.UserRoleAdmin))
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	service.err = nil
	stats := getStats(t, handler.AdminDashboard, authedRequest(http.MethodGet, "/api/admin/dashboard", nil, "admin", entities.UserRoleAdmin))
	assert.Equal(t, 1, stats.TotalResponses)
}
