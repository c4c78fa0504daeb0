package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/zatekoja/stallsurvey/internal/application/services"
	"github.com/zatekoja/stallsurvey/internal/domain/entities"
)

// DashboardService defines the statistics used by the dashboards
type DashboardService interface {
	AdminStatistics(ctx context.Context) (*entities.Statistics, error)
	OwnerStatistics(ctx context.Context, ownerID string) (*entities.Statistics, error)
}

// DashboardHandler serves the admin and shop owner dashboards. Each caller
// gets a session whose statistics are computed once, until the session ends
// or a refresh is requested.
type DashboardHandler struct {
	service  DashboardService
	sessions *services.DashboardSessions
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(service DashboardService, sessions *services.DashboardSessions) *DashboardHandler {
	return &DashboardHandler{
		service:  service,
		sessions: sessions,
	}
}

func adminSessionKey(userID string) string { return "admin:" + userID }

func ownerSessionKey(userID string) string { return "owner:" + userID }

// AdminDashboard handles GET /api/admin/dashboard
func (h *DashboardHandler) AdminDashboard(w http.ResponseWriter, r *http.Request) {
	principal, ok := callerOrReject(w, r)
	if !ok {
		return
	}

	h.serve(w, r, adminSessionKey(principal.UserID), func(ctx context.Context) (*entities.Statistics, error) {
		return h.service.AdminStatistics(ctx)
	})
}

// OwnerDashboard handles GET /api/shop/dashboard
func (h *DashboardHandler) OwnerDashboard(w http.ResponseWriter, r *http.Request) {
	principal, ok := callerOrReject(w, r)
	if !ok {
		return
	}

	ownerID := principal.UserID
	h.serve(w, r, ownerSessionKey(ownerID), func(ctx context.Context) (*entities.Statistics, error) {
		return h.service.OwnerStatistics(ctx, ownerID)
	})
}

// EndSession handles DELETE /api/dashboard/session
func (h *DashboardHandler) EndSession(w http.ResponseWriter, r *http.Request) {
	principal, ok := callerOrReject(w, r)
	if !ok {
		return
	}

	h.sessions.End(adminSessionKey(principal.UserID))
	h.sessions.End(ownerSessionKey(principal.UserID))
	w.WriteHeader(http.StatusNoContent)
}

func (h *DashboardHandler) serve(
	w http.ResponseWriter,
	r *http.Request,
	key string,
	load func(context.Context) (*entities.Statistics, error),
) {
	if refresh, _ := strconv.ParseBool(r.URL.Query().Get("refresh")); refresh {
		h.sessions.End(key)
	}

	stats, err := h.sessions.Open(key, load).Load(r.Context())
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, stats)
}
