package routes

import (
	"net/http"

	"github.com/zatekoja/stallsurvey/internal/api/handlers"
	"github.com/zatekoja/stallsurvey/internal/api/loaders"
	"github.com/zatekoja/stallsurvey/internal/api/middleware"
	"github.com/zatekoja/stallsurvey/internal/domain/entities"
	"github.com/zatekoja/stallsurvey/internal/domain/repositories"
	"github.com/zatekoja/stallsurvey/internal/infrastructure/observability"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	userHandler      *handlers.UserHandler
	surveyHandler    *handlers.SurveyHandler
	questionHandler  *handlers.QuestionHandler
	stallHandler     *handlers.StallHandler
	dashboardHandler *handlers.DashboardHandler

	auth      *middleware.Authenticator
	stallRepo repositories.StallRepository
	metrics   *observability.Metrics
}

// NewRouter creates a new router
func NewRouter(
	userHandler *handlers.UserHandler,
	surveyHandler *handlers.SurveyHandler,
	questionHandler *handlers.QuestionHandler,
	stallHandler *handlers.StallHandler,
	dashboardHandler *handlers.DashboardHandler,
	auth *middleware.Authenticator,
	stallRepo repositories.StallRepository,
	metrics *observability.Metrics,
) *Router {
	return &Router{
		mux:              http.NewServeMux(),
		userHandler:      userHandler,
		surveyHandler:    surveyHandler,
		questionHandler:  questionHandler,
		stallHandler:     stallHandler,
		dashboardHandler: dashboardHandler,
		auth:             auth,
		stallRepo:        stallRepo,
		metrics:          metrics,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	anyone := []entities.UserRole{entities.UserRoleUser, entities.UserRoleShop, entities.UserRoleAdmin}
	owners := []entities.UserRole{entities.UserRoleShop, entities.UserRoleAdmin}
	admins := []entities.UserRole{entities.UserRoleAdmin}

	// Profile
	r.handle("POST /api/users/me", r.userHandler.RegisterSelf, anyone)

	// Customer survey
	r.handle("GET /api/survey/questions", r.surveyHandler.ListEligibleQuestions, anyone)
	r.handle("POST /api/survey/responses", r.surveyHandler.SubmitResponse, anyone)

	// Question bank
	r.handle("GET /api/admin/questions", r.questionHandler.ListQuestions, admins)
	r.handle("GET /api/admin/questions/search", r.questionHandler.SearchQuestions, admins)
	r.handle("POST /api/admin/questions", r.questionHandler.CreateQuestion, admins)
	r.handle("DELETE /api/admin/questions/{id}", r.questionHandler.DeleteQuestion, admins)

	// Stalls
	r.handle("POST /api/stalls", r.stallHandler.RegisterStall, owners)
	r.handle("GET /api/stalls/mine", r.stallHandler.ListOwnedStalls, owners)

	// Dashboards
	r.handle("GET /api/admin/dashboard", r.dashboardHandler.AdminDashboard, admins)
	r.handle("GET /api/shop/dashboard", r.dashboardHandler.OwnerDashboard, owners)
	r.handle("DELETE /api/dashboard/session", r.dashboardHandler.EndSession, anyone)

	// Apply middleware in reverse order (last middleware wraps first)
	var handler http.Handler = r.mux
	handler = loaders.Middleware(r.stallRepo)(handler)
	handler = middleware.LoggingMiddleware(handler)
	handler = middleware.ObservabilityMiddleware(r.metrics)(handler)
	handler = middleware.CORSMiddleware(handler)

	return handler
}

func (r *Router) handle(pattern string, h http.HandlerFunc, roles []entities.UserRole) {
	r.mux.Handle(pattern, r.auth.Middleware(middleware.RequireRole(roles...)(h)))
}
