package handlers

import (
	"context"
	"net/http"

	"github.com/zatekoja/stallsurvey/internal/api/loaders"
	"github.com/zatekoja/stallsurvey/internal/application/services"
	"github.com/zatekoja/stallsurvey/internal/domain/entities"
	"github.com/zatekoja/stallsurvey/internal/domain/repositories"
	"github.com/zatekoja/stallsurvey/internal/infrastructure/observability"
)

// SurveyService defines the survey operations used by the handler
type SurveyService interface {
	EligibleQuestions(ctx context.Context, userID, stallContext string) ([]entities.EligibleQuestion, error)
	Submit(ctx context.Context, input services.SubmitResponseInput) (*entities.Response, error)
}

// SurveyHandler serves questions to customers and accepts their answers
type SurveyHandler struct {
	service   SurveyService
	stallRepo repositories.StallRepository
	metrics   *observability.Metrics
}

// NewSurveyHandler creates a new survey handler
func NewSurveyHandler(service SurveyService, stallRepo repositories.StallRepository, metrics *observability.Metrics) *SurveyHandler {
	return &SurveyHandler{
		service:   service,
		stallRepo: stallRepo,
		metrics:   metrics,
	}
}

type eligibleQuestionsResponse struct {
	Stall     *entities.Stall             `json:"stall"`
	Questions []entities.EligibleQuestion `json:"questions"`
	Count     int                         `json:"count"`
}

// ListEligibleQuestions handles GET /api/survey/questions?stall=ID
func (h *SurveyHandler) ListEligibleQuestions(w http.ResponseWriter, r *http.Request) {
	principal, ok := callerOrReject(w, r)
	if !ok {
		return
	}

	stallID := entities.NormalizeStallID(r.URL.Query().Get("stall"))

	questions, err := h.service.EligibleQuestions(r.Context(), principal.UserID, stallID)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	resp := eligibleQuestionsResponse{Questions: questions, Count: len(questions)}
	if stallID != "" {
		stalls, err := loaders.LoadStalls(r.Context(), h.stallRepo, []string{stallID})
		if err != nil {
			respondWithAppError(w, r, err)
			return
		}
		resp.Stall = stalls[stallID]
	}

	respondWithJSON(w, http.StatusOK, resp)
}

// SubmitResponse handles POST /api/survey/responses
func (h *SurveyHandler) SubmitResponse(w http.ResponseWriter, r *http.Request) {
	principal, ok := callerOrReject(w, r)
	if !ok {
		return
	}

	var input services.SubmitResponseInput
	if err := decodeJSON(r, &input); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	input.UserID = principal.UserID

	response, err := h.service.Submit(r.Context(), input)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	observability.RecordResponseSubmitted(r.Context(), h.metrics, response.HasStall())
	respondWithJSON(w, http.StatusCreated, response)
}
