package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/zatekoja/stallsurvey/internal/api/loaders"
	"github.com/zatekoja/stallsurvey/internal/application/services"
	"github.com/zatekoja/stallsurvey/internal/domain/entities"
	"github.com/zatekoja/stallsurvey/internal/domain/repositories"
	"github.com/zatekoja/stallsurvey/pkg/utils"
)

const maxSearchLimit = 100

// QuestionService defines the question operations used by the handler
type QuestionService interface {
	Create(ctx context.Context, input services.CreateQuestionInput) (*entities.Question, error)
	List(ctx context.Context) ([]*entities.Question, error)
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, query string, limit int) ([]*entities.Question, error)
}

// QuestionHandler handles the admin question bank
type QuestionHandler struct {
	service   QuestionService
	stallRepo repositories.StallRepository
}

// NewQuestionHandler creates a new question handler
func NewQuestionHandler(service QuestionService, stallRepo repositories.StallRepository) *QuestionHandler {
	return &QuestionHandler{
		service:   service,
		stallRepo: stallRepo,
	}
}

// questionView is a question with the display names of its target stalls.
// Targets that no longer name a registered stall are listed in UnknownTargets.
type questionView struct {
	*entities.Question
	TargetStallNames map[string]string `json:"target_stall_names,omitempty"`
	UnknownTargets   []string          `json:"unknown_targets,omitempty"`
}

// ListQuestions handles GET /api/admin/questions
func (h *QuestionHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	questions, err := h.service.List(r.Context())
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	views, err := h.withStallNames(r.Context(), questions)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"questions": views,
		"count":     len(views),
	})
}

// SearchQuestions handles GET /api/admin/questions/search?q=
func (h *QuestionHandler) SearchQuestions(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > maxSearchLimit {
			respondWithError(w, http.StatusBadRequest, "limit must be between 1 and 100")
			return
		}
		limit = parsed
	}

	questions, err := h.service.Search(r.Context(), r.URL.Query().Get("q"), limit)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"questions": questions,
		"count":     len(questions),
	})
}

// CreateQuestion handles POST /api/admin/questions
func (h *QuestionHandler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	var input services.CreateQuestionInput
	if err := decodeJSON(r, &input); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	question, err := h.service.Create(r.Context(), input)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, question)
}

// DeleteQuestion handles DELETE /api/admin/questions/{id}
func (h *QuestionHandler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "question ID is required")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		respondWithAppError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *QuestionHandler) withStallNames(ctx context.Context, questions []*entities.Question) ([]questionView, error) {
	targets := make([]string, 0)
	for _, q := range questions {
		targets = append(targets, q.TargetStalls...)
	}

	stalls, err := loaders.LoadStalls(ctx, h.stallRepo, utils.UniqueStrings(targets))
	if err != nil {
		return nil, err
	}

	views := make([]questionView, 0, len(questions))
	for _, q := range questions {
		view := questionView{Question: q}
		for _, target := range q.TargetStalls {
			stall, ok := stalls[target]
			if !ok {
				view.UnknownTargets = append(view.UnknownTargets, target)
				continue
			}
			if view.TargetStallNames == nil {
				view.TargetStallNames = make(map[string]string)
			}
			view.TargetStallNames[target] = stall.DisplayName()
		}
		views = append(views, view)
	}
	return views, nil
}
