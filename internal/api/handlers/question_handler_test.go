package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/zatekoja/stallsurvey/internal/api/handlers"
	"github.com/zatekoja/stallsurvey/internal/application/services"
	"github.com/zatekoja/stallsurvey/internal/domain/entities"
	apperrors "github.com/zatekoja/stallsurvey/pkg/errors"
	"github.com/zatekoja/stallsurvey/tests/mocks"
)

type stubQuestionService struct {
	questions   []*entities.Question
	created     []services.CreateQuestionInput
	createErr   error
	deleted     []string
	deleteErr   error
	searchQuery string
	searchLimit int
}

func (s *stubQuestionService) Create(ctx context.Context, input services.CreateQuestionInput) (*entities.Question, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	s.created = append(s.created, input)
	return &entities.Question{ID: "q-new", Text: input.Text, Options: input.Options, Scope: entities.QuestionScopeGlobal, Active: true}, nil
}

func (s *stubQuestionService) List(ctx context.Context) ([]*entities.Question, error) {
	return s.questions, nil
}

func (s *stubQuestionService) Delete(ctx context.Context, id string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.deleted = append(s.deleted, id)
	return nil
}

func (s *stubQuestionService) Search(ctx context.Context, query string, limit int) ([]*entities.Question, error) {
	s.searchQuery = query
	s.searchLimit = limit
	return s.questions, nil
}

func TestQuestionHandler_ListQuestionsResolvesStallNames(t *testing.T) {
	service := &stubQuestionService{questions: []*entities.Question{
		{ID: "q1", Text: "Global", Scope: entities.QuestionScopeGlobal},
		{ID: "q2", Text: "Local", Scope: entities.QuestionScopeSpecific, TargetStalls: []string{"s1", "closed"}},
	}}
	stallRepo := mocks.NewMockStallRepository(t)
	stallRepo.EXPECT().GetByStallIDs(mock.Anything, []string{"s1", "closed"}).
		Return([]*entities.Stall{{StallID: "s1", Name: "Samosa Stop"}}, nil)

	handler := handlers.NewQuestionHandler(service, stallRepo)
	w := httptest.NewRecorder()
	handler.ListQuestions(w, authedRequest(http.MethodGet, "/api/admin/questions", nil, "admin", entities.UserRoleAdmin))

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Questions []struct {
			ID               string            `json:"id"`
			TargetStallNames map[string]string `json:"target_stall_names"`
			UnknownTargets   []string          `json:"unknown_targets"`
		} `json:"questions"`
		Count int `json:"count"`
	}
	decodeBody(t, w, &body)
	require.Equal(t, 2, body.Count)
	assert.Empty(t, body.Questions[0].TargetStallNames)
	assert.Equal(t, map[string]string{"s1": "Samosa Stop"}, body.Questions[1].TargetStallNames)
	assert.Equal(t, []string{"closed"}, body.Questions[1].UnknownTargets)
}

func TestQuestionHandler_CreateQuestion(t *testing.T) {
	service := &stubQuestionService{}
	handler := handlers.NewQuestionHandler(service, nil)

	body := `{"text":"Was it fresh?","options_block":"Yes\nNo","scope":"global"}`
	w := httptest.NewRecorder()
	handler.CreateQuestion(w, authedRequest(http.MethodPost, "/api/admin/questions", strings.NewReader(body), "admin", entities.UserRoleAdmin))

	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, service.created, 1)
	assert.Equal(t, "Yes\nNo", service.created[0].OptionsBlock)
}

func TestQuestionHandler_CreateQuestionValidation(t *testing.T) {
	service := &stubQuestionService{createErr: apperrors.NewValidationError("unknown target stalls: ghost")}
	handler := handlers.NewQuestionHandler(service, nil)

	w := httptest.NewRecorder()
	handler.CreateQuestion(w, authedRequest(http.MethodPost, "/api/admin/questions", strings.NewReader(`{"text":"Q"}`), "admin", entities.UserRoleAdmin))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, errorMessage(t, w), "ghost")
}

func TestQuestionHandler_DeleteQuestion(t *testing.T) {
	service := &stubQuestionService{}
	handler := handlers.NewQuestionHandler(service, nil)

	req := authedRequest(http.MethodDelete, "/api/admin/questions/q1", nil, "admin", entities.UserRoleAdmin)
	req.SetPathValue("id", "q1")
	w := httptest.NewRecorder()
	handler.DeleteQuestion(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, []string{"q1"}, service.deleted)
}

func TestQuestionHandler_DeleteQuestionErrors(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		handler := handlers.NewQuestionHandler(&stubQuestionService{deleteErr: apperrors.NewNotFoundError("question not found")}, nil)
		req := authedRequest(http.MethodDelete, "/api/admin/questions/q9", nil, "admin", entities.UserRoleAdmin)
		req.SetPathValue("id", "q9")
		w := httptest.NewRecorder()

		handler.DeleteQuestion(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("internal details are hidden", func(t *testing.T) {
		handler := handlers.NewQuestionHandler(&stubQuestionService{deleteErr: errors.New("pq: connection refused")}, nil)
		req := authedRequest(http.MethodDelete, "/api/admin/questions/q9", nil, "admin", entities.UserRoleAdmin)
		req.SetPathValue("id", "q9")
		w := httptest.NewRecorder()

		handler.DeleteQuestion(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "internal server error", errorMessage(t, w))
	})
}

func TestQuestionHandler_SearchQuestions(t *testing.T) {
	service := &stubQuestionService{questions: []*entities.Question{{ID: "q1"}}}
	handler := handlers.NewQuestionHandler(service, nil)

	w := httptest.NewRecorder()
	handler.SearchQuestions(w, authedRequest(http.MethodGet, "/api/admin/questions/search?q=chai&limit=5", nil, "admin", entities.UserRoleAdmin))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "chai", service.searchQuery)
	assert.Equal(t, 5, service.searchLimit)

	w = httptest.NewRecorder()
	handler.SearchQuestions(w, authedRequest(http.MethodGet, "/api/admin/questions/search?q=chai&limit=500", nil, "admin", entities.UserRoleAdmin))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
