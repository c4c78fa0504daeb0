package handlers_test

import (
	"context"
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

type stubSurveyService struct {
	eligibleUser  string
	eligibleStall string
	questions     []entities.EligibleQuestion
	submitted     []services.SubmitResponseInput
	submitErr     error
}

func (s *stubSurveyService) EligibleQuestions(ctx context.Context, userID, stallContext string) ([]entities.EligibleQuestion, error) {
	s.eligibleUser = userID
	s.eligibleStall = stallContext
	return s.questions, nil
}

func (s *stubSurveyService) Submit(ctx context.Context, input services.SubmitResponseInput) (*entities.Response, error) {
	if s.submitErr != nil {
		return nil, s.submitErr
	}
	s.submitted = append(s.submitted, input)
	return &entities.Response{ID: "r1", UserID: input.UserID, QuestionID: input.QuestionID, StallID: input.StallID, Answer: input.Answer}, nil
}

func TestSurveyHandler_ListEligibleQuestions(t *testing.T) {
	service := &stubSurveyService{questions: []entities.EligibleQuestion{
		{Question: &entities.Question{ID: "q1", Text: "Hot enough?", Options: []string{"Yes", "No"}}, RenderType: entities.RenderTypeChoice},
	}}
	stallRepo := mocks.NewMockStallRepository(t)
	stallRepo.EXPECT().GetByStallIDs(mock.Anything, []string{"chai_1"}).
		Return([]*entities.Stall{{StallID: "chai_1", Name: "Chai Corner"}}, nil)

	handler := handlers.NewSurveyHandler(service, stallRepo, nil)
	req := authedRequest(http.MethodGet, "/api/survey/questions?stall=CHAI_1", nil, "u1", entities.UserRoleUser)
	w := httptest.NewRecorder()

	handler.ListEligibleQuestions(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "u1", service.eligibleUser)
	assert.Equal(t, "chai_1", service.eligibleStall)

	var body struct {
		Stall     *entities.Stall `json:"stall"`
		Questions []struct {
			ID         string `json:"id"`
			RenderType string `json:"render_type"`
		} `json:"questions"`
		Count int `json:"count"`
	}
	decodeBody(t, w, &body)
	require.NotNil(t, body.Stall)
	assert.Equal(t, "Chai Corner", body.Stall.Name)
	assert.Equal(t, 1, body.Count)
	assert.Equal(t, "choice", body.Questions[0].RenderType)
}

func TestSurveyHandler_ListEligibleQuestionsWithoutStall(t *testing.T) {
	service := &stubSurveyService{questions: []entities.EligibleQuestion{}}
	handler := handlers.NewSurveyHandler(service, mocks.NewMockStallRepository(t), nil)

	w := httptest.NewRecorder()
	handler.ListEligibleQuestions(w, authedRequest(http.MethodGet, "/api/survey/questions", nil, "u1", entities.UserRoleUser))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, service.eligibleStall)
	assert.Contains(t, w.Body.String(), `"stall":null`)
}

func TestSurveyHandler_SubmitResponse(t *testing.T) {
	service := &stubSurveyService{}
	handler := handlers.NewSurveyHandler(service, nil, nil)

	body := `{"question_id":"q1","stall_id":"chai_1","answer":"Yes"}`
	w := httptest.NewRecorder()
	handler.SubmitResponse(w, authedRequest(http.MethodPost, "/api/survey/responses", strings.NewReader(body), "u7", entities.UserRoleUser))

	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, service.submitted, 1)
	assert.Equal(t, "u7", service.submitted[0].UserID)
	assert.Equal(t, "Yes", service.submitted[0].Answer)
}

func TestSurveyHandler_SubmitResponseErrors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		err    error
		status int
	}{
		{name: "malformed", body: `{"question_id":`, status: http.StatusBadRequest},
		{name: "spoofed user", body: `{"question_id":"q1","answer":"Yes","user_id":"someone"}`, status: http.StatusBadRequest},
		{name: "duplicate", body: `{"question_id":"q1","answer":"Yes"}`, err: apperrors.NewConflictError("question has already been answered"), status: http.StatusConflict},
		{name: "unknown question", body: `{"question_id":"gone","answer":"Yes"}`, err: apperrors.NewNotFoundError("question not found"), status: http.StatusNotFound},
		{name: "blank answer", body: `{"question_id":"q1","answer":""}`, err: apperrors.NewValidationError("answer is required"), status: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := handlers.NewSurveyHandler(&stubSurveyService{submitErr: tt.err}, nil, nil)

			w := httptest.NewRecorder()
			handler.SubmitResponse(w, authedRequest(http.MethodPost, "/api/survey/responses", strings.NewReader(tt.body), "u1", entities.UserRoleUser))

			assert.Equal(t, tt.status, w.Code)
			assert.NotEmpty(t, errorMessage(t, w))
		})
	}
}

func TestSurveyHandler_RequiresCaller(t *testing.T) {
	handler := handlers.NewSurveyHandler(&stubSurveyService{}, nil, nil)

	w := httptest.NewRecorder()
	handler.SubmitResponse(w, httptest.NewRequest(http.MethodPost, "/api/survey/responses", strings.NewReader(`{}`)))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
