package services

import (
	"context"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/zatekoja/stallsurvey/internal/domain/entities"
	"github.com/zatekoja/stallsurvey/internal/domain/providers"
	"github.com/zatekoja/stallsurvey/internal/domain/repositories"
	apperrors "github.com/zatekoja/stallsurvey/pkg/errors"
)

// SubmitResponseInput is a customer's answer to one question
type SubmitResponseInput struct {
	UserID     string `json:"-"`
	QuestionID string `json:"question_id"`
	StallID    string `json:"stall_id"`
	Answer     string `json:"answer"`
}

// SurveyService serves questions to customers and records their answers
type SurveyService struct {
	questionRepo repositories.QuestionRepository
	responseRepo repositories.ResponseRepository
	stallRepo    repositories.StallRepository
	eventBus     providers.EventBus
	clock        providers.Clock
}

// NewSurveyService creates a new survey service
func NewSurveyService(
	questionRepo repositories.QuestionRepository,
	responseRepo repositories.ResponseRepository,
	stallRepo repositories.StallRepository,
	eventBus providers.EventBus,
	clock providers.Clock,
) *SurveyService {
	return &SurveyService{
		questionRepo: questionRepo,
		responseRepo: responseRepo,
		stallRepo:    stallRepo,
		eventBus:     eventBus,
		clock:        clock,
	}
}

// EligibleQuestions returns the unanswered questions userID should see at
// stallContext. An empty stallContext yields global questions only.
func (s *SurveyService) EligibleQuestions(ctx context.Context, userID, stallContext string) ([]entities.EligibleQuestion, error) {
	stallContext = entities.NormalizeStallID(stallContext)

	questions, err := s.questionRepo.ListEligible(ctx, stallContext)
	if err != nil {
		return nil, err
	}

	answered, err := s.responseRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return SelectEligibleQuestions(questions, AnsweredQuestionIDs(answered), stallContext), nil
}

// Submit records one answer. A user may answer each question once.
func (s *SurveyService) Submit(ctx context.Context, input SubmitResponseInput) (*entities.Response, error) {
	if input.UserID == "" {
		return nil, apperrors.NewUnauthorizedError("user is required")
	}
	answer := strings.TrimSpace(input.Answer)
	if input.QuestionID == "" || answer == "" {
		return nil, apperrors.NewValidationError("question_id and answer are required")
	}

	question, err := s.questionRepo.GetByID(ctx, input.QuestionID)
	if err != nil {
		return nil, err
	}

	stallID := entities.NormalizeStallID(input.StallID)
	if stallID != "" {
		if _, err := s.stallRepo.GetByStallID(ctx, stallID); err != nil {
			if !apperrors.IsType(err, apperrors.ErrorTypeNotFound) {
				return nil, err
			}
			log.Warn().Str("stall_id", stallID).Str("question_id", question.ID).Msg("Response submitted for unregistered stall")
		}
	}

	if !slices.Contains(question.Options, answer) {
		log.Info().Str("question_id", question.ID).Str("answer", answer).Msg("Answer does not match a declared option")
	}

	exists, err := s.responseRepo.ExistsForUserQuestion(ctx, input.UserID, question.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.NewConflictError("question already answered")
	}

	response := &entities.Response{
		ID:          uuid.NewString(),
		UserID:      input.UserID,
		QuestionID:  question.ID,
		StallID:     stallID,
		Answer:      answer,
		SubmittedAt: s.clock.Now(),
	}
	if err := s.responseRepo.Create(ctx, response); err != nil {
		return nil, err
	}

	event := entities.NewSurveyEvent(entities.SurveyEventTypeResponseSubmitted, response.SubmittedAt)
	event.QuestionID = question.ID
	event.StallID = stallID
	publishSurveyEvent(ctx, s.eventBus, event)

	return response, nil
}
